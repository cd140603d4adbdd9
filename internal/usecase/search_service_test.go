package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/flowpaylabs/paymethod-service/internal/domain/dto"
	"github.com/flowpaylabs/paymethod-service/internal/domain/entity"
	"github.com/flowpaylabs/paymethod-service/internal/domain/model"
	domainRepo "github.com/flowpaylabs/paymethod-service/internal/domain/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindIDsByUsernameLike(ctx context.Context, fragment string) ([]uuid.UUID, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func TestSearchService_Search_NoCriteria(t *testing.T) {
	logger := zap.NewNop()

	alice := &model.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}
	bob := &model.User{ID: uuid.New(), Username: "bob", Email: "bob@example.com"}

	stored := []*model.PaymentMethod{
		{ID: uuid.New(), OwnerID: bob.ID, PaymentType: model.PaymentTypePaytm, PaytmNumber: "9876543210", Owner: bob},
		{ID: uuid.New(), OwnerID: alice.ID, PaymentType: model.PaymentTypeUPI, UPIID: "alice@upi", Owner: alice},
	}

	mockMethods := new(MockPaymentMethodRepository)
	mockUsers := new(MockUserRepository)
	mockMethods.On("Search", mock.Anything, domainRepo.PaymentMethodFilter{}).Return(stored, nil)

	service := NewSearchService(mockMethods, mockUsers, logger)

	results, total, err := service.Search(context.Background(), dto.SearchCriteria{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, results, 2)

	assert.Equal(t, "bob", results[0].Owner.Username)
	assert.Equal(t, "bob@example.com", results[0].Owner.Email)
	assert.Equal(t, "alice", results[1].Owner.Username)

	mockUsers.AssertNotCalled(t, "FindIDsByUsernameLike", mock.Anything, mock.Anything)
	mockMethods.AssertExpectations(t)
}

func TestSearchService_Search_UsernameResolution(t *testing.T) {
	logger := zap.NewNop()

	t.Run("resolved ids narrow the record query", func(t *testing.T) {
		alice := &model.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}
		ids := []uuid.UUID{alice.ID}

		stored := []*model.PaymentMethod{
			{ID: uuid.New(), OwnerID: alice.ID, PaymentType: model.PaymentTypeUPI, UPIID: "alice@upi", Owner: alice},
		}

		mockMethods := new(MockPaymentMethodRepository)
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindIDsByUsernameLike", mock.Anything, "ali").Return(ids, nil)
		mockMethods.On("Search", mock.Anything, domainRepo.PaymentMethodFilter{OwnerIDs: ids}).Return(stored, nil)

		service := NewSearchService(mockMethods, mockUsers, logger)

		results, total, err := service.Search(context.Background(), dto.SearchCriteria{Username: "ali"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, results, 1)
		assert.Equal(t, "alice", results[0].Owner.Username)

		mockMethods.AssertExpectations(t)
		mockUsers.AssertExpectations(t)
	})

	t.Run("unmatched username never falls back to an unfiltered query", func(t *testing.T) {
		mockMethods := new(MockPaymentMethodRepository)
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindIDsByUsernameLike", mock.Anything, "nobody").Return([]uuid.UUID{}, nil)

		service := NewSearchService(mockMethods, mockUsers, logger)

		results, total, err := service.Search(context.Background(), dto.SearchCriteria{Username: "nobody"})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, results)

		mockMethods.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})
}

func TestSearchService_Search_FieldCriteriaPropagate(t *testing.T) {
	logger := zap.NewNop()

	mockMethods := new(MockPaymentMethodRepository)
	mockUsers := new(MockUserRepository)

	expectedFilter := domainRepo.PaymentMethodFilter{
		PaymentType: model.PaymentTypeBank,
		BankName:    "hdfc",
		IFSCCode:    "HDFC",
	}
	mockMethods.On("Search", mock.Anything, expectedFilter).Return([]*model.PaymentMethod{}, nil)

	service := NewSearchService(mockMethods, mockUsers, logger)

	_, _, err := service.Search(context.Background(), dto.SearchCriteria{
		PaymentType: "Bank",
		BankName:    "hdfc",
		IFSCCode:    "HDFC",
	})
	require.NoError(t, err)
	mockMethods.AssertExpectations(t)
}

func TestSearchService_Search_Pagination(t *testing.T) {
	logger := zap.NewNop()

	owner := &model.User{ID: uuid.New(), Username: "carol", Email: "carol@example.com"}
	stored := make([]*model.PaymentMethod, 5)
	for i := range stored {
		stored[i] = &model.PaymentMethod{
			ID:          uuid.New(),
			OwnerID:     owner.ID,
			PaymentType: model.PaymentTypeUSDT,
			USDTAddress: "addr",
			Owner:       owner,
		}
	}

	mockMethods := new(MockPaymentMethodRepository)
	mockUsers := new(MockUserRepository)
	mockMethods.On("Search", mock.Anything, mock.AnythingOfType("repository.PaymentMethodFilter")).Return(stored, nil)

	service := NewSearchService(mockMethods, mockUsers, logger)

	t.Run("second page holds the remainder", func(t *testing.T) {
		results, total, err := service.Search(context.Background(), dto.SearchCriteria{
			Pagination: &entity.PaginationParams{Page: 2, Limit: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Len(t, results, 2)
	})

	t.Run("page past the end is empty, total unchanged", func(t *testing.T) {
		results, total, err := service.Search(context.Background(), dto.SearchCriteria{
			Pagination: &entity.PaginationParams{Page: 4, Limit: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Empty(t, results)
	})
}

func TestSearchService_ListPaymentTypes(t *testing.T) {
	service := NewSearchService(new(MockPaymentMethodRepository), new(MockUserRepository), zap.NewNop())

	types := service.ListPaymentTypes()
	assert.Equal(t, model.AllPaymentTypes(), types)
}
