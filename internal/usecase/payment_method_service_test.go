package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/flowpaylabs/paymethod-service/internal/domain/errors"
	"github.com/flowpaylabs/paymethod-service/internal/domain/model"
	domainRepo "github.com/flowpaylabs/paymethod-service/internal/domain/repository"
)

// MockPaymentMethodRepository is a mock implementation of PaymentMethodRepository
type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) Create(ctx context.Context, method *model.PaymentMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.PaymentMethod, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) Search(ctx context.Context, filter domainRepo.PaymentMethodFilter) ([]*model.PaymentMethod, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) Update(ctx context.Context, method *model.PaymentMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestPaymentMethodService_Create(t *testing.T) {
	logger := zap.NewNop()
	ownerID := uuid.New()

	tests := []struct {
		name         string
		paymentType  string
		fields       map[string]string
		expectCreate bool
		checkErr     func(t *testing.T, err error)
		checkMethod  func(t *testing.T, method *model.PaymentMethod)
	}{
		{
			name:         "creates a paytm method",
			paymentType:  "Paytm",
			fields:       map[string]string{"paytmNumber": "9876543210"},
			expectCreate: true,
			checkMethod: func(t *testing.T, method *model.PaymentMethod) {
				assert.Equal(t, ownerID, method.OwnerID)
				assert.Equal(t, model.PaymentTypePaytm, method.PaymentType)
				assert.Equal(t, "9876543210", method.PaytmNumber)
			},
		},
		{
			name:        "drops fields belonging to other types",
			paymentType: "UPI",
			fields: map[string]string{
				"upiId":       "alice@upi",
				"bankName":    "HDFC",
				"paytmNumber": "9876543210",
			},
			expectCreate: true,
			checkMethod: func(t *testing.T, method *model.PaymentMethod) {
				assert.Equal(t, "alice@upi", method.UPIID)
				assert.Empty(t, method.BankName)
				assert.Empty(t, method.PaytmNumber)
				assert.Equal(t, map[string]string{"upiId": "alice@upi"}, method.FieldValues())
			},
		},
		{
			name:        "missing payment type",
			paymentType: "",
			fields:      map[string]string{"upiId": "alice@upi"},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domainErrors.ErrMissingPaymentType)
			},
		},
		{
			name:        "unknown payment type",
			paymentType: "Venmo",
			fields:      map[string]string{"upiId": "alice@upi"},
			checkErr: func(t *testing.T, err error) {
				var unknownErr *domainErrors.UnknownPaymentTypeError
				require.ErrorAs(t, err, &unknownErr)
				assert.Equal(t, "Venmo", unknownErr.Type)
			},
		},
		{
			name:        "reports every missing bank field at once",
			paymentType: "Bank",
			fields: map[string]string{
				"bankName":      "HDFC",
				"accountNumber": "50100123456789",
				"ifscCode":      "   ",
			},
			checkErr: func(t *testing.T, err error) {
				var missingErr *domainErrors.MissingFieldsError
				require.ErrorAs(t, err, &missingErr)
				assert.Equal(t, []string{"ifscCode", "branchName", "accountHolderName"}, missingErr.Fields)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPaymentMethodRepository)
			if tt.expectCreate {
				mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.PaymentMethod")).Return(nil)
			}

			service := NewPaymentMethodService(mockRepo, logger)

			method, err := service.Create(context.Background(), ownerID, tt.paymentType, tt.fields)

			if tt.checkErr != nil {
				tt.checkErr(t, err)
				assert.Nil(t, method)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				require.NotNil(t, method)
				tt.checkMethod(t, method)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPaymentMethodService_Get_OwnershipAndExistence(t *testing.T) {
	logger := zap.NewNop()
	ownerA := uuid.New()
	ownerB := uuid.New()
	methodID := uuid.New()

	stored := &model.PaymentMethod{
		ID:          methodID,
		OwnerID:     ownerA,
		PaymentType: model.PaymentTypeUPI,
		UPIID:       "alice@upi",
	}

	t.Run("owner reads the record unchanged", func(t *testing.T) {
		mockRepo := new(MockPaymentMethodRepository)
		mockRepo.On("GetByID", mock.Anything, methodID).Return(stored, nil).Twice()

		service := NewPaymentMethodService(mockRepo, logger)

		first, err := service.Get(context.Background(), ownerA, methodID)
		require.NoError(t, err)

		second, err := service.Get(context.Background(), ownerA, methodID)
		require.NoError(t, err)

		assert.Equal(t, first.FieldValues(), second.FieldValues())
		mockRepo.AssertExpectations(t)
	})

	t.Run("other owner is forbidden, not not-found", func(t *testing.T) {
		mockRepo := new(MockPaymentMethodRepository)
		mockRepo.On("GetByID", mock.Anything, methodID).Return(stored, nil)

		service := NewPaymentMethodService(mockRepo, logger)

		_, err := service.Get(context.Background(), ownerB, methodID)
		assert.ErrorIs(t, err, domainErrors.ErrNotOwner)
		assert.NotErrorIs(t, err, domainErrors.ErrPaymentMethodNotFound)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		unknownID := uuid.New()
		mockRepo := new(MockPaymentMethodRepository)
		mockRepo.On("GetByID", mock.Anything, unknownID).Return(nil, nil)

		service := NewPaymentMethodService(mockRepo, logger)

		_, err := service.Get(context.Background(), ownerA, unknownID)
		assert.ErrorIs(t, err, domainErrors.ErrPaymentMethodNotFound)
	})
}

func TestPaymentMethodService_Update_TypeTransition(t *testing.T) {
	logger := zap.NewNop()
	ownerID := uuid.New()
	methodID := uuid.New()

	bankMethod := func() *model.PaymentMethod {
		return &model.PaymentMethod{
			ID:                methodID,
			OwnerID:           ownerID,
			PaymentType:       model.PaymentTypeBank,
			IFSCCode:          "HDFC0001234",
			BranchName:        "MG Road",
			BankName:          "HDFC",
			AccountNumber:     "50100123456789",
			AccountHolderName: "Alice",
		}
	}

	t.Run("bank to upi clears every bank field", func(t *testing.T) {
		mockRepo := new(MockPaymentMethodRepository)
		mockRepo.On("GetByID", mock.Anything, methodID).Return(bankMethod(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.PaymentMethod")).Return(nil)

		service := NewPaymentMethodService(mockRepo, logger)

		updated, err := service.Update(context.Background(), ownerID, methodID, "UPI",
			map[string]string{"upiId": "alice@upi"})
		require.NoError(t, err)

		assert.Equal(t, model.PaymentTypeUPI, updated.PaymentType)
		assert.Equal(t, "alice@upi", updated.UPIID)
		assert.Empty(t, updated.IFSCCode)
		assert.Empty(t, updated.BranchName)
		assert.Empty(t, updated.BankName)
		assert.Empty(t, updated.AccountNumber)
		assert.Empty(t, updated.AccountHolderName)
		assert.Equal(t, map[string]string{"upiId": "alice@upi"}, updated.FieldValues())

		mockRepo.AssertExpectations(t)
	})

	t.Run("transition without the new field leaves the record untouched", func(t *testing.T) {
		mockRepo := new(MockPaymentMethodRepository)
		mockRepo.On("GetByID", mock.Anything, methodID).Return(bankMethod(), nil)

		service := NewPaymentMethodService(mockRepo, logger)

		_, err := service.Update(context.Background(), ownerID, methodID, "UPI", map[string]string{})

		var missingErr *domainErrors.MissingFieldsError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, []string{"upiId"}, missingErr.Fields)

		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("same type partial edit keeps omitted fields", func(t *testing.T) {
		mockRepo := new(MockPaymentMethodRepository)
		mockRepo.On("GetByID", mock.Anything, methodID).Return(bankMethod(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.PaymentMethod")).Return(nil)

		service := NewPaymentMethodService(mockRepo, logger)

		updated, err := service.Update(context.Background(), ownerID, methodID, "",
			map[string]string{"branchName": "Indiranagar"})
		require.NoError(t, err)

		assert.Equal(t, model.PaymentTypeBank, updated.PaymentType)
		assert.Equal(t, "Indiranagar", updated.BranchName)
		assert.Equal(t, "HDFC", updated.BankName)
		assert.Equal(t, "HDFC0001234", updated.IFSCCode)
	})

	t.Run("restating the current type does not require all fields", func(t *testing.T) {
		mockRepo := new(MockPaymentMethodRepository)
		mockRepo.On("GetByID", mock.Anything, methodID).Return(bankMethod(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.PaymentMethod")).Return(nil)

		service := NewPaymentMethodService(mockRepo, logger)

		updated, err := service.Update(context.Background(), ownerID, methodID, "Bank",
			map[string]string{"bankName": "ICICI"})
		require.NoError(t, err)

		assert.Equal(t, "ICICI", updated.BankName)
		assert.Equal(t, "Alice", updated.AccountHolderName)
	})

	t.Run("unknown new type is rejected before any mutation", func(t *testing.T) {
		mockRepo := new(MockPaymentMethodRepository)
		mockRepo.On("GetByID", mock.Anything, methodID).Return(bankMethod(), nil)

		service := NewPaymentMethodService(mockRepo, logger)

		_, err := service.Update(context.Background(), ownerID, methodID, "Venmo", map[string]string{})

		var unknownErr *domainErrors.UnknownPaymentTypeError
		require.ErrorAs(t, err, &unknownErr)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("update of someone else's record is forbidden", func(t *testing.T) {
		mockRepo := new(MockPaymentMethodRepository)
		mockRepo.On("GetByID", mock.Anything, methodID).Return(bankMethod(), nil)

		service := NewPaymentMethodService(mockRepo, logger)

		_, err := service.Update(context.Background(), uuid.New(), methodID, "UPI",
			map[string]string{"upiId": "mallory@upi"})
		assert.ErrorIs(t, err, domainErrors.ErrNotOwner)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestPaymentMethodService_Delete(t *testing.T) {
	logger := zap.NewNop()
	ownerID := uuid.New()
	methodID := uuid.New()

	stored := &model.PaymentMethod{
		ID:          methodID,
		OwnerID:     ownerID,
		PaymentType: model.PaymentTypePaytm,
		PaytmNumber: "9876543210",
	}

	t.Run("owner deletes the record", func(t *testing.T) {
		mockRepo := new(MockPaymentMethodRepository)
		mockRepo.On("GetByID", mock.Anything, methodID).Return(stored, nil)
		mockRepo.On("Delete", mock.Anything, methodID).Return(nil)

		service := NewPaymentMethodService(mockRepo, logger)

		err := service.Delete(context.Background(), ownerID, methodID)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("deleting an already deleted id reports not found", func(t *testing.T) {
		mockRepo := new(MockPaymentMethodRepository)
		mockRepo.On("GetByID", mock.Anything, methodID).Return(nil, nil)

		service := NewPaymentMethodService(mockRepo, logger)

		err := service.Delete(context.Background(), ownerID, methodID)
		assert.ErrorIs(t, err, domainErrors.ErrPaymentMethodNotFound)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("other owner cannot delete", func(t *testing.T) {
		mockRepo := new(MockPaymentMethodRepository)
		mockRepo.On("GetByID", mock.Anything, methodID).Return(stored, nil)

		service := NewPaymentMethodService(mockRepo, logger)

		err := service.Delete(context.Background(), uuid.New(), methodID)
		assert.ErrorIs(t, err, domainErrors.ErrNotOwner)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestPaymentMethodService_ListByOwner(t *testing.T) {
	logger := zap.NewNop()
	ownerID := uuid.New()

	stored := []*model.PaymentMethod{
		{ID: uuid.New(), OwnerID: ownerID, PaymentType: model.PaymentTypeUPI, UPIID: "alice@upi"},
		{ID: uuid.New(), OwnerID: ownerID, PaymentType: model.PaymentTypePaytm, PaytmNumber: "9876543210"},
	}

	mockRepo := new(MockPaymentMethodRepository)
	mockRepo.On("GetByOwner", mock.Anything, ownerID).Return(stored, nil)

	service := NewPaymentMethodService(mockRepo, logger)

	methods, err := service.ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, stored, methods)
	mockRepo.AssertExpectations(t)
}
