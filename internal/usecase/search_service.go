package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/flowpaylabs/paymethod-service/internal/domain/dto"
	"github.com/flowpaylabs/paymethod-service/internal/domain/model"
	"github.com/flowpaylabs/paymethod-service/internal/domain/repository"
)

// SearchService builds a composed filter from sparse admin criteria and
// runs it across all users' payment methods. A username fragment is
// resolved to an owner-ID set before the record query; the remaining
// criteria map directly onto record columns.
type SearchService struct {
	methodRepo repository.PaymentMethodRepository
	userRepo   repository.UserRepository
	logger     *zap.Logger
}

// NewSearchService creates a new admin search service
func NewSearchService(
	methodRepo repository.PaymentMethodRepository,
	userRepo repository.UserRepository,
	logger *zap.Logger,
) *SearchService {
	return &SearchService{
		methodRepo: methodRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Search returns every payment method matching the criteria, newest
// first, each annotated with the owner's username and email. With zero
// criteria it returns all records. The second return value is the total
// match count before pagination.
func (s *SearchService) Search(ctx context.Context, criteria dto.SearchCriteria) ([]dto.AdminPaymentMethod, int64, error) {
	filter := repository.PaymentMethodFilter{
		PaymentType: model.PaymentType(criteria.PaymentType),
		BankName:    criteria.BankName,
		IFSCCode:    criteria.IFSCCode,
		PaytmNumber: criteria.PaytmNumber,
		UPIID:       criteria.UPIID,
		PaypalEmail: criteria.PaypalEmail,
		USDTAddress: criteria.USDTAddress,
	}

	if criteria.Username != "" {
		ids, err := s.userRepo.FindIDsByUsernameLike(ctx, criteria.Username)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to resolve username filter: %w", err)
		}
		if len(ids) == 0 {
			// An unmatched username filter yields zero results; it must
			// never degrade into an unfiltered query.
			s.logger.Debug("username filter matched no users",
				zap.String("username", criteria.Username))
			return []dto.AdminPaymentMethod{}, 0, nil
		}
		filter.OwnerIDs = ids
	}

	methods, err := s.methodRepo.Search(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	results := make([]dto.AdminPaymentMethod, len(methods))
	for i, m := range methods {
		var owner dto.OwnerInfo
		if m.Owner != nil {
			owner.Username = m.Owner.Username
			owner.Email = m.Owner.Email
		}
		results[i] = dto.AdminPaymentMethod{
			PaymentMethod: m,
			Owner:         owner,
		}
	}

	total := int64(len(results))
	if p := criteria.Pagination; p != nil {
		p.Validate()
		start := p.CalculateOffset()
		if start >= len(results) {
			results = []dto.AdminPaymentMethod{}
		} else {
			end := start + p.Limit
			if end > len(results) {
				end = len(results)
			}
			results = results[start:end]
		}
	}

	return results, total, nil
}

// ListPaymentTypes returns the supported payment types in registry order.
func (s *SearchService) ListPaymentTypes() []model.PaymentType {
	return model.AllPaymentTypes()
}
