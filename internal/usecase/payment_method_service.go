package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/flowpaylabs/paymethod-service/internal/domain/errors"
	"github.com/flowpaylabs/paymethod-service/internal/domain/model"
	"github.com/flowpaylabs/paymethod-service/internal/domain/repository"
)

// PaymentMethodService owns the lifecycle of payment methods. Every
// operation takes the authenticated caller's ID explicitly and enforces
// that only the owner can read or mutate a record.
type PaymentMethodService struct {
	methodRepo repository.PaymentMethodRepository
	logger     *zap.Logger
}

// NewPaymentMethodService creates a new payment method service
func NewPaymentMethodService(
	methodRepo repository.PaymentMethodRepository,
	logger *zap.Logger,
) *PaymentMethodService {
	return &PaymentMethodService{
		methodRepo: methodRepo,
		logger:     logger,
	}
}

// Create validates the payload against the payment type's required field
// set and persists a new method owned by the caller. Fields belonging to
// other types are dropped, never stored. Validation reports every
// missing field at once and nothing is written on failure.
func (s *PaymentMethodService) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	paymentType string,
	fields map[string]string,
) (*model.PaymentMethod, error) {
	if paymentType == "" {
		return nil, domainErrors.ErrMissingPaymentType
	}

	required, err := model.RequiredFields(model.PaymentType(paymentType))
	if err != nil {
		return nil, err
	}

	if missing := missingFields(required, fields); len(missing) > 0 {
		return nil, &domainErrors.MissingFieldsError{Fields: missing}
	}

	method := &model.PaymentMethod{
		OwnerID:     ownerID,
		PaymentType: model.PaymentType(paymentType),
	}
	for _, f := range required {
		method.SetField(f, strings.TrimSpace(fields[f]))
	}

	if err := s.methodRepo.Create(ctx, method); err != nil {
		return nil, err
	}

	s.logger.Info("payment method created",
		zap.String("payment_method_id", method.ID.String()),
		zap.String("owner_id", ownerID.String()),
		zap.String("payment_type", paymentType))

	return method, nil
}

// Get returns a single payment method owned by the caller.
func (s *PaymentMethodService) Get(ctx context.Context, ownerID, id uuid.UUID) (*model.PaymentMethod, error) {
	return s.getOwned(ctx, ownerID, id)
}

// ListByOwner returns all payment methods of the caller, newest first.
func (s *PaymentMethodService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.PaymentMethod, error) {
	return s.methodRepo.GetByOwner(ctx, ownerID)
}

// Update applies a partial edit to an owned payment method. A type
// change must supply the complete required field set of the new type; on
// success every column of the old type is cleared before the new values
// land. Without a type change, supplied non-empty fields of the current
// type overwrite stored values and omitted ones are kept. The stored
// record is never touched when validation fails.
func (s *PaymentMethodService) Update(
	ctx context.Context,
	ownerID, id uuid.UUID,
	newType string,
	fields map[string]string,
) (*model.PaymentMethod, error) {
	method, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if newType != "" && model.PaymentType(newType) != method.PaymentType {
		required, err := model.RequiredFields(model.PaymentType(newType))
		if err != nil {
			return nil, err
		}
		if missing := missingFields(required, fields); len(missing) > 0 {
			return nil, &domainErrors.MissingFieldsError{Fields: missing}
		}

		method.ClearTypeFields()
		method.PaymentType = model.PaymentType(newType)

		s.logger.Info("payment method type changed",
			zap.String("payment_method_id", id.String()),
			zap.String("new_type", newType))
	}

	required, err := model.RequiredFields(method.PaymentType)
	if err != nil {
		// A stored type outside the registry means corrupted data.
		s.logger.Error("stored payment method has unknown type",
			zap.String("payment_method_id", id.String()),
			zap.String("payment_type", string(method.PaymentType)))
		return nil, err
	}
	for _, f := range required {
		if v := strings.TrimSpace(fields[f]); v != "" {
			method.SetField(f, v)
		}
	}

	if err := s.methodRepo.Update(ctx, method); err != nil {
		return nil, err
	}

	return method, nil
}

// Delete removes an owned payment method permanently. Deleting an ID
// that no longer exists reports not found.
func (s *PaymentMethodService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	method, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := s.methodRepo.Delete(ctx, method.ID); err != nil {
		return err
	}

	s.logger.Info("payment method deleted",
		zap.String("payment_method_id", id.String()),
		zap.String("owner_id", ownerID.String()))

	return nil
}

func (s *PaymentMethodService) getOwned(ctx context.Context, ownerID, id uuid.UUID) (*model.PaymentMethod, error) {
	method, err := s.methodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, domainErrors.ErrPaymentMethodNotFound
	}
	if method.OwnerID != ownerID {
		return nil, domainErrors.ErrNotOwner
	}
	return method, nil
}

// missingFields returns every required field absent or blank in the
// payload, preserving registry order.
func missingFields(required []string, fields map[string]string) []string {
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(fields[f]) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}
