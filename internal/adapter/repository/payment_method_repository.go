package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/flowpaylabs/paymethod-service/internal/domain/model"
	domainRepo "github.com/flowpaylabs/paymethod-service/internal/domain/repository"
)

type paymentMethodRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPaymentMethodRepository creates a new payment method repository
func NewPaymentMethodRepository(db *gorm.DB, logger *zap.Logger) domainRepo.PaymentMethodRepository {
	return &paymentMethodRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new payment method, assigning an ID when none is set
func (r *paymentMethodRepository) Create(ctx context.Context, method *model.PaymentMethod) error {
	if method.ID == uuid.Nil {
		method.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(method).Error; err != nil {
		r.logger.Error("Failed to create payment method",
			zap.String("owner_id", method.OwnerID.String()),
			zap.String("payment_type", string(method.PaymentType)),
			zap.Error(err))
		return fmt.Errorf("failed to create payment method: %w", err)
	}

	return nil
}

// GetByID retrieves a payment method by its ID. Returns nil without an
// error when no row exists.
func (r *paymentMethodRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.PaymentMethod, error) {
	var method model.PaymentMethod

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&method).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get payment method by ID",
			zap.String("payment_method_id", id.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get payment method: %w", err)
	}

	return &method, nil
}

// GetByOwner retrieves all payment methods of one owner, newest first
func (r *paymentMethodRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.PaymentMethod, error) {
	var methods []*model.PaymentMethod

	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&methods).Error

	if err != nil {
		r.logger.Error("Failed to list payment methods by owner",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}

	return methods, nil
}

// Search retrieves payment methods matching the composed filter, newest
// first, with the owner relation loaded for display.
func (r *paymentMethodRepository) Search(ctx context.Context, filter domainRepo.PaymentMethodFilter) ([]*model.PaymentMethod, error) {
	if filter.OwnerIDs != nil && len(filter.OwnerIDs) == 0 {
		// An explicit but empty owner set can match nothing.
		return []*model.PaymentMethod{}, nil
	}

	query := r.db.WithContext(ctx).Preload("Owner")

	if len(filter.OwnerIDs) > 0 {
		query = query.Where("owner_id IN ?", filter.OwnerIDs)
	}
	if filter.PaymentType != "" {
		query = query.Where("payment_type = ?", filter.PaymentType)
	}
	if filter.BankName != "" {
		query = query.Where("bank_name ILIKE ?", contains(filter.BankName))
	}
	if filter.IFSCCode != "" {
		query = query.Where("ifsc_code ILIKE ?", contains(filter.IFSCCode))
	}
	if filter.PaytmNumber != "" {
		query = query.Where("paytm_number ILIKE ?", contains(filter.PaytmNumber))
	}
	if filter.UPIID != "" {
		query = query.Where("upi_id ILIKE ?", contains(filter.UPIID))
	}
	if filter.PaypalEmail != "" {
		query = query.Where("paypal_email ILIKE ?", contains(filter.PaypalEmail))
	}
	if filter.USDTAddress != "" {
		query = query.Where("usdt_address ILIKE ?", contains(filter.USDTAddress))
	}

	var methods []*model.PaymentMethod
	if err := query.Order("created_at DESC").Find(&methods).Error; err != nil {
		r.logger.Error("Failed to search payment methods", zap.Error(err))
		return nil, fmt.Errorf("failed to search payment methods: %w", err)
	}

	return methods, nil
}

// Update writes every column of the payment method, including cleared
// ones, so a type transition persists its blanked fields.
func (r *paymentMethodRepository) Update(ctx context.Context, method *model.PaymentMethod) error {
	if err := r.db.WithContext(ctx).Save(method).Error; err != nil {
		r.logger.Error("Failed to update payment method",
			zap.String("payment_method_id", method.ID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to update payment method: %w", err)
	}

	return nil
}

// Delete removes a payment method permanently
func (r *paymentMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PaymentMethod{}).Error

	if err != nil {
		r.logger.Error("Failed to delete payment method",
			zap.String("payment_method_id", id.String()),
			zap.Error(err))
		return fmt.Errorf("failed to delete payment method: %w", err)
	}

	return nil
}

func contains(fragment string) string {
	return "%" + fragment + "%"
}
