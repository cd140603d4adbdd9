package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/flowpaylabs/paymethod-service/internal/domain/model"
)

// PaymentMethodFilter is a composed search predicate. String fragments
// are case-insensitive substring matches, PaymentType is an exact match.
// A nil OwnerIDs slice means no owner restriction; an empty non-nil
// slice matches nothing.
type PaymentMethodFilter struct {
	OwnerIDs    []uuid.UUID
	PaymentType model.PaymentType
	BankName    string
	IFSCCode    string
	PaytmNumber string
	UPIID       string
	PaypalEmail string
	USDTAddress string
}

type PaymentMethodRepository interface {
	Create(ctx context.Context, method *model.PaymentMethod) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.PaymentMethod, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.PaymentMethod, error)
	Search(ctx context.Context, filter PaymentMethodFilter) ([]*model.PaymentMethod, error)
	Update(ctx context.Context, method *model.PaymentMethod) error
	Delete(ctx context.Context, id uuid.UUID) error
}
