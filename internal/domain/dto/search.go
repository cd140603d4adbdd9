package dto

import (
	"github.com/flowpaylabs/paymethod-service/internal/domain/entity"
	"github.com/flowpaylabs/paymethod-service/internal/domain/model"
)

// SearchCriteria is the sparse admin filter set. Only non-empty keys are
// applied; every applied key narrows the result (logical AND). Username
// matches the owner's username, everything else matches the payment
// method itself.
type SearchCriteria struct {
	Username    string
	PaymentType string
	BankName    string
	IFSCCode    string
	PaytmNumber string
	UPIID       string
	PaypalEmail string
	USDTAddress string

	// Pagination, when set, is applied as a slice over the already
	// filtered and ordered result.
	Pagination *entity.PaginationParams
}

// OwnerInfo is the only owner data exposed on admin search results.
type OwnerInfo struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AdminPaymentMethod is a payment method annotated with its owner for
// admin display.
type AdminPaymentMethod struct {
	*model.PaymentMethod
	Owner OwnerInfo `json:"owner"`
}
