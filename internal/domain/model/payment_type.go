package model

import (
	domainErrors "github.com/flowpaylabs/paymethod-service/internal/domain/errors"
)

// PaymentType identifies how a user collects payouts. The set is closed;
// adding a variant means extending requiredFieldsByType as well.
type PaymentType string

const (
	PaymentTypeBank   PaymentType = "Bank"
	PaymentTypePaytm  PaymentType = "Paytm"
	PaymentTypeUPI    PaymentType = "UPI"
	PaymentTypePayPal PaymentType = "PayPal"
	PaymentTypeUSDT   PaymentType = "USDT"
)

// Field names as they appear in API payloads and admin search criteria.
const (
	FieldIFSCCode          = "ifscCode"
	FieldBranchName        = "branchName"
	FieldBankName          = "bankName"
	FieldAccountNumber     = "accountNumber"
	FieldAccountHolderName = "accountHolderName"
	FieldPaytmNumber       = "paytmNumber"
	FieldUPIID             = "upiId"
	FieldPaypalEmail       = "paypalEmail"
	FieldUSDTAddress       = "usdtAddress"
)

var paymentTypes = []PaymentType{
	PaymentTypeBank,
	PaymentTypePaytm,
	PaymentTypeUPI,
	PaymentTypePayPal,
	PaymentTypeUSDT,
}

var requiredFieldsByType = map[PaymentType][]string{
	PaymentTypeBank:   {FieldIFSCCode, FieldBranchName, FieldBankName, FieldAccountNumber, FieldAccountHolderName},
	PaymentTypePaytm:  {FieldPaytmNumber},
	PaymentTypeUPI:    {FieldUPIID},
	PaymentTypePayPal: {FieldPaypalEmail},
	PaymentTypeUSDT:   {FieldUSDTAddress},
}

// AllPaymentTypes returns the supported payment types in a stable,
// display-ready order.
func AllPaymentTypes() []PaymentType {
	types := make([]PaymentType, len(paymentTypes))
	copy(types, paymentTypes)
	return types
}

// RequiredFields returns the field set a payment type must carry, in
// registry order.
func RequiredFields(t PaymentType) ([]string, error) {
	fields, ok := requiredFieldsByType[t]
	if !ok {
		return nil, &domainErrors.UnknownPaymentTypeError{Type: string(t)}
	}
	out := make([]string, len(fields))
	copy(out, fields)
	return out, nil
}
