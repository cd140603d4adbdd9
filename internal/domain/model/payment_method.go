package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is a payout destination registered by a user. Exactly the
// columns required by the current PaymentType carry values; the remaining
// type-specific columns stay empty and are cleared again on every type
// transition so stale data never leaks into the new type.
type PaymentMethod struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     uuid.UUID   `gorm:"column:owner_id;type:uuid;not null;index" json:"ownerId"`
	PaymentType PaymentType `gorm:"column:payment_type;size:16;not null;index" json:"paymentType"`

	// Bank
	IFSCCode          string `gorm:"column:ifsc_code;size:20" json:"ifscCode,omitempty"`
	BranchName        string `gorm:"column:branch_name;size:100" json:"branchName,omitempty"`
	BankName          string `gorm:"column:bank_name;size:100" json:"bankName,omitempty"`
	AccountNumber     string `gorm:"column:account_number;size:34" json:"accountNumber,omitempty"`
	AccountHolderName string `gorm:"column:account_holder_name;size:100" json:"accountHolderName,omitempty"`

	// Paytm
	PaytmNumber string `gorm:"column:paytm_number;size:15" json:"paytmNumber,omitempty"`

	// UPI
	UPIID string `gorm:"column:upi_id;size:100" json:"upiId,omitempty"`

	// PayPal
	PaypalEmail string `gorm:"column:paypal_email;size:254" json:"paypalEmail,omitempty"`

	// USDT
	USDTAddress string `gorm:"column:usdt_address;size:100" json:"usdtAddress,omitempty"`

	CreatedAt time.Time `gorm:"default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updatedAt"`

	// Relations
	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
}

// TableName specifies the table name for GORM
func (PaymentMethod) TableName() string {
	return "payment_methods"
}

// Field returns the value stored under an API field name. Unknown names
// read as empty.
func (m *PaymentMethod) Field(name string) string {
	switch name {
	case FieldIFSCCode:
		return m.IFSCCode
	case FieldBranchName:
		return m.BranchName
	case FieldBankName:
		return m.BankName
	case FieldAccountNumber:
		return m.AccountNumber
	case FieldAccountHolderName:
		return m.AccountHolderName
	case FieldPaytmNumber:
		return m.PaytmNumber
	case FieldUPIID:
		return m.UPIID
	case FieldPaypalEmail:
		return m.PaypalEmail
	case FieldUSDTAddress:
		return m.USDTAddress
	}
	return ""
}

// SetField stores a value under an API field name. Unknown names are
// silently ignored.
func (m *PaymentMethod) SetField(name, value string) {
	switch name {
	case FieldIFSCCode:
		m.IFSCCode = value
	case FieldBranchName:
		m.BranchName = value
	case FieldBankName:
		m.BankName = value
	case FieldAccountNumber:
		m.AccountNumber = value
	case FieldAccountHolderName:
		m.AccountHolderName = value
	case FieldPaytmNumber:
		m.PaytmNumber = value
	case FieldUPIID:
		m.UPIID = value
	case FieldPaypalEmail:
		m.PaypalEmail = value
	case FieldUSDTAddress:
		m.USDTAddress = value
	}
}

// ClearTypeFields blanks every type-specific column. Called before a type
// transition so no value from the old type survives under the new one.
func (m *PaymentMethod) ClearTypeFields() {
	m.IFSCCode = ""
	m.BranchName = ""
	m.BankName = ""
	m.AccountNumber = ""
	m.AccountHolderName = ""
	m.PaytmNumber = ""
	m.UPIID = ""
	m.PaypalEmail = ""
	m.USDTAddress = ""
}

// FieldValues returns the populated fields belonging to the current
// payment type. Columns from other types are never included, even if a
// stale value somehow survived in storage.
func (m *PaymentMethod) FieldValues() map[string]string {
	fields, err := RequiredFields(m.PaymentType)
	if err != nil {
		return nil
	}
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		if v := m.Field(f); v != "" {
			values[f] = v
		}
	}
	return values
}
