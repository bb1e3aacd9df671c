// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (purchase or payment).
type TransactionType string

const (
	TransactionTypePurchase TransactionType = "purchase"
	TransactionTypePayment  TransactionType = "payment"
)

// PaymentMethod represents how a payment was made.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodOther        PaymentMethod = "other"
)

// Transaction represents a single purchase or payment against a company.
// CompanyName is a snapshot of the company name at creation time and is not
// kept in sync with later renames.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	CompanyID       uuid.UUID
	CompanyName     string
	Type            TransactionType
	Description     string
	Amount          decimal.Decimal // always positive; the type carries the sign
	Date            time.Time       // user-supplied business date
	PaymentMethod   PaymentMethod   // optional, empty when not provided
	PaidBy          string          // optional, one of the two configured user names
	ReferenceNumber string          // optional, payments only
	CreatedAt       time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	companyID uuid.UUID,
	companyName string,
	transactionType TransactionType,
	description string,
	amount decimal.Decimal,
	date time.Time,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		CompanyID:   companyID,
		CompanyName: companyName,
		Type:        transactionType,
		Description: description,
		Amount:      amount,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
}

// ValidTransactionType reports whether t is a known transaction type.
func ValidTransactionType(t TransactionType) bool {
	return t == TransactionTypePurchase || t == TransactionTypePayment
}

// ValidPaymentMethod reports whether m is a known payment method.
// The empty string is valid: the field is optional.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case "", PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer,
		PaymentMethodUPI, PaymentMethodCheck, PaymentMethodOther:
		return true
	}
	return false
}
