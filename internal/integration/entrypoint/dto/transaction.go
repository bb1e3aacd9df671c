// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/business-ledger/backend/internal/domain/entity"
	"github.com/business-ledger/backend/internal/domain/ledger"
)

// CreateTransactionRequest represents the request body for transaction
// creation. Amount is a decimal string so values like 100.10 survive the trip.
type CreateTransactionRequest struct {
	CompanyID       string `json:"company_id" binding:"required"`
	Type            string `json:"type" binding:"required,oneof=purchase payment"`
	Description     string `json:"description,omitempty" binding:"omitempty,max=255"`
	Amount          string `json:"amount" binding:"required"`
	Date            string `json:"date" binding:"required"`
	PaymentMethod   string `json:"payment_method,omitempty" binding:"omitempty,oneof=cash card bank_transfer upi check other"`
	PaidBy          string `json:"paid_by,omitempty"`
	ReferenceNumber string `json:"reference_number,omitempty" binding:"omitempty,max=100"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Updates replace the whole record, so the same fields are required as on
// creation.
type UpdateTransactionRequest struct {
	CompanyID       string `json:"company_id" binding:"required"`
	Type            string `json:"type" binding:"required,oneof=purchase payment"`
	Description     string `json:"description,omitempty" binding:"omitempty,max=255"`
	Amount          string `json:"amount" binding:"required"`
	Date            string `json:"date" binding:"required"`
	PaymentMethod   string `json:"payment_method,omitempty" binding:"omitempty,oneof=cash card bank_transfer upi check other"`
	PaidBy          string `json:"paid_by,omitempty"`
	ReferenceNumber string `json:"reference_number,omitempty" binding:"omitempty,max=100"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	CompanyName     string    `json:"company_name"`
	Type            string    `json:"type"`
	Description     string    `json:"description"`
	Amount          string    `json:"amount"`
	Date            string    `json:"date"`
	PaymentMethod   string    `json:"payment_method,omitempty"`
	PaidBy          string    `json:"paid_by,omitempty"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// CompanyTotalsResponse represents the recomputed company totals returned
// alongside a transaction mutation.
type CompanyTotalsResponse struct {
	TotalBought         string  `json:"total_bought"`
	TotalPaid           string  `json:"total_paid"`
	RemainingAmount     string  `json:"remaining_amount"`
	LastTransactionDate *string `json:"last_transaction_date,omitempty"`
}

// CreateTransactionResponse represents the response for transaction creation.
type CreateTransactionResponse struct {
	Transaction   TransactionResponse   `json:"transaction"`
	CompanyTotals CompanyTotalsResponse `json:"company_totals"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              txn.ID.String(),
		CompanyID:       txn.CompanyID.String(),
		CompanyName:     txn.CompanyName,
		Type:            string(txn.Type),
		Description:     txn.Description,
		Amount:          txn.Amount.StringFixed(2),
		Date:            txn.Date.Format("2006-01-02"),
		PaymentMethod:   string(txn.PaymentMethod),
		PaidBy:          txn.PaidBy,
		ReferenceNumber: txn.ReferenceNumber,
		CreatedAt:       txn.CreatedAt,
	}
}

// ToTransactionListResponse converts a slice of transactions to a
// TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		responses[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{Transactions: responses}
}

// ToCompanyTotalsResponse converts ledger totals to a CompanyTotalsResponse DTO.
func ToCompanyTotalsResponse(totals *ledger.CompanyTotals) CompanyTotalsResponse {
	response := CompanyTotalsResponse{
		TotalBought:     totals.TotalBought.StringFixed(2),
		TotalPaid:       totals.TotalPaid.StringFixed(2),
		RemainingAmount: totals.RemainingAmount.StringFixed(2),
	}
	if totals.LastTransactionDate != nil {
		date := totals.LastTransactionDate.Format("2006-01-02")
		response.LastTransactionDate = &date
	}
	return response
}
