// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-ledger/backend/internal/application/adapter"
	"github.com/business-ledger/backend/internal/domain/entity"
	domainerror "github.com/business-ledger/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for a full-record transaction
// update.
type UpdateTransactionInput struct {
	TransactionID   uuid.UUID
	UserID          uuid.UUID
	CompanyID       uuid.UUID
	Type            entity.TransactionType
	Description     string
	Amount          decimal.Decimal
	Date            time.Time
	PaymentMethod   entity.PaymentMethod
	PaidBy          string
	ReferenceNumber string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction updates. When the transaction
// moves to another company, both companies' totals are recomputed.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	companyRepo     adapter.CompanyRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	companyRepo adapter.CompanyRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		companyRepo:     companyRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	existing, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if existing.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if err := validateTransactionFields(input.Type, input.Amount, input.Date, input.PaymentMethod); err != nil {
		return nil, err
	}

	company, err := findAuthorizedCompany(ctx, uc.companyRepo, input.CompanyID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Type == entity.TransactionTypePayment {
		// The cap is checked against the balance as it would be without the
		// record being replaced.
		remaining := remainingWithout(company, existing)
		if input.Amount.GreaterThan(remaining) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodePaymentExceedsBalance,
				fmt.Sprintf("payment amount cannot exceed remaining amount of %s", remaining.StringFixed(2)),
				domainerror.ErrPaymentExceedsBalance,
			)
		}
	}

	updated := *existing
	updated.CompanyID = company.ID
	if existing.CompanyID != company.ID {
		// Moving to another company takes that company's current name; the
		// original snapshot belongs to the old company.
		updated.CompanyName = company.Name
	}
	updated.Type = input.Type
	updated.Amount = input.Amount
	updated.Date = input.Date
	updated.PaymentMethod = input.PaymentMethod
	updated.PaidBy = strings.TrimSpace(input.PaidBy)

	updated.ReferenceNumber = ""
	if input.Type == entity.TransactionTypePayment {
		updated.ReferenceNumber = strings.TrimSpace(input.ReferenceNumber)
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = autoDescription(input.Type, updated.CompanyName)
	}
	updated.Description = description

	if err := uc.transactionRepo.UpdateAndRecompute(ctx, &updated, existing.CompanyID); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: &updated}, nil
}

// remainingWithout returns the company's remaining amount with the given
// transaction's contribution backed out, when it belongs to that company.
func remainingWithout(company *entity.Company, txn *entity.Transaction) decimal.Decimal {
	remaining := company.RemainingAmount
	if txn.CompanyID != company.ID {
		return remaining
	}
	if txn.Type == entity.TransactionTypePayment {
		return remaining.Add(txn.Amount)
	}
	return remaining.Sub(txn.Amount)
}
