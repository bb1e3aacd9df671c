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
	"github.com/business-ledger/backend/internal/domain/ledger"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
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

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction   *entity.Transaction
	CompanyTotals *ledger.CompanyTotals
}

// CreateTransactionUseCase handles transaction creation. A payment is capped
// at the company's remaining amount and rejected before any write.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	companyRepo     adapter.CompanyRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	companyRepo adapter.CompanyRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		companyRepo:     companyRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Type, input.Amount, input.Date, input.PaymentMethod); err != nil {
		return nil, err
	}

	company, err := uc.findAuthorizedCompany(ctx, input.CompanyID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Type == entity.TransactionTypePayment {
		if input.Amount.GreaterThan(company.RemainingAmount) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodePaymentExceedsBalance,
				fmt.Sprintf("payment amount cannot exceed remaining amount of %s", company.RemainingAmount.StringFixed(2)),
				domainerror.ErrPaymentExceedsBalance,
			)
		}
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = autoDescription(input.Type, company.Name)
	}

	txn := entity.NewTransaction(
		input.UserID,
		company.ID,
		company.Name,
		input.Type,
		description,
		input.Amount,
		input.Date,
	)
	txn.PaymentMethod = input.PaymentMethod
	txn.PaidBy = strings.TrimSpace(input.PaidBy)
	if input.Type == entity.TransactionTypePayment {
		txn.ReferenceNumber = strings.TrimSpace(input.ReferenceNumber)
	}

	totals, err := uc.transactionRepo.CreateAndRecompute(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction:   txn,
		CompanyTotals: totals,
	}, nil
}

func (uc *CreateTransactionUseCase) findAuthorizedCompany(ctx context.Context, companyID, userID uuid.UUID) (*entity.Company, error) {
	return findAuthorizedCompany(ctx, uc.companyRepo, companyID, userID)
}

// findAuthorizedCompany loads a company and checks ownership, translating
// failures into transaction-scoped errors.
func findAuthorizedCompany(ctx context.Context, repo adapter.CompanyRepository, companyID, userID uuid.UUID) (*entity.Company, error) {
	company, err := repo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCompanyNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCompanyNotFound,
				"company not found",
				domainerror.ErrCompanyNotFoundForTransaction,
			)
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	if company.UserID != userID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to record transactions for this company",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	return company, nil
}

// validateTransactionFields checks the field-level constraints shared by
// create and update.
func validateTransactionFields(
	txnType entity.TransactionType,
	amount decimal.Decimal,
	date time.Time,
	method entity.PaymentMethod,
) error {
	if !entity.ValidTransactionType(txnType) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be purchase or payment",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if !entity.ValidPaymentMethod(method) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"invalid payment method",
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	return nil
}

// autoDescription builds the default description used when none is provided.
func autoDescription(txnType entity.TransactionType, companyName string) string {
	return fmt.Sprintf("%s - %s", txnType, companyName)
}
