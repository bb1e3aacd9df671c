// Package dashboard contains read-only aggregation use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/business-ledger/backend/internal/application/adapter"
	"github.com/business-ledger/backend/internal/domain/ledger"
)

// PaymentSummaryInput represents the input for the payments report.
type PaymentSummaryInput struct {
	UserID    uuid.UUID
	CompanyID *uuid.UUID
}

// PaymentSummaryOutput carries per-company payment summaries. Companies
// without payments are omitted.
type PaymentSummaryOutput struct {
	Summaries []ledger.PaymentSummary
}

// PaymentSummaryUseCase groups the user's payments by company.
type PaymentSummaryUseCase struct {
	companyRepo     adapter.CompanyRepository
	transactionRepo adapter.TransactionRepository
}

// NewPaymentSummaryUseCase creates a new PaymentSummaryUseCase instance.
func NewPaymentSummaryUseCase(
	companyRepo adapter.CompanyRepository,
	transactionRepo adapter.TransactionRepository,
) *PaymentSummaryUseCase {
	return &PaymentSummaryUseCase{
		companyRepo:     companyRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute builds the payments report.
func (uc *PaymentSummaryUseCase) Execute(ctx context.Context, input PaymentSummaryInput) (*PaymentSummaryOutput, error) {
	companies, err := uc.companyRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load companies: %w", err)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	summaries := ledger.SummarizePayments(companies, transactions)

	if input.CompanyID != nil {
		filtered := summaries[:0]
		for _, summary := range summaries {
			if summary.CompanyID == *input.CompanyID {
				filtered = append(filtered, summary)
			}
		}
		summaries = filtered
	}

	return &PaymentSummaryOutput{Summaries: summaries}, nil
}
