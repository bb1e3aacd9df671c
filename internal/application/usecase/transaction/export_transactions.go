// Package transaction contains transaction-related use cases.
package transaction

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/business-ledger/backend/internal/application/adapter"
	"github.com/business-ledger/backend/internal/domain/entity"
	"github.com/business-ledger/backend/internal/domain/ledger"
)

// ExportFormat selects the CSV layout produced by ExportTransactionsUseCase.
type ExportFormat string

const (
	// ExportFormatTransactions is the per-company transaction history export.
	ExportFormatTransactions ExportFormat = "transactions"

	// ExportFormatPayments is the payments report export, optionally scoped
	// to one company.
	ExportFormatPayments ExportFormat = "payments"
)

// ExportTransactionsInput represents the input for a CSV export. CompanyID is
// required for the transactions format and optional for the payments format.
type ExportTransactionsInput struct {
	UserID    uuid.UUID
	CompanyID *uuid.UUID
	Format    ExportFormat
}

// ExportTransactionsOutput carries the rendered CSV and its suggested filename.
type ExportTransactionsOutput struct {
	Filename string
	Content  []byte
}

// ExportTransactionsUseCase renders transaction data as CSV.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	companyRepo     adapter.CompanyRepository
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	companyRepo adapter.CompanyRepository,
) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
		companyRepo:     companyRepo,
	}
}

// Execute renders the requested export.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	switch input.Format {
	case ExportFormatPayments:
		return uc.exportPayments(ctx, input)
	case ExportFormatTransactions, "":
		return uc.exportTransactions(ctx, input)
	default:
		return nil, fmt.Errorf("unknown export format %q", input.Format)
	}
}

func (uc *ExportTransactionsUseCase) exportTransactions(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	if input.CompanyID == nil {
		return nil, fmt.Errorf("company id is required for transaction export")
	}

	company, err := findAuthorizedCompany(ctx, uc.companyRepo, *input.CompanyID, input.UserID)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByCompany(ctx, company.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Date", "Type", "Description", "Amount", "Payment Method", "Paid By"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, txn := range transactions {
		record := []string{
			txn.Date.Format("2006-01-02"),
			string(txn.Type),
			txn.Description,
			txn.Amount.StringFixed(2),
			string(txn.PaymentMethod),
			txn.PaidBy,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render csv: %w", err)
	}

	filename := fmt.Sprintf("%s-transactions-%s.csv", slugify(company.Name), time.Now().UTC().Format("2006-01-02"))

	return &ExportTransactionsOutput{
		Filename: filename,
		Content:  buf.Bytes(),
	}, nil
}

func (uc *ExportTransactionsUseCase) exportPayments(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	scope := "all"

	var (
		companies    []*entity.Company
		transactions []*entity.Transaction
	)

	if input.CompanyID != nil {
		company, err := findAuthorizedCompany(ctx, uc.companyRepo, *input.CompanyID, input.UserID)
		if err != nil {
			return nil, err
		}
		txns, err := uc.transactionRepo.FindByCompany(ctx, company.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions: %w", err)
		}
		companies = []*entity.Company{company}
		transactions = txns
		scope = slugify(company.Name)
	} else {
		var err error
		companies, err = uc.companyRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load companies: %w", err)
		}
		transactions, err = uc.transactionRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions: %w", err)
		}
	}

	summaries := ledger.SummarizePayments(companies, transactions)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Company", "Bill Description", "Total Amount", "Paid Amount",
		"Remaining Amount", "Payment Date", "Payment Method", "Reference Number",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, summary := range summaries {
		for _, payment := range summary.Payments {
			record := []string{
				summary.CompanyName,
				payment.Description,
				summary.TotalAmount.StringFixed(2),
				payment.Amount.StringFixed(2),
				summary.RemainingAmount.StringFixed(2),
				payment.Date.Format("2006-01-02"),
				string(payment.PaymentMethod),
				payment.ReferenceNumber,
			}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render csv: %w", err)
	}

	filename := fmt.Sprintf("payments-%s-%s.csv", scope, time.Now().UTC().Format("2006-01-02"))

	return &ExportTransactionsOutput{
		Filename: filename,
		Content:  buf.Bytes(),
	}, nil
}

// slugify lowercases a name and collapses whitespace runs into single dashes
// so it is safe inside a filename.
func slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
