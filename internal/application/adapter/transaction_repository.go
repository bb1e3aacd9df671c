// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/business-ledger/backend/internal/domain/entity"
	"github.com/business-ledger/backend/internal/domain/ledger"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID        uuid.UUID
	CompanyID     *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	Type          *entity.TransactionType
	PaymentMethod *entity.PaymentMethod
	PaidBy        string
	Search        string // Case-insensitive match on description and company name
}

// TransactionRepository defines the interface for transaction persistence
// operations. Every mutating operation recomputes the affected company's
// derived totals inside the same atomic unit; the recompute itself is the
// pure ledger.ComputeCompanyTotals and is also exposed standalone via
// RecomputeCompanyTotals for verification and repair.
type TransactionRepository interface {
	// CreateAndRecompute stores a new transaction and persists the updated
	// totals of its company in one atomic unit.
	CreateAndRecompute(ctx context.Context, transaction *entity.Transaction) (*ledger.CompanyTotals, error)

	// UpdateAndRecompute replaces an existing transaction record and persists
	// updated totals for its company. When the transaction moved between
	// companies, previousCompanyID identifies the old one and both companies
	// are recomputed.
	UpdateAndRecompute(ctx context.Context, transaction *entity.Transaction, previousCompanyID uuid.UUID) error

	// DeleteAndRecompute removes a transaction and persists the updated
	// totals of the company it belonged to.
	DeleteAndRecompute(ctx context.Context, id uuid.UUID) error

	// RecomputeCompanyTotals recomputes and persists the derived fields of
	// one company from its current transaction set, returning the result.
	RecomputeCompanyTotals(ctx context.Context, companyID uuid.UUID) (ledger.CompanyTotals, error)

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByCompany retrieves all transactions for a company, newest first.
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Transaction, error)

	// FindByUser retrieves all transactions for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, newest first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)
}
