// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/business-ledger/backend/internal/domain/entity"
	"github.com/business-ledger/backend/internal/domain/ledger"
)

// CompanyRepository defines the interface for company persistence operations.
type CompanyRepository interface {
	// Create creates a new company.
	Create(ctx context.Context, company *entity.Company) error

	// FindByID retrieves a company by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// FindByUser retrieves all companies for a given user, ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Company, error)

	// ExistsByName checks whether the user already has a company with the
	// given name, excluding the company identified by excludeID (pass
	// uuid.Nil when creating).
	ExistsByName(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)

	// Update updates a company's editable fields (name, phone, address).
	Update(ctx context.Context, company *entity.Company) error

	// UpdateTotals persists recomputed derived fields for a company.
	UpdateTotals(ctx context.Context, id uuid.UUID, totals ledger.CompanyTotals) error

	// DeleteWithTransactions deletes a company and all transactions that
	// reference it as one atomic unit.
	DeleteWithTransactions(ctx context.Context, id uuid.UUID) error
}
