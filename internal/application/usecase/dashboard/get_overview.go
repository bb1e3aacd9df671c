// Package dashboard contains read-only aggregation use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/business-ledger/backend/internal/application/adapter"
	"github.com/business-ledger/backend/internal/domain/entity"
	"github.com/business-ledger/backend/internal/domain/ledger"
)

// GetOverviewInput represents the input for the dashboard overview.
type GetOverviewInput struct {
	UserID uuid.UUID
}

// GetOverviewOutput carries the companies and the portfolio rollup.
type GetOverviewOutput struct {
	Companies []*entity.Company
	Portfolio ledger.PortfolioTotals
}

// GetOverviewUseCase builds the dashboard overview from stored company totals.
type GetOverviewUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(companyRepo adapter.CompanyRepository) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		companyRepo: companyRepo,
	}
}

// Execute builds the overview.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	companies, err := uc.companyRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load companies: %w", err)
	}

	return &GetOverviewOutput{
		Companies: companies,
		Portfolio: ledger.ComputePortfolioTotals(companies),
	}, nil
}
