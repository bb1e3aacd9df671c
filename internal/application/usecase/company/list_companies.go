// Package company contains company-related use cases.
package company

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/business-ledger/backend/internal/application/adapter"
	"github.com/business-ledger/backend/internal/domain/entity"
)

// ListCompaniesInput represents the input for listing companies.
type ListCompaniesInput struct {
	UserID uuid.UUID
}

// ListCompaniesOutput represents the output of listing companies.
type ListCompaniesOutput struct {
	Companies []*entity.Company
}

// ListCompaniesUseCase handles listing companies.
type ListCompaniesUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewListCompaniesUseCase creates a new ListCompaniesUseCase instance.
func NewListCompaniesUseCase(companyRepo adapter.CompanyRepository) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{
		companyRepo: companyRepo,
	}
}

// Execute lists the user's companies ordered by name.
func (uc *ListCompaniesUseCase) Execute(ctx context.Context, input ListCompaniesInput) (*ListCompaniesOutput, error) {
	companies, err := uc.companyRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return &ListCompaniesOutput{Companies: companies}, nil
}
