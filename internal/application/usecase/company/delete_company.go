// Package company contains company-related use cases.
package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/business-ledger/backend/internal/application/adapter"
	domainerror "github.com/business-ledger/backend/internal/domain/error"
)

// DeleteCompanyInput represents the input for company deletion.
type DeleteCompanyInput struct {
	CompanyID uuid.UUID
	UserID    uuid.UUID
}

// DeleteCompanyOutput represents the output of company deletion.
type DeleteCompanyOutput struct {
	Success bool
}

// DeleteCompanyUseCase handles company deletion. Deleting a company cascades
// to every transaction referencing it.
type DeleteCompanyUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewDeleteCompanyUseCase creates a new DeleteCompanyUseCase instance.
func NewDeleteCompanyUseCase(companyRepo adapter.CompanyRepository) *DeleteCompanyUseCase {
	return &DeleteCompanyUseCase{
		companyRepo: companyRepo,
	}
}

// Execute performs the company deletion.
func (uc *DeleteCompanyUseCase) Execute(ctx context.Context, input DeleteCompanyInput) (*DeleteCompanyOutput, error) {
	company, err := uc.companyRepo.FindByID(ctx, input.CompanyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCompanyNotFound) {
			return nil, domainerror.NewCompanyError(
				domainerror.ErrCodeCompanyNotFound,
				"company not found",
				domainerror.ErrCompanyNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	if company.UserID != input.UserID {
		return nil, domainerror.NewCompanyError(
			domainerror.ErrCodeNotAuthorizedCompany,
			"not authorized to delete this company",
			domainerror.ErrNotAuthorizedToModifyCompany,
		)
	}

	if err := uc.companyRepo.DeleteWithTransactions(ctx, input.CompanyID); err != nil {
		return nil, fmt.Errorf("failed to delete company: %w", err)
	}

	return &DeleteCompanyOutput{Success: true}, nil
}
