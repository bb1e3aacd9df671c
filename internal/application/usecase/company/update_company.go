// Package company contains company-related use cases.
package company

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/business-ledger/backend/internal/application/adapter"
	"github.com/business-ledger/backend/internal/domain/entity"
	domainerror "github.com/business-ledger/backend/internal/domain/error"
)

// UpdateCompanyInput represents the input for company update. Renaming a
// company never rewrites the name snapshots on its existing transactions.
type UpdateCompanyInput struct {
	CompanyID uuid.UUID
	UserID    uuid.UUID
	Name      string
	Phone     string
	Address   string
}

// UpdateCompanyOutput represents the output of company update.
type UpdateCompanyOutput struct {
	Company *entity.Company
}

// UpdateCompanyUseCase handles company update logic.
type UpdateCompanyUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewUpdateCompanyUseCase creates a new UpdateCompanyUseCase instance.
func NewUpdateCompanyUseCase(companyRepo adapter.CompanyRepository) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{
		companyRepo: companyRepo,
	}
}

// Execute performs the company update.
func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, input UpdateCompanyInput) (*UpdateCompanyOutput, error) {
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
			"not authorized to modify this company",
			domainerror.ErrNotAuthorizedToModifyCompany,
		)
	}

	name, phone, address, err := validateCompanyFields(input.Name, input.Phone, input.Address)
	if err != nil {
		return nil, err
	}

	exists, err := uc.companyRepo.ExistsByName(ctx, input.UserID, name, company.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check company name: %w", err)
	}
	if exists {
		return nil, domainerror.NewCompanyError(
			domainerror.ErrCodeCompanyNameExists,
			"company with this name already exists",
			domainerror.ErrCompanyNameExists,
		)
	}

	company.Name = name
	company.Phone = phone
	company.Address = address
	company.UpdatedAt = time.Now().UTC()

	if err := uc.companyRepo.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return &UpdateCompanyOutput{Company: company}, nil
}
