// Package company contains company-related use cases.
package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/business-ledger/backend/internal/application/adapter"
	"github.com/business-ledger/backend/internal/domain/entity"
	domainerror "github.com/business-ledger/backend/internal/domain/error"
)

// GetCompanyInput represents the input for fetching one company.
type GetCompanyInput struct {
	CompanyID uuid.UUID
	UserID    uuid.UUID
}

// GetCompanyOutput represents the output of fetching one company.
type GetCompanyOutput struct {
	Company      *entity.Company
	Transactions []*entity.Transaction
}

// GetCompanyUseCase fetches a company together with its transaction history.
type GetCompanyUseCase struct {
	companyRepo     adapter.CompanyRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetCompanyUseCase creates a new GetCompanyUseCase instance.
func NewGetCompanyUseCase(
	companyRepo adapter.CompanyRepository,
	transactionRepo adapter.TransactionRepository,
) *GetCompanyUseCase {
	return &GetCompanyUseCase{
		companyRepo:     companyRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute fetches the company and its transactions.
func (uc *GetCompanyUseCase) Execute(ctx context.Context, input GetCompanyInput) (*GetCompanyOutput, error) {
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
			"not authorized to view this company",
			domainerror.ErrNotAuthorizedToModifyCompany,
		)
	}

	transactions, err := uc.transactionRepo.FindByCompany(ctx, company.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &GetCompanyOutput{
		Company:      company,
		Transactions: transactions,
	}, nil
}
