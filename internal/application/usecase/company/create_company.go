// Package company contains company-related use cases.
package company

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/business-ledger/backend/internal/application/adapter"
	"github.com/business-ledger/backend/internal/domain/entity"
	domainerror "github.com/business-ledger/backend/internal/domain/error"
)

// CreateCompanyInput represents the input for company creation.
type CreateCompanyInput struct {
	UserID  uuid.UUID
	Name    string
	Phone   string
	Address string
}

// CreateCompanyOutput represents the output of company creation.
type CreateCompanyOutput struct {
	Company *entity.Company
}

// CreateCompanyUseCase handles company creation logic.
type CreateCompanyUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewCreateCompanyUseCase creates a new CreateCompanyUseCase instance.
func NewCreateCompanyUseCase(companyRepo adapter.CompanyRepository) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{
		companyRepo: companyRepo,
	}
}

// Execute performs the company creation.
func (uc *CreateCompanyUseCase) Execute(ctx context.Context, input CreateCompanyInput) (*CreateCompanyOutput, error) {
	name, phone, address, err := validateCompanyFields(input.Name, input.Phone, input.Address)
	if err != nil {
		return nil, err
	}

	// Company names are unique per user
	exists, err := uc.companyRepo.ExistsByName(ctx, input.UserID, name, uuid.Nil)
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

	company := entity.NewCompany(input.UserID, name, phone, address)

	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return &CreateCompanyOutput{Company: company}, nil
}

// validateCompanyFields trims and validates the editable company fields,
// returning the normalized values.
func validateCompanyFields(name, phone, address string) (string, string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", "", domainerror.NewCompanyError(
			domainerror.ErrCodeCompanyNameRequired,
			"company name is required",
			domainerror.ErrCompanyNameRequired,
		)
	}

	phone = strings.TrimSpace(phone)
	if phone != "" {
		digits := normalizePhone(phone)
		if len(digits) != 10 {
			return "", "", "", domainerror.NewCompanyError(
				domainerror.ErrCodeInvalidCompanyPhone,
				"phone number must be a valid 10-digit number",
				domainerror.ErrInvalidCompanyPhone,
			)
		}
		phone = digits
	}

	return name, phone, strings.TrimSpace(address), nil
}

// normalizePhone strips everything but digits.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
