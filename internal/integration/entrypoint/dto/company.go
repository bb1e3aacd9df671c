// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/business-ledger/backend/internal/domain/entity"
)

// CreateCompanyRequest represents the request body for company creation.
type CreateCompanyRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty" binding:"omitempty,max=500"`
}

// UpdateCompanyRequest represents the request body for company update.
type UpdateCompanyRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty" binding:"omitempty,max=500"`
}

// CompanyResponse represents a single company in API responses. Monetary
// amounts are serialized as fixed two-decimal strings.
type CompanyResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Phone               string    `json:"phone"`
	Address             string    `json:"address"`
	TotalBought         string    `json:"total_bought"`
	TotalPaid           string    `json:"total_paid"`
	RemainingAmount     string    `json:"remaining_amount"`
	LastTransactionDate *string   `json:"last_transaction_date,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// CompanyListResponse represents the response for listing companies.
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// CompanyDetailResponse represents a company together with its transactions.
type CompanyDetailResponse struct {
	Company      CompanyResponse       `json:"company"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToCompanyResponse converts a domain Company entity to a CompanyResponse DTO.
func ToCompanyResponse(company *entity.Company) CompanyResponse {
	response := CompanyResponse{
		ID:              company.ID.String(),
		Name:            company.Name,
		Phone:           company.Phone,
		Address:         company.Address,
		TotalBought:     company.TotalBought.StringFixed(2),
		TotalPaid:       company.TotalPaid.StringFixed(2),
		RemainingAmount: company.RemainingAmount.StringFixed(2),
		CreatedAt:       company.CreatedAt,
		UpdatedAt:       company.UpdatedAt,
	}

	if company.LastTransactionDate != nil {
		date := company.LastTransactionDate.Format("2006-01-02")
		response.LastTransactionDate = &date
	}

	return response
}

// ToCompanyListResponse converts a slice of companies to a CompanyListResponse.
func ToCompanyListResponse(companies []*entity.Company) CompanyListResponse {
	responses := make([]CompanyResponse, len(companies))
	for i, company := range companies {
		responses[i] = ToCompanyResponse(company)
	}
	return CompanyListResponse{Companies: responses}
}
