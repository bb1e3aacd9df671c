// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/business-ledger/backend/internal/domain/ledger"
)

// DashboardOverviewResponse represents the dashboard overview: portfolio-wide
// aggregates plus the per-company balance list.
type DashboardOverviewResponse struct {
	Outstanding string            `json:"outstanding"`
	TotalBought string            `json:"total_bought"`
	TotalPaid   string            `json:"total_paid"`
	Companies   []CompanyResponse `json:"companies"`
}

// PaymentSummaryResponse represents one company's payment history in the
// dashboard payment view.
type PaymentSummaryResponse struct {
	CompanyID       string                `json:"company_id"`
	CompanyName     string                `json:"company_name"`
	TotalBills      int                   `json:"total_bills"`
	TotalAmount     string                `json:"total_amount"`
	PaidAmount      string                `json:"paid_amount"`
	RemainingAmount string                `json:"remaining_amount"`
	Payments        []TransactionResponse `json:"payments"`
}

// PaymentSummaryListResponse represents the response for the payment summary
// endpoint.
type PaymentSummaryListResponse struct {
	Summaries []PaymentSummaryResponse `json:"summaries"`
}

// ToPaymentSummaryResponse converts a ledger PaymentSummary to its DTO.
func ToPaymentSummaryResponse(summary ledger.PaymentSummary) PaymentSummaryResponse {
	payments := make([]TransactionResponse, len(summary.Payments))
	for i, payment := range summary.Payments {
		payments[i] = ToTransactionResponse(payment)
	}

	return PaymentSummaryResponse{
		CompanyID:       summary.CompanyID.String(),
		CompanyName:     summary.CompanyName,
		TotalBills:      summary.TotalBills,
		TotalAmount:     summary.TotalAmount.StringFixed(2),
		PaidAmount:      summary.PaidAmount.StringFixed(2),
		RemainingAmount: summary.RemainingAmount.StringFixed(2),
		Payments:        payments,
	}
}

// ToPaymentSummaryListResponse converts a slice of payment summaries to a
// PaymentSummaryListResponse.
func ToPaymentSummaryListResponse(summaries []ledger.PaymentSummary) PaymentSummaryListResponse {
	responses := make([]PaymentSummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = ToPaymentSummaryResponse(summary)
	}
	return PaymentSummaryListResponse{Summaries: responses}
}
