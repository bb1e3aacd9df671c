// Package ledger implements the balance aggregation logic: given a set of
// transactions it derives per-company totals and portfolio-wide totals. All
// functions are pure; callers are responsible for persisting the results.
package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-ledger/backend/internal/domain/entity"
)

// CompanyTotals holds the derived fields of a company.
type CompanyTotals struct {
	TotalBought         decimal.Decimal
	TotalPaid           decimal.Decimal
	RemainingAmount     decimal.Decimal
	LastTransactionDate *time.Time
}

// ComputeCompanyTotals derives the totals for one company from the full set of
// its transactions. Purchases sum into TotalBought, payments into TotalPaid,
// RemainingAmount is the difference. LastTransactionDate is the business date
// of the most recently created transaction; ties on CreatedAt are broken by ID
// so the result is deterministic regardless of input order.
func ComputeCompanyTotals(transactions []*entity.Transaction) CompanyTotals {
	totals := CompanyTotals{
		TotalBought: decimal.Zero,
		TotalPaid:   decimal.Zero,
	}

	var latest *entity.Transaction
	for _, txn := range transactions {
		switch txn.Type {
		case entity.TransactionTypePurchase:
			totals.TotalBought = totals.TotalBought.Add(txn.Amount)
		case entity.TransactionTypePayment:
			totals.TotalPaid = totals.TotalPaid.Add(txn.Amount)
		}

		if latest == nil || moreRecent(txn, latest) {
			latest = txn
		}
	}

	totals.RemainingAmount = totals.TotalBought.Sub(totals.TotalPaid)

	if latest != nil {
		date := latest.Date
		totals.LastTransactionDate = &date
	}

	return totals
}

// moreRecent reports whether a was created after b, using the ID as a
// deterministic tie-breaker for equal creation timestamps.
func moreRecent(a, b *entity.Transaction) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID.String() > b.ID.String()
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// PortfolioTotals holds cross-company aggregates.
type PortfolioTotals struct {
	// Outstanding sums only the positive remaining amounts: money the user
	// owes. Companies with a credit balance do not reduce it.
	Outstanding decimal.Decimal
	TotalBought decimal.Decimal
	TotalPaid   decimal.Decimal
}

// ComputePortfolioTotals derives portfolio-wide aggregates from the per-company
// totals.
func ComputePortfolioTotals(companies []*entity.Company) PortfolioTotals {
	totals := PortfolioTotals{
		Outstanding: decimal.Zero,
		TotalBought: decimal.Zero,
		TotalPaid:   decimal.Zero,
	}

	for _, c := range companies {
		if c.RemainingAmount.IsPositive() {
			totals.Outstanding = totals.Outstanding.Add(c.RemainingAmount)
		}
		totals.TotalBought = totals.TotalBought.Add(c.TotalBought)
		totals.TotalPaid = totals.TotalPaid.Add(c.TotalPaid)
	}

	return totals
}

// PaymentSummary is one row of the per-company payment report.
type PaymentSummary struct {
	CompanyID       uuid.UUID
	CompanyName     string
	TotalBills      int
	TotalAmount     decimal.Decimal
	PaidAmount      decimal.Decimal
	RemainingAmount decimal.Decimal // signed, not clamped at the company level
	Payments        []*entity.Transaction
}

// SummarizePayments groups payment transactions under their company and pairs
// them with the company's current totals. Grouping is by company ID; companies
// that happen to share a display name stay separate rows. Companies without
// payments are omitted. Rows are ordered by company name, then ID.
func SummarizePayments(companies []*entity.Company, transactions []*entity.Transaction) []PaymentSummary {
	byCompany := make(map[uuid.UUID][]*entity.Transaction)
	billCount := make(map[uuid.UUID]int)
	for _, txn := range transactions {
		switch txn.Type {
		case entity.TransactionTypePayment:
			byCompany[txn.CompanyID] = append(byCompany[txn.CompanyID], txn)
		case entity.TransactionTypePurchase:
			billCount[txn.CompanyID]++
		}
	}

	summaries := make([]PaymentSummary, 0, len(byCompany))
	for _, c := range companies {
		payments, ok := byCompany[c.ID]
		if !ok {
			continue
		}
		summaries = append(summaries, PaymentSummary{
			CompanyID:       c.ID,
			CompanyName:     c.Name,
			TotalBills:      billCount[c.ID],
			TotalAmount:     c.TotalBought,
			PaidAmount:      c.TotalPaid,
			RemainingAmount: c.RemainingAmount,
			Payments:        payments,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].CompanyName == summaries[j].CompanyName {
			return summaries[i].CompanyID.String() < summaries[j].CompanyID.String()
		}
		return summaries[i].CompanyName < summaries[j].CompanyName
	})

	return summaries
}
