package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-ledger/backend/internal/domain/entity"
)

func newTxn(companyID uuid.UUID, txnType entity.TransactionType, amount string, createdAt time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:        uuid.New(),
		CompanyID: companyID,
		Type:      txnType,
		Amount:    decimal.RequireFromString(amount),
		Date:      createdAt.Truncate(24 * time.Hour),
		CreatedAt: createdAt,
	}
}

func TestComputeCompanyTotals(t *testing.T) {
	companyID := uuid.New()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		transactions  []*entity.Transaction
		wantBought    string
		wantPaid      string
		wantRemaining string
	}{
		{
			name:          "empty set",
			transactions:  nil,
			wantBought:    "0",
			wantPaid:      "0",
			wantRemaining: "0",
		},
		{
			name: "purchases only",
			transactions: []*entity.Transaction{
				newTxn(companyID, entity.TransactionTypePurchase, "100.50", base),
				newTxn(companyID, entity.TransactionTypePurchase, "249.50", base.Add(time.Hour)),
			},
			wantBought:    "350",
			wantPaid:      "0",
			wantRemaining: "350",
		},
		{
			name: "zero sum is settled",
			transactions: []*entity.Transaction{
				newTxn(companyID, entity.TransactionTypePurchase, "1000", base),
				newTxn(companyID, entity.TransactionTypePayment, "1000", base.Add(time.Hour)),
			},
			wantBought:    "1000",
			wantPaid:      "1000",
			wantRemaining: "0",
		},
		{
			name: "overpayment yields negative remaining",
			transactions: []*entity.Transaction{
				newTxn(companyID, entity.TransactionTypePurchase, "500", base),
				newTxn(companyID, entity.TransactionTypePayment, "800", base.Add(time.Hour)),
			},
			wantBought:    "500",
			wantPaid:      "800",
			wantRemaining: "-300",
		},
		{
			name: "decimal amounts do not drift",
			transactions: []*entity.Transaction{
				newTxn(companyID, entity.TransactionTypePurchase, "0.10", base),
				newTxn(companyID, entity.TransactionTypePurchase, "0.20", base),
				newTxn(companyID, entity.TransactionTypePayment, "0.30", base),
			},
			wantBought:    "0.3",
			wantPaid:      "0.3",
			wantRemaining: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeCompanyTotals(tt.transactions)

			if got := totals.TotalBought.String(); got != tt.wantBought {
				t.Errorf("TotalBought = %s, want %s", got, tt.wantBought)
			}
			if got := totals.TotalPaid.String(); got != tt.wantPaid {
				t.Errorf("TotalPaid = %s, want %s", got, tt.wantPaid)
			}
			if got := totals.RemainingAmount.String(); got != tt.wantRemaining {
				t.Errorf("RemainingAmount = %s, want %s", got, tt.wantRemaining)
			}

			if !totals.RemainingAmount.Equal(totals.TotalBought.Sub(totals.TotalPaid)) {
				t.Error("invariant violated: remaining != bought - paid")
			}
		})
	}
}

func TestComputeCompanyTotalsIdempotent(t *testing.T) {
	companyID := uuid.New()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	transactions := []*entity.Transaction{
		newTxn(companyID, entity.TransactionTypePurchase, "123.45", base),
		newTxn(companyID, entity.TransactionTypePayment, "23.45", base.Add(time.Minute)),
		newTxn(companyID, entity.TransactionTypePurchase, "10", base.Add(2*time.Minute)),
	}

	first := ComputeCompanyTotals(transactions)
	second := ComputeCompanyTotals(transactions)

	if !first.TotalBought.Equal(second.TotalBought) ||
		!first.TotalPaid.Equal(second.TotalPaid) ||
		!first.RemainingAmount.Equal(second.RemainingAmount) {
		t.Errorf("recompute not idempotent: first %+v, second %+v", first, second)
	}
	if !first.LastTransactionDate.Equal(*second.LastTransactionDate) {
		t.Errorf("LastTransactionDate differs between runs: %v vs %v",
			first.LastTransactionDate, second.LastTransactionDate)
	}
}

func TestComputeCompanyTotalsLastTransactionDate(t *testing.T) {
	companyID := uuid.New()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	// The newest transaction by CreatedAt carries an older business date; the
	// business date of that newest record must still win.
	older := newTxn(companyID, entity.TransactionTypePurchase, "100", base)
	older.Date = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	newest := newTxn(companyID, entity.TransactionTypePayment, "50", base.Add(time.Hour))
	newest.Date = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	totals := ComputeCompanyTotals([]*entity.Transaction{older, newest})
	if totals.LastTransactionDate == nil || !totals.LastTransactionDate.Equal(newest.Date) {
		t.Errorf("LastTransactionDate = %v, want %v", totals.LastTransactionDate, newest.Date)
	}

	// Reversed input order must not change the result.
	reversed := ComputeCompanyTotals([]*entity.Transaction{newest, older})
	if !reversed.LastTransactionDate.Equal(*totals.LastTransactionDate) {
		t.Error("LastTransactionDate depends on input order")
	}
}

func TestComputeCompanyTotalsCreatedAtTieBrokenByID(t *testing.T) {
	companyID := uuid.New()
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	a := newTxn(companyID, entity.TransactionTypePurchase, "10", createdAt)
	b := newTxn(companyID, entity.TransactionTypePurchase, "20", createdAt)
	a.Date = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b.Date = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	winner := a
	if b.ID.String() > a.ID.String() {
		winner = b
	}

	forward := ComputeCompanyTotals([]*entity.Transaction{a, b})
	backward := ComputeCompanyTotals([]*entity.Transaction{b, a})

	if !forward.LastTransactionDate.Equal(winner.Date) {
		t.Errorf("tie-break picked %v, want %v", forward.LastTransactionDate, winner.Date)
	}
	if !forward.LastTransactionDate.Equal(*backward.LastTransactionDate) {
		t.Error("tie-break result depends on input order")
	}
}

func newCompany(name, remaining, bought, paid string) *entity.Company {
	return &entity.Company{
		ID:              uuid.New(),
		Name:            name,
		TotalBought:     decimal.RequireFromString(bought),
		TotalPaid:       decimal.RequireFromString(paid),
		RemainingAmount: decimal.RequireFromString(remaining),
	}
}

func TestComputePortfolioTotals(t *testing.T) {
	companies := []*entity.Company{
		newCompany("Acme Traders", "200", "500", "300"),
		newCompany("Bharat Supplies", "-50", "100", "150"),
	}

	totals := ComputePortfolioTotals(companies)

	// Credit balances are excluded from outstanding, not netted against it.
	if got := totals.Outstanding.String(); got != "200" {
		t.Errorf("Outstanding = %s, want 200", got)
	}
	if got := totals.TotalBought.String(); got != "600" {
		t.Errorf("TotalBought = %s, want 600", got)
	}
	if got := totals.TotalPaid.String(); got != "450" {
		t.Errorf("TotalPaid = %s, want 450", got)
	}
}

func TestComputePortfolioTotalsEmpty(t *testing.T) {
	totals := ComputePortfolioTotals(nil)
	if !totals.Outstanding.IsZero() || !totals.TotalBought.IsZero() || !totals.TotalPaid.IsZero() {
		t.Errorf("empty portfolio should have zero totals, got %+v", totals)
	}
}

func TestSummarizePayments(t *testing.T) {
	acme := newCompany("Acme Traders", "200", "500", "300")
	bharat := newCompany("Bharat Supplies", "100", "100", "0")
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	transactions := []*entity.Transaction{
		newTxn(acme.ID, entity.TransactionTypePurchase, "500", base),
		newTxn(acme.ID, entity.TransactionTypePayment, "100", base.Add(time.Hour)),
		newTxn(acme.ID, entity.TransactionTypePayment, "200", base.Add(2*time.Hour)),
		newTxn(bharat.ID, entity.TransactionTypePurchase, "100", base),
	}

	summaries := SummarizePayments([]*entity.Company{bharat, acme}, transactions)

	// Bharat has no payments and is omitted.
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}

	s := summaries[0]
	if s.CompanyID != acme.ID {
		t.Errorf("summary for wrong company: %s", s.CompanyName)
	}
	if s.TotalBills != 1 {
		t.Errorf("TotalBills = %d, want 1", s.TotalBills)
	}
	if len(s.Payments) != 2 {
		t.Errorf("Payments = %d, want 2", len(s.Payments))
	}
	if got := s.RemainingAmount.String(); got != "200" {
		t.Errorf("RemainingAmount = %s, want 200", got)
	}
}

func TestSummarizePaymentsGroupsByIDNotName(t *testing.T) {
	// Two distinct companies sharing a display name must not be merged.
	first := newCompany("Acme Traders", "100", "100", "0")
	second := newCompany("Acme Traders", "50", "100", "50")
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	transactions := []*entity.Transaction{
		newTxn(first.ID, entity.TransactionTypePayment, "10", base),
		newTxn(second.ID, entity.TransactionTypePayment, "50", base.Add(time.Hour)),
	}

	summaries := SummarizePayments([]*entity.Company{first, second}, transactions)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries for same-named companies, got %d", len(summaries))
	}
	if summaries[0].CompanyID == summaries[1].CompanyID {
		t.Error("summaries collapsed onto one company")
	}
}
