// Package dashboard contains read-only aggregation use cases.
package dashboard

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-ledger/backend/internal/application/adapter"
	"github.com/business-ledger/backend/internal/domain/entity"
	domainerror "github.com/business-ledger/backend/internal/domain/error"
	"github.com/business-ledger/backend/internal/domain/ledger"
)

type fakeCompanyRepo struct {
	companies map[uuid.UUID]*entity.Company
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *entity.Company) error {
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Company, error) {
	company, ok := r.companies[id]
	if !ok {
		return nil, domainerror.ErrCompanyNotFound
	}
	return company, nil
}

func (r *fakeCompanyRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, company := range r.companies {
		if company.UserID == userID {
			out = append(out, company)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCompanyRepo) ExistsByName(context.Context, uuid.UUID, string, uuid.UUID) (bool, error) {
	return false, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, company *entity.Company) error {
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) UpdateTotals(_ context.Context, id uuid.UUID, totals ledger.CompanyTotals) error {
	company, ok := r.companies[id]
	if !ok {
		return domainerror.ErrCompanyNotFound
	}
	company.TotalBought = totals.TotalBought
	company.TotalPaid = totals.TotalPaid
	company.RemainingAmount = totals.RemainingAmount
	company.LastTransactionDate = totals.LastTransactionDate
	return nil
}

func (r *fakeCompanyRepo) DeleteWithTransactions(_ context.Context, id uuid.UUID) error {
	delete(r.companies, id)
	return nil
}

var _ adapter.CompanyRepository = (*fakeCompanyRepo)(nil)

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepo) CreateAndRecompute(context.Context, *entity.Transaction) (*ledger.CompanyTotals, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) UpdateAndRecompute(context.Context, *entity.Transaction, uuid.UUID) error {
	return nil
}

func (r *fakeTransactionRepo) DeleteAndRecompute(context.Context, uuid.UUID) error {
	return nil
}

func (r *fakeTransactionRepo) RecomputeCompanyTotals(context.Context, uuid.UUID) (ledger.CompanyTotals, error) {
	return ledger.CompanyTotals{}, nil
}

func (r *fakeTransactionRepo) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByCompany(_ context.Context, companyID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, txn := range r.transactions {
		if txn.CompanyID == companyID {
			out = append(out, txn)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, txn := range r.transactions {
		if txn.UserID == userID {
			out = append(out, txn)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return r.FindByUser(ctx, filter.UserID)
}

var _ adapter.TransactionRepository = (*fakeTransactionRepo)(nil)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func companyWithBalance(userID uuid.UUID, name string, bought, paid string) *entity.Company {
	company := entity.NewCompany(userID, name, "", "")
	company.TotalBought, _ = decimal.NewFromString(bought)
	company.TotalPaid, _ = decimal.NewFromString(paid)
	company.RemainingAmount = company.TotalBought.Sub(company.TotalPaid)
	return company
}

func TestGetOverviewUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := &fakeCompanyRepo{companies: make(map[uuid.UUID]*entity.Company)}
	owed := companyWithBalance(userID, "Owed", "500", "300")     // +200
	credit := companyWithBalance(userID, "Credit", "500", "550") // -50
	repo.companies[owed.ID] = owed
	repo.companies[credit.ID] = credit

	uc := NewGetOverviewUseCase(repo)
	out, err := uc.Execute(ctx, GetOverviewInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Companies) != 2 {
		t.Fatalf("expected 2 companies, got %d", len(out.Companies))
	}
	// Credit balances are excluded from outstanding, not subtracted.
	if !out.Portfolio.Outstanding.Equal(mustDecimal(t, "200")) {
		t.Errorf("expected outstanding 200, got %s", out.Portfolio.Outstanding)
	}
	if !out.Portfolio.TotalBought.Equal(mustDecimal(t, "1000")) {
		t.Errorf("expected total bought 1000, got %s", out.Portfolio.TotalBought)
	}
	if !out.Portfolio.TotalPaid.Equal(mustDecimal(t, "850")) {
		t.Errorf("expected total paid 850, got %s", out.Portfolio.TotalPaid)
	}
}

func TestPaymentSummaryUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	companyRepo := &fakeCompanyRepo{companies: make(map[uuid.UUID]*entity.Company)}
	paid := companyWithBalance(userID, "Paid Co", "1000", "400")
	unpaid := companyWithBalance(userID, "Unpaid Co", "700", "0")
	companyRepo.companies[paid.ID] = paid
	companyRepo.companies[unpaid.ID] = unpaid

	payment := entity.NewTransaction(userID, paid.ID, paid.Name, entity.TransactionTypePayment,
		"payment - Paid Co", mustDecimal(t, "400"), date)
	purchase := entity.NewTransaction(userID, unpaid.ID, unpaid.Name, entity.TransactionTypePurchase,
		"purchase - Unpaid Co", mustDecimal(t, "700"), date)
	txnRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{payment, purchase}}

	uc := NewPaymentSummaryUseCase(companyRepo, txnRepo)

	t.Run("companies without payments are omitted", func(t *testing.T) {
		out, err := uc.Execute(ctx, PaymentSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Summaries) != 1 {
			t.Fatalf("expected 1 summary, got %d", len(out.Summaries))
		}
		summary := out.Summaries[0]
		if summary.CompanyID != paid.ID {
			t.Errorf("expected summary for %s, got %s", paid.ID, summary.CompanyID)
		}
		if !summary.PaidAmount.Equal(mustDecimal(t, "400")) {
			t.Errorf("expected paid amount 400, got %s", summary.PaidAmount)
		}
		if len(summary.Payments) != 1 {
			t.Errorf("expected 1 payment, got %d", len(summary.Payments))
		}
	})

	t.Run("company filter", func(t *testing.T) {
		out, err := uc.Execute(ctx, PaymentSummaryInput{UserID: userID, CompanyID: &unpaid.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Summaries) != 0 {
			t.Errorf("expected no summaries, got %d", len(out.Summaries))
		}
	})
}
