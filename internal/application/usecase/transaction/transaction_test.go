// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"sort"
	"strings"
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

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[uuid.UUID]*entity.Company)}
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

func (r *fakeCompanyRepo) ExistsByName(_ context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	for _, company := range r.companies {
		if company.UserID == userID && company.ID != excludeID && strings.EqualFold(company.Name, name) {
			return true, nil
		}
	}
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

// fakeTransactionRepo stores transactions in memory and recomputes company
// totals through the same aggregation the real repositories use.
type fakeTransactionRepo struct {
	companyRepo  *fakeCompanyRepo
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepo(companyRepo *fakeCompanyRepo) *fakeTransactionRepo {
	return &fakeTransactionRepo{
		companyRepo:  companyRepo,
		transactions: make(map[uuid.UUID]*entity.Transaction),
	}
}

func (r *fakeTransactionRepo) recompute(ctx context.Context, companyID uuid.UUID) (ledger.CompanyTotals, error) {
	txns, _ := r.FindByCompany(ctx, companyID)
	totals := ledger.ComputeCompanyTotals(txns)
	if err := r.companyRepo.UpdateTotals(ctx, companyID, totals); err != nil {
		return ledger.CompanyTotals{}, err
	}
	return totals, nil
}

func (r *fakeTransactionRepo) CreateAndRecompute(ctx context.Context, txn *entity.Transaction) (*ledger.CompanyTotals, error) {
	r.transactions[txn.ID] = txn
	totals, err := r.recompute(ctx, txn.CompanyID)
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *fakeTransactionRepo) UpdateAndRecompute(ctx context.Context, txn *entity.Transaction, previousCompanyID uuid.UUID) error {
	r.transactions[txn.ID] = txn
	if _, err := r.recompute(ctx, txn.CompanyID); err != nil {
		return err
	}
	if previousCompanyID != txn.CompanyID {
		if _, err := r.recompute(ctx, previousCompanyID); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeTransactionRepo) DeleteAndRecompute(ctx context.Context, id uuid.UUID) error {
	txn, ok := r.transactions[id]
	if !ok {
		return domainerror.ErrTransactionNotFound
	}
	delete(r.transactions, id)
	_, err := r.recompute(ctx, txn.CompanyID)
	return err
}

func (r *fakeTransactionRepo) RecomputeCompanyTotals(ctx context.Context, companyID uuid.UUID) (ledger.CompanyTotals, error) {
	return r.recompute(ctx, companyID)
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txn, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return txn, nil
}

func (r *fakeTransactionRepo) FindByCompany(_ context.Context, companyID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, txn := range r.transactions {
		if txn.CompanyID == companyID {
			out = append(out, txn)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeTransactionRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, txn := range r.transactions {
		if txn.UserID == userID {
			out = append(out, txn)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	txns, _ := r.FindByUser(ctx, filter.UserID)
	var out []*entity.Transaction
	for _, txn := range txns {
		if filter.CompanyID != nil && txn.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.Type != nil && txn.Type != *filter.Type {
			continue
		}
		out = append(out, txn)
	}
	return out, nil
}

var _ adapter.TransactionRepository = (*fakeTransactionRepo)(nil)

func setupRepos(t *testing.T, userID uuid.UUID, name string) (*fakeCompanyRepo, *fakeTransactionRepo, *entity.Company) {
	t.Helper()
	companyRepo := newFakeCompanyRepo()
	txnRepo := newFakeTransactionRepo(companyRepo)
	company := entity.NewCompany(userID, name, "", "")
	companyRepo.companies[company.ID] = company
	return companyRepo, txnRepo, company
}

func amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestCreateTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("purchase updates company totals", func(t *testing.T) {
		companyRepo, txnRepo, company := setupRepos(t, userID, "Acme")
		uc := NewCreateTransactionUseCase(txnRepo, companyRepo)

		out, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			CompanyID:   company.ID,
			Type:        entity.TransactionTypePurchase,
			Description: "Steel rods",
			Amount:      amount(t, "1500.50"),
			Date:        date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Transaction.CompanyName != "Acme" {
			t.Errorf("expected company name snapshot, got %q", out.Transaction.CompanyName)
		}
		if !company.TotalBought.Equal(amount(t, "1500.50")) {
			t.Errorf("expected total bought 1500.50, got %s", company.TotalBought)
		}
		if !company.RemainingAmount.Equal(amount(t, "1500.50")) {
			t.Errorf("expected remaining 1500.50, got %s", company.RemainingAmount)
		}
		if company.LastTransactionDate == nil || !company.LastTransactionDate.Equal(date) {
			t.Errorf("expected last transaction date %v, got %v", date, company.LastTransactionDate)
		}
	})

	t.Run("blank description is auto-filled", func(t *testing.T) {
		companyRepo, txnRepo, company := setupRepos(t, userID, "Acme")
		uc := NewCreateTransactionUseCase(txnRepo, companyRepo)

		out, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:    userID,
			CompanyID: company.ID,
			Type:      entity.TransactionTypePurchase,
			Amount:    amount(t, "100"),
			Date:      date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Transaction.Description != "purchase - Acme" {
			t.Errorf("expected auto description, got %q", out.Transaction.Description)
		}
	})

	t.Run("payment capped at remaining amount", func(t *testing.T) {
		companyRepo, txnRepo, company := setupRepos(t, userID, "Acme")
		uc := NewCreateTransactionUseCase(txnRepo, companyRepo)

		if _, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:    userID,
			CompanyID: company.ID,
			Type:      entity.TransactionTypePurchase,
			Amount:    amount(t, "500"),
			Date:      date,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:    userID,
			CompanyID: company.ID,
			Type:      entity.TransactionTypePayment,
			Amount:    amount(t, "500.01"),
			Date:      date,
		})
		if !errors.Is(err, domainerror.ErrPaymentExceedsBalance) {
			t.Fatalf("expected ErrPaymentExceedsBalance, got %v", err)
		}
		// Rejected before any write: only the purchase exists.
		if len(txnRepo.transactions) != 1 {
			t.Errorf("expected 1 stored transaction, got %d", len(txnRepo.transactions))
		}
		if !company.RemainingAmount.Equal(amount(t, "500")) {
			t.Errorf("expected remaining 500, got %s", company.RemainingAmount)
		}
	})

	t.Run("payment equal to remaining settles the company", func(t *testing.T) {
		companyRepo, txnRepo, company := setupRepos(t, userID, "Acme")
		uc := NewCreateTransactionUseCase(txnRepo, companyRepo)

		if _, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:    userID,
			CompanyID: company.ID,
			Type:      entity.TransactionTypePurchase,
			Amount:    amount(t, "1000"),
			Date:      date,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        userID,
			CompanyID:     company.ID,
			Type:          entity.TransactionTypePayment,
			Amount:        amount(t, "1000"),
			Date:          date,
			PaymentMethod: entity.PaymentMethodUPI,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !company.IsSettled() {
			t.Errorf("expected settled company, got remaining %s", company.RemainingAmount)
		}
	})

	t.Run("field validation", func(t *testing.T) {
		companyRepo, txnRepo, company := setupRepos(t, userID, "Acme")
		uc := NewCreateTransactionUseCase(txnRepo, companyRepo)

		cases := []struct {
			name  string
			input CreateTransactionInput
			want  error
		}{
			{
				name: "invalid type",
				input: CreateTransactionInput{
					UserID: userID, CompanyID: company.ID,
					Type: "refund", Amount: amount(t, "10"), Date: date,
				},
				want: domainerror.ErrInvalidTransactionType,
			},
			{
				name: "zero amount",
				input: CreateTransactionInput{
					UserID: userID, CompanyID: company.ID,
					Type: entity.TransactionTypePurchase, Amount: decimal.Zero, Date: date,
				},
				want: domainerror.ErrInvalidTransactionAmount,
			},
			{
				name: "negative amount",
				input: CreateTransactionInput{
					UserID: userID, CompanyID: company.ID,
					Type: entity.TransactionTypePurchase, Amount: amount(t, "-5"), Date: date,
				},
				want: domainerror.ErrInvalidTransactionAmount,
			},
			{
				name: "missing date",
				input: CreateTransactionInput{
					UserID: userID, CompanyID: company.ID,
					Type: entity.TransactionTypePurchase, Amount: amount(t, "10"),
				},
				want: domainerror.ErrInvalidTransactionDate,
			},
			{
				name: "invalid payment method",
				input: CreateTransactionInput{
					UserID: userID, CompanyID: company.ID,
					Type: entity.TransactionTypePurchase, Amount: amount(t, "10"), Date: date,
					PaymentMethod: "crypto",
				},
				want: domainerror.ErrInvalidPaymentMethod,
			},
			{
				name: "unknown company",
				input: CreateTransactionInput{
					UserID: userID, CompanyID: uuid.New(),
					Type: entity.TransactionTypePurchase, Amount: amount(t, "10"), Date: date,
				},
				want: domainerror.ErrCompanyNotFoundForTransaction,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tc.input)
				if !errors.Is(err, tc.want) {
					t.Errorf("expected %v, got %v", tc.want, err)
				}
			})
		}
		if len(txnRepo.transactions) != 0 {
			t.Errorf("expected no stored transactions, got %d", len(txnRepo.transactions))
		}
	})

	t.Run("rejects another user's company", func(t *testing.T) {
		companyRepo, txnRepo, company := setupRepos(t, userID, "Acme")
		uc := NewCreateTransactionUseCase(txnRepo, companyRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:    uuid.New(),
			CompanyID: company.ID,
			Type:      entity.TransactionTypePurchase,
			Amount:    amount(t, "10"),
			Date:      date,
		})
		if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyTransaction) {
			t.Errorf("expected ErrNotAuthorizedToModifyTransaction, got %v", err)
		}
	})
}

func TestUpdateTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("amount change recomputes totals", func(t *testing.T) {
		companyRepo, txnRepo, company := setupRepos(t, userID, "Acme")
		create := NewCreateTransactionUseCase(txnRepo, companyRepo)
		update := NewUpdateTransactionUseCase(txnRepo, companyRepo)

		created, err := create.Execute(ctx, CreateTransactionInput{
			UserID: userID, CompanyID: company.ID,
			Type: entity.TransactionTypePurchase, Amount: amount(t, "500"), Date: date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := update.Execute(ctx, UpdateTransactionInput{
			TransactionID: created.Transaction.ID,
			UserID:        userID,
			CompanyID:     company.ID,
			Type:          entity.TransactionTypePurchase,
			Description:   "adjusted",
			Amount:        amount(t, "750"),
			Date:          date,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !company.TotalBought.Equal(amount(t, "750")) {
			t.Errorf("expected total bought 750, got %s", company.TotalBought)
		}
	})

	t.Run("moving between companies recomputes both", func(t *testing.T) {
		companyRepo, txnRepo, first := setupRepos(t, userID, "First")
		second := entity.NewCompany(userID, "Second", "", "")
		companyRepo.companies[second.ID] = second

		create := NewCreateTransactionUseCase(txnRepo, companyRepo)
		update := NewUpdateTransactionUseCase(txnRepo, companyRepo)

		created, err := create.Execute(ctx, CreateTransactionInput{
			UserID: userID, CompanyID: first.ID,
			Type: entity.TransactionTypePurchase, Amount: amount(t, "300"), Date: date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := update.Execute(ctx, UpdateTransactionInput{
			TransactionID: created.Transaction.ID,
			UserID:        userID,
			CompanyID:     second.ID,
			Type:          entity.TransactionTypePurchase,
			Amount:        amount(t, "300"),
			Date:          date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !first.TotalBought.IsZero() {
			t.Errorf("expected old company zeroed, got %s", first.TotalBought)
		}
		if !second.TotalBought.Equal(amount(t, "300")) {
			t.Errorf("expected new company total 300, got %s", second.TotalBought)
		}
		if out.Transaction.CompanyName != "Second" {
			t.Errorf("expected new company snapshot, got %q", out.Transaction.CompanyName)
		}
	})

	t.Run("payment cap ignores the record being replaced", func(t *testing.T) {
		companyRepo, txnRepo, company := setupRepos(t, userID, "Acme")
		create := NewCreateTransactionUseCase(txnRepo, companyRepo)
		update := NewUpdateTransactionUseCase(txnRepo, companyRepo)

		if _, err := create.Execute(ctx, CreateTransactionInput{
			UserID: userID, CompanyID: company.ID,
			Type: entity.TransactionTypePurchase, Amount: amount(t, "1000"), Date: date,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		payment, err := create.Execute(ctx, CreateTransactionInput{
			UserID: userID, CompanyID: company.ID,
			Type: entity.TransactionTypePayment, Amount: amount(t, "400"), Date: date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Remaining is 600, but raising the existing 400 payment to 1000
		// is still within the purchase total.
		if _, err := update.Execute(ctx, UpdateTransactionInput{
			TransactionID: payment.Transaction.ID,
			UserID:        userID,
			CompanyID:     company.ID,
			Type:          entity.TransactionTypePayment,
			Amount:        amount(t, "1000"),
			Date:          date,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !company.IsSettled() {
			t.Errorf("expected settled company, got remaining %s", company.RemainingAmount)
		}

		// Beyond the purchase total it is rejected.
		_, err = update.Execute(ctx, UpdateTransactionInput{
			TransactionID: payment.Transaction.ID,
			UserID:        userID,
			CompanyID:     company.ID,
			Type:          entity.TransactionTypePayment,
			Amount:        amount(t, "1000.01"),
			Date:          date,
		})
		if !errors.Is(err, domainerror.ErrPaymentExceedsBalance) {
			t.Errorf("expected ErrPaymentExceedsBalance, got %v", err)
		}
	})

	t.Run("rejects another user's transaction", func(t *testing.T) {
		companyRepo, txnRepo, company := setupRepos(t, userID, "Acme")
		create := NewCreateTransactionUseCase(txnRepo, companyRepo)
		update := NewUpdateTransactionUseCase(txnRepo, companyRepo)

		created, err := create.Execute(ctx, CreateTransactionInput{
			UserID: userID, CompanyID: company.ID,
			Type: entity.TransactionTypePurchase, Amount: amount(t, "100"), Date: date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = update.Execute(ctx, UpdateTransactionInput{
			TransactionID: created.Transaction.ID,
			UserID:        uuid.New(),
			CompanyID:     company.ID,
			Type:          entity.TransactionTypePurchase,
			Amount:        amount(t, "100"),
			Date:          date,
		})
		if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyTransaction) {
			t.Errorf("expected ErrNotAuthorizedToModifyTransaction, got %v", err)
		}
	})
}

func TestDeleteTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("deletion recomputes totals but keeps the company", func(t *testing.T) {
		companyRepo, txnRepo, company := setupRepos(t, userID, "Acme")
		create := NewCreateTransactionUseCase(txnRepo, companyRepo)
		del := NewDeleteTransactionUseCase(txnRepo)

		created, err := create.Execute(ctx, CreateTransactionInput{
			UserID: userID, CompanyID: company.ID,
			Type: entity.TransactionTypePurchase, Amount: amount(t, "250"), Date: date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := del.Execute(ctx, DeleteTransactionInput{
			TransactionID: created.Transaction.ID,
			UserID:        userID,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !company.TotalBought.IsZero() {
			t.Errorf("expected zeroed totals, got %s", company.TotalBought)
		}
		if company.LastTransactionDate != nil {
			t.Errorf("expected nil last transaction date, got %v", company.LastTransactionDate)
		}
		if _, ok := companyRepo.companies[company.ID]; !ok {
			t.Error("deleting a transaction must never delete its company")
		}
	})

	t.Run("missing transaction", func(t *testing.T) {
		companyRepo, txnRepo, _ := setupRepos(t, userID, "Acme")
		_ = companyRepo
		del := NewDeleteTransactionUseCase(txnRepo)

		_, err := del.Execute(ctx, DeleteTransactionInput{TransactionID: uuid.New(), UserID: userID})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestExportTransactionsUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("transactions export has header plus one row per transaction", func(t *testing.T) {
		companyRepo, txnRepo, company := setupRepos(t, userID, "Acme Traders")
		create := NewCreateTransactionUseCase(txnRepo, companyRepo)
		export := NewExportTransactionsUseCase(txnRepo, companyRepo)

		for _, amt := range []string{"100.5", "200", "49.99"} {
			if _, err := create.Execute(ctx, CreateTransactionInput{
				UserID: userID, CompanyID: company.ID,
				Type: entity.TransactionTypePurchase, Amount: amount(t, amt), Date: date,
			}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		out, err := export.Execute(ctx, ExportTransactionsInput{
			UserID:    userID,
			CompanyID: &company.ID,
			Format:    ExportFormatTransactions,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimRight(string(out.Content), "\n"), "\n")
		if len(lines) != 4 {
			t.Fatalf("expected 4 lines (header + 3 rows), got %d: %q", len(lines), lines)
		}
		if lines[0] != "Date,Type,Description,Amount,Payment Method,Paid By" {
			t.Errorf("unexpected header: %q", lines[0])
		}
		if !strings.Contains(string(out.Content), "100.50") {
			t.Error("expected amounts rendered with two decimals")
		}
		if !strings.HasPrefix(out.Filename, "acme-traders-transactions-") || !strings.HasSuffix(out.Filename, ".csv") {
			t.Errorf("unexpected filename: %q", out.Filename)
		}
	})

	t.Run("payments export covers all companies", func(t *testing.T) {
		companyRepo, txnRepo, first := setupRepos(t, userID, "First")
		second := entity.NewCompany(userID, "Second", "", "")
		companyRepo.companies[second.ID] = second

		create := NewCreateTransactionUseCase(txnRepo, companyRepo)
		export := NewExportTransactionsUseCase(txnRepo, companyRepo)

		for _, c := range []*entity.Company{first, second} {
			if _, err := create.Execute(ctx, CreateTransactionInput{
				UserID: userID, CompanyID: c.ID,
				Type: entity.TransactionTypePurchase, Amount: amount(t, "300"), Date: date,
			}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := create.Execute(ctx, CreateTransactionInput{
				UserID: userID, CompanyID: c.ID,
				Type: entity.TransactionTypePayment, Amount: amount(t, "120"), Date: date,
				PaymentMethod: entity.PaymentMethodCash,
			}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		out, err := export.Execute(ctx, ExportTransactionsInput{
			UserID: userID,
			Format: ExportFormatPayments,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimRight(string(out.Content), "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines (header + 2 payments), got %d: %q", len(lines), lines)
		}
		if !strings.HasPrefix(lines[0], "Company,Bill Description,Total Amount,Paid Amount") {
			t.Errorf("unexpected header: %q", lines[0])
		}
		if out.Filename[:len("payments-all-")] != "payments-all-" {
			t.Errorf("unexpected filename: %q", out.Filename)
		}
	})
}
