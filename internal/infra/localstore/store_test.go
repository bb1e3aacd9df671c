package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-ledger/backend/internal/domain/entity"
	domainerror "github.com/business-ledger/backend/internal/domain/error"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.json")
	store, err := New(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return store, path
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	store, path := newTestStore(t)

	company := entity.NewCompany(uuid.Nil, "Acme", "9876543210", "12 Market Road")
	if err := store.Companies().Create(ctx, company); err != nil {
		t.Fatalf("failed to create company: %v", err)
	}

	txn := entity.NewTransaction(uuid.Nil, company.ID, company.Name,
		entity.TransactionTypePurchase, "Steel rods", mustDecimal(t, "1500.50"),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	if _, err := store.Transactions().CreateAndRecompute(ctx, txn); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}

	loaded, err := reopened.Companies().FindByID(ctx, company.ID)
	if err != nil {
		t.Fatalf("failed to find company after reopen: %v", err)
	}
	if !loaded.TotalBought.Equal(mustDecimal(t, "1500.50")) {
		t.Errorf("expected total bought 1500.50, got %s", loaded.TotalBought)
	}

	txns, err := reopened.Transactions().FindByCompany(ctx, company.ID)
	if err != nil {
		t.Fatalf("failed to find transactions after reopen: %v", err)
	}
	if len(txns) != 1 || txns[0].Description != "Steel rods" {
		t.Errorf("unexpected transactions after reopen: %+v", txns)
	}
}

func TestStoreDocumentUsesFixedKeys(t *testing.T) {
	ctx := context.Background()
	store, path := newTestStore(t)

	company := entity.NewCompany(uuid.Nil, "Acme", "", "")
	if err := store.Companies().Create(ctx, company); err != nil {
		t.Fatalf("failed to create company: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read store file: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("store file is not a JSON document: %v", err)
	}
	for _, key := range []string{"ledger_companies", "ledger_transactions", "ledger_settings"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("expected document key %q", key)
		}
	}
}

func TestStoreRecomputeOnMutation(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	company := entity.NewCompany(uuid.Nil, "Acme", "", "")
	if err := store.Companies().Create(ctx, company); err != nil {
		t.Fatalf("failed to create company: %v", err)
	}

	purchase := entity.NewTransaction(uuid.Nil, company.ID, company.Name,
		entity.TransactionTypePurchase, "purchase - Acme", mustDecimal(t, "1000"), date)
	totals, err := store.Transactions().CreateAndRecompute(ctx, purchase)
	if err != nil {
		t.Fatalf("failed to create purchase: %v", err)
	}
	if !totals.RemainingAmount.Equal(mustDecimal(t, "1000")) {
		t.Errorf("expected remaining 1000, got %s", totals.RemainingAmount)
	}

	payment := entity.NewTransaction(uuid.Nil, company.ID, company.Name,
		entity.TransactionTypePayment, "payment - Acme", mustDecimal(t, "1000"), date)
	totals, err = store.Transactions().CreateAndRecompute(ctx, payment)
	if err != nil {
		t.Fatalf("failed to create payment: %v", err)
	}
	if !totals.RemainingAmount.IsZero() {
		t.Errorf("expected settled balance, got %s", totals.RemainingAmount)
	}

	if err := store.Transactions().DeleteAndRecompute(ctx, payment.ID); err != nil {
		t.Fatalf("failed to delete payment: %v", err)
	}
	loaded, err := store.Companies().FindByID(ctx, company.ID)
	if err != nil {
		t.Fatalf("failed to find company: %v", err)
	}
	if !loaded.RemainingAmount.Equal(mustDecimal(t, "1000")) {
		t.Errorf("expected remaining 1000 after delete, got %s", loaded.RemainingAmount)
	}
}

func TestStoreRenameKeepsTransactionSnapshots(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	company := entity.NewCompany(uuid.Nil, "Acme Traders", "", "")
	if err := store.Companies().Create(ctx, company); err != nil {
		t.Fatalf("failed to create company: %v", err)
	}

	txn := entity.NewTransaction(uuid.Nil, company.ID, company.Name,
		entity.TransactionTypePurchase, "purchase - Acme Traders", mustDecimal(t, "100"), date)
	if _, err := store.Transactions().CreateAndRecompute(ctx, txn); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}

	company.Name = "Acme Global"
	if err := store.Companies().Update(ctx, company); err != nil {
		t.Fatalf("failed to rename company: %v", err)
	}

	loaded, err := store.Transactions().FindByID(ctx, txn.ID)
	if err != nil {
		t.Fatalf("failed to find transaction: %v", err)
	}
	if loaded.CompanyName != "Acme Traders" {
		t.Errorf("expected the recorded company name to survive the rename, got %q", loaded.CompanyName)
	}
}

func TestStoreFlushFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	store, path := newTestStore(t)
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	company := entity.NewCompany(uuid.Nil, "Acme", "", "")
	if err := store.Companies().Create(ctx, company); err != nil {
		t.Fatalf("failed to create company: %v", err)
	}

	// Replace the document with a directory so the rename step of the next
	// flush fails.
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove store file: %v", err)
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to block store path: %v", err)
	}

	txn := entity.NewTransaction(uuid.Nil, company.ID, company.Name,
		entity.TransactionTypePurchase, "purchase - Acme", mustDecimal(t, "100"), date)
	if _, err := store.Transactions().CreateAndRecompute(ctx, txn); err == nil {
		t.Fatal("expected the flush to fail")
	}

	txns, err := store.Transactions().FindByCompany(ctx, company.ID)
	if err != nil {
		t.Fatalf("failed to list transactions: %v", err)
	}
	if len(txns) != 0 {
		t.Errorf("expected the failed transaction to be rolled back, got %d", len(txns))
	}
	loaded, err := store.Companies().FindByID(ctx, company.ID)
	if err != nil {
		t.Fatalf("failed to find company: %v", err)
	}
	if !loaded.TotalBought.IsZero() {
		t.Errorf("expected totals to be rolled back, got %s", loaded.TotalBought)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to unblock store path: %v", err)
	}

	// A later successful flush must not resurrect the failed mutation.
	other := entity.NewCompany(uuid.Nil, "Other", "", "")
	if err := store.Companies().Create(ctx, other); err != nil {
		t.Fatalf("failed to create company after unblocking: %v", err)
	}
	reopened, err := New(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	persisted, err := reopened.Transactions().FindByCompany(ctx, company.ID)
	if err != nil {
		t.Fatalf("failed to list transactions after reopen: %v", err)
	}
	if len(persisted) != 0 {
		t.Errorf("expected no transactions on disk, got %d", len(persisted))
	}
	if _, err := reopened.Companies().FindByID(ctx, other.ID); err != nil {
		t.Errorf("expected the later mutation to persist: %v", err)
	}
}

func TestStoreCascadeDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	company := entity.NewCompany(uuid.Nil, "Acme", "", "")
	other := entity.NewCompany(uuid.Nil, "Other", "", "")
	if err := store.Companies().Create(ctx, company); err != nil {
		t.Fatalf("failed to create company: %v", err)
	}
	if err := store.Companies().Create(ctx, other); err != nil {
		t.Fatalf("failed to create company: %v", err)
	}

	for i := 0; i < 3; i++ {
		txn := entity.NewTransaction(uuid.Nil, company.ID, company.Name,
			entity.TransactionTypePurchase, "purchase - Acme", mustDecimal(t, "100"), date)
		if _, err := store.Transactions().CreateAndRecompute(ctx, txn); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}
	}
	kept := entity.NewTransaction(uuid.Nil, other.ID, other.Name,
		entity.TransactionTypePurchase, "purchase - Other", mustDecimal(t, "50"), date)
	if _, err := store.Transactions().CreateAndRecompute(ctx, kept); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}

	if err := store.Companies().DeleteWithTransactions(ctx, company.ID); err != nil {
		t.Fatalf("failed to delete company: %v", err)
	}

	if _, err := store.Companies().FindByID(ctx, company.ID); !errors.Is(err, domainerror.ErrCompanyNotFound) {
		t.Errorf("expected ErrCompanyNotFound, got %v", err)
	}
	txns, err := store.Transactions().FindByCompany(ctx, company.ID)
	if err != nil {
		t.Fatalf("failed to list transactions: %v", err)
	}
	if len(txns) != 0 {
		t.Errorf("expected no transactions for deleted company, got %d", len(txns))
	}
	remaining, err := store.Transactions().FindByCompany(ctx, other.ID)
	if err != nil {
		t.Fatalf("failed to list transactions: %v", err)
	}
	if len(remaining) != 1 {
		t.Errorf("expected the other company's transaction to survive, got %d", len(remaining))
	}
}

func TestStoreSettings(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	if _, err := store.Settings().FindByUser(ctx, uuid.Nil); !errors.Is(err, domainerror.ErrSettingsNotFound) {
		t.Errorf("expected ErrSettingsNotFound, got %v", err)
	}

	settings := entity.NewUserSettings(uuid.Nil)
	if err := store.Settings().Create(ctx, settings); err != nil {
		t.Fatalf("failed to create settings: %v", err)
	}

	settings.User1Name = "Ravi"
	settings.User2Name = "Meena"
	if err := store.Settings().Update(ctx, settings); err != nil {
		t.Fatalf("failed to update settings: %v", err)
	}

	loaded, err := store.Settings().FindByUser(ctx, uuid.Nil)
	if err != nil {
		t.Fatalf("failed to find settings: %v", err)
	}
	if loaded.User1Name != "Ravi" || loaded.User2Name != "Meena" {
		t.Errorf("unexpected settings: %+v", loaded)
	}
}
