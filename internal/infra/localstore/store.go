// Package localstore implements the single-user embedded store: every
// repository interface backed by one JSON document on disk. It exists so the
// API can run without PostgreSQL; all records belong to the nil user.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-ledger/backend/internal/application/adapter"
	"github.com/business-ledger/backend/internal/domain/entity"
	domainerror "github.com/business-ledger/backend/internal/domain/error"
	"github.com/business-ledger/backend/internal/domain/ledger"
)

// Storage keys inside the document, one per entity kind.
const (
	keyCompanies    = "ledger_companies"
	keyTransactions = "ledger_transactions"
	keySettings     = "ledger_settings"
)

type companyRecord struct {
	ID                  uuid.UUID       `json:"id"`
	UserID              uuid.UUID       `json:"user_id"`
	Name                string          `json:"name"`
	Phone               string          `json:"phone,omitempty"`
	Address             string          `json:"address,omitempty"`
	TotalBought         decimal.Decimal `json:"total_bought"`
	TotalPaid           decimal.Decimal `json:"total_paid"`
	RemainingAmount     decimal.Decimal `json:"remaining_amount"`
	LastTransactionDate *time.Time      `json:"last_transaction_date,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

type transactionRecord struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	CompanyID       uuid.UUID       `json:"company_id"`
	CompanyName     string          `json:"company_name"`
	Type            string          `json:"type"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	PaidBy          string          `json:"paid_by,omitempty"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type settingsRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	User1Name string    `json:"user1_name"`
	User2Name string    `json:"user2_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type document map[string]json.RawMessage

// Store is the embedded JSON-document store. The repository interfaces are
// exposed as views (Companies, Transactions, Settings) that share one mutex
// and one document; every mutation is flushed to disk before it returns, and
// a failed flush rolls the in-memory document back.
type Store struct {
	mu   sync.RWMutex
	path string

	companies    []*companyRecord
	transactions []*transactionRecord
	settings     []*settingsRecord
}

// New opens the store at path, loading the existing document when present.
func New(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.load(); err != nil {
		return nil, fmt.Errorf("failed to load local store: %w", err)
	}
	return s, nil
}

// Companies returns the company repository view of the store.
func (s *Store) Companies() adapter.CompanyRepository {
	return companyStore{s}
}

// Transactions returns the transaction repository view of the store.
func (s *Store) Transactions() adapter.TransactionRepository {
	return transactionStore{s}
}

// Settings returns the settings repository view of the store.
func (s *Store) Settings() adapter.SettingsRepository {
	return settingsStore{s}
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("corrupt store file %s: %w", s.path, err)
	}

	if raw, ok := doc[keyCompanies]; ok {
		if err := json.Unmarshal(raw, &s.companies); err != nil {
			return fmt.Errorf("corrupt %s: %w", keyCompanies, err)
		}
	}
	if raw, ok := doc[keyTransactions]; ok {
		if err := json.Unmarshal(raw, &s.transactions); err != nil {
			return fmt.Errorf("corrupt %s: %w", keyTransactions, err)
		}
	}
	if raw, ok := doc[keySettings]; ok {
		if err := json.Unmarshal(raw, &s.settings); err != nil {
			return fmt.Errorf("corrupt %s: %w", keySettings, err)
		}
	}
	return nil
}

// flush writes the whole document atomically (temp file + rename). Callers
// must hold the write lock.
func (s *Store) flush() error {
	doc := document{}

	companies, err := json.Marshal(s.companies)
	if err != nil {
		return err
	}
	transactions, err := json.Marshal(s.transactions)
	if err != nil {
		return err
	}
	settings, err := json.Marshal(s.settings)
	if err != nil {
		return err
	}
	doc[keyCompanies] = companies
	doc[keyTransactions] = transactions
	doc[keySettings] = settings

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".ledger-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

type storeState struct {
	companies    []*companyRecord
	transactions []*transactionRecord
	settings     []*settingsRecord
}

// snapshot deep-copies the in-memory document so a failed mutation can be
// rolled back. Callers must hold the write lock.
func (s *Store) snapshot() storeState {
	state := storeState{
		companies:    make([]*companyRecord, len(s.companies)),
		transactions: make([]*transactionRecord, len(s.transactions)),
		settings:     make([]*settingsRecord, len(s.settings)),
	}
	for i, record := range s.companies {
		cp := *record
		state.companies[i] = &cp
	}
	for i, record := range s.transactions {
		cp := *record
		state.transactions[i] = &cp
	}
	for i, record := range s.settings {
		cp := *record
		state.settings[i] = &cp
	}
	return state
}

func (s *Store) restore(state storeState) {
	s.companies = state.companies
	s.transactions = state.transactions
	s.settings = state.settings
}

// commit flushes the document to disk. When the write fails the in-memory
// state is restored to the snapshot, so a later successful flush cannot
// persist the failed mutation. Callers must hold the write lock.
func (s *Store) commit(state storeState) error {
	if err := s.flush(); err != nil {
		s.restore(state)
		return err
	}
	return nil
}

// companyStore is the adapter.CompanyRepository view.
type companyStore struct {
	s *Store
}

var _ adapter.CompanyRepository = companyStore{}

func (c companyStore) Create(_ context.Context, company *entity.Company) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	snap := c.s.snapshot()
	c.s.companies = append(c.s.companies, companyToRecord(company))
	return c.s.commit(snap)
}

func (c companyStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Company, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	record := c.s.findCompany(id)
	if record == nil {
		return nil, domainerror.ErrCompanyNotFound
	}
	return companyToEntity(record), nil
}

func (c companyStore) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Company, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	var out []*entity.Company
	for _, record := range c.s.companies {
		if record.UserID == userID {
			out = append(out, companyToEntity(record))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (c companyStore) ExistsByName(_ context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	for _, record := range c.s.companies {
		if record.UserID == userID && record.ID != excludeID && strings.EqualFold(record.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (c companyStore) Update(_ context.Context, company *entity.Company) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	record := c.s.findCompany(company.ID)
	if record == nil {
		return domainerror.ErrCompanyNotFound
	}
	snap := c.s.snapshot()
	record.Name = company.Name
	record.Phone = company.Phone
	record.Address = company.Address
	record.UpdatedAt = company.UpdatedAt
	return c.s.commit(snap)
}

func (c companyStore) UpdateTotals(_ context.Context, id uuid.UUID, totals ledger.CompanyTotals) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	snap := c.s.snapshot()
	if err := c.s.applyTotals(id, totals); err != nil {
		return err
	}
	return c.s.commit(snap)
}

func (c companyStore) DeleteWithTransactions(_ context.Context, id uuid.UUID) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if c.s.findCompany(id) == nil {
		return domainerror.ErrCompanyNotFound
	}
	snap := c.s.snapshot()

	companies := c.s.companies[:0]
	for _, record := range c.s.companies {
		if record.ID != id {
			companies = append(companies, record)
		}
	}
	c.s.companies = companies

	transactions := c.s.transactions[:0]
	for _, record := range c.s.transactions {
		if record.CompanyID != id {
			transactions = append(transactions, record)
		}
	}
	c.s.transactions = transactions

	return c.s.commit(snap)
}

// transactionStore is the adapter.TransactionRepository view.
type transactionStore struct {
	s *Store
}

var _ adapter.TransactionRepository = transactionStore{}

func (t transactionStore) CreateAndRecompute(_ context.Context, transaction *entity.Transaction) (*ledger.CompanyTotals, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	snap := t.s.snapshot()
	t.s.transactions = append(t.s.transactions, transactionToRecord(transaction))
	totals, err := t.s.recompute(transaction.CompanyID)
	if err != nil {
		t.s.restore(snap)
		return nil, err
	}
	if err := t.s.commit(snap); err != nil {
		return nil, err
	}
	return &totals, nil
}

func (t transactionStore) UpdateAndRecompute(_ context.Context, transaction *entity.Transaction, previousCompanyID uuid.UUID) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	idx := t.s.findTransactionIndex(transaction.ID)
	if idx < 0 {
		return domainerror.ErrTransactionNotFound
	}
	snap := t.s.snapshot()
	t.s.transactions[idx] = transactionToRecord(transaction)

	if _, err := t.s.recompute(transaction.CompanyID); err != nil {
		t.s.restore(snap)
		return err
	}
	if previousCompanyID != uuid.Nil && previousCompanyID != transaction.CompanyID {
		if _, err := t.s.recompute(previousCompanyID); err != nil {
			t.s.restore(snap)
			return err
		}
	}
	return t.s.commit(snap)
}

func (t transactionStore) DeleteAndRecompute(_ context.Context, id uuid.UUID) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	idx := t.s.findTransactionIndex(id)
	if idx < 0 {
		return domainerror.ErrTransactionNotFound
	}
	snap := t.s.snapshot()
	companyID := t.s.transactions[idx].CompanyID
	t.s.transactions = append(t.s.transactions[:idx], t.s.transactions[idx+1:]...)

	if _, err := t.s.recompute(companyID); err != nil {
		t.s.restore(snap)
		return err
	}
	return t.s.commit(snap)
}

func (t transactionStore) RecomputeCompanyTotals(_ context.Context, companyID uuid.UUID) (ledger.CompanyTotals, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	snap := t.s.snapshot()
	totals, err := t.s.recompute(companyID)
	if err != nil {
		return ledger.CompanyTotals{}, err
	}
	if err := t.s.commit(snap); err != nil {
		return ledger.CompanyTotals{}, err
	}
	return totals, nil
}

func (t transactionStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	idx := t.s.findTransactionIndex(id)
	if idx < 0 {
		return nil, domainerror.ErrTransactionNotFound
	}
	return transactionToEntity(t.s.transactions[idx]), nil
}

func (t transactionStore) FindByCompany(_ context.Context, companyID uuid.UUID) ([]*entity.Transaction, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	var out []*entity.Transaction
	for _, record := range t.s.transactions {
		if record.CompanyID == companyID {
			out = append(out, transactionToEntity(record))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (t transactionStore) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	var out []*entity.Transaction
	for _, record := range t.s.transactions {
		if record.UserID == userID {
			out = append(out, transactionToEntity(record))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (t transactionStore) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	search := strings.ToLower(filter.Search)

	var out []*entity.Transaction
	for _, record := range t.s.transactions {
		if record.UserID != filter.UserID {
			continue
		}
		if filter.CompanyID != nil && record.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.StartDate != nil && record.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && record.Date.After(*filter.EndDate) {
			continue
		}
		if filter.Type != nil && record.Type != string(*filter.Type) {
			continue
		}
		if filter.PaymentMethod != nil && record.PaymentMethod != string(*filter.PaymentMethod) {
			continue
		}
		if filter.PaidBy != "" && record.PaidBy != filter.PaidBy {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(record.Description), search) &&
			!strings.Contains(strings.ToLower(record.CompanyName), search) {
			continue
		}
		out = append(out, transactionToEntity(record))
	}
	sortNewestFirst(out)
	return out, nil
}

// settingsStore is the adapter.SettingsRepository view.
type settingsStore struct {
	s *Store
}

var _ adapter.SettingsRepository = settingsStore{}

func (st settingsStore) FindByUser(_ context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	for _, record := range st.s.settings {
		if record.UserID == userID {
			return settingsToEntity(record), nil
		}
	}
	return nil, domainerror.ErrSettingsNotFound
}

func (st settingsStore) Create(_ context.Context, settings *entity.UserSettings) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	snap := st.s.snapshot()
	st.s.settings = append(st.s.settings, settingsToRecord(settings))
	return st.s.commit(snap)
}

func (st settingsStore) Update(_ context.Context, settings *entity.UserSettings) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	for _, record := range st.s.settings {
		if record.UserID == settings.UserID {
			snap := st.s.snapshot()
			record.User1Name = settings.User1Name
			record.User2Name = settings.User2Name
			record.UpdatedAt = settings.UpdatedAt
			return st.s.commit(snap)
		}
	}
	return domainerror.ErrSettingsNotFound
}

// --- internals ---

func (s *Store) findCompany(id uuid.UUID) *companyRecord {
	for _, record := range s.companies {
		if record.ID == id {
			return record
		}
	}
	return nil
}

func (s *Store) findTransactionIndex(id uuid.UUID) int {
	for i, record := range s.transactions {
		if record.ID == id {
			return i
		}
	}
	return -1
}

// recompute derives and applies the totals of one company from its current
// transactions. Callers must hold the write lock and flush afterwards.
func (s *Store) recompute(companyID uuid.UUID) (ledger.CompanyTotals, error) {
	var txns []*entity.Transaction
	for _, record := range s.transactions {
		if record.CompanyID == companyID {
			txns = append(txns, transactionToEntity(record))
		}
	}
	totals := ledger.ComputeCompanyTotals(txns)
	if err := s.applyTotals(companyID, totals); err != nil {
		return ledger.CompanyTotals{}, err
	}
	return totals, nil
}

func (s *Store) applyTotals(companyID uuid.UUID, totals ledger.CompanyTotals) error {
	record := s.findCompany(companyID)
	if record == nil {
		return domainerror.ErrCompanyNotFound
	}
	record.TotalBought = totals.TotalBought
	record.TotalPaid = totals.TotalPaid
	record.RemainingAmount = totals.RemainingAmount
	record.LastTransactionDate = totals.LastTransactionDate
	return nil
}

func sortNewestFirst(transactions []*entity.Transaction) {
	sort.Slice(transactions, func(i, j int) bool {
		if transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
		}
		return transactions[i].Date.After(transactions[j].Date)
	})
}

func companyToRecord(c *entity.Company) *companyRecord {
	return &companyRecord{
		ID:                  c.ID,
		UserID:              c.UserID,
		Name:                c.Name,
		Phone:               c.Phone,
		Address:             c.Address,
		TotalBought:         c.TotalBought,
		TotalPaid:           c.TotalPaid,
		RemainingAmount:     c.RemainingAmount,
		LastTransactionDate: c.LastTransactionDate,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func companyToEntity(r *companyRecord) *entity.Company {
	return &entity.Company{
		ID:                  r.ID,
		UserID:              r.UserID,
		Name:                r.Name,
		Phone:               r.Phone,
		Address:             r.Address,
		TotalBought:         r.TotalBought,
		TotalPaid:           r.TotalPaid,
		RemainingAmount:     r.RemainingAmount,
		LastTransactionDate: r.LastTransactionDate,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func transactionToRecord(t *entity.Transaction) *transactionRecord {
	return &transactionRecord{
		ID:              t.ID,
		UserID:          t.UserID,
		CompanyID:       t.CompanyID,
		CompanyName:     t.CompanyName,
		Type:            string(t.Type),
		Description:     t.Description,
		Amount:          t.Amount,
		Date:            t.Date,
		PaymentMethod:   string(t.PaymentMethod),
		PaidBy:          t.PaidBy,
		ReferenceNumber: t.ReferenceNumber,
		CreatedAt:       t.CreatedAt,
	}
}

func transactionToEntity(r *transactionRecord) *entity.Transaction {
	return &entity.Transaction{
		ID:              r.ID,
		UserID:          r.UserID,
		CompanyID:       r.CompanyID,
		CompanyName:     r.CompanyName,
		Type:            entity.TransactionType(r.Type),
		Description:     r.Description,
		Amount:          r.Amount,
		Date:            r.Date,
		PaymentMethod:   entity.PaymentMethod(r.PaymentMethod),
		PaidBy:          r.PaidBy,
		ReferenceNumber: r.ReferenceNumber,
		CreatedAt:       r.CreatedAt,
	}
}

func settingsToRecord(s *entity.UserSettings) *settingsRecord {
	return &settingsRecord{
		ID:        s.ID,
		UserID:    s.UserID,
		User1Name: s.User1Name,
		User2Name: s.User2Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func settingsToEntity(r *settingsRecord) *entity.UserSettings {
	return &entity.UserSettings{
		ID:        r.ID,
		UserID:    r.UserID,
		User1Name: r.User1Name,
		User2Name: r.User2Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
