// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/business-ledger/backend/internal/application/adapter"
	"github.com/business-ledger/backend/internal/domain/entity"
	domainerror "github.com/business-ledger/backend/internal/domain/error"
	"github.com/business-ledger/backend/internal/domain/ledger"
	"github.com/business-ledger/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository
// interface. Mutations and the recompute of the affected company's totals
// run inside one database transaction.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// CreateAndRecompute stores a new transaction and persists the updated totals
// of its company atomically.
func (r *transactionRepository) CreateAndRecompute(ctx context.Context, transaction *entity.Transaction) (*ledger.CompanyTotals, error) {
	var totals ledger.CompanyTotals
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		transactionModel := model.TransactionFromEntity(transaction)
		if err := tx.Create(transactionModel).Error; err != nil {
			return err
		}

		computed, err := recomputeCompanyTotals(tx, transaction.CompanyID)
		if err != nil {
			return err
		}
		totals = computed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

// UpdateAndRecompute replaces an existing transaction record and recomputes
// totals for its company, and for the previous company when it moved.
func (r *transactionRepository) UpdateAndRecompute(ctx context.Context, transaction *entity.Transaction, previousCompanyID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		transactionModel := model.TransactionFromEntity(transaction)
		result := tx.Model(&model.TransactionModel{}).
			Where("id = ?", transaction.ID).
			Updates(map[string]any{
				"company_id":       transactionModel.CompanyID,
				"company_name":     transactionModel.CompanyName,
				"type":             transactionModel.Type,
				"description":      transactionModel.Description,
				"amount":           transactionModel.Amount,
				"date":             transactionModel.Date,
				"payment_method":   transactionModel.PaymentMethod,
				"paid_by":          transactionModel.PaidBy,
				"reference_number": transactionModel.ReferenceNumber,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}

		if _, err := recomputeCompanyTotals(tx, transaction.CompanyID); err != nil {
			return err
		}
		if previousCompanyID != uuid.Nil && previousCompanyID != transaction.CompanyID {
			if _, err := recomputeCompanyTotals(tx, previousCompanyID); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteAndRecompute removes a transaction and recomputes the totals of the
// company it belonged to.
func (r *transactionRepository) DeleteAndRecompute(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var transactionModel model.TransactionModel
		if err := tx.Where("id = ?", id).First(&transactionModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrTransactionNotFound
			}
			return err
		}

		if err := tx.Delete(&model.TransactionModel{}, "id = ?", id).Error; err != nil {
			return err
		}

		_, err := recomputeCompanyTotals(tx, transactionModel.CompanyID)
		return err
	})
}

// RecomputeCompanyTotals recomputes and persists the derived fields of one
// company from its current transaction set.
func (r *transactionRepository) RecomputeCompanyTotals(ctx context.Context, companyID uuid.UUID) (ledger.CompanyTotals, error) {
	var totals ledger.CompanyTotals
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		computed, err := recomputeCompanyTotals(tx, companyID)
		if err != nil {
			return err
		}
		totals = computed
		return nil
	})
	return totals, err
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByCompany retrieves all transactions for a company, newest first.
func (r *transactionRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// FindByUser retrieves all transactions for a user, newest first.
func (r *transactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// FindByFilter retrieves transactions based on filter criteria.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{})

	query = query.Where("user_id = ?", filter.UserID)

	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.PaymentMethod != nil {
		query = query.Where("payment_method = ?", string(*filter.PaymentMethod))
	}
	if filter.PaidBy != "" {
		query = query.Where("paid_by = ?", filter.PaidBy)
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(description) LIKE ? OR LOWER(company_name) LIKE ?", searchPattern, searchPattern)
	}

	var transactionModels []model.TransactionModel
	result := query.
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

func toTransactionEntities(transactionModels []model.TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions
}

// recomputeCompanyTotals loads the company's full transaction set, derives
// the totals and writes them back, all on the given (possibly transactional)
// database handle.
func recomputeCompanyTotals(db *gorm.DB, companyID uuid.UUID) (ledger.CompanyTotals, error) {
	var transactionModels []model.TransactionModel
	if err := db.Where("company_id = ?", companyID).Find(&transactionModels).Error; err != nil {
		return ledger.CompanyTotals{}, err
	}

	totals := ledger.ComputeCompanyTotals(toTransactionEntities(transactionModels))

	if err := updateCompanyTotals(db, companyID, totals); err != nil {
		return ledger.CompanyTotals{}, err
	}
	return totals, nil
}
