// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/business-ledger/backend/internal/application/adapter"
	"github.com/business-ledger/backend/internal/domain/entity"
	domainerror "github.com/business-ledger/backend/internal/domain/error"
	"github.com/business-ledger/backend/internal/domain/ledger"
	"github.com/business-ledger/backend/internal/integration/persistence/model"
)

// companyRepository implements the adapter.CompanyRepository interface.
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository instance.
func NewCompanyRepository(db *gorm.DB) adapter.CompanyRepository {
	return &companyRepository{
		db: db,
	}
}

// Create creates a new company in the database.
func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	companyModel := model.CompanyFromEntity(company)
	result := r.db.WithContext(ctx).Create(companyModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a company by its ID.
func (r *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var companyModel model.CompanyModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&companyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCompanyNotFound
		}
		return nil, result.Error
	}
	return companyModel.ToEntity(), nil
}

// FindByUser retrieves all companies for a given user, ordered by name.
func (r *companyRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Company, error) {
	var companyModels []model.CompanyModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&companyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	companies := make([]*entity.Company, len(companyModels))
	for i, cm := range companyModels {
		companies[i] = cm.ToEntity()
	}
	return companies, nil
}

// ExistsByName checks whether the user already has a company with the given
// name. The comparison is case-insensitive.
func (r *companyRepository) ExistsByName(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&model.CompanyModel{}).
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name)
	if excludeID != uuid.Nil {
		query = query.Where("id != ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates a company's editable fields.
func (r *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	result := r.db.WithContext(ctx).
		Model(&model.CompanyModel{}).
		Where("id = ?", company.ID).
		Updates(map[string]any{
			"name":       company.Name,
			"phone":      company.Phone,
			"address":    company.Address,
			"updated_at": company.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCompanyNotFound
	}
	return nil
}

// UpdateTotals persists recomputed derived fields for a company.
func (r *companyRepository) UpdateTotals(ctx context.Context, id uuid.UUID, totals ledger.CompanyTotals) error {
	return updateCompanyTotals(r.db.WithContext(ctx), id, totals)
}

// DeleteWithTransactions deletes a company and all of its transactions in one
// database transaction.
func (r *companyRepository) DeleteWithTransactions(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", id).Delete(&model.TransactionModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.CompanyModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrCompanyNotFound
		}
		return nil
	})
}

// updateCompanyTotals writes the derived fields of one company. Shared with
// the transaction repository so recomputes inside its database transactions
// go through the same update.
func updateCompanyTotals(db *gorm.DB, id uuid.UUID, totals ledger.CompanyTotals) error {
	result := db.
		Model(&model.CompanyModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_bought":          totals.TotalBought,
			"total_paid":            totals.TotalPaid,
			"remaining_amount":      totals.RemainingAmount,
			"last_transaction_date": totals.LastTransactionDate,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCompanyNotFound
	}
	return nil
}
