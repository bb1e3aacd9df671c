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
	"github.com/business-ledger/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// FindByUser retrieves the settings for a user.
func (r *settingsRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	var settingsModel model.UserSettingsModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSettingsNotFound
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// Create stores a new settings record.
func (r *settingsRepository) Create(ctx context.Context, settings *entity.UserSettings) error {
	settingsModel := model.UserSettingsFromEntity(settings)
	result := r.db.WithContext(ctx).Create(settingsModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Update replaces an existing settings record.
func (r *settingsRepository) Update(ctx context.Context, settings *entity.UserSettings) error {
	result := r.db.WithContext(ctx).
		Model(&model.UserSettingsModel{}).
		Where("user_id = ?", settings.UserID).
		Updates(map[string]any{
			"user1_name": settings.User1Name,
			"user2_name": settings.User2Name,
			"updated_at": settings.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSettingsNotFound
	}
	return nil
}
