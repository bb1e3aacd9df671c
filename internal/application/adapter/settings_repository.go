// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/business-ledger/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for user settings persistence.
type SettingsRepository interface {
	// FindByUser retrieves the settings for a user. Returns
	// domainerror.ErrSettingsNotFound when none exist yet.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)

	// Create stores a new settings record.
	Create(ctx context.Context, settings *entity.UserSettings) error

	// Update replaces an existing settings record.
	Update(ctx context.Context, settings *entity.UserSettings) error
}
