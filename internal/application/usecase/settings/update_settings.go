// Package settings contains user-settings use cases.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/business-ledger/backend/internal/application/adapter"
	"github.com/business-ledger/backend/internal/domain/entity"
	domainerror "github.com/business-ledger/backend/internal/domain/error"
)

// UpdateSettingsInput represents the input for updating user settings.
type UpdateSettingsInput struct {
	UserID    uuid.UUID
	User1Name string
	User2Name string
}

// UpdateSettingsOutput represents the output of updating user settings.
type UpdateSettingsOutput struct {
	Settings *entity.UserSettings
}

// UpdateSettingsUseCase updates the two display names. Both names must be
// non-empty after trimming and must differ.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute performs the settings update.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	user1 := strings.TrimSpace(input.User1Name)
	user2 := strings.TrimSpace(input.User2Name)

	if user1 == "" || user2 == "" {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeSettingsNameRequired,
			"both user names are required",
			domainerror.ErrSettingsNameRequired,
		)
	}
	if user1 == user2 {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeSettingsNamesEqual,
			"user names must be different",
			domainerror.ErrSettingsNamesEqual,
		)
	}

	settings, err := uc.settingsRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrSettingsNotFound) {
			return nil, fmt.Errorf("failed to find settings: %w", err)
		}
		settings = entity.NewUserSettings(input.UserID)
		settings.User1Name = user1
		settings.User2Name = user2
		if err := uc.settingsRepo.Create(ctx, settings); err != nil {
			return nil, fmt.Errorf("failed to create settings: %w", err)
		}
		return &UpdateSettingsOutput{Settings: settings}, nil
	}

	settings.User1Name = user1
	settings.User2Name = user2
	settings.UpdatedAt = time.Now().UTC()

	if err := uc.settingsRepo.Update(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return &UpdateSettingsOutput{Settings: settings}, nil
}
