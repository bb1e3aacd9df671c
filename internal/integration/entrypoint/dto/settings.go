// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/business-ledger/backend/internal/domain/entity"
)

// UpdateSettingsRequest represents the request body for settings update.
type UpdateSettingsRequest struct {
	User1Name string `json:"user1_name" binding:"required,min=1,max=100"`
	User2Name string `json:"user2_name" binding:"required,min=1,max=100"`
}

// SettingsResponse represents the user settings in API responses.
type SettingsResponse struct {
	User1Name string    `json:"user1_name"`
	User2Name string    `json:"user2_name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSettingsResponse converts a domain UserSettings entity to a
// SettingsResponse DTO.
func ToSettingsResponse(settings *entity.UserSettings) SettingsResponse {
	return SettingsResponse{
		User1Name: settings.User1Name,
		User2Name: settings.User2Name,
		UpdatedAt: settings.UpdatedAt,
	}
}
