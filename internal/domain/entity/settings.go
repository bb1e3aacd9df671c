// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Default display names used until the user configures their own.
const (
	DefaultUser1Name = "User 1"
	DefaultUser2Name = "User 2"
)

// UserSettings holds the two display names shown in the "paid by" selector.
type UserSettings struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	User1Name string
	User2Name string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUserSettings creates settings with the default display names.
func NewUserSettings(userID uuid.UUID) *UserSettings {
	now := time.Now().UTC()
	return &UserSettings{
		ID:        uuid.New(),
		UserID:    userID,
		User1Name: DefaultUser1Name,
		User2Name: DefaultUser2Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
