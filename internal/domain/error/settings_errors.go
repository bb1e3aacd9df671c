// Package error defines domain-specific errors for the business ledger.
package error

import "errors"

// Settings domain errors.
var (
	// ErrSettingsNotFound is returned when no settings record exists for the user.
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrSettingsNameRequired is returned when a user display name is blank.
	ErrSettingsNameRequired = errors.New("user name is required")

	// ErrSettingsNamesEqual is returned when the two user display names match.
	ErrSettingsNamesEqual = errors.New("user names must be different")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	ErrCodeSettingsNameRequired  SettingsErrorCode = "SET-010001"
	ErrCodeSettingsNamesEqual    SettingsErrorCode = "SET-010002"
	ErrCodeMissingSettingsFields SettingsErrorCode = "SET-010003"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
