// Package error defines domain-specific errors for the business ledger.
package error

import "errors"

// Company domain errors.
var (
	// ErrCompanyNotFound is returned when a company is not found in the system.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrCompanyNameExists is returned when attempting to create a company with an existing name.
	ErrCompanyNameExists = errors.New("company name already exists")

	// ErrCompanyNameRequired is returned when the company name is blank.
	ErrCompanyNameRequired = errors.New("company name is required")

	// ErrInvalidCompanyPhone is returned when the phone number is not a 10-digit number.
	ErrInvalidCompanyPhone = errors.New("phone number must be 10 digits")

	// ErrNotAuthorizedToModifyCompany is returned when user is not authorized to modify a company.
	ErrNotAuthorizedToModifyCompany = errors.New("not authorized to modify company")
)

// CompanyErrorCode defines error codes for company errors.
// Format: CMP-XXYYYY where XX is category and YYYY is specific error.
type CompanyErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCompanyNameRequired  CompanyErrorCode = "CMP-010001"
	ErrCodeInvalidCompanyPhone  CompanyErrorCode = "CMP-010002"
	ErrCodeCompanyNameExists    CompanyErrorCode = "CMP-010003"
	ErrCodeCompanyNotFound      CompanyErrorCode = "CMP-010004"
	ErrCodeNotAuthorizedCompany CompanyErrorCode = "CMP-010005"
	ErrCodeMissingCompanyFields CompanyErrorCode = "CMP-010006"
)

// CompanyError represents a company error with code and message.
type CompanyError struct {
	Code    CompanyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CompanyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CompanyError) Unwrap() error {
	return e.Err
}

// NewCompanyError creates a new CompanyError with the given code and message.
func NewCompanyError(code CompanyErrorCode, message string, err error) *CompanyError {
	return &CompanyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
