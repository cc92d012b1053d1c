package domain

import "fmt"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a customer, its interests, or any
// advertisement match could not be found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with a formatted message.
func NewNotFoundErr(format string, args ...any) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: fmt.Sprintf(format, args...)},
	}
}

// ValidationErr represents an error when stored data or input is not usable,
// for instance interest records that carry no embedding vector.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with a formatted message.
func NewValidationErr(format string, args ...any) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: fmt.Sprintf(format, args...)},
	}
}
