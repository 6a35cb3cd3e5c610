package shared

import (
	"errors"
	"fmt"
)

// Error codes shared across bounded contexts
const (
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidState    = "INVALID_STATE"
	CodeUnknownDesign   = "UNKNOWN_DESIGN"
	CodeUnknownTheme    = "UNKNOWN_THEME"
	CodePremiumRequired = "PREMIUM_REQUIRED"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Field names the offending input, if any
	Field string `json:"field,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Is reports whether target is a DomainError with the same code, so that
// errors.Is(err, ErrInvalidInput) matches every invalid input error.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewInvalidInputError creates an INVALID_INPUT error for a named field
func NewInvalidInputError(field, message string) *DomainError {
	return &DomainError{
		Code:    CodeInvalidInput,
		Message: message,
		Field:   field,
	}
}

// NewUnknownDesignError creates an UNKNOWN_DESIGN error
func NewUnknownDesignError(id string) *DomainError {
	return NewDomainError(CodeUnknownDesign, fmt.Sprintf("unknown template design %q", id))
}

// Common domain errors
var (
	ErrNotFound        = NewDomainError(CodeNotFound, "Resource not found")
	ErrInvalidInput    = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrInvalidState    = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
	ErrUnknownDesign   = NewDomainError(CodeUnknownDesign, "Unknown template design")
	ErrUnknownTheme    = NewDomainError(CodeUnknownTheme, "Unknown template theme")
	ErrPremiumRequired = NewDomainError(CodePremiumRequired, "This insight requires a premium subscription")
)

// IsInvalidInput reports whether err is an INVALID_INPUT domain error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
