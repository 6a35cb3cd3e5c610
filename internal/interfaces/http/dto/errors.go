package dto

import (
	"net/http"

	"github.com/invoicer/backend/internal/domain/shared"
)

// Error codes returned by the API. Format: ERR_<DESCRIPTION>
const (
	ErrCodeInternal        = "ERR_INTERNAL"
	ErrCodeValidation      = "ERR_VALIDATION"
	ErrCodeBadRequest      = "ERR_BAD_REQUEST"
	ErrCodeInvalidJSON     = "ERR_INVALID_JSON"
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"

	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"

	ErrCodeNotFound        = "ERR_NOT_FOUND"
	ErrCodeInvalidInput    = "ERR_INVALID_INPUT"
	ErrCodeInvalidState    = "ERR_INVALID_STATE"
	ErrCodeUnknownDesign   = "ERR_UNKNOWN_DESIGN"
	ErrCodeUnknownTheme    = "ERR_UNKNOWN_THEME"
	ErrCodePremiumRequired = "ERR_PREMIUM_REQUIRED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeInvalidState:    http.StatusUnprocessableEntity,
	ErrCodeUnknownDesign:   http.StatusNotFound,
	ErrCodeUnknownTheme:    http.StatusNotFound,
	ErrCodePremiumRequired: http.StatusForbidden,
}

// domainErrorCodes maps domain error codes to API error codes
var domainErrorCodes = map[string]string{
	shared.CodeNotFound:        ErrCodeNotFound,
	shared.CodeInvalidInput:    ErrCodeInvalidInput,
	shared.CodeInvalidState:    ErrCodeInvalidState,
	shared.CodeUnknownDesign:   ErrCodeUnknownDesign,
	shared.CodeUnknownTheme:    ErrCodeUnknownTheme,
	shared.CodePremiumRequired: ErrCodePremiumRequired,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// NormalizeErrorCode converts a domain error code to its API code.
// Codes already in API form, or unknown, are returned as-is.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := domainErrorCodes[code]; ok {
		return apiCode
	}
	return code
}
