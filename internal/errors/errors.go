// Package errors provides custom error types for the costevida API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
// Validation failures additionally carry a field-keyed message set.
type AppError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Fields     map[string]string `json:"fields,omitempty"`
	StatusCode int               `json:"-"`
	Internal   error             `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// NewValidationError creates an AppError carrying a field-keyed error set.
// Submission is blocked whenever the set is non-empty; nothing is persisted.
func NewValidationError(fields map[string]string) *AppError {
	return &AppError{
		Code:       "VALIDATION_FAILED",
		Message:    "One or more fields are invalid",
		Fields:     fields,
		StatusCode: http.StatusBadRequest,
	}
}

// Authentication errors. Token issuance belongs to the external identity
// provider; this API only verifies.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidToken = &AppError{Code: "INVALID_TOKEN", Message: "Invalid or expired token", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Expense errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
)

// Catalog errors. The *InUse errors are referential-integrity failures: the
// entity is referenced by an expense whose projected active span covers the
// current month or a later one, so deletion is blocked and nothing is mutated.
var (
	ErrCategoryNotFound      = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrCategoryInUse         = &AppError{Code: "CATEGORY_IN_USE", Message: "Category is referenced by active or upcoming expenses", StatusCode: http.StatusConflict}
	ErrPaymentMethodNotFound = &AppError{Code: "PAYMENT_METHOD_NOT_FOUND", Message: "Payment method not found", StatusCode: http.StatusNotFound}
	ErrPaymentMethodInUse    = &AppError{Code: "PAYMENT_METHOD_IN_USE", Message: "Payment method is referenced by active or upcoming expenses", StatusCode: http.StatusConflict}
	ErrCreditCardNotFound    = &AppError{Code: "CREDIT_CARD_NOT_FOUND", Message: "Credit card not found", StatusCode: http.StatusNotFound}
	ErrCreditCardInUse       = &AppError{Code: "CREDIT_CARD_IN_USE", Message: "Credit card is referenced by active or upcoming expenses", StatusCode: http.StatusConflict}
	ErrDuplicateName         = &AppError{Code: "DUPLICATE_NAME", Message: "An entry with this name already exists", StatusCode: http.StatusConflict}
)

// Snapshot errors.
var (
	ErrInvalidSnapshot = &AppError{Code: "INVALID_SNAPSHOT", Message: "Snapshot is missing the expenses collection", StatusCode: http.StatusBadRequest}
)
