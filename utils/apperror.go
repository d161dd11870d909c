package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes shared across services. Handlers map the Status field to the
// HTTP response; services only pick the code.
const (
	CodeValidation        = "VALIDATION"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeAlreadyReviewed   = "ALREADY_REVIEWED"
	CodeNotCompleted      = "NOT_COMPLETED"
	CodeNotAuthorized     = "NOT_AUTHORIZED"
	CodeNotAuthenticated  = "NOT_AUTHENTICATED"
	CodeDuplicateKey      = "DUPLICATE_KEY"
	CodeNotFound          = "NOT_FOUND"
)

// AppError is the error type surfaced by service operations.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Status: http.StatusBadRequest}
}

func NewInvalidTransitionError(from, to string) *AppError {
	return &AppError{
		Code:    CodeInvalidTransition,
		Message: fmt.Sprintf("cannot change booking status from %q to %q", from, to),
		Status:  http.StatusBadRequest,
	}
}

func NewAlreadyReviewedError(bookingID string) *AppError {
	return &AppError{
		Code:    CodeAlreadyReviewed,
		Message: fmt.Sprintf("booking %s already has a review", bookingID),
		Status:  http.StatusConflict,
	}
}

func NewNotCompletedError(bookingID string) *AppError {
	return &AppError{
		Code:    CodeNotCompleted,
		Message: fmt.Sprintf("booking %s is not completed yet", bookingID),
		Status:  http.StatusBadRequest,
	}
}

func NewNotAuthorizedError(message string) *AppError {
	return &AppError{Code: CodeNotAuthorized, Message: message, Status: http.StatusForbidden}
}

func NewNotAuthenticatedError() *AppError {
	return &AppError{Code: CodeNotAuthenticated, Message: "authentication required", Status: http.StatusUnauthorized}
}

// NewInvalidLoginError is deliberately generic: the same response covers a
// missing account and a wrong password, so callers cannot enumerate users.
func NewInvalidLoginError() *AppError {
	return &AppError{Code: CodeNotAuthenticated, Message: "Invalid login", Status: http.StatusUnauthorized}
}

func NewDuplicateKeyError(message string) *AppError {
	return &AppError{Code: CodeDuplicateKey, Message: message, Status: http.StatusConflict}
}

func NewNotFoundError(resource, id string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %s not found", resource, id),
		Status:  http.StatusNotFound,
	}
}

// IsCode reports whether err is an AppError carrying the given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// AsAppError unwraps err into an AppError, or nil if it is not one.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
