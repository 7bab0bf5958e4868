// Package apperrors defines the error kinds shared across the POS service.
// Use cases wrap these sentinels with fmt.Errorf and %w; the HTTP layer maps
// them to status codes with errors.Is.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for common failure scenarios.
var (
	ErrInvalidInput      = errors.New("pos: invalid input")
	ErrNotFound          = errors.New("pos: not found")
	ErrConflict          = errors.New("pos: conflict")
	ErrInsufficientStock = errors.New("pos: insufficient stock")
	ErrInternal          = errors.New("pos: internal error")
)

// InvalidInput wraps ErrInvalidInput with a detail message.
func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidInput}, args...)...)
}

// NotFound wraps ErrNotFound with a detail message.
func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...)
}

// Conflict wraps ErrConflict with a detail message.
func Conflict(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrConflict}, args...)...)
}

// Internal wraps ErrInternal around an underlying cause.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

// HTTPStatus maps an error to the HTTP status code the API responds with.
// Insufficient stock is reported as a 400, matching the original API contract.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInsufficientStock):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
