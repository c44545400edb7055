package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrUnauthenticated = errors.New("not signed in")
	ErrNotFound        = errors.New("not found")
	ErrUnavailable     = errors.New("backend unavailable")
	ErrValidation      = errors.New("validation error")
)

type AppError struct {
	Err     error  // sentinel, for errors.Is
	Cause   error  // underlying failure, kept for logs
	Message string // human-readable message
	Field   string // optional: field causing a validation error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotSignedIn() *AppError {
	return &AppError{
		Err:     ErrUnauthenticated,
		Message: "no authenticated user",
	}
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found for id %s", resource, id),
	}
}

// Unavailable wraps a transient store failure. The cause is kept for logs;
// the message is what the client sees.
func Unavailable(op string, cause error) *AppError {
	return &AppError{
		Err:     ErrUnavailable,
		Cause:   cause,
		Message: fmt.Sprintf("%s failed: backend unavailable", op),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// HTTPStatus maps an error to the status code handlers should respond with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
