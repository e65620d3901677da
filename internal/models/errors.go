package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrDuplicateUsername is returned by the user repository when an insert
// violates the unique username constraint.
var ErrDuplicateUsername = errors.New("username already exists")

// ErrorResponse is the single-message error envelope used for
// authentication and server failures: {"error": "..."}.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ValidationErrorResponse is the envelope used for validation and
// uniqueness failures: {"errors": ["..."]}. The two shapes are part of the
// wire contract and must not be merged.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewInternalError wraps an unexpected failure for the 500 envelope.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	var appErr *AppError
	if errors.As(err, &appErr) {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}

// RespondUnauthorized writes the contract's 401 body: {"error": "Unauthorized"}.
func RespondUnauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "Unauthorized"})
}

// RespondValidationErrors writes a 422 with the contract's errors array.
func RespondValidationErrors(c *fiber.Ctx, msgs ...string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ValidationErrorResponse{Errors: msgs})
}
