// Package apperror defines the application's error taxonomy. Services return
// *AppError values carrying a stable machine-readable code; the HTTP layer
// translates codes to status lines in one place so services stay
// transport-agnostic.
package apperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Code identifies a failure kind independent of transport.
type Code string

const (
	CodeSelfReference      Code = "SELF_REFERENCE"
	CodeTargetNotFound     Code = "TARGET_NOT_FOUND"
	CodeTargetUnreachable  Code = "TARGET_UNREACHABLE"
	CodeDuplicatePending   Code = "DUPLICATE_PENDING"
	CodeNotFound           Code = "NOT_FOUND"
	CodeForbidden          Code = "FORBIDDEN"
	CodeAlreadyProcessed   Code = "ALREADY_PROCESSED"
	CodeSwapNotFound       Code = "SWAP_NOT_FOUND"
	CodeSwapNotAccepted    Code = "SWAP_NOT_ACCEPTED"
	CodeNotParticipant     Code = "NOT_PARTICIPANT"
	CodeDuplicateFeedback  Code = "DUPLICATE_FEEDBACK"
	CodeInvalidRating      Code = "INVALID_RATING"
	CodeValidationFailed   Code = "VALIDATION_FAILED"
	CodeEmailTaken         Code = "EMAIL_TAKEN"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeInvalidToken       Code = "INVALID_TOKEN"
	CodeInternal           Code = "INTERNAL"
)

// AppError is a caller-visible, recoverable failure.
type AppError struct {
	Code    Code
	Message string
	Field   string // optional: the input field that caused a validation failure
	Err     error  // optional underlying cause
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap attaches an underlying cause to a coded error.
func Wrap(code Code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// ValidationFailed reports a structurally invalid input field.
func ValidationFailed(field, message string) *AppError {
	return &AppError{Code: CodeValidationFailed, Message: message, Field: field}
}

// CodeOf extracts the taxonomy code from err, or CodeInternal when err is
// not an AppError.
func CodeOf(err error) Code {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}

var httpStatus = map[Code]int{
	CodeSelfReference:  fiber.StatusBadRequest,
	CodeTargetNotFound: fiber.StatusNotFound,
	// Private profiles are reported as not found so they stay
	// indistinguishable from absent accounts.
	CodeTargetUnreachable:  fiber.StatusNotFound,
	CodeDuplicatePending:   fiber.StatusConflict,
	CodeNotFound:           fiber.StatusNotFound,
	CodeForbidden:          fiber.StatusForbidden,
	CodeAlreadyProcessed:   fiber.StatusConflict,
	CodeSwapNotFound:       fiber.StatusNotFound,
	CodeSwapNotAccepted:    fiber.StatusBadRequest,
	CodeNotParticipant:     fiber.StatusForbidden,
	CodeDuplicateFeedback:  fiber.StatusConflict,
	CodeInvalidRating:      fiber.StatusBadRequest,
	CodeValidationFailed:   fiber.StatusBadRequest,
	CodeEmailTaken:         fiber.StatusConflict,
	CodeInvalidCredentials: fiber.StatusUnauthorized,
	CodeInvalidToken:       fiber.StatusUnauthorized,
	CodeInternal:           fiber.StatusInternalServerError,
}

// HTTPStatus maps a taxonomy code to its transport status. Unknown codes
// fall back to 500.
func HTTPStatus(code Code) int {
	if s, ok := httpStatus[code]; ok {
		return s
	}
	return fiber.StatusInternalServerError
}
