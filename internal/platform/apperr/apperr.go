// Copyright (c) 2026 Coinage. All rights reserved.

/*
Package apperr defines the centralized error handling framework for Coinage.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing a machine-readable ErrorCode and a user-friendly
    description.
  - Mapping: Explicit mapping from AppError to standard HTTP Status Codes.

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
consistent API responses. Clients only ever see the Description field; the Cause
chain stays server-side.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried by [AppError.Code]. The HTTP status is what clients
// branch on; the code exists for logs and tests.
const (
	CodeMalformedID = "MALFORMED_IDENTIFIER"
	CodeInvalidCode = "INVALID_CODE_FORMAT"
	CodeEmptyName   = "EMPTY_NAME"
	CodeBadShape    = "INVALID_SHAPE"
	CodeNotFound    = "NOT_FOUND"
	CodeDuplicate   = "DUPLICATE"
	CodeUnknownRef  = "UNKNOWN_ASSOCIATION_REFERENCE"
	CodeValidation  = "VALIDATION_ERROR"
	CodeInternal    = "INTERNAL_ERROR"
	CodeRateLimited = "RATE_LIMITED"
)

// AppError is the canonical error type for the Coinage API.
//
// It carries an HTTP status code, a machine-readable code, and a client-safe
// description.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND").
	Code string `json:"-"`
	// Description is a human-readable message safe to return to the client.
	Description string `json:"description"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
}

// Error implements the error interface. It returns the client-safe description.
func (e *AppError) Error() string { return e.Description }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Coin") // description "Coin not found."
func NotFound(resource string) *AppError {
	return &AppError{
		Code:        CodeNotFound,
		Description: resource + " not found.",
		HTTPStatus:  http.StatusNotFound,
	}
}

// MalformedID creates a 400 [AppError] for an identifier that is not a UUID.
func MalformedID(resource string) *AppError {
	return &AppError{
		Code:        CodeMalformedID,
		Description: fmt.Sprintf("Invalid %s ID format. %s ID must be a UUID (non-integer).", resource, resource),
		HTTPStatus:  http.StatusBadRequest,
	}
}

// InvalidCode creates a 400 [AppError] for a natural code that fails its
// format rule. The description is supplied by the caller since each entity
// kind documents its own code shape.
func InvalidCode(description string) *AppError {
	return &AppError{
		Code:        CodeInvalidCode,
		Description: description,
		HTTPStatus:  http.StatusBadRequest,
	}
}

// Validation creates a 400 [AppError] with an explicit code and description.
func Validation(code, description string) *AppError {
	return &AppError{
		Code:        code,
		Description: description,
		HTTPStatus:  http.StatusBadRequest,
	}
}

// Duplicate creates a 400 [AppError] for uniqueness-constraint violations.
//
// The original API reported duplicates as 400 rather than 409, and clients
// depend on that.
func Duplicate(description string) *AppError {
	return &AppError{
		Code:        CodeDuplicate,
		Description: description,
		HTTPStatus:  http.StatusBadRequest,
	}
}

// UnknownReference creates a 400 [AppError] for a bulk-replace entry that
// does not resolve to an existing entity.
func UnknownReference(description string) *AppError {
	return &AppError{
		Code:        CodeUnknownRef,
		Description: description,
		HTTPStatus:  http.StatusBadRequest,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:        CodeRateLimited,
		Description: fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds),
		HTTPStatus:  http.StatusTooManyRequests,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:        CodeInternal,
		Description: "An unexpected error occurred.",
		HTTPStatus:  http.StatusInternalServerError,
		Cause:       cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
