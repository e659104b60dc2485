// Copyright (c) 2026 Coinage. All rights reserved.

// Package validate implements the input validation rules shared by the
// service layer.
//
// # Architecture
//
// This package is used exclusively in the service layer, never in handlers or
// storage. All validation happens before any mutation is attempted, so a
// request that fails here leaves the database untouched.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/forgeline/coinage/internal/platform/apperr"
)

// ErrInvalidJSON is returned when a request body cannot be decoded.
var ErrInvalidJSON = apperr.Validation(apperr.CodeValidation, "Invalid JSON payload.")

// Name validates a name field for the given resource kind.
//
// A nil pointer means the field was absent from the request body entirely,
// which the original API reports differently from a blank value.
func Name(resource string, raw *string) (string, error) {
	if raw == nil {
		return "", apperr.Validation(apperr.CodeEmptyName, "Missing 'name' key in request body.")
	}

	name := strings.TrimSpace(*raw)
	if name == "" {
		return "", apperr.Validation(apperr.CodeEmptyName, fmt.Sprintf("%s name cannot be empty.", resource))
	}

	return name, nil
}

// SurrogateID parses raw as a UUID and returns its canonical string form.
// The stored form is always the lowercase canonical rendering, never the
// raw client spelling.
func SurrogateID(resource, raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperr.MalformedID(resource)
	}
	return id.String(), nil
}

// StringList validates that a JSON field, when present, is an array of
// strings. A nil RawMessage (field absent) yields (nil, false, nil) so
// callers can distinguish "absent" from "empty list".
func StringList(field string, raw json.RawMessage) ([]string, bool, error) {
	if raw == nil {
		return nil, false, nil
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, false, apperr.Validation(apperr.CodeBadShape, fmt.Sprintf("'%s' must be a list.", field))
	}

	// Present-but-null behaves like an explicit empty list.
	if values == nil {
		values = []string{}
	}

	return values, true, nil
}
