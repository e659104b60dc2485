// Copyright (c) 2026 Coinage. All rights reserved.

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// UUIDv7 is the primary key type for every Coinage table. Time-sortable keys
// keep inserts appending to the right edge of the btree instead of scattering
// across it the way random UUIDv4 does.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// It panics only if the OS random source is unavailable, which is an
// unrecoverable system-level error.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id.String()
}
