// Copyright (c) 2026 Coinage. All rights reserved.

package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/coinage/internal/platform/apperr"
)

func strptr(s string) *string { return &s }

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		resource string
		raw      *string
		want     string
		wantDesc string
	}{
		{
			name:     "valid",
			resource: "Coin",
			raw:      strptr("Developer"),
			want:     "Developer",
		},
		{
			name:     "trims whitespace",
			resource: "Coin",
			raw:      strptr("  Developer  "),
			want:     "Developer",
		},
		{
			name:     "missing key",
			resource: "Coin",
			raw:      nil,
			wantDesc: "Missing 'name' key in request body.",
		},
		{
			name:     "empty value",
			resource: "Coin",
			raw:      strptr(""),
			wantDesc: "Coin name cannot be empty.",
		},
		{
			name:     "whitespace only",
			resource: "Duty",
			raw:      strptr("   "),
			wantDesc: "Duty name cannot be empty.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Name(tt.resource, tt.raw)
			if tt.wantDesc != "" {
				var appErr *apperr.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantDesc, appErr.Description)
				assert.Equal(t, 400, appErr.HTTPStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSurrogateID(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := SurrogateID("Coin", "0190a6a5-2f36-7cc9-9ee3-0c2f6b33a1de")
		require.NoError(t, err)
		assert.Equal(t, "0190a6a5-2f36-7cc9-9ee3-0c2f6b33a1de", got)
	})

	t.Run("canonicalizes case", func(t *testing.T) {
		got, err := SurrogateID("Coin", "0190A6A5-2F36-7CC9-9EE3-0C2F6B33A1DE")
		require.NoError(t, err)
		assert.Equal(t, "0190a6a5-2f36-7cc9-9ee3-0c2f6b33a1de", got)
	})

	t.Run("integer rejected", func(t *testing.T) {
		_, err := SurrogateID("Coin", "42")
		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.HTTPStatus)
		assert.Contains(t, appErr.Description, "Coin ID must be a UUID")
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := SurrogateID("Duty", "not-a-uuid")
		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Description, "Duty ID")
	})
}

func TestStringList(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		values, present, err := StringList("duty_ids", nil)
		require.NoError(t, err)
		assert.False(t, present)
		assert.Nil(t, values)
	})

	t.Run("empty list", func(t *testing.T) {
		values, present, err := StringList("duty_ids", json.RawMessage(`[]`))
		require.NoError(t, err)
		assert.True(t, present)
		assert.Empty(t, values)
	})

	t.Run("null treated as empty", func(t *testing.T) {
		values, present, err := StringList("duty_ids", json.RawMessage(`null`))
		require.NoError(t, err)
		assert.True(t, present)
		assert.NotNil(t, values)
		assert.Empty(t, values)
	})

	t.Run("list of strings", func(t *testing.T) {
		values, present, err := StringList("duty_codes", json.RawMessage(`["D1","D2"]`))
		require.NoError(t, err)
		assert.True(t, present)
		assert.Equal(t, []string{"D1", "D2"}, values)
	})

	t.Run("scalar rejected", func(t *testing.T) {
		_, _, err := StringList("duty_ids", json.RawMessage(`"D1"`))
		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "'duty_ids' must be a list.", appErr.Description)
	})

	t.Run("list of objects rejected", func(t *testing.T) {
		_, _, err := StringList("duty_ids", json.RawMessage(`[{"id":1}]`))
		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.HTTPStatus)
	})
}
