package standard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/coinage/internal/platform/apperr"
)

func TestParseDutyCode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "simple", raw: "D1", want: "D1"},
		{name: "multi digit", raw: "D42", want: "D42"},
		{name: "lowercase normalized", raw: "d3", want: "D3"},
		{name: "surrounding whitespace", raw: " D1 ", want: "D1"},
		{name: "missing number", raw: "D", wantErr: true},
		{name: "letter suffix rejected", raw: "D1a", wantErr: true},
		{name: "wrong prefix", raw: "K1", wantErr: true},
		{name: "garbage", raw: "invalid_code", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDutyCode(tt.raw)
			if tt.wantErr {
				var appErr *apperr.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, 400, appErr.HTTPStatus)
				assert.Contains(t, appErr.Description, "Invalid Duty Code format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKSBCode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "knowledge", raw: "K1", want: "K1"},
		{name: "skill", raw: "S2", want: "S2"},
		{name: "behaviour", raw: "B3", want: "B3"},
		{name: "letter suffix", raw: "K1a", want: "K1A"},
		{name: "lowercase", raw: "k1a", want: "K1A"},
		{name: "multi digit with suffix", raw: "B3b", want: "B3B"},
		{name: "duty prefix rejected", raw: "D1", wantErr: true},
		{name: "two letter suffix rejected", raw: "K1ab", wantErr: true},
		{name: "missing number", raw: "K", wantErr: true},
		{name: "garbage", raw: "invalid_code", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKSBCode(tt.raw)
			if tt.wantErr {
				var appErr *apperr.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, "Invalid KSB Code format. KSB Code must start with 'K', 'S', or 'B', followed by numbers and optionally a letter (e.g., K1, K1a, S2, B3b).", appErr.Description)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, raw := range []string{"Knowledge", "Skill", "Behaviour"} {
		kind, err := ParseKind(raw)
		require.NoError(t, err)
		assert.Equal(t, Kind(raw), kind)
	}

	for _, raw := range []string{"knowledge", "K", "Duty", ""} {
		_, err := ParseKind(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}
