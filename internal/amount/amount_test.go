package amount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "1234.56", "1234.56"},
		{"comma thousands", "31,719.00", "31719"},
		{"continental", "31.719,00", "31719"},
		{"space thousands comma decimal", "9 900,00", "9900"},
		{"nbsp thousands", "9\u00a0900,00", "9900"},
		{"comma decimal only", "550,00", "550"},
		{"dot as thousands", "14.485", "14485"},
		{"dot decimal short", "177.51", "177.51"},
		{"continental large", "14.485,28", "14485.28"},
		{"negative", "-22,000.00", "-22000"},
		{"parenthesized", "(1,500.00)", "-1500"},
		{"currency suffix", "1,234.56 ALL", "1234.56"},
		{"currency suffix eur", "-20.00 EUR", "-20"},
		{"currency lek", "500.00 LEK", "500"},
		{"explicit plus", "+250.00", "250"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "N/A", "abc", "ALL"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.Error(t, err)
		})
	}
}

func TestParseOptional(t *testing.T) {
	d, ok, err := ParseOptional("  ")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, d.IsZero())

	d, ok, err = ParseOptional("1,000.50")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1000.50", d.StringFixed(2))
}
