package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		layout Layout
		want   string
	}{
		{"dashed short year", "05-SEP-25", DashedMonth, "2025-09-05"},
		{"dashed full year", "05-SEP-2025", DashedMonth, "2025-09-05"},
		{"dashed january", "05-JAN-25", DashedMonth, "2025-01-05"},
		{"dashed june", "15-JUN-25", DashedMonth, "2025-06-15"},
		{"dotted full", "30.09.2025", Dotted, "2025-09-30"},
		{"dotted compact", "30.9.25", Dotted, "2025-09-30"},
		{"dotted single digit day", "1.9.25", Dotted, "2025-09-01"},
		{"slashed short year", "05/09/25", Slashed, "2025-09-05"},
		{"slashed full year", "05/09/2025", Slashed, "2025-09-05"},
		{"albanian july", "20 Kor 25", SpacedMonth, "2025-07-20"},
		{"albanian november", "03 Nën 25", SpacedMonth, "2025-11-03"},
		{"albanian november ascii", "03 Nen 25", SpacedMonth, "2025-11-03"},
		{"albanian february", "14 Shk 25", SpacedMonth, "2025-02-14"},
		{"english month spaced", "01 Jul 25", SpacedMonth, "2025-07-01"},
		{"timestamp with zone", "2025-10-02 14:13:29 +0200", Timestamped, "2025-10-02"},
		{"bare iso date", "2025-10-02", Timestamped, "2025-10-02"},
		{"surrounding whitespace", "  05-SEP-25  ", DashedMonth, "2025-09-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.token, tt.layout)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		layout Layout
	}{
		{"empty", "", Dotted},
		{"not a date", "TOTALI", Dotted},
		{"unknown month name", "05-XXX-25", DashedMonth},
		{"month out of range", "05.13.2025", Dotted},
		{"day overflows month", "30.02.2025", Dotted},
		{"three digit year", "05.09.205", Dotted},
		{"wrong separator", "05/09/25", Dotted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.token, tt.layout)
			assert.Error(t, err)
		})
	}
}
