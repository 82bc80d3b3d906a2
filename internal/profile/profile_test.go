package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xhelo-hub/bank-select-converter/internal/models"
)

func TestGet(t *testing.T) {
	p, err := Get("bkt")
	require.NoError(t, err)
	assert.Equal(t, "bkt", p.ID)
	assert.True(t, p.Supports(models.DocPDF))
	assert.False(t, p.Supports(models.DocCSV))

	p, err = Get("  OTP ")
	require.NoError(t, err)
	assert.Equal(t, "otp", p.ID)

	_, err = Get("hsbc")
	assert.Error(t, err)
}

func TestAllProfilesAreComplete(t *testing.T) {
	all := All()
	require.Len(t, all, 9)

	for _, p := range all {
		assert.NotEmpty(t, p.Bank, "profile %s has no display name", p.ID)
		assert.NotEmpty(t, p.Inputs, "profile %s supports no inputs", p.ID)
		assert.NotEmpty(t, p.DateLayout, "profile %s has no date layout", p.ID)
		assert.NotEmpty(t, p.Markers, "profile %s cannot be detected", p.ID)
		for _, kind := range p.Inputs {
			switch kind {
			case models.DocPDF:
				require.NotNil(t, p.PDF, "profile %s claims pdf without rules", p.ID)
				if p.PDF.Mode != ModeTokenStream {
					assert.NotNil(t, p.PDF.Anchor, "profile %s has no anchor", p.ID)
				}
			case models.DocCSV:
				require.NotNil(t, p.CSV, "profile %s claims csv without rules", p.ID)
				assert.NotEmpty(t, p.CSV.HeaderMarkers, "profile %s cannot find its header", p.ID)
				assert.NotEmpty(t, p.CSV.DateCol, "profile %s has no date column", p.ID)
			}
		}
	}
}

func TestFindHeaderRow(t *testing.T) {
	p, err := Get("credins")
	require.NoError(t, err)

	rows := [][]string{
		{"Account statement"},
		{"NIPT", "K12345678A"},
		{"RecordNumber", "City1", "ValueDate", "Amount", "Amount1", "BalanceAfter", "TransactionType", "Description1"},
		{"1", "Tirana", "05.09.2025", "1,000.00", "", "9,000.00", "Transferte", "Pagese fature"},
	}
	assert.Equal(t, 2, p.CSV.FindHeaderRow(rows))

	assert.Equal(t, -1, p.CSV.FindHeaderRow([][]string{{"Date", "Amount"}}))
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		doc  *models.Document
		want string
	}{
		{
			"filename match",
			&models.Document{Path: "statements/BKT shtator.pdf", Kind: models.DocPDF},
			"bkt",
		},
		{
			"pdf content match",
			&models.Document{
				Path: "statement.pdf", Kind: models.DocPDF,
				Pages: []string{"NXJERRJE LLOGARIE\nUNION BANK sh.a.\nBALANCA E FILLIMIT"},
			},
			"union",
		},
		{
			"csv content match",
			&models.Document{
				Path: "export.csv", Kind: models.DocCSV,
				Rows: [][]string{{"Raiffeisen Bank Albania"}, {"No", "Value Date"}},
			},
			"raiffeisen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Detect(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.ID)
		})
	}

	_, err := Detect(&models.Document{Path: "unknown.csv", Kind: models.DocCSV, Rows: [][]string{{"a", "b"}}})
	assert.ErrorIs(t, err, ErrUnknownBank)
}
