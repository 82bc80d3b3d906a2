package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xhelo-hub/bank-select-converter/internal/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestWriteWithoutBalanceColumn(t *testing.T) {
	st := &models.Statement{
		Records: []models.Record{
			{Date: "2025-09-01", Description: "TRANSFER - REF123", Debit: dec("1000")},
			{Date: "2025-09-02", Description: "INTEREST", Credit: dec("500.50")},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, (&CSVWriter{}).Write(&buf, st))

	assert.Equal(t,
		"Date,Description,Debit,Credit\n"+
			"2025-09-01,TRANSFER - REF123,1000.00,\n"+
			"2025-09-02,INTEREST,,500.50\n",
		buf.String())
}

func TestWriteWithBalanceColumn(t *testing.T) {
	st := &models.Statement{
		Records: []models.Record{
			{Date: "2025-09-01", Description: "Pagese", Debit: dec("100"), Balance: dec("900"), HasBalance: true},
			{Date: "2025-09-02", Description: "Pa balance", Credit: dec("50")},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, (&CSVWriter{}).Write(&buf, st))

	assert.Equal(t,
		"Date,Description,Debit,Credit,Balance\n"+
			"2025-09-01,Pagese,100.00,,900.00\n"+
			"2025-09-02,Pa balance,,50.00,\n",
		buf.String())
}

func TestWriteQuotesCommas(t *testing.T) {
	st := &models.Statement{
		Records: []models.Record{
			{Date: "2025-09-01", Description: "Pagese, fature", Debit: dec("10")},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, (&CSVWriter{}).Write(&buf, st))
	assert.Contains(t, buf.String(), `"Pagese, fature"`)
}

func TestWriteFileNamesAndVersions(t *testing.T) {
	dir := t.TempDir()
	st := &models.Statement{
		Records: []models.Record{{Date: "2025-09-01", Description: "x", Debit: dec("1")}},
	}
	w := &CSVWriter{}

	path, err := w.WriteFile("inbox/Statement shtator.pdf", dir, st)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Statement shtator - 4qbo.csv"), path)

	// A second conversion of the same input must not clobber the first.
	path2, err := w.WriteFile("inbox/Statement shtator.pdf", dir, st)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Statement shtator - 4qbo (v.1).csv"), path2)

	path3, err := w.WriteFile("inbox/Statement shtator.pdf", dir, st)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Statement shtator - 4qbo (v.2).csv"), path3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2025-09-01")
}

func TestWriteFileCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "export", "nested")
	st := &models.Statement{
		Records: []models.Record{{Date: "2025-09-01", Description: "x", Credit: dec("2")}},
	}

	path, err := (&CSVWriter{}).WriteFile("stmt.csv", dir, st)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
