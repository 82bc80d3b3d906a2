package extractor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xhelo-hub/bank-select-converter/internal/models"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadCSVDelimiters(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"comma", "Date,Amount\n05.09.2025,\"31,719.00\"\n"},
		{"semicolon", "Date;Amount\n05.09.2025;31,719.00\n"},
		{"tab", "Date\tAmount\n05.09.2025\t31,719.00\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ReadCSV(writeFile(t, "export.csv", []byte(tt.data)))
			require.NoError(t, err)
			require.Len(t, rows, 2)
			assert.Equal(t, []string{"Date", "Amount"}, rows[0])
			assert.Equal(t, []string{"05.09.2025", "31,719.00"}, rows[1])
		})
	}
}

func TestReadCSVStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Date,Amount\n")...)
	rows, err := ReadCSV(writeFile(t, "export.csv", data))
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Amount"}, rows[0])
}

func TestReadCSVWindows1252Fallback(t *testing.T) {
	// "Përshkrimi" with the ë encoded as Windows-1252 0xEB.
	data := []byte("Data,P\xebrshkrimi\n")
	rows, err := ReadCSV(writeFile(t, "export.csv", data))
	require.NoError(t, err)
	assert.Equal(t, []string{"Data", "Përshkrimi"}, rows[0])
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(writeFile(t, "export.csv", []byte("   \n  ")))
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestReadCSVRaggedRows(t *testing.T) {
	rows, err := ReadCSV(writeFile(t, "export.csv", []byte("a,b,c\nd,e\nf\n")))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Len(t, rows[1], 2)
}

func TestLoad(t *testing.T) {
	doc, err := Load(writeFile(t, "export.csv", []byte("Date,Amount\n")))
	require.NoError(t, err)
	assert.Equal(t, models.DocCSV, doc.Kind)
	require.Len(t, doc.Rows, 1)

	_, err = Load("statement.xlsx")
	assert.Error(t, err)
}
