// Package writer renders normalized statements as QuickBooks-compatible CSV
// and places them on disk without ever overwriting an earlier export.
package writer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Xhelo-hub/bank-select-converter/internal/models"
)

// OutputSuffix marks converted files; "stmt.pdf" becomes "stmt - 4qbo.csv".
const OutputSuffix = " - 4qbo"

// CSVWriter writes statements in the canonical ledger shape:
// Date,Description,Debit,Credit and, when any record carries one, Balance.
type CSVWriter struct{}

// Write renders the statement to the given writer.
func (w *CSVWriter) Write(out io.Writer, st *models.Statement) error {
	withBalance := false
	for _, rec := range st.Records {
		if rec.HasBalance {
			withBalance = true
			break
		}
	}

	cw := csv.NewWriter(out)
	defer cw.Flush()

	header := []string{"Date", "Description", "Debit", "Credit"}
	if withBalance {
		header = append(header, "Balance")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, rec := range st.Records {
		row := []string{
			rec.Date,
			rec.Description,
			formatAmount(rec.Debit),
			formatAmount(rec.Credit),
		}
		if withBalance {
			if rec.HasBalance {
				row = append(row, rec.Balance.StringFixed(2))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	return cw.Error()
}

// WriteFile renders the statement into outputDir, naming the file after the
// input statement. An existing export is never clobbered: the name gets a
// " (v.N)" suffix instead, claimed with an exclusive create so concurrent
// conversions cannot race each other onto the same path.
func (w *CSVWriter) WriteFile(inputPath, outputDir string, st *models.Statement) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	base := filepath.Join(outputDir, stem+OutputSuffix)

	f, path, err := createVersioned(base, ".csv")
	if err != nil {
		return "", err
	}

	if werr := w.Write(f, st); werr != nil {
		f.Close()
		os.Remove(path)
		return "", werr
	}
	if cerr := f.Close(); cerr != nil {
		return "", fmt.Errorf("close output file: %w", cerr)
	}
	return path, nil
}

// createVersioned claims "<base><ext>", then "<base> (v.1)<ext>" and so on,
// until an exclusive create succeeds.
func createVersioned(base, ext string) (*os.File, string, error) {
	for version := 0; ; version++ {
		path := base + ext
		if version > 0 {
			path = fmt.Sprintf("%s (v.%d)%s", base, version, ext)
		}
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("create output file %q: %w", path, err)
		}
	}
}

func formatAmount(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.StringFixed(2)
}
