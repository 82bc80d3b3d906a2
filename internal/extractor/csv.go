package extractor

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV reads a CSV statement export into raw rows. Some banks export
// Windows-1252 rather than UTF-8, so invalid UTF-8 input is transparently
// re-decoded. Rows may have ragged lengths; column handling is the
// profile's job.
func ReadCSV(filePath string) ([][]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	if !utf8.Valid(data) {
		decoded, decErr := charmap.Windows1252.NewDecoder().Bytes(data)
		if decErr != nil {
			return nil, fmt.Errorf("%w: not utf-8 and windows-1252 decode failed: %v", ErrUnreadableDocument, decErr)
		}
		data = decoded
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyDocument
	}
	return rows, nil
}

// sniffDelimiter picks the most frequent candidate separator in the first
// non-empty line. Bank exports use commas, semicolons or tabs.
func sniffDelimiter(data []byte) rune {
	for _, line := range strings.SplitN(string(data), "\n", 20) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		best, bestCount := ',', 0
		for _, cand := range []rune{',', ';', '\t', '|'} {
			if n := strings.Count(line, string(cand)); n > bestCount {
				best, bestCount = cand, n
			}
		}
		return best
	}
	return ','
}
