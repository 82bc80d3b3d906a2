package profile

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/Xhelo-hub/bank-select-converter/internal/models"
)

// ErrUnknownBank is returned when no profile matches the document.
var ErrUnknownBank = errors.New("could not detect bank, pass the bank explicitly")

// Detect guesses the issuing bank from the file name first and the document
// content second. Only the first pages (or rows) are inspected; an explicit
// profile ID from the caller always takes precedence over detection.
func Detect(doc *models.Document) (*Profile, error) {
	name := strings.ToLower(filepath.Base(doc.Path))
	for _, p := range All() {
		if matchesAny(name, p.Markers) {
			return p, nil
		}
	}

	content := strings.ToLower(sampleContent(doc))
	for _, p := range All() {
		if !p.Supports(doc.Kind) {
			continue
		}
		if matchesAny(content, p.Markers) {
			return p, nil
		}
	}
	return nil, ErrUnknownBank
}

func matchesAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// sampleContent returns the first few pages or rows of the document.
func sampleContent(doc *models.Document) string {
	var b strings.Builder
	switch doc.Kind {
	case models.DocPDF:
		for i, page := range doc.Pages {
			if i == 3 {
				break
			}
			b.WriteString(page)
			b.WriteByte('\n')
		}
	case models.DocCSV:
		for i, row := range doc.Rows {
			if i == 30 {
				break
			}
			b.WriteString(strings.Join(row, ","))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
