package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Xhelo-hub/bank-select-converter/internal/amount"
	"github.com/Xhelo-hub/bank-select-converter/internal/models"
	"github.com/Xhelo-hub/bank-select-converter/internal/profile"
)

// Chunk is one transaction's worth of raw statement text: the anchor line
// that matched the profile's date pattern plus any continuation lines below.
type Chunk struct {
	Row  int      // line number of the anchor, 1-based
	Date string   // raw date token from the anchor
	Head string   // anchor line with the leading date fields removed
	Tail []string // continuation lines up to the next anchor or stop marker
}

// docMeta is what segmentation learns about the statement besides chunks.
type docMeta struct {
	accountNumber string
	opening       decimal.Decimal
	hasOpening    bool
}

var (
	ibanPattern      = regexp.MustCompile(`IBAN:\s*(\S+)`)
	accountNoPattern = regexp.MustCompile(`AccountNo:(\S+)`)
	trailingAmountRe = regexp.MustCompile(`([\d,]+\.\d{2})\s*$`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
)

// segmentPDF walks the document lines once, grouping them into chunks and
// picking up statement metadata along the way.
func segmentPDF(doc *models.Document, rules *profile.PDFRules) ([]Chunk, docMeta) {
	var (
		chunks []Chunk
		meta   docMeta
	)
	lines := doc.Lines()

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		if m := ibanPattern.FindStringSubmatch(line); m != nil {
			meta.accountNumber = m[1]
		}
		if m := accountNoPattern.FindStringSubmatch(line); m != nil {
			meta.accountNumber = m[1]
		}
		if rules.OpeningMarker != "" && strings.Contains(line, rules.OpeningMarker) {
			if m := trailingAmountRe.FindStringSubmatch(line); m != nil {
				if d, err := amount.Parse(m[1]); err == nil {
					meta.opening = d
					meta.hasOpening = true
				}
			}
			i++
			continue
		}

		m := rules.Anchor.FindStringSubmatch(line)
		if m == nil {
			i++
			continue
		}

		chunk := Chunk{
			Row:  i + 1,
			Date: strings.TrimSpace(m[1]),
			Head: strings.TrimSpace(line[len(m[0]):]),
		}
		if len(m) > 2 {
			chunk.Head = strings.TrimSpace(m[2])
		}

		j := i + 1
		for j < len(lines) {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				j++
				continue
			}
			if rules.Anchor.MatchString(next) {
				break
			}
			if containsMarker(next, rules.StopMarkers) {
				break
			}
			if containsMarker(next, rules.SkipMarkers) {
				j++
				continue
			}
			detail := whitespaceRe.ReplaceAllString(next, " ")
			if len(detail) > 3 {
				chunk.Tail = append(chunk.Tail, detail)
			}
			j++
		}

		chunks = append(chunks, chunk)
		i = j
	}

	return chunks, meta
}

func containsMarker(line string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}
