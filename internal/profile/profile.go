// Package profile holds the per-bank format descriptions that drive the
// shared parsing pipeline. Adding a bank means adding a Profile value here,
// not writing new control flow.
package profile

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Xhelo-hub/bank-select-converter/internal/dates"
	"github.com/Xhelo-hub/bank-select-converter/internal/models"
)

// ExtractMode selects how transaction fields are pulled out of a PDF chunk.
type ExtractMode string

const (
	// ModeTrailingAmounts reads 1-3 amounts off the anchor line and assigns
	// debit/credit/balance by count, with a keyword list for debit types.
	ModeTrailingAmounts ExtractMode = "trailing-amounts"
	// ModeSignedTail reads "<description> [-]amount balance" from the anchor
	// line; a negative amount is a debit.
	ModeSignedTail ExtractMode = "signed-tail"
	// ModeDetailLine finds the amounts on a later detail line ending with
	// "<value-date> <amount> <amount>".
	ModeDetailLine ExtractMode = "detail-line"
	// ModeAmountBelow scans up to LookAhead lines below the anchor for a
	// European-format amount; every match is a debit.
	ModeAmountBelow ExtractMode = "amount-below"
	// ModeTokenStream treats each line as one table cell: row number,
	// transaction number, date, debit, credit, balance, description tokens.
	ModeTokenStream ExtractMode = "token-stream"
)

// PDFRules describes how to segment and read a bank's PDF statement.
type PDFRules struct {
	Mode          ExtractMode
	Anchor        *regexp.Regexp // line starting a transaction; group 1 is the date token
	StopMarkers   []string       // end the transaction or its detail collection
	SkipMarkers   []string       // lines ignored while collecting details
	StartMarkers  []string       // ModeTokenStream: header cell after which data begins
	OpeningMarker string         // banner line carrying the opening balance
	Join          string         // separator between description fragments
	MaxDetails    int            // cap on collected detail fragments, 0 = no cap
	LookAhead     int            // ModeAmountBelow: how far below the anchor to scan
	DebitTypes    []string       // ModeTrailingAmounts: leading tokens that mean debit
}

// CSVRules describes a bank's CSV export: where the real header row is and
// which columns feed each output field.
type CSVRules struct {
	HeaderMarkers []string // cells that identify the header row
	DateCol       string
	DebitCol      string
	CreditCol     string
	AmountCol     string // single signed amount column, splits by sign
	BalanceCol    string
	TypeCol       string // polarity column (TypeDebit/TypeCredit values)
	RefCol        string
	DescCols      []string
	Join          string
	RefPrefix     string // "Ref: "
	RefLeading    bool   // reference goes before the description, not after
	TypeDebit     string
	TypeCredit    string
	PipeClean     bool     // description uses '||' separators; keep party + Rem Info
	SkipMarkers   []string // row is skipped when any cell contains one of these
	AbsBalance    bool     // balance column is stored as an absolute value
}

// Profile is the complete format description for one bank.
type Profile struct {
	ID         string
	Bank       string
	Inputs     []models.DocKind
	DateLayout dates.Layout
	Markers    []string // lowercase substrings used for auto-detection
	PDF        *PDFRules
	CSV        *CSVRules

	// EmitBalance keeps the running balance in the output table. Banks
	// whose balances are only used for reconciliation drop the column.
	EmitBalance bool
	// DropLeadingBalanceRow removes the first parsed row when it carries
	// neither debit nor credit (an opening-balance carrier line).
	DropLeadingBalanceRow bool
}

// Supports reports whether the profile can read documents of the given kind.
func (p *Profile) Supports(kind models.DocKind) bool {
	for _, k := range p.Inputs {
		if k == kind {
			return true
		}
	}
	return false
}

// FindHeaderRow locates the real header row in a CSV export, skipping the
// account-metadata preamble some banks put above it. Returns -1 if absent.
func (r *CSVRules) FindHeaderRow(rows [][]string) int {
	for i, row := range rows {
		if r.headerMatch(row) {
			return i
		}
	}
	return -1
}

func (r *CSVRules) headerMatch(row []string) bool {
	for _, marker := range r.HeaderMarkers {
		found := false
		for _, cell := range row {
			if strings.Contains(strings.TrimSpace(cell), marker) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return len(r.HeaderMarkers) > 0
}

// Get returns the profile with the given ID.
func Get(id string) (*Profile, error) {
	p, ok := registry[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return nil, fmt.Errorf("unknown bank %q (known: %s)", id, strings.Join(IDs(), ", "))
	}
	return p, nil
}

// All returns every registered profile, ordered by ID.
func All() []*Profile {
	out := make([]*Profile, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IDs returns the registered profile IDs, sorted.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
