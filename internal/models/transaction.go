package models

import "github.com/shopspring/decimal"

// Record is one normalized ledger row in the QuickBooks-compatible shape.
// Debit and Credit are mutually exclusive; a zero value means the side is
// absent and renders as an empty cell. Balance is carried only for banks
// whose statements report a running balance.
type Record struct {
	Date        string // YYYY-MM-DD
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
	HasBalance  bool
	Row         int // position in the source document, for diagnostics
}

// HasDebit reports whether the record carries a debit amount.
func (r Record) HasDebit() bool { return r.Debit.IsPositive() }

// HasCredit reports whether the record carries a credit amount.
func (r Record) HasCredit() bool { return r.Credit.IsPositive() }

// WarningKind classifies a data-quality finding that did not stop the
// conversion.
type WarningKind string

const (
	WarnBalanceMismatch WarningKind = "balance_mismatch"
	WarnSwappedAmounts  WarningKind = "swapped_amounts"
	WarnDualAmount      WarningKind = "dual_amount"
	WarnUnknownType     WarningKind = "unknown_transaction_type"
	WarnLongDescription WarningKind = "long_description"
)

// Warning records a per-row data-quality finding. The converted row is kept.
type Warning struct {
	Kind   WarningKind `json:"kind"`
	Row    int         `json:"row"`
	Detail string      `json:"detail,omitempty"`
}

// Skip records an input chunk that produced no ledger row.
type Skip struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Statement holds everything parsed out of one document.
type Statement struct {
	Bank          string
	AccountNumber string
	Currency      string
	Opening       decimal.Decimal
	HasOpening    bool
	Records       []Record
	Skipped       []Skip
	Warnings      []Warning
}

// DocKind tells the pipeline which acquisition path produced the document.
type DocKind string

const (
	DocPDF DocKind = "pdf"
	DocCSV DocKind = "csv"
)

// Document is the output of text acquisition: either the per-page text of a
// PDF or the raw rows of a CSV, never both.
type Document struct {
	Path  string
	Kind  DocKind
	Pages []string
	Rows  [][]string
}

// Lines flattens PDF pages into a single line slice.
func (d *Document) Lines() []string {
	var lines []string
	for _, page := range d.Pages {
		for _, line := range splitLines(page) {
			lines = append(lines, line)
		}
	}
	return lines
}

func splitLines(page string) []string {
	var out []string
	start := 0
	for i := 0; i < len(page); i++ {
		if page[i] == '\n' {
			out = append(out, trimCR(page[start:i]))
			start = i + 1
		}
	}
	if start < len(page) {
		out = append(out, trimCR(page[start:]))
	}
	return out
}

func trimCR(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\r' {
		return s[:n-1]
	}
	return s
}
