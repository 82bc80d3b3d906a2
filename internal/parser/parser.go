// Package parser implements the shared statement pipeline: segmentation,
// field extraction and balance reconciliation, all parameterized by a bank
// profile. No per-bank control flow lives here.
package parser

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Xhelo-hub/bank-select-converter/internal/models"
	"github.com/Xhelo-hub/bank-select-converter/internal/profile"
)

// Parse runs the full pipeline on an acquired document and returns the
// normalized statement. Per-record problems become skips or warnings on the
// statement; only document-level failures return an error.
func Parse(doc *models.Document, prof *profile.Profile) (*models.Statement, error) {
	if !prof.Supports(doc.Kind) {
		return nil, fmt.Errorf("bank %s does not issue %s statements", prof.ID, doc.Kind)
	}

	st := &models.Statement{Bank: prof.Bank}

	var outcomes []Outcome
	switch doc.Kind {
	case models.DocCSV:
		var err error
		outcomes, err = extractCSV(doc, prof)
		if err != nil {
			return nil, err
		}
	case models.DocPDF:
		if prof.PDF.Mode == profile.ModeTokenStream {
			outcomes = extractTokenStream(doc, prof)
		} else {
			chunks, meta := segmentPDF(doc, prof.PDF)
			st.AccountNumber = meta.accountNumber
			st.Opening, st.HasOpening = meta.opening, meta.hasOpening
			for _, chunk := range chunks {
				outcomes = append(outcomes, extractChunk(chunk, prof))
			}
		}
	}

	for _, out := range outcomes {
		if out.Record != nil {
			st.Records = append(st.Records, *out.Record)
		}
		if out.Skip != nil {
			st.Skipped = append(st.Skipped, *out.Skip)
		}
		st.Warnings = append(st.Warnings, out.Warnings...)
	}

	st.Warnings = append(st.Warnings, reconcile(st)...)

	// Statements that open with a balance-only carrier row drop it; its
	// balance has already seeded reconciliation.
	if prof.DropLeadingBalanceRow && len(st.Records) > 0 {
		first := st.Records[0]
		if !first.HasDebit() && !first.HasCredit() {
			st.Records = st.Records[1:]
			st.Skipped = append(st.Skipped, models.Skip{Row: first.Row, Reason: "opening balance row"})
		}
	}

	if !prof.EmitBalance {
		for i := range st.Records {
			st.Records[i].Balance = decimal.Zero
			st.Records[i].HasBalance = false
		}
	}

	return st, nil
}
