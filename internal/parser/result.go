package parser

import "github.com/Xhelo-hub/bank-select-converter/internal/models"

// Outcome is the result of extracting fields from one chunk or row.
// Exactly one of Record and Skip is set. Warnings may accompany a record:
// the row is kept but flagged.
type Outcome struct {
	Record   *models.Record
	Skip     *models.Skip
	Warnings []models.Warning
}

func emit(rec models.Record) Outcome {
	return Outcome{Record: &rec}
}

func skip(row int, reason string) Outcome {
	return Outcome{Skip: &models.Skip{Row: row, Reason: reason}}
}

func (o Outcome) warn(kind models.WarningKind, row int, detail string) Outcome {
	o.Warnings = append(o.Warnings, models.Warning{Kind: kind, Row: row, Detail: detail})
	return o
}
