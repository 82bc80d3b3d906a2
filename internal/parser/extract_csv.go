package parser

import (
	"fmt"
	"strings"

	"github.com/Xhelo-hub/bank-select-converter/internal/amount"
	"github.com/Xhelo-hub/bank-select-converter/internal/dates"
	"github.com/Xhelo-hub/bank-select-converter/internal/models"
	"github.com/Xhelo-hub/bank-select-converter/internal/profile"
)

// extractCSV maps every data row of a CSV export to an outcome. The real
// header row is located first; several banks put account metadata above it.
func extractCSV(doc *models.Document, prof *profile.Profile) ([]Outcome, error) {
	rules := prof.CSV
	headerIdx := rules.FindHeaderRow(doc.Rows)
	if headerIdx < 0 {
		return nil, fmt.Errorf("header row not found in %s export", prof.ID)
	}

	cols := make(map[string]int)
	for i, cell := range doc.Rows[headerIdx] {
		cols[strings.TrimSpace(cell)] = i
	}

	var outcomes []Outcome
	for k, row := range doc.Rows[headerIdx+1:] {
		rowNum := headerIdx + k + 2 // 1-based position in the file
		outcomes = append(outcomes, extractCSVRow(row, rowNum, cols, prof))
	}
	return outcomes, nil
}

func extractCSVRow(row []string, rowNum int, cols map[string]int, prof *profile.Profile) Outcome {
	rules := prof.CSV
	get := func(col string) string {
		i, ok := cols[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	if emptyRow(row) {
		return skip(rowNum, "empty row")
	}
	for _, marker := range rules.SkipMarkers {
		for _, cell := range row {
			if strings.Contains(cell, marker) {
				return skip(rowNum, "summary row")
			}
		}
	}

	dateToken := get(rules.DateCol)
	if dateToken == "" {
		return skip(rowNum, "missing date")
	}
	date, err := dates.Normalize(dateToken, prof.DateLayout)
	if err != nil {
		return skip(rowNum, "unparseable date "+dateToken)
	}

	rec := models.Record{Date: date, Row: rowNum}
	var warnings []models.Warning

	if rules.AmountCol != "" {
		raw := get(rules.AmountCol)
		if raw == "" {
			return skip(rowNum, "missing amount")
		}
		amt, perr := amount.Parse(raw)
		if perr != nil {
			return skip(rowNum, "unparseable amount "+raw)
		}
		switch {
		case rules.TypeCol != "" && strings.EqualFold(get(rules.TypeCol), rules.TypeDebit):
			rec.Debit = amt.Abs()
		case rules.TypeCol != "" && strings.EqualFold(get(rules.TypeCol), rules.TypeCredit):
			rec.Credit = amt.Abs()
		case rules.TypeCol != "":
			// Unknown polarity defaults to debit but is flagged.
			rec.Debit = amt.Abs()
			warnings = append(warnings, models.Warning{
				Kind: models.WarnUnknownType, Row: rowNum,
				Detail: "unknown transaction type " + get(rules.TypeCol),
			})
		case amt.IsNegative():
			rec.Debit = amt.Abs()
		case amt.IsPositive():
			rec.Credit = amt
		default:
			return skip(rowNum, "zero amount")
		}
	} else {
		debit, hasDebit, derr := amount.ParseOptional(get(rules.DebitCol))
		credit, hasCredit, cerr := amount.ParseOptional(get(rules.CreditCol))
		if derr != nil || cerr != nil {
			return skip(rowNum, "unparseable amount")
		}
		if !hasDebit && !hasCredit {
			return skip(rowNum, "no amount")
		}
		if hasDebit && !debit.IsZero() {
			rec.Debit = debit.Abs()
		}
		if hasCredit && !credit.IsZero() {
			rec.Credit = credit.Abs()
		}
		if rec.Debit.IsZero() && rec.Credit.IsZero() {
			return skip(rowNum, "zero amount")
		}
	}

	if rules.BalanceCol != "" {
		if bal, ok, berr := amount.ParseOptional(get(rules.BalanceCol)); berr == nil && ok {
			if rules.AbsBalance {
				bal = bal.Abs()
			}
			rec.Balance, rec.HasBalance = bal, true
		}
	}

	rec.Description = buildDescription(get, rules, rowNum, &warnings)

	out := emit(rec)
	out.Warnings = warnings
	if rec.HasDebit() && rec.HasCredit() {
		out = out.warn(models.WarnDualAmount, rowNum, "row carries both debit and credit")
	}
	return out
}

func buildDescription(get func(string) string, rules *profile.CSVRules, rowNum int, warnings *[]models.Warning) string {
	var parts []string
	for _, col := range rules.DescCols {
		v := get(col)
		if v == "" {
			continue
		}
		if len(v) > 1000 {
			*warnings = append(*warnings, models.Warning{
				Kind: models.WarnLongDescription, Row: rowNum,
				Detail: fmt.Sprintf("description is %d characters", len(v)),
			})
		}
		if rules.PipeClean {
			v = cleanPipedDescription(v)
		}
		parts = append(parts, v)
	}

	desc := strings.Join(parts, rules.Join)
	if ref := get(rules.RefCol); rules.RefCol != "" && ref != "" {
		if rules.RefLeading {
			desc = rules.RefPrefix + ref + rules.Join + desc
		} else {
			desc = strings.TrimSpace(desc + rules.Join + rules.RefPrefix + ref)
		}
	}
	return collapseSpaces(desc)
}

// cleanPipedDescription reduces a '||'-separated Intesa description to the
// leading party plus the remittance info, capped for ledger import.
func cleanPipedDescription(raw string) string {
	parts := strings.Split(raw, "||")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	mainParty := parts[0]

	var remInfo string
	for _, part := range parts {
		if strings.HasPrefix(part, "Rem Info::") {
			remInfo = strings.TrimSpace(strings.TrimPrefix(part, "Rem Info::"))
			break
		}
	}

	desc := mainParty
	if remInfo != "" {
		desc = mainParty + " | " + remInfo
	}
	if runes := []rune(desc); len(runes) > 500 {
		desc = string(runes[:500])
	}
	return strings.TrimSpace(desc)
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
