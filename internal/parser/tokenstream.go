package parser

import (
	"strings"

	"github.com/Xhelo-hub/bank-select-converter/internal/amount"
	"github.com/Xhelo-hub/bank-select-converter/internal/dates"
	"github.com/Xhelo-hub/bank-select-converter/internal/models"
	"github.com/Xhelo-hub/bank-select-converter/internal/profile"
)

// extractTokenStream handles PDFs whose table cells arrive one per line:
// row number, transaction number, date, debit, credit, balance, then the
// free-text description tokens. ProCredit statements extract this way.
func extractTokenStream(doc *models.Document, prof *profile.Profile) []Outcome {
	rules := prof.PDF

	var tokens []string
	for _, line := range doc.Lines() {
		if t := strings.TrimSpace(line); t != "" {
			tokens = append(tokens, t)
		}
	}

	start := -1
	for i, tok := range tokens {
		if containsMarker(tok, rules.StartMarkers) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var outcomes []Outcome
	i := start
	for i < len(tokens) {
		if !isRowNumber(tokens[i]) {
			i++
			continue
		}
		if i+5 >= len(tokens) || !rules.Anchor.MatchString(tokens[i+2]) {
			i++
			continue
		}

		row := i + 1
		dateToken := tokens[i+2]
		date, err := dates.Normalize(dateToken, prof.DateLayout)
		if err != nil {
			outcomes = append(outcomes, skip(row, "unparseable date "+dateToken))
			i += 3
			continue
		}

		debit, _, derr := amount.ParseOptional(tokens[i+3])
		credit, _, cerr := amount.ParseOptional(tokens[i+4])
		balance, hasBalance, berr := amount.ParseOptional(tokens[i+5])
		if derr != nil || cerr != nil || berr != nil {
			outcomes = append(outcomes, skip(row, "unparseable amount"))
			i += 6
			continue
		}

		var descParts []string
		j := i + 6
		for j < len(tokens) {
			if isRowNumber(tokens[j]) && j+2 < len(tokens) && rules.Anchor.MatchString(tokens[j+2]) {
				break
			}
			descParts = append(descParts, tokens[j])
			j++
			if rules.MaxDetails > 0 && len(descParts) > rules.MaxDetails {
				break
			}
		}

		desc := collapseSpaces(strings.Join(descParts, rules.Join))
		if desc == "" {
			desc = "Transaction"
		}

		rec := models.Record{
			Date:        date,
			Description: desc,
			Row:         row,
		}
		if debit.IsPositive() {
			rec.Debit = debit
		}
		if credit.IsPositive() {
			rec.Credit = credit
		}
		if hasBalance {
			rec.Balance, rec.HasBalance = balance, true
		}

		out := emit(rec)
		if rec.HasDebit() && rec.HasCredit() {
			out = out.warn(models.WarnDualAmount, row, "row carries both debit and credit")
		}
		outcomes = append(outcomes, out)
		i = j
	}
	return outcomes
}

// Row numbers in the table are 1-3 digit integers.
func isRowNumber(tok string) bool {
	if len(tok) == 0 || len(tok) > 3 {
		return false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
