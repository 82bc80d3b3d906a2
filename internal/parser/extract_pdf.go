package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Xhelo-hub/bank-select-converter/internal/amount"
	"github.com/Xhelo-hub/bank-select-converter/internal/dates"
	"github.com/Xhelo-hub/bank-select-converter/internal/models"
	"github.com/Xhelo-hub/bank-select-converter/internal/profile"
)

var (
	// Amount tokens inside a BKT transaction line, always dot-decimal.
	dottedAmountRe = regexp.MustCompile(`^[\d,]+\.\d{2}$`)
	// "-22,000.00  33,923.15" at the end of a Tirana Bank line.
	signedTailDebitRe  = regexp.MustCompile(`-([\d,]+(?:\.\d{2})?)\s+([\d,]+(?:\.\d{2})?)\s*$`)
	signedTailCreditRe = regexp.MustCompile(`([\d,]+(?:\.\d{2})?)\s+([\d,]+(?:\.\d{2})?)\s*$`)
	// Union detail line: "... <value-date> <amount> <balance>".
	unionDetailRe      = regexp.MustCompile(`(\d{2}-[A-Z]{3}-\d{4})\s+(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s+(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*$`)
	// A bare trailing integer is usually a reference number, so the debit
	// column is only recognized with explicit cents.
	unionThirdAmountRe = regexp.MustCompile(`(?:^|\s)(\d{1,3}(?:,\d{3})*\.\d{2})$`)
	// OTP card statements group thousands with spaces: "9 900,00".
	spacedAmountRe  = regexp.MustCompile(`(\d{1,3}(?:\s\d{3})*,\d{2})`)
	trailingDateRe  = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{2})\s*$`)
	slashedAnchorRe = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2}`)
)

// extractChunk turns one segmented chunk into a ledger record, a skip, or a
// record with warnings, according to the profile's extraction mode.
func extractChunk(chunk Chunk, prof *profile.Profile) Outcome {
	switch prof.PDF.Mode {
	case profile.ModeTrailingAmounts:
		return extractTrailingAmounts(chunk, prof)
	case profile.ModeSignedTail:
		return extractSignedTail(chunk, prof)
	case profile.ModeDetailLine:
		return extractDetailLine(chunk, prof)
	case profile.ModeAmountBelow:
		return extractAmountBelow(chunk, prof)
	}
	return skip(chunk.Row, "no extraction mode for profile "+prof.ID)
}

// extractTrailingAmounts handles the BKT layout: the anchor line carries
// type, reference and one to three amounts; meaning follows from the count.
func extractTrailingAmounts(chunk Chunk, prof *profile.Profile) Outcome {
	date, err := dates.Normalize(chunk.Date, prof.DateLayout)
	if err != nil {
		return skip(chunk.Row, "unparseable date "+chunk.Date)
	}

	parts := strings.Fields(chunk.Head)
	if len(parts) < 2 {
		return skip(chunk.Row, "unrecognized transaction line")
	}
	txType := parts[0]
	reference := parts[1]

	var amounts []decimal.Decimal
	for _, part := range parts {
		if !dottedAmountRe.MatchString(part) {
			continue
		}
		if d, perr := amount.Parse(part); perr == nil {
			amounts = append(amounts, d)
		}
	}

	rec := models.Record{Date: date, Row: chunk.Row}
	switch {
	case len(amounts) == 1:
		rec.Balance, rec.HasBalance = amounts[0], true
	case len(amounts) == 2:
		if isDebitType(txType, prof.PDF.DebitTypes) {
			rec.Debit = amounts[0]
		} else {
			rec.Credit = amounts[0]
		}
		rec.Balance, rec.HasBalance = amounts[1], true
	case len(amounts) >= 3:
		rec.Debit = amounts[0]
		rec.Credit = amounts[1]
		rec.Balance, rec.HasBalance = amounts[2], true
	}

	desc := txType
	if reference != "" {
		desc += " - " + reference
	}
	if details := capped(chunk.Tail, prof.PDF.MaxDetails); len(details) > 0 {
		desc += prof.PDF.Join + strings.Join(details, prof.PDF.Join)
	}
	rec.Description = desc

	out := emit(rec)
	if rec.HasDebit() && rec.HasCredit() {
		out = out.warn(models.WarnDualAmount, chunk.Row, "row carries both debit and credit")
	}
	return out
}

// extractSignedTail handles the Tirana Bank layout: the anchor line ends in
// "[-]amount balance" where a minus sign marks a debit.
func extractSignedTail(chunk Chunk, prof *profile.Profile) Outcome {
	date, err := dates.Normalize(chunk.Date, prof.DateLayout)
	if err != nil {
		return skip(chunk.Row, "unparseable date "+chunk.Date)
	}

	rec := models.Record{Date: date, Row: chunk.Row}
	descHead := chunk.Head

	if m := signedTailDebitRe.FindStringSubmatchIndex(chunk.Head); m != nil {
		rec.Debit = mustAmount(chunk.Head[m[2]:m[3]])
		rec.Balance, rec.HasBalance = mustAmount(chunk.Head[m[4]:m[5]]), true
		descHead = strings.TrimSpace(chunk.Head[:m[0]])
	} else if m := signedTailCreditRe.FindStringSubmatchIndex(chunk.Head); m != nil {
		rec.Credit = mustAmount(chunk.Head[m[2]:m[3]])
		rec.Balance, rec.HasBalance = mustAmount(chunk.Head[m[4]:m[5]]), true
		descHead = strings.TrimSpace(chunk.Head[:m[0]])
	} else {
		return skip(chunk.Row, "no amounts on transaction line")
	}

	parts := chunk.Tail
	if descHead != "" {
		parts = append([]string{descHead}, chunk.Tail...)
	}
	rec.Description = strings.TrimSpace(strings.Join(parts, prof.PDF.Join))
	return emit(rec)
}

// extractDetailLine handles the Union Bank layout: the anchor line holds only
// the booking date, and a later line ends "<value-date> <amount> <balance>",
// optionally preceded by a debit amount.
func extractDetailLine(chunk Chunk, prof *profile.Profile) Outcome {
	date, err := dates.Normalize(chunk.Date, prof.DateLayout)
	if err != nil {
		return skip(chunk.Row, "unparseable date "+chunk.Date)
	}

	rec := models.Record{Date: date, Row: chunk.Row}
	var descParts []string
	found := false

	for _, line := range chunk.Tail {
		m := unionDetailRe.FindStringSubmatchIndex(line)
		if m == nil || found {
			descParts = append(descParts, line)
			continue
		}
		found = true

		amt := mustAmount(line[m[4]:m[5]])
		rec.Balance, rec.HasBalance = mustAmount(line[m[6]:m[7]]), true

		before := strings.TrimSpace(line[:m[0]])
		if tm := unionThirdAmountRe.FindStringSubmatchIndex(before); tm != nil {
			// Three amounts on the line: debit, credit, balance.
			if d := mustAmount(before[tm[2]:tm[3]]); d.IsPositive() {
				rec.Debit = d
			}
			before = strings.TrimSpace(before[:tm[0]])
			if amt.IsPositive() {
				rec.Credit = amt
			}
		} else if amt.IsPositive() {
			// Two amounts: the side is provisional until reconciliation.
			rec.Credit = amt
		}
		if before != "" {
			descParts = append(descParts, before)
		}
	}

	if !found {
		return skip(chunk.Row, "no amounts found for transaction")
	}

	rec.Description = collapseSpaces(strings.Join(descParts, prof.PDF.Join))
	out := emit(rec)
	if rec.HasDebit() && rec.HasCredit() {
		out = out.warn(models.WarnDualAmount, chunk.Row, "row carries both debit and credit")
	}
	return out
}

// extractAmountBelow handles the OTP card layout: the amount may sit on the
// anchor line or up to LookAhead lines below it. Every row is a debit.
func extractAmountBelow(chunk Chunk, prof *profile.Profile) Outcome {
	lines := append([]string{chunk.Head}, chunk.Tail...)
	dateToken := chunk.Date
	var descParts []string

	for i, line := range lines {
		if i > prof.PDF.LookAhead {
			break
		}
		if i > 0 && slashedAnchorRe.MatchString(line) {
			break
		}
		m := spacedAmountRe.FindStringSubmatchIndex(line)
		if m == nil {
			if strings.TrimSpace(line) != "" {
				descParts = append(descParts, strings.TrimSpace(line))
			}
			continue
		}

		amt := mustAmount(line[m[2]:m[3]]).Abs()
		if tm := trailingDateRe.FindStringSubmatch(line); tm != nil {
			// The booking date at the end of the amount line wins.
			dateToken = tm[1]
		}
		if before := strings.TrimSpace(line[:m[0]]); before != "" {
			descParts = append(descParts, before)
		}

		date, err := dates.Normalize(dateToken, prof.DateLayout)
		if err != nil {
			return skip(chunk.Row, "unparseable date "+dateToken)
		}
		desc := collapseSpaces(strings.Join(descParts, prof.PDF.Join))
		if desc == "" {
			return skip(chunk.Row, "no description for transaction")
		}
		return emit(models.Record{
			Date:        date,
			Description: desc,
			Debit:       amt,
			Row:         chunk.Row,
		})
	}

	return skip(chunk.Row, "no amount found near transaction date")
}

func isDebitType(txType string, debitTypes []string) bool {
	for _, t := range debitTypes {
		if txType == t || strings.HasPrefix(t, txType) {
			return true
		}
	}
	return false
}

func capped(details []string, max int) []string {
	if max > 0 && len(details) > max {
		return details[:max]
	}
	return details
}

func mustAmount(s string) decimal.Decimal {
	d, err := amount.Parse(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
