package parser

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Xhelo-hub/bank-select-converter/internal/models"
)

// Banks round running balances to the cent; anything past that is a
// genuine mismatch.
var balanceEpsilon = decimal.RequireFromString("0.01")

// reconcile checks the balance progression of every record that carries a
// running balance: previous - debit + credit must equal the new balance.
// When the check fails but holds with the sides exchanged, the sides are
// swapped and the correction is reported as a warning rather than silently
// applied. Records without a balance neither participate nor break the chain.
func reconcile(st *models.Statement) []models.Warning {
	var warnings []models.Warning

	prev := st.Opening
	hasPrev := st.HasOpening

	for i := range st.Records {
		rec := &st.Records[i]
		if !rec.HasBalance {
			continue
		}
		if hasPrev {
			expected := prev.Sub(rec.Debit).Add(rec.Credit)
			if expected.Sub(rec.Balance).Abs().GreaterThan(balanceEpsilon) {
				swapped := prev.Sub(rec.Credit).Add(rec.Debit)
				if swapped.Sub(rec.Balance).Abs().LessThanOrEqual(balanceEpsilon) {
					rec.Debit, rec.Credit = rec.Credit, rec.Debit
					warnings = append(warnings, models.Warning{
						Kind: models.WarnSwappedAmounts,
						Row:  rec.Row,
						Detail: fmt.Sprintf("swapped debit/credit for %s %q",
							rec.Date, truncate(rec.Description, 30)),
					})
				} else {
					warnings = append(warnings, models.Warning{
						Kind: models.WarnBalanceMismatch,
						Row:  rec.Row,
						Detail: fmt.Sprintf("expected balance %s, statement says %s",
							expected.StringFixed(2), rec.Balance.StringFixed(2)),
					})
				}
			}
		}
		prev, hasPrev = rec.Balance, true
	}

	return warnings
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
