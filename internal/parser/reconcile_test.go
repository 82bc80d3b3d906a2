package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xhelo-hub/bank-select-converter/internal/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestReconcileSwapsSides(t *testing.T) {
	st := &models.Statement{
		Opening:    dec("100"),
		HasOpening: true,
		Records: []models.Record{
			{Date: "2025-09-01", Credit: dec("40"), Balance: dec("60"), HasBalance: true, Row: 3},
		},
	}

	warnings := reconcile(st)

	require.Len(t, warnings, 1)
	assert.Equal(t, models.WarnSwappedAmounts, warnings[0].Kind)
	assert.Equal(t, 3, warnings[0].Row)
	assert.True(t, st.Records[0].Debit.Equal(dec("40")))
	assert.False(t, st.Records[0].HasCredit())
}

func TestReconcileReportsMismatch(t *testing.T) {
	st := &models.Statement{
		Opening:    dec("100"),
		HasOpening: true,
		Records: []models.Record{
			{Date: "2025-09-01", Debit: dec("10"), Balance: dec("85"), HasBalance: true, Row: 4},
		},
	}

	warnings := reconcile(st)

	require.Len(t, warnings, 1)
	assert.Equal(t, models.WarnBalanceMismatch, warnings[0].Kind)
	assert.Contains(t, warnings[0].Detail, "90.00")
	assert.Contains(t, warnings[0].Detail, "85.00")
	// A mismatch is reported, never silently corrected.
	assert.True(t, st.Records[0].Debit.Equal(dec("10")))
}

func TestReconcileSkipsBalancelessRecords(t *testing.T) {
	st := &models.Statement{
		Opening:    dec("100"),
		HasOpening: true,
		Records: []models.Record{
			{Date: "2025-09-01", Debit: dec("10"), Row: 2},
			{Date: "2025-09-02", Credit: dec("5"), Balance: dec("105"), HasBalance: true, Row: 3},
		},
	}

	assert.Empty(t, reconcile(st))
}

func TestReconcileToleratesRounding(t *testing.T) {
	st := &models.Statement{
		Opening:    dec("100"),
		HasOpening: true,
		Records: []models.Record{
			{Date: "2025-09-01", Credit: dec("10"), Balance: dec("110.01"), HasBalance: true, Row: 2},
		},
	}

	assert.Empty(t, reconcile(st))
}

func TestReconcileWithoutOpeningSeedsFromFirstBalance(t *testing.T) {
	st := &models.Statement{
		Records: []models.Record{
			{Date: "2025-09-01", Debit: dec("999"), Balance: dec("50"), HasBalance: true, Row: 2},
			{Date: "2025-09-02", Credit: dec("25"), Balance: dec("75"), HasBalance: true, Row: 3},
		},
	}

	// The first balance-carrying record cannot be checked, only used as seed.
	assert.Empty(t, reconcile(st))
}
