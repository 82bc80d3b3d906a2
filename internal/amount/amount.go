// Package amount parses the money notations found on Albanian bank
// statements. Banks mix anglo formatting (31,719.00), continental
// formatting (31.719,00) and space-grouped formatting (9 900,00), often
// with a trailing currency code.
package amount

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var currencyCodes = []string{"ALL", "LEK", "EUR", "USD", "GBP", "CHF"}

// Parse converts a statement amount token into a decimal, preserving sign.
// An empty token is an error; use ParseOptional for cells that may be blank.
func Parse(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}

	cleaned = stripCurrency(cleaned)

	if strings.HasPrefix(cleaned, "-") {
		negative = !negative
		cleaned = cleaned[1:]
	} else if strings.HasPrefix(cleaned, "+") {
		cleaned = cleaned[1:]
	}

	// Spaces and no-break spaces only ever group thousands.
	cleaned = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\u00a0' || r == '\u202f' {
			return -1
		}
		return r
	}, cleaned)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("no digits in amount %q", s)
	}

	d, err := decimal.NewFromString(canonicalize(cleaned))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// ParseOptional is Parse for cells that may legitimately be blank.
// The second result is false when the token is empty.
func ParseOptional(s string) (decimal.Decimal, bool, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, false, nil
	}
	d, err := Parse(s)
	if err != nil {
		return decimal.Zero, false, err
	}
	return d, true, nil
}

func stripCurrency(s string) string {
	upper := strings.ToUpper(s)
	for _, code := range currencyCodes {
		if strings.HasSuffix(upper, code) {
			return strings.TrimSpace(s[:len(s)-len(code)])
		}
		if strings.HasPrefix(upper, code+" ") {
			return strings.TrimSpace(s[len(code):])
		}
	}
	return s
}

// canonicalize rewrites the token with '.' as the decimal separator and no
// grouping. When both separators appear, the rightmost one is decimal. A
// lone separator is decimal only when at most two digits follow it.
func canonicalize(s string) string {
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			// 31.719,00
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			// 31,719.00
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if decimalish(s, lastComma) && strings.Count(s, ",") == 1 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastDot >= 0:
		if !decimalish(s, lastDot) || strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}
	return s
}

func decimalish(s string, sep int) bool {
	trailing := len(s) - sep - 1
	return trailing >= 1 && trailing <= 2
}
