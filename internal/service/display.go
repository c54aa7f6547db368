package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/galahseno/SpendLess-sub000/models"
)

// FormatAmount renders a signed amount for display, honoring the session's
// expenses format, currency symbol and separators. Two decimal places
// always; thousands grouped in threes.
//
//	-1234.5, minus prefix, "$", dot decimals, comma thousands → "-$1,234.50"
//	-1234.5, parentheses → "($1,234.50)"
func FormatAmount(amount float64, session models.UserSession) string {
	fixed := strconv.FormatFloat(math.Abs(amount), 'f', 2, 64)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	negative := amount < 0
	parens := negative && session.ExpensesFormat == models.ExpensesParentheses

	if negative && !parens {
		b.WriteByte('-')
	}
	if parens {
		b.WriteByte('(')
	}
	b.WriteString(session.CurrencySymbol)
	b.WriteString(groupThousands(whole, session.ThousandSeparator.Rune()))
	b.WriteRune(session.DecimalSeparator.Rune())
	b.WriteString(frac)
	if parens {
		b.WriteByte(')')
	}

	return b.String()
}

func groupThousands(digits string, sep rune) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteRune(sep)
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
