package models

// DashboardSummary is the decrypted account overview shown on the main
// screen. Display strings are formatted per the session's preferences
// (expenses format, currency symbol, separators).
type DashboardSummary struct {
	// Balance is the signed sum of every transaction amount.
	Balance float64 `json:"balance"`

	// BalanceDisplay is Balance formatted for presentation.
	BalanceDisplay string `json:"balance_display"`

	// Largest is the transaction with the greatest absolute amount,
	// nil when the account has no transactions yet.
	Largest *LargestTransaction `json:"largest,omitempty"`

	// LargestDisplay is the largest amount formatted for presentation,
	// empty when Largest is nil.
	LargestDisplay string `json:"largest_display,omitempty"`

	// CategoryTotals holds per-category aggregates ordered by absolute
	// total, largest first.
	CategoryTotals []CategoryTotal `json:"category_totals"`
}
