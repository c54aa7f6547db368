package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ExpensesFormat defines how negative amounts are rendered on screen.
// Persisted as an integer tag inside the encrypted preferences blob; an
// unknown tag is rejected at decode time rather than silently accepted.
type ExpensesFormat int

const (
	// ExpensesMinusPrefix renders expenses as "-$10.00".
	ExpensesMinusPrefix ExpensesFormat = 1

	// ExpensesParentheses renders expenses as "($10.00)".
	ExpensesParentheses ExpensesFormat = 2
)

// Valid reports whether f is one of the declared formats.
func (f ExpensesFormat) Valid() bool {
	return f == ExpensesMinusPrefix || f == ExpensesParentheses
}

// UnmarshalJSON validates the integer tag so that a corrupted or
// hand-edited preferences blob fails loudly during deserialization.
func (f *ExpensesFormat) UnmarshalJSON(data []byte) error {
	var tag int
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	v := ExpensesFormat(tag)
	if !v.Valid() {
		return fmt.Errorf("unknown expenses format tag %d", tag)
	}
	*f = v
	return nil
}

// Separator defines the character used for decimal or thousand grouping.
type Separator int

const (
	// SeparatorDot renders "1.00" / "1.000".
	SeparatorDot Separator = 1

	// SeparatorComma renders "1,00" / "1,000".
	SeparatorComma Separator = 2

	// SeparatorSpace renders "1 000". Only meaningful for thousands.
	SeparatorSpace Separator = 3
)

// Valid reports whether s is one of the declared separators.
func (s Separator) Valid() bool {
	return s == SeparatorDot || s == SeparatorComma || s == SeparatorSpace
}

// Rune returns the display character of the separator.
func (s Separator) Rune() rune {
	switch s {
	case SeparatorComma:
		return ','
	case SeparatorSpace:
		return ' '
	default:
		return '.'
	}
}

// UnmarshalJSON validates the integer tag, see [ExpensesFormat.UnmarshalJSON].
func (s *Separator) UnmarshalJSON(data []byte) error {
	var tag int
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	v := Separator(tag)
	if !v.Valid() {
		return fmt.Errorf("unknown separator tag %d", tag)
	}
	*s = v
	return nil
}

// UserSession holds the active session and display preferences of the
// logged-in user. The whole structure is serialized and stored encrypted;
// individual fields are never written to disk in plaintext.
type UserSession struct {
	// UserID identifies the logged-in account; zero when logged out.
	UserID int64 `json:"user_id"`

	// Username mirrors the account's display identifier.
	Username string `json:"username"`

	// SessionToken is a random UUID minted on every successful login or
	// registration. It distinguishes session generations so a stale
	// in-memory copy can be detected after a re-login.
	SessionToken string `json:"session_token"`

	// ExpensesFormat selects the negative-amount rendering style.
	ExpensesFormat ExpensesFormat `json:"expenses_format"`

	// CurrencySymbol is the symbol prepended to amounts (e.g. "$").
	CurrencySymbol string `json:"currency_symbol"`

	// DecimalSeparator separates the fractional part of an amount.
	DecimalSeparator Separator `json:"decimal_separator"`

	// ThousandSeparator groups the integer part of an amount.
	ThousandSeparator Separator `json:"thousand_separator"`

	// AddBottomSheetOpen records whether the add-transaction sheet was
	// open when the app went to background, so it can be restored.
	AddBottomSheetOpen bool `json:"add_bottom_sheet_open"`

	// LastActiveAt is the wall-clock instant of the most recent foreground
	// activity. Session expiry is computed from the time elapsed since it.
	LastActiveAt time.Time `json:"last_active_at"`
}

// LoggedIn reports whether the session belongs to an authenticated user.
func (s UserSession) LoggedIn() bool {
	return s.UserID != 0
}

// UserSecurity holds the user-configurable security settings. Persisted via
// the encrypted preferences path like UserSession.
type UserSecurity struct {
	// BiometricPromptEnabled toggles the biometric unlock prompt.
	BiometricPromptEnabled bool `json:"biometric_prompt_enabled"`

	// SessionExpiryDuration is how long the app may stay in background
	// before the PIN gate is shown again.
	SessionExpiryDuration time.Duration `json:"session_expiry_duration"`

	// LockedOutDuration is how long the PIN gate stays locked after the
	// maximum number of failed attempts is reached.
	LockedOutDuration time.Duration `json:"locked_out_duration"`
}

// PinPromptAttempt tracks the brute-force guessing state of the PIN gate.
// Mutated on every failed check, reset on success, persisted encrypted so a
// process restart cannot clear the counter.
type PinPromptAttempt struct {
	// FailedAttempt counts consecutive failed PIN checks.
	FailedAttempt int `json:"failed_attempt"`

	// MaxFailedAttemptReached is set when FailedAttempt hits the
	// configured maximum and a lockout window begins.
	MaxFailedAttemptReached bool `json:"max_failed_attempt_reached"`

	// LockedOutUntil is the absolute instant the lockout window ends.
	// Zero when no lockout is active. Stored as an absolute deadline so
	// that restarting the process does not shorten the window.
	LockedOutUntil time.Time `json:"locked_out_until"`
}

// Discrete duration choices offered in the security settings screen.
var (
	// LockedOutDurationChoices are the selectable lockout windows.
	LockedOutDurationChoices = []time.Duration{
		15 * time.Second,
		30 * time.Second,
		time.Minute,
		5 * time.Minute,
	}

	// SessionExpiryDurationChoices are the selectable background
	// durations after which the PIN is re-prompted.
	SessionExpiryDurationChoices = []time.Duration{
		5 * time.Minute,
		15 * time.Minute,
		30 * time.Minute,
		time.Hour,
	}
)
