package prefs

import "errors"

// Sentinel errors returned by the preferences layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCorruptPreferences is returned when a preferences blob decrypts
	// successfully but cannot be deserialized (structural mismatch or an
	// unknown enum tag). Caller policy decides whether to fall back to
	// defaults; this layer never resets data on its own.
	ErrCorruptPreferences = errors.New("corrupt preferences")

	// ErrStoreUnavailable is returned when the underlying key-value store
	// cannot be read or written.
	ErrStoreUnavailable = errors.New("preference store unavailable")
)
