package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrCredentialsIncorrect is returned when the supplied PIN does not
	// match the stored one. Deliberately indistinguishable from the
	// outside whether the username or the PIN was wrong.
	ErrCredentialsIncorrect = errors.New("credentials incorrect")

	// ErrLockedOut is returned while the failed-attempt lockout window is
	// active. A correct PIN during lockout still gets this error.
	ErrLockedOut = errors.New("too many failed attempts")

	// ErrProcess is returned when a record decrypts successfully but its
	// plaintext fails domain parsing (malformed amount, unknown repeat
	// interval). Distinct from [crypto.ErrAuthenticationFailed]: the key
	// was right, the data was not.
	ErrProcess = errors.New("error processing record")
)
