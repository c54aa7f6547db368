package crypto

import "errors"

// Sentinel errors returned by the crypto layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyStoreUnavailable is returned when the secure key store cannot
	// be read or written, or when key generation fails. This is fatal for
	// any crypto operation: callers must not proceed with a plaintext
	// fallback.
	ErrKeyStoreUnavailable = errors.New("key store unavailable")

	// ErrAuthenticationFailed is returned when the GCM authentication tag
	// does not verify on decrypt, which indicates tampering, a wrong key,
	// or corrupted data. The record is unreadable; recovery policy is the
	// caller's decision.
	ErrAuthenticationFailed = errors.New("authentication failed")
)
