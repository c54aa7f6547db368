package crypto

import "github.com/galahseno/SpendLess-sub000/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Keystore manages the single AES-256 key protecting everything the app
// stores. It knows nothing about the database or preferences; its only job
// is to derive, persist and hand back key handles.
//
// Key derivation is idempotent: the same passphrase always resolves to the
// same alias (base64 of its SHA-256 digest) and therefore, barring store
// corruption, to the same key across process restarts. The raw key material
// never leaves the store in usable form — callers receive an opaque
// [*SymmetricKey] handle consumable only by [EncryptionService].
type Keystore interface {
	// GetOrCreateKey looks up the key registered under the passphrase's
	// alias, generating and persisting a fresh AES-256 key on first use.
	// Any store-level failure is reported as [ErrKeyStoreUnavailable].
	GetOrCreateKey(passphrase []byte) (*SymmetricKey, error)
}

// EncryptionService performs authenticated symmetric encryption of strings
// and byte blobs under a managed key. All output is AES-256-GCM with a
// 128-bit authentication tag and a fresh random 12-byte IV per call.
//
// Two on-disk layouts are produced, and they are not interchangeable:
//
//	field: ciphertext and IV Base64-encoded independently (two DB columns)
//	blob:  raw bytes IV ‖ ciphertext ‖ tag (single opaque byte stream)
type EncryptionService interface {
	// Encrypt protects a UTF-8 string, returning the Base64 ciphertext/IV
	// pair persisted as two separate columns.
	Encrypt(plaintext string) (models.EncryptedField, error)

	// Decrypt reverses Encrypt. Tag mismatch, malformed Base64 or a wrong
	// IV all surface as [ErrAuthenticationFailed].
	Decrypt(field models.EncryptedField) (string, error)

	// EncryptBlob protects an opaque byte payload, prepending the raw IV
	// so the result is a single self-contained byte stream.
	EncryptBlob(plaintext []byte) ([]byte, error)

	// DecryptBlob reverses EncryptBlob, splitting the IV off at the fixed
	// GCM IV length.
	DecryptBlob(blob []byte) ([]byte, error)
}
