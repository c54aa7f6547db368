package models

// EncryptedField is a single AES-GCM protected value as it is persisted:
// the ciphertext and its initialization vector, each Base64-encoded
// independently and stored as two separate string columns.
//
// The IV is generated fresh for every encryption call, so a ciphertext is
// only meaningful together with its own IV. The database treats both parts
// as opaque strings.
type EncryptedField struct {
	// Ciphertext is the Base64 (standard encoding) AES-GCM output,
	// including the 128-bit authentication tag.
	Ciphertext string `json:"ciphertext"`

	// IV is the Base64 (standard encoding) 12-byte GCM initialization
	// vector used to produce Ciphertext.
	IV string `json:"iv"`
}

// IsZero reports whether the field carries no persisted value at all.
// A record written by an older app version may legitimately hold empty
// optional fields (e.g. an empty note).
func (f EncryptedField) IsZero() bool {
	return f.Ciphertext == "" && f.IV == ""
}
