package models

import "time"

// User represents a local account used for PIN-based authentication.
// There is no server-side identity; the account exists only on this device.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique display identifier chosen at registration.
	Username string `json:"username"`

	// Pin is the plaintext numeric PIN, present only in memory during
	// registration or a login attempt. It is never persisted in this form
	// and must be cleared as soon as the encrypted form is produced.
	Pin string `json:"-"`

	// PinField is the encrypted-at-rest form of Pin as stored in the
	// users table (ciphertext and IV columns).
	PinField EncryptedField `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
