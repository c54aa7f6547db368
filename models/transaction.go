package models

import (
	"fmt"
	"time"
)

// RepeatInterval enumerates how often a transaction repeats. The zero value
// is invalid so that a missing or corrupted tag is always detectable.
type RepeatInterval int

const (
	RepeatNone RepeatInterval = iota + 1
	RepeatDaily
	RepeatWeekly
	RepeatMonthly
	RepeatYearly
)

var repeatIntervalNames = map[RepeatInterval]string{
	RepeatNone:    "none",
	RepeatDaily:   "daily",
	RepeatWeekly:  "weekly",
	RepeatMonthly: "monthly",
	RepeatYearly:  "yearly",
}

// String returns the stable wire name of the interval. This name is what
// gets encrypted and persisted, so it must never change for existing values.
func (r RepeatInterval) String() string {
	if name, ok := repeatIntervalNames[r]; ok {
		return name
	}
	return fmt.Sprintf("repeat(%d)", int(r))
}

// Valid reports whether r is one of the declared intervals.
func (r RepeatInterval) Valid() bool {
	_, ok := repeatIntervalNames[r]
	return ok
}

// ParseRepeatInterval maps a wire name back to its RepeatInterval.
// Unknown names return an error instead of a zero value so that decryption
// of a tampered or mis-keyed record cannot silently produce a valid interval.
func ParseRepeatInterval(name string) (RepeatInterval, error) {
	for r, n := range repeatIntervalNames {
		if n == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown repeat interval %q", name)
}

// Transaction is the decrypted, domain-facing record handed to presentation.
// All sensitive fields are plaintext here and exist only in memory.
type Transaction struct {
	// TransactionID is the database row identifier. Never encrypted:
	// it is needed for querying.
	TransactionID int64 `json:"transaction_id"`

	// UserID is the owning account. Never encrypted.
	UserID int64 `json:"-"`

	// Name is the user-entered transaction label (e.g. "Coffee").
	Name string `json:"name"`

	// CategoryEmoji is the emoji attached to the category (e.g. "☕").
	CategoryEmoji string `json:"category_emoji"`

	// CategoryName is the category label (e.g. "Food & Drink").
	CategoryName string `json:"category_name"`

	// Amount is the signed monetary amount; expenses are negative.
	Amount float64 `json:"amount"`

	// Note is an optional free-text note.
	Note string `json:"note"`

	// Repeat describes the repeat schedule of the transaction.
	Repeat RepeatInterval `json:"repeat"`

	// CreatedAt is the creation timestamp. Never encrypted: it is needed
	// for sorting and date-range queries.
	CreatedAt time.Time `json:"created_at"`
}

// EncryptedTransaction is the persisted form of a Transaction. Every
// sensitive field is an independently encrypted (ciphertext, IV) pair;
// timestamps and identifiers pass through in plaintext.
type EncryptedTransaction struct {
	TransactionID int64
	UserID        int64

	Name          EncryptedField
	CategoryEmoji EncryptedField
	CategoryName  EncryptedField
	Amount        EncryptedField
	Note          EncryptedField
	Repeat        EncryptedField

	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the EncryptedTransaction model.
func (t EncryptedTransaction) TableName() string {
	return "transactions"
}

// LargestTransactionRecord is the partially-encrypted projection returned by
// the largest-transaction dashboard query: only the columns the summary
// needs, still in encrypted form.
type LargestTransactionRecord struct {
	Name      EncryptedField
	Amount    EncryptedField
	CreatedAt time.Time
}

// CategoryAmountRecord is the partially-encrypted projection used to build
// per-category totals. Grouping happens after decryption: two ciphertexts of
// the same category name never match byte-for-byte (unique IVs), so SQL
// GROUP BY cannot see category equality.
type CategoryAmountRecord struct {
	CategoryEmoji EncryptedField
	CategoryName  EncryptedField
	Amount        EncryptedField
}

// LargestTransaction is the decrypted largest-transaction summary entry.
type LargestTransaction struct {
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryWithEmoji is the decrypted category identity of a single record.
type CategoryWithEmoji struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// CategoryTotal is a decrypted per-category aggregate shown on the dashboard.
type CategoryTotal struct {
	Category CategoryWithEmoji `json:"category"`
	Total    float64           `json:"total"`
	Count    int               `json:"count"`
}
