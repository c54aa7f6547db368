package store

import (
	"context"
	"time"

	"github.com/galahseno/SpendLess-sub000/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists local user accounts. The PIN travels through this
// layer only in its encrypted form.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with the assigned
	// UserID. A username collision yields [ErrUserExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks an account up by username, returning
	// [ErrUserNotFound] when no record matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// TransactionRepository persists encrypted transaction records. The store
// treats every sensitive column as an opaque (ciphertext, IV) string pair;
// decryption is the service layer's job, never this one's.
type TransactionRepository interface {
	// CreateTransaction inserts an encrypted record and returns the
	// assigned row id. An invalid row id yields [ErrTransactionNotSaved].
	CreateTransaction(ctx context.Context, record models.EncryptedTransaction) (int64, error)

	// GetAllTransactions returns every encrypted record owned by the
	// user, newest first.
	GetAllTransactions(ctx context.Context, userID int64) ([]models.EncryptedTransaction, error)

	// GetTransactionsBetween returns the user's encrypted records whose
	// creation time falls in [from, to), newest first.
	GetTransactionsBetween(ctx context.Context, userID int64, from, to time.Time) ([]models.EncryptedTransaction, error)

	// GetLargestTransactionCandidates returns the partially-encrypted
	// projection the largest-transaction summary is computed from. The
	// maximum cannot be taken in SQL: amounts are ciphertext.
	GetLargestTransactionCandidates(ctx context.Context, userID int64) ([]models.LargestTransactionRecord, error)

	// GetCategoryAmounts returns the per-record category/amount
	// projection used to build category totals after decryption.
	GetCategoryAmounts(ctx context.Context, userID int64) ([]models.CategoryAmountRecord, error)
}
