package service

import (
	"context"
	"time"

	"github.com/galahseno/SpendLess-sub000/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TransactionCrypto converts transactions between their plaintext domain
// form and the per-field encrypted form the store persists. It does no I/O.
type TransactionCrypto interface {
	// EncryptTransaction encrypts every sensitive field of the
	// transaction independently. IDs and CreatedAt pass through.
	EncryptTransaction(ctx context.Context, transaction models.Transaction) (models.EncryptedTransaction, error)

	// DecryptTransaction is the inverse. A single failed field aborts
	// the whole record: there is no partial recovery.
	DecryptTransaction(ctx context.Context, record models.EncryptedTransaction) (models.Transaction, error)

	// DecryptAmount decrypts and parses a single amount field.
	DecryptAmount(ctx context.Context, field models.EncryptedField) (float64, error)

	// DecryptCategoryWithEmoji decrypts the category identity of one
	// projection row.
	DecryptCategoryWithEmoji(ctx context.Context, record models.CategoryAmountRecord) (models.CategoryWithEmoji, error)

	// DecryptLargestTransaction decrypts one largest-candidate row.
	DecryptLargestTransaction(ctx context.Context, record models.LargestTransactionRecord) (models.LargestTransaction, error)
}

// PinSession implements the failed-attempt lockout state machine and the
// inactivity-based session expiry check on top of persisted preferences.
type PinSession interface {
	// CheckPin verifies the candidate PIN against the user's stored one.
	// While the lockout window is active every call returns
	// [ErrLockedOut], correct PIN included, without touching the
	// counter. A mismatch outside lockout increments the counter and
	// returns [ErrCredentialsIncorrect], or [ErrLockedOut] when the
	// limit is reached. A match resets the counter.
	CheckPin(ctx context.Context, user models.User, candidate string) error

	// IsSessionExpired reports whether the inactivity window has passed
	// since the session was last active. A logged-out session counts as
	// expired.
	IsSessionExpired(ctx context.Context) (bool, error)
}

// AuthService handles account registration and PIN login.
type AuthService interface {
	// Register creates an account, storing its PIN encrypted, and seeds
	// a fresh session. A taken username yields [store.ErrUserExists].
	Register(ctx context.Context, username, pin string) (models.User, error)

	// Login verifies the PIN through [PinSession] and establishes a
	// session on success.
	Login(ctx context.Context, username, pin string) (models.User, error)
}

// TransactionService is the domain-facing transaction API: callers see only
// plaintext transactions, encryption happens inside.
type TransactionService interface {
	CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error)
	GetAllTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
	GetTransactionsBetween(ctx context.Context, userID int64, from, to time.Time) ([]models.Transaction, error)
}

// DashboardService computes the account summary. Aggregation happens after
// decryption: encrypted columns cannot be summed or compared in SQL.
type DashboardService interface {
	Summary(ctx context.Context, userID int64) (models.DashboardSummary, error)
}

// SessionExpiryJob clears the persisted session in the background once the
// inactivity window passes, so a returning user lands on the PIN prompt.
type SessionExpiryJob interface {
	// Start launches the background expiry check on the given interval,
	// replacing any previously running job.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and waits for it to exit.
	Stop()
}
