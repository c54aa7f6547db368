package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galahseno/SpendLess-sub000/internal/logger"
	"github.com/galahseno/SpendLess-sub000/internal/prefs"
	"github.com/galahseno/SpendLess-sub000/internal/store"
	"github.com/galahseno/SpendLess-sub000/models"
)

// fakeUserRepo is an in-memory UserRepository for end-to-end scenarios.
type fakeUserRepo struct {
	mu     sync.Mutex
	byName map[string]models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byName: make(map[string]models.User), nextID: 1}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, taken := f.byName[user.Username]; taken {
		return models.User{}, store.ErrUserExists
	}
	user.UserID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now().UTC()
	f.byName[user.Username] = user
	return user, nil
}

func (f *fakeUserRepo) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.byName[username]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return user, nil
}

// fakeTransactionRepo is an in-memory TransactionRepository.
type fakeTransactionRepo struct {
	mu      sync.Mutex
	records []models.EncryptedTransaction
	nextID  int64
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{nextID: 1}
}

func (f *fakeTransactionRepo) CreateTransaction(_ context.Context, record models.EncryptedTransaction) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	record.TransactionID = f.nextID
	f.nextID++
	f.records = append(f.records, record)
	return record.TransactionID, nil
}

func (f *fakeTransactionRepo) forUser(userID int64) []models.EncryptedTransaction {
	var out []models.EncryptedTransaction
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeTransactionRepo) GetAllTransactions(_ context.Context, userID int64) ([]models.EncryptedTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.forUser(userID), nil
}

func (f *fakeTransactionRepo) GetTransactionsBetween(_ context.Context, userID int64, from, to time.Time) ([]models.EncryptedTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.EncryptedTransaction
	for _, rec := range f.forUser(userID) {
		if !rec.CreatedAt.Before(from) && rec.CreatedAt.Before(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) GetLargestTransactionCandidates(_ context.Context, userID int64) ([]models.LargestTransactionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.LargestTransactionRecord
	for _, rec := range f.forUser(userID) {
		out = append(out, models.LargestTransactionRecord{
			Name:      rec.Name,
			Amount:    rec.Amount,
			CreatedAt: rec.CreatedAt,
		})
	}
	return out, nil
}

func (f *fakeTransactionRepo) GetCategoryAmounts(_ context.Context, userID int64) ([]models.CategoryAmountRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.CategoryAmountRecord
	for _, rec := range f.forUser(userID) {
		out = append(out, models.CategoryAmountRecord{
			CategoryEmoji: rec.CategoryEmoji,
			CategoryName:  rec.CategoryName,
			Amount:        rec.Amount,
		})
	}
	return out, nil
}

type testStack struct {
	auth         AuthService
	transactions TransactionService
	dashboard    DashboardService
	settings     prefs.Settings
	now          *time.Time
}

// newTestStack wires every service over real crypto and preferences with
// in-memory repositories and a controllable clock.
func newTestStack(t *testing.T) *testStack {
	t.Helper()

	cipher := newTestCipher(t)
	byteStore, err := prefs.NewFileByteStore(t.TempDir())
	require.NoError(t, err)
	settings := prefs.NewSettings(byteStore, cipher, logger.Nop())

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	pin := &pinSession{
		cipher:            cipher,
		settings:          settings,
		maxFailedAttempts: 3,
		now:               func() time.Time { return now },
		logger:            logger.Nop(),
	}

	users := newFakeUserRepo()
	transactions := newFakeTransactionRepo()
	transactionCrypto := NewTransactionCrypto(cipher, logger.Nop())

	return &testStack{
		auth:         NewAuthService(users, cipher, pin, settings, logger.Nop()),
		transactions: NewTransactionService(transactions, transactionCrypto, logger.Nop()),
		dashboard:    NewDashboardService(transactions, transactionCrypto, settings, logger.Nop()),
		settings:     settings,
		now:          &now,
	}
}

// Full path: register, record an expense, read it back decrypted, and see it
// reflected on the dashboard with default display preferences.
func TestScenario_RegisterRecordAndSummarize(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	user, err := stack.auth.Register(ctx, "alice", "1234")
	require.NoError(t, err)
	require.NotZero(t, user.UserID)

	session, err := stack.settings.GetUserSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username)
	assert.NotEmpty(t, session.SessionToken)

	created, err := stack.transactions.CreateTransaction(ctx, models.Transaction{
		UserID:        user.UserID,
		Name:          "Coffee",
		CategoryEmoji: "☕",
		CategoryName:  "Food & Drink",
		Amount:        -5.00,
		Note:          "morning",
		Repeat:        models.RepeatNone,
	})
	require.NoError(t, err)
	require.NotZero(t, created.TransactionID)

	got, err := stack.transactions.GetAllTransactions(ctx, user.UserID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Coffee", got[0].Name)
	assert.Equal(t, "☕", got[0].CategoryEmoji)
	assert.Equal(t, -5.00, got[0].Amount)
	assert.Equal(t, "morning", got[0].Note)
	assert.Equal(t, models.RepeatNone, got[0].Repeat)

	summary, err := stack.dashboard.Summary(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "-$5.00", summary.BalanceDisplay)
	require.NotNil(t, summary.Largest)
	assert.Equal(t, "Coffee", summary.Largest.Name)
	require.Len(t, summary.CategoryTotals, 1)
	assert.Equal(t, "Food & Drink", summary.CategoryTotals[0].Category.Name)
}

// Three wrong PINs with a 15 second lockout preference: the account locks,
// rejects the correct PIN during the window, and accepts it after expiry.
func TestScenario_ThreeStrikesLockoutAndRecovery(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	_, err := stack.auth.Register(ctx, "alice", "1234")
	require.NoError(t, err)

	security, err := stack.settings.GetUserSecurity(ctx)
	require.NoError(t, err)
	security.LockedOutDuration = 15 * time.Second
	require.NoError(t, stack.settings.SaveUserSecurity(ctx, security))

	_, err = stack.auth.Login(ctx, "alice", "0000")
	require.ErrorIs(t, err, ErrCredentialsIncorrect)
	_, err = stack.auth.Login(ctx, "alice", "1111")
	require.ErrorIs(t, err, ErrCredentialsIncorrect)
	_, err = stack.auth.Login(ctx, "alice", "2222")
	require.ErrorIs(t, err, ErrLockedOut)

	// correct PIN inside the window changes nothing
	_, err = stack.auth.Login(ctx, "alice", "1234")
	require.ErrorIs(t, err, ErrLockedOut)

	*stack.now = stack.now.Add(16 * time.Second)

	user, err := stack.auth.Login(ctx, "alice", "1234")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	session, err := stack.settings.GetUserSession(ctx)
	require.NoError(t, err)
	assert.True(t, session.LoggedIn())
}
