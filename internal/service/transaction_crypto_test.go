package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galahseno/SpendLess-sub000/internal/crypto"
	"github.com/galahseno/SpendLess-sub000/internal/logger"
	"github.com/galahseno/SpendLess-sub000/models"
)

func newTestCipher(t *testing.T) crypto.EncryptionService {
	t.Helper()
	ks, err := crypto.NewFileKeystore(t.TempDir())
	require.NoError(t, err)
	key, err := ks.GetOrCreateKey([]byte("1234"))
	require.NoError(t, err)
	return crypto.NewEncryptionService(key)
}

func newTestTransactionCrypto(t *testing.T) (TransactionCrypto, crypto.EncryptionService) {
	t.Helper()
	cipher := newTestCipher(t)
	return NewTransactionCrypto(cipher, logger.Nop()), cipher
}

func sampleTransaction() models.Transaction {
	return models.Transaction{
		TransactionID: 1,
		UserID:        1,
		Name:          "Coffee",
		CategoryEmoji: "☕",
		CategoryName:  "Food & Drink",
		Amount:        -5.00,
		Note:          "morning",
		Repeat:        models.RepeatNone,
		CreatedAt:     time.Date(2026, 8, 30, 8, 15, 0, 0, time.UTC),
	}
}

func TestTransactionCrypto_RoundTrip(t *testing.T) {
	tc, _ := newTestTransactionCrypto(t)
	ctx := context.Background()

	want := sampleTransaction()

	record, err := tc.EncryptTransaction(ctx, want)
	require.NoError(t, err)

	// plaintext passthrough fields only
	assert.Equal(t, want.TransactionID, record.TransactionID)
	assert.Equal(t, want.UserID, record.UserID)
	assert.Equal(t, want.CreatedAt, record.CreatedAt)

	got, err := tc.DecryptTransaction(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTransactionCrypto_RoundTripExactAmounts(t *testing.T) {
	tc, _ := newTestTransactionCrypto(t)
	ctx := context.Background()

	for _, amount := range []float64{0, -0.01, 1234.56, -99999.99, 0.1 + 0.2} {
		tx := sampleTransaction()
		tx.Amount = amount

		record, err := tc.EncryptTransaction(ctx, tx)
		require.NoError(t, err)

		got, err := tc.DecryptTransaction(ctx, record)
		require.NoError(t, err)
		assert.Equal(t, amount, got.Amount, "amount must survive the round trip exactly")
	}
}

func TestTransactionCrypto_FieldsEncryptedIndependently(t *testing.T) {
	tc, _ := newTestTransactionCrypto(t)
	ctx := context.Background()

	tx := sampleTransaction()
	tx.Name = "same"
	tx.Note = "same"

	record, err := tc.EncryptTransaction(ctx, tx)
	require.NoError(t, err)

	// identical plaintexts must not share IVs or ciphertexts
	assert.NotEqual(t, record.Name.IV, record.Note.IV)
	assert.NotEqual(t, record.Name.Ciphertext, record.Note.Ciphertext)
}

func TestTransactionCrypto_FreshIVsPerCall(t *testing.T) {
	tc, _ := newTestTransactionCrypto(t)
	ctx := context.Background()

	first, err := tc.EncryptTransaction(ctx, sampleTransaction())
	require.NoError(t, err)
	second, err := tc.EncryptTransaction(ctx, sampleTransaction())
	require.NoError(t, err)

	assert.NotEqual(t, first.Amount.IV, second.Amount.IV)
	assert.NotEqual(t, first.Amount.Ciphertext, second.Amount.Ciphertext)
}

func TestTransactionCrypto_TamperedFieldFailsWholeRecord(t *testing.T) {
	tc, _ := newTestTransactionCrypto(t)
	ctx := context.Background()

	record, err := tc.EncryptTransaction(ctx, sampleTransaction())
	require.NoError(t, err)

	record.Amount.IV, record.Note.IV = record.Note.IV, record.Amount.IV

	_, err = tc.DecryptTransaction(ctx, record)
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
}

func TestTransactionCrypto_NonNumericAmountIsProcessError(t *testing.T) {
	tc, cipher := newTestTransactionCrypto(t)
	ctx := context.Background()

	record, err := tc.EncryptTransaction(ctx, sampleTransaction())
	require.NoError(t, err)

	// valid ciphertext, invalid content: the key was right, the data not
	record.Amount, err = cipher.Encrypt("not-a-number")
	require.NoError(t, err)

	_, err = tc.DecryptTransaction(ctx, record)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProcess)
	assert.NotErrorIs(t, err, crypto.ErrAuthenticationFailed)
}

func TestTransactionCrypto_UnknownRepeatIsProcessError(t *testing.T) {
	tc, cipher := newTestTransactionCrypto(t)
	ctx := context.Background()

	record, err := tc.EncryptTransaction(ctx, sampleTransaction())
	require.NoError(t, err)

	record.Repeat, err = cipher.Encrypt("fortnightly")
	require.NoError(t, err)

	_, err = tc.DecryptTransaction(ctx, record)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProcess)
}

func TestTransactionCrypto_DecryptLargestTransaction(t *testing.T) {
	tc, cipher := newTestTransactionCrypto(t)
	ctx := context.Background()

	createdAt := time.Date(2026, 8, 29, 19, 0, 0, 0, time.UTC)
	name, err := cipher.Encrypt("Rent")
	require.NoError(t, err)
	amount, err := cipher.Encrypt("-1200")
	require.NoError(t, err)

	got, err := tc.DecryptLargestTransaction(ctx, models.LargestTransactionRecord{
		Name:      name,
		Amount:    amount,
		CreatedAt: createdAt,
	})
	require.NoError(t, err)
	assert.Equal(t, models.LargestTransaction{Name: "Rent", Amount: -1200, CreatedAt: createdAt}, got)
}

func TestTransactionCrypto_DecryptCategoryWithEmoji(t *testing.T) {
	tc, cipher := newTestTransactionCrypto(t)
	ctx := context.Background()

	name, err := cipher.Encrypt("Food & Drink")
	require.NoError(t, err)
	emoji, err := cipher.Encrypt("☕")
	require.NoError(t, err)
	amount, err := cipher.Encrypt("-5")
	require.NoError(t, err)

	got, err := tc.DecryptCategoryWithEmoji(ctx, models.CategoryAmountRecord{
		CategoryEmoji: emoji,
		CategoryName:  name,
		Amount:        amount,
	})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryWithEmoji{Name: "Food & Drink", Emoji: "☕"}, got)
}
