package prefs

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galahseno/SpendLess-sub000/internal/crypto"
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

func newTestStore(t *testing.T) ByteStore {
	t.Helper()
	store, err := NewFileByteStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestCodec_ReadDefaultOnFirstRun(t *testing.T) {
	codec := NewCodec(KeyUserSecurity, newTestStore(t), newTestCipher(t), UserSecuritySerializer())

	got, err := codec.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultUserSecurity(), got)
}

func TestCodec_WriteReadRoundTrip(t *testing.T) {
	codec := NewCodec(KeyUserSession, newTestStore(t), newTestCipher(t), UserSessionSerializer())
	ctx := context.Background()

	want := models.UserSession{
		UserID:            1,
		Username:          "alice",
		SessionToken:      "b3c1f9e2-6a45-4f02-9d38-0c5a7f1e8d90",
		ExpensesFormat:    models.ExpensesParentheses,
		CurrencySymbol:    "€",
		DecimalSeparator:  models.SeparatorComma,
		ThousandSeparator: models.SeparatorSpace,
		LastActiveAt:      time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}

	require.NoError(t, codec.Write(ctx, want))

	got, err := codec.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCodec_StoredBlobIsOpaque(t *testing.T) {
	store := newTestStore(t)
	codec := NewCodec(KeyUserSession, store, newTestCipher(t), UserSessionSerializer())
	ctx := context.Background()

	session := DefaultUserSession()
	session.Username = "alice"
	require.NoError(t, codec.Write(ctx, session))

	raw, err := store.ReadBytes(KeyUserSession)
	require.NoError(t, err)
	require.NotNil(t, raw)

	// On disk the value is a Base64 string decoding to IV ‖ ciphertext ‖ tag.
	blob, err := base64.StdEncoding.DecodeString(string(raw))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(blob), crypto.GCMIVSize+crypto.GCMTagSize)
	assert.NotContains(t, string(raw), "alice")
	assert.NotContains(t, string(blob), "alice")
}

func TestCodec_CorruptBlobTypedError(t *testing.T) {
	store := newTestStore(t)
	cipher := newTestCipher(t)
	ctx := context.Background()

	// A blob that decrypts fine but deserializes into garbage: encrypt
	// JSON with an out-of-range enum tag.
	blob, err := cipher.EncryptBlob([]byte(`{"expenses_format":99}`))
	require.NoError(t, err)
	require.NoError(t, store.WriteBytes(KeyUserSession, []byte(base64.StdEncoding.EncodeToString(blob))))

	codec := NewCodec(KeyUserSession, store, cipher, UserSessionSerializer())
	_, err = codec.Read(ctx)
	assert.ErrorIs(t, err, ErrCorruptPreferences)
}

func TestCodec_WrongKeyAuthenticationError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	writer := NewCodec(KeyUserSecurity, store, newTestCipher(t), UserSecuritySerializer())
	require.NoError(t, writer.Write(ctx, DefaultUserSecurity()))

	// A different keystore dir yields a different key for the same PIN.
	reader := NewCodec(KeyUserSecurity, store, newTestCipher(t), UserSecuritySerializer())
	_, err := reader.Read(ctx)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
}

func TestCodec_UpdateReadModifyWrite(t *testing.T) {
	codec := NewCodec(KeyPinPromptAttempt, newTestStore(t), newTestCipher(t), PinPromptAttemptSerializer())
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		got, err := codec.Update(ctx, func(cur models.PinPromptAttempt) models.PinPromptAttempt {
			cur.FailedAttempt++
			return cur
		})
		require.NoError(t, err)
		assert.Equal(t, i, got.FailedAttempt)
	}

	stored, err := codec.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.FailedAttempt)
}

func TestCodec_CancelledContext(t *testing.T) {
	codec := NewCodec(KeyUserSession, newTestStore(t), newTestCipher(t), UserSessionSerializer())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := codec.Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	err = codec.Write(ctx, DefaultUserSession())
	assert.ErrorIs(t, err, context.Canceled)
}
