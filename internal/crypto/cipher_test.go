package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/galahseno/SpendLess-sub000/models"
)

func newTestService(t *testing.T) EncryptionService {
	t.Helper()
	ks, err := NewFileKeystore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKeystore error: %v", err)
	}
	key, err := ks.GetOrCreateKey([]byte("1234"))
	if err != nil {
		t.Fatalf("GetOrCreateKey error: %v", err)
	}
	return NewEncryptionService(key)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	svc := newTestService(t)

	plaintexts := []string{
		"",
		"Coffee",
		"morning",
		"-5.00",
		"☕ Food & Drink",
		"multi\nline\nnote",
		strings.Repeat("x", 4096),
	}

	for _, want := range plaintexts {
		field, err := svc.Encrypt(want)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", want, err)
		}

		got, err := svc.Decrypt(field)
		if err != nil {
			t.Fatalf("Decrypt(%q) error: %v", want, err)
		}
		if got != want {
			t.Fatalf("round trip mismatch: got %q, want %q", got, want)
		}
	}
}

func TestEncrypt_FreshIVPerCall(t *testing.T) {
	svc := newTestService(t)

	f1, err := svc.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	f2, err := svc.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if f1.IV == f2.IV {
		t.Fatalf("expected distinct IVs for two encryptions")
	}
	if f1.Ciphertext == f2.Ciphertext {
		t.Fatalf("expected distinct ciphertexts for two encryptions")
	}
}

func TestEncrypt_IVLength(t *testing.T) {
	svc := newTestService(t)

	field, err := svc.Encrypt("check iv size")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	iv, err := base64.StdEncoding.DecodeString(field.IV)
	if err != nil {
		t.Fatalf("decode IV error: %v", err)
	}
	if len(iv) != GCMIVSize {
		t.Fatalf("IV length = %d, want %d", len(iv), GCMIVSize)
	}
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	svc := newTestService(t)

	field, err := svc.Encrypt("do not touch")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(field.Ciphertext)
	for i := range raw {
		flipped := append([]byte(nil), raw...)
		flipped[i] ^= 0x01
		tampered := models.EncryptedField{
			Ciphertext: base64.StdEncoding.EncodeToString(flipped),
			IV:         field.IV,
		}
		if _, err = svc.Decrypt(tampered); !errors.Is(err, ErrAuthenticationFailed) {
			t.Fatalf("bit flip at byte %d: got err %v, want ErrAuthenticationFailed", i, err)
		}
	}
}

func TestDecrypt_TamperedIV(t *testing.T) {
	svc := newTestService(t)

	field, err := svc.Encrypt("do not touch")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	iv, _ := base64.StdEncoding.DecodeString(field.IV)
	iv[0] ^= 0x80
	field.IV = base64.StdEncoding.EncodeToString(iv)

	if _, err = svc.Decrypt(field); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("got err %v, want ErrAuthenticationFailed", err)
	}
}

func TestDecrypt_MalformedInput(t *testing.T) {
	svc := newTestService(t)

	cases := []models.EncryptedField{
		{Ciphertext: "not base64!!", IV: base64.StdEncoding.EncodeToString(make([]byte, GCMIVSize))},
		{Ciphertext: base64.StdEncoding.EncodeToString([]byte("junk")), IV: "not base64!!"},
		{Ciphertext: base64.StdEncoding.EncodeToString([]byte("junk")), IV: base64.StdEncoding.EncodeToString(make([]byte, 8))},
	}

	for i, field := range cases {
		if _, err := svc.Decrypt(field); !errors.Is(err, ErrAuthenticationFailed) {
			t.Fatalf("case %d: got err %v, want ErrAuthenticationFailed", i, err)
		}
	}
}

func TestEncryptBlob_RoundTrip(t *testing.T) {
	svc := newTestService(t)

	want := []byte(`{"user_id":1,"username":"alice"}`)

	blob, err := svc.EncryptBlob(want)
	if err != nil {
		t.Fatalf("EncryptBlob error: %v", err)
	}

	// Layout invariant: IV ‖ ciphertext ‖ tag.
	if len(blob) != GCMIVSize+len(want)+GCMTagSize {
		t.Fatalf("blob length = %d, want %d", len(blob), GCMIVSize+len(want)+GCMTagSize)
	}

	got, err := svc.DecryptBlob(blob)
	if err != nil {
		t.Fatalf("DecryptBlob error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("round trip mismatch: got %q, want %q", got, want)
	}
}

func TestDecryptBlob_Tampered(t *testing.T) {
	svc := newTestService(t)

	blob, err := svc.EncryptBlob([]byte("preferences payload"))
	if err != nil {
		t.Fatalf("EncryptBlob error: %v", err)
	}

	// Flip a bit in the IV, the ciphertext and the tag region.
	for _, i := range []int{0, GCMIVSize + 1, len(blob) - 1} {
		tampered := append([]byte(nil), blob...)
		tampered[i] ^= 0x01
		if _, err = svc.DecryptBlob(tampered); !errors.Is(err, ErrAuthenticationFailed) {
			t.Fatalf("bit flip at byte %d: got err %v, want ErrAuthenticationFailed", i, err)
		}
	}
}

func TestDecryptBlob_TooShort(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.DecryptBlob(make([]byte, GCMIVSize)); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("got err %v, want ErrAuthenticationFailed", err)
	}
}
