// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Galah Seno

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/galahseno/SpendLess-sub000/models"
)

// Cipher parameters. These are build-time constants of the on-disk format
// and must not change for already-persisted data.
const (
	// KeySize is the AES key length in bytes (AES-256).
	KeySize = 32

	// GCMIVSize is the AES-GCM initialization vector length in bytes.
	// The blob layout splits IV from payload at exactly this offset, so it
	// is an explicit constant rather than something derived from the
	// cipher's block size.
	GCMIVSize = 12

	// GCMTagSize is the GCM authentication tag length in bytes (128 bits),
	// appended to the ciphertext per standard GCM output.
	GCMTagSize = 16
)

// aesGCMService is the private implementation of [EncryptionService].
// It holds only the key handle; the AEAD itself is built fresh for every
// operation so there is no shared cipher state to misuse concurrently.
type aesGCMService struct {
	key *SymmetricKey
}

// NewEncryptionService constructs an [EncryptionService] bound to the given
// managed key. The key handle is read-only shared state; the returned
// service is safe for concurrent use.
func NewEncryptionService(key *SymmetricKey) EncryptionService {
	return &aesGCMService{key: key}
}

// Encrypt implements [EncryptionService]. The IV is freshly generated per
// call and never reused under the same key; ciphertext and IV are
// Base64-encoded independently and returned as a pair.
func (s *aesGCMService) Encrypt(plaintext string) (models.EncryptedField, error) {
	gcm, err := s.aead()
	if err != nil {
		return models.EncryptedField{}, err
	}

	iv := make([]byte, GCMIVSize)
	if _, err = io.ReadFull(rand.Reader, iv); err != nil {
		return models.EncryptedField{}, fmt.Errorf("generate iv: %w", err)
	}

	ciphertext := gcm.Seal(nil, iv, []byte(plaintext), nil)

	return models.EncryptedField{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		IV:         base64.StdEncoding.EncodeToString(iv),
	}, nil
}

// Decrypt implements [EncryptionService]. Any failure to reconstruct the
// plaintext — malformed Base64, an IV of the wrong length, or a GCM tag
// mismatch — is reported as [ErrAuthenticationFailed]: the stored value is
// unreadable and must never be returned partially decrypted.
func (s *aesGCMService) Decrypt(field models.EncryptedField) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(field.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode ciphertext: %v", ErrAuthenticationFailed, err)
	}
	iv, err := base64.StdEncoding.DecodeString(field.IV)
	if err != nil {
		return "", fmt.Errorf("%w: decode iv: %v", ErrAuthenticationFailed, err)
	}
	if len(iv) != GCMIVSize {
		return "", fmt.Errorf("%w: iv length %d, want %d", ErrAuthenticationFailed, len(iv), GCMIVSize)
	}

	gcm, err := s.aead()
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	return string(plaintext), nil
}

// EncryptBlob implements [EncryptionService]. The raw IV bytes are prepended
// to the ciphertext so formats that need a single opaque byte stream (the
// preferences codec) can store the result as-is: blob = IV ‖ ciphertext ‖ tag.
func (s *aesGCMService) EncryptBlob(plaintext []byte) ([]byte, error) {
	gcm, err := s.aead()
	if err != nil {
		return nil, err
	}

	iv := make([]byte, GCMIVSize)
	if _, err = io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	return gcm.Seal(iv, iv, plaintext, nil), nil
}

// DecryptBlob implements [EncryptionService]. The IV is split off at the
// fixed [GCMIVSize] boundary; everything after it is ciphertext plus tag.
func (s *aesGCMService) DecryptBlob(blob []byte) ([]byte, error) {
	if len(blob) < GCMIVSize+GCMTagSize {
		return nil, fmt.Errorf("%w: blob too short (%d bytes)", ErrAuthenticationFailed, len(blob))
	}
	iv, ciphertext := blob[:GCMIVSize], blob[GCMIVSize:]

	gcm, err := s.aead()
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	return plaintext, nil
}

// aead builds a fresh AES-256-GCM instance for a single operation.
func (s *aesGCMService) aead() (cipher.AEAD, error) {
	if s.key == nil || len(s.key.raw) != KeySize {
		return nil, fmt.Errorf("%w: no usable key", ErrKeyStoreUnavailable)
	}

	block, err := aes.NewCipher(s.key.raw)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %v", ErrKeyStoreUnavailable, err)
	}
	return cipher.NewGCM(block)
}
