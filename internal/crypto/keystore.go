// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Galah Seno

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/argon2"
)

// SymmetricKey is an opaque handle to a 256-bit AES key. The raw material is
// unexported and only readable inside this package; it is immutable after
// creation and safe to share across concurrent encrypt/decrypt calls.
type SymmetricKey struct {
	alias string
	raw   []byte
}

// Alias returns the deterministic store alias the key is registered under.
func (k *SymmetricKey) Alias() string {
	return k.alias
}

// keystoreEntry is the at-rest form of one key: the per-entry Argon2id salt
// and the key material wrapped with the passphrase-derived KEK using
// AES-256-GCM (nonce ‖ ciphertext, Base64-encoded).
type keystoreEntry struct {
	Salt       string `json:"salt"`
	WrappedKey string `json:"wrapped_key"`
}

// fileKeystore is the file-backed implementation of [Keystore]. It stands in
// for the platform secure element: one entry file per alias under a private
// directory, each wrapping its key with a KEK derived from the passphrase.
type fileKeystore struct {
	dir string

	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8

	mu sync.Mutex
}

// NewFileKeystore constructs a [Keystore] rooted at dir with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//
// The directory is created with 0700 permissions if it does not exist.
func NewFileKeystore(dir string) (Keystore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: create keystore dir: %v", ErrKeyStoreUnavailable, err)
	}
	return &fileKeystore{
		dir:          dir,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}, nil
}

// GetOrCreateKey implements [Keystore]. It computes the passphrase alias,
// loads the entry registered under it, or generates, wraps and persists a
// fresh 256-bit key when no entry exists yet.
func (s *fileKeystore) GetOrCreateKey(passphrase []byte) (*SymmetricKey, error) {
	alias := KeyAlias(passphrase)

	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, alias+".key")

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		return s.unwrapEntry(alias, passphrase, data)
	case os.IsNotExist(err):
		return s.createEntry(alias, passphrase, path)
	default:
		return nil, fmt.Errorf("%w: read keystore entry: %v", ErrKeyStoreUnavailable, err)
	}
}

// KeyAlias computes the deterministic store alias for a passphrase:
// the Base64 encoding of its SHA-256 digest. Identical passphrases always
// yield identical aliases, which is what makes key derivation idempotent.
// The URL-safe Base64 alphabet is used so the alias doubles as a file name.
func KeyAlias(passphrase []byte) string {
	digest := sha256.Sum256(passphrase)
	return base64.RawURLEncoding.EncodeToString(digest[:])
}

func (s *fileKeystore) createEntry(alias string, passphrase []byte, path string) (*SymmetricKey, error) {
	raw := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return nil, fmt.Errorf("%w: generate key: %v", ErrKeyStoreUnavailable, err)
	}

	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: generate salt: %v", ErrKeyStoreUnavailable, err)
	}

	wrapped, err := s.wrapKey(raw, passphrase, salt)
	if err != nil {
		return nil, fmt.Errorf("%w: wrap key: %v", ErrKeyStoreUnavailable, err)
	}

	entry := keystoreEntry{
		Salt:       base64.StdEncoding.EncodeToString(salt),
		WrappedKey: base64.StdEncoding.EncodeToString(wrapped),
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("%w: encode keystore entry: %v", ErrKeyStoreUnavailable, err)
	}

	// Write to a temp file first and rename into place so a crash cannot
	// leave a half-written entry under the alias.
	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return nil, fmt.Errorf("%w: write keystore entry: %v", ErrKeyStoreUnavailable, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return nil, fmt.Errorf("%w: commit keystore entry: %v", ErrKeyStoreUnavailable, err)
	}

	return &SymmetricKey{alias: alias, raw: raw}, nil
}

func (s *fileKeystore) unwrapEntry(alias string, passphrase, data []byte) (*SymmetricKey, error) {
	var entry keystoreEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("%w: decode keystore entry: %v", ErrKeyStoreUnavailable, err)
	}

	salt, err := base64.StdEncoding.DecodeString(entry.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: decode salt: %v", ErrKeyStoreUnavailable, err)
	}
	wrapped, err := base64.StdEncoding.DecodeString(entry.WrappedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: decode wrapped key: %v", ErrKeyStoreUnavailable, err)
	}

	raw, err := s.unwrapKey(wrapped, passphrase, salt)
	if err != nil {
		// The alias is derived from the passphrase, so an entry that
		// fails to unwrap under the same passphrase is corrupted.
		return nil, fmt.Errorf("%w: unwrap key: %v", ErrKeyStoreUnavailable, err)
	}

	return &SymmetricKey{alias: alias, raw: raw}, nil
}

// wrapKey encrypts raw key material with a KEK derived from the passphrase
// via Argon2id. Output layout: nonce ‖ ciphertext.
func (s *fileKeystore) wrapKey(raw, passphrase, salt []byte) ([]byte, error) {
	gcm, err := s.kekAEAD(passphrase, salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return append(nonce, gcm.Seal(nil, nonce, raw, nil)...), nil
}

func (s *fileKeystore) unwrapKey(wrapped, passphrase, salt []byte) ([]byte, error) {
	gcm, err := s.kekAEAD(passphrase, salt)
	if err != nil {
		return nil, err
	}

	if len(wrapped) < gcm.NonceSize() {
		return nil, fmt.Errorf("wrapped key too short")
	}
	nonce, ciphertext := wrapped[:gcm.NonceSize()], wrapped[gcm.NonceSize():]

	return gcm.Open(nil, nonce, ciphertext, nil)
}

func (s *fileKeystore) kekAEAD(passphrase, salt []byte) (cipher.AEAD, error) {
	kek := argon2.IDKey(passphrase, salt, s.argonTime, s.argonMemory, s.argonThreads, KeySize)

	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
