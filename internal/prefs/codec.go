// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Galah Seno

package prefs

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/galahseno/SpendLess-sub000/internal/crypto"
)

// Serializer converts a structured preference value to and from its
// canonical byte encoding. Decode must reject structurally invalid input
// (including unknown enum tags) with an error rather than returning a
// zero-filled value.
type Serializer[T any] interface {
	Encode(value T) ([]byte, error)
	Decode(data []byte) (T, error)

	// Default returns the value a first-run read reports before anything
	// has ever been written.
	Default() T
}

// Codec transparently encrypts a structured preferences value on its way to
// a [ByteStore] and decrypts it on the way back.
//
// Write path: Encode → EncryptBlob → Base64 → WriteBytes.
// Read path:  ReadBytes → Base64 decode → DecryptBlob → Decode.
//
// A per-codec mutex serializes writers, so writes for a given preference key
// are observed in the order issued. There is no coordination across codec
// instances; callers must keep one cooperating writer per logical entity.
type Codec[T any] struct {
	key        string
	store      ByteStore
	cipher     crypto.EncryptionService
	serializer Serializer[T]

	mu sync.Mutex
}

// NewCodec constructs a [Codec] persisting under the given store key.
func NewCodec[T any](key string, store ByteStore, cipher crypto.EncryptionService, serializer Serializer[T]) *Codec[T] {
	return &Codec[T]{
		key:        key,
		store:      store,
		cipher:     cipher,
		serializer: serializer,
	}
}

// Read returns the stored value, or the serializer's default when nothing
// has been written yet.
//
// Failure modes are distinct on purpose: a blob that fails authentication
// surfaces as [crypto.ErrAuthenticationFailed], while a blob that decrypts
// but does not deserialize surfaces as [ErrCorruptPreferences]. Cancellation
// errors pass through untouched.
func (c *Codec[T]) Read(ctx context.Context) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	// No lock: the store's atomic replace means a concurrent reader sees
	// either the previous or the next complete blob, never a torn one.
	return c.readCurrent(ctx)
}

// Write serializes, encrypts and atomically persists value. Cancellation is
// honored before the store write begins; once started, the underlying
// atomic replace guarantees no half-written blob is ever observable.
func (c *Codec[T]) Write(ctx context.Context, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	plaintext, err := c.serializer.Encode(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}

	blob, err := c.cipher.EncryptBlob(plaintext)
	if err != nil {
		return fmt.Errorf("encrypt %s: %w", c.key, err)
	}

	encoded := base64.StdEncoding.EncodeToString(blob)
	return c.store.WriteBytes(c.key, []byte(encoded))
}

// Update reads the current value, applies fn and writes the result back,
// all under the codec's writer lock. It is the read-modify-write primitive
// the lockout counter relies on.
func (c *Codec[T]) Update(ctx context.Context, fn func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	current, err := c.readCurrent(ctx)
	if err != nil {
		return zero, err
	}

	next := fn(current)

	plaintext, err := c.serializer.Encode(next)
	if err != nil {
		return zero, fmt.Errorf("encode %s: %w", c.key, err)
	}
	blob, err := c.cipher.EncryptBlob(plaintext)
	if err != nil {
		return zero, fmt.Errorf("encrypt %s: %w", c.key, err)
	}
	if err = c.store.WriteBytes(c.key, []byte(base64.StdEncoding.EncodeToString(blob))); err != nil {
		return zero, err
	}

	return next, nil
}

// readCurrent performs the raw read path; Update callers hold the mutex.
func (c *Codec[T]) readCurrent(ctx context.Context) (T, error) {
	var zero T

	raw, err := c.store.ReadBytes(c.key)
	if err != nil {
		return zero, err
	}
	if raw == nil {
		return c.serializer.Default(), nil
	}

	blob, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		return zero, fmt.Errorf("%w: decode base64: %v", ErrCorruptPreferences, err)
	}
	plaintext, err := c.cipher.DecryptBlob(blob)
	if err != nil {
		return zero, fmt.Errorf("decrypt %s: %w", c.key, err)
	}
	value, err := c.serializer.Decode(plaintext)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrCorruptPreferences, err)
	}
	return value, nil
}
