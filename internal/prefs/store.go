package prefs

import (
	"fmt"
	"os"
	"path/filepath"
)

// ByteStore is the generic byte-oriented key-value persistence abstraction
// the codec writes through. Implementations must provide atomic
// replace-on-write semantics: a cancelled or crashed writer never leaves a
// half-written value behind.
type ByteStore interface {
	// ReadBytes returns the bytes stored under key, or (nil, nil) when no
	// value has ever been written for it.
	ReadBytes(key string) ([]byte, error)

	// WriteBytes atomically replaces the value stored under key.
	WriteBytes(key string, data []byte) error
}

// fileByteStore keeps one file per key in a private directory. Writes go to
// a temp file first and are renamed into place, which is the atomic-replace
// guarantee the codec relies on.
type fileByteStore struct {
	dir string
}

// NewFileByteStore constructs a [ByteStore] rooted at dir, creating the
// directory with 0700 permissions if needed.
func NewFileByteStore(dir string) (ByteStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: create store dir: %v", ErrStoreUnavailable, err)
	}
	return &fileByteStore{dir: dir}, nil
}

func (s *fileByteStore) ReadBytes(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrStoreUnavailable, key, err)
	}
	return data, nil
}

func (s *fileByteStore) WriteBytes(key string, data []byte) error {
	path := s.path(key)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStoreUnavailable, key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: commit %s: %v", ErrStoreUnavailable, key, err)
	}
	return nil
}

func (s *fileByteStore) path(key string) string {
	return filepath.Join(s.dir, key+".pref")
}
