package store

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
)

// KV is the persistent key-value backend banks are written to. It is the
// only thing the core needs from durable storage, which keeps the store
// testable with an in-memory fake.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// StorageError reports a failed read or write of a bank document. A
// failed write leaves the in-memory bank untouched; the message carries
// the retry suggestion shown to the user.
type StorageError struct {
	Op  string // "read" or "write"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s %q: %v, please try again", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
