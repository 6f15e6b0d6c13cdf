package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/certquiz/backend/internal/domain/bank"
)

// keyPrefix namespaces bank documents in the KV backend. The full key for
// a certification is "quiz_" + certID; this is a storage contract shared
// with the data previously written by the browser app.
const keyPrefix = "quiz_"

func storageKey(certID string) string {
	return keyPrefix + certID
}

// BankStore owns the persisted banks: it is the sole reader and writer of
// bank documents. Each certification maps to one whole JSON document;
// there is no field-level locking, so the last writer wins.
type BankStore struct {
	kv    KV
	seeds SeedSource
}

func NewBankStore(kv KV, seeds SeedSource) *BankStore {
	return &BankStore{kv: kv, seeds: seeds}
}

// Load returns the bank for a certification, creating it on first access.
// A stored document wins; an absent or structurally invalid one falls
// back to the certification's seed, and a missing seed yields an empty
// bank. Whatever shape is adopted is written back before returning, so a
// later Save never races a stale first read.
func (s *BankStore) Load(ctx context.Context, certID string) (*bank.Bank, error) {
	key := storageKey(certID)

	raw, err := s.kv.Get(ctx, key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, &StorageError{Op: "read", Key: key, Err: err}
	}
	if err == nil {
		var b bank.Bank
		if json.Unmarshal(raw, &b) == nil && (b.DefaultQuestions != nil || b.Groups != nil) {
			b.EnsureShape()
			return &b, nil
		}
		// Stored document is unusable; reseed below.
	}

	b := s.seedBank(certID)
	if err := s.Save(ctx, certID, b); err != nil {
		return nil, err
	}
	return b, nil
}

// seedBank builds a bank from the certification's seed resource. Legacy
// seeds are a bare question array and become the default list; newer
// seeds already carry the bank shape. Any failure yields an empty bank.
func (s *BankStore) seedBank(certID string) *bank.Bank {
	empty := &bank.Bank{}
	empty.EnsureShape()

	raw, err := s.seeds.Fetch(certID)
	if err != nil {
		return empty
	}

	var legacy []bank.Question
	if err := json.Unmarshal(raw, &legacy); err == nil && legacy != nil {
		return &bank.Bank{DefaultQuestions: legacy, Groups: map[string][]bank.Question{}}
	}

	var seeded bank.Bank
	if err := json.Unmarshal(raw, &seeded); err == nil {
		seeded.EnsureShape()
		return &seeded
	}

	return empty
}

// Save normalizes the bank so both fields are present and writes the
// whole document. On failure nothing is persisted and the in-memory bank
// keeps its (normalized) state, so the caller can retry.
func (s *BankStore) Save(ctx context.Context, certID string, b *bank.Bank) error {
	b.EnsureShape()

	key := storageKey(certID)
	raw, err := json.Marshal(b)
	if err != nil {
		return &StorageError{Op: "write", Key: key, Err: err}
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		return &StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}
