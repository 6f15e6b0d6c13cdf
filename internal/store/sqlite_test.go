package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/certquiz/backend/internal/store"
)

func TestSQLite_GetSet(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "quiz.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	if _, err := s.Get(ctx, "quiz_aws.json"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing key, got %v", err)
	}

	doc := []byte(`{"defaultQuestions": [], "groups": {}}`)
	if err := s.Set(ctx, "quiz_aws.json", doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Get(ctx, "quiz_aws.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("expected %s, got %s", doc, got)
	}

	// Overwrite under the same key wins.
	updated := []byte(`{"defaultQuestions": [], "groups": {"AWS": []}}`)
	if err := s.Set(ctx, "quiz_aws.json", updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err = s.Get(ctx, "quiz_aws.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(updated) {
		t.Errorf("expected %s, got %s", updated, got)
	}
}
