package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesSchema(t *testing.T) {
	store := openTestStore(t)

	builds, err := store.List()
	if err != nil {
		t.Fatalf("List failed on fresh store: %v", err)
	}
	if len(builds) != 0 {
		t.Errorf("Expected empty ledger, got %d builds", len(builds))
	}
}

func TestRecordAndList(t *testing.T) {
	store := openTestStore(t)

	first := Build{
		CreatedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		OutputPath: "test_data/enhanced_dictionary.txt",
		WordCount:  132,
	}
	second := Build{
		CreatedAt:  time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC),
		OutputPath: "other.txt",
		WordCount:  140,
	}

	if err := store.Record(first); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Record(second); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	builds, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(builds) != 2 {
		t.Fatalf("Expected 2 builds, got %d", len(builds))
	}

	// Newest first
	if builds[0].OutputPath != "other.txt" {
		t.Errorf("Expected newest build first, got %s", builds[0].OutputPath)
	}
	if builds[0].WordCount != 140 {
		t.Errorf("Expected word count 140, got %d", builds[0].WordCount)
	}
	if !builds[1].CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("Expected created at %v, got %v", first.CreatedAt, builds[1].CreatedAt)
	}
}

func TestPruneBefore(t *testing.T) {
	store := openTestStore(t)

	old := Build{CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), OutputPath: "a.txt", WordCount: 1}
	recent := Build{CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), OutputPath: "b.txt", WordCount: 2}

	if err := store.Record(old); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Record(recent); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	pruned, err := store.PruneBefore(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("PruneBefore failed: %v", err)
	}
	if pruned != 1 {
		t.Errorf("Expected 1 pruned build, got %d", pruned)
	}

	builds, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(builds) != 1 || builds[0].OutputPath != "b.txt" {
		t.Errorf("Expected only the recent build to remain, got %v", builds)
	}
}
