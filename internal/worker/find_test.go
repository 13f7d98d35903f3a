package worker

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

// Property #9: find ignores an empty query and performs no walk.
func TestFindRecursiveEmptyQuery(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "f.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	results := findRecursive(dir, "", nil, 10, 2)
	if results != nil {
		t.Fatalf("expected nil results for empty query, got %+v", results)
	}
}

func TestFindRecursiveFindsMatch(t *testing.T) {
	dir := t.TempDir()
	mustCreate(t, filepath.Join(dir, "needle.txt"))
	mustCreate(t, filepath.Join(dir, "other.txt"))

	results := findRecursive(dir, "needle", nil, 10, 2)
	found := false
	for _, r := range results {
		if filepath.Base(r.Path) == "needle.txt" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected needle.txt among results, got %+v", results)
	}
}

func TestFindRecursiveRespectsMaxResults(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 20; i++ {
		mustCreate(t, filepath.Join(dir, "match_"+string(rune('a'+i))+".txt"))
	}
	results := findRecursive(dir, "match", nil, 5, 2)
	if len(results) > 5 {
		t.Fatalf("expected at most 5 results, got %d", len(results))
	}
}

// S6: a cancelled find returns no results.
func TestFindRecursiveCancellation(t *testing.T) {
	dir := t.TempDir()
	mustCreate(t, filepath.Join(dir, "needle.txt"))

	var cancel atomic.Bool
	cancel.Store(true)

	results := findRecursive(dir, "needle", &cancel, 10, 2)
	if results != nil {
		t.Fatalf("expected no results once cancelled, got %+v", results)
	}
}

func TestFindRecursiveResultsSortedDescending(t *testing.T) {
	dir := t.TempDir()
	mustCreate(t, filepath.Join(dir, "needle.txt"))
	mustCreate(t, filepath.Join(dir, "sub_needle_long_name.txt"))

	results := findRecursive(dir, "needle", nil, 10, 2)
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("expected descending score order, got %+v", results)
		}
	}
}
