package entry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRead(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "b.txt"), "")
	mustWrite(t, filepath.Join(dir, ".hidden"), "")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	entries, err := Read(dir)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	var hidden, dirEntry *Entry
	for i := range entries {
		switch entries[i].Name {
		case ".hidden":
			hidden = &entries[i]
		case "sub":
			dirEntry = &entries[i]
		}
	}
	if hidden == nil || !hidden.IsHidden {
		t.Fatalf("expected .hidden to be marked hidden")
	}
	if dirEntry == nil || !dirEntry.IsDir {
		t.Fatalf("expected sub to be marked as directory")
	}
}

func TestReadMissingDir(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestIndexByName(t *testing.T) {
	entries := []Entry{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	if got := IndexByName(entries, "b"); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	if got := IndexByName(entries, "missing"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
