package formatter

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFormatFileSize(t *testing.T) {
	if got := FormatFileSize(0, true); got != "-" {
		t.Fatalf("expected - for directories, got %q", got)
	}
	if got := FormatFileSize(-1, false); got != "-" {
		t.Fatalf("expected - for unknown size, got %q", got)
	}
	if got := FormatFileSize(1024, false); got == "-" || got == "" {
		t.Fatalf("expected a human-readable size, got %q", got)
	}
}

func TestFormatFileTimeZero(t *testing.T) {
	if got := FormatFileTime(time.Time{}); got != "-" {
		t.Fatalf("expected - for zero time, got %q", got)
	}
}

func TestFormatAttributesRegularFile(t *testing.T) {
	got := FormatAttributes(0o644)
	if got[0] != '-' {
		t.Fatalf("expected leading -, got %q", got)
	}
	if got != "-rw-r--r--" {
		t.Fatalf("unexpected attributes %q", got)
	}
}

func TestFormatAttributesDirectory(t *testing.T) {
	got := FormatAttributes(os.ModeDir | 0o755)
	if got[0] != 'd' {
		t.Fatalf("expected leading d, got %q", got)
	}
}

func TestSymlinkTargetResolved(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	resolved := SymlinkTargetResolved(dir, "link")
	if resolved != target {
		t.Fatalf("expected %q, got %q", target, resolved)
	}
}

func TestSymlinkTargetResolvedNonSymlink(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "f.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := SymlinkTargetResolved(dir, "f.txt"); got != "" {
		t.Fatalf("expected empty string for non-symlink, got %q", got)
	}
}

func TestShortenHomePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}
	sub := filepath.Join(home, "projects", "runa")
	got := ShortenHomePath(sub)
	want := "~" + string(filepath.Separator) + filepath.Join("projects", "runa")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got := ShortenHomePath(home); got != "~" {
		t.Fatalf("expected ~ for home itself, got %q", got)
	}
}

func TestClassifyFileType(t *testing.T) {
	if ClassifyFileType(os.ModeDir) != TypeDirectory {
		t.Fatal("expected TypeDirectory")
	}
	if ClassifyFileType(os.ModeSymlink) != TypeSymlink {
		t.Fatal("expected TypeSymlink")
	}
	if ClassifyFileType(0) != TypeFile {
		t.Fatal("expected TypeFile")
	}
}
