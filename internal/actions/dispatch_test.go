package actions

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wilbur182/runa/internal/entry"
	"github.com/wilbur182/runa/internal/navview"
	"github.com/wilbur182/runa/internal/worker"
)

// waitForFileOp drains pool's response channel until it sees a completion
// response or the deadline passes.
func waitForFileOp(t *testing.T, pool *worker.Pool) worker.Response {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case resp := <-pool.Responses:
			if resp.Kind == worker.ResponseOperationComplete {
				return resp
			}
		case <-time.After(5 * time.Millisecond):
		}
	}
	t.Fatal("timed out waiting for file-op response")
	return worker.Response{}
}

func loadNav(t *testing.T, dir string) *navview.View {
	t.Helper()
	nav := navview.New(dir)
	entries, err := entry.Read(dir)
	if err != nil {
		t.Fatal(err)
	}
	nav.UpdateFromWorker(dir, entries, "")
	return nav
}

func TestDeleteSubmitsAndClearsMarkers(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "gone.txt")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	nav := loadNav(t, dir)
	nav.ToggleMarker()

	pool := worker.Spawn(nil, 1)
	Delete(nav, pool)
	waitForFileOp(t, pool)

	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatalf("expected %s to be deleted, stat err=%v", target, err)
	}
	if len(nav.Markers()) != 0 {
		t.Fatal("expected markers cleared after delete")
	}
}

func TestCopyThenPasteDuplicatesFile(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()
	src := filepath.Join(srcDir, "a.txt")
	if err := os.WriteFile(src, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	nav := loadNav(t, srcDir)
	nav.ToggleMarker()

	c := New()
	c.Copy(nav, false)
	if c.Clipboard() == nil || len(c.Clipboard().Paths) != 1 {
		t.Fatal("expected one path staged on the clipboard")
	}

	dstNav := loadNav(t, dstDir)
	pool := worker.Spawn(nil, 1)
	c.Paste(dstNav, pool)
	waitForFileOp(t, pool)

	if _, err := os.Stat(filepath.Join(dstDir, "a.txt")); err != nil {
		t.Fatalf("expected a.txt copied into dest: %v", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("copy (not cut) must leave the source in place: %v", err)
	}
}

func TestCutPasteClearsClipboardAndRemovesSource(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()
	src := filepath.Join(srcDir, "b.txt")
	if err := os.WriteFile(src, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	nav := loadNav(t, srcDir)
	nav.ToggleMarker()

	c := New()
	c.Copy(nav, true)

	dstNav := loadNav(t, dstDir)
	pool := worker.Spawn(nil, 1)
	c.Paste(dstNav, pool)
	waitForFileOp(t, pool)

	if c.Clipboard() != nil {
		t.Fatal("expected clipboard cleared after a cut-paste")
	}
	if _, err := os.Stat(filepath.Join(dstDir, "b.txt")); err != nil {
		t.Fatalf("expected b.txt moved into dest: %v", err)
	}
}

func TestPasteWithEmptyClipboardIsNoop(t *testing.T) {
	dir := t.TempDir()
	nav := loadNav(t, dir)
	c := New()
	pool := worker.Spawn(nil, 1)

	c.Paste(nav, pool)

	select {
	case resp := <-pool.Responses:
		t.Fatalf("expected no file-op response from an empty-clipboard paste, got %+v", resp)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFilterAppliesInputBufferToNav(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"apple.txt", "banana.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	nav := loadNav(t, dir)

	c := New()
	c.EnterMode(Mode{Kind: ModeInput, Input: InputFilter}, "")
	for _, r := range "app" {
		c.InsertRune(r)
	}
	c.Filter(nav)

	if nav.Filter() != "app" {
		t.Fatalf("expected nav filter %q, got %q", "app", nav.Filter())
	}
	shown := nav.ShownEntries()
	if len(shown) != 1 || shown[0].Name != "apple.txt" {
		t.Fatalf("expected filter to narrow to apple.txt, got %+v", shown)
	}
}
