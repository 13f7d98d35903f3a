package coordinator

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wilbur182/runa/internal/actions"
	"github.com/wilbur182/runa/internal/config"
	"github.com/wilbur182/runa/internal/worker"
)

func newTestCoordinator(t *testing.T, root string) *Coordinator {
	t.Helper()
	pool := worker.Spawn(nil, 1)
	return New(root, config.Default(), pool, nil)
}

// waitUntil polls cond once per tick until it returns true or the deadline
// passes, driving Tick so responses get applied.
func waitUntil(t *testing.T, c *Coordinator, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		c.Tick(time.Now())
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for condition")
}

// S1: basic navigation loads a directory, its parent, and the preview.
func TestBasicNavigationLoadsAllThreePanes(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "f.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := newTestCoordinator(t, sub)
	waitUntil(t, c, func() bool { return len(c.Nav.Entries()) > 0 })

	if len(c.Nav.Entries()) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(c.Nav.Entries()))
	}

	waitUntil(t, c, func() bool { return len(c.Parent.Entries()) > 0 })
	if len(c.Parent.Entries()) != 1 {
		t.Fatalf("expected 1 parent entry (sub), got %d", len(c.Parent.Entries()))
	}

	waitUntil(t, c, func() bool { return !c.Preview.Data().IsEmpty() })
}

// Property #4: a DirectoryLoaded response whose request_id no longer
// matches Nav's current request_id (because the user navigated elsewhere
// in the meantime) must not be applied.
func TestStaleDirectoryResponseIsIgnored(t *testing.T) {
	root := t.TempDir()
	c := newTestCoordinator(t, root)
	waitUntil(t, c, func() bool { return !c.IsLoading })

	staleReqID := c.Nav.RequestID()

	// Navigate away, bumping the request_id so staleReqID is now stale.
	sub := filepath.Join(root, "sub")
	os.Mkdir(sub, 0o755)
	c.Nav.SetPath(sub)
	c.RequestDirLoad("")

	c.applyResponse(worker.Response{
		Kind:      worker.ResponseDirectoryLoaded,
		Path:      root,
		RequestID: staleReqID,
	}, "", false)

	if c.Nav.CurrentDir() != sub {
		t.Fatalf("expected stale response to be ignored, nav moved to %q", c.Nav.CurrentDir())
	}
}

// Property #3: every dispatched request carries a strictly increasing
// request_id from the same view.
func TestRequestIDMonotonicAcrossDispatches(t *testing.T) {
	root := t.TempDir()
	c := newTestCoordinator(t, root)
	waitUntil(t, c, func() bool { return !c.IsLoading })

	first := c.Nav.RequestID()
	c.RequestDirLoad("")
	second := c.Nav.RequestID()
	c.RequestDirLoad("")
	third := c.Nav.RequestID()

	if !(first < second && second < third) {
		t.Fatalf("expected strictly increasing request ids, got %d, %d, %d", first, second, third)
	}
}

// S3: renaming to a name that already exists fails with an error response
// and leaves both files in place.
func TestRenameCollisionIntegration(t *testing.T) {
	root := t.TempDir()
	os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644)
	os.WriteFile(filepath.Join(root, "b.txt"), []byte("b"), 0o644)

	c := newTestCoordinator(t, root)
	waitUntil(t, c, func() bool { return len(c.Nav.Entries()) == 2 })

	targetIdx := -1
	for i, e := range c.Nav.Entries() {
		if e.Name == "a.txt" {
			targetIdx = i
		}
	}
	if targetIdx < 0 {
		t.Fatal("expected a.txt among entries")
	}
	for i := 0; i < len(c.Nav.Entries()) && c.Nav.Selected() != targetIdx; i++ {
		c.Nav.MoveDown()
	}

	c.Actions.EnterMode(actions.Mode{Kind: actions.ModeInput, Input: actions.InputRename}, "b.txt")
	c.Actions.Rename(c.Nav, c.Pool)

	waitUntil(t, c, func() bool {
		_, errA := os.Stat(filepath.Join(root, "a.txt"))
		return errA == nil
	})
	if _, err := os.Stat(filepath.Join(root, "a.txt")); err != nil {
		t.Fatal("expected a.txt to still exist after a failed rename")
	}
}

// S4: creating a file whose name collides auto-suffixes instead of
// overwriting.
func TestCreateAutoSuffixIntegration(t *testing.T) {
	root := t.TempDir()
	os.WriteFile(filepath.Join(root, "note.txt"), []byte("original"), 0o644)

	c := newTestCoordinator(t, root)
	waitUntil(t, c, func() bool { return len(c.Nav.Entries()) == 1 })

	c.Actions.EnterMode(actions.Mode{Kind: actions.ModeInput, Input: actions.InputNewFile}, "note.txt")
	c.Actions.Create(c.Nav, c.Pool, false)

	waitUntil(t, c, func() bool {
		_, err := os.Stat(filepath.Join(root, "note_1.txt"))
		return err == nil
	})

	data, err := os.ReadFile(filepath.Join(root, "note.txt"))
	if err != nil || string(data) != "original" {
		t.Fatal("expected original note.txt untouched")
	}
}

// S5: preview requests only fire once the debounce window has elapsed.
func TestPreviewDebounceIntegration(t *testing.T) {
	root := t.TempDir()
	os.WriteFile(filepath.Join(root, "f.txt"), []byte("x"), 0o644)

	c := newTestCoordinator(t, root)
	waitUntil(t, c, func() bool { return len(c.Nav.Entries()) == 1 })

	c.Preview.MarkPending(time.Now())
	if c.Tick(time.Now()) {
		if c.Preview.ShouldTrigger(time.Now()) {
			t.Fatal("expected debounce window to still be open immediately after marking pending")
		}
	}

	waitUntil(t, c, func() bool { return !c.Preview.Data().IsEmpty() })
}

// S6: cancelling a find (by superseding its token with a fresh request)
// means the original query's results never get adopted.
func TestFindCancellationIntegration(t *testing.T) {
	root := t.TempDir()
	os.WriteFile(filepath.Join(root, "needle.txt"), []byte("x"), 0o644)

	c := newTestCoordinator(t, root)
	waitUntil(t, c, func() bool { return !c.IsLoading })

	c.RequestFind("needle")
	c.RequestFind("") // supersedes and cancels the first

	time.Sleep(50 * time.Millisecond)
	waitUntil(t, c, func() bool { return true })

	if len(c.Actions.FindResults()) != 0 {
		t.Fatalf("expected no adopted results for a superseded query, got %+v", c.Actions.FindResults())
	}
}
