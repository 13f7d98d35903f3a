package actions

import "testing"

func TestEnterExitMode(t *testing.T) {
	c := New()
	if c.Mode().Kind != ModeNormal {
		t.Fatal("expected Normal mode by default")
	}

	c.EnterMode(Mode{Kind: ModeInput, Input: InputRename, Prompt: "rename:"}, "old.txt")
	if !c.IsInputMode() {
		t.Fatal("expected input mode active")
	}
	if c.InputBuffer() != "old.txt" {
		t.Fatalf("expected seeded buffer, got %q", c.InputBuffer())
	}
	if c.Cursor() != len([]rune("old.txt")) {
		t.Fatalf("expected cursor at end, got %d", c.Cursor())
	}

	c.ExitMode()
	if c.Mode().Kind != ModeNormal || c.InputBuffer() != "" {
		t.Fatal("expected reset to Normal with empty buffer")
	}
}

func TestInsertAndBackspace(t *testing.T) {
	c := New()
	c.EnterMode(Mode{Kind: ModeInput, Input: InputNewFile}, "")
	c.InsertRune('a')
	c.InsertRune('b')
	c.InsertRune('c')
	if c.InputBuffer() != "abc" {
		t.Fatalf("expected abc, got %q", c.InputBuffer())
	}

	c.MoveCursorLeft()
	c.InsertRune('X')
	if c.InputBuffer() != "abXc" {
		t.Fatalf("expected abXc, got %q", c.InputBuffer())
	}

	c.Backspace()
	if c.InputBuffer() != "abc" {
		t.Fatalf("expected abc after backspace, got %q", c.InputBuffer())
	}
}

func TestBackspaceAtStartIsNoop(t *testing.T) {
	c := New()
	c.EnterMode(Mode{Kind: ModeInput, Input: InputNewFile}, "x")
	c.MoveCursorLeft()
	c.Backspace()
	if c.InputBuffer() != "x" {
		t.Fatalf("expected unchanged buffer, got %q", c.InputBuffer())
	}
}

func TestClipboardSetClearEmpty(t *testing.T) {
	c := New()
	c.SetClipboard(nil, false)
	if c.Clipboard() != nil {
		t.Fatal("expected no-op for empty path set")
	}

	c.SetClipboard([]string{"/a", "/b"}, true)
	cb := c.Clipboard()
	if cb == nil || !cb.IsCut || len(cb.Paths) != 2 {
		t.Fatalf("unexpected clipboard state: %+v", cb)
	}

	c.ClearClipboard()
	if c.Clipboard() != nil {
		t.Fatal("expected clipboard cleared")
	}
}

func TestFindRequestLifecycle(t *testing.T) {
	c := New()
	id1, tok1 := c.PrepareNewFindRequest()
	if id1 != 1 {
		t.Fatalf("expected first find request id 1, got %d", id1)
	}

	id2, tok2 := c.PrepareNewFindRequest()
	if id2 != 2 {
		t.Fatalf("expected second request id 2, got %d", id2)
	}
	if !tok1.Load() {
		t.Fatal("expected the first token to be cancelled when a new find request starts")
	}
	if tok2.Load() {
		t.Fatal("expected the fresh token to be un-cancelled")
	}
}

// Property #4 (the find-results side of it): setting results for a stale
// request_id must not overwrite the current results.
func TestSetFindResultsDiscardsStale(t *testing.T) {
	c := New()
	c.PrepareNewFindRequest()
	newID, _ := c.PrepareNewFindRequest()

	c.SetFindResults([]FindResult{{Path: "/stale"}}, newID-1)
	if len(c.FindResults()) != 0 {
		t.Fatalf("expected stale results discarded, got %+v", c.FindResults())
	}

	c.SetFindResults([]FindResult{{Path: "/fresh"}}, newID)
	if len(c.FindResults()) != 1 || c.FindResults()[0].Path != "/fresh" {
		t.Fatalf("expected fresh results installed, got %+v", c.FindResults())
	}
}

func TestTakeStableFindQueryOutsideFindModeReturnsFalse(t *testing.T) {
	c := New()
	if _, ok := c.TakeStableFindQuery(); ok {
		t.Fatal("expected false outside Find input mode")
	}
}

func TestTakeStableFindQueryRequiresOneQuietTick(t *testing.T) {
	c := New()
	c.EnterMode(Mode{Kind: ModeInput, Input: InputFind}, "")
	c.InsertRune('a')

	if _, ok := c.TakeStableFindQuery(); ok {
		t.Fatal("expected no trigger on the same tick the buffer changed")
	}

	query, ok := c.TakeStableFindQuery()
	if !ok || query != "a" {
		t.Fatalf("expected stable trigger with query %q, got %q ok=%v", "a", query, ok)
	}

	if _, ok := c.TakeStableFindQuery(); ok {
		t.Fatal("expected no re-trigger once a stable value has already been dispatched")
	}

	c.InsertRune('b')
	query, ok = c.TakeStableFindQuery()
	if ok {
		t.Fatal("expected no trigger the tick the buffer changes again")
	}
	query, ok = c.TakeStableFindQuery()
	if !ok || query != "ab" {
		t.Fatalf("expected stable trigger with query %q, got %q ok=%v", "ab", query, ok)
	}
}
