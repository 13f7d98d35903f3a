// Package actions holds the input/mode state machine, clipboard, find
// results and find cancellation token — everything needed to turn a
// keypress or a completed prompt into a file operation dispatched to the
// workers.
package actions

import (
	"sync/atomic"
)

// InputMode names which prompt is currently active while Mode is Input.
type InputMode int

const (
	InputRename InputMode = iota
	InputNewFile
	InputNewFolder
	InputFilter
	InputConfirmDelete
	InputFind
)

// ModeKind discriminates ActionMode's variants.
type ModeKind int

const (
	ModeNormal ModeKind = iota
	ModeInput
	ModeConfirm
)

// Mode is the action context's single active mode. Exactly one of these
// shapes is meaningful at a time, selected by Kind.
type Mode struct {
	Kind   ModeKind
	Input  InputMode // valid when Kind == ModeInput
	Prompt string    // valid when Kind == ModeInput or ModeConfirm
	Action string    // valid when Kind == ModeConfirm; name of the pending file action
}

// FindResult is a single scored match from a find-recursive walk.
type FindResult struct {
	Path     string
	Relative string
	IsDir    bool
	Score    int
}

// Clipboard holds a pending copy/cut selection.
type Clipboard struct {
	Paths []string
	IsCut bool
}

// Context is the action context's full state.
type Context struct {
	mode        Mode
	inputBuffer []rune
	cursor      int

	clipboard   *Clipboard
	findResults []FindResult
	findReqID   uint64
	findCancel  *atomic.Bool

	findQuerySnapshot    string
	findQuerySnapshotSet bool
	findQueryDispatched  bool
}

// New creates a Context in Normal mode with an empty input buffer.
func New() *Context {
	return &Context{mode: Mode{Kind: ModeNormal}}
}

func (c *Context) Mode() Mode { return c.mode }

// IsInputMode reports whether the context is currently accepting text
// input (used by the coordinator to route keypresses to EditBuffer instead
// of the keymap).
func (c *Context) IsInputMode() bool { return c.mode.Kind == ModeInput }

// InputBuffer returns the current input buffer contents.
func (c *Context) InputBuffer() string { return string(c.inputBuffer) }

// Cursor returns the cursor position within the input buffer, in runes.
func (c *Context) Cursor() int { return c.cursor }

// Clipboard returns the current clipboard, or nil if empty.
func (c *Context) Clipboard() *Clipboard { return c.clipboard }

// FindResults returns the most recently installed find results.
func (c *Context) FindResults() []FindResult { return c.findResults }

// FindRequestID returns the request_id of the newest dispatched find task.
func (c *Context) FindRequestID() uint64 { return c.findReqID }

// EnterMode switches into mode, seeding the input buffer with initial and
// placing the cursor at its end.
func (c *Context) EnterMode(mode Mode, initial string) {
	c.mode = mode
	c.inputBuffer = []rune(initial)
	c.cursor = len(c.inputBuffer)
}

// ExitMode returns to Normal and clears the input buffer.
func (c *Context) ExitMode() {
	c.mode = Mode{Kind: ModeNormal}
	c.inputBuffer = nil
	c.cursor = 0
}

// InsertRune inserts r at the cursor and advances it.
func (c *Context) InsertRune(r rune) {
	c.inputBuffer = append(c.inputBuffer[:c.cursor], append([]rune{r}, c.inputBuffer[c.cursor:]...)...)
	c.cursor++
}

// Backspace deletes the rune before the cursor, if any.
func (c *Context) Backspace() {
	if c.cursor == 0 {
		return
	}
	c.inputBuffer = append(c.inputBuffer[:c.cursor-1], c.inputBuffer[c.cursor:]...)
	c.cursor--
}

// MoveCursorLeft/MoveCursorRight move the input cursor, clamped to the
// buffer bounds.
func (c *Context) MoveCursorLeft() {
	if c.cursor > 0 {
		c.cursor--
	}
}

func (c *Context) MoveCursorRight() {
	if c.cursor < len(c.inputBuffer) {
		c.cursor++
	}
}

// SetClipboard replaces the clipboard with the given paths and cut flag.
// Called by Copy (with isCut selecting copy or cut); no-op for an empty
// target set.
func (c *Context) SetClipboard(paths []string, isCut bool) {
	if len(paths) == 0 {
		return
	}
	cp := make([]string, len(paths))
	copy(cp, paths)
	c.clipboard = &Clipboard{Paths: cp, IsCut: isCut}
}

// ClearClipboard empties the clipboard, e.g. after a cut-paste completes.
func (c *Context) ClearClipboard() { c.clipboard = nil }

// PrepareNewFindRequest cancels any in-flight find, bumps the find
// request_id, installs a fresh cancellation token for the new request, and
// returns (request_id, token).
func (c *Context) PrepareNewFindRequest() (uint64, *atomic.Bool) {
	c.CancelFind()
	c.findReqID++
	tok := new(atomic.Bool)
	c.findCancel = tok
	return c.findReqID, tok
}

// CancelFind signals the in-flight find's cancellation token, if any.
func (c *Context) CancelFind() {
	if c.findCancel != nil {
		c.findCancel.Store(true)
	}
}

// ClearFindResults empties the find results without touching request_id.
func (c *Context) ClearFindResults() { c.findResults = nil }

// SetFindResults installs results if requestID matches the newest
// dispatched find request_id; stale responses are discarded.
func (c *Context) SetFindResults(results []FindResult, requestID uint64) {
	if requestID != c.findReqID {
		return
	}
	c.findResults = results
}

// TakeStableFindQuery implements "find triggers when the input buffer has
// been stable for one tick of the loop": called once per coordinator tick
// while in Find input mode, it returns (query, true) the first tick the
// buffer stops changing, and (_, false) on every other tick (including
// every tick the buffer is still actively changing, and once the stable
// value has already been dispatched). Leaving Find input mode, or any
// other mode, resets tracking so re-entering Find starts fresh.
func (c *Context) TakeStableFindQuery() (string, bool) {
	if c.mode.Kind != ModeInput || c.mode.Input != InputFind {
		c.findQuerySnapshotSet = false
		return "", false
	}

	buf := c.InputBuffer()
	if !c.findQuerySnapshotSet || c.findQuerySnapshot != buf {
		c.findQuerySnapshot = buf
		c.findQuerySnapshotSet = true
		c.findQueryDispatched = false
		return "", false
	}

	if c.findQueryDispatched {
		return "", false
	}
	c.findQueryDispatched = true
	return buf, true
}
