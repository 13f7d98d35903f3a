// Package previewview holds the secondary pane that renders either the
// selected directory's contents or the selected file's text, debounced
// against rapid navigation.
package previewview

import (
	"time"
)

const debounce = 75 * time.Millisecond

// Kind distinguishes what PreviewData currently holds.
type Kind int

const (
	KindEmpty Kind = iota
	KindDirectory
	KindFile
)

// Data is the tagged union of what the preview pane can show. Styled is a
// domain-stack addition: an optional, cosmetic-only second rendering
// (syntax-highlighted or Markdown-rendered) that mirrors Lines one-for-one
// when present; for an image preview, Lines holds a one-line placeholder and
// Styled holds the rendered image rows, so the lengths differ. Every
// invariant on Lines holds regardless of Styled.
type Data struct {
	Kind    Kind
	Entries []DirEntryView // valid when Kind == KindDirectory
	Lines   []string       // valid when Kind == KindFile
	Styled  []string       // optional enrichment; same length as Lines except for images
}

// DirEntryView is the minimal shape previewview needs from an entry;
// previewview does not import internal/entry, since it consumes
// already-formatted rows.
type DirEntryView struct {
	Name        string
	DisplayName string
	IsDir       bool
}

func (d Data) IsEmpty() bool {
	switch d.Kind {
	case KindDirectory:
		return len(d.Entries) == 0
	case KindFile:
		return len(d.Lines) == 0
	default:
		return true
	}
}

// View is the preview pane's state.
type View struct {
	data        Data
	selectedIdx int
	currentPath string
	hasPath     bool
	requestID   uint64
	pending     bool
	lastInputAt time.Time
}

// New creates an empty preview view.
func New() *View {
	return &View{}
}

func (v *View) Data() Data          { return v.data }
func (v *View) SelectedIdx() int    { return v.selectedIdx }
func (v *View) RequestID() uint64   { return v.requestID }
func (v *View) CurrentPath() string { return v.currentPath }

// SetSelectedIdx clamps idx into [0, len-1] (0 if the pane is empty) for
// whichever kind of data is currently loaded.
func (v *View) SetSelectedIdx(idx int) {
	n := 0
	switch v.data.Kind {
	case KindDirectory:
		n = len(v.data.Entries)
	case KindFile:
		n = len(v.data.Lines)
	}
	if n == 0 {
		v.selectedIdx = 0
		return
	}
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	v.selectedIdx = idx
}

// MarkPending records that a refresh is desired; the actual request waits
// for ShouldTrigger's debounce window to elapse.
func (v *View) MarkPending(now time.Time) {
	v.pending = true
	v.lastInputAt = now
}

// ShouldTrigger reports whether a pending refresh has been stable for
// longer than the debounce window.
func (v *View) ShouldTrigger(now time.Time) bool {
	return v.pending && now.Sub(v.lastInputAt) > debounce
}

// PrepareNewRequest bumps request_id, records path as the pending path,
// clears the pending flag, and returns the new request_id.
func (v *View) PrepareNewRequest(path string) uint64 {
	v.requestID++
	v.currentPath = path
	v.hasPath = true
	v.pending = false
	return v.requestID
}

// UpdateContent installs freshly loaded file lines if requestID matches
// the view's current request_id; stale responses are dropped silently.
func (v *View) UpdateContent(lines, styled []string, requestID uint64) {
	if requestID != v.requestID {
		return
	}
	v.data = Data{Kind: KindFile, Lines: lines, Styled: styled}
}

// UpdateFromEntries installs a freshly loaded directory preview if
// requestID matches the view's current request_id.
func (v *View) UpdateFromEntries(entries []DirEntryView, requestID uint64) {
	if requestID != v.requestID {
		return
	}
	v.data = Data{Kind: KindDirectory, Entries: entries}
	v.selectedIdx = 0
}

// SetError replaces the preview content with a single-line error message,
// unconditionally (errors are shown regardless of request_id, mirroring
// the behavior of a user-visible failure that should never go silent).
func (v *View) SetError(msg string) {
	v.data = Data{Kind: KindFile, Lines: []string{msg}}
}

// Clear resets the view to empty, e.g. when nothing is selected.
func (v *View) Clear() {
	v.data = Data{Kind: KindEmpty}
	v.selectedIdx = 0
}
