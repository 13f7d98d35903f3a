// Package parentview holds the secondary pane that shows the contents of
// the parent directory, with the entry for the current directory
// highlighted.
package parentview

import (
	"github.com/wilbur182/runa/internal/entry"
)

// View is the parent pane's state.
type View struct {
	entries     []entry.Entry
	selectedIdx int // -1 means none
	lastPath    string
	hasLastPath bool
	requestID   uint64
}

// New creates an empty parent view.
func New() *View {
	return &View{selectedIdx: -1}
}

func (v *View) Entries() []entry.Entry { return v.entries }
func (v *View) RequestID() uint64      { return v.requestID }

// SelectedIdx returns the index of the entry matching the directory the
// nav pane is currently inside, or (_, false) if none is highlighted.
func (v *View) SelectedIdx() (int, bool) {
	if v.selectedIdx < 0 {
		return 0, false
	}
	return v.selectedIdx, true
}

// ShouldRequest reports whether a new parent listing needs to be fetched
// for parentPath: true when the view is empty or parentPath differs from
// the last path it was populated for.
func (v *View) ShouldRequest(parentPath string) bool {
	if len(v.entries) == 0 {
		return true
	}
	return !v.hasLastPath || parentPath != v.lastPath
}

// PrepareNewRequest bumps request_id, records parentPath as the pending
// path, and returns the new request_id to tag the dispatched task with.
func (v *View) PrepareNewRequest(parentPath string) uint64 {
	v.requestID++
	v.lastPath = parentPath
	v.hasLastPath = true
	return v.requestID
}

// UpdateFromEntries installs a freshly loaded parent listing, highlighting
// the entry named currentName. Stale responses (reqID older than the
// view's current request_id) are discarded.
func (v *View) UpdateFromEntries(entries []entry.Entry, currentName string, reqID uint64) {
	if reqID < v.requestID {
		return
	}
	v.selectedIdx = entry.IndexByName(entries, currentName)
	v.entries = entries
	v.requestID = reqID
}

// Clear empties the view, e.g. when navigation reaches the filesystem
// root and there is no parent to show.
func (v *View) Clear() {
	v.entries = nil
	v.selectedIdx = -1
	v.hasLastPath = false
	v.lastPath = ""
	v.requestID++
}
