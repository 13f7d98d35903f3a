// Package navview holds the authoritative state of the currently active
// pane: path, entries, selection, per-path remembered positions, the text
// filter, markers and the monotonic request_id used to discard stale
// worker responses.
package navview

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/wilbur182/runa/internal/entry"
)

// View is the nav pane's state. It is mutated only by the coordinator,
// never concurrently, so it needs no internal locking.
type View struct {
	currentDir string
	entries    []entry.Entry
	selected   int
	positions  map[string]int
	requestID  uint64

	filter  string
	markers map[string]struct{} // absolute paths
}

// New creates a View rooted at path with a fresh request_id of 0.
func New(path string) *View {
	return &View{
		currentDir: path,
		positions:  make(map[string]int),
		markers:    make(map[string]struct{}),
	}
}

func (v *View) CurrentDir() string    { return v.currentDir }
func (v *View) Entries() []entry.Entry { return v.entries }
func (v *View) Selected() int          { return v.selected }
func (v *View) RequestID() uint64      { return v.requestID }
func (v *View) Filter() string         { return v.filter }

// SelectedEntry returns the currently selected entry, or (_, false) if the
// pane is empty.
func (v *View) SelectedEntry() (entry.Entry, bool) {
	if v.selected < 0 || v.selected >= len(v.entries) {
		return entry.Entry{}, false
	}
	return v.entries[v.selected], true
}

// PrepareNewRequest increments and returns the new request_id. Call this
// immediately before dispatching a directory-load task so the response can
// be matched back against it.
func (v *View) PrepareNewRequest() uint64 {
	v.requestID++
	return v.requestID
}

// MoveUp moves the selection up one entry, wrapping to the last entry from
// the first. Returns false (no-op) if the pane has no entries.
func (v *View) MoveUp() bool {
	n := len(v.shownIndices())
	if n == 0 {
		return false
	}
	shown := v.shownIndices()
	pos := indexOf(shown, v.selected)
	if pos <= 0 {
		v.selected = shown[n-1]
	} else {
		v.selected = shown[pos-1]
	}
	return true
}

// MoveDown moves the selection down one entry, wrapping to the first entry
// from the last. Returns false (no-op) if the pane has no entries.
func (v *View) MoveDown() bool {
	shown := v.shownIndices()
	n := len(shown)
	if n == 0 {
		return false
	}
	pos := indexOf(shown, v.selected)
	if pos < 0 {
		v.selected = shown[0]
		return true
	}
	v.selected = shown[(pos+1)%n]
	return true
}

// SavePosition remembers the current selection for the current directory,
// so a later SetPath back to this directory can restore it.
func (v *View) SavePosition() {
	v.positions[v.currentDir] = v.selected
}

// SetPath switches to a new directory: clears entries and selection,
// and bumps request_id so any in-flight response for the old directory is
// discarded on arrival.
func (v *View) SetPath(path string) {
	v.currentDir = path
	v.entries = nil
	v.selected = 0
	v.requestID++
}

// UpdateFromWorker installs a freshly loaded listing. If focus is
// non-empty, the entry with that name is selected; otherwise the
// remembered position for path is used; otherwise 0. The result is always
// clamped into range.
func (v *View) UpdateFromWorker(path string, entries []entry.Entry, focus string) {
	v.currentDir = path
	v.entries = entries

	if focus != "" {
		v.selected = entry.IndexByName(entries, focus)
		if v.selected < 0 {
			v.selected = 0
		}
	} else if pos, ok := v.positions[path]; ok {
		v.selected = pos
	} else {
		v.selected = 0
	}

	if len(entries) == 0 {
		v.selected = 0
	} else if v.selected >= len(entries) {
		v.selected = len(entries) - 1
	} else if v.selected < 0 {
		v.selected = 0
	}
}

// ToggleMarker adds or removes the absolute path of the currently selected
// entry from the marker set.
func (v *View) ToggleMarker() {
	e, ok := v.SelectedEntry()
	if !ok {
		return
	}
	path := filepath.Join(v.currentDir, e.Name)
	if _, marked := v.markers[path]; marked {
		delete(v.markers, path)
	} else {
		v.markers[path] = struct{}{}
	}
}

// ClearMarkers empties the marker set.
func (v *View) ClearMarkers() {
	v.markers = make(map[string]struct{})
}

// Markers returns the current marker set as a sorted slice of absolute
// paths.
func (v *View) Markers() []string {
	out := make([]string, 0, len(v.markers))
	for p := range v.markers {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// GetActionTargets returns the marker set if non-empty, else the singleton
// {selected path}, regardless of the active filter — markers are tracked
// as absolute paths independent of what the filter currently shows.
func (v *View) GetActionTargets() []string {
	if len(v.markers) > 0 {
		return v.Markers()
	}
	e, ok := v.SelectedEntry()
	if !ok {
		return nil
	}
	return []string{filepath.Join(v.currentDir, e.Name)}
}

// SetFilter updates the text filter, preserving the identity of the
// currently selected entry if it is still shown under the new filter.
func (v *View) SetFilter(filter string) {
	e, hadSelection := v.SelectedEntry()
	v.filter = filter

	if !hadSelection {
		return
	}
	shown := v.shownIndices()
	if len(shown) == 0 {
		return
	}
	for _, idx := range shown {
		if v.entries[idx].Name == e.Name {
			v.selected = idx
			return
		}
	}
	v.selected = shown[0]
}

// ShownEntries returns the subset of entries visible under the current
// filter (case-insensitive substring match on Name).
func (v *View) ShownEntries() []entry.Entry {
	idx := v.shownIndices()
	out := make([]entry.Entry, len(idx))
	for i, j := range idx {
		out[i] = v.entries[j]
	}
	return out
}

func (v *View) shownIndices() []int {
	if v.filter == "" {
		idx := make([]int, len(v.entries))
		for i := range v.entries {
			idx[i] = i
		}
		return idx
	}
	needle := strings.ToLower(v.filter)
	var idx []int
	for i, e := range v.entries {
		if strings.Contains(e.LowercaseName, needle) {
			idx = append(idx, i)
		}
	}
	return idx
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
