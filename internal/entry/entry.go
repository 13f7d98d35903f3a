// Package entry holds the immutable directory-entry snapshots produced by a
// directory listing and consumed by the formatter and the view layer.
package entry

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is a single immutable snapshot of a directory member. Entries are
// replaced wholesale whenever their directory is re-listed; nothing mutates
// an Entry in place except the formatter, which fills in DisplayName.
type Entry struct {
	Name          string // OS file name, e.g. "notes.md"
	DisplayName   string // width-padded name set by the formatter; empty until formatted
	LowercaseName string
	IsDir         bool
	IsHidden      bool
	IsSystem      bool
}

// Read lists the contents of dir and returns their unfiltered, unformatted
// snapshots in os.ReadDir's own order (sorted by filename). The formatter
// relies on that incoming raw-name order to break sort ties, so callers
// must not reorder the result before passing it to Format. A symlink whose
// target cannot be stat'd is still listed, as a non-directory.
func Read(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		name := de.Name()
		isDir := de.IsDir()
		if de.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(dir, name)); err == nil {
				isDir = info.IsDir()
			}
		}

		entries = append(entries, Entry{
			Name:          name,
			LowercaseName: strings.ToLower(name),
			IsDir:         isDir,
			IsHidden:      isHidden(dir, name),
			IsSystem:      isSystem(dir, name),
		})
	}
	return entries, nil
}

// IndexByName returns the index of the entry named name, or -1.
func IndexByName(entries []Entry, name string) int {
	for i, e := range entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// SortedNames returns a defensive, sorted copy of entry names.
func SortedNames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	sort.Strings(names)
	return names
}
