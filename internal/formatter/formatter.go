// Package formatter sorts, filters and pads directory entries for display.
// Every function here is a pure transformation over an entry slice: no I/O,
// no shared mutable state, deterministic for a given input and settings.
package formatter

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/wilbur182/runa/internal/entry"
)

// Settings controls sort order, visibility filtering and display width.
// AlwaysShow is an immutable, reference-shared set of names that bypass the
// hidden/system filter regardless of the other flags.
type Settings struct {
	DirsFirst       bool
	ShowHidden      bool
	ShowSystem      bool
	CaseInsensitive bool
	AlwaysShow      *AlwaysShowSet
	PaneWidth       int
}

// AlwaysShowSet is an immutable set of entry names, shared by reference
// across every formatter call so it is never copied per-request.
type AlwaysShowSet struct {
	names     map[string]struct{}
	lowercase map[string]struct{}
}

// NewAlwaysShowSet builds an immutable set from the given names.
func NewAlwaysShowSet(names []string) *AlwaysShowSet {
	s := &AlwaysShowSet{
		names:     make(map[string]struct{}, len(names)),
		lowercase: make(map[string]struct{}, len(names)),
	}
	for _, n := range names {
		s.names[n] = struct{}{}
		s.lowercase[strings.ToLower(n)] = struct{}{}
	}
	return s
}

func (s *AlwaysShowSet) contains(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.names[name]
	return ok
}

func (s *AlwaysShowSet) containsLower(lower string) bool {
	if s == nil {
		return false
	}
	_, ok := s.lowercase[lower]
	return ok
}

// FilterAndFormat filters entries in place (returning the retained slice)
// according to settings, then sorts and pads the survivors. It is the
// single entry point the directory worker calls after a raw listing.
func FilterAndFormat(entries []entry.Entry, s Settings) []entry.Entry {
	entries = filter(entries, s)
	Format(entries, s)
	return entries
}

func filter(entries []entry.Entry, s Settings) []entry.Entry {
	kept := entries[:0]
	for _, e := range entries {
		var exception bool
		if s.CaseInsensitive {
			exception = s.AlwaysShow.containsLower(e.LowercaseName)
		} else {
			exception = s.AlwaysShow.contains(e.Name)
		}

		if exception || ((s.ShowHidden || !e.IsHidden) && (s.ShowSystem || !e.IsSystem)) {
			kept = append(kept, e)
		}
	}
	return kept
}

// Format sorts entries according to s and sets each DisplayName to exactly
// s.PaneWidth visual columns (directories get a trailing "/" before
// truncation/padding).
//
// The sort is stable, and entries arrives already in raw-name order
// (entry.Read lists via os.ReadDir, which returns entries sorted by
// filename): when CaseInsensitive makes two names compare equal (e.g.
// "A" and "a"), SliceStable leaves them in that incoming raw-name order
// rather than reordering them, which is what resolves the tie.
func Format(entries []entry.Entry, s Settings) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if s.DirsFirst && a.IsDir != b.IsDir {
			return a.IsDir
		}
		if s.CaseInsensitive {
			return a.LowercaseName < b.LowercaseName
		}
		return a.Name < b.Name
	})

	for i := range entries {
		base := entries[i].Name
		if entries[i].IsDir {
			base += "/"
		}
		entries[i].DisplayName = padToWidth(base, s.PaneWidth)
	}
}

// padToWidth truncates base to at most width visual columns (ellipsis on
// truncation) and right-pads with spaces so the result is exactly width
// columns wide, measured by Unicode display width.
func padToWidth(base string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(base) <= width {
		return base + strings.Repeat(" ", width-runewidth.StringWidth(base))
	}
	if width == 1 {
		return "…"
	}

	var kept []rune
	current := 0
	for _, r := range base {
		w := runewidth.RuneWidth(r)
		if current+w > width-1 {
			break
		}
		kept = append(kept, r)
		current += w
	}
	out := string(kept) + "…"
	current = runewidth.StringWidth(out)
	if current < width {
		out += strings.Repeat(" ", width-current)
	}
	return out
}

// SanitizeToWidth strips control characters, expands tabs to 4 columns, and
// truncates/pads line to exactly width visual columns. Used by the preview
// worker for both file lines and directory-preview lines.
func SanitizeToWidth(line string, width int) string {
	if width <= 0 {
		return ""
	}

	var b strings.Builder
	current := 0

	for _, r := range line {
		if r == '\t' {
			spaces := 4 - (current % 4)
			if current+spaces > width {
				break
			}
			b.WriteString(strings.Repeat(" ", spaces))
			current += spaces
			continue
		}

		if isControl(r) {
			continue
		}

		w := runewidth.RuneWidth(r)
		if current+w > width {
			break
		}
		b.WriteRune(r)
		current += w
	}

	if current < width {
		b.WriteString(strings.Repeat(" ", width-current))
	}
	return b.String()
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}
