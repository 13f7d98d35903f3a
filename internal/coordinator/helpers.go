package coordinator

import (
	"path/filepath"
	"time"
	"unicode/utf8"
)

func timeNow() time.Time { return time.Now() }

func parentOf(path string) string { return filepath.Dir(path) }

func baseName(path string) string { return filepath.Base(path) }

func joinPath(dir, name string) string { return filepath.Join(dir, name) }

// singleRune returns the single rune a bubbletea KeyMsg.String() represents
// for a printable character key, or (_, false) for anything else (named
// keys like "up", "ctrl+c", multi-rune sequences).
func singleRune(key string) (rune, bool) {
	if key == " " {
		return ' ', true
	}
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError || size != len(key) {
		return 0, false
	}
	return r, true
}
