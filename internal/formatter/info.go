package formatter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FileType classifies an entry for the Info overlay (supplemented feature,
// not present in the distilled spec but carried over from the original
// file_manager.rs FileType enum).
type FileType int

const (
	TypeFile FileType = iota
	TypeDirectory
	TypeSymlink
	TypeOther
)

func (t FileType) String() string {
	switch t {
	case TypeDirectory:
		return "Directory"
	case TypeSymlink:
		return "Symlink"
	case TypeFile:
		return "File"
	default:
		return "Other"
	}
}

// ClassifyFileType derives a FileType from a file mode.
func ClassifyFileType(mode os.FileMode) FileType {
	switch {
	case mode&os.ModeSymlink != 0:
		return TypeSymlink
	case mode.IsDir():
		return TypeDirectory
	case mode.IsRegular():
		return TypeFile
	default:
		return TypeOther
	}
}

// FormatAttributes renders Unix-style permission bits ("drwxr-xr-x") for
// info. On platforms without a mode bit representation this still works
// since os.FileMode mirrors the Unix bits cross-platform in Go.
func FormatAttributes(mode os.FileMode) string {
	first := byte('-')
	if mode.IsDir() {
		first = 'd'
	} else if mode&os.ModeSymlink != 0 {
		first = 'l'
	}

	chars := [10]byte{first, '-', '-', '-', '-', '-', '-', '-', '-', '-'}
	perm := uint32(mode.Perm())
	shifts := [3]uint{6, 3, 0}
	for i, shift := range shifts {
		base := 1 + i*3
		if (perm>>(shift+2))&1 != 0 {
			chars[base] = 'r'
		}
		if (perm>>(shift+1))&1 != 0 {
			chars[base+1] = 'w'
		}
		if (perm>>shift)&1 != 0 {
			chars[base+2] = 'x'
		}
	}
	return string(chars[:])
}

// FormatFileSize renders size as a human-readable decimal byte count, or
// "-" for directories and unknown sizes.
func FormatFileSize(size int64, isDir bool) string {
	if isDir || size < 0 {
		return "-"
	}
	return humanize.Bytes(uint64(size))
}

// FormatFileTime renders modified as "2006-01-02 15:04:05" in local time,
// or "-" if modified is the zero value.
func FormatFileTime(modified time.Time) string {
	if modified.IsZero() {
		return "-"
	}
	return modified.Local().Format("2006-01-02 15:04:05")
}

// SymlinkTargetResolved returns the resolved target path of name within
// parentDir if name is a symlink, or "" if it isn't one or can't be read.
func SymlinkTargetResolved(parentDir, name string) string {
	full := filepath.Join(parentDir, name)
	info, err := os.Lstat(full)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return ""
	}
	target, err := os.Readlink(full)
	if err != nil {
		return ""
	}
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(filepath.Dir(full), target)
}

// ShortenHomePath renders path relative to the user's home directory as
// "~/sub/dir", or "~" for the home directory itself, falling back to path
// unchanged when it isn't under the home directory or home can't be found.
func ShortenHomePath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(home, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	if rel == "." {
		return "~"
	}
	return fmt.Sprintf("~%c%s", filepath.Separator, rel)
}
