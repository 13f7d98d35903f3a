//go:build windows

package entry

import (
	"path/filepath"
	"strings"
	"syscall"
)

const (
	fileAttributeHidden = 0x2
	fileAttributeSystem  = 0x4
)

// isHidden reports the hidden attribute bit, falling back to the dotfile
// convention when attributes can't be read.
func isHidden(dir, name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	full := filepath.Join(dir, name)
	p, err := syscall.UTF16PtrFromString(full)
	if err != nil {
		return false
	}
	attrs, err := syscall.GetFileAttributes(p)
	if err != nil {
		return false
	}
	return attrs&fileAttributeHidden != 0
}

// isSystem reports the Windows FILE_ATTRIBUTE_SYSTEM bit for dir/name.
func isSystem(dir, name string) bool {
	full := filepath.Join(dir, name)
	p, err := syscall.UTF16PtrFromString(full)
	if err != nil {
		return false
	}
	attrs, err := syscall.GetFileAttributes(p)
	if err != nil {
		return false
	}
	return attrs&fileAttributeSystem != 0
}
