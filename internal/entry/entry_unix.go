//go:build !windows

package entry

import "strings"

// isHidden reports dotfile hiding, the Unix convention.
func isHidden(dir, name string) bool {
	return strings.HasPrefix(name, ".")
}

// isSystem has no Unix analogue; the distinction only exists on Windows.
func isSystem(dir, name string) bool {
	return false
}
