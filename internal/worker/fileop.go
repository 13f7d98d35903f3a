package worker

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func (p *Pool) runFileOpWorker() {
	for t := range p.fileopTasks {
		msg, focus, err := runFileOp(t)
		if err != nil {
			p.Responses <- Response{Kind: ResponseError, Err: "Op Error: " + err.Error()}
			continue
		}
		p.Responses <- Response{
			Kind:       ResponseOperationComplete,
			Message:    msg,
			RequestID:  t.RequestID,
			NeedReload: true,
			Focus:      focus,
		}
	}
}

func runFileOp(t FileOpTask) (message, focus string, err error) {
	switch t.Kind {
	case OpDelete:
		return deleteAll(t.DeletePaths)
	case OpRename:
		return renamePath(t.RenameOld, t.RenameNew)
	case OpCreate:
		return createPath(t.CreatePath, t.CreateIsDir)
	case OpCopy:
		return copyAll(t.CopySrc, t.CopyDest, t.CopyCut, t.CopyFocus)
	default:
		return "", "", fmt.Errorf("unknown file operation")
	}
}

func deleteAll(paths []string) (message, focus string, err error) {
	var failures []string
	for _, p := range paths {
		info, statErr := os.Lstat(p)
		if statErr != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", p, statErr))
			continue
		}
		var opErr error
		if info.IsDir() {
			opErr = os.RemoveAll(p)
		} else {
			opErr = os.Remove(p)
		}
		if opErr != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", p, opErr))
		}
	}
	if len(failures) > 0 {
		return "", "", fmt.Errorf("delete failed for %d item(s): %s", len(failures), strings.Join(failures, "; "))
	}
	return "Items deleted", "", nil
}

func renamePath(old, newPath string) (message, focus string, err error) {
	if _, statErr := os.Lstat(newPath); statErr == nil {
		return "", "", fmt.Errorf("rename failed: %q already exists", filepath.Base(newPath))
	}
	if err := os.Rename(old, newPath); err != nil {
		return "", "", err
	}
	return "Renamed", filepath.Base(newPath), nil
}

func createPath(path string, isDir bool) (message, focus string, err error) {
	target := getUnusedPath(path)
	if isDir {
		if err := os.MkdirAll(target, 0o755); err != nil {
			return "", "", err
		}
	} else {
		f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			return "", "", err
		}
		f.Close()
	}
	return "Created", filepath.Base(target), nil
}

func copyAll(src []string, dest string, cut bool, focus string) (message, newFocus string, err error) {
	newFocus = focus
	for _, s := range src {
		name := filepath.Base(s)
		target := getUnusedPath(filepath.Join(dest, name))

		if newFocus == name {
			newFocus = filepath.Base(target)
		}

		if cut {
			_ = os.Rename(s, target)
		} else {
			_ = copyFileOrDir(s, target)
		}
	}
	return "Pasted", newFocus, nil
}

func copyFileOrDir(src, dest string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return copyDir(src, dest)
	}
	return copyFile(src, dest, info.Mode())
}

func copyDir(src, dest string) error {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, e := range entries {
		s := filepath.Join(src, e.Name())
		d := filepath.Join(dest, e.Name())
		if err := copyFileOrDir(s, d); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dest string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}
	defer out.Close()

	buf := make([]byte, 64*1024)
	for {
		n, readErr := in.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				return writeErr
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return readErr
		}
	}
}

// getUnusedPath returns path unchanged if it doesn't exist, or the first
// "<stem>_<n><ext>" variant that doesn't, starting at n=1. A leading-dot
// name with no other dot (e.g. ".gitignore") is treated as a bare stem
// with no extension, matching the Unix convention for dotfiles.
func getUnusedPath(path string) string {
	if _, err := os.Lstat(path); err != nil {
		return path
	}

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	stem, ext := splitStemExt(name)

	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
		if _, err := os.Lstat(candidate); err != nil {
			return candidate
		}
	}
}

// splitStemExt mirrors Rust's Path::file_stem/extension: a dot at index 0
// with no other dot yields no extension at all.
func splitStemExt(name string) (stem, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}
