package worker

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wilbur182/runa/internal/entry"
	"github.com/wilbur182/runa/internal/formatter"
)

const (
	minPreviewLines = 3
	maxPreviewSize  = 10 * 1024 * 1024 // 10 MiB
	binaryPeekBytes = 1024
)

func (p *Pool) runPreviewWorker() {
	for t := range p.previewTasks {
		// Coalesce: drain the queue, keeping only the newest task.
		for drained := true; drained; {
			select {
			case next := <-p.previewTasks:
				t = next
			default:
				drained = false
			}
		}

		lines, styled := safeReadPreview(t.Path, t.MaxLines, t.PaneWidth)
		p.Responses <- Response{
			Kind:      ResponsePreviewLoaded,
			Lines:     lines,
			Styled:    styled,
			RequestID: t.RequestID,
		}
	}
}

// safeReadPreview loads a preview for path (directory or file), returning
// padded lines for display plus an optional styled rendering. Large,
// binary, or unreadable files are replaced with a one-line notice.
func safeReadPreview(path string, maxLines, paneWidth int) (lines, styled []string) {
	if maxLines < minPreviewLines {
		maxLines = minPreviewLines
	}

	info, err := os.Stat(path)
	if err != nil {
		return []string{formatter.SanitizeToWidth("[Error: Access Denied]", paneWidth)}, nil
	}

	if info.IsDir() {
		return previewDirectory(path, maxLines, paneWidth), nil
	}

	if info.Size() > maxPreviewSize {
		return []string{formatter.SanitizeToWidth("[File too large for preview]", paneWidth)}, nil
	}
	if !info.Mode().IsRegular() {
		return []string{formatter.SanitizeToWidth("[Not a regular file]", paneWidth)}, nil
	}

	if isImageExt(fileExt(path)) {
		return renderImagePreview(path, paneWidth)
	}

	f, err := os.Open(path)
	if err != nil {
		msg := "[Error reading file: " + err.Error() + "]"
		if os.IsPermission(err) {
			msg = "[Error: Permission Denied]"
		} else if os.IsNotExist(err) {
			msg = "[Error: File Not Found]"
		}
		return []string{formatter.SanitizeToWidth(msg, paneWidth)}, nil
	}
	defer f.Close()

	// Peek the first binaryPeekBytes once, from offset 0, and test both the
	// PDF-header and NUL-byte conditions against that same window — reading
	// the header first and then filling binBuf from the resulting offset
	// would skip bytes 0-7 of the NUL scan entirely.
	peekBuf := make([]byte, binaryPeekBytes)
	n, _ := f.ReadAt(peekBuf, 0)
	peek := peekBuf[:n]

	if len(peek) >= 5 && string(peek[:5]) == "%PDF-" {
		return []string{formatter.SanitizeToWidth("[Binary file - preview hidden]", paneWidth)}, nil
	}
	if containsNUL(peek) {
		return []string{formatter.SanitizeToWidth("[Binary file - preview hidden]", paneWidth)}, nil
	}

	raw := make([]string, 0, maxLines)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() && len(raw) < maxLines {
		raw = append(raw, scanner.Text())
	}

	if len(raw) == 0 {
		return []string{formatter.SanitizeToWidth("[Empty file]", paneWidth)}, nil
	}

	lines = make([]string, len(raw))
	for i, l := range raw {
		lines[i] = formatter.SanitizeToWidth(l, paneWidth)
	}

	styled = styleLines(path, raw, paneWidth)
	return lines, styled
}

func containsNUL(b []byte) bool {
	for _, c := range b {
		if c == 0 {
			return true
		}
	}
	return false
}

// previewDirectory renders a fixed-height, fixed-width listing preview for
// a directory selected in the preview pane.
func previewDirectory(path string, maxLines, paneWidth int) []string {
	entries, err := entry.Read(path)
	if err != nil {
		out := []string{formatter.SanitizeToWidth(fmt.Sprintf("[Error: %v]", err), paneWidth)}
		for len(out) < maxLines {
			out = append(out, strings.Repeat(" ", paneWidth))
		}
		return out
	}

	lines := make([]string, 0, maxLines+1)
	shown := entries
	if len(shown) > maxLines {
		shown = shown[:maxLines]
	}
	for _, e := range shown {
		name := e.Name
		if e.IsDir {
			name += "/"
		}
		lines = append(lines, formatter.SanitizeToWidth(name, paneWidth))
	}

	if len(lines) == 0 {
		lines = append(lines, formatter.SanitizeToWidth("[empty directory]", paneWidth))
	} else if len(entries) > maxLines {
		lines = lines[:len(lines)-1]
		lines = append(lines, formatter.SanitizeToWidth("...", paneWidth))
	}

	for len(lines) < maxLines {
		lines = append(lines, strings.Repeat(" ", paneWidth))
	}
	return lines
}

func fileExt(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
