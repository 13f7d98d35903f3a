package actions

import (
	"path/filepath"

	"github.com/wilbur182/runa/internal/navview"
	"github.com/wilbur182/runa/internal/worker"
)

// Delete submits a delete task for nav's current action targets (markers,
// or the singleton selection) and clears markers. A no-op if nothing is
// selected.
func Delete(nav *navview.View, pool *worker.Pool) {
	targets := nav.GetActionTargets()
	if len(targets) == 0 {
		return
	}
	pool.SubmitFileOp(worker.FileOpTask{
		Kind:        worker.OpDelete,
		DeletePaths: targets,
		RequestID:   nav.PrepareNewRequest(),
	})
	nav.ClearMarkers()
}

// Copy stages nav's current action targets onto the clipboard. Cut/move is
// not wired into the keymap yet, but is supported here so adding it later
// needs no further plumbing.
func (c *Context) Copy(nav *navview.View, isCut bool) {
	targets := nav.GetActionTargets()
	c.SetClipboard(targets, isCut)
}

// Paste submits a copy task moving or copying the clipboard contents into
// nav's current directory, then clears markers (and the clipboard, if this
// was a cut). A no-op with an empty clipboard.
func (c *Context) Paste(nav *navview.View, pool *worker.Pool) {
	if c.clipboard == nil || len(c.clipboard.Paths) == 0 {
		return
	}
	focus := filepath.Base(c.clipboard.Paths[0])

	pool.SubmitFileOp(worker.FileOpTask{
		Kind:      worker.OpCopy,
		CopySrc:   c.clipboard.Paths,
		CopyDest:  nav.CurrentDir(),
		CopyCut:   c.clipboard.IsCut,
		CopyFocus: focus,
		RequestID: nav.PrepareNewRequest(),
	})

	if c.clipboard.IsCut {
		c.ClearClipboard()
	}
	nav.ClearMarkers()
}

// Filter applies the current input buffer as nav's text filter. Called when
// the filter prompt's input changes live, mirroring the original's
// immediate-apply behavior (no separate confirm step).
func (c *Context) Filter(nav *navview.View) {
	nav.SetFilter(c.InputBuffer())
}

// Rename submits a rename of the selected entry to the current input
// buffer's value, then exits input mode. A no-op for an empty buffer or no
// selection.
func (c *Context) Rename(nav *navview.View, pool *worker.Pool) {
	defer c.ExitMode()

	if c.InputBuffer() == "" {
		return
	}
	e, ok := nav.SelectedEntry()
	if !ok {
		return
	}

	oldPath := filepath.Join(nav.CurrentDir(), e.Name)
	newPath := filepath.Join(nav.CurrentDir(), c.InputBuffer())

	pool.SubmitFileOp(worker.FileOpTask{
		Kind:      worker.OpRename,
		RenameOld: oldPath,
		RenameNew: newPath,
		RequestID: nav.PrepareNewRequest(),
	})
}

// Create submits a create-file or create-directory task for the current
// input buffer's value inside nav's current directory, then exits input
// mode. A no-op for an empty buffer.
func (c *Context) Create(nav *navview.View, pool *worker.Pool, isDir bool) {
	defer c.ExitMode()

	if c.InputBuffer() == "" {
		return
	}

	pool.SubmitFileOp(worker.FileOpTask{
		Kind:        worker.OpCreate,
		CreatePath:  filepath.Join(nav.CurrentDir(), c.InputBuffer()),
		CreateIsDir: isDir,
		RequestID:   nav.PrepareNewRequest(),
	})
}
