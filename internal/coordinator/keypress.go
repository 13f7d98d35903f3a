package coordinator

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/atotto/clipboard"

	"github.com/wilbur182/runa/internal/actions"
	"github.com/wilbur182/runa/internal/keymap"
)

// HandleKeypress routes a bubbletea-normalized key string (tea.KeyMsg.String())
// through input mode if active, otherwise through the keymap.
func (c *Coordinator) HandleKeypress(key string) KeypressResult {
	if c.Actions.IsInputMode() {
		return c.handleInputMode(key)
	}

	switch c.Keymap.Lookup(key) {
	case keymap.ActionQuit:
		return ResultQuit
	case keymap.ActionGoUp:
		c.moveNavIfPossible(c.Nav.MoveUp)
	case keymap.ActionGoDown:
		c.moveNavIfPossible(c.Nav.MoveDown)
	case keymap.ActionGoParent:
		c.handleGoParent()
	case keymap.ActionGoIntoDir:
		c.handleGoIntoDir()
	case keymap.ActionToggleMarker:
		c.Nav.ToggleMarker()
	case keymap.ActionOpen:
		return c.handleOpenFile()
	case keymap.ActionDelete:
		c.promptDelete()
	case keymap.ActionCopy:
		c.Actions.Copy(c.Nav, false)
	case keymap.ActionPaste:
		c.Actions.Paste(c.Nav, c.Pool)
	case keymap.ActionRename:
		c.promptRename()
	case keymap.ActionCreate:
		c.promptCreate(false)
	case keymap.ActionCreateDirectory:
		c.promptCreate(true)
	case keymap.ActionFilter:
		c.promptFilter()
	case keymap.ActionShowInfo:
		c.ShowInfo = !c.ShowInfo
	case keymap.ActionFuzzyFind:
		c.promptFind()
	case keymap.ActionYankPath:
		c.yankPath()
	}
	return ResultContinue
}

func (c *Coordinator) moveNavIfPossible(move func() bool) {
	if move() {
		c.Preview.MarkPending(timeNow())
	}
}

func (c *Coordinator) handleGoParent() {
	parent := parentOf(c.Nav.CurrentDir())
	if parent == c.Nav.CurrentDir() {
		return
	}
	exitedName := baseName(c.Nav.CurrentDir())
	c.Nav.SavePosition()
	c.Nav.SetPath(parent)
	c.Nav.SetFilter("")

	c.RequestDirLoad(exitedName)
	c.RequestParentContent()
}

func (c *Coordinator) handleGoIntoDir() {
	e, ok := c.Nav.SelectedEntry()
	if !ok || !e.IsDir {
		return
	}
	newPath := joinPath(c.Nav.CurrentDir(), e.Name)
	c.Nav.SavePosition()
	c.Nav.SetPath(newPath)

	c.RequestDirLoad("")
	c.RequestParentContent()
}

func (c *Coordinator) handleOpenFile() KeypressResult {
	e, ok := c.Nav.SelectedEntry()
	if !ok {
		return ResultContinue
	}
	path := joinPath(c.Nav.CurrentDir(), e.Name)
	if err := openInEditor(c.Cfg.Editor.Cmd, path); err != nil {
		c.Notify(fmt.Sprintf("Error: %v", err), timeNow())
	}
	return ResultOpenedEditor
}

func (c *Coordinator) promptDelete() {
	targets := c.Nav.GetActionTargets()
	if len(targets) == 0 {
		return
	}
	plural := ""
	if len(targets) > 1 {
		plural = "s"
	}
	prompt := fmt.Sprintf("Delete %d item%s? [Y/N]", len(targets), plural)
	c.Actions.EnterMode(actions.Mode{Kind: actions.ModeInput, Input: actions.InputConfirmDelete, Prompt: prompt}, "")
}

func (c *Coordinator) promptRename() {
	e, ok := c.Nav.SelectedEntry()
	if !ok {
		return
	}
	c.Actions.EnterMode(actions.Mode{Kind: actions.ModeInput, Input: actions.InputRename, Prompt: "Rename: "}, e.Name)
}

func (c *Coordinator) promptCreate(isDir bool) {
	prompt, mode := "New File: ", actions.InputNewFile
	if isDir {
		prompt, mode = "New Folder: ", actions.InputNewFolder
	}
	c.Actions.EnterMode(actions.Mode{Kind: actions.ModeInput, Input: mode, Prompt: prompt}, "")
}

func (c *Coordinator) promptFilter() {
	c.Actions.EnterMode(actions.Mode{Kind: actions.ModeInput, Input: actions.InputFilter, Prompt: "Filter: "}, c.Nav.Filter())
}

func (c *Coordinator) promptFind() {
	c.Actions.EnterMode(actions.Mode{Kind: actions.ModeInput, Input: actions.InputFind, Prompt: "Find: "}, "")
}

// yankPath is a supplemented action (not in the original): it copies the
// currently selected entry's absolute path to the system clipboard via
// atotto/clipboard, independent of the internal cut/copy clipboard used
// for paste.
func (c *Coordinator) yankPath() {
	e, ok := c.Nav.SelectedEntry()
	if !ok {
		return
	}
	path := joinPath(c.Nav.CurrentDir(), e.Name)
	if err := clipboard.WriteAll(path); err != nil {
		c.Notify(fmt.Sprintf("Clipboard error: %v", err), timeNow())
		return
	}
	c.Notify("Path copied", timeNow())
}

func (c *Coordinator) handleInputMode(key string) KeypressResult {
	mode := c.Actions.Mode()

	switch key {
	case "enter":
		c.commitInputMode(mode.Input)
		c.Actions.ExitMode()
		return ResultContinue

	case "esc":
		c.Actions.CancelFind()
		c.Actions.ExitMode()
		return ResultContinue

	case "backspace":
		c.Actions.Backspace()
		if mode.Input == actions.InputFilter {
			c.Actions.Filter(c.Nav)
		}
		return ResultContinue

	case "left":
		c.Actions.MoveCursorLeft()
		return ResultContinue

	case "right":
		c.Actions.MoveCursorRight()
		return ResultContinue
	}

	if r, ok := singleRune(key); ok {
		if mode.Input == actions.InputConfirmDelete {
			if r == 'y' || r == 'Y' {
				c.commitInputMode(actions.InputConfirmDelete)
			}
			c.Actions.ExitMode()
			return ResultContinue
		}

		c.Actions.InsertRune(r)
		if mode.Input == actions.InputFilter {
			c.Actions.Filter(c.Nav)
		}
	}

	return ResultContinue
}

func (c *Coordinator) commitInputMode(mode actions.InputMode) {
	switch mode {
	case actions.InputNewFile:
		if c.Actions.InputBuffer() != "" {
			c.Actions.Create(c.Nav, c.Pool, false)
		}
	case actions.InputNewFolder:
		if c.Actions.InputBuffer() != "" {
			c.Actions.Create(c.Nav, c.Pool, true)
		}
	case actions.InputRename:
		c.Actions.Rename(c.Nav, c.Pool)
	case actions.InputFilter:
		c.Actions.Filter(c.Nav)
	case actions.InputConfirmDelete:
		actions.Delete(c.Nav, c.Pool)
	case actions.InputFind:
		// Find dispatch happens via the tick-loop debounce (TakeStableFindQuery),
		// not on Enter; committing just leaves the results pane as-is.
	}
}

// openInEditor runs editorCmd against path, inheriting the process's
// stdio so a terminal editor (vi, nvim, nano) takes over the screen.
func openInEditor(editorCmd, path string) error {
	if editorCmd == "" {
		editorCmd = "vi"
	}
	cmd := exec.Command(editorCmd, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
