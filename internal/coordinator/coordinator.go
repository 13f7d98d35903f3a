// Package coordinator owns the tick loop: the single piece of runa that
// touches every view, the action context and the worker pool together. It
// issues requests, drains responses applying the combined (request_id,
// path) staleness check, and turns keypresses into state transitions.
package coordinator

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/wilbur182/runa/internal/actions"
	"github.com/wilbur182/runa/internal/config"
	"github.com/wilbur182/runa/internal/entry"
	"github.com/wilbur182/runa/internal/formatter"
	"github.com/wilbur182/runa/internal/keymap"
	"github.com/wilbur182/runa/internal/navview"
	"github.com/wilbur182/runa/internal/parentview"
	"github.com/wilbur182/runa/internal/previewview"
	"github.com/wilbur182/runa/internal/worker"
)

// LayoutMetrics sizes the three panes. Values mirror the original's fixed
// layout: a narrow parent column, an even main/preview split, and a
// preview height generous enough to avoid re-fetching on small scrolls.
type LayoutMetrics struct {
	ParentWidth   int
	MainWidth     int
	PreviewWidth  int
	PreviewHeight int
}

// DefaultLayoutMetrics returns runa's built-in pane sizing.
func DefaultLayoutMetrics() LayoutMetrics {
	return LayoutMetrics{ParentWidth: 20, MainWidth: 40, PreviewWidth: 40, PreviewHeight: 50}
}

// KeypressResult tells the caller (the tui package) what to do after a
// keypress was processed.
type KeypressResult int

const (
	ResultContinue KeypressResult = iota
	ResultQuit
	ResultOpenedEditor
)

// Coordinator is the asynchronous state coordinator: it owns every view's
// state and the worker pool, and is the only thing that mutates them.
type Coordinator struct {
	Nav     *navview.View
	Parent  *parentview.View
	Preview *previewview.View
	Actions *actions.Context
	Pool    *worker.Pool
	Cfg     *config.Config
	Keymap  *keymap.Keymap
	Metrics LayoutMetrics

	IsLoading  bool
	ShowInfo   bool
	notifyText string
	notifyTill time.Time

	alwaysShow *formatter.AlwaysShowSet

	log *slog.Logger
}

// New creates a Coordinator rooted at root and kicks off the initial
// directory load and parent listing; the preview is requested once the
// directory listing is adopted.
func New(root string, cfg *config.Config, pool *worker.Pool, log *slog.Logger) *Coordinator {
	if log == nil {
		log = slog.Default()
	}
	c := &Coordinator{
		Nav:        navview.New(root),
		Parent:     parentview.New(),
		Preview:    previewview.New(),
		Actions:    actions.New(),
		Pool:       pool,
		Cfg:        cfg,
		Keymap:     keymap.FromBindings(cfg.Keymap),
		Metrics:    DefaultLayoutMetrics(),
		alwaysShow: formatter.NewAlwaysShowSet(cfg.Display.AlwaysShow),
		log:        log.With("component", "coordinator"),
	}
	c.RequestDirLoad("")
	c.RequestParentContent()
	return c
}

// RequestDirLoad dispatches a directory-load task for Nav's current
// directory, bumping Nav's request_id. focus, if non-empty, names the
// entry to select once the listing arrives.
func (c *Coordinator) RequestDirLoad(focus string) {
	c.IsLoading = true
	reqID := c.Nav.PrepareNewRequest()
	c.Pool.SubmitDir(c.dirTask(c.Nav.CurrentDir(), focus, c.Metrics.MainWidth, reqID))
}

// RequestPreview dispatches a preview refresh for the currently selected
// entry: a directory listing (tagged with the preview's own request_id,
// not Nav's) if the selection is a directory, otherwise a file preview.
// Clears the preview if nothing is selected.
func (c *Coordinator) RequestPreview() {
	e, ok := c.Nav.SelectedEntry()
	if !ok {
		c.Preview.Clear()
		return
	}

	path := filepath.Join(c.Nav.CurrentDir(), e.Name)
	reqID := c.Preview.PrepareNewRequest(path)

	if e.IsDir {
		c.Pool.SubmitDir(c.dirTask(path, "", c.Metrics.PreviewWidth, reqID))
		return
	}
	c.Pool.SubmitPreview(worker.PreviewTask{
		Path:      path,
		MaxLines:  c.Metrics.PreviewHeight,
		PaneWidth: c.Metrics.PreviewWidth,
		RequestID: reqID,
	})
}

// RequestParentContent dispatches a listing of Nav's parent directory if
// one is not already loaded for that path, highlighting the directory Nav
// is currently inside. Clears the parent pane at the filesystem root.
func (c *Coordinator) RequestParentContent() {
	parentPath := filepath.Dir(c.Nav.CurrentDir())
	if parentPath == c.Nav.CurrentDir() {
		c.Parent.Clear()
		return
	}
	if !c.Parent.ShouldRequest(parentPath) {
		return
	}
	reqID := c.Parent.PrepareNewRequest(parentPath)
	c.Pool.SubmitDir(c.dirTask(parentPath, "", c.Metrics.ParentWidth, reqID))
}

// RequestFind cancels any in-flight search and dispatches a new one rooted
// at Nav's current directory. An empty query is the caller's
// responsibility to short-circuit (see Tick's find-debounce handling).
func (c *Coordinator) RequestFind(query string) {
	reqID, cancel := c.Actions.PrepareNewFindRequest()
	c.Pool.SubmitFind(worker.FindTask{
		BaseDir:    c.Nav.CurrentDir(),
		Query:      query,
		MaxResults: c.Cfg.MaxFindResults(),
		Cancel:     cancel,
		RequestID:  reqID,
	})
}

const notifyDuration = 2 * time.Second

// Notify sets a transient status message that expires notifyDuration after
// now, mirroring the original's copy-confirmation toast.
func (c *Coordinator) Notify(text string, now time.Time) {
	c.notifyText = text
	c.notifyTill = now.Add(notifyDuration)
}

// ActiveNotify returns the current status message if it has not yet
// expired, or "" otherwise.
func (c *Coordinator) ActiveNotify(now time.Time) string {
	if c.notifyText == "" || now.After(c.notifyTill) {
		return ""
	}
	return c.notifyText
}

// InfoOverlay is a read-only snapshot of the selected entry's filesystem
// attributes, shown when ShowInfo is toggled on. Supplemented from
// original_source's FileInfo/format_attributes design; not present in the
// distilled spec.
type InfoOverlay struct {
	Name           string
	Type           string
	Size           string
	Modified       string
	Attributes     string
	SymlinkTarget  string
	HasSymlinkInfo bool
}

// InfoOverlayFor stats the selected nav entry and renders its attributes.
// Returns false if nothing is selected or the entry can't be stat'd.
func (c *Coordinator) InfoOverlayFor() (InfoOverlay, bool) {
	selected, ok := c.Nav.SelectedEntry()
	if !ok {
		return InfoOverlay{}, false
	}
	full := filepath.Join(c.Nav.CurrentDir(), selected.Name)
	info, err := os.Lstat(full)
	if err != nil {
		return InfoOverlay{}, false
	}
	ft := formatter.ClassifyFileType(info.Mode())
	overlay := InfoOverlay{
		Name:       selected.Name,
		Type:       ft.String(),
		Size:       formatter.FormatFileSize(info.Size(), selected.IsDir),
		Modified:   formatter.FormatFileTime(info.ModTime()),
		Attributes: formatter.FormatAttributes(info.Mode()),
	}
	if ft == formatter.TypeSymlink {
		if target := formatter.SymlinkTargetResolved(c.Nav.CurrentDir(), selected.Name); target != "" {
			overlay.SymlinkTarget = target
			overlay.HasSymlinkInfo = true
		}
	}
	return overlay, true
}

// StatusPath renders the current directory with the user's home directory
// shortened to "~", matching the original's status-line display.
func (c *Coordinator) StatusPath() string {
	return formatter.ShortenHomePath(c.Nav.CurrentDir())
}

func (c *Coordinator) dirTask(path, focus string, width int, reqID uint64) worker.DirTask {
	return worker.DirTask{
		Path:            path,
		Focus:           focus,
		DirsFirst:       c.Cfg.Display.DirsFirst,
		ShowHidden:      c.Cfg.Display.ShowHidden,
		ShowSystem:      c.Cfg.Display.ShowSystem,
		CaseInsensitive: c.Cfg.Display.CaseInsensitive,
		AlwaysShow:      c.alwaysShow,
		PaneWidth:       width,
		RequestID:       reqID,
	}
}

// Tick drains the worker response queue, applying the combined
// (request_id, path) dispatch rule, and checks the preview and find
// debounce windows. Returns whether anything changed, so the caller can
// decide whether a redraw is needed.
func (c *Coordinator) Tick(now time.Time) bool {
	changed := false

	if c.Preview.ShouldTrigger(now) {
		c.RequestPreview()
		changed = true
	}

	if query, ok := c.Actions.TakeStableFindQuery(); ok {
		if query == "" {
			c.Actions.ClearFindResults()
		} else {
			c.RequestFind(query)
		}
		changed = true
	}

	var currentSelectionPath string
	var hasSelection bool
	if e, ok := c.Nav.SelectedEntry(); ok {
		currentSelectionPath = filepath.Join(c.Nav.CurrentDir(), e.Name)
		hasSelection = true
	}

	for {
		select {
		case resp := <-c.Pool.Responses:
			changed = true
			c.applyResponse(resp, currentSelectionPath, hasSelection)
		default:
			return changed
		}
	}
}

func (c *Coordinator) applyResponse(resp worker.Response, currentSelectionPath string, hasSelection bool) {
	switch resp.Kind {
	case worker.ResponseDirectoryLoaded:
		c.applyDirectoryLoaded(resp, currentSelectionPath, hasSelection)

	case worker.ResponsePreviewLoaded:
		if resp.RequestID == c.Preview.RequestID() {
			c.Preview.UpdateContent(resp.Lines, resp.Styled, resp.RequestID)
		}

	case worker.ResponseOperationComplete:
		if resp.NeedReload {
			c.RequestDirLoad(resp.Focus)
			c.RequestParentContent()
		}

	case worker.ResponseFindResults:
		if resp.BaseDir == c.Nav.CurrentDir() && resp.RequestID == c.Actions.FindRequestID() {
			c.Actions.SetFindResults(toActionFindResults(resp.Results), resp.RequestID)
		}

	case worker.ResponseError:
		c.Preview.SetError(resp.Err)
	}
}

// applyDirectoryLoaded implements the combined (request_id, path) routing
// rule: the same DirectoryLoaded response is routed to Nav if both match,
// else to Preview if the request_id matches Preview's (a directory selection
// preview; adopted only when the path is the current selection's), else to
// Parent.
func (c *Coordinator) applyDirectoryLoaded(resp worker.Response, currentSelectionPath string, hasSelection bool) {
	switch {
	case resp.RequestID == c.Nav.RequestID() && resp.Path == c.Nav.CurrentDir():
		c.Nav.UpdateFromWorker(resp.Path, resp.Entries, resp.Focus)
		c.IsLoading = false
		c.RequestPreview()
		c.RequestParentContent()

	case resp.RequestID == c.Preview.RequestID():
		if hasSelection && resp.Path == currentSelectionPath {
			c.Preview.UpdateFromEntries(toPreviewEntries(resp.Entries), resp.RequestID)
		}

	case resp.RequestID == c.Parent.RequestID():
		currentName := filepath.Base(c.Nav.CurrentDir())
		c.Parent.UpdateFromEntries(resp.Entries, currentName, resp.RequestID)
	}
}

func toPreviewEntries(entries []entry.Entry) []previewview.DirEntryView {
	out := make([]previewview.DirEntryView, len(entries))
	for i, e := range entries {
		out[i] = previewview.DirEntryView{Name: e.Name, DisplayName: e.DisplayName, IsDir: e.IsDir}
	}
	return out
}

func toActionFindResults(results []worker.FindResult) []actions.FindResult {
	out := make([]actions.FindResult, len(results))
	for i, r := range results {
		out[i] = actions.FindResult{Path: r.Path, Relative: r.Relative, IsDir: r.IsDir, Score: r.Score}
	}
	return out
}
