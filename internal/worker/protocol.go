package worker

import (
	"sync/atomic"

	"github.com/wilbur182/runa/internal/entry"
	"github.com/wilbur182/runa/internal/formatter"
)

// DirTask requests a directory listing, filtered and formatted for
// pane_width columns.
type DirTask struct {
	Path            string
	Focus           string
	DirsFirst       bool
	ShowHidden      bool
	ShowSystem      bool
	CaseInsensitive bool
	AlwaysShow      *formatter.AlwaysShowSet
	PaneWidth       int
	RequestID       uint64
}

// PreviewTask requests a preview render (file lines or a directory
// listing preview) for Path.
type PreviewTask struct {
	Path      string
	MaxLines  int
	PaneWidth int
	RequestID uint64
}

// FindTask requests a fuzzy recursive search rooted at BaseDir.
type FindTask struct {
	BaseDir    string
	Query      string
	MaxResults int
	Cancel     *atomic.Bool
	RequestID  uint64
}

// FileOpKind discriminates FileOpTask's operation.
type FileOpKind int

const (
	OpDelete FileOpKind = iota
	OpRename
	OpCreate
	OpCopy
)

// FileOpTask requests a single file-system mutation.
type FileOpTask struct {
	Kind      FileOpKind
	RequestID uint64

	// OpDelete
	DeletePaths []string

	// OpRename
	RenameOld string
	RenameNew string

	// OpCreate
	CreatePath  string
	CreateIsDir bool

	// OpCopy
	CopySrc   []string
	CopyDest  string
	CopyCut   bool
	CopyFocus string
}

// Response is the tagged union of everything a worker can send back on the
// shared response channel.
type Response struct {
	Kind ResponseKind

	// ResponseDirectoryLoaded. Also used for a directory selected in the
	// preview pane: the dispatcher sends that as a DirTask too, tagged with
	// the preview's request_id instead of the nav view's.
	Path      string
	Entries   []entry.Entry
	Focus     string
	RequestID uint64

	// ResponsePreviewLoaded
	Lines  []string
	Styled []string

	// ResponseOperationComplete
	Message    string
	NeedReload bool

	// ResponseFindResults
	BaseDir string
	Results []FindResult

	// ResponseError
	Err string
}

// GetRequestID implements worker.RequestIDer.
func (r Response) GetRequestID() uint64 { return r.RequestID }

// ResponseKind discriminates Response's variants.
type ResponseKind int

const (
	ResponseDirectoryLoaded ResponseKind = iota
	ResponsePreviewLoaded
	ResponseOperationComplete
	ResponseFindResults
	ResponseError
)

// FindResult is a single scored match from a find task.
type FindResult struct {
	Path     string
	Relative string
	IsDir    bool
	Score    int
}
