package worker

import (
	"fmt"

	"github.com/wilbur182/runa/internal/entry"
	"github.com/wilbur182/runa/internal/formatter"
)

func (p *Pool) runDirWorker() {
	for t := range p.dirTasks {
		entries, err := entry.Read(t.Path)
		if err != nil {
			p.Responses <- Response{Kind: ResponseError, Err: fmt.Sprintf("I/O Error: %v", err)}
			continue
		}

		entries = formatter.FilterAndFormat(entries, formatter.Settings{
			DirsFirst:       t.DirsFirst,
			ShowHidden:      t.ShowHidden,
			ShowSystem:      t.ShowSystem,
			CaseInsensitive: t.CaseInsensitive,
			AlwaysShow:      t.AlwaysShow,
			PaneWidth:       t.PaneWidth,
		})

		p.Responses <- Response{
			Kind:      ResponseDirectoryLoaded,
			Path:      t.Path,
			Entries:   entries,
			Focus:     t.Focus,
			RequestID: t.RequestID,
		}
	}
}
