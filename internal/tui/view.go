package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wilbur182/runa/internal/actions"
	"github.com/wilbur182/runa/internal/entry"
	"github.com/wilbur182/runa/internal/previewview"
)

func (m *Model) render() string {
	metrics := m.coord.Metrics

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Width(metrics.ParentWidth).Render(m.renderParentPane()),
		paneStyle.Width(metrics.MainWidth).Render(m.renderMainPane()),
		paneStyle.Width(metrics.PreviewWidth).Render(m.renderPreviewPane()),
	)

	body := lipgloss.JoinVertical(lipgloss.Left, panes, m.renderStatusLine())

	if m.coord.ShowInfo {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.renderInfoOverlay())
	}

	if m.coord.Actions.IsInputMode() {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.renderPrompt())
	}

	return body
}

func (m *Model) renderInfoOverlay() string {
	info, ok := m.coord.InfoOverlayFor()
	if !ok {
		return statusStyle.Render("(no info)")
	}
	line := fmt.Sprintf("%s  %s  %s  %s  %s", info.Attributes, info.Type, info.Size, info.Modified, info.Name)
	if info.HasSymlinkInfo {
		line += fmt.Sprintf("  -> %s", info.SymlinkTarget)
	}
	return statusStyle.Render(line)
}

func (m *Model) renderParentPane() string {
	entries := m.coord.Parent.Entries()
	highlighted, _ := m.coord.Parent.SelectedIdx()

	var b strings.Builder
	b.WriteString(headerStyle.Render("parent"))
	b.WriteString("\n")
	for i, e := range entries {
		b.WriteString(renderEntryLine(e, i == highlighted, false))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderMainPane() string {
	if m.coord.Actions.Mode().Input == actions.InputFind && m.coord.Actions.IsInputMode() {
		return m.renderFindResults()
	}

	nav := m.coord.Nav
	shown := nav.ShownEntries()

	var b strings.Builder
	b.WriteString(headerStyle.Render(m.coord.StatusPath()))
	b.WriteString("\n")
	for i, e := range shown {
		marked := isMarked(nav.Markers(), nav.CurrentDir(), e.Name)
		b.WriteString(renderEntryLine(e, i == nav.Selected(), marked))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderFindResults() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("find"))
	b.WriteString("\n")
	for _, r := range m.coord.Actions.FindResults() {
		line := r.Relative
		if r.IsDir {
			line = dirStyle.Render(line + "/")
		}
		b.WriteString(fmt.Sprintf("%s  (%d)\n", line, r.Score))
	}
	if len(m.coord.Actions.FindResults()) == 0 {
		b.WriteString(statusStyle.Render("No matches"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderPreviewPane() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("preview"))
	b.WriteString("\n")
	b.WriteString(m.previewVP.View())
	return b.String()
}

// renderPreviewLines builds the preview pane's scrollable content; it feeds
// previewVP.SetContent on every tick so scrolling (ctrl+d/ctrl+u) always
// sees the latest worker response.
func (m *Model) renderPreviewLines() []string {
	data := m.coord.Preview.Data()

	switch data.Kind {
	case previewview.KindDirectory:
		lines := make([]string, 0, len(data.Entries))
		for i, e := range data.Entries {
			name := e.DisplayName
			if name == "" {
				name = e.Name
			}
			if e.IsDir {
				name = dirStyle.Render(name)
			}
			if i == m.coord.Preview.SelectedIdx() {
				name = selectedStyle.Render(name)
			}
			lines = append(lines, name)
		}
		return lines
	case previewview.KindFile:
		return data.Lines
	default:
		return []string{statusStyle.Render("(empty)")}
	}
}

func (m *Model) renderStatusLine() string {
	if note := m.coord.ActiveNotify(timeNowTUI()); note != "" {
		return statusStyle.Render(note)
	}
	if m.coord.IsLoading {
		return statusStyle.Render("Loading...")
	}
	help := "j/k: move  h/l: parent/enter  space: mark  d: delete  y: copy  p: paste  r: rename  n/N: create  /: filter  f: find  Y: yank path  i: info  q: quit"
	return statusStyle.Render(help)
}

func (m *Model) renderPrompt() string {
	mode := m.coord.Actions.Mode()
	return promptStyle.Render(mode.Prompt) + m.coord.Actions.InputBuffer()
}

func renderEntryLine(e entry.Entry, selected, marked bool) string {
	name := e.DisplayName
	if name == "" {
		name = e.Name
	}
	if e.IsDir {
		name = dirStyle.Render(name)
	}
	if marked {
		name = markedStyle.Render(name)
	}
	if selected {
		name = selectedStyle.Render(name)
	}
	return name
}

func isMarked(markers []string, dir, name string) bool {
	for _, m := range markers {
		if m == joinPathTUI(dir, name) {
			return true
		}
	}
	return false
}
