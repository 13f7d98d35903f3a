// Package tui wires the coordinator into a bubbletea program: a thin
// Model that forwards keys and window size to the coordinator, polls its
// worker pool for responses, and renders the three-pane layout with
// lipgloss.
package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/runa/internal/config"
	"github.com/wilbur182/runa/internal/coordinator"
	"github.com/wilbur182/runa/internal/worker"
)

const tickInterval = 25 * time.Millisecond

// Model is runa's bubbletea model. The preview pane's scrolling is owned by
// a bubbles viewport.Model (grounded in the teacher's chat plugin, which
// wraps the same component around streamed message content) rather than
// hand-rolled scroll math.
type Model struct {
	coord     *coordinator.Coordinator
	previewVP viewport.Model
	width     int
	height    int
	quit      bool
}

// New creates a Model rooted at root.
func New(root string, cfg *config.Config, log *slog.Logger) *Model {
	pool := worker.Spawn(log, worker.DefaultNumCPU())
	metrics := coordinator.DefaultLayoutMetrics()
	return &Model{
		coord:     coordinator.New(root, cfg, pool, log),
		previewVP: viewport.New(metrics.PreviewWidth, metrics.PreviewHeight),
	}
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		metrics := m.coord.Metrics
		m.previewVP.Width = metrics.PreviewWidth
		m.previewVP.Height = metrics.PreviewHeight
		return m, nil

	case tea.KeyMsg:
		if !m.coord.Actions.IsInputMode() {
			switch msg.String() {
			case "ctrl+d", "ctrl+u":
				var cmd tea.Cmd
				m.previewVP, cmd = m.previewVP.Update(msg)
				return m, cmd
			}
		}
		result := m.coord.HandleKeypress(msg.String())
		switch result {
		case coordinator.ResultQuit:
			m.quit = true
			return m, tea.Quit
		case coordinator.ResultOpenedEditor:
			return m, tea.ClearScreen
		}
		m.previewVP.GotoTop()
		return m, nil

	case tickMsg:
		m.coord.Tick(time.Time(msg))
		m.previewVP.SetContent(strings.Join(m.renderPreviewLines(), "\n"))
		return m, tickCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quit {
		return ""
	}
	return m.render()
}
