package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/layout"
)

var warningStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("208")).
	Bold(true)

// Model is the Bubble Tea side of a game. It never touches game state:
// keys become commands on the queue and frames arrive as FrameMsg.
type Model struct {
	queue  *engine.Queue
	layout layout.Layout
	keys   KeyMap
	help   help.Model
	frame  string
	width  int
	height int
}

// NewModel creates a model that feeds key presses into queue.
func NewModel(queue *engine.Queue, l layout.Layout) Model {
	return Model{
		queue:  queue,
		layout: l,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case FrameMsg:
		m.frame = string(msg)
	}

	return m, nil
}

// handleKey queues one command per key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.keys.Command(msg); ok {
		m.queue.Push(cmd)
	}
	return m, nil
}

// tooSmall reports whether the last known terminal size cannot hold the
// board and the help line. An unknown size is assumed to fit.
func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return m.width < m.layout.Width() || m.height < m.layout.Height()+1
}

// View renders the latest frame and the help line.
func (m Model) View() string {
	if m.tooSmall() {
		return warningStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d",
			m.layout.Width(), m.layout.Height()+1, m.width, m.height,
		))
	}
	return m.frame + "\n" + m.help.View(m.keys)
}

// Run plays one game on a Bubble Tea program. The game loop runs on the
// calling goroutine and the program on another; both are stopped before
// Run returns.
func Run(ctx context.Context, game *tetris.Game, opts engine.Options, progOpts ...tea.ProgramOption) (engine.Result, error) {
	g := game.Grid()
	lay := layout.New(g.W, g.H)
	queue := engine.NewQueue()

	p := tea.NewProgram(
		NewModel(queue, lay),
		append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)...,
	)
	loop := engine.NewLoop(game, queue, NewRenderer(lay, p.Send), opts)

	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		// The loop sees a closed queue as an exit request.
		queue.Close()
		done <- err
	}()

	res := loop.Run(ctx)
	p.Quit()
	if err := <-done; err != nil {
		return res, fmt.Errorf("tui: %w", err)
	}
	return res, nil
}
