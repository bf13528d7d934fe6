package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// KeyMap holds the fixed game key bindings.
// It implements help.KeyMap so the bindings can be listed under the board.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Down   key.Binding
	Rotate key.Binding
	Drop   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "rotate"),
		),
		Drop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "drop"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Down, k.Rotate, k.Drop, k.Quit}
}

// FullHelp returns the bindings grouped for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down},
		{k.Rotate, k.Drop},
		{k.Quit},
	}
}

// Command translates a key message to a game command.
// Returns false for keys the game does not use.
func (k KeyMap) Command(msg tea.KeyMsg) (engine.Command, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return engine.CmdMoveLeft, true
	case key.Matches(msg, k.Right):
		return engine.CmdMoveRight, true
	case key.Matches(msg, k.Down):
		return engine.CmdMoveDown, true
	case key.Matches(msg, k.Rotate):
		return engine.CmdRotate, true
	case key.Matches(msg, k.Drop):
		return engine.CmdDropDown, true
	case key.Matches(msg, k.Quit):
		return engine.CmdExit, true
	}
	return engine.CmdNone, false
}
