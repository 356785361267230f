package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"fantasyquest/internal/engine"
)

// RunGame drives one interactive session until the player quits, flees the
// world, or dies.
func RunGame(svc *engine.Service, game *engine.Game, out io.Writer) error {
	m := newGameModel(svc, game)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
