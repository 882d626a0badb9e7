package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amalg/go-minesweeper/internal/game"
)

// opponentThinkDelay is how long the opponent pretends to think before its
// move lands. Purely presentational — the engine never blocks on it.
const opponentThinkDelay = 400 * time.Millisecond

// opponentMoveMsg fires when the opponent's thinking delay elapses.
type opponentMoveMsg struct{}

// Model is the Bubbletea model for a local match.
type Model struct {
	config   game.Config
	match    *game.Match
	chooser  game.CellChooser
	cursorX  int
	cursorY  int
	thinking bool // an opponent move is scheduled
	quitting bool
}

// NewModel creates a model with a fresh match for the given config.
func NewModel(config game.Config) (Model, error) {
	match, err := game.NewMatch(config)
	if err != nil {
		return Model{}, err
	}
	return Model{
		config:  config,
		match:   match,
		chooser: game.NewRandomChooser(0),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and scheduled opponent moves.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case opponentMoveMsg:
		m.thinking = false
		m.match.OpponentMove(m.chooser)
		return m, nil
	}
	return m, nil
}

// View renders the board and HUD from a consistent snapshot.
func (m Model) View() string {
	if m.quitting {
		return "Bye!\n"
	}
	snap := m.match.Snapshot()
	return RenderBoard(snap, m.cursorX, m.cursorY) + "\n" + RenderHUD(snap, m.thinking) + "\n"
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "w", "k":
		if m.cursorY > 0 {
			m.cursorY--
		}
	case "down", "s", "j":
		if m.cursorY < m.config.Height-1 {
			m.cursorY++
		}
	case "left", "a", "h":
		if m.cursorX > 0 {
			m.cursorX--
		}
	case "right", "d", "l":
		if m.cursorX < m.config.Width-1 {
			m.cursorX++
		}

	case " ", "enter":
		if m.thinking {
			return m, nil
		}
		m.match.Reveal(m.cursorX, m.cursorY)
		if m.config.Duel && m.match.Turn() == game.TurnOpponent && !m.match.Status().Terminal() {
			m.thinking = true
			return m, tea.Tick(opponentThinkDelay, func(time.Time) tea.Msg {
				return opponentMoveMsg{}
			})
		}

	case "f":
		if !m.thinking {
			m.match.ToggleFlag(m.cursorX, m.cursorY)
		}

	case "r":
		// Fresh match, old board discarded. The config was validated when
		// the first match was built, so this cannot fail.
		if match, err := game.NewMatch(m.config); err == nil {
			m.match = match
			m.thinking = false
		}
	}

	return m, nil
}
