package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-minesweeper/internal/game"
)

// Color palette
var (
	coveredStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#2a2a3e")).
			Foreground(lipgloss.Color("#555577"))

	openStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#444466"))

	flagStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#2a2a3e")).
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true)

	mineStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#661111")).
			Foreground(lipgloss.Color("#ffcc00")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#44aaff")).
			Foreground(lipgloss.Color("#0a0a1e")).
			Bold(true)

	// One color per adjacency count, 1 through 8
	numberStyles = []lipgloss.Style{
		lipgloss.NewStyle().Background(lipgloss.Color("#1a1a2e")).Foreground(lipgloss.Color("#4488ff")), // 1
		lipgloss.NewStyle().Background(lipgloss.Color("#1a1a2e")).Foreground(lipgloss.Color("#00ff88")), // 2
		lipgloss.NewStyle().Background(lipgloss.Color("#1a1a2e")).Foreground(lipgloss.Color("#ff4444")), // 3
		lipgloss.NewStyle().Background(lipgloss.Color("#1a1a2e")).Foreground(lipgloss.Color("#aa66ff")), // 4
		lipgloss.NewStyle().Background(lipgloss.Color("#1a1a2e")).Foreground(lipgloss.Color("#cc4444")), // 5
		lipgloss.NewStyle().Background(lipgloss.Color("#1a1a2e")).Foreground(lipgloss.Color("#44cccc")), // 6
		lipgloss.NewStyle().Background(lipgloss.Color("#1a1a2e")).Foreground(lipgloss.Color("#cccccc")), // 7
		lipgloss.NewStyle().Background(lipgloss.Color("#1a1a2e")).Foreground(lipgloss.Color("#888888")), // 8
	}

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff8844")).
			Bold(true)

	wonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff88")).
			Bold(true)

	lostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))
)

// RenderBoard converts a match snapshot into a styled terminal string.
func RenderBoard(snap game.Snapshot, cursorX, cursorY int) string {
	var rows []string
	for y := 0; y < snap.Height; y++ {
		var cells []string
		for x := 0; x < snap.Width; x++ {
			content, style := renderCell(snap.Cells[y][x])
			if x == cursorX && y == cursorY {
				style = cursorStyle
			}
			cells = append(cells, style.Render(content))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return strings.Join(rows, "\n")
}

// renderCell picks the glyph and style for one cell.
// Each cell is 2 characters wide for a square-ish appearance.
func renderCell(cv game.CellView) (string, lipgloss.Style) {
	switch cv.State {
	case game.StateFlagged:
		return "⚑ ", flagStyle
	case game.StateCovered:
		return "░░", coveredStyle
	case game.StateMine:
		return "✶ ", mineStyle
	default:
		if cv.Adjacent == 0 {
			return "  ", openStyle
		}
		return fmt.Sprintf("%d ", cv.Adjacent), numberStyles[cv.Adjacent-1]
	}
}

// RenderHUD renders the status panel next to the board.
func RenderHUD(snap game.Snapshot, thinking bool) string {
	var parts []string

	parts = append(parts, titleStyle.Render("MINESWEEPER"))
	parts = append(parts, "")

	switch snap.Status {
	case "won":
		parts = append(parts, wonStyle.Render("CLEARED — you win!"))
	case "lost":
		parts = append(parts, lostStyle.Render("BOOM — you lose."))
	case "not_started":
		parts = append(parts, dimStyle.Render("First reveal is always safe."))
	default:
		if thinking {
			parts = append(parts, dimStyle.Render("Opponent is thinking..."))
		} else {
			parts = append(parts, "Sweeping...")
		}
	}
	parts = append(parts, "")

	parts = append(parts, fmt.Sprintf("Mines: %d   Flags left: %d", snap.Mines, snap.FlagsRemaining))
	if snap.Turn != "" {
		parts = append(parts, fmt.Sprintf("Turn: %s", snap.Turn))
	}

	parts = append(parts, "")
	parts = append(parts, dimStyle.Render("Arrows/WASD: Move | Space: Reveal | F: Flag | R: Restart | Q: Quit"))

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}
