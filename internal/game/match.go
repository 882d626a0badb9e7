package game

import (
	"sync"

	"github.com/google/uuid"
)

// Match owns the lifecycle of a single game: the NOT_STARTED → IN_PROGRESS →
// {WON, LOST} state machine, the flag budget, and first-reveal semantics.
// All per-cell state lives in the Board. The mutex serializes player and
// opponent actions — a reveal always runs to completion before the next
// action is accepted.
type Match struct {
	ID uuid.UUID

	mu     sync.Mutex
	config Config
	board  *Board
	status MatchStatus
	turn   Turn
	flags  int // flags remaining, bounded at [0, config.Mines]
}

// NewMatch validates the config and builds a fresh match. The old match, if
// any, is simply discarded by the caller — boards are never reused.
func NewMatch(config Config) (*Match, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Match{
		ID:     uuid.New(),
		config: config,
		board:  NewBoard(config.Width, config.Height, config.rng()),
		status: StatusNotStarted,
		turn:   TurnPlayer,
		flags:  config.Mines,
	}, nil
}

// Config returns the match configuration.
func (m *Match) Config() Config {
	return m.config
}

// Status returns the current lifecycle state.
func (m *Match) Status() MatchStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// FlagsRemaining returns the current flag budget.
func (m *Match) FlagsRemaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flags
}

// Turn returns whose reveal is next. Only meaningful for duel matches.
func (m *Match) Turn() Turn {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.turn
}

// Reveal processes a player reveal request. In duel matches it is rejected
// out of turn.
func (m *Match) Reveal(x, y int) RevealResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.config.Duel && m.turn != TurnPlayer {
		return RevealResult{Outcome: RevealRejected}
	}
	return m.revealLocked(x, y)
}

// revealLocked runs the reveal pipeline: lifecycle gating, lazy mine
// placement on the first reveal, board mutation, then win/loss evaluation.
// Must be called with m.mu held.
func (m *Match) revealLocked(x, y int) RevealResult {
	if m.status.Terminal() {
		return RevealResult{Outcome: RevealRejected}
	}
	if !m.board.InBounds(x, y) {
		return RevealResult{Outcome: RevealRejected}
	}
	c := m.board.Cell(x, y)
	if c.Covered && c.Flagged {
		// Blocked before mine placement: a flagged first click must not
		// start the match.
		return RevealResult{Outcome: RevealBlocked}
	}

	if !m.board.Mined() {
		m.board.PlaceMines(m.config.Mines, Position{X: x, Y: y})
	}
	res := m.board.Reveal(x, y)
	if m.status == StatusNotStarted {
		m.status = StatusInProgress
	}

	switch {
	case res.Outcome == RevealMineHit:
		m.board.RevealAllMines()
		m.status = StatusLost
	case m.board.CheckWin():
		m.status = StatusWon
	case m.config.Duel && res.Outcome == Revealed:
		m.turn = TurnOpponent
	}
	return res
}

// ToggleFlag processes a flag toggle. Placement is rejected once the budget
// is exhausted; removal always refunds the budget. Flags may be placed
// before the first reveal.
func (m *Match) ToggleFlag(x, y int) FlagOutcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status.Terminal() {
		return FlagRejected
	}
	outcome := m.board.ToggleFlag(x, y, m.flags > 0)
	switch outcome {
	case FlagPlaced:
		m.flags--
	case FlagRemoved:
		m.flags++
	}
	return outcome
}

// Candidates returns the covered, unflagged positions an automated opponent
// may choose from.
func (m *Match) Candidates() []Position {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.board.CoveredUnflagged()
}

// Snapshot is a consistent read-only view of a match, sufficient for
// rendering without exposing covered mine locations.
type Snapshot struct {
	ID             string       `json:"id"`
	Width          int          `json:"width"`
	Height         int          `json:"height"`
	Mines          int          `json:"mines"`
	Status         string       `json:"status"`
	Turn           string       `json:"turn,omitempty"`
	FlagsRemaining int          `json:"flags_remaining"`
	Cells          [][]CellView `json:"cells"`
}

// Snapshot returns the current projection of the match.
func (m *Match) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := Snapshot{
		ID:             m.ID.String(),
		Width:          m.config.Width,
		Height:         m.config.Height,
		Mines:          m.config.Mines,
		Status:         m.status.String(),
		FlagsRemaining: m.flags,
		Cells:          m.board.Views(),
	}
	if m.config.Duel {
		snap.Turn = m.turn.String()
	}
	return snap
}
