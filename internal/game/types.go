package game

import (
	"errors"
	"math/rand"
	"time"
)

// Position represents a coordinate on the board.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RevealOutcome classifies the result of a reveal request.
type RevealOutcome int

const (
	RevealRejected RevealOutcome = iota // terminal match, out of bounds, or not this actor's turn
	RevealBlocked                       // target cell is flagged
	RevealMineHit                       // uncovered a mine; the match is lost
	Revealed                            // uncovered one or more safe cells
)

func (o RevealOutcome) String() string {
	switch o {
	case RevealBlocked:
		return "blocked"
	case RevealMineHit:
		return "mine_hit"
	case Revealed:
		return "revealed"
	default:
		return "rejected"
	}
}

// FlagOutcome classifies the result of a flag toggle.
type FlagOutcome int

const (
	FlagRejected FlagOutcome = iota // cell not covered, budget exhausted, or terminal match
	FlagPlaced
	FlagRemoved
)

func (o FlagOutcome) String() string {
	switch o {
	case FlagPlaced:
		return "placed"
	case FlagRemoved:
		return "removed"
	default:
		return "rejected"
	}
}

// MatchStatus represents the current match phase.
type MatchStatus int

const (
	StatusNotStarted MatchStatus = iota // board built, mines not yet placed
	StatusInProgress                    // first reveal done
	StatusWon                           // terminal
	StatusLost                          // terminal
)

func (s MatchStatus) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further mutating actions are accepted.
func (s MatchStatus) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Turn identifies which actor may reveal next in a duel match.
type Turn int

const (
	TurnPlayer Turn = iota
	TurnOpponent
)

func (t Turn) String() string {
	if t == TurnOpponent {
		return "opponent"
	}
	return "player"
}

// Configuration errors returned by NewMatch.
var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrTooManyMines      = errors.New("mine count exceeds placeable capacity")
)

// Config holds configurable parameters for a match.
type Config struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Mines  int   `json:"mines"`
	Duel   bool  `json:"duel,omitempty"` // alternate reveals with an automated opponent
	Seed   int64 `json:"-"`              // RNG seed; 0 means seed from the current time
}

// DefaultConfig returns the classic beginner layout.
func DefaultConfig() Config {
	return Config{Width: 9, Height: 9, Mines: 10}
}

// Preset returns the classic board layout for a named difficulty.
func Preset(name string) (Config, bool) {
	switch name {
	case "beginner":
		return Config{Width: 9, Height: 9, Mines: 10}, true
	case "intermediate":
		return Config{Width: 16, Height: 16, Mines: 40}, true
	case "expert":
		return Config{Width: 30, Height: 16, Mines: 99}, true
	default:
		return Config{}, false
	}
}

// Capacity returns the number of cells that can legally hold a mine.
// The first reveal's forbidden zone is unavailable to mine placement, and
// its worst-case size is min(Width,3) * min(Height,3). Validating against
// this bound guarantees that rejection sampling terminates.
func (c Config) Capacity() int {
	return c.Width*c.Height - min(c.Width, 3)*min(c.Height, 3)
}

// Validate checks dimensions and mine count at match creation time.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return ErrInvalidDimensions
	}
	if c.Mines < 0 || c.Mines > c.Capacity() {
		return ErrTooManyMines
	}
	return nil
}

func (c Config) rng() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
