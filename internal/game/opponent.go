package game

import (
	"math/rand"
	"time"
)

// CellChooser picks one cell for an automated opponent from the candidate
// list, or reports that no candidate is playable. The engine provides the
// candidates and applies the choice; strategy lives entirely behind this
// interface.
type CellChooser interface {
	ChooseCell(candidates []Position) (Position, bool)
}

// RandomChooser picks uniformly at random. The reference opponent's
// difficulty levels were all uniform random selection, so this is the one
// concrete strategy shipped here.
type RandomChooser struct {
	rng *rand.Rand
}

// NewRandomChooser returns a RandomChooser. seed 0 seeds from the clock.
func NewRandomChooser(seed int64) *RandomChooser {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomChooser{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomChooser) ChooseCell(candidates []Position) (Position, bool) {
	if len(candidates) == 0 {
		return Position{}, false
	}
	return candidates[r.rng.Intn(len(candidates))], true
}

// OpponentMove asks the chooser for a target and reveals it through the same
// pipeline as player reveals. Rejected unless the match is a duel and it is
// the opponent's turn. If the chooser passes, the turn returns to the player.
func (m *Match) OpponentMove(chooser CellChooser) RevealResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.config.Duel || m.turn != TurnOpponent || m.status.Terminal() {
		return RevealResult{Outcome: RevealRejected}
	}
	pos, ok := chooser.ChooseCell(m.board.CoveredUnflagged())
	if !ok {
		m.turn = TurnPlayer
		return RevealResult{Outcome: RevealRejected}
	}
	res := m.revealLocked(pos.X, pos.Y)
	if !m.status.Terminal() {
		m.turn = TurnPlayer
	}
	return res
}
