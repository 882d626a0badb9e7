package game

import (
	"testing"
)

// fixedChooser always picks the same position; used to drive duel matches
// deterministically.
type fixedChooser struct {
	pos Position
}

func (f fixedChooser) ChooseCell(candidates []Position) (Position, bool) {
	for _, c := range candidates {
		if c == f.pos {
			return f.pos, true
		}
	}
	if len(candidates) == 0 {
		return Position{}, false
	}
	return candidates[0], true
}

func TestRandomChooser(t *testing.T) {
	chooser := NewRandomChooser(1)

	if _, ok := chooser.ChooseCell(nil); ok {
		t.Fatal("expected no choice from an empty candidate list")
	}

	candidates := []Position{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}
	seen := make(map[Position]bool)
	for i := 0; i < 100; i++ {
		pos, ok := chooser.ChooseCell(candidates)
		if !ok {
			t.Fatal("expected a choice from a non-empty list")
		}
		seen[pos] = true
	}
	for pos := range seen {
		found := false
		for _, c := range candidates {
			if c == pos {
				found = true
			}
		}
		if !found {
			t.Errorf("chooser picked %+v, not in the candidate list", pos)
		}
	}
}

func TestDuelTurnGating(t *testing.T) {
	m := mustMatch(t, Config{Width: 8, Height: 8, Mines: 10, Duel: true, Seed: 2})

	// Opponent cannot move before the player
	if res := m.OpponentMove(NewRandomChooser(1)); res.Outcome != RevealRejected {
		t.Fatalf("opponent moved out of turn: %v", res.Outcome)
	}

	res := m.Reveal(0, 0)
	if res.Outcome != Revealed {
		t.Fatalf("expected Revealed, got %v", res.Outcome)
	}
	if m.Status().Terminal() {
		t.Skip("seed finished the match on the first reveal")
	}
	if m.Turn() != TurnOpponent {
		t.Fatalf("expected opponent's turn after player reveal, got %v", m.Turn())
	}

	// Player cannot move again until the opponent has
	if res := m.Reveal(7, 7); res.Outcome != RevealRejected {
		t.Fatalf("player moved out of turn: %v", res.Outcome)
	}

	if res := m.OpponentMove(NewRandomChooser(1)); res.Outcome == RevealRejected {
		t.Fatalf("opponent move rejected on its turn")
	}
	if !m.Status().Terminal() && m.Turn() != TurnPlayer {
		t.Fatalf("expected player's turn after opponent move, got %v", m.Turn())
	}
}

func TestOpponentMoveOnNonDuelRejected(t *testing.T) {
	m := mustMatch(t, Config{Width: 5, Height: 5, Mines: 2, Seed: 1})
	m.Reveal(2, 2)

	if res := m.OpponentMove(NewRandomChooser(1)); res.Outcome != RevealRejected {
		t.Fatalf("opponent move on a non-duel match: got %v", res.Outcome)
	}
}

func TestOpponentRevealsChosenCell(t *testing.T) {
	m := mustMatch(t, Config{Width: 8, Height: 8, Mines: 10, Duel: true, Seed: 4})
	m.Reveal(0, 0)
	if m.Status().Terminal() || m.Turn() != TurnOpponent {
		t.Skip("seed did not leave an opponent turn")
	}

	cands := m.Candidates()
	if len(cands) == 0 {
		t.Fatal("no candidates on a running board")
	}
	target := cands[0]

	res := m.OpponentMove(fixedChooser{pos: target})
	if res.Outcome == RevealRejected {
		t.Fatal("opponent move rejected on its turn")
	}
	if m.board.Cell(target.X, target.Y).Covered {
		t.Errorf("opponent's chosen cell (%d,%d) still covered", target.X, target.Y)
	}
}
