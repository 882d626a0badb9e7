package game

import (
	"math/rand"

	"github.com/gammazero/deque"
)

// Board owns the cell grid for a single match. It knows nothing about match
// lifecycle or rendering; mines are placed lazily on the first reveal so
// that click is always safe.
type Board struct {
	Width  int
	Height int
	cells  []Cell // row-major, index y*Width+x
	mined  bool
	rng    *rand.Rand
}

// NewBoard creates a fully covered, unmined board.
func NewBoard(width, height int, rng *rand.Rand) *Board {
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i].Covered = true
	}
	return &Board{
		Width:  width,
		Height: height,
		cells:  cells,
		rng:    rng,
	}
}

// InBounds reports whether (x,y) addresses a cell on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Cell returns a copy of the cell at (x,y).
func (b *Board) Cell(x, y int) Cell {
	return b.cells[y*b.Width+x]
}

// Mined reports whether mines have been placed yet.
func (b *Board) Mined() bool {
	return b.mined
}

func (b *Board) at(x, y int) *Cell {
	return &b.cells[y*b.Width+x]
}

// PlaceMines places count mines by rejection sampling, never inside the
// forbidden zone: the safe cell plus its 8-neighborhood, clipped to bounds.
// Adjacent counts are incremented as each mine lands, so they are consistent
// with the final mine set the moment placement completes. Must be called
// exactly once per match; callers validate count against Config.Capacity
// beforehand so the loop always terminates.
func (b *Board) PlaceMines(count int, safe Position) {
	for placed := 0; placed < count; {
		x := b.rng.Intn(b.Width)
		y := b.rng.Intn(b.Height)
		if inForbiddenZone(x, y, safe) || b.at(x, y).Mine {
			continue
		}
		b.at(x, y).Mine = true
		b.eachNeighbor(x, y, func(n *Cell) {
			n.Adjacent++
		})
		placed++
	}
	b.mined = true
}

func inForbiddenZone(x, y int, safe Position) bool {
	return absDiff(x, safe.X) <= 1 && absDiff(y, safe.Y) <= 1
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// eachNeighbor calls fn for every in-bounds cell in the 8-neighborhood of
// (x,y), diagonals included.
func (b *Board) eachNeighbor(x, y int, fn func(*Cell)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.InBounds(nx, ny) {
				fn(b.at(nx, ny))
			}
		}
	}
}

// RevealResult carries the outcome of a reveal plus every position it
// uncovered, so presentation layers can update in one batch.
type RevealResult struct {
	Outcome   RevealOutcome
	Uncovered []Position
}

// Reveal uncovers the cell at (x,y). A flagged target blocks the reveal; a
// mine target is uncovered (so it can be rendered) and reported as a hit; a
// zero-adjacency target triggers a flood fill. Revealing an already open
// cell is a no-op that still reports Revealed.
func (b *Board) Reveal(x, y int) RevealResult {
	if !b.InBounds(x, y) {
		return RevealResult{Outcome: RevealRejected}
	}
	c := b.at(x, y)
	if c.Covered && c.Flagged {
		return RevealResult{Outcome: RevealBlocked}
	}
	if c.Mine {
		c.Covered = false
		return RevealResult{Outcome: RevealMineHit, Uncovered: []Position{{X: x, Y: y}}}
	}
	if !c.Covered {
		return RevealResult{Outcome: Revealed}
	}
	if c.Adjacent == 0 {
		return RevealResult{Outcome: Revealed, Uncovered: b.floodFill(x, y)}
	}
	c.Covered = false
	return RevealResult{Outcome: Revealed, Uncovered: []Position{{X: x, Y: y}}}
}

// floodFill uncovers (x,y) and every cell reachable through chains of
// adjacent zero-count cells, plus the numbered border around each zero cell
// (border cells are uncovered but not expanded). Iterative work-list with a
// visited set: the 8-neighbor graph has cycles, so each cell is enqueued at
// most once and the loop is bounded by the board area. Flagged cells are
// uncovered too — flags do not block propagation.
func (b *Board) floodFill(x, y int) []Position {
	var (
		q       deque.Deque[Position]
		visited = make([]bool, len(b.cells))
		opened  []Position
	)
	q.PushBack(Position{X: x, Y: y})
	visited[y*b.Width+x] = true

	for q.Len() > 0 {
		p := q.PopFront()
		c := b.at(p.X, p.Y)
		if c.Covered {
			c.Covered = false
			opened = append(opened, p)
		}
		if c.Adjacent != 0 {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := p.X+dx, p.Y+dy
				if (dx == 0 && dy == 0) || !b.InBounds(nx, ny) {
					continue
				}
				i := ny*b.Width + nx
				if visited[i] || !b.cells[i].Covered {
					continue
				}
				visited[i] = true
				q.PushBack(Position{X: nx, Y: ny})
			}
		}
	}
	return opened
}

// ToggleFlag flips the flag on a covered cell. allowPlace is false when the
// controller's flag budget is exhausted; removal is always allowed.
func (b *Board) ToggleFlag(x, y int, allowPlace bool) FlagOutcome {
	if !b.InBounds(x, y) {
		return FlagRejected
	}
	c := b.at(x, y)
	if !c.Covered {
		return FlagRejected
	}
	if c.Flagged {
		c.Flagged = false
		return FlagRemoved
	}
	if !allowPlace {
		return FlagRejected
	}
	c.Flagged = true
	return FlagPlaced
}

// CheckWin reports whether every non-mine cell has been uncovered.
// Pure query, no side effects.
func (b *Board) CheckWin() bool {
	for i := range b.cells {
		if !b.cells[i].Mine && b.cells[i].Covered {
			return false
		}
	}
	return true
}

// RevealAllMines uncovers every mine for end-of-match display, leaving all
// other cell state untouched. Invoked only on loss.
func (b *Board) RevealAllMines() {
	for i := range b.cells {
		if b.cells[i].Mine {
			b.cells[i].Covered = false
		}
	}
}

// MineCount returns the number of placed mines.
func (b *Board) MineCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].Mine {
			n++
		}
	}
	return n
}

// Views returns the per-cell projection grid, indexed [y][x].
func (b *Board) Views() [][]CellView {
	views := make([][]CellView, b.Height)
	for y := 0; y < b.Height; y++ {
		views[y] = make([]CellView, b.Width)
		for x := 0; x < b.Width; x++ {
			views[y][x] = b.Cell(x, y).view()
		}
	}
	return views
}

// CoveredUnflagged lists every covered, unflagged position — the candidate
// set handed to automated opponents.
func (b *Board) CoveredUnflagged() []Position {
	var out []Position
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.at(x, y)
			if c.Covered && !c.Flagged {
				out = append(out, Position{X: x, Y: y})
			}
		}
	}
	return out
}
