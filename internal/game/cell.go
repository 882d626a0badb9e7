package game

// Cell holds the full state of one grid position. Mine and Adjacent are
// fixed once mines are placed; Covered is one-way (a revealed cell never
// covers back up).
type Cell struct {
	Mine     bool
	Covered  bool
	Flagged  bool
	Adjacent int // mines in the 8-neighborhood, 0-8
}

// CellView states exposed to presentation layers.
const (
	StateCovered = "covered"
	StateFlagged = "flagged"
	StateOpen    = "open"
	StateMine    = "mine"
)

// CellView is the read-only per-cell projection. Mine location and adjacency
// are only populated once the cell is uncovered, so a snapshot of a running
// match never leaks covered mine positions.
type CellView struct {
	State    string `json:"state"`
	Adjacent int    `json:"adjacent,omitempty"`
}

func (c Cell) view() CellView {
	switch {
	case c.Covered && c.Flagged:
		return CellView{State: StateFlagged}
	case c.Covered:
		return CellView{State: StateCovered}
	case c.Mine:
		return CellView{State: StateMine}
	default:
		return CellView{State: StateOpen, Adjacent: c.Adjacent}
	}
}
