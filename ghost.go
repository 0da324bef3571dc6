package tilewall

// GhostCandidate is a transient drop-target marker shown while dragging.
type GhostCandidate struct {
	Cell        Cell
	Pos         Vec2 // pixel center of Cell
	Highlighted bool // pointer is within the layout's proximity radius
}

// GhostCandidates lists every valid empty cell the dragged tile could be
// dropped on: the frontier of its family computed without the dragged tile,
// so the cell it vacated can show up again. A candidate is highlighted when
// pos lies closer to its center than the layout's proximity radius.
// The full list is rebuilt on every call; diffing is up to the caller.
func GhostCandidates(l Layout, tiles []Tile, dragged Tile, pos Vec2) []GhostCandidate {
	f := dragged.Cell.Family
	if !f.valid() {
		return nil
	}
	threshold := l.ProximityRadius(f)
	cells := Frontier(l, tiles, f, dragged.ID)
	out := make([]GhostCandidate, len(cells))
	for i, c := range cells {
		p := l.ToPixel(c)
		out[i] = GhostCandidate{
			Cell:        c,
			Pos:         p,
			Highlighted: p.Dist(pos) < threshold,
		}
	}
	return out
}
