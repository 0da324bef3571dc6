package tilewall

import "sort"

// MaxPlacementAttempts bounds the collision walk in ResolvePlacement.
const MaxPlacementAttempts = 50

// AutoPlace picks the cell a new tile of family f should take. With no tiles
// of that family it returns the origin. Otherwise it scores every frontier
// cell by occupied-neighbor count (more is better), then by distance to the
// centroid of the existing tiles (less is better), keeping frontier order on
// ties. The origin is returned when the frontier is empty.
func AutoPlace(l Layout, tiles []Tile, f GridFamily) Cell {
	family := filterFamily(tiles, f)
	if len(family) == 0 {
		return Origin(f)
	}

	candidates := Frontier(l, family, f, 0)
	if len(candidates) == 0 {
		return Origin(f)
	}

	occ := NewOccupancy(family, f, 0)
	cells := make([]Cell, len(family))
	for i, t := range family {
		cells[i] = t.Cell
	}
	center := centroidCell(f, cells)

	type scored struct {
		cell      Cell
		neighbors int
		dist      int
	}
	ranked := make([]scored, len(candidates))
	for i, c := range candidates {
		ranked[i] = scored{cell: c, neighbors: occ.CountNeighbors(c), dist: c.Distance(center)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].neighbors != ranked[j].neighbors {
			return ranked[i].neighbors > ranked[j].neighbors
		}
		return ranked[i].dist < ranked[j].dist
	})
	return ranked[0].cell
}

// ResolvePlacement finds a free, connected cell for a new tile of family f.
// It starts from requested (or the origin when nil). While that cell is
// taken it walks to the first free neighbor, falling back to AutoPlace when
// every neighbor is full, for at most MaxPlacementAttempts steps. A result
// that would be disconnected from the existing tiles is rerouted to
// AutoPlace. Failure returns a *PlacementError wrapping ErrNoSpaceFound.
func ResolvePlacement(l Layout, requested *Cell, tiles []Tile, f GridFamily) (Cell, error) {
	if !f.valid() {
		return Cell{}, ErrUnknownFamily
	}
	start := Origin(f)
	if requested != nil {
		if requested.Family != f {
			return Cell{}, ErrFamilyMismatch
		}
		start = *requested
	}

	occ := NewOccupancy(tiles, f, 0)
	blocked := func(c Cell) bool { return occ.Has(c) || !l.InBounds(c) }

	target := start
	attempts := 0
	for blocked(target) && attempts < MaxPlacementAttempts {
		found := false
		for _, n := range target.Neighbors() {
			if !blocked(n) {
				target = n
				found = true
				break
			}
		}
		if !found {
			target = AutoPlace(l, tiles, f)
		}
		attempts++
	}
	if blocked(target) {
		return Cell{}, &PlacementError{Requested: start, Attempts: attempts, Err: ErrNoSpaceFound}
	}

	if occ.Len() > 0 && !occ.HasNeighbor(target) {
		target = AutoPlace(l, tiles, f)
		if blocked(target) {
			return Cell{}, &PlacementError{Requested: start, Attempts: attempts, Err: ErrNoSpaceFound}
		}
	}
	return target, nil
}
