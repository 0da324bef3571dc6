package tilewall

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Occupancy is a cell index over the tiles of one grid family. Build one per
// synchronous computation; it does not track later store changes.
type Occupancy struct {
	family GridFamily
	cells  mapset.Set[Cell]
	owner  map[Cell]TileID
}

// NewOccupancy indexes the tiles of family f, skipping exclude (pass 0 to
// keep every tile).
func NewOccupancy(tiles []Tile, f GridFamily, exclude TileID) *Occupancy {
	o := &Occupancy{
		family: f,
		cells:  mapset.New[Cell](),
		owner:  make(map[Cell]TileID, len(tiles)),
	}
	for _, t := range tiles {
		if t.Cell.Family != f || (exclude != 0 && t.ID == exclude) {
			continue
		}
		o.cells.Put(t.Cell)
		o.owner[t.Cell] = t.ID
	}
	return o
}

// Family returns the grid family this index covers.
func (o *Occupancy) Family() GridFamily { return o.family }

// Len returns the number of occupied cells.
func (o *Occupancy) Len() int { return o.cells.Size() }

// Has reports whether c is occupied. Cells of another family never are.
func (o *Occupancy) Has(c Cell) bool {
	return c.Family == o.family && o.cells.Has(c)
}

// TileAt returns the id occupying c.
func (o *Occupancy) TileAt(c Cell) (TileID, bool) {
	if !o.Has(c) {
		return 0, false
	}
	return o.owner[c], true
}

// CountNeighbors returns how many neighbors of c are occupied.
func (o *Occupancy) CountNeighbors(c Cell) int {
	n := 0
	for _, nb := range c.Neighbors() {
		if o.Has(nb) {
			n++
		}
	}
	return n
}

// HasNeighbor reports whether any neighbor of c is occupied.
func (o *Occupancy) HasNeighbor(c Cell) bool {
	for _, nb := range c.Neighbors() {
		if o.Has(nb) {
			return true
		}
	}
	return false
}

// IsOccupied reports whether a tile of c's family sits on c.
func IsOccupied(c Cell, tiles []Tile) bool {
	for _, t := range tiles {
		if t.Cell == c {
			return true
		}
	}
	return false
}

// HasOccupiedNeighbor reports whether any neighbor of c is occupied by a
// tile of the same family other than exclude. This is the predicate behind
// the connectivity rule for both placement and drops.
func HasOccupiedNeighbor(c Cell, tiles []Tile, exclude TileID) bool {
	return NewOccupancy(tiles, c.Family, exclude).HasNeighbor(c)
}

// Frontier returns every free in-bounds cell adjacent to a tile of family f,
// ignoring exclude both as a seed and as an occupant. Order is deterministic:
// tiles in slice order, then neighbor order, first occurrence wins.
func Frontier(l Layout, tiles []Tile, f GridFamily, exclude TileID) []Cell {
	occ := NewOccupancy(tiles, f, exclude)
	seen := mapset.New[Cell]()
	var out []Cell
	for _, t := range tiles {
		if t.Cell.Family != f || (exclude != 0 && t.ID == exclude) {
			continue
		}
		for _, n := range t.Cell.Neighbors() {
			if occ.Has(n) || seen.Has(n) || !l.InBounds(n) {
				continue
			}
			seen.Put(n)
			out = append(out, n)
		}
	}
	return out
}

// Components groups the tiles of family f into edge-connected regions using
// breadth-first search. A healthy wall has at most one component; removals
// may split it.
func Components(tiles []Tile, f GridFamily) [][]TileID {
	occ := NewOccupancy(tiles, f, 0)
	visited := mapset.New[Cell]()
	var groups [][]TileID

	for _, t := range tiles {
		if t.Cell.Family != f || visited.Has(t.Cell) {
			continue
		}
		var group []TileID
		q := queue.New[Cell]()
		q.Enqueue(t.Cell)
		visited.Put(t.Cell)
		for !q.Empty() {
			c := q.Dequeue()
			id, _ := occ.TileAt(c)
			group = append(group, id)
			for _, n := range c.Neighbors() {
				if occ.Has(n) && !visited.Has(n) {
					visited.Put(n)
					q.Enqueue(n)
				}
			}
		}
		groups = append(groups, group)
	}
	return groups
}
