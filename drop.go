package tilewall

// DropOutcome is the result of releasing a dragged tile.
type DropOutcome uint8

const (
	DropRevert DropOutcome = iota // no data change; animate back
	DropMove                      // take an empty, connected cell
	DropSwap                      // exchange cells with the tile already there
	DropRemove                    // released over the trash zone; the engine deletes the tile
)

var dropNames = [...]string{DropRevert: "revert", DropMove: "move", DropSwap: "swap", DropRemove: "remove"}

func (o DropOutcome) String() string {
	if int(o) < len(dropNames) {
		return dropNames[o]
	}
	return "unknown"
}

// DropResult describes how a drop resolves.
type DropResult struct {
	Outcome DropOutcome
	// Target is the cell under the drop position.
	Target Cell
	// Other is the tile swapped with (DropSwap only).
	Other TileID
	// RevertTo is the pixel center of the dragged tile's stored cell.
	RevertTo Vec2
}

// ResolveDrop decides what releasing dragged at pixel pos does:
//
//   - another tile of the same family on the target cell: swap
//   - empty in-bounds target with an occupied neighbor (ignoring dragged): move
//   - anything else, including the dragged tile's own cell: revert
func ResolveDrop(l Layout, tiles []Tile, dragged Tile, pos Vec2) DropResult {
	res := DropResult{Outcome: DropRevert, RevertTo: l.ToPixel(dragged.Cell)}

	target, err := l.FromPixel(dragged.Cell.Family, pos)
	if err != nil {
		return res
	}
	res.Target = target

	occ := NewOccupancy(tiles, target.Family, dragged.ID)
	if other, ok := occ.TileAt(target); ok {
		res.Outcome = DropSwap
		res.Other = other
		return res
	}
	if target == dragged.Cell || !l.InBounds(target) {
		return res
	}
	if occ.HasNeighbor(target) {
		res.Outcome = DropMove
	}
	return res
}
