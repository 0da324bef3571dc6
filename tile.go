package tilewall

import "fmt"

// TileID identifies a tile. IDs are allocated by the store and never reused
// within one store. Zero means "no tile".
type TileID uint32

// GridFamily selects which grid system a cell lives on. Cells of different
// families are never adjacent to each other.
type GridFamily uint8

const (
	FamilyHex       GridFamily = iota // axial (q, r), pointy-top
	FamilyCartesian                   // square grid shared by square and circle tiles
)

// String returns "hex" or "cartesian".
func (f GridFamily) String() string {
	switch f {
	case FamilyHex:
		return "hex"
	case FamilyCartesian:
		return "cartesian"
	default:
		return fmt.Sprintf("family(%d)", uint8(f))
	}
}

// valid reports whether f is one of the known families.
func (f GridFamily) valid() bool {
	return f == FamilyHex || f == FamilyCartesian
}

// Shape is the outline a tile is cut to.
type Shape uint8

const (
	ShapeHex    Shape = iota // hexagon
	ShapeSquare              // square
	ShapeCircle              // circle
)

var shapeNames = [...]string{ShapeHex: "hex", ShapeSquare: "square", ShapeCircle: "circle"}

// String returns the shape's lowercase name.
func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("shape(%d)", uint8(s))
}

func (s Shape) valid() bool { return s <= ShapeCircle }

// Family returns the grid family the shape is placed on.
func (s Shape) Family() GridFamily {
	if s == ShapeHex {
		return FamilyHex
	}
	return FamilyCartesian
}

// ParseShape converts "hex", "square" or "circle" to a Shape.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return ShapeHex, fmt.Errorf("parse shape %q: %w", name, ErrUnknownShape)
}

// Cell is a grid position tagged with its family. On the hex grid X and Y
// hold the axial q and r; on the cartesian grid they are column and row.
// Cell is comparable and used directly as a set key.
type Cell struct {
	Family GridFamily
	X, Y   int
}

// HexCell returns the hex cell at axial (q, r).
func HexCell(q, r int) Cell { return Cell{Family: FamilyHex, X: q, Y: r} }

// SquareCell returns the cartesian cell at (x, y).
func SquareCell(x, y int) Cell { return Cell{Family: FamilyCartesian, X: x, Y: y} }

// Origin returns the origin cell of family f.
func Origin(f GridFamily) Cell { return Cell{Family: f} }

// Q returns the axial q of a hex cell.
func (c Cell) Q() int { return c.X }

// R returns the axial r of a hex cell.
func (c Cell) R() int { return c.Y }

// String formats the cell as "hex(q,r)" or "sq(x,y)".
func (c Cell) String() string {
	if c.Family == FamilyHex {
		return fmt.Sprintf("hex(%d,%d)", c.X, c.Y)
	}
	return fmt.Sprintf("sq(%d,%d)", c.X, c.Y)
}

// Corner is a rendering hint for tile corners. The engine does not read it.
type Corner uint8

const (
	CornerSharp Corner = iota
	CornerRounded
)

// Content is the decoration payload of a tile (color, image, text layers).
// It is owned and interpreted outside the engine.
type Content struct {
	Kind string
	Data any
}

// EmptyContent is assigned to newly created tiles.
var EmptyContent = Content{Kind: "empty"}

// Tile is the unit of placement.
type Tile struct {
	ID      TileID
	Shape   Shape
	Cell    Cell
	Content Content
	Corner  Corner
}

// Family returns the grid family of the tile's shape.
func (t Tile) Family() GridFamily { return t.Shape.Family() }

// filterFamily returns the tiles of family f, preserving order.
func filterFamily(tiles []Tile, f GridFamily) []Tile {
	out := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		if t.Cell.Family == f {
			out = append(out, t)
		}
	}
	return out
}

// findTile returns the tile with the given id.
func findTile(tiles []Tile, id TileID) (Tile, bool) {
	for _, t := range tiles {
		if t.ID == id {
			return t, true
		}
	}
	return Tile{}, false
}
