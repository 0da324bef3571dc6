package tilewall

import "math"

const sqrt3 = 1.7320508075688772

// hexDirections are the six axial neighbor offsets, counter-clockwise from east.
var hexDirections = [6][2]int{
	{1, 0}, {1, -1}, {0, -1},
	{-1, 0}, {-1, 1}, {0, 1},
}

// squareDirections are the eight Moore-neighborhood offsets: the four
// orthogonal cells first, then the four diagonals.
var squareDirections = [8][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// Layout holds the pixel geometry of both grid systems. The zero value is not
// useful; start from DefaultLayout or Config.Layout.
type Layout struct {
	// HexRadius is the center-to-corner radius of a hex tile in pixels.
	HexRadius float64
	// HexGap is the visual spacing between neighboring hex tiles.
	HexGap float64
	// SquareSize is the cartesian cell pitch in pixels.
	SquareSize float64
	// ProximityFactor scales the cell size into the ghost highlight radius.
	ProximityFactor float64
	// Extent limits how far from the origin a tile may be placed, in grid
	// distance. Zero means unbounded.
	Extent int
}

// DefaultLayout returns the stock geometry: 75px hex radius with a 3px gap,
// 120px squares, 0.8 highlight factor, unbounded.
func DefaultLayout() Layout {
	return Layout{
		HexRadius:       75,
		HexGap:          3,
		SquareSize:      120,
		ProximityFactor: 0.8,
	}
}

// EffectiveRadius is the hex radius including half the gap on each side.
func (l Layout) EffectiveRadius() float64 {
	return l.HexRadius + l.HexGap/2
}

// HexSize returns the width and height of a pointy-top hex tile.
func (l Layout) HexSize() (w, h float64) {
	return sqrt3 * l.HexRadius, 2 * l.HexRadius
}

// HexToPixel converts axial (q, r) to the pixel center of the cell.
func (l Layout) HexToPixel(q, r int) Vec2 {
	size := l.EffectiveRadius()
	fq, fr := float64(q), float64(r)
	return Vec2{
		X: size * (sqrt3*fq + sqrt3/2*fr),
		Y: size * 1.5 * fr,
	}
}

// PixelToHex converts a pixel position to the axial cell containing it.
func (l Layout) PixelToHex(x, y float64) (q, r int) {
	size := l.EffectiveRadius()
	fq := (sqrt3/3*x - y/3) / size
	fr := (2.0 / 3 * y) / size
	return CubeRound(fq, fr)
}

// CubeRound snaps a fractional axial coordinate to the nearest hex cell.
// Each cube component is rounded independently; the one with the largest
// rounding error is then recomputed from the other two so that x+y+z == 0.
func CubeRound(fq, fr float64) (q, r int) {
	fx, fz := fq, fr
	fy := -fx - fz

	rx := math.Round(fx)
	ry := math.Round(fy)
	rz := math.Round(fz)

	dx := math.Abs(rx - fx)
	dy := math.Abs(ry - fy)
	dz := math.Abs(rz - fz)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return int(rx), int(rz)
}

// HexNeighbors returns the six cells adjacent to (q, r).
func HexNeighbors(q, r int) []Cell {
	out := make([]Cell, len(hexDirections))
	for i, d := range hexDirections {
		out[i] = HexCell(q+d[0], r+d[1])
	}
	return out
}

// HexDistance returns the number of steps between two axial coordinates.
func HexDistance(q1, r1, q2, r2 int) int {
	dq := q1 - q2
	dr := r1 - r2
	return (absInt(dq) + absInt(dr) + absInt(dq+dr)) / 2
}

// SquareToPixel converts cartesian (x, y) to the pixel center of the cell.
func (l Layout) SquareToPixel(x, y int) Vec2 {
	return Vec2{X: float64(x) * l.SquareSize, Y: float64(y) * l.SquareSize}
}

// PixelToSquare converts a pixel position to the nearest cartesian cell.
func (l Layout) PixelToSquare(px, py float64) (x, y int) {
	return int(math.Round(px / l.SquareSize)), int(math.Round(py / l.SquareSize))
}

// SquareNeighbors returns the eight Moore neighbors of (x, y).
func SquareNeighbors(x, y int) []Cell {
	out := make([]Cell, len(squareDirections))
	for i, d := range squareDirections {
		out[i] = SquareCell(x+d[0], y+d[1])
	}
	return out
}

// SquareDistance returns the Manhattan distance between two cells.
func SquareDistance(x1, y1, x2, y2 int) int {
	return absInt(x1-x2) + absInt(y1-y2)
}

// Neighbors returns the cells adjacent to c on its own grid. Unknown
// families have no neighbors.
func (c Cell) Neighbors() []Cell {
	switch c.Family {
	case FamilyHex:
		return HexNeighbors(c.X, c.Y)
	case FamilyCartesian:
		return SquareNeighbors(c.X, c.Y)
	}
	return nil
}

// Distance returns the grid distance between c and o: hex distance on the
// hex grid, Manhattan on the cartesian grid. Cells of different families are
// infinitely far apart (math.MaxInt).
func (c Cell) Distance(o Cell) int {
	if c.Family != o.Family {
		return math.MaxInt
	}
	switch c.Family {
	case FamilyHex:
		return HexDistance(c.X, c.Y, o.X, o.Y)
	case FamilyCartesian:
		return SquareDistance(c.X, c.Y, o.X, o.Y)
	}
	return math.MaxInt
}

// IsNeighbor reports whether o is adjacent to c.
func (c Cell) IsNeighbor(o Cell) bool {
	for _, n := range c.Neighbors() {
		if n == o {
			return true
		}
	}
	return false
}

// ToPixel returns the pixel center of c.
func (l Layout) ToPixel(c Cell) Vec2 {
	if c.Family == FamilyHex {
		return l.HexToPixel(c.X, c.Y)
	}
	return l.SquareToPixel(c.X, c.Y)
}

// FromPixel returns the cell of family f under pixel p.
func (l Layout) FromPixel(f GridFamily, p Vec2) (Cell, error) {
	switch f {
	case FamilyHex:
		q, r := l.PixelToHex(p.X, p.Y)
		return HexCell(q, r), nil
	case FamilyCartesian:
		x, y := l.PixelToSquare(p.X, p.Y)
		return SquareCell(x, y), nil
	}
	return Cell{}, ErrUnknownFamily
}

// ProximityRadius is the distance under which a ghost cell counts as hovered.
func (l Layout) ProximityRadius(f GridFamily) float64 {
	if f == FamilyHex {
		return l.ProximityFactor * l.EffectiveRadius()
	}
	return l.ProximityFactor * l.SquareSize
}

// TileSize returns the drawn width and height of a tile of the given shape.
func (l Layout) TileSize(s Shape) (w, h float64) {
	if s == ShapeHex {
		return l.HexSize()
	}
	side := l.SquareSize - 2*l.HexGap
	return side, side
}

// InBounds reports whether c lies within Extent of its family's origin.
func (l Layout) InBounds(c Cell) bool {
	if !c.Family.valid() {
		return false
	}
	if l.Extent <= 0 {
		return true
	}
	return c.Distance(Origin(c.Family)) <= l.Extent
}

// centroidCell returns the cell nearest the mean position of cells, which
// must all share family f and be non-empty.
func centroidCell(f GridFamily, cells []Cell) Cell {
	var sx, sy float64
	for _, c := range cells {
		sx += float64(c.X)
		sy += float64(c.Y)
	}
	n := float64(len(cells))
	if f == FamilyHex {
		q, r := CubeRound(sx/n, sy/n)
		return HexCell(q, r)
	}
	return SquareCell(int(math.Round(sx/n)), int(math.Round(sy/n)))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
