package tilewall

import "fmt"

// TileStore is the tile-list owner the engine mutates. Every mutation is
// applied synchronously and then announced to OnChange handlers.
type TileStore interface {
	// Tiles returns every tile, of every family, in creation order.
	Tiles() []Tile
	// Shape returns the active shape. New tiles take this shape and only
	// tiles of its family are shown.
	Shape() Shape
	SetShape(s Shape)
	// AddTile places a new tile of the active shape at, or near, at. A nil
	// at lets auto-placement choose.
	AddTile(at *Cell) (Tile, error)
	RemoveTile(id TileID) error
	// MoveOrSwapTile moves id to target, swapping with the tile already
	// there if any.
	MoveOrSwapTile(id TileID, target Cell) (DropOutcome, error)
	UpdateTileContent(id TileID, c Content) error
	View() ViewState
	SetFocus(id TileID) error
	SetOverview()
	OnChange(fn func(WallEvent)) CallbackHandle
}

// Store is the in-memory TileStore.
type Store struct {
	layout   Layout
	shape    Shape
	tiles    []Tile
	view     ViewState
	selected TileID
	nextID   TileID
	debug    bool

	handlers handlerRegistry[WallEvent]
}

var _ TileStore = (*Store)(nil)

// NewStore creates an empty store placing tiles with layout l. The initial
// shape is hex.
func NewStore(l Layout) *Store {
	return &Store{layout: l}
}

// Layout returns the geometry used for placement.
func (s *Store) Layout() Layout { return s.layout }

// SetDebugMode makes internal invariant violations panic.
func (s *Store) SetDebugMode(on bool) { s.debug = on }

// Tiles returns a copy of every tile.
func (s *Store) Tiles() []Tile {
	out := make([]Tile, len(s.tiles))
	copy(out, s.tiles)
	return out
}

// VisibleTiles returns the tiles of the active shape's family. Tiles of the
// other family are kept but hidden until the shape switches back.
func (s *Store) VisibleTiles() []Tile {
	return filterFamily(s.tiles, s.shape.Family())
}

// Tile returns the tile with the given id.
func (s *Store) Tile(id TileID) (Tile, bool) {
	return findTile(s.tiles, id)
}

// Len returns the number of tiles across both families.
func (s *Store) Len() int { return len(s.tiles) }

// Shape returns the active shape.
func (s *Store) Shape() Shape { return s.shape }

// SetShape changes the active shape. Focus on a tile of the family being
// hidden falls back to overview.
func (s *Store) SetShape(shape Shape) {
	if !shape.valid() {
		debugAssert(s.debug, "set unknown shape %v", shape)
		return
	}
	if shape == s.shape {
		return
	}
	s.shape = shape
	s.notify(WallEvent{Type: EventShapeChanged, Shape: shape})
	if s.view.Mode == ViewFocused {
		if t, ok := s.Tile(s.view.Focused); ok && t.Family() != shape.Family() {
			s.SetOverview()
		}
	}
}

// AddTile creates a tile of the active shape. at must belong to the active
// family. When at is taken or disconnected a nearby cell is chosen; when none
// is found the returned error wraps ErrNoSpaceFound and nothing is created.
func (s *Store) AddTile(at *Cell) (Tile, error) {
	f := s.shape.Family()
	c, err := ResolvePlacement(s.layout, at, s.tiles, f)
	if err != nil {
		return Tile{}, fmt.Errorf("add tile: %w", err)
	}
	return s.insert(c), nil
}

func (s *Store) insert(c Cell) Tile {
	s.nextID++
	t := Tile{ID: s.nextID, Shape: s.shape, Cell: c, Content: EmptyContent}
	if IsOccupied(c, s.tiles) {
		debugAssert(s.debug, "insert on occupied cell %v", c)
	}
	s.tiles = append(s.tiles, t)
	s.notify(WallEvent{Type: EventTileAdded, Tile: t.ID, To: c})
	return t
}

// AddRingAround fills every free cell adjacent to the visible tiles in one
// pass and returns the new tiles. An empty wall gets nothing.
func (s *Store) AddRingAround() []Tile {
	cells := Frontier(s.layout, s.tiles, s.shape.Family(), 0)
	added := make([]Tile, 0, len(cells))
	for _, c := range cells {
		added = append(added, s.insert(c))
	}
	return added
}

// RemoveTile deletes a tile. Focus and selection on it are cleared. The
// remaining tiles are not reconnected.
func (s *Store) RemoveTile(id TileID) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("remove tile %d: %w", id, ErrUnknownTile)
	}
	t := s.tiles[i]
	s.tiles = append(s.tiles[:i], s.tiles[i+1:]...)
	if s.selected == id {
		s.selected = 0
	}
	s.notify(WallEvent{Type: EventTileRemoved, Tile: id, From: t.Cell})
	if s.view.Focused == id {
		s.SetOverview()
	}
	return nil
}

// MoveOrSwapTile moves id onto target. If another tile of the same family
// sits there the two exchange cells. A move must keep the tile adjacent to
// the rest of its family and stay in bounds; a move onto the tile's own
// cell is a revert and changes nothing.
func (s *Store) MoveOrSwapTile(id TileID, target Cell) (DropOutcome, error) {
	i := s.index(id)
	if i < 0 {
		return DropRevert, fmt.Errorf("move tile %d: %w", id, ErrUnknownTile)
	}
	t := s.tiles[i]
	if !target.Family.valid() {
		debugAssert(s.debug, "move tile %d to cell of unknown family %v", id, target.Family)
		return DropRevert, fmt.Errorf("move tile %d to %v: %w", id, target, ErrUnknownFamily)
	}
	if target.Family != t.Family() {
		return DropRevert, fmt.Errorf("move tile %d to %v: %w", id, target, ErrFamilyMismatch)
	}
	if target == t.Cell {
		return DropRevert, nil
	}

	occ := NewOccupancy(s.tiles, target.Family, id)
	if other, ok := occ.TileAt(target); ok {
		j := s.index(other)
		s.tiles[i].Cell, s.tiles[j].Cell = target, t.Cell
		s.notify(WallEvent{Type: EventTileSwapped, Tile: id, Other: other, From: t.Cell, To: target})
		return DropSwap, nil
	}
	if !s.layout.InBounds(target) {
		return DropRevert, fmt.Errorf("move tile %d to %v: %w", id, target, ErrOutOfBounds)
	}
	if !occ.HasNeighbor(target) {
		return DropRevert, fmt.Errorf("move tile %d to %v: %w", id, target, ErrDisconnected)
	}
	s.tiles[i].Cell = target
	s.notify(WallEvent{Type: EventTileMoved, Tile: id, From: t.Cell, To: target})
	return DropMove, nil
}

// UpdateTileContent replaces a tile's decoration payload.
func (s *Store) UpdateTileContent(id TileID, c Content) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("update tile %d: %w", id, ErrUnknownTile)
	}
	s.tiles[i].Content = c
	return nil
}

// View returns the current view state.
func (s *Store) View() ViewState { return s.view }

// SetFocus frames a single tile.
func (s *Store) SetFocus(id TileID) error {
	if s.index(id) < 0 {
		return fmt.Errorf("focus tile %d: %w", id, ErrUnknownTile)
	}
	s.setView(ViewState{Mode: ViewFocused, Focused: id})
	return nil
}

// SetOverview frames every visible tile.
func (s *Store) SetOverview() {
	s.setView(ViewState{Mode: ViewOverview})
}

func (s *Store) setView(v ViewState) {
	if v == s.view {
		return
	}
	s.view = v
	s.notify(WallEvent{Type: EventFocusChanged, Tile: v.Focused, View: v})
}

// Selected returns the tile chosen for editing, or 0.
func (s *Store) Selected() TileID { return s.selected }

// SelectTile marks id as the tile being edited. Zero clears the selection.
func (s *Store) SelectTile(id TileID) error {
	if id != 0 && s.index(id) < 0 {
		return fmt.Errorf("select tile %d: %w", id, ErrUnknownTile)
	}
	s.selected = id
	return nil
}

// OnChange registers a callback fired after every mutation.
func (s *Store) OnChange(fn func(WallEvent)) CallbackHandle {
	return s.handlers.add(fn)
}

func (s *Store) notify(e WallEvent) {
	s.handlers.fire(e)
}

func (s *Store) index(id TileID) int {
	for i := range s.tiles {
		if s.tiles[i].ID == id {
			return i
		}
	}
	return -1
}
