package tilewall

import "math"

// Renderable is the engine's view of a drawn tile. Bounds and Position are in
// world (pre-camera) space.
type Renderable interface {
	Bounds() Rect
	Position() Vec2
	SetPosition(p Vec2)
	Alpha() float64
	SetAlpha(a float64)
}

// RenderableLookup resolves a tile id to its renderable. It reports false
// when the tile is not currently drawn, e.g. right after creation.
type RenderableLookup interface {
	Renderable(id TileID) (Renderable, bool)
}

// CoordRefresher is implemented by lookups that cache screen-space
// coordinates for hit testing. The camera refreshes them after every zoom or
// pan change.
type CoordRefresher interface {
	RefreshCoords(view [6]float64)
}

// Sprite is the reference Renderable: a tile outline centered on X, Y.
type Sprite struct {
	ID     TileID
	Shape  Shape
	X, Y   float64
	Width  float64
	Height float64
	alpha  float64
}

// Bounds returns the world-space bounding box.
func (s *Sprite) Bounds() Rect { return RectAround(Vec2{s.X, s.Y}, s.Width, s.Height) }

// Position returns the sprite center.
func (s *Sprite) Position() Vec2 { return Vec2{s.X, s.Y} }

// SetPosition moves the sprite center.
func (s *Sprite) SetPosition(p Vec2) { s.X, s.Y = p.X, p.Y }

// Alpha returns the sprite opacity in [0, 1].
func (s *Sprite) Alpha() float64 { return s.alpha }

// SetAlpha sets the sprite opacity.
func (s *Sprite) SetAlpha(a float64) { s.alpha = a }

// Outline returns the polygon of a hex sprite in world space, or nil for
// other shapes.
func (s *Sprite) Outline() []Vec2 {
	if s.Shape != ShapeHex {
		return nil
	}
	return HexCorners(Vec2{s.X, s.Y}, s.Height/2)
}

// Contains reports whether world point p lies on the sprite's shape.
func (s *Sprite) Contains(p Vec2) bool {
	switch s.Shape {
	case ShapeHex:
		return convexContains(s.Outline(), p)
	case ShapeCircle:
		return p.Dist(Vec2{s.X, s.Y}) <= s.Width/2
	default:
		return s.Bounds().Contains(p.X, p.Y)
	}
}

// HexCorners returns the six corners of a pointy-top hexagon.
func HexCorners(center Vec2, radius float64) []Vec2 {
	pts := make([]Vec2, 6)
	for i := range pts {
		rad := (60*float64(i) - 30) * math.Pi / 180
		pts[i] = Vec2{center.X + radius*math.Cos(rad), center.Y + radius*math.Sin(rad)}
	}
	return pts
}

// convexContains tests whether p lies inside a convex polygon, in either
// winding order, by checking it sits on the same side of every edge.
func convexContains(poly []Vec2, p Vec2) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	var positive, negative bool
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// SpriteSet keeps one Sprite per visible tile, laid out on the grid. It
// implements RenderableLookup and CoordRefresher.
type SpriteSet struct {
	layout  Layout
	sprites map[TileID]*Sprite
	order   []TileID
	raised  TileID

	invView [6]float64
}

// NewSpriteSet creates an empty set for the given layout.
func NewSpriteSet(l Layout) *SpriteSet {
	return &SpriteSet{
		layout:  l,
		sprites: make(map[TileID]*Sprite),
		invView: identityTransform,
	}
}

// Sync makes the set mirror tiles: new tiles get sprites, removed tiles lose
// theirs, and every sprite except hold snaps to its cell's pixel center.
func (s *SpriteSet) Sync(tiles []Tile, hold TileID) {
	keep := make(map[TileID]bool, len(tiles))
	s.order = s.order[:0]
	for _, t := range tiles {
		keep[t.ID] = true
		s.order = append(s.order, t.ID)
		sp, ok := s.sprites[t.ID]
		if !ok {
			sp = &Sprite{ID: t.ID, alpha: 1}
			s.sprites[t.ID] = sp
		}
		sp.Shape = t.Shape
		sp.Width, sp.Height = s.layout.TileSize(t.Shape)
		if t.ID != hold {
			sp.SetPosition(s.layout.ToPixel(t.Cell))
			sp.alpha = 1
		}
	}
	for id := range s.sprites {
		if !keep[id] {
			delete(s.sprites, id)
		}
	}
	if !keep[s.raised] {
		s.raised = 0
	}
}

// Renderable implements RenderableLookup.
func (s *SpriteSet) Renderable(id TileID) (Renderable, bool) {
	sp, ok := s.sprites[id]
	if !ok {
		return nil, false
	}
	return sp, true
}

// Sprite returns the sprite for id, or nil.
func (s *SpriteSet) Sprite(id TileID) *Sprite {
	return s.sprites[id]
}

// Len returns the number of sprites.
func (s *SpriteSet) Len() int { return len(s.sprites) }

// Raise draws id above every other sprite until the next Raise(0).
func (s *SpriteSet) Raise(id TileID) { s.raised = id }

// Sprites returns the sprites in painter order: tile order, raised last.
func (s *SpriteSet) Sprites() []*Sprite {
	out := make([]*Sprite, 0, len(s.order))
	var top *Sprite
	for _, id := range s.order {
		sp := s.sprites[id]
		if sp == nil {
			continue
		}
		if id == s.raised {
			top = sp
			continue
		}
		out = append(out, sp)
	}
	if top != nil {
		out = append(out, top)
	}
	return out
}

// RefreshCoords caches the view used to map screen points for hit testing.
func (s *SpriteSet) RefreshCoords(view [6]float64) {
	s.invView = invertAffine(view)
}

// HitTest returns the topmost sprite under world point p.
func (s *SpriteSet) HitTest(p Vec2) (TileID, bool) {
	sprites := s.Sprites()
	for i := len(sprites) - 1; i >= 0; i-- {
		if sprites[i].Contains(p) {
			return sprites[i].ID, true
		}
	}
	return 0, false
}

// HitTestScreen is HitTest for a screen point, using the coordinates cached
// by the last RefreshCoords.
func (s *SpriteSet) HitTestScreen(x, y float64) (TileID, bool) {
	wx, wy := transformPoint(s.invView, x, y)
	return s.HitTest(Vec2{wx, wy})
}
