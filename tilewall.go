package tilewall

import "math"

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Pad grows the rectangle by p on every side.
func (r Rect) Pad(p float64) Rect {
	return Rect{X: r.X - p, Y: r.Y - p, Width: r.Width + 2*p, Height: r.Height + 2*p}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.X+r.Width, other.X+other.Width)
	maxY := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// RectAround returns a w×h rectangle centered on c.
func RectAround(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

// ViewMode selects how the camera frames the wall.
type ViewMode uint8

const (
	ViewOverview ViewMode = iota // frame every visible tile
	ViewFocused                  // frame a single tile plus padding
)

// String returns "overview" or "focused".
func (m ViewMode) String() string {
	if m == ViewFocused {
		return "focused"
	}
	return "overview"
}

// ViewState drives the camera. It is not part of tile data.
type ViewState struct {
	Mode    ViewMode
	Focused TileID
}

// EventType identifies a kind of wall event delivered to an EventSink and to
// Engine.OnEvent handlers.
type EventType uint8

const (
	EventTileAdded     EventType = iota // a tile was created
	EventTileRemoved                    // a tile was deleted (trash drop or delete action)
	EventTileMoved                      // a tile moved to an empty cell
	EventTileSwapped                    // two tiles exchanged cells
	EventDropReverted                   // an invalid drop was animated back
	EventFocusChanged                   // view mode or focused tile changed
	EventEditRequested                  // a tile was double-clicked
	EventShapeChanged                   // the active shape changed
	EventCameraSettled                  // a camera animation finished
)

var eventNames = [...]string{
	EventTileAdded:     "tile-added",
	EventTileRemoved:   "tile-removed",
	EventTileMoved:     "tile-moved",
	EventTileSwapped:   "tile-swapped",
	EventDropReverted:  "drop-reverted",
	EventFocusChanged:  "focus-changed",
	EventEditRequested: "edit-requested",
	EventShapeChanged:  "shape-changed",
	EventCameraSettled: "camera-settled",
}

// String returns the event's kebab-case name.
func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}
