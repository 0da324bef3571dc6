package tilewall

import "math"

const defaultDragDeadZone = 4.0 // pixels

// --- Pointer state ---

type pointerState struct {
	down     bool
	startX   float64 // screen
	startY   float64
	lastX    float64
	lastY    float64
	hitTile  TileID // tile under the pointer at press time
	dragging bool
}

// clickState tracks the previous click for double-click detection.
type clickState struct {
	tile TileID
	at   float32 // engine clock, seconds
	ok   bool
}

// SetDragDeadZone sets the minimum movement in pixels before a press turns
// into a drag.
func (e *Engine) SetDragDeadZone(pixels float64) {
	e.cfg.DragDeadZone = pixels
}

// Pointer feeds one frame of screen-space pointer state through the
// press/drag/release state machine:
//
//   - a press on a tile followed by movement beyond the dead zone starts a
//     drag of that tile; further movement drags it; release drops it
//   - a release without drag over the same tile (or the same empty spot) is
//     a click; two clicks within the double-click window are a double-click
//
// The ebitenwall adapter calls this once per frame with the real cursor.
func (e *Engine) Pointer(sx, sy float64, pressed bool) {
	ps := &e.pointer
	target, _ := e.sprites.HitTestScreen(sx, sy)

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = sx, sy
		ps.lastX, ps.lastY = sx, sy
		ps.hitTile = target
		ps.dragging = false

	case !pressed && ps.down:
		wx, wy := e.camera.ScreenToWorld(sx, sy)
		if ps.dragging {
			e.DragEnd(Vec2{wx, wy})
		} else if ps.hitTile == target {
			e.click(target)
		}
		ps.down = false
		ps.hitTile = 0
		ps.dragging = false

	case pressed && ps.down:
		if sx == ps.lastX && sy == ps.lastY {
			break
		}
		if !ps.dragging && ps.hitTile != 0 {
			dx := sx - ps.startX
			dy := sy - ps.startY
			if math.Sqrt(dx*dx+dy*dy) > e.cfg.DragDeadZone {
				wx, wy := e.camera.ScreenToWorld(ps.startX, ps.startY)
				if e.DragStart(ps.hitTile, Vec2{wx, wy}) == nil {
					ps.dragging = true
				}
			}
		}
		if ps.dragging {
			wx, wy := e.camera.ScreenToWorld(sx, sy)
			e.DragMove(Vec2{wx, wy})
		}
		ps.lastX, ps.lastY = sx, sy

	default:
		ps.lastX, ps.lastY = sx, sy
	}
}

// click routes a single click, promoting it to a double-click when the same
// target was clicked within the window.
func (e *Engine) click(id TileID) {
	last := e.lastClick
	if last.ok && last.tile == id && e.clock-last.at <= e.cfg.DoubleClickWindow {
		e.lastClick = clickState{}
		e.DoubleClick(id)
		return
	}
	e.lastClick = clickState{tile: id, at: e.clock, ok: true}
	e.Click(id)
}
