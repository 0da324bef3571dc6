package tilewall

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zyedidia/generic"
)

// CameraOptions holds the framing and animation tunables for a Camera.
type CameraOptions struct {
	// FocusPadding pads a focused tile's bounds on every side.
	FocusPadding float64
	// OverviewPadding pads the union of all tile bounds on every side.
	OverviewPadding float64
	// MinZoom and MaxZoom clamp the computed zoom.
	MinZoom, MaxZoom float64
	// Duration is the animation length in seconds.
	Duration float32
	// Ease shapes animation progress. Defaults to ease.OutCubic.
	Ease ease.TweenFunc
	// ZoomEpsilon and PanEpsilon are the thresholds under which a change is
	// applied instantly instead of animated.
	ZoomEpsilon, PanEpsilon float64
}

// DefaultCameraOptions returns 80px focus padding, 150px overview padding,
// zoom in [0.5, 2.5], and a 400ms ease-out-cubic animation.
func DefaultCameraOptions() CameraOptions {
	return CameraOptions{
		FocusPadding:    80,
		OverviewPadding: 150,
		MinZoom:         0.5,
		MaxZoom:         2.5,
		Duration:        0.4,
		Ease:            ease.OutCubic,
		ZoomEpsilon:     0.01,
		PanEpsilon:      5,
	}
}

// cameraAnim interpolates zoom and pan linearly in eased progress space.
type cameraAnim struct {
	progress *gween.Tween
	fromZoom float64
	fromPanX float64
	fromPanY float64
	toZoom   float64
	toPanX   float64
	toPanY   float64
}

// FrameKind reports what a camera Update did.
type FrameKind uint8

const (
	FrameReset    FrameKind = iota // no tiles: identity zoom, centered
	FrameInstant                   // negligible change applied without animation
	FrameAnimated                  // animation started
	FrameSkipped                   // nothing renderable to frame this tick
)

// Frame is the outcome of a camera Update.
type Frame struct {
	Kind    FrameKind
	Box     Rect // padded target box in world space
	Focused bool // Box came from the focused tile
	Zoom    float64
	PanX    float64
	PanY    float64
}

// Camera frames the wall: it owns the view transform (uniform zoom plus pan)
// and at most one in-flight animation.
type Camera struct {
	// Zoom is the scale factor (1.0 = no zoom).
	Zoom float64
	// PanX and PanY translate world space into screen space after zooming.
	PanX, PanY float64
	// Viewport is the size of the rendering surface. X and Y are ignored.
	Viewport Rect

	// OnSettle runs after an animation completes or an instant change is
	// applied, with the new view matrix.
	OnSettle func(view [6]float64)

	opts CameraOptions
	anim *cameraAnim
}

// NewCamera creates a camera for a viewport of size w×h, centered on the
// world origin at zoom 1.
func NewCamera(w, h float64, opts CameraOptions) *Camera {
	if opts.Ease == nil {
		opts.Ease = ease.OutCubic
	}
	c := &Camera{Viewport: Rect{Width: w, Height: h}, opts: opts}
	c.reset()
	return c
}

// Options returns the camera's tunables.
func (c *Camera) Options() CameraOptions { return c.opts }

// SetViewport changes the viewport size. The caller should Update afterwards
// to reframe.
func (c *Camera) SetViewport(w, h float64) {
	c.Viewport.Width = w
	c.Viewport.Height = h
}

// Animating reports whether an animation is in flight.
func (c *Camera) Animating() bool { return c.anim != nil }

// Cancel drops the in-flight animation, leaving the view where it is.
func (c *Camera) Cancel() { c.anim = nil }

// reset applies the identity zoom with the world origin at viewport center.
func (c *Camera) reset() {
	c.anim = nil
	c.Zoom = 1
	c.PanX = c.Viewport.Width / 2
	c.PanY = c.Viewport.Height / 2
}

// Fit returns the clamped zoom and the pan that centers box in a viewport of
// size vw×vh.
func Fit(box Rect, vw, vh, minZoom, maxZoom float64) (zoom, panX, panY float64) {
	zoom = maxZoom
	if box.Width > 0 && box.Height > 0 {
		zoom = math.Min(vw/box.Width, vh/box.Height)
	}
	zoom = generic.Clamp(zoom, minZoom, maxZoom)
	center := box.Center()
	panX = vw/2 - center.X*zoom
	panY = vh/2 - center.Y*zoom
	return zoom, panX, panY
}

// TargetBox computes the world-space box the camera should frame. With a
// focused tile whose renderable resolves, that tile's bounds are padded by
// FocusPadding; otherwise the union of every resolvable tile is padded by
// OverviewPadding. ok is false when nothing resolves.
func (c *Camera) TargetBox(tiles []Tile, view ViewState, lookup RenderableLookup) (box Rect, focused, ok bool) {
	if view.Mode == ViewFocused && view.Focused != 0 {
		if r, found := lookup.Renderable(view.Focused); found {
			return r.Bounds().Pad(c.opts.FocusPadding), true, true
		}
	}
	for _, t := range tiles {
		r, found := lookup.Renderable(t.ID)
		if !found {
			continue
		}
		if !ok {
			box = r.Bounds()
			ok = true
			continue
		}
		box = box.Union(r.Bounds())
	}
	if !ok {
		return Rect{}, false, false
	}
	return box.Pad(c.opts.OverviewPadding), false, true
}

// Update reframes the camera for the given tiles and view state. An empty
// tile list resets the view. Negligible changes apply instantly; anything
// else cancels the running animation and starts a new one.
func (c *Camera) Update(tiles []Tile, view ViewState, lookup RenderableLookup) Frame {
	if len(tiles) == 0 {
		c.reset()
		c.settle()
		return Frame{Kind: FrameReset, Zoom: c.Zoom, PanX: c.PanX, PanY: c.PanY}
	}

	box, focused, ok := c.TargetBox(tiles, view, lookup)
	if !ok {
		return Frame{Kind: FrameSkipped, Zoom: c.Zoom, PanX: c.PanX, PanY: c.PanY}
	}

	zoom, panX, panY := Fit(box, c.Viewport.Width, c.Viewport.Height, c.opts.MinZoom, c.opts.MaxZoom)
	frame := Frame{Box: box, Focused: focused, Zoom: zoom, PanX: panX, PanY: panY}

	c.anim = nil
	if math.Abs(zoom-c.Zoom) < c.opts.ZoomEpsilon &&
		math.Abs(panX-c.PanX) < c.opts.PanEpsilon &&
		math.Abs(panY-c.PanY) < c.opts.PanEpsilon {
		c.Zoom, c.PanX, c.PanY = zoom, panX, panY
		c.settle()
		frame.Kind = FrameInstant
		return frame
	}

	c.anim = &cameraAnim{
		progress: gween.New(0, 1, c.opts.Duration, c.opts.Ease),
		fromZoom: c.Zoom, fromPanX: c.PanX, fromPanY: c.PanY,
		toZoom: zoom, toPanX: panX, toPanY: panY,
	}
	frame.Kind = FrameAnimated
	return frame
}

// Tick advances the running animation by dt seconds. It reports whether the
// view changed.
func (c *Camera) Tick(dt float32) bool {
	a := c.anim
	if a == nil {
		return false
	}
	p32, done := a.progress.Update(dt)
	p := float64(p32)
	if done {
		p = 1
	}
	c.Zoom = a.fromZoom + (a.toZoom-a.fromZoom)*p
	c.PanX = a.fromPanX + (a.toPanX-a.fromPanX)*p
	c.PanY = a.fromPanY + (a.toPanY-a.fromPanY)*p
	if done {
		c.anim = nil
		c.settle()
	}
	return true
}

func (c *Camera) settle() {
	if c.OnSettle != nil {
		c.OnSettle(c.ViewMatrix())
	}
}

// ViewMatrix returns the world-to-screen affine matrix.
func (c *Camera) ViewMatrix() [6]float64 {
	return viewTransform(c.Zoom, c.PanX, c.PanY)
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return transformPoint(c.ViewMatrix(), wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return transformPoint(invertAffine(c.ViewMatrix()), sx, sy)
}

// ScreenRect maps a world-space rect to screen space.
func (c *Camera) ScreenRect(r Rect) Rect {
	return transformRect(c.ViewMatrix(), r)
}

// VisibleBounds returns the world-space rectangle covered by the viewport.
func (c *Camera) VisibleBounds() Rect {
	inv := invertAffine(c.ViewMatrix())
	return transformRect(inv, Rect{Width: c.Viewport.Width, Height: c.Viewport.Height})
}
