package tilewall

import "testing"

type fakeRenderable struct {
	bounds Rect
	alpha  float64
}

func (f *fakeRenderable) Bounds() Rect { return f.bounds }
func (f *fakeRenderable) Position() Vec2 { return f.bounds.Center() }
func (f *fakeRenderable) SetPosition(p Vec2) { f.bounds = RectAround(p, f.bounds.Width, f.bounds.Height) }
func (f *fakeRenderable) Alpha() float64 { return f.alpha }
func (f *fakeRenderable) SetAlpha(a float64) { f.alpha = a }

type fakeLookup map[TileID]*fakeRenderable

func (l fakeLookup) Renderable(id TileID) (Renderable, bool) {
	r, ok := l[id]
	if !ok {
		return nil, false
	}
	return r, true
}

func testCamera(focusPad float64) *Camera {
	opts := DefaultCameraOptions()
	opts.FocusPadding = focusPad
	return NewCamera(800, 600, opts)
}

// runCamera ticks until the animation finishes or max frames pass.
func runCamera(c *Camera, max int) int {
	for i := 0; i < max; i++ {
		if !c.Animating() {
			return i
		}
		c.Tick(1.0 / 60)
	}
	return max
}

func TestNewCamera(t *testing.T) {
	c := NewCamera(800, 600, CameraOptions{MinZoom: 0.5, MaxZoom: 2.5})
	if c.Zoom != 1 || c.PanX != 400 || c.PanY != 300 {
		t.Errorf("initial view = %v (%v, %v)", c.Zoom, c.PanX, c.PanY)
	}
	if c.Options().Ease == nil {
		t.Error("nil ease should default")
	}
}

func TestCamera_FocusScenario(t *testing.T) {
	c := testCamera(50)
	lookup := fakeLookup{1: {bounds: Rect{X: 350, Y: 250, Width: 100, Height: 100}}}
	tiles := []Tile{{ID: 1, Shape: ShapeHex}}

	f := c.Update(tiles, ViewState{Mode: ViewFocused, Focused: 1}, lookup)
	if f.Kind != FrameAnimated || !f.Focused {
		t.Fatalf("frame = %+v", f)
	}
	if f.Box != (Rect{X: 300, Y: 200, Width: 200, Height: 200}) {
		t.Errorf("box = %+v", f.Box)
	}
	if f.Zoom != 2.5 {
		t.Errorf("zoom = %v, want 2.5 (3.0 clamped)", f.Zoom)
	}
	if f.PanX != 400-400*2.5 || f.PanY != 300-300*2.5 {
		t.Errorf("pan = (%v, %v)", f.PanX, f.PanY)
	}
}

func TestCamera_ResetOnEmpty(t *testing.T) {
	c := testCamera(80)
	c.Zoom, c.PanX, c.PanY = 2, -50, 10
	settled := 0
	c.OnSettle = func([6]float64) { settled++ }

	f := c.Update(nil, ViewState{}, fakeLookup{})
	if f.Kind != FrameReset {
		t.Errorf("kind = %v", f.Kind)
	}
	if c.Zoom != 1 || c.PanX != 400 || c.PanY != 300 {
		t.Errorf("view = %v (%v, %v)", c.Zoom, c.PanX, c.PanY)
	}
	if settled != 1 {
		t.Errorf("settled = %d, want 1", settled)
	}
}

func TestCamera_SkipsWhenNothingResolves(t *testing.T) {
	c := testCamera(80)
	f := c.Update([]Tile{{ID: 4}}, ViewState{}, fakeLookup{})
	if f.Kind != FrameSkipped || c.Animating() {
		t.Errorf("frame = %+v, animating = %v", f, c.Animating())
	}
}

func TestCamera_FocusFallsBackToOverview(t *testing.T) {
	c := testCamera(80)
	lookup := fakeLookup{
		1: {bounds: Rect{X: 0, Y: 0, Width: 100, Height: 100}},
		2: {bounds: Rect{X: 200, Y: 0, Width: 100, Height: 100}},
	}
	tiles := []Tile{{ID: 1}, {ID: 2}}
	box, focused, ok := c.TargetBox(tiles, ViewState{Mode: ViewFocused, Focused: 9}, lookup)
	if !ok || focused {
		t.Fatalf("focused = %v, ok = %v", focused, ok)
	}
	want := Rect{X: -150, Y: -150, Width: 600, Height: 400}
	if box != want {
		t.Errorf("box = %+v, want %+v", box, want)
	}
}

func TestCamera_ZoomAlwaysClamped(t *testing.T) {
	c := testCamera(80)
	sizes := []float64{1, 10, 100, 500, 1000, 5000, 20000}
	for _, size := range sizes {
		lookup := fakeLookup{1: {bounds: Rect{Width: size, Height: size}}}
		f := c.Update([]Tile{{ID: 1}}, ViewState{}, lookup)
		if f.Zoom < 0.5 || f.Zoom > 2.5 {
			t.Errorf("size %v: zoom %v outside [0.5, 2.5]", size, f.Zoom)
		}
		runCamera(c, 120)
		if c.Zoom < 0.5-epsilon || c.Zoom > 2.5+epsilon {
			t.Errorf("size %v: settled zoom %v outside [0.5, 2.5]", size, c.Zoom)
		}
	}
}

func TestCamera_AnimationSettles(t *testing.T) {
	c := testCamera(50)
	var settledView [6]float64
	settled := 0
	c.OnSettle = func(v [6]float64) {
		settled++
		settledView = v
	}
	lookup := fakeLookup{1: {bounds: Rect{X: 350, Y: 250, Width: 100, Height: 100}}}
	c.Update([]Tile{{ID: 1}}, ViewState{Mode: ViewFocused, Focused: 1}, lookup)

	c.Tick(0.1)
	if !c.Animating() || settled != 0 {
		t.Fatal("animation ended early")
	}
	if c.Zoom <= 1 || c.Zoom >= 2.5 {
		t.Errorf("mid-animation zoom = %v, want between 1 and 2.5", c.Zoom)
	}

	frames := runCamera(c, 60)
	if c.Animating() {
		t.Fatal("animation did not finish")
	}
	// 0.4s at 60fps, minus the 0.1s already ticked.
	if frames < 15 || frames > 20 {
		t.Errorf("frames = %d", frames)
	}
	if settled != 1 {
		t.Errorf("settled = %d, want 1", settled)
	}
	if c.Zoom != 2.5 || c.PanX != -600 || c.PanY != -450 {
		t.Errorf("final view = %v (%v, %v)", c.Zoom, c.PanX, c.PanY)
	}
	if settledView != c.ViewMatrix() {
		t.Errorf("settled view = %v, want %v", settledView, c.ViewMatrix())
	}
}

func TestCamera_JitterGuard(t *testing.T) {
	c := testCamera(50)
	lookup := fakeLookup{1: {bounds: Rect{X: 350, Y: 250, Width: 100, Height: 100}}}
	tiles := []Tile{{ID: 1}}
	view := ViewState{Mode: ViewFocused, Focused: 1}
	c.Update(tiles, view, lookup)
	runCamera(c, 60)

	settled := 0
	c.OnSettle = func([6]float64) { settled++ }
	lookup[1].bounds.X += 1
	f := c.Update(tiles, view, lookup)
	if f.Kind != FrameInstant || c.Animating() {
		t.Errorf("small change: kind = %v, animating = %v", f.Kind, c.Animating())
	}
	if settled != 1 {
		t.Errorf("settled = %d, want 1", settled)
	}
	if !approxEqual(c.PanX, f.PanX, epsilon) {
		t.Errorf("instant pan = %v, want %v", c.PanX, f.PanX)
	}

	lookup[1].bounds.X += 100
	if f := c.Update(tiles, view, lookup); f.Kind != FrameAnimated {
		t.Errorf("large change: kind = %v", f.Kind)
	}
}

func TestCamera_RetargetCancelsRunningAnimation(t *testing.T) {
	c := testCamera(50)
	lookup := fakeLookup{
		1: {bounds: Rect{X: 350, Y: 250, Width: 100, Height: 100}},
		2: {bounds: Rect{X: -1000, Y: 0, Width: 100, Height: 100}},
	}
	tiles := []Tile{{ID: 1}, {ID: 2}}
	c.Update(tiles, ViewState{Mode: ViewFocused, Focused: 1}, lookup)
	c.Tick(0.1)
	f := c.Update(tiles, ViewState{Mode: ViewFocused, Focused: 2}, lookup)
	runCamera(c, 60)
	if !approxEqual(c.PanX, f.PanX, epsilon) || !approxEqual(c.PanY, f.PanY, epsilon) {
		t.Errorf("camera ended at (%v, %v), want second target (%v, %v)", c.PanX, c.PanY, f.PanX, f.PanY)
	}
}

func TestCamera_Cancel(t *testing.T) {
	c := testCamera(50)
	lookup := fakeLookup{1: {bounds: Rect{X: 350, Y: 250, Width: 100, Height: 100}}}
	c.Update([]Tile{{ID: 1}}, ViewState{Mode: ViewFocused, Focused: 1}, lookup)
	c.Tick(0.1)
	zoom := c.Zoom
	c.Cancel()
	if c.Tick(0.1) || c.Zoom != zoom {
		t.Error("cancelled animation kept running")
	}
}

func TestFit(t *testing.T) {
	zoom, px, py := Fit(Rect{X: -100, Y: -50, Width: 400, Height: 200}, 800, 600, 0.5, 2.5)
	if zoom != 2 {
		t.Errorf("zoom = %v, want 2", zoom)
	}
	if px != 400-100*2 || py != 300-50*2 {
		t.Errorf("pan = (%v, %v)", px, py)
	}
	if zoom, _, _ := Fit(Rect{}, 800, 600, 0.5, 2.5); zoom != 2.5 {
		t.Errorf("empty box zoom = %v, want max", zoom)
	}
}

func TestCamera_WorldScreenRoundTrip(t *testing.T) {
	c := testCamera(80)
	c.Zoom, c.PanX, c.PanY = 1.7, -120, 45
	for _, p := range []Vec2{{0, 0}, {123.5, -88}, {-400, 900}} {
		sx, sy := c.WorldToScreen(p.X, p.Y)
		wx, wy := c.ScreenToWorld(sx, sy)
		if !approxEqual(wx, p.X, 1e-9) || !approxEqual(wy, p.Y, 1e-9) {
			t.Errorf("round trip %v = (%v, %v)", p, wx, wy)
		}
	}
}

func TestCamera_VisibleBounds(t *testing.T) {
	c := testCamera(80)
	c.Zoom, c.PanX, c.PanY = 2, 400, 300
	got := c.VisibleBounds()
	want := Rect{X: -200, Y: -150, Width: 400, Height: 300}
	if !approxEqual(got.X, want.X, epsilon) || !approxEqual(got.Width, want.Width, epsilon) ||
		!approxEqual(got.Y, want.Y, epsilon) || !approxEqual(got.Height, want.Height, epsilon) {
		t.Errorf("VisibleBounds = %+v, want %+v", got, want)
	}
	sr := c.ScreenRect(Rect{X: 0, Y: 0, Width: 10, Height: 10})
	if sr != (Rect{X: 400, Y: 300, Width: 20, Height: 20}) {
		t.Errorf("ScreenRect = %+v", sr)
	}
}
