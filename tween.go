package tilewall

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PositionTween animates a renderable's position and alpha together. Call
// Update(dt) each frame; it writes the interpolated values into the target.
// There is no global animation manager; the engine owns at most one of these
// at a time for drop reverts.
type PositionTween struct {
	x, y, alpha *gween.Tween
	target      Renderable
	Done        bool
}

// TweenPosition creates a tween that moves r to `to` and fades it to alpha
// over duration seconds using fn.
func TweenPosition(r Renderable, to Vec2, alpha float64, duration float32, fn ease.TweenFunc) *PositionTween {
	from := r.Position()
	return &PositionTween{
		x:      gween.New(float32(from.X), float32(to.X), duration, fn),
		y:      gween.New(float32(from.Y), float32(to.Y), duration, fn),
		alpha:  gween.New(float32(r.Alpha()), float32(alpha), duration, fn),
		target: r,
	}
}

// Update advances the tween by dt seconds. No writes happen once Done.
func (t *PositionTween) Update(dt float32) {
	if t.Done {
		return
	}
	x, doneX := t.x.Update(dt)
	y, doneY := t.y.Update(dt)
	a, doneA := t.alpha.Update(dt)
	t.target.SetPosition(Vec2{float64(x), float64(y)})
	t.target.SetAlpha(float64(a))
	t.Done = doneX && doneY && doneA
}

// Target returns the renderable being animated.
func (t *PositionTween) Target() Renderable { return t.target }
