package ebitenwall

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/tilewall"
)

// Palette holds the renderer's colors.
type Palette struct {
	Wall      color.RGBA
	Tile      color.RGBA
	Focused   color.RGBA
	Ghost     color.RGBA
	Trash     color.RGBA
	TrashOver color.RGBA
}

// DefaultPalette is a dark wall with light tiles.
func DefaultPalette() Palette {
	return Palette{
		Wall:      color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff},
		Tile:      color.RGBA{R: 0xe8, G: 0xe4, B: 0xdc, A: 0xff},
		Focused:   color.RGBA{R: 0xff, G: 0xc8, B: 0x57, A: 0xff},
		Ghost:     color.RGBA{R: 0x6c, G: 0xb4, B: 0xff, A: 0xff},
		Trash:     color.RGBA{R: 0x80, G: 0x20, B: 0x20, A: 0xff},
		TrashOver: color.RGBA{R: 0xe0, G: 0x30, B: 0x30, A: 0xff},
	}
}

const (
	ghostAlpha          = 0.4
	ghostHighlightAlpha = 0.8
	ghostHighlightScale = 1.05
)

// Renderer draws an engine's wall, ghosts and trash zone.
type Renderer struct {
	Palette Palette
	// ShowDebug prints camera and drag state in the top-left corner.
	ShowDebug bool

	eng    *tilewall.Engine
	notice string
	ttl    int // frames left to show notice
}

// NewRenderer creates a renderer for eng and subscribes to its notices.
func NewRenderer(eng *tilewall.Engine) *Renderer {
	r := &Renderer{Palette: DefaultPalette(), eng: eng}
	eng.OnNotice(func(n tilewall.Notice) {
		r.notice = n.Text
		r.ttl = 180
	})
	return r
}

// Draw renders one frame.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.Palette.Wall)
	cam := r.eng.Camera()
	view := cam.ViewMatrix()
	layout := r.eng.Layout()

	for _, g := range r.eng.Ghosts() {
		alpha, scale := ghostAlpha, 1.0
		if g.Highlighted {
			alpha, scale = ghostHighlightAlpha, ghostHighlightScale
		}
		drawPolygon(screen, ghostOutline(layout, g, scale), view, r.Palette.Ghost, alpha)
	}

	focused := r.eng.Store().View()
	tiles := r.eng.VisibleTiles()
	for _, sp := range r.eng.Sprites().Sprites() {
		c := r.Palette.Tile
		if t, ok := findTile(tiles, sp.ID); ok {
			c = contentColor(t.Content, c)
		}
		if focused.Mode == tilewall.ViewFocused && focused.Focused == sp.ID {
			r.drawSprite(screen, view, cam.Zoom, sp, 1.08, r.Palette.Focused, sp.Alpha())
		}
		r.drawSprite(screen, view, cam.Zoom, sp, 1, c, sp.Alpha())
	}

	if trash := r.eng.TrashZone(); trash.Width > 0 && trash.Height > 0 {
		c := r.Palette.Trash
		if r.eng.OverTrash() {
			c = r.Palette.TrashOver
		}
		vector.DrawFilledRect(screen, float32(trash.X), float32(trash.Y),
			float32(trash.Width), float32(trash.Height), c, false)
		ebitenutil.DebugPrintAt(screen, "TRASH", int(trash.X)+8, int(trash.Y)+8)
	}

	if r.ttl > 0 {
		r.ttl--
		ebitenutil.DebugPrintAt(screen, r.notice, 12, int(cam.Viewport.Height)-24)
	}
	if r.ShowDebug {
		ebitenutil.DebugPrint(screen, r.debugText())
	}
}

func (r *Renderer) debugText() string {
	cam := r.eng.Camera()
	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f  zoom %.2f  pan %.0f,%.0f\n", ebiten.ActualTPS(), cam.Zoom, cam.PanX, cam.PanY)
	fmt.Fprintf(&b, "shape %v  tiles %d  view %v\n", r.eng.Store().Shape(), len(r.eng.VisibleTiles()), r.eng.Store().View().Mode)
	if id, ok := r.eng.Dragging(); ok {
		fmt.Fprintf(&b, "dragging %d  ghosts %d\n", id, len(r.eng.Ghosts()))
	}
	return b.String()
}

func (r *Renderer) drawSprite(dst *ebiten.Image, view [6]float64, zoom float64, sp *tilewall.Sprite, scale float64, c color.RGBA, alpha float64) {
	switch sp.Shape {
	case tilewall.ShapeHex:
		drawPolygon(dst, tilewall.HexCorners(sp.Position(), sp.Height/2*scale), view, c, alpha)
	case tilewall.ShapeCircle:
		x, y := transformPoint(view, sp.X, sp.Y)
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(sp.Width/2*scale*zoom), withAlpha(c, alpha), true)
	default:
		b := tilewall.RectAround(sp.Position(), sp.Width*scale, sp.Height*scale)
		x, y := transformPoint(view, b.X, b.Y)
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(b.Width*zoom), float32(b.Height*zoom), withAlpha(c, alpha), false)
	}
}

// ghostOutline returns the world-space outline of a ghost cell.
func ghostOutline(l tilewall.Layout, g tilewall.GhostCandidate, scale float64) []tilewall.Vec2 {
	if g.Cell.Family == tilewall.FamilyHex {
		return tilewall.HexCorners(g.Pos, l.HexRadius*scale)
	}
	w, h := l.TileSize(tilewall.ShapeSquare)
	b := tilewall.RectAround(g.Pos, w*scale, h*scale)
	return []tilewall.Vec2{
		{X: b.X, Y: b.Y},
		{X: b.X + b.Width, Y: b.Y},
		{X: b.X + b.Width, Y: b.Y + b.Height},
		{X: b.X, Y: b.Y + b.Height},
	}
}

func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	f := func(v uint8) uint8 { return uint8(float64(v) * alpha) }
	return color.RGBA{R: f(c.R), G: f(c.G), B: f(c.B), A: f(c.A)}
}

// contentColor returns the fill for a tile whose content is
// {Kind: "color", Data: "#rrggbb"}, or fallback.
func contentColor(c tilewall.Content, fallback color.RGBA) color.RGBA {
	if c.Kind != "color" {
		return fallback
	}
	s, ok := c.Data.(string)
	if !ok {
		return fallback
	}
	rgb, err := parseHexColor(s)
	if err != nil {
		return fallback
	}
	return rgb
}

// parseHexColor parses "#rrggbb" or "#rgb".
func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("parse color %q: want 3 or 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func findTile(tiles []tilewall.Tile, id tilewall.TileID) (tilewall.Tile, bool) {
	for _, t := range tiles {
		if t.ID == id {
			return t, true
		}
	}
	return tilewall.Tile{}, false
}
