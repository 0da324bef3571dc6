package ebitenwall

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/tilewall"
)

// Game adapts a tilewall.Engine to ebiten.Game: it feeds the mouse into the
// engine, maps a few keys to wall actions and draws with a Renderer.
//
//	A       add a tile
//	R       add a ring around the wall
//	1 2 3   switch to hex, square, circle
//	Esc     overview
//	Delete  remove the focused tile
//	F3      toggle debug overlay and logging
//	F12     save a screenshot
type Game struct {
	Engine   *tilewall.Engine
	Renderer *Renderer
	Capture  *Capturer

	// OnExit, when set, makes Update return ebiten.Termination once it
	// reports true. Headless script runs use it to stop after the script.
	OnExit func() bool
}

// NewGame creates a game for eng.
func NewGame(eng *tilewall.Engine) *Game {
	return &Game{Engine: eng, Renderer: NewRenderer(eng), Capture: NewCapturer(eng.Logger())}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	eng := g.Engine
	if !eng.Injecting() {
		mx, my := ebiten.CursorPosition()
		eng.Pointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	}
	g.handleKeys()
	eng.Update(1 / float32(ebiten.TPS()))

	if g.OnExit != nil && g.OnExit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) handleKeys() {
	eng := g.Engine
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		eng.AddTile(nil)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		eng.AddRingAround()
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		eng.SetShape(tilewall.ShapeHex)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		eng.SetShape(tilewall.ShapeSquare)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		eng.SetShape(tilewall.ShapeCircle)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		eng.Store().SetOverview()
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		if v := eng.Store().View(); v.Mode == tilewall.ViewFocused {
			eng.RemoveTile(v.Focused)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		on := !g.Renderer.ShowDebug
		g.Renderer.ShowDebug = on
		eng.SetDebugMode(on)
	case inpututil.IsKeyJustPressed(ebiten.KeyF12):
		g.Capture.Queue(eng.Store().Shape().String())
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen)
	g.Capture.Flush(screen)
}

// Layout implements ebiten.Game. The viewport follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Engine.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and runs g until it is closed.
func Run(g *Game, title string, width, height int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
