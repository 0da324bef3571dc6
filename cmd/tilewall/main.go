// Command tilewall runs an interactive tile wall, or replays a script
// headlessly with -headless.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phanxgames/tilewall"
	"github.com/phanxgames/tilewall/ebitenwall"
)

const maxHeadlessFrames = 60 * 60

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "tilewall:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fset := flag.NewFlagSet("tilewall", flag.ContinueOnError)
	envFile := fset.String("env", ".env", "dotenv file with TILEWALL_* settings")
	shape := fset.String("shape", "", "tile shape: hex, square or circle")
	lang := fset.String("lang", "", "notice language: en or fa")
	debug := fset.Bool("debug", false, "verbose logging and invariant checks")
	scriptPath := fset.String("script", "", "JSON action script to replay")
	headless := fset.Bool("headless", false, "replay -script without opening a window")
	tiles := fset.Int("tiles", -1, "tiles to auto-place at startup")
	if err := fset.Parse(args); err != nil {
		return err
	}

	s := settings{Config: tilewall.DefaultConfig(), Shape: tilewall.ShapeHex, Tiles: 7}
	s.Config.TrashZone = tilewall.Rect{X: 16, Y: 16, Width: 120, Height: 80}
	env, err := loadEnv(*envFile)
	if err != nil {
		return err
	}
	if err := applyEnv(&s, env); err != nil {
		return err
	}
	if *shape != "" {
		if s.Shape, err = tilewall.ParseShape(*shape); err != nil {
			return err
		}
	}
	if *lang != "" {
		s.Config.Language = *lang
	}
	if *debug {
		s.Config.Debug = true
	}
	if *tiles >= 0 {
		s.Tiles = *tiles
	}

	store := tilewall.NewStore(s.Config.Layout())
	store.SetShape(s.Shape)
	eng, err := tilewall.NewEngine(store, s.Config)
	if err != nil {
		return err
	}
	defer eng.Close()
	eng.SetDebugMode(s.Config.Debug)
	log := eng.Logger().With("Main")

	for i := 0; i < s.Tiles; i++ {
		if _, err := eng.AddTile(nil); err != nil {
			break
		}
	}

	var runner *tilewall.ScriptRunner
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		if runner, err = tilewall.LoadScript(data); err != nil {
			return err
		}
		eng.SetScript(runner)
	}

	if *headless {
		if runner == nil {
			return fmt.Errorf("-headless needs -script")
		}
		for frame := 0; frame < maxHeadlessFrames; frame++ {
			eng.Update(1.0 / 60)
			if runner.Done() && !eng.Camera().Animating() && !eng.Reverting() {
				break
			}
		}
		for _, err := range runner.Errors() {
			log.Warn("script step failed", "err", err)
		}
		cam := eng.Camera()
		fmt.Printf("tiles=%d shape=%v view=%v zoom=%.3f pan=%.1f,%.1f\n",
			len(eng.VisibleTiles()), store.Shape(), store.View().Mode, cam.Zoom, cam.PanX, cam.PanY)
		for _, t := range eng.VisibleTiles() {
			fmt.Printf("  %d %v\n", t.ID, t.Cell)
		}
		return nil
	}

	game := ebitenwall.NewGame(eng)
	game.Renderer.ShowDebug = s.Config.Debug
	log.Info("starting", "shape", s.Shape, "tiles", s.Tiles)
	return ebitenwall.Run(game, "tilewall", int(s.Config.ViewportWidth), int(s.Config.ViewportHeight))
}
