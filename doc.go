// Package tilewall is a spatial placement and camera engine for tile walls.
//
// A wall is a set of tiles placed on one of two grids: a pointy-top axial hex
// grid, or a square grid shared by square and circle tiles. The engine keeps
// every tile connected to the rest of its family, resolves drag and drop into
// move, swap or revert, previews the cells a dragged tile could land on, and
// keeps a camera framed on the wall or on a focused tile.
//
// The package does not draw anything. Renderers read [Engine.Sprites],
// [Engine.Ghosts] and [Engine.Camera]; the ebitenwall sub-package is a
// ready-made [Ebitengine] renderer and input adapter.
//
// # Quick start
//
//	cfg := tilewall.DefaultConfig()
//	store := tilewall.NewStore(cfg.Layout())
//	eng, err := tilewall.NewEngine(store, cfg)
//	if err != nil {
//		return err
//	}
//	eng.AddTile(nil) // origin
//	eng.AddTile(nil) // next to it
//
//	// every frame:
//	eng.Pointer(cursorX, cursorY, buttonDown)
//	eng.Update(1.0 / 60)
//
// # Grids
//
// [Cell] carries its [GridFamily] so hex and square coordinates never mix.
// [Layout] converts cells to pixel centers and back; pixel-to-hex uses cube
// rounding so every point maps to exactly one cell.
//
// # Placement
//
// [AutoPlace] grows the wall from its frontier, preferring cells with more
// occupied neighbors and then cells closer to the wall's centroid.
// [ResolvePlacement] honors a requested cell when it is free and connected,
// walks to a free neighbor when it is not, and gives up with
// [ErrNoSpaceFound] after [MaxPlacementAttempts] steps.
//
// # Camera
//
// [Camera] fits either the focused tile or every visible tile into the
// viewport, clamps the zoom, and animates the change with [gween]. Changes
// too small to notice are applied at once.
//
// # Events
//
// Every store mutation and engine action is reported as a [WallEvent] to
// [Engine.OnEvent] handlers and to any [EventSink]; the ecs sub-package
// publishes them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package tilewall
