package tilewall

import (
	"errors"
	"fmt"

	"github.com/tanema/gween/ease"
)

var errDragActive = errors.New("another tile is being dragged")

type dragState struct {
	id        TileID
	tile      Tile // snapshot at drag start
	grab      Vec2 // sprite center minus pointer, world space
	overTrash bool
}

// Engine drives one tile wall: it keeps sprites in sync with the store,
// turns pointer input into focus, drag and drop actions, and keeps the
// camera framed. All methods must be called from one goroutine, normally
// the game loop; Update is the frame clock.
type Engine struct {
	cfg     Config
	layout  Layout
	store   TileStore
	sprites *SpriteSet
	lookup  RenderableLookup
	camera  *Camera
	catalog *Catalog
	log     *Logger

	sinks    []EventSink
	handlers handlerRegistry[WallEvent]
	notices  handlerRegistry[Notice]

	drag     *dragState
	ghosts   []GhostCandidate
	revert   *PositionTween
	revertID TileID
	reframe  bool

	clock       float32
	pointer     pointerState
	lastClick   clickState
	injectQueue []syntheticPointerEvent
	script      *ScriptRunner

	storeHandle CallbackHandle
}

// NewEngine creates an engine over store. The store must place tiles with
// cfg.Layout(); NewStore(cfg.Layout()) does.
func NewEngine(store TileStore, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	catalog, err := LoadCatalog(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	e := &Engine{
		cfg:     cfg,
		layout:  cfg.Layout(),
		store:   store,
		catalog: catalog,
		log:     NewLogger(nil).With("Engine"),
		reframe: true,
	}
	e.log.SetDebug(cfg.Debug)
	e.sprites = NewSpriteSet(e.layout)
	e.lookup = e.sprites
	e.camera = NewCamera(cfg.ViewportWidth, cfg.ViewportHeight, cfg.CameraOptions())
	e.camera.OnSettle = e.onCameraSettle
	e.sprites.RefreshCoords(e.camera.ViewMatrix())
	e.storeHandle = store.OnChange(e.onStoreChange)
	e.syncSprites()
	return e, nil
}

// Close detaches the engine from its store.
func (e *Engine) Close() { e.storeHandle.Remove() }

// Store returns the tile store.
func (e *Engine) Store() TileStore { return e.store }

// Camera returns the camera.
func (e *Engine) Camera() *Camera { return e.camera }

// Sprites returns the engine's renderables.
func (e *Engine) Sprites() *SpriteSet { return e.sprites }

// Layout returns the grid geometry.
func (e *Engine) Layout() Layout { return e.layout }

// Config returns the engine settings.
func (e *Engine) Config() Config { return e.cfg }

// SetLogger replaces the engine's logger.
func (e *Engine) SetLogger(l *Logger) {
	e.log = l.With("Engine")
}

// Logger returns the engine's logger.
func (e *Engine) Logger() *Logger { return e.log }

// SetDebugMode enables verbose logging and, for a *Store, invariant panics.
func (e *Engine) SetDebugMode(on bool) {
	e.cfg.Debug = on
	e.log.SetDebug(on)
	if s, ok := e.store.(*Store); ok {
		s.SetDebugMode(on)
	}
}

// SetRenderableLookup makes the camera frame renderables from l instead of
// the engine's sprites. Nil restores the sprites.
func (e *Engine) SetRenderableLookup(l RenderableLookup) {
	if l == nil {
		l = e.sprites
	}
	e.lookup = l
	e.reframe = true
}

// SetTrashZone sets the screen-space rect that deletes tiles dropped on it.
func (e *Engine) SetTrashZone(r Rect) { e.cfg.TrashZone = r }

// TrashZone returns the screen-space trash rect.
func (e *Engine) TrashZone() Rect { return e.cfg.TrashZone }

// AddSink forwards every wall event to sink.
func (e *Engine) AddSink(sink EventSink) {
	e.sinks = append(e.sinks, sink)
}

// OnEvent registers a callback for wall events.
func (e *Engine) OnEvent(fn func(WallEvent)) CallbackHandle {
	return e.handlers.add(fn)
}

// OnNotice registers a callback for user-facing notices.
func (e *Engine) OnNotice(fn func(Notice)) CallbackHandle {
	return e.notices.add(fn)
}

// VisibleTiles returns the tiles of the active shape's family.
func (e *Engine) VisibleTiles() []Tile {
	return filterFamily(e.store.Tiles(), e.store.Shape().Family())
}

// Ghosts returns the drop candidates of the current drag.
func (e *Engine) Ghosts() []GhostCandidate { return e.ghosts }

// Dragging returns the tile being dragged.
func (e *Engine) Dragging() (TileID, bool) {
	if e.drag == nil {
		return 0, false
	}
	return e.drag.id, true
}

// OverTrash reports whether the dragged tile hovers the trash zone.
func (e *Engine) OverTrash() bool { return e.drag != nil && e.drag.overTrash }

// Reverting reports whether a drop-revert animation is running.
func (e *Engine) Reverting() bool { return e.revert != nil }

// Resize changes the viewport and reframes on the next Update.
func (e *Engine) Resize(w, h float64) {
	if w == e.camera.Viewport.Width && h == e.camera.Viewport.Height {
		return
	}
	e.camera.SetViewport(w, h)
	e.reframe = true
}

// SetScript attaches a scripted input sequence, stepped from Update.
func (e *Engine) SetScript(r *ScriptRunner) { e.script = r }

// Update advances the engine by dt seconds: scripted and injected input
// first, then the revert animation, pending reframing and the camera.
func (e *Engine) Update(dt float32) {
	e.clock += dt
	if e.script != nil {
		e.script.step(e)
	}
	e.processInjectedInput()

	if e.revert != nil {
		e.revert.Update(dt)
		if e.revert.Done {
			e.finishRevert()
		}
	}

	if e.reframe {
		e.reframe = false
		e.frame()
	}
	e.camera.Tick(dt)
}

// --- Store actions ---

// AddTile places a tile of the active shape at, or near, at. When no space
// is left a notice is raised and the error is returned.
func (e *Engine) AddTile(at *Cell) (Tile, error) {
	t, err := e.store.AddTile(at)
	if err != nil {
		if errors.Is(err, ErrNoSpaceFound) {
			e.log.Warn("no space for new tile", "err", err)
			e.notify(NoticeNoSpace)
		} else {
			e.log.Error("add tile failed", "err", err)
		}
		return Tile{}, err
	}
	e.log.Success("tile added", "id", t.ID, "cell", t.Cell)
	return t, nil
}

// AddRingAround fills the free cells around the visible tiles, when the
// store supports it. It returns how many tiles were added.
func (e *Engine) AddRingAround() int {
	rs, ok := e.store.(interface{ AddRingAround() []Tile })
	if !ok {
		return 0
	}
	n := len(rs.AddRingAround())
	if n > 0 {
		e.log.Success("ring added", "tiles", n)
		e.notify(NoticeRingAdded, n)
	}
	return n
}

// RemoveTile deletes a tile.
func (e *Engine) RemoveTile(id TileID) error {
	if err := e.store.RemoveTile(id); err != nil {
		e.log.Warn("remove tile failed", "err", err)
		return err
	}
	e.notify(NoticeTileRemoved)
	return nil
}

// SetShape switches the active shape. Tiles of the other family are hidden,
// not deleted.
func (e *Engine) SetShape(s Shape) {
	if e.drag != nil {
		e.cancelDrag()
	}
	e.store.SetShape(s)
}

// Click focuses the camera on a tile. Clicking empty space (id 0) does
// nothing.
func (e *Engine) Click(id TileID) {
	if id == 0 {
		return
	}
	if err := e.store.SetFocus(id); err != nil {
		e.log.Warn("focus failed", "err", err)
	}
}

// DoubleClick requests editing of a tile, or returns to overview when id is
// 0.
func (e *Engine) DoubleClick(id TileID) {
	if id == 0 {
		e.store.SetOverview()
		return
	}
	if sel, ok := e.store.(interface{ SelectTile(TileID) error }); ok {
		if err := sel.SelectTile(id); err != nil {
			e.log.Warn("select failed", "err", err)
			return
		}
	}
	e.log.Info("edit requested", "id", id)
	e.emit(WallEvent{Type: EventEditRequested, Tile: id})
}

// --- Drag lifecycle ---

// DragStart picks up a visible tile with the pointer at world position pos.
// A focused view switches to overview and any running revert is cancelled.
func (e *Engine) DragStart(id TileID, pos Vec2) error {
	if e.drag != nil {
		return fmt.Errorf("drag tile %d: %w", id, errDragActive)
	}
	t, ok := findTile(e.VisibleTiles(), id)
	if !ok {
		return fmt.Errorf("drag tile %d: %w", id, ErrUnknownTile)
	}
	e.cancelRevert()
	if e.store.View().Mode == ViewFocused {
		e.store.SetOverview()
	}
	sp := e.sprites.Sprite(id)
	if sp == nil {
		return fmt.Errorf("drag tile %d: %w", id, ErrUnknownTile)
	}
	e.drag = &dragState{id: id, tile: t, grab: sp.Position().Sub(pos)}
	e.sprites.Raise(id)
	e.updateDrag(pos)
	e.log.Info("drag start", "id", id, "cell", t.Cell)
	return nil
}

// DragMove moves the dragged tile with the pointer at world position pos and
// refreshes the ghost candidates.
func (e *Engine) DragMove(pos Vec2) {
	if e.drag == nil {
		return
	}
	e.updateDrag(pos)
}

// DragEnd drops the dragged tile with the pointer at world position pos.
// Over the trash zone the tile is removed. Otherwise the drop resolves to a
// swap or move applied through the store, or to a revert animated back to
// the tile's cell with no data change.
func (e *Engine) DragEnd(pos Vec2) DropResult {
	d := e.drag
	if d == nil {
		return DropResult{Outcome: DropRevert}
	}
	e.cancelRevert()
	e.updateDrag(pos)
	e.drag = nil
	e.ghosts = nil

	if d.overTrash {
		e.sprites.Raise(0)
		if err := e.RemoveTile(d.id); err != nil {
			return DropResult{Outcome: DropRevert}
		}
		e.log.Info("tile trashed", "id", d.id)
		return DropResult{Outcome: DropRemove, Target: d.tile.Cell}
	}

	at := e.layout.ToPixel(d.tile.Cell)
	if sp := e.sprites.Sprite(d.id); sp != nil {
		at = sp.Position()
	}
	res := ResolveDrop(e.layout, e.VisibleTiles(), d.tile, at)
	switch res.Outcome {
	case DropMove, DropSwap:
		e.sprites.Raise(0)
		if _, err := e.store.MoveOrSwapTile(d.id, res.Target); err != nil {
			e.log.Warn("drop rejected by store", "err", err)
			res.Outcome = DropRevert
			e.startRevert(d, res)
			return res
		}
		e.log.Success("tile dropped", "id", d.id, "outcome", res.Outcome, "cell", res.Target)
	default:
		e.startRevert(d, res)
	}
	return res
}

func (e *Engine) updateDrag(pos Vec2) {
	d := e.drag
	sp := e.sprites.Sprite(d.id)
	if sp == nil {
		e.cancelDrag()
		return
	}
	center := pos.Add(d.grab)
	sp.SetPosition(center)

	sx, sy := e.camera.WorldToScreen(pos.X, pos.Y)
	trash := e.cfg.TrashZone
	d.overTrash = trash.Width > 0 && trash.Height > 0 && trash.Contains(sx, sy)
	if d.overTrash {
		sp.SetAlpha(e.cfg.TrashAlpha)
		e.ghosts = nil
		return
	}
	sp.SetAlpha(e.cfg.DragAlpha)
	e.ghosts = GhostCandidates(e.layout, e.VisibleTiles(), d.tile, center)
}

// cancelDrag abandons the drag and snaps the tile back without animation.
func (e *Engine) cancelDrag() {
	e.drag = nil
	e.ghosts = nil
	e.sprites.Raise(0)
	e.pointer.dragging = false
	e.syncSprites()
}

func (e *Engine) startRevert(d *dragState, res DropResult) {
	sp := e.sprites.Sprite(d.id)
	if sp == nil {
		return
	}
	e.revert = TweenPosition(sp, res.RevertTo, 1, e.cfg.RevertDuration, ease.OutBack)
	e.revertID = d.id
	e.log.Info("drop reverted", "id", d.id, "target", res.Target)
	e.emit(WallEvent{Type: EventDropReverted, Tile: d.id, From: d.tile.Cell, To: res.Target})
	if res.Target != d.tile.Cell {
		e.notify(NoticeInvalidDrop)
	}
}

func (e *Engine) finishRevert() {
	e.revert = nil
	e.revertID = 0
	e.sprites.Raise(0)
}

// cancelRevert stops a running revert and snaps its tile home.
func (e *Engine) cancelRevert() {
	if e.revert == nil {
		return
	}
	e.finishRevert()
	e.syncSprites()
}

// --- Wiring ---

func (e *Engine) onStoreChange(ev WallEvent) {
	if e.drag != nil && ev.Type == EventTileRemoved && ev.Tile == e.drag.id {
		e.drag = nil
		e.ghosts = nil
		e.pointer.dragging = false
	}
	e.syncSprites()
	e.reframe = true
	e.emit(ev)
}

func (e *Engine) syncSprites() {
	hold := e.revertID
	if e.drag != nil {
		hold = e.drag.id
	}
	visible := e.VisibleTiles()
	e.sprites.Sync(visible, hold)

	if e.log.Debug() {
		if groups := Components(visible, e.store.Shape().Family()); len(groups) > 1 {
			e.log.Info("wall is split", "components", len(groups))
		}
	}
}

func (e *Engine) frame() {
	f := e.camera.Update(e.VisibleTiles(), e.store.View(), e.lookup)
	switch f.Kind {
	case FrameSkipped:
		e.log.Info("camera skipped frame: no renderable found")
	case FrameAnimated:
		e.log.Info("camera framing", "zoom", f.Zoom, "focused", f.Focused)
	}
}

func (e *Engine) onCameraSettle(view [6]float64) {
	e.sprites.RefreshCoords(view)
	if r, ok := e.lookup.(CoordRefresher); ok && e.lookup != RenderableLookup(e.sprites) {
		r.RefreshCoords(view)
	}
	e.emit(WallEvent{Type: EventCameraSettled})
}

func (e *Engine) emit(ev WallEvent) {
	for _, s := range e.sinks {
		s.EmitEvent(ev)
	}
	e.handlers.fire(ev)
}

func (e *Engine) notify(key string, args ...any) {
	n := e.catalog.Notice(key, args...)
	e.log.Info("notice", "key", key)
	e.notices.fire(n)
}
