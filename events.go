package tilewall

// WallEvent is delivered to EventSinks and OnEvent/OnChange handlers after the
// change it describes has been applied.
type WallEvent struct {
	Type EventType
	// Tile is the tile the event is about (0 for shape and overview changes).
	Tile TileID
	// Other is the second tile of a swap.
	Other TileID
	// From and To are the cells involved in a move or swap. For a swap, From
	// is where Tile came from and To where it went; Other took From's place
	// in reverse.
	From, To Cell
	// Shape is the active shape after EventShapeChanged.
	Shape Shape
	// View is the view state after EventFocusChanged.
	View ViewState
}

// EventSink receives wall events. ecs.NewDonburiSink publishes them into a
// donburi world.
type EventSink interface {
	EmitEvent(event WallEvent)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(WallEvent)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event WallEvent) { f(event) }

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

type handlerRegistry[T any] struct {
	handlers []handler[T]
	nextID   uint32
}

// add registers fn and returns its removal handle.
func (r *handlerRegistry[T]) add(fn func(T)) CallbackHandle {
	r.nextID++
	r.handlers = append(r.handlers, handler[T]{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r}
}

// fire calls every handler in registration order.
func (r *handlerRegistry[T]) fire(v T) {
	hs := r.handlers
	for i := range hs {
		hs[i].fn(v)
	}
}

func (r *handlerRegistry[T]) remove(id uint32) {
	s := r.handlers
	for i := range s {
		if s[i].id == id {
			// Fresh slice so an in-flight fire keeps its own snapshot.
			out := make([]handler[T], 0, len(s)-1)
			out = append(out, s[:i]...)
			r.handlers = append(out, s[i+1:]...)
			return
		}
	}
}

type remover interface {
	remove(id uint32)
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id  uint32
	reg remover
}

// Remove unregisters this callback so it no longer fires. Removing twice, or
// removing the zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.id)
}
