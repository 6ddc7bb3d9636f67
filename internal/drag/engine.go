// Package drag positions a single floating window: it resolves the initial
// placement and turns pointer drags on the window's handle into coordinates.
package drag

// DefaultHandleSelector marks the drag handle inside a window.
const DefaultHandleSelector = "[data-drag-handle]"

// Config is the declarative configuration of an Engine.
type Config struct {
	InitialX       Coord
	InitialY       Coord
	HandleSelector string
	// OnDrag, when set, observes every position produced by a pointer move.
	OnDrag func(Point)
}

// State is the per-engine drag bookkeeping.
type State struct {
	Dragging  bool
	OffsetX   float64
	OffsetY   float64
	PointerID int
}

// Engine owns one window's position. It is not safe for concurrent use.
type Engine struct {
	cfg      Config
	viewport Viewport

	root   Element
	handle Element

	pos    Point
	state  State
	placed bool
}

// Handle is the imperative capability of an Engine.
type Handle struct {
	e *Engine
}

// New creates an engine. Unset initial coordinates default to Center and an
// empty selector to DefaultHandleSelector.
func New(cfg Config, viewport Viewport) *Engine {
	if !cfg.InitialX.IsSet() {
		cfg.InitialX = Center
	}
	if !cfg.InitialY.IsSet() {
		cfg.InitialY = Center
	}
	if cfg.HandleSelector == "" {
		cfg.HandleSelector = DefaultHandleSelector
	}
	return &Engine{cfg: cfg, viewport: viewport}
}

// Mount attaches the engine to root and resolves the drag handle. When the
// selector matches nothing the whole root acts as the handle.
func (e *Engine) Mount(root Element) {
	if e.root != nil {
		e.Unmount()
	}
	e.root = root
	e.handle = resolveHandle(root, e.cfg.HandleSelector)
}

// Unmount ends any drag in progress, releases pointer capture and detaches
// from the element. A detached engine ignores pointer events.
func (e *Engine) Unmount() {
	e.end()
	e.root = nil
	e.handle = nil
}

// Mounted reports whether the engine is attached to an element.
func (e *Engine) Mounted() bool { return e.root != nil }

func resolveHandle(root Element, selector string) Element {
	if root == nil {
		return nil
	}
	if selector != "" {
		if h, ok := root.Query(selector); ok && h != nil {
			return h
		}
	}
	return root
}

// Layout performs the initial placement from the configured coordinates,
// measuring the element as currently rendered.
func (e *Engine) Layout() {
	if e.root == nil {
		return
	}
	e.pos = e.resolve(e.cfg.InitialX, e.cfg.InitialY)
	e.placed = true
}

// Placed reports whether Layout has run.
func (e *Engine) Placed() bool { return e.placed }

// Position returns the current coordinate.
func (e *Engine) Position() Point { return e.pos }

// State returns the drag bookkeeping.
func (e *Engine) State() State { return e.state }

// Dragging reports whether a drag is in progress.
func (e *Engine) Dragging() bool { return e.state.Dragging }

// Config returns the effective configuration.
func (e *Engine) Config() Config { return e.cfg }

// HandleElement returns the element that starts drags.
func (e *Engine) HandleElement() Element { return e.handle }

// Handle returns the imperative handle for e.
func (e *Engine) Handle() Handle { return Handle{e: e} }

// ResetPosition moves the window. Unset arguments fall back to the configured
// initial values, with Center resolved against the current sizes.
func (h Handle) ResetPosition(x, y Coord) {
	e := h.e
	if e == nil || e.root == nil {
		return
	}
	if !x.IsSet() {
		x = e.cfg.InitialX
	}
	if !y.IsSet() {
		y = e.cfg.InitialY
	}
	e.pos = e.resolve(x, y)
	e.placed = true
}

func (e *Engine) resolve(x, y Coord) Point {
	size := e.root.Bounds().Size()
	var vp Size
	if e.viewport != nil {
		vp = e.viewport.Size()
	}
	return Point{
		X: x.resolve(vp.Width, size.Width),
		Y: y.resolve(vp.Height, size.Height),
	}
}

// HandlePointer feeds one pointer event to the engine and reports whether it
// was consumed.
func (e *Engine) HandlePointer(ev PointerEvent) bool {
	if e.root == nil {
		return false
	}
	switch ev.Kind {
	case PointerDown:
		if ev.Button != ButtonPrimary || e.state.Dragging {
			return false
		}
		if !e.handle.Bounds().Contains(ev.X, ev.Y) {
			return false
		}
		origin := e.root.Bounds().Origin()
		e.state = State{
			Dragging:  true,
			OffsetX:   ev.X - origin.X,
			OffsetY:   ev.Y - origin.Y,
			PointerID: ev.PointerID,
		}
		e.handle.SetPointerCapture(ev.PointerID)
		return true
	case PointerMove:
		if !e.state.Dragging || ev.PointerID != e.state.PointerID {
			return false
		}
		next := Point{X: ev.X - e.state.OffsetX, Y: ev.Y - e.state.OffsetY}
		e.pos = next
		if e.cfg.OnDrag != nil {
			e.cfg.OnDrag(next)
		}
		return true
	case PointerUp, PointerCancel:
		if !e.state.Dragging || ev.PointerID != e.state.PointerID {
			return false
		}
		e.end()
		return true
	}
	return false
}

// LostCapture force-ends a drag when the host stops delivering pointer
// events without a matching release, e.g. on focus loss.
func (e *Engine) LostCapture() bool {
	if !e.state.Dragging {
		return false
	}
	e.end()
	return true
}

func (e *Engine) end() {
	if !e.state.Dragging {
		return
	}
	id := e.state.PointerID
	e.state.Dragging = false
	if e.handle != nil && e.handle.HasPointerCapture(id) {
		e.handle.ReleasePointerCapture(id)
	}
}
