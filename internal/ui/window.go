package ui

import (
	"context"
	"math"

	"github.com/atomicstack/floatwin/internal/drag"
	"github.com/atomicstack/floatwin/internal/wm"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderContext is handed to window content on every render and key press.
// The embedded context carries the window manager API.
type RenderContext struct {
	context.Context
	// ID is the id of the window being rendered.
	ID int
	// Width is the widest body the viewport can show, 0 when unknown.
	Width   int
	Focused bool
	Windows []wm.Record
}

// Window is content the UI knows how to draw inside window chrome.
type Window interface {
	wm.Content
	Title() string
	View(rc RenderContext) string
}

// Updater is implemented by content that consumes key presses while it is
// the topmost window. It reports whether the key was handled.
type Updater interface {
	Update(rc RenderContext, msg tea.KeyMsg) (bool, tea.Cmd)
}

// Placer lets content override the configured initial placement.
type Placer interface {
	Placement() (x, y drag.Coord)
}

// frame is the on-screen state of one window record.
type frame struct {
	id      int
	content wm.Content
	engine  *drag.Engine

	root  *box
	title *box
	close drag.Rect

	view   string
	width  int
	height int
}

func (f *frame) origin() (int, int) {
	p := f.engine.Position()
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

func (f *frame) bounds() drag.Rect {
	return f.root.Bounds()
}

func (f *frame) closeBounds() drag.Rect {
	x, y := f.origin()
	return f.close.Offset(float64(x), float64(y))
}

func (f *frame) captured(pointerID int) bool {
	handle := f.engine.HandleElement()
	return handle != nil && handle.HasPointerCapture(pointerID)
}

// snap moves a placed window whose position falls between cells onto the
// cell it is drawn at.
func (f *frame) snap() drag.Point {
	p := f.engine.Position()
	x, y := math.Round(p.X), math.Round(p.Y)
	if x != p.X || y != p.Y {
		f.engine.Handle().ResetPosition(drag.Offset(x), drag.Offset(y))
	}
	return f.engine.Position()
}

// box is a rectangular region of a frame, positioned relative to the frame
// origin.
type box struct {
	owner    *frame
	selector string
	rel      drag.Rect
	children []*box
	captures map[int]struct{}
}

func newBox(owner *frame, selector string) *box {
	return &box{owner: owner, selector: selector, captures: map[int]struct{}{}}
}

func (b *box) Bounds() drag.Rect {
	x, y := b.owner.origin()
	return b.rel.Offset(float64(x), float64(y))
}

func (b *box) Query(selector string) (drag.Element, bool) {
	for _, child := range b.children {
		if child.selector == selector {
			return child, true
		}
		if found, ok := child.Query(selector); ok {
			return found, true
		}
	}
	return nil, false
}

func (b *box) SetPointerCapture(pointerID int) {
	b.captures[pointerID] = struct{}{}
}

func (b *box) ReleasePointerCapture(pointerID int) {
	delete(b.captures, pointerID)
}

func (b *box) HasPointerCapture(pointerID int) bool {
	_, ok := b.captures[pointerID]
	return ok
}

func newFrame(id int, content wm.Content, cfg drag.Config, viewport drag.Viewport) *frame {
	f := &frame{id: id, content: content}
	if placer, ok := content.(Placer); ok {
		x, y := placer.Placement()
		if x.IsSet() {
			cfg.InitialX = x
		}
		if y.IsSet() {
			cfg.InitialY = y
		}
	}
	// The title bar carries the default marker. Any other selector matches
	// nothing and the engine falls back to the whole window.
	f.root = newBox(f, "")
	f.title = newBox(f, drag.DefaultHandleSelector)
	f.root.children = []*box{f.title}
	f.engine = drag.New(cfg, viewport)
	f.engine.Mount(f.root)
	return f
}

// resize records the rendered chrome and the regions inside it.
func (f *frame) resize(view string, width, height int) {
	f.view = view
	f.width = width
	f.height = height
	f.root.rel = drag.Rect{Width: float64(width), Height: float64(height)}
	f.title.rel = drag.Rect{Width: float64(width), Height: titleRows}
	f.close = drag.Rect{X: float64(width - closeButtonInset), Y: 1, Width: closeButtonWidth, Height: 1}
}
