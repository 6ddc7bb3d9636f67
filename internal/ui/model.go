package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/floatwin/internal/drag"
	"github.com/atomicstack/floatwin/internal/logging"
	"github.com/atomicstack/floatwin/internal/logging/events"
	"github.com/atomicstack/floatwin/internal/theme"
	"github.com/atomicstack/floatwin/internal/wm"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	// Width and Height pin the viewport; zero follows the terminal.
	Width  int
	Height int
	// TerminalWidth and TerminalHeight seed an unpinned viewport until the
	// first tea.WindowSizeMsg arrives.
	TerminalWidth  int
	TerminalHeight int
	// Drag is the placement and handle configuration shared by every window.
	// Content implementing Placer overrides the initial coordinates.
	Drag    drag.Config
	BaseZ   int
	Presets []Preset
}

// Model implements the Bubble Tea model hosting the floating windows.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	manager *wm.Manager
	ctx     context.Context
	frames  map[int]*frame
	drag    drag.Config
	presets []Preset

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel creates an empty desktop.
func NewModel(opts Options) *Model {
	m := &Model{
		frames:  map[int]*frame{},
		drag:    opts.Drag,
		presets: opts.Presets,
	}
	if m.presets == nil {
		m.presets = DefaultPresets()
	}
	managerOpts := []wm.Option{wm.WithListener(m.traceAction)}
	if opts.BaseZ != 0 {
		managerOpts = append(managerOpts, wm.WithBaseZ(opts.BaseZ))
	}
	m.manager = wm.NewManager(managerOpts...)
	m.ctx = wm.WithAPI(context.Background(), m.manager)
	m.width, m.height = opts.TerminalWidth, opts.TerminalHeight
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Manager exposes the window manager driving the model.
func (m *Model) Manager() *wm.Manager { return m.manager }

// Context returns the context carrying the window manager API.
func (m *Model) Context() context.Context { return m.ctx }

// Position returns the placed position of window id. Layout and re-centering
// snap windows to whole cells, so this is the cell the window is drawn at.
func (m *Model) Position(id int) (drag.Point, bool) {
	f, ok := m.frames[id]
	if !ok || !f.engine.Placed() {
		return drag.Point{}, false
	}
	return f.engine.Position(), true
}

// Bounds returns the on-screen box of window id.
func (m *Model) Bounds(id int) (drag.Rect, bool) {
	f, ok := m.frames[id]
	if !ok || !f.engine.Placed() {
		return drag.Rect{}, false
	}
	return f.bounds(), true
}

// Dragging reports whether window id is being dragged.
func (m *Model) Dragging(id int) bool {
	f, ok := m.frames[id]
	return ok && f.engine.Dragging()
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.syncFrames()
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.BlurMsg{}):       m.handleBlurMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.syncFrames()
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// syncFrames mounts a frame for every new record, unmounts frames whose
// record is gone, re-renders every frame and places the ones that have not
// been laid out yet.
func (m *Model) syncFrames() {
	records := m.manager.Windows()
	live := make(map[int]struct{}, len(records))
	for _, rec := range records {
		live[rec.ID] = struct{}{}
		if _, ok := m.frames[rec.ID]; ok {
			continue
		}
		m.frames[rec.ID] = m.newFrame(rec)
	}
	for id, f := range m.frames {
		if _, ok := live[id]; ok {
			continue
		}
		if f.engine.Dragging() {
			events.Drag.End(id, events.DragReasonUnmount)
		}
		f.engine.Unmount()
		delete(m.frames, id)
		logging.Debug("window unmounted", map[string]interface{}{"id": id, "kind": f.content.Kind()})
	}
	top, _ := m.manager.Top()
	for _, rec := range records {
		f := m.frames[rec.ID]
		m.renderFrame(f, rec, records, rec.ID == top.ID)
		if !f.engine.Placed() && m.viewportKnown() {
			f.engine.Layout()
			p := f.snap()
			events.Drag.Layout(rec.ID, p.X, p.Y)
		}
	}
}

func (m *Model) newFrame(rec wm.Record) *frame {
	cfg := m.drag
	id := rec.ID
	cfg.OnDrag = func(p drag.Point) {
		events.Drag.Move(id, p.X, p.Y)
	}
	return newFrame(id, rec.Content, cfg, drag.ViewportFunc(m.viewport))
}

func (m *Model) renderFrame(f *frame, rec wm.Record, records []wm.Record, focused bool) {
	rc := m.renderContext(rec.ID, records, focused)
	var body string
	title := rec.Content.Kind()
	if w, ok := rec.Content.(Window); ok {
		title = w.Title()
		body = w.View(rc)
	}
	view := renderChrome(title, body, focused, rc.Width)
	width, height := measure(view)
	f.resize(view, width, height)
}

func (m *Model) renderContext(id int, records []wm.Record, focused bool) RenderContext {
	inner := 0
	if m.width > 2 {
		inner = m.width - 2
	}
	return RenderContext{
		Context: m.ctx,
		ID:      id,
		Width:   inner,
		Focused: focused,
		Windows: records,
	}
}

func (m *Model) viewport() drag.Size {
	return drag.Size{Width: float64(m.width), Height: float64(m.height)}
}

func (m *Model) viewportKnown() bool {
	return m.width > 0 && m.height > 0
}

func (m *Model) traceAction(action wm.Action, next wm.State) {
	switch a := action.(type) {
	case wm.OpenAction:
		events.Window.Spawn(a.ID, a.Content.Kind(), zOf(next, a.ID))
	case wm.FocusAction:
		if a.Spawned {
			kind := ""
			if rec, ok := lookup(next, a.ID); ok {
				kind = rec.Content.Kind()
			}
			events.Window.Dedupe(a.ID, kind, zOf(next, a.ID))
			return
		}
		events.Window.Focus(a.ID, zOf(next, a.ID))
	case wm.CloseAction:
		events.Window.Close(a.ID, len(next.Windows))
	case wm.CloseAllAction:
		events.Window.CloseAll(next.NextZ)
	}
}

func lookup(s wm.State, id int) (wm.Record, bool) {
	for _, rec := range s.Windows {
		if rec.ID == id {
			return rec, true
		}
	}
	return wm.Record{}, false
}

func zOf(s wm.State, id int) int {
	rec, _ := lookup(s, id)
	return rec.Z
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}

func (m *Model) handleBlurMsg(tea.Msg) tea.Cmd {
	for id, f := range m.frames {
		if f.engine.LostCapture() {
			events.Drag.End(id, events.DragReasonBlur)
		}
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
