package ui

import (
	"github.com/atomicstack/floatwin/internal/drag"
	"github.com/atomicstack/floatwin/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// The terminal reports a single pointer.
const mousePointerID = 1

func pointerEvent(msg tea.MouseMsg) (drag.PointerEvent, bool) {
	ev := drag.PointerEvent{
		PointerID: mousePointerID,
		X:         float64(msg.X),
		Y:         float64(msg.Y),
	}
	switch msg.Action {
	case tea.MouseActionPress:
		ev.Kind = drag.PointerDown
		switch msg.Button {
		case tea.MouseButtonLeft:
			ev.Button = drag.ButtonPrimary
		case tea.MouseButtonMiddle:
			ev.Button = drag.ButtonAuxiliary
		case tea.MouseButtonRight:
			ev.Button = drag.ButtonSecondary
		default:
			// wheel and extra buttons
			return drag.PointerEvent{}, false
		}
	case tea.MouseActionMotion:
		ev.Kind = drag.PointerMove
	case tea.MouseActionRelease:
		ev.Kind = drag.PointerUp
	default:
		return drag.PointerEvent{}, false
	}
	return ev, true
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	ev, ok := pointerEvent(mouse)
	if !ok {
		return nil
	}
	if f := m.captureOwner(ev.PointerID); f != nil {
		m.deliver(f, ev)
		return nil
	}
	if ev.Kind != drag.PointerDown {
		return nil
	}
	f := m.hitTest(ev.X, ev.Y)
	if f == nil {
		return nil
	}
	m.manager.Focus(f.id)
	if ev.Button == drag.ButtonPrimary && f.closeBounds().Contains(ev.X, ev.Y) {
		m.manager.Close(f.id)
		return nil
	}
	m.deliver(f, ev)
	return nil
}

func (m *Model) deliver(f *frame, ev drag.PointerEvent) {
	wasDragging := f.engine.Dragging()
	if !f.engine.HandlePointer(ev) {
		return
	}
	switch {
	case !wasDragging && f.engine.Dragging():
		st := f.engine.State()
		events.Drag.Start(f.id, st.OffsetX, st.OffsetY)
	case wasDragging && !f.engine.Dragging():
		reason := events.DragReasonRelease
		if ev.Kind == drag.PointerCancel {
			reason = events.DragReasonCancel
		}
		events.Drag.End(f.id, reason)
	}
}

// captureOwner returns the frame whose handle holds pointerID.
func (m *Model) captureOwner(pointerID int) *frame {
	for _, f := range m.frames {
		if f.captured(pointerID) {
			return f
		}
	}
	return nil
}

// hitTest returns the topmost placed frame containing (x, y).
func (m *Model) hitTest(x, y float64) *frame {
	stacked := m.manager.Stacked()
	for i := len(stacked) - 1; i >= 0; i-- {
		f, ok := m.frames[stacked[i].ID]
		if !ok || !f.engine.Placed() {
			continue
		}
		if f.bounds().Contains(x, y) {
			return f
		}
	}
	return nil
}
