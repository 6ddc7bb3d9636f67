package ui

import (
	"fmt"

	"github.com/atomicstack/floatwin/internal/drag"
	"github.com/atomicstack/floatwin/internal/logging/events"
	"github.com/atomicstack/floatwin/internal/wm"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	key := keyMsg.String()
	top, hasTop := m.manager.Top()
	if hasTop {
		events.UI.Key(key, top.ID)
	} else {
		events.UI.Key(key, 0)
	}
	m.errMsg = ""

	if key == "ctrl+c" {
		return m.quit()
	}
	if hasTop {
		if updater, ok := top.Content.(Updater); ok {
			rc := m.renderContext(top.ID, m.manager.Windows(), true)
			if handled, cmd := updater.Update(rc, keyMsg); handled {
				return cmd
			}
		}
	}

	switch key {
	case "q":
		return m.quit()
	case "n":
		m.manager.Spawn(NewDemo(""), wm.Singleton(false))
	case "?":
		m.manager.Spawn(NewHelp())
	case "l":
		m.manager.Spawn(NewWindowList())
	case "p":
		if len(m.presets) == 0 {
			m.errMsg = "no presets configured"
			return nil
		}
		m.manager.Spawn(NewLauncher(m.presets))
	case "tab":
		m.cycleFocus()
	case "c":
		m.recenterTop()
	case "w":
		if hasTop {
			m.manager.Close(top.ID)
		}
	case "W":
		if n := m.manager.Len(); n > 0 {
			m.manager.CloseAll()
			m.setInfo(fmt.Sprintf("closed %d windows", n))
		}
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	events.App.Quit(m.manager.Len())
	return tea.Quit
}

// cycleFocus raises the lowest window.
func (m *Model) cycleFocus() {
	stacked := m.manager.Stacked()
	if len(stacked) < 2 {
		return
	}
	m.manager.Focus(stacked[0].ID)
}

func (m *Model) recenterTop() {
	top, ok := m.manager.Top()
	if !ok {
		return
	}
	f, ok := m.frames[top.ID]
	if !ok || !f.engine.Placed() {
		return
	}
	f.engine.Handle().ResetPosition(drag.Unset, drag.Unset)
	p := f.snap()
	events.Drag.Reset(top.ID, p.X, p.Y)
}
