package ui

import (
	"strings"

	"github.com/atomicstack/floatwin/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	backdropTitle = "floatwin"
	hintText      = "n new · p launcher · l list · ? help · tab cycle · c center · w close · W close all · q quit"
)

// View implements tea.Model.
func (m *Model) View() string {
	if !m.viewportKnown() {
		return ""
	}
	base := strings.Split(m.backdrop(), "\n")
	stacked := m.manager.Stacked()
	layers := make([]layer, 0, len(stacked))
	for _, rec := range stacked {
		f, ok := m.frames[rec.ID]
		if !ok || !f.engine.Placed() || f.view == "" {
			continue
		}
		x, y := f.origin()
		layers = append(layers, layer{x: x, y: y, lines: strings.Split(f.view, "\n")})
	}
	return compose(base, m.width, m.height, layers)
}

func (m *Model) backdrop() string {
	bodyHeight := m.height - 1
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center,
		theme.Render(styles.Backdrop, backdropTitle))
	status := m.statusLine()
	if bodyHeight == 0 {
		return status
	}
	return body + "\n" + status
}

func (m *Model) statusLine() string {
	text, style := hintText, styles.Hint
	if m.errMsg != "" {
		text, style = m.errMsg, styles.Error
	} else if info := m.currentInfo(); info != "" {
		text, style = info, styles.Info
	}
	if m.width > 0 && lipgloss.Width(text) > m.width {
		text = truncate.StringWithTail(text, uint(m.width), "…")
	}
	return theme.Render(style, text)
}

func measure(view string) (int, int) {
	if view == "" {
		return 0, 0
	}
	return lipgloss.Width(view), lipgloss.Height(view)
}
