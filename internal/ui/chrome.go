package ui

import (
	"strings"

	"github.com/atomicstack/floatwin/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	// titleRows covers the top border and the title bar; presses there start
	// a drag.
	titleRows        = 2
	closeButtonWidth = 3
	closeButtonInset = closeButtonWidth + 1
	closeGlyph       = "×"
	minInnerWidth    = 20
)

// renderChrome draws content inside a bordered window with a title bar and
// close button. maxInner caps the inner width when positive.
func renderChrome(title, body string, focused bool, maxInner int) string {
	lines := strings.Split(body, "\n")
	inner := minInnerWidth
	if w := lipgloss.Width(title) + closeButtonWidth + 2; w > inner {
		inner = w
	}
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > inner {
			inner = w
		}
	}
	if maxInner > 0 && inner > maxInner {
		inner = maxInner
	}
	if inner < closeButtonWidth+1 {
		inner = closeButtonWidth + 1
	}

	titleStyle, borderStyle := styles.TitleBar, styles.Border
	if focused {
		titleStyle, borderStyle = styles.TitleBarFocused, styles.BorderFocused
	}
	rows := make([]string, 0, len(lines)+1)
	rows = append(rows, renderTitleBar(title, inner, titleStyle))
	for _, line := range lines {
		if ansi.StringWidth(line) > inner {
			line = ansi.Truncate(line, inner, "")
		}
		if pad := inner - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		rows = append(rows, line)
	}
	content := strings.Join(rows, "\n")
	if borderStyle == nil {
		return content
	}
	return borderStyle.Render(content)
}

func renderTitleBar(title string, inner int, style *lipgloss.Style) string {
	room := inner - closeButtonWidth
	label := " " + title
	if lipgloss.Width(label) > room {
		label = truncate.StringWithTail(label, uint(room), "…")
	}
	if pad := room - lipgloss.Width(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}
	button := " " + closeGlyph + " "
	if style == nil {
		return label + button
	}
	closeStyle := *style
	if styles.CloseButton != nil {
		closeStyle = styles.CloseButton.Inherit(*style)
	}
	return style.Render(label) + theme.Render(&closeStyle, button)
}
