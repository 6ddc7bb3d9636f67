package ui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/atomicstack/floatwin/internal/logging"
	"github.com/atomicstack/floatwin/internal/logging/events"
	"github.com/atomicstack/floatwin/internal/theme"
	uistate "github.com/atomicstack/floatwin/internal/ui/state"
	"github.com/atomicstack/floatwin/internal/wm"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

const launcherPlaceholder = "(type to search)"

// launcherWindow is a fuzzy palette over the configured presets. Selecting
// an entry opens it and closes the palette.
type launcherWindow struct {
	presets []Preset
	list    *uistate.List
	caret   cursor.Model
}

// NewLauncher returns a launcher over presets.
func NewLauncher(presets []Preset) Window {
	items := make([]uistate.Item, len(presets))
	for i, p := range presets {
		items[i] = uistate.Item{ID: strconv.Itoa(i), Label: p.Label()}
	}
	c := cursor.New()
	c.SetMode(cursor.CursorStatic)
	c.Focus()
	return &launcherWindow{
		presets: append([]Preset(nil), presets...),
		list:    uistate.NewList(items),
		caret:   c,
	}
}

func (l *launcherWindow) Kind() string    { return KindLauncher }
func (l *launcherWindow) Props() wm.Props { return nil }
func (l *launcherWindow) Title() string   { return "Launcher" }

func (l *launcherWindow) View(rc RenderContext) string {
	lines := []string{l.prompt(rc.Focused)}
	if len(l.list.Items) == 0 {
		msg := "(no presets)"
		if l.list.Query != "" {
			msg = fmt.Sprintf("No matches for %q", l.list.Query)
		}
		lines = append(lines, theme.Render(styles.Info, msg))
		return strings.Join(lines, "\n")
	}
	for i, item := range l.list.Items {
		if i == l.list.Cursor {
			lines = append(lines, theme.Render(styles.SelectedItem, "▌ "+item.Label))
			continue
		}
		lines = append(lines, theme.Render(styles.Item, "  "+item.Label))
	}
	return strings.Join(lines, "\n")
}

func (l *launcherWindow) prompt(focused bool) string {
	prompt := theme.Render(styles.FilterPrompt, "» ")
	if styles.Filter != nil {
		l.caret.TextStyle = *styles.Filter
	}
	runes := []rune(l.list.Query)
	if len(runes) == 0 {
		if !focused {
			return prompt + theme.Render(styles.FilterPlaceholder, launcherPlaceholder)
		}
		placeholder := []rune(launcherPlaceholder)
		if styles.FilterPlaceholder != nil {
			l.caret.TextStyle = *styles.FilterPlaceholder
		}
		return prompt + l.renderCaret(string(placeholder[0])) + theme.Render(styles.FilterPlaceholder, string(placeholder[1:]))
	}
	if !focused {
		return prompt + theme.Render(styles.Filter, l.list.Query)
	}
	pos := l.list.QueryCursor
	before := theme.Render(styles.Filter, string(runes[:pos]))
	caretRune, after := " ", ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = theme.Render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + l.renderCaret(caretRune) + after
}

func (l *launcherWindow) renderCaret(char string) string {
	l.caret.SetChar(char)
	base := l.caret.TextStyle.Inline(true)
	if l.caret.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Inline(true)).Render(char)
	}
	return base.Reverse(true).Render(char)
}

func (l *launcherWindow) Update(rc RenderContext, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		wm.FromContext(rc).Close(rc.ID)
		return true, nil
	case "enter":
		l.launch(rc)
		return true, nil
	case "up", "ctrl+p":
		l.list.MoveCursor(-1)
		return true, nil
	case "down", "ctrl+n":
		l.list.MoveCursor(1)
		return true, nil
	case "ctrl+u":
		return l.filtered(l.list.ClearQuery()), nil
	case "ctrl+w":
		return l.filtered(l.list.DeleteWordBackward()), nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return l.filtered(l.list.DeleteRuneBackward()), nil
	case tea.KeySpace:
		return l.filtered(l.list.InsertText(" ")), nil
	case tea.KeyLeft:
		if l.list.QueryCursor > 0 {
			l.list.QueryCursor--
		}
		return true, nil
	case tea.KeyRight:
		if l.list.QueryCursor < len([]rune(l.list.Query)) {
			l.list.QueryCursor++
		}
		return true, nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		return l.filtered(l.list.InsertText(string(msg.Runes))), nil
	}
	return false, nil
}

func (l *launcherWindow) filtered(changed bool) bool {
	if changed {
		events.Launcher.Filter(l.list.Query, len(l.list.Items))
	}
	return true
}

func (l *launcherWindow) launch(rc RenderContext) {
	item, ok := l.list.Selected()
	if !ok {
		return
	}
	idx, err := strconv.Atoi(item.ID)
	if err != nil || idx < 0 || idx >= len(l.presets) {
		return
	}
	preset := l.presets[idx]
	content, err := preset.Content()
	if err != nil {
		logging.Error(err)
		return
	}
	api := wm.FromContext(rc)
	id := api.Spawn(content, wm.Singleton(preset.Singleton))
	events.Launcher.Select(preset.Label(), id)
	api.Close(rc.ID)
}
