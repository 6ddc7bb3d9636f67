package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/floatwin/internal/drag"
	"github.com/atomicstack/floatwin/internal/format/table"
	"github.com/atomicstack/floatwin/internal/theme"
	"github.com/atomicstack/floatwin/internal/wm"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Window kinds.
const (
	KindDemo     = "demo"
	KindHelp     = "help"
	KindWindows  = "windows"
	KindNote     = "note"
	KindLauncher = "launcher"
)

type demoWindow struct {
	title string
	x, y  drag.Coord
}

// NewDemo returns the plain draggable window opened by the n key.
func NewDemo(title string) Window {
	if title == "" {
		title = "Window"
	}
	return demoWindow{title: title}
}

func (d demoWindow) Kind() string    { return KindDemo }
func (d demoWindow) Props() wm.Props { return wm.Props{"title": d.title} }
func (d demoWindow) Title() string   { return d.title }

func (d demoWindow) Placement() (drag.Coord, drag.Coord) { return d.x, d.y }

func (d demoWindow) View(rc RenderContext) string {
	lines := []string{
		theme.Render(styles.Body, "Drag me by the title bar."),
		theme.Render(styles.Info, fmt.Sprintf("window #%d", rc.ID)),
	}
	return strings.Join(lines, "\n")
}

type helpWindow struct{}

var helpBindings = [][]string{
	{"n", "open a window"},
	{"p", "launcher"},
	{"l", "window list"},
	{"tab", "cycle focus"},
	{"c", "re-center top window"},
	{"w", "close top window"},
	{"W", "close all windows"},
	{"?", "this help"},
	{"q", "quit"},
}

// NewHelp returns the key binding reference window.
func NewHelp() Window { return helpWindow{} }

func (helpWindow) Kind() string    { return KindHelp }
func (helpWindow) Props() wm.Props { return nil }
func (helpWindow) Title() string   { return "Help" }

func (helpWindow) View(RenderContext) string {
	rows := table.Format(helpBindings, nil)
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = theme.Render(styles.Item, row)
	}
	return strings.Join(out, "\n")
}

type windowsWindow struct{}

// NewWindowList returns a live table of the open windows.
func NewWindowList() Window { return windowsWindow{} }

func (windowsWindow) Kind() string    { return KindWindows }
func (windowsWindow) Props() wm.Props { return nil }
func (windowsWindow) Title() string   { return "Windows" }

func (windowsWindow) View(rc RenderContext) string {
	top, hasTop := wm.State{Windows: rc.Windows}.Top()
	rows := make([][]string, 0, len(rc.Windows))
	for _, rec := range rc.Windows {
		mark := " "
		if hasTop && rec.ID == top.ID {
			mark = "*"
		}
		rows = append(rows, []string{
			mark + strconv.Itoa(rec.ID),
			rec.Content.Kind(),
			strconv.Itoa(rec.Z),
			windowTitle(rec.Content),
		})
	}
	header, lines := table.FormatWithHeader([]string{" ID", "KIND", "Z", "TITLE"}, rows,
		[]table.Alignment{table.AlignRight, table.AlignLeft, table.AlignRight, table.AlignLeft})
	out := make([]string, 0, len(lines)+1)
	out = append(out, theme.Render(styles.TableHeader, header))
	for _, line := range lines {
		out = append(out, theme.Render(styles.Item, line))
	}
	return strings.Join(out, "\n")
}

// noteWindow is a scratch pad with a single editable line.
type noteWindow struct {
	title string
	body  string
	x, y  drag.Coord
	lines []string
	input textinput.Model
}

// newNote returns a note window showing body with an input line beneath.
func newNote(title, body string, x, y drag.Coord) *noteWindow {
	if title == "" {
		title = "Note"
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type and press enter"
	ti.CharLimit = 256
	ti.Width = 32
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	n := &noteWindow{title: title, body: body, x: x, y: y, input: ti}
	if body != "" {
		n.lines = strings.Split(body, "\n")
	}
	return n
}

func (n *noteWindow) Kind() string    { return KindNote }
func (n *noteWindow) Props() wm.Props { return wm.Props{"title": n.title, "body": n.body} }
func (n *noteWindow) Title() string   { return n.title }

func (n *noteWindow) Placement() (drag.Coord, drag.Coord) { return n.x, n.y }

func (n *noteWindow) View(rc RenderContext) string {
	out := make([]string, 0, len(n.lines)+2)
	for _, line := range n.lines {
		out = append(out, theme.Render(styles.Body, line))
	}
	if len(out) > 0 {
		out = append(out, "")
	}
	if rc.Focused {
		n.input.Focus()
	} else {
		n.input.Blur()
	}
	out = append(out, n.input.View())
	return strings.Join(out, "\n")
}

func (n *noteWindow) Update(rc RenderContext, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if api, ok := wm.APIFromContext(rc); ok {
			api.Close(rc.ID)
		}
		return true, nil
	case tea.KeyEnter:
		if value := n.input.Value(); value != "" {
			n.lines = append(n.lines, value)
			n.input.Reset()
		}
		return true, nil
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyCtrlC:
		return false, nil
	}
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return true, cmd
}

func windowTitle(content wm.Content) string {
	if w, ok := content.(Window); ok {
		return w.Title()
	}
	return content.Kind()
}
