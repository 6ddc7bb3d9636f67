package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/atomicstack/floatwin/internal/drag"
	"github.com/atomicstack/floatwin/internal/wm"
	tea "github.com/charmbracelet/bubbletea"
)

func launcherContext(t *testing.T, m *wm.Manager, id int) RenderContext {
	t.Helper()
	return RenderContext{
		Context: wm.WithAPI(context.Background(), m),
		ID:      id,
		Focused: true,
		Windows: m.Windows(),
	}
}

func TestLauncherFiltersAndMovesCursor(t *testing.T) {
	m := wm.NewManager()
	l := NewLauncher(DefaultPresets()).(*launcherWindow)
	id := m.Spawn(l)
	rc := launcherContext(t, m, id)

	for _, r := range "list" {
		if handled, _ := l.Update(rc, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}); !handled {
			t.Fatalf("expected rune %q to be handled", r)
		}
	}
	if len(l.list.Items) != 1 || l.list.Items[0].Label != "Window list" {
		t.Fatalf("unexpected filter result %#v", l.list.Items)
	}
	if view := l.View(rc); !strings.Contains(view, "Window list") || strings.Contains(view, "Help") {
		t.Fatalf("unexpected launcher view %q", view)
	}

	l.Update(rc, tea.KeyMsg{Type: tea.KeyCtrlU})
	if l.list.Query != "" || len(l.list.Items) != len(DefaultPresets()) {
		t.Fatalf("expected ctrl+u to clear the query, got %q", l.list.Query)
	}
	l.Update(rc, tea.KeyMsg{Type: tea.KeyUp})
	if item, _ := l.list.Selected(); item.Label != "Help" {
		t.Fatalf("expected cursor to wrap to the last preset, got %q", item.Label)
	}
	if handled, _ := l.Update(rc, tea.KeyMsg{Type: tea.KeyTab}); handled {
		t.Fatal("expected tab to fall through to the global bindings")
	}
}

func TestLauncherSelectsSingletonPreset(t *testing.T) {
	m := wm.NewManager()
	existing := m.Spawn(NewHelp())
	l := NewLauncher(DefaultPresets())
	id := m.Spawn(l)
	rc := launcherContext(t, m, id)

	for _, r := range "help" {
		l.(Updater).Update(rc, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	l.(Updater).Update(rc, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Len() != 1 {
		t.Fatalf("expected launcher closed and help reused, got %d windows", m.Len())
	}
	top, _ := m.Top()
	if top.ID != existing {
		t.Fatalf("expected existing help %d focused, got %d", existing, top.ID)
	}
}

func TestLauncherWithoutManagerPanics(t *testing.T) {
	l := NewLauncher(DefaultPresets()).(Updater)
	defer func() {
		if recover() == nil {
			t.Fatal("expected selecting outside a manager context to panic")
		}
	}()
	l.Update(RenderContext{Context: context.Background()}, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestPresetContent(t *testing.T) {
	w, err := Preset{Kind: KindNote, Title: "Todo", Body: "a\nb", InitialX: drag.Offset(3)}.Content()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Kind() != KindNote || w.Title() != "Todo" {
		t.Fatalf("unexpected note %q/%q", w.Kind(), w.Title())
	}
	x, y := w.(Placer).Placement()
	if x != drag.Offset(3) || y.IsSet() {
		t.Fatalf("unexpected placement %v,%v", x, y)
	}
	if _, err := (Preset{Kind: "bogus"}).Content(); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if label := (Preset{Kind: KindHelp}).Label(); label != KindHelp {
		t.Fatalf("expected kind as fallback label, got %q", label)
	}
}
