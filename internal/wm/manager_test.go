package wm

import (
	"math/rand"
	"testing"
)

func TestManagerScenario(t *testing.T) {
	m := NewManager()
	a := m.Spawn(Element{Type: "a"})
	if a != 1 {
		t.Fatalf("expected first id 1, got %d", a)
	}
	if rec, _ := m.Lookup(a); rec.Z != 1001 {
		t.Fatalf("expected z 1001, got %d", rec.Z)
	}
	b := m.Spawn(Element{Type: "b"})
	if rec, _ := m.Lookup(b); b != 2 || rec.Z != 1002 {
		t.Fatalf("expected id 2 z 1002, got id %d z %d", b, rec.Z)
	}
	m.Focus(a)
	if rec, _ := m.Lookup(a); rec.Z != 1003 {
		t.Fatalf("expected focused z 1003, got %d", rec.Z)
	}
	m.Close(b)
	windows := m.Windows()
	if len(windows) != 1 || windows[0].ID != a {
		t.Fatalf("expected only window %d, got %#v", a, windows)
	}
	if windows[0].Z != 1003 {
		t.Fatalf("expected z unchanged at 1003, got %d", windows[0].Z)
	}
}

func TestSpawnSingletonReturnsExistingID(t *testing.T) {
	m := NewManager()
	first := m.Spawn(Element{Type: "help", Attrs: Props{"topic": "keys"}})
	m.Spawn(Element{Type: "other"})
	second := m.Spawn(Element{Type: "help", Attrs: Props{"topic": "keys"}})
	if first != second {
		t.Fatalf("expected same id, got %d and %d", first, second)
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 windows, got %d", m.Len())
	}
	top, ok := m.Top()
	if !ok || top.ID != first {
		t.Fatalf("expected deduped window on top, got %#v", top)
	}
	if top.Z != m.State().NextZ {
		t.Fatalf("expected top z to equal watermark %d, got %d", m.State().NextZ, top.Z)
	}
	next := m.Spawn(Element{Type: "fresh"})
	if next != 3 {
		t.Fatalf("expected dedupe to leave id counter untouched, got %d", next)
	}
}

func TestSpawnSingletonDistinguishesProps(t *testing.T) {
	m := NewManager()
	first := m.Spawn(Element{Type: "note", Attrs: Props{"title": "a"}})
	second := m.Spawn(Element{Type: "note", Attrs: Props{"title": "b"}})
	if first == second {
		t.Fatalf("expected distinct windows for different props")
	}
	third := m.Spawn(Element{Type: "note", Attrs: Props{"title": "a", "extra": 1}})
	if third == first {
		t.Fatalf("expected extra prop to defeat dedupe")
	}
}

func TestSpawnSingletonIgnoresChildren(t *testing.T) {
	m := NewManager()
	first := m.Spawn(Element{Type: "panel", Attrs: Props{"title": "x", ChildrenProp: []string{"one"}}})
	second := m.Spawn(Element{Type: "panel", Attrs: Props{"title": "x", ChildrenProp: []string{"two"}}})
	if first != second {
		t.Fatalf("expected children to be ignored, got ids %d and %d", first, second)
	}
}

func TestSpawnNonSingletonAlwaysAllocates(t *testing.T) {
	m := NewManager()
	content := Element{Type: "demo"}
	first := m.Spawn(content, Singleton(false))
	second := m.Spawn(content, Singleton(false))
	if first == second {
		t.Fatalf("expected new id for non-singleton spawn")
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 windows, got %d", m.Len())
	}
}

func TestCloseTwiceIsNoOp(t *testing.T) {
	m := NewManager()
	id := m.Spawn(Element{Type: "a"})
	keep := m.Spawn(Element{Type: "b"})
	m.Close(id)
	before := m.State()
	m.Close(id)
	after := m.State()
	if len(after.Windows) != 1 || after.Windows[0].ID != keep {
		t.Fatalf("unexpected windows after double close: %#v", after.Windows)
	}
	if before.NextZ != after.NextZ || before.Windows[0].ID != after.Windows[0].ID || before.Windows[0].Z != after.Windows[0].Z {
		t.Fatalf("expected second close to change nothing")
	}
}

func TestSpawnSingletonMatchesSameCallback(t *testing.T) {
	m := NewManager()
	onSave := func() {}
	first := m.Spawn(Element{Type: "editor", Attrs: Props{"onSave": onSave}})
	second := m.Spawn(Element{Type: "editor", Attrs: Props{"onSave": onSave}})
	if first != second || m.Len() != 1 {
		t.Fatalf("expected the same callback to dedupe, got ids %d %d and %d windows", first, second, m.Len())
	}
	third := m.Spawn(Element{Type: "editor", Attrs: Props{"onSave": func() {}}})
	if third == first || m.Len() != 2 {
		t.Fatalf("expected a different callback to open a new window, got id %d and %d windows", third, m.Len())
	}
}

func TestFocusUnknownIDKeepsWatermark(t *testing.T) {
	m := NewManager()
	m.Spawn(Element{Type: "a"})
	before := m.State().NextZ
	m.Focus(42)
	if m.State().NextZ != before {
		t.Fatalf("expected watermark %d, got %d", before, m.State().NextZ)
	}
}

func TestFocusTopmostStillAdvances(t *testing.T) {
	m := NewManager()
	id := m.Spawn(Element{Type: "a"})
	m.Focus(id)
	m.Focus(id)
	if rec, _ := m.Lookup(id); rec.Z != 1003 {
		t.Fatalf("expected z 1003 after two focuses, got %d", rec.Z)
	}
}

func TestCloseAllKeepsCounters(t *testing.T) {
	m := NewManager(WithBaseZ(10))
	for i := 0; i < 3; i++ {
		m.Spawn(Element{Type: "demo"}, Singleton(false))
	}
	m.CloseAll()
	if m.Len() != 0 {
		t.Fatalf("expected no windows, got %d", m.Len())
	}
	id := m.Spawn(Element{Type: "demo"})
	if id != 4 {
		t.Fatalf("expected id 4 after closeAll, got %d", id)
	}
	if rec, _ := m.Lookup(id); rec.Z != 14 {
		t.Fatalf("expected z 14, got %d", rec.Z)
	}
}

func TestStackedOrdersBackToFront(t *testing.T) {
	m := NewManager()
	a := m.Spawn(Element{Type: "a"})
	b := m.Spawn(Element{Type: "b"})
	c := m.Spawn(Element{Type: "c"})
	m.Focus(a)
	stacked := m.Stacked()
	want := []int{b, c, a}
	for i, id := range want {
		if stacked[i].ID != id {
			t.Fatalf("expected stack order %v, got %#v", want, stacked)
		}
	}
	if windows := m.Windows(); windows[0].ID != a {
		t.Fatalf("expected insertion order to be kept, got %#v", windows)
	}
}

func TestListenerSeesDedupe(t *testing.T) {
	var actions []Action
	m := NewManager(WithListener(func(a Action, _ State) {
		actions = append(actions, a)
	}))
	m.Spawn(Element{Type: "help"})
	m.Spawn(Element{Type: "help"})
	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(actions))
	}
	if _, ok := actions[0].(OpenAction); !ok {
		t.Fatalf("expected open action first, got %T", actions[0])
	}
	focus, ok := actions[1].(FocusAction)
	if !ok || !focus.Spawned {
		t.Fatalf("expected spawned focus action, got %#v", actions[1])
	}
}

func TestRandomSequencesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	kinds := []string{"a", "b", "c"}
	for run := 0; run < 50; run++ {
		m := NewManager()
		lastZ := m.State().NextZ
		lastID := 0
		for step := 0; step < 200; step++ {
			switch rng.Intn(5) {
			case 0, 1:
				id := m.Spawn(Element{Type: kinds[rng.Intn(len(kinds))]}, Singleton(rng.Intn(2) == 0))
				if id > lastID {
					if id != lastID+1 {
						t.Fatalf("expected id %d, got %d", lastID+1, id)
					}
					lastID = id
				}
			case 2:
				m.Focus(rng.Intn(lastID + 2))
			case 3:
				m.Close(rng.Intn(lastID + 2))
			case 4:
				if rng.Intn(10) == 0 {
					m.CloseAll()
				}
			}
			st := m.State()
			if st.NextZ < lastZ {
				t.Fatalf("watermark decreased from %d to %d", lastZ, st.NextZ)
			}
			lastZ = st.NextZ
			ids := map[int]struct{}{}
			zs := map[int]struct{}{}
			for _, w := range st.Windows {
				if _, dup := ids[w.ID]; dup {
					t.Fatalf("duplicate id %d", w.ID)
				}
				if _, dup := zs[w.Z]; dup {
					t.Fatalf("duplicate z %d", w.Z)
				}
				if w.Z > st.NextZ {
					t.Fatalf("z %d above watermark %d", w.Z, st.NextZ)
				}
				ids[w.ID] = struct{}{}
				zs[w.Z] = struct{}{}
			}
		}
	}
}
