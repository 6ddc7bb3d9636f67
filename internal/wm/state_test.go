package wm

import (
	"context"
	"errors"
	"testing"
)

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := State{NextZ: 5}
	s = Reduce(s, OpenAction{ID: 1, Content: Element{Type: "a"}})
	s = Reduce(s, OpenAction{ID: 2, Content: Element{Type: "b"}})
	snapshot := cloneRecords(s.Windows)

	focused := Reduce(s, FocusAction{ID: 1})
	if s.Windows[0].Z != snapshot[0].Z {
		t.Fatalf("focus mutated input state")
	}
	if focused.Windows[0].Z != 8 || focused.NextZ != 8 {
		t.Fatalf("expected z 8, got %#v", focused)
	}

	closed := Reduce(focused, CloseAction{ID: 1})
	if len(focused.Windows) != 2 {
		t.Fatalf("close mutated input state")
	}
	if len(closed.Windows) != 1 || closed.Windows[0].ID != 2 || closed.Windows[0].Z != 7 {
		t.Fatalf("unexpected state after close: %#v", closed)
	}
}

func TestReduceCloseAllKeepsWatermark(t *testing.T) {
	s := Reduce(State{NextZ: 3}, OpenAction{ID: 1})
	s = Reduce(s, CloseAllAction{})
	if len(s.Windows) != 0 || s.NextZ != 4 {
		t.Fatalf("unexpected state %#v", s)
	}
}

func TestReduceUnknownIDs(t *testing.T) {
	s := Reduce(State{NextZ: 0}, OpenAction{ID: 1})
	for _, action := range []Action{FocusAction{ID: 9}, CloseAction{ID: 9}} {
		next := Reduce(s, action)
		if next.NextZ != s.NextZ || len(next.Windows) != 1 {
			t.Fatalf("expected %T on unknown id to be a no-op, got %#v", action, next)
		}
	}
}

func TestShallowEqual(t *testing.T) {
	shared := []int{1, 2}
	m := map[string]int{"a": 1}
	ptr := &struct{}{}
	fn := func() {}
	other := func() {}
	var nilFn func()
	cases := []struct {
		name string
		a, b any
		want bool
	}{
		{"ints", 1, 1, true},
		{"different ints", 1, 2, false},
		{"mixed types", 1, int64(1), false},
		{"strings", "x", "x", true},
		{"nil", nil, nil, true},
		{"nil and value", nil, 0, false},
		{"same slice", shared, shared, true},
		{"equal slices different arrays", []int{1, 2}, []int{1, 2}, false},
		{"same map", m, m, true},
		{"equal maps", map[string]int{"a": 1}, map[string]int{"a": 1}, false},
		{"same pointer", ptr, ptr, true},
		{"same func", fn, fn, true},
		{"different funcs", fn, other, false},
		{"nil funcs", nilFn, nilFn, true},
		{"nil and non-nil func", nilFn, fn, false},
		{"comparable structs", struct{ A int }{1}, struct{ A int }{1}, true},
		{"uncomparable structs", struct{ A []int }{shared}, struct{ A []int }{shared}, false},
	}
	for _, tc := range cases {
		if got := ShallowEqual(tc.a, tc.b); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestEquivalentRequiresSameKind(t *testing.T) {
	if Equivalent(Element{Type: "a"}, Element{Type: "b"}) {
		t.Fatalf("expected different kinds to differ")
	}
	if !Equivalent(Element{Type: "a"}, Element{Type: "a", Attrs: Props{}}) {
		t.Fatalf("expected nil and empty props to match")
	}
}

func TestFromContextPanicsWithoutManager(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNoManager) {
			t.Fatalf("expected ErrNoManager panic, got %v", r)
		}
	}()
	FromContext(context.Background())
}

func TestFromContextReturnsAPI(t *testing.T) {
	m := NewManager()
	ctx := WithAPI(context.Background(), m)
	api := FromContext(ctx)
	id := api.Spawn(Element{Type: "a"})
	if _, ok := m.Lookup(id); !ok {
		t.Fatalf("expected spawn through context API to reach manager")
	}
}
