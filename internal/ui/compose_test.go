package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func plainRows(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestComposeOverlaysInOrder(t *testing.T) {
	base := []string{"..........", "..........", ".........."}
	got := plainRows(compose(base, 10, 3, []layer{
		{x: 2, y: 0, lines: []string{"aaaa", "aaaa"}},
		{x: 4, y: 1, lines: []string{"bb"}},
	}))
	want := []string{"..aaaa....", "..aabb....", ".........."}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestComposeClipsAtEdges(t *testing.T) {
	base := []string{"......", "......"}
	got := plainRows(compose(base, 6, 2, []layer{
		{x: -2, y: -1, lines: []string{"skip", "abcd"}},
		{x: 4, y: 0, lines: []string{"xyz"}},
		{x: 9, y: 0, lines: []string{"gone"}},
	}))
	want := []string{"cd..xy", "......"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestComposePadsShortBase(t *testing.T) {
	got := plainRows(compose([]string{"ab"}, 4, 2, nil))
	if got[0] != "ab  " || got[1] != "    " {
		t.Fatalf("expected padded rows, got %q", got)
	}
}
