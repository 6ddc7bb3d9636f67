package ui

import (
	"fmt"

	"github.com/atomicstack/floatwin/internal/drag"
)

// Preset describes a window the launcher can open.
type Preset struct {
	Name      string
	Kind      string
	Title     string
	Body      string
	Singleton bool
	InitialX  drag.Coord
	InitialY  drag.Coord
}

// PresetKinds lists the kinds a preset may name.
func PresetKinds() []string {
	return []string{KindDemo, KindNote, KindHelp, KindWindows}
}

// DefaultPresets is the launcher list used when no preset file is given.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "Scratch note", Kind: KindNote, Title: "Scratch"},
		{Name: "Demo window", Kind: KindDemo},
		{Name: "Window list", Kind: KindWindows, Singleton: true},
		{Name: "Help", Kind: KindHelp, Singleton: true},
	}
}

// Label is the text shown for p in the launcher.
func (p Preset) Label() string {
	switch {
	case p.Name != "":
		return p.Name
	case p.Title != "":
		return p.Title
	default:
		return p.Kind
	}
}

// Content builds a fresh window for p.
func (p Preset) Content() (Window, error) {
	switch p.Kind {
	case KindDemo:
		d := NewDemo(p.Title).(demoWindow)
		d.x, d.y = p.InitialX, p.InitialY
		return d, nil
	case KindNote:
		return newNote(p.Title, p.Body, p.InitialX, p.InitialY), nil
	case KindHelp:
		return NewHelp(), nil
	case KindWindows:
		return NewWindowList(), nil
	default:
		return nil, fmt.Errorf("unknown window kind %q", p.Kind)
	}
}
