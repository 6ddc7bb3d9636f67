package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/floatwin/internal/drag"
	"github.com/atomicstack/floatwin/internal/ui"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.InitialX != drag.Center || cfg.App.InitialY != drag.Center {
		t.Fatalf("expected centered defaults, got %v,%v", cfg.App.InitialX, cfg.App.InitialY)
	}
	if cfg.App.HandleSelector != drag.DefaultHandleSelector {
		t.Fatalf("unexpected handle %q", cfg.App.HandleSelector)
	}
	if cfg.App.BaseZ != 1000 || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected defaults %+v %+v", cfg.App, cfg.Logging)
	}
	if cfg.App.Presets != nil {
		t.Fatalf("expected no presets without a file, got %#v", cfg.App.Presets)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate: %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"FLOATWIN_WIDTH=100",
		"FLOATWIN_HEIGHT=40",
		"FLOATWIN_INITIAL_X=7",
		"FLOATWIN_TRACE=true",
		"FLOATWIN_LOG_LEVEL=debug",
		"MALFORMED",
	}
	cfg, err := LoadArgs([]string{"-width", "90", "-initial-y", "2.5", "-base-z", "10"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 90 || cfg.App.Height != 40 {
		t.Fatalf("expected flag width and env height, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.InitialX != drag.Offset(7) || cfg.App.InitialY != drag.Offset(2.5) {
		t.Fatalf("unexpected coords %v,%v", cfg.App.InitialX, cfg.App.InitialY)
	}
	if cfg.App.BaseZ != 10 || !cfg.Logging.Trace || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected config %+v %+v", cfg.App, cfg.Logging)
	}
	if cfg.Flags["width"] != "90" || cfg.Flags["initialY"] != "2.5" {
		t.Fatalf("unexpected flags %#v", cfg.Flags)
	}
}

func TestLoadArgsErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"negative width", []string{"-width", "-1"}, "width must be >= 0"},
		{"negative height", []string{"-height", "-2"}, "height must be >= 0"},
		{"bad coord", []string{"-initial-x", "left"}, "initial-x"},
		{"missing presets", []string{"-presets", filepath.Join(t.TempDir(), "nope.yaml")}, "read presets"},
		{"unknown flag", []string{"-bogus"}, "bogus"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadArgs(tc.args, nil)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs([]string{"-log-level", "loud"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected unknown log level to fail validation")
	}
	cfg, _ = LoadArgs([]string{"-handle", " "}, nil)
	if err := Validate(cfg); err == nil {
		t.Fatal("expected blank handle to fail validation")
	}
}

func TestLoadPresetsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	doc := `windows:
  - kind: note
    title: Scratch
    body: "free text"
    singleton: false
    initial_x: 4
    initial_y: center
  - name: Keys
    kind: help
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write presets: %v", err)
	}
	cfg, err := LoadArgs([]string{"-presets", path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []ui.Preset{
		{Kind: ui.KindNote, Title: "Scratch", Body: "free text", InitialX: drag.Offset(4), InitialY: drag.Center},
		{Name: "Keys", Kind: ui.KindHelp, Singleton: true},
	}
	got := cfg.App.Presets
	if len(got) != len(want) {
		t.Fatalf("expected %d presets, got %#v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("preset %d: expected %#v, got %#v", i, want[i], got[i])
		}
	}
}

func TestParsePresetsRejectsInvalidDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown field", "windows:\n  - kind: note\n    colour: red\n", "colour"},
		{"unknown kind", "windows:\n  - kind: demo\n  - kind: terminal\n", "line 3: windows[1]: unknown kind"},
		{"missing kind", "windows:\n  - kind: demo\n  - title: x\n    body: y\n", "line 3: windows[1]: kind is required"},
		{"bad coord", "windows:\n  - kind: demo\n    initial_x: left\n", "line 3"},
		{"non scalar coord", "windows:\n  - kind: demo\n    initial_y: [1]\n", "coordinate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePresets([]byte(tc.doc))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestParsePresetsEmptyDocument(t *testing.T) {
	presets, err := ParsePresets(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(presets) != 0 {
		t.Fatalf("expected no presets, got %#v", presets)
	}
}
