package app

import (
	"errors"

	"github.com/atomicstack/floatwin/internal/drag"
	"github.com/atomicstack/floatwin/internal/logging"
	"github.com/atomicstack/floatwin/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width  int
	Height int
	// TerminalWidth and TerminalHeight are the size detected at startup,
	// used until the program reports one.
	TerminalWidth  int
	TerminalHeight int
	InitialX       drag.Coord
	InitialY       drag.Coord
	HandleSelector string
	BaseZ          int
	Presets        []ui.Preset
}

// NewModel builds the UI model for cfg.
func NewModel(cfg Config) *ui.Model {
	return ui.NewModel(ui.Options{
		Width:          cfg.Width,
		Height:         cfg.Height,
		TerminalWidth:  cfg.TerminalWidth,
		TerminalHeight: cfg.TerminalHeight,
		Drag: drag.Config{
			InitialX:       cfg.InitialX,
			InitialY:       cfg.InitialY,
			HandleSelector: cfg.HandleSelector,
		},
		BaseZ:   cfg.BaseZ,
		Presets: cfg.Presets,
	})
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	log := logging.WithComponent("app")
	log.Debug().Int("width", cfg.Width).Int("height", cfg.Height).Int("presets", len(cfg.Presets)).Msg("program starting")
	program := tea.NewProgram(NewModel(cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err := program.Run()
	log.Debug().Err(err).Msg("program exited")
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
