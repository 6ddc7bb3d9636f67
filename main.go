package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/floatwin/internal/app"
	"github.com/atomicstack/floatwin/internal/config"
	"github.com/atomicstack/floatwin/internal/logging"
	"github.com/atomicstack/floatwin/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetLevel(runtimeCfg.Logging.Level)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	terminal := probeTerminal(os.Stdout, os.Stdin, os.Stderr)
	runtimeCfg.App = seedTerminalSize(runtimeCfg.App, terminal)
	events.App.Start(startupTracePayload(runtimeCfg, terminal))
	logging.Info("starting", map[string]interface{}{
		"presets": len(runtimeCfg.App.Presets),
		"handle":  runtimeCfg.App.HandleSelector,
	})

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		_ = logging.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	_ = logging.Close()
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, terminal terminalInfo) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+3)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	flags["logLevel"] = cfg.Logging.Level
	return map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"terminal": terminal,
	}
}

// terminalInfo is the size of the first probed file attached to a terminal.
type terminalInfo struct {
	Source string            `json:"source,omitempty"`
	Width  int               `json:"width,omitempty"`
	Height int               `json:"height,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

func (t terminalInfo) detected() bool {
	return t.Source != "" && t.Width > 0 && t.Height > 0
}

// probeTerminal asks each file in turn for its terminal size and keeps the
// first answer. Files that are terminals but fail to report a size are
// recorded in Errors.
func probeTerminal(files ...*os.File) terminalInfo {
	var info terminalInfo
	for _, f := range files {
		if f == nil {
			continue
		}
		fd := int(f.Fd())
		if fd < 0 || !term.IsTerminal(fd) {
			continue
		}
		width, height, err := term.GetSize(fd)
		if err != nil {
			if info.Errors == nil {
				info.Errors = map[string]string{}
			}
			info.Errors[f.Name()] = err.Error()
			continue
		}
		info.Source, info.Width, info.Height = f.Name(), width, height
		break
	}
	return info
}

// seedTerminalSize lets windows spawned before the first resize message be
// placed against the detected terminal. Pinned dimensions are left alone.
func seedTerminalSize(cfg app.Config, terminal terminalInfo) app.Config {
	if !terminal.detected() {
		return cfg
	}
	if cfg.Width == 0 {
		cfg.TerminalWidth = terminal.Width
	}
	if cfg.Height == 0 {
		cfg.TerminalHeight = terminal.Height
	}
	return cfg
}
