package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/floatwin/internal/app"
	"github.com/atomicstack/floatwin/internal/drag"
	"github.com/atomicstack/floatwin/internal/ui"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Level    string
	Trace    bool
}

const (
	envWidth    = "FLOATWIN_WIDTH"
	envHeight   = "FLOATWIN_HEIGHT"
	envInitialX = "FLOATWIN_INITIAL_X"
	envInitialY = "FLOATWIN_INITIAL_Y"
	envHandle   = "FLOATWIN_HANDLE"
	envBaseZ    = "FLOATWIN_BASE_Z"
	envPresets  = "FLOATWIN_PRESETS"
	envTrace    = "FLOATWIN_TRACE"
	envLogFile  = "FLOATWIN_LOG_FILE"
	envLogLevel = "FLOATWIN_LOG_LEVEL"
)

var logLevels = map[string]struct{}{
	"debug":   {},
	"info":    {},
	"warn":    {},
	"warning": {},
	"error":   {},
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("floatwin", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	initialX := fs.String("initial-x", envOrDefault(env, envInitialX, "center"), `initial window column, a number or "center"`)
	initialY := fs.String("initial-y", envOrDefault(env, envInitialY, "center"), `initial window row, a number or "center"`)
	handle := fs.String("handle", envOrDefault(env, envHandle, drag.DefaultHandleSelector), "selector of the drag handle inside each window")
	baseZ := fs.Int("base-z", envOrInt(env, envBaseZ, 1000), "stacking order the first window is raised above")
	presets := fs.String("presets", envOrDefault(env, envPresets, ""), "path to a YAML file of launcher presets")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	logLevel := fs.String("log-level", envOrDefault(env, envLogLevel, "info"), "minimum log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	x, err := drag.ParseCoord(*initialX)
	if err != nil {
		return Config{}, fmt.Errorf("initial-x: %w", err)
	}
	y, err := drag.ParseCoord(*initialY)
	if err != nil {
		return Config{}, fmt.Errorf("initial-y: %w", err)
	}

	var presetList []ui.Preset
	if *presets != "" {
		presetList, err = LoadPresets(*presets)
		if err != nil {
			return Config{}, err
		}
	}

	cfg := Config{
		App: app.Config{
			Width:          *width,
			Height:         *height,
			InitialX:       x,
			InitialY:       y,
			HandleSelector: *handle,
			BaseZ:          *baseZ,
			Presets:        presetList,
		},
		Logging: Logging{
			FilePath: *logFile,
			Level:    *logLevel,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"initialX": *initialX,
			"initialY": *initialY,
			"handle":   *handle,
			"baseZ":    strconv.Itoa(*baseZ),
			"presets":  *presets,
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
			"logLevel": *logLevel,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if _, ok := logLevels[strings.ToLower(strings.TrimSpace(cfg.Logging.Level))]; !ok {
		return fmt.Errorf("unknown log level %q", cfg.Logging.Level)
	}
	if strings.TrimSpace(cfg.App.HandleSelector) == "" {
		return fmt.Errorf("handle selector must not be empty")
	}
	return nil
}
