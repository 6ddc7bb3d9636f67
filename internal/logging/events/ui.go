package events

import "github.com/atomicstack/floatwin/internal/logging"

type UITracer struct{}

type LauncherTracer struct{}

var (
	UI       = UITracer{}
	Launcher = LauncherTracer{}
)

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Key(key string, window int) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "window": window})
}

func (LauncherTracer) Filter(query string, matches int) {
	logging.Trace("launcher.filter", map[string]interface{}{"query": query, "matches": matches})
}

func (LauncherTracer) Select(preset string, id int) {
	logging.Trace("launcher.select", map[string]interface{}{"preset": preset, "id": id})
}
