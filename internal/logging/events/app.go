package events

import "github.com/atomicstack/floatwin/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Quit(open int) {
	logging.Trace("app.quit", map[string]interface{}{"open": open})
}
