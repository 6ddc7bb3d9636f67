package events

import "github.com/atomicstack/floatwin/internal/logging"

type WindowTracer struct{}

var Window = WindowTracer{}

func (WindowTracer) Spawn(id int, kind string, z int) {
	logging.Trace("window.spawn", map[string]interface{}{"id": id, "kind": kind, "z": z})
}

func (WindowTracer) Dedupe(id int, kind string, z int) {
	logging.Trace("window.dedupe", map[string]interface{}{"id": id, "kind": kind, "z": z})
}

func (WindowTracer) Focus(id, z int) {
	logging.Trace("window.focus", map[string]interface{}{"id": id, "z": z})
}

func (WindowTracer) Close(id, remaining int) {
	logging.Trace("window.close", map[string]interface{}{"id": id, "remaining": remaining})
}

func (WindowTracer) CloseAll(nextZ int) {
	logging.Trace("window.close-all", map[string]interface{}{"nextZ": nextZ})
}
