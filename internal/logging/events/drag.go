package events

import "github.com/atomicstack/floatwin/internal/logging"

type DragTracer struct{}

type dragReason string

const (
	DragReasonRelease dragReason = "release"
	DragReasonCancel  dragReason = "cancel"
	DragReasonBlur    dragReason = "blur"
	DragReasonUnmount dragReason = "unmount"
)

var Drag = DragTracer{}

func (DragTracer) Layout(id int, x, y float64) {
	logging.Trace("drag.layout", map[string]interface{}{"id": id, "x": x, "y": y})
}

func (DragTracer) Start(id int, offsetX, offsetY float64) {
	logging.Trace("drag.start", map[string]interface{}{"id": id, "offsetX": offsetX, "offsetY": offsetY})
}

func (DragTracer) Move(id int, x, y float64) {
	logging.Trace("drag.move", map[string]interface{}{"id": id, "x": x, "y": y})
}

func (DragTracer) End(id int, reason dragReason) {
	logging.Trace("drag.end", map[string]interface{}{"id": id, "reason": string(reason)})
}

func (DragTracer) Reset(id int, x, y float64) {
	logging.Trace("drag.reset", map[string]interface{}{"id": id, "x": x, "y": y})
}
