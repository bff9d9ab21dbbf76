// Package tracing provides collectors that record the emissions of the trace
// hook, and a reader for recorded traces.
package tracing

import (
	"fmt"
	"reflect"
	"time"

	"github.com/rs/xid"

	"github.com/tracekit/tracekit/trace"
)

// Collect installs the given tracers as the observers of the trace hook,
// replacing whatever sink is currently attached. Every subsequent emission is
// decoded into an Event and delivered to each tracer in order.
func Collect(tracers ...Tracer) {
	if len(tracers) == 0 {
		panic("at least one tracer is required")
	}

	for i, t := range tracers {
		for _, seen := range tracers[:i] {
			if seen == t {
				panic(fmt.Sprintf(
					"tracer %s is attached more than once",
					reflect.TypeOf(t)))
			}
		}
	}

	trace.Attach(&hookAdapter{tracers: tracers})
}

// Stop detaches the collectors installed by Collect, restoring the hook's
// no-op default. Buffered tracers are not flushed.
func Stop() {
	trace.Detach()
}

// A hookAdapter is the sink that converts raw emissions into Events.
type hookAdapter struct {
	tracers []Tracer
}

// OnTrace decodes the emission and forwards it to every tracer.
func (a *hookAdapter) OnTrace(eventID uint32, data []byte) {
	e := Event{
		ID:      xid.New().String(),
		EventID: eventID,
		Level:   trace.Level(eventID).String(),
		Message: string(data),
		Time:    float64(time.Now().UnixNano()) / 1e9,
	}

	for _, t := range a.tracers {
		t.Collect(e)
	}
}
