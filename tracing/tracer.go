package tracing

// A Tracer can collect trace events.
type Tracer interface {
	Collect(e Event)
}

// A Flusher is a tracer that buffers events and can write them out on
// demand.
type Flusher interface {
	Flush()
}
