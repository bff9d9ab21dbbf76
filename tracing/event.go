package tracing

// An Event is one decoded trace emission. The hook only lends the payload
// bytes to the sink for the duration of the call, so the adapter copies them
// into Message before any tracer sees the event.
type Event struct {
	ID      string  `json:"id"`
	EventID uint32  `json:"event_id"`
	Level   string  `json:"level"`
	Message string  `json:"message"`
	Time    float64 `json:"time"`
}

// EventFilter is a function that can filter interesting events. If this
// function returns true, the event is considered useful.
type EventFilter func(e Event) bool
