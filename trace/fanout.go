package trace

// A Fanout is a Sink that multiplexes each emission to a list of sinks, in
// the order they were added. Add all sinks before attaching the Fanout; the
// sink list is not protected against concurrent mutation.
type Fanout struct {
	sinks []Sink
}

// NewFanout creates a Fanout over the given sinks.
func NewFanout(sinks ...Sink) *Fanout {
	f := new(Fanout)
	f.sinks = append(f.sinks, sinks...)
	return f
}

// Add appends a sink to the fan-out list.
func (f *Fanout) Add(s Sink) {
	if s == nil {
		panic("sink must not be nil")
	}

	f.sinks = append(f.sinks, s)
}

// NumSinks returns the number of sinks in the fan-out list.
func (f *Fanout) NumSinks() int {
	return len(f.sinks)
}

// OnTrace forwards the emission to every sink in the list.
func (f *Fanout) OnTrace(eventID uint32, data []byte) {
	for _, s := range f.sinks {
		s.OnTrace(eventID, data)
	}
}
