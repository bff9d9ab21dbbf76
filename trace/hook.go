package trace

import "sync/atomic"

// A Sink receives raw trace emissions. The data slice is only valid for the
// duration of the call. A Sink that wants to keep the bytes must copy them.
type Sink interface {
	OnTrace(eventID uint32, data []byte)
}

// nopSink is the default Sink. It discards every emission.
type nopSink struct{}

func (nopSink) OnTrace(uint32, []byte) {}

var hook = func() *atomic.Pointer[Sink] {
	p := &atomic.Pointer[Sink]{}
	var s Sink = nopSink{}
	p.Store(&s)
	return p
}()

// Attach installs s as the process-wide trace sink, replacing whatever sink
// is currently installed. Emissions made after Attach returns are delivered
// to s.
func Attach(s Sink) {
	if s == nil {
		panic("sink must not be nil")
	}

	hook.Store(&s)
}

// Detach restores the default no-op sink.
func Detach() {
	var s Sink = nopSink{}
	hook.Store(&s)
}

// Active returns true if a sink other than the default no-op sink is
// installed.
func Active() bool {
	_, isNop := (*hook.Load()).(nopSink)
	return !isNop
}

// Emit delivers an emission to the installed sink. With no sink attached,
// Emit discards the arguments and returns immediately. The eventID is an
// opaque caller-defined tag. The data slice is borrowed from the caller and
// may be nil when there is nothing to carry.
//
// Emit is safe to call from any goroutine without synchronization.
func Emit(eventID uint32, data []byte) {
	(*hook.Load()).OnTrace(eventID, data)
}
