package tracing

import (
	"sync"
)

// CountTracer can count the collected events, in total and per level.
type CountTracer struct {
	filter EventFilter

	lock       sync.Mutex
	levelNames []string
	levelCount map[string]uint64
	totalCount uint64
}

// NewCountTracer creates a new CountTracer. The filter may be nil, in which
// case every event is counted.
func NewCountTracer(filter EventFilter) *CountTracer {
	t := &CountTracer{
		filter:     filter,
		levelCount: make(map[string]uint64),
	}
	return t
}

// Collect counts one event.
func (t *CountTracer) Collect(e Event) {
	if t.filter != nil && !t.filter(e) {
		return
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	_, ok := t.levelCount[e.Level]
	if !ok {
		t.levelNames = append(t.levelNames, e.Level)
	}
	t.levelCount[e.Level]++
	t.totalCount++
}

// LevelNames returns all the level names collected, in the order of first
// appearance.
func (t *CountTracer) LevelNames() []string {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.levelNames
}

// LevelCount returns the number of events that is recorded with a certain
// level.
func (t *CountTracer) LevelCount(level string) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.levelCount[level]
}

// TotalCount returns the number of events collected.
func (t *CountTracer) TotalCount() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.totalCount
}
