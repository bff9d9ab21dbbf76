package tracing

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// CSVTraceWriter is a tracer that can store the collected events into a CSV
// file.
type CSVTraceWriter struct {
	path string
	file *os.File

	lock       sync.Mutex
	events     []Event
	bufferSize int
}

// NewCSVTraceWriter creates a new CSVTraceWriter.
func NewCSVTraceWriter(path string) *CSVTraceWriter {
	return &CSVTraceWriter{
		path:       path,
		bufferSize: 1000,
	}
}

// Init creates the tracing csv file. If the file already exists, Init
// panics.
func (t *CSVTraceWriter) Init() {
	if t.path == "" {
		t.path = "tracekit_trace_" + xid.New().String()
	}

	filename := t.path + ".csv"
	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	t.file = file

	fmt.Fprintf(file, "ID, EventID, Level, Time, Message\n")

	atexit.Register(func() {
		t.Flush()
		err := t.file.Close()
		if err != nil {
			panic(err)
		}
	})
}

// Collect buffers an event, flushing to the CSV file when the buffer is
// full.
func (t *CSVTraceWriter) Collect(e Event) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.events = append(t.events, e)
	if len(t.events) >= t.bufferSize {
		t.flush()
	}
}

// Flush writes all the buffered events to the CSV file.
func (t *CSVTraceWriter) Flush() {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.flush()
}

func (t *CSVTraceWriter) flush() {
	for _, e := range t.events {
		fmt.Fprintf(t.file, "%s, %d, %s, %.9f, %q\n",
			e.ID,
			e.EventID,
			e.Level,
			e.Time,
			e.Message,
		)
	}

	t.events = nil
}
