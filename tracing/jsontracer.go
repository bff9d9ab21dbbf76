package tracing

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// JSONTracer can write the collected events into a JSON array.
type JSONTracer struct {
	w          io.Writer
	lock       sync.Mutex
	firstEvent bool
}

// Collect writes one event to the output as an element of the JSON array.
func (t *JSONTracer) Collect(e Event) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.firstEvent {
		t.firstEvent = false
	} else {
		_, err := t.w.Write([]byte(",\n"))
		if err != nil {
			panic(err)
		}
	}

	b, err := json.Marshal(e)
	if err != nil {
		panic(err)
	}

	_, err = t.w.Write(b)
	if err != nil {
		panic(err)
	}
}

// Finish terminates the JSON array. No event may be collected afterwards.
func (t *JSONTracer) Finish() {
	_, err := t.w.Write([]byte("\n]"))
	if err != nil {
		panic(err)
	}
}

// NewJSONTracer creates a new JSONTracer that writes to a generated file in
// the working directory.
func NewJSONTracer() *JSONTracer {
	filename := xid.New().String() + ".json"
	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Recording events in %s\n", filename)

	t := NewJSONTracerWithWriter(f)

	atexit.Register(t.Finish)

	return t
}

// NewJSONTracerWithWriter creates a new JSONTracer, injecting a writer as
// dependency. The caller is responsible for calling Finish when tracing
// completes.
func NewJSONTracerWithWriter(w io.Writer) *JSONTracer {
	_, err := w.Write([]byte("[\n"))
	if err != nil {
		panic(err)
	}

	t := &JSONTracer{
		w:          w,
		firstEvent: true,
	}

	return t
}
