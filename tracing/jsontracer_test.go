package tracing_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracekit/tracekit/tracing"
)

func TestJSONTracerWritesArray(t *testing.T) {
	var buf bytes.Buffer
	tracer := tracing.NewJSONTracerWithWriter(&buf)

	tracer.Collect(tracing.Event{
		ID: "1", EventID: 2, Level: "INFO", Time: 1.5, Message: "hello",
	})
	tracer.Collect(tracing.Event{
		ID: "2", EventID: 4, Level: "ERROR", Time: 2.5, Message: "oops",
	})
	tracer.Finish()

	var events []tracing.Event
	err := json.Unmarshal(buf.Bytes(), &events)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "hello", events[0].Message)
	assert.Equal(t, "ERROR", events[1].Level)
}

func TestJSONTracerEmptyTrace(t *testing.T) {
	var buf bytes.Buffer
	tracer := tracing.NewJSONTracerWithWriter(&buf)
	tracer.Finish()

	var events []tracing.Event
	err := json.Unmarshal(buf.Bytes(), &events)
	require.NoError(t, err)
	assert.Empty(t, events)
}
