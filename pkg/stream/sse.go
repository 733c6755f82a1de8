// Package stream frames progress events as a server-sent event stream.
package stream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// ErrStreamClosed is returned when an event is sent after Close
var ErrStreamClosed = fmt.Errorf("event stream already closed")

// Encoder writes one "data: <JSON>\n\n" frame per event, flushed
// immediately so clients see progress without buffering. Frames are
// written in Send order and never merged or dropped; the encoder is safe
// for use from one goroutine at a time per event but guards its lifecycle
// with a mutex so Close is exactly-once.
type Encoder struct {
	w       http.ResponseWriter
	flusher http.Flusher

	mu     sync.Mutex
	closed bool
}

// NewEncoder prepares w for event streaming and writes the SSE headers.
// It fails when the underlying writer cannot flush incrementally.
func NewEncoder(w http.ResponseWriter) (*Encoder, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not support streaming")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	return &Encoder{w: w, flusher: flusher}, nil
}

// Send encodes one event as a single frame and pushes it to the client
func (e *Encoder) Send(event any) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrStreamClosed
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	if _, err := fmt.Fprintf(e.w, "data: %s\n\n", payload); err != nil {
		return fmt.Errorf("failed to write event frame: %w", err)
	}
	e.flusher.Flush()

	return nil
}

// Close marks the stream finished. Later Sends fail with ErrStreamClosed.
// Closing twice is a no-op.
func (e *Encoder) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
}
