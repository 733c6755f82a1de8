package stream

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bias-probing/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEncoderSetsHeaders(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := NewEncoder(rec)
	require.NoError(t, err)

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "keep-alive", rec.Header().Get("Connection"))
}

type noFlushWriter struct {
	header http.Header
}

func (w *noFlushWriter) Header() http.Header {
	if w.header == nil {
		w.header = http.Header{}
	}
	return w.header
}
func (w *noFlushWriter) Write([]byte) (int, error) { return 0, nil }
func (w *noFlushWriter) WriteHeader(int)           {}

func TestNewEncoderRequiresFlusher(t *testing.T) {
	_, err := NewEncoder(&noFlushWriter{})
	assert.Error(t, err)
}

func TestSendFrameFormat(t *testing.T) {
	rec := httptest.NewRecorder()
	enc, err := NewEncoder(rec)
	require.NoError(t, err)

	require.NoError(t, enc.Send(model.ProgressEvent{
		Type:             model.EventPromptExecution,
		Message:          "Processing prompt 1/4",
		CompletedPrompts: 1,
		TotalPrompts:     4,
	}))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "data: "), body)
	assert.True(t, strings.HasSuffix(body, "\n\n"), "frame must end with a blank line")
	assert.Contains(t, body, `"type":"prompt-execution"`)
	assert.Contains(t, body, `"completedPrompts":1`)
	assert.True(t, rec.Flushed, "each frame is flushed immediately")
}

func TestSendPreservesOrder(t *testing.T) {
	rec := httptest.NewRecorder()
	enc, err := NewEncoder(rec)
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		require.NoError(t, enc.Send(model.ProgressEvent{
			Type:             model.EventPromptExecution,
			CompletedPrompts: i,
			TotalPrompts:     3,
		}))
	}

	frames := strings.Split(strings.TrimSuffix(rec.Body.String(), "\n\n"), "\n\n")
	require.Len(t, frames, 3)
	assert.Contains(t, frames[0], `"completedPrompts":1`)
	assert.Contains(t, frames[1], `"completedPrompts":2`)
	assert.Contains(t, frames[2], `"completedPrompts":3`)
}

func TestSendAfterClose(t *testing.T) {
	rec := httptest.NewRecorder()
	enc, err := NewEncoder(rec)
	require.NoError(t, err)

	require.NoError(t, enc.Send(model.ProgressEvent{Type: model.EventComplete}))
	enc.Close()
	enc.Close() // idempotent

	err = enc.Send(model.ProgressEvent{Type: model.EventError})
	assert.ErrorIs(t, err, ErrStreamClosed)

	// nothing written after close
	assert.Equal(t, 1, strings.Count(rec.Body.String(), "data: "))
}
