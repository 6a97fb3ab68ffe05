package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adrianliechti/voicebridge/config"
	"github.com/adrianliechti/voicebridge/pkg/tts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	body io.Reader

	closed bool
}

func (p *fakeProvider) Voices(ctx context.Context) (json.RawMessage, error) {
	return json.RawMessage(`[]`), nil
}

func (p *fakeProvider) Synthesize(ctx context.Context, input string, options *tts.SynthesizeOptions) (*tts.Synthesis, error) {
	return &tts.Synthesis{
		ID:    "test",
		Voice: options.Voice,

		ContentType: "audio/mpeg",

		Body: &closeRecorder{Reader: p.body, closed: &p.closed},
	}, nil
}

type closeRecorder struct {
	io.Reader

	closed *bool
}

func (c *closeRecorder) Close() error {
	*c.closed = true
	return nil
}

// failingReader yields data and then fails instead of returning io.EOF.
type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}

	n := copy(p, r.data)
	r.data = r.data[n:]

	return n, nil
}

func newTestHandler(t *testing.T, p tts.Provider) *Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.RegisterProvider(p)

	h, err := New(cfg)
	require.NoError(t, err)

	return h
}

func speakRequest() *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/speak", strings.NewReader(`{"text":"hi","voice":{"id":"v1"}}`))
}

func TestSpeakStreamsLargeBody(t *testing.T) {
	audio := bytes.Repeat([]byte("0123456789"), 10*streamBufferSize)

	p := &fakeProvider{body: bytes.NewReader(audio)}
	h := newTestHandler(t, p)

	w := httptest.NewRecorder()
	h.handleSpeak(w, speakRequest())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, "test", w.Header().Get("X-Synthesis-Id"))
	assert.True(t, w.Flushed)
	assert.Equal(t, audio, w.Body.Bytes())
	assert.True(t, p.closed)
}

func TestSpeakFailureBeforeFirstByte(t *testing.T) {
	p := &fakeProvider{body: &failingReader{err: errors.New("connection reset by peer")}}
	h := newTestHandler(t, p)

	w := httptest.NewRecorder()
	h.handleSpeak(w, speakRequest())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Empty(t, w.Header().Get("X-Synthesis-Id"))
	assert.JSONEq(t, `{"error":"speech generation failed","details":"connection reset by peer"}`, w.Body.String())
	assert.True(t, p.closed)
}

func TestSpeakFailureMidStreamAborts(t *testing.T) {
	p := &fakeProvider{body: &failingReader{data: []byte("partial"), err: io.ErrUnexpectedEOF}}
	h := newTestHandler(t, p)

	w := httptest.NewRecorder()

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.handleSpeak(w, speakRequest())
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial", w.Body.String())
	assert.True(t, p.closed)
}

func TestSpeakEmptyAudio(t *testing.T) {
	p := &fakeProvider{body: bytes.NewReader(nil)}
	h := newTestHandler(t, p)

	w := httptest.NewRecorder()
	h.handleSpeak(w, speakRequest())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	assert.Empty(t, w.Body.Bytes())
}
