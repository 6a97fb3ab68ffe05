package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/adrianliechti/voicebridge/pkg/tts"

	"github.com/go-chi/chi/v5/middleware"
)

const streamBufferSize = 32 * 1024

// streamAudio forwards the synthesis body chunk by chunk. Once the first
// byte went out the status is committed, so an upstream failure can only
// abort the connection; the missing chunked terminator tells the client the
// audio was cut.
func (h *Handler) streamAudio(w http.ResponseWriter, r *http.Request, synthesis *tts.Synthesis) {
	ctx := r.Context()
	rc := http.NewResponseController(w)

	contentType := synthesis.ContentType

	if contentType == "" {
		contentType = "audio/mpeg"
	}

	logger := slog.With(
		slog.String("synthesis_id", synthesis.ID),
		slog.String("voice", synthesis.Voice),
		slog.String("request_id", middleware.GetReqID(ctx)),
	)

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Synthesis-Id", synthesis.ID)

	buf := make([]byte, streamBufferSize)

	var written int64

	for {
		n, readErr := synthesis.Body.Read(buf)

		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				logger.DebugContext(ctx, "client disconnected during stream", "written", written, "error", err)
				return
			}

			written += int64(n)

			if err := rc.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
				logger.DebugContext(ctx, "client disconnected during stream", "written", written, "error", err)
				return
			}
		}

		if readErr == nil {
			continue
		}

		if errors.Is(readErr, io.EOF) {
			logger.DebugContext(ctx, "stream completed", "written", written)
			return
		}

		if ctx.Err() != nil {
			logger.DebugContext(ctx, "client disconnected during stream", "written", written, "error", ctx.Err())
			return
		}

		if written == 0 {
			w.Header().Del("X-Synthesis-Id")

			h.fail(w, r, operationSpeak, readErr)
			return
		}

		logger.ErrorContext(ctx, "audio stream truncated", "written", written, "error", readErr)

		panic(http.ErrAbortHandler)
	}
}
