package tts

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// StatusError is returned when the upstream answered with a non-2xx status.
type StatusError struct {
	StatusCode int

	Body string
}

func (e *StatusError) Error() string {
	text := strings.TrimSpace(e.Body)

	if text == "" {
		text = http.StatusText(e.StatusCode)
	}

	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, text)
}
