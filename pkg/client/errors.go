package client

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Error is a failure reported by the relay.
type Error struct {
	StatusCode int

	Message string
	Details string
}

func (e *Error) Error() string {
	text := e.Message

	if text == "" {
		text = http.StatusText(e.StatusCode)
	}

	if e.Details != "" {
		text += ": " + strings.TrimSpace(e.Details)
	}

	return text
}

const maxErrorBody = 64 << 10

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}

	if err := json.Unmarshal(data, &body); err != nil || body.Error == "" {
		return &Error{
			StatusCode: resp.StatusCode,
			Details:    string(data),
		}
	}

	return &Error{
		StatusCode: resp.StatusCode,

		Message: body.Error,
		Details: body.Details,
	}
}
