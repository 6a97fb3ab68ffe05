package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/adrianliechti/voicebridge/pkg/tts"

	"github.com/google/uuid"
)

var _ tts.Provider = (*Client)(nil)

type Client struct {
	client *http.Client

	url string

	timeout time.Duration
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		url = "https://tts.2068.online"
	}

	c := &Client{
		client: http.DefaultClient,

		url: strings.TrimRight(url, "/"),
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Voices(ctx context.Context) (json.RawMessage, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u, _ := url.JoinPath(c.url, "/api/tts/voices")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, convertError(resp)
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s", tts.ErrMalformedResponse, truncate(string(data), 256))
	}

	return json.RawMessage(data), nil
}

func (c *Client) Synthesize(ctx context.Context, input string, options *tts.SynthesizeOptions) (*tts.Synthesis, error) {
	if options == nil {
		options = new(tts.SynthesizeOptions)
	}

	type voiceType struct {
		ID string `json:"id"`
	}

	type bodyType struct {
		Text  string    `json:"text"`
		Voice voiceType `json:"voice"`
	}

	body := bodyType{
		Text: input,

		Voice: voiceType{
			ID: options.Voice,
		},
	}

	u, _ := url.JoinPath(c.url, "/api/tts/speak")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, jsonReader(body))

	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	if !isSuccess(resp.StatusCode) {
		defer resp.Body.Close()
		return nil, convertError(resp)
	}

	return &tts.Synthesis{
		ID:    uuid.NewString(),
		Voice: options.Voice,

		ContentType: "audio/mpeg",

		Body: resp.Body,
	}, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

func jsonReader(v any) *bytes.Reader {
	data, _ := json.Marshal(v)
	return bytes.NewReader(data)
}

// maxErrorBody bounds how much of an upstream error page is kept.
const maxErrorBody = 64 << 10

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	return &tts.StatusError{
		StatusCode: resp.StatusCode,

		Body: string(data),
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "..."
}
