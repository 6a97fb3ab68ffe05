package client

import (
	"net/http"
	"strings"
)

type Client struct {
	Voices VoiceService
	Speech SpeechService
}

func New(url string, opts ...RequestOption) *Client {
	opts = append(opts, WithURL(url))

	return &Client{
		Voices: NewVoiceService(opts...),
		Speech: NewSpeechService(opts...),
	}
}

func newRequestConfig(opts ...RequestOption) *RequestConfig {
	c := &RequestConfig{
		Client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.URL = strings.TrimRight(c.URL, "/")

	return c
}
