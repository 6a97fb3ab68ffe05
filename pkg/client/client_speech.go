package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

type SpeechService struct {
	Options []RequestOption
}

func NewSpeechService(opts ...RequestOption) SpeechService {
	return SpeechService{
		Options: opts,
	}
}

type SpeechRequest struct {
	Text  string
	Voice string
}

// New starts a synthesis and returns the audio as it streams in. A read
// error other than io.EOF means the relay cut the stream.
func (r *SpeechService) New(ctx context.Context, input SpeechRequest, opts ...RequestOption) (io.ReadCloser, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	type voiceType struct {
		ID string `json:"id"`
	}

	type bodyType struct {
		Text  string    `json:"text"`
		Voice voiceType `json:"voice"`
	}

	body := bodyType{
		Text: input.Text,

		Voice: voiceType{
			ID: input.Voice,
		},
	}

	data, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+"/api/speak", bytes.NewReader(data))

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, convertError(resp)
	}

	return resp.Body, nil
}
