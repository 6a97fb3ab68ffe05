package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
)

type VoiceService struct {
	Options []RequestOption
}

func NewVoiceService(opts ...RequestOption) VoiceService {
	return VoiceService{
		Options: opts,
	}
}

// List returns the voice catalog exactly as the relay served it.
func (r *VoiceService) List(ctx context.Context, opts ...RequestOption) (json.RawMessage, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL+"/api/voices", nil)

	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return json.RawMessage(data), nil
}
