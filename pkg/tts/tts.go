package tts

import (
	"context"
	"encoding/json"
	"io"
)

type Provider interface {
	Voices(ctx context.Context) (json.RawMessage, error)
	Synthesize(ctx context.Context, input string, options *SynthesizeOptions) (*Synthesis, error)
}

type SynthesizeOptions struct {
	Voice string
}

// Synthesis is an audio stream in flight. The caller owns Body and must close it.
type Synthesis struct {
	ID string

	Voice string

	ContentType string

	Body io.ReadCloser
}
