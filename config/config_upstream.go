package config

import (
	"errors"
	"net/http"
	"time"

	"github.com/adrianliechti/voicebridge/pkg/otel"
	"github.com/adrianliechti/voicebridge/pkg/tts"
	"github.com/adrianliechti/voicebridge/pkg/tts/remote"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultTimeout = 30 * time.Second

type upstreamConfig struct {
	URL string `yaml:"url"`

	Timeout time.Duration `yaml:"timeout"`

	Proxy *proxyConfig `yaml:"proxy"`
}

func (cfg *Config) RegisterProvider(p tts.Provider) {
	cfg.provider = p
}

func (cfg *Config) Provider() (tts.Provider, error) {
	if cfg.provider == nil {
		return nil, errors.New("no upstream provider configured")
	}

	return cfg.provider, nil
}

func (cfg *Config) registerUpstream(f *configFile) error {
	c := f.Upstream

	timeout := c.Timeout

	if timeout == 0 {
		timeout = defaultTimeout
	}

	if timeout < 0 {
		timeout = 0
	}

	client, err := upstreamClient(c.Proxy, timeout)

	if err != nil {
		return err
	}

	p, err := remote.New(c.URL,
		remote.WithClient(client),
		remote.WithTimeout(timeout),
	)

	if err != nil {
		return err
	}

	cfg.RegisterProvider(otel.NewProvider("remote", p))

	return nil
}

// upstreamClient bounds the wait for response headers only; the audio body
// may stream for as long as the upstream keeps sending.
func upstreamClient(proxy *proxyConfig, timeout time.Duration) (*http.Client, error) {
	transport, err := proxy.proxyTransport()

	if err != nil {
		return nil, err
	}

	if transport == nil {
		transport = http.DefaultTransport.(*http.Transport).Clone()
	}

	transport.ResponseHeaderTimeout = timeout

	return &http.Client{
		Transport: otelhttp.NewTransport(transport),
	}, nil
}
