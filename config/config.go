package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/adrianliechti/voicebridge/pkg/tts"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	// Static is an optional directory served at the root path.
	Static string

	provider tts.Provider
}

// Parse reads the configuration file at path. An empty path yields the
// defaults.
func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":3050",
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	c.Static = file.Static

	if err := c.registerUpstream(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`
	Static  string `yaml:"static"`

	Upstream upstreamConfig `yaml:"upstream"`
}

func parseFile(path string) (*configFile, error) {
	var config configFile

	if path == "" {
		return &config, nil
	}

	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return &config, nil
}
