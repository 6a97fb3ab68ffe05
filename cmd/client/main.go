package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrianliechti/voicebridge/pkg/client"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:3050", "server url")
	voiceFlag := flag.String("voice", "", "voice id")
	outputFlag := flag.String("output", "", "output file (default: stdout)")

	flag.Parse()

	ctx := context.Background()

	c := client.New(*urlFlag)

	if *voiceFlag == "" {
		if err := listVoices(ctx, c); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		return
	}

	text := strings.Join(flag.Args(), " ")

	if text == "" {
		input, err := readText(os.Stdin)

		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		text = input
	}

	if text == "" {
		fmt.Fprintln(os.Stderr, "no text given")
		os.Exit(1)
	}

	if err := speak(ctx, c, *voiceFlag, text, *outputFlag); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func listVoices(ctx context.Context, c *client.Client) error {
	voices, err := c.Voices.List(ctx)

	if err != nil {
		return err
	}

	var out bytes.Buffer

	if err := json.Indent(&out, voices, "", "  "); err != nil {
		return err
	}

	out.WriteString("\n")
	_, err = out.WriteTo(os.Stdout)

	return err
}

func speak(ctx context.Context, c *client.Client, voice, text, path string) error {
	audio, err := c.Speech.New(ctx, client.SpeechRequest{
		Text:  text,
		Voice: voice,
	})

	if err != nil {
		return err
	}

	defer audio.Close()

	var output io.Writer = os.Stdout

	if path != "" {
		f, err := os.Create(path)

		if err != nil {
			return err
		}

		defer f.Close()

		output = f
	}

	_, err = io.Copy(output, audio)

	return err
}

func readText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}
