package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/adrianliechti/voicebridge/config"
	"github.com/adrianliechti/voicebridge/pkg/otel"
	"github.com/adrianliechti/voicebridge/server"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", os.Getenv("CONFIG"), "config file")
	addressFlag := flag.String("address", "", "listen address (overrides config)")

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := otel.Setup(ctx, "voicebridge", version)

	if err != nil {
		panic(err)
	}

	defer shutdown(context.Background())

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("unable to create server", "error", err)
		os.Exit(1)
	}

	if err := s.ListenAndServe(ctx); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
