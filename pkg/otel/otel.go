package otel

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
)

// Setup installs the global logger, tracer and meter providers. The
// returned function flushes and stops all exporters.
func Setup(ctx context.Context, serviceName, serviceVersion string) (func(context.Context) error, error) {
	resource, err := sdkresource.New(ctx,
		sdkresource.WithFromEnv(),
		sdkresource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)

	if err != nil {
		return nil, err
	}

	var shutdowns []func(context.Context) error

	shutdown := func(ctx context.Context) error {
		var errs []error

		for _, s := range shutdowns {
			errs = append(errs, s(ctx))
		}

		return errors.Join(errs...)
	}

	if EnableTelemetry {
		s, err := setupLogger(ctx, resource)

		if err != nil {
			return nil, err
		}

		shutdowns = append(shutdowns, s)

		s, err = setupTracer(ctx, resource)

		if err != nil {
			return nil, shutdownWith(ctx, shutdown, err)
		}

		shutdowns = append(shutdowns, s)
	} else {
		setupConsoleLogger()
	}

	s, err := setupMeter(ctx, resource)

	if err != nil {
		return nil, shutdownWith(ctx, shutdown, err)
	}

	shutdowns = append(shutdowns, s)

	return shutdown, nil
}

// MetricsHandler serves the Prometheus view of all recorded metrics.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

func setupConsoleLogger() {
	level := slog.LevelInfo

	if EnableDebug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	slog.SetDefault(logger)
}

func shutdownWith(ctx context.Context, shutdown func(context.Context) error, err error) error {
	return errors.Join(err, shutdown(ctx))
}
