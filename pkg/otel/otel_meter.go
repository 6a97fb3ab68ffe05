package otel

import (
	"context"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
)

// setupMeter always exports to the default Prometheus registry and
// additionally pushes over OTLP when telemetry is enabled.
func setupMeter(ctx context.Context, resource *sdkresource.Resource) (func(context.Context) error, error) {
	promExporter, err := prometheus.New()

	if err != nil {
		return nil, err
	}

	options := []sdkmetric.Option{
		sdkmetric.WithReader(promExporter),
		sdkmetric.WithResource(resource),
	}

	if EnableTelemetry {
		var exporter sdkmetric.Exporter

		if strings.ToLower(os.Getenv("OTEL_EXPORTER_OTLP_PROTOCOL")) == "grpc" || strings.ToLower(os.Getenv("OTEL_EXPORTER_OTLP_METRICS_PROTOCOL")) == "grpc" {
			exporter, err = otlpmetricgrpc.New(ctx)
		} else {
			exporter, err = otlpmetrichttp.New(ctx)
		}

		if err != nil {
			return nil, err
		}

		options = append(options, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(3*time.Second))))
	}

	provider := sdkmetric.NewMeterProvider(options...)

	otel.SetMeterProvider(provider)

	return provider.Shutdown, nil
}
