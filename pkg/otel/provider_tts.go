package otel

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/adrianliechti/voicebridge/pkg/tts"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

type Provider interface {
	Observable
	tts.Provider
}

type observableProvider struct {
	provider string

	p tts.Provider

	durationMetric metric.Float64Histogram
	bytesMetric    metric.Int64Counter
}

func NewProvider(provider string, p tts.Provider) Provider {
	meter := otel.Meter(instrumentationName)

	durationMetric, _ := meter.Float64Histogram("tts.upstream.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Time until the upstream provider answered"),
	)

	bytesMetric, _ := meter.Int64Counter("tts.audio.bytes",
		metric.WithUnit("By"),
		metric.WithDescription("Audio bytes read from the upstream provider"),
	)

	return &observableProvider{
		p: p,

		provider: provider,

		durationMetric: durationMetric,
		bytesMetric:    bytesMetric,
	}
}

func (p *observableProvider) otelSetup() {
}

func (p *observableProvider) Voices(ctx context.Context) (json.RawMessage, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "voices")
	defer span.End()

	timestamp := time.Now()

	result, err := p.p.Voices(ctx)

	p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), metric.WithAttributes(
		String("tts.operation", "voices"),
		String("tts.provider", p.provider),
		statusAttr(err),
	))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return result, err
}

func (p *observableProvider) Synthesize(ctx context.Context, input string, options *tts.SynthesizeOptions) (*tts.Synthesis, error) {
	voice := ""

	if options != nil {
		voice = options.Voice
	}

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "synthesize "+voice)
	defer span.End()

	timestamp := time.Now()

	result, err := p.p.Synthesize(ctx, input, options)

	attrs := KeyValues([]KeyValue{
		String("tts.operation", "synthesize"),
		String("tts.provider", p.provider),
		String("tts.voice", voice),
	})

	p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), metric.WithAttributes(append(attrs, statusAttr(err))...))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	result.Body = &observableBody{
		ReadCloser: result.Body,

		ctx:   context.WithoutCancel(ctx),
		attrs: attrs,

		metric: p.bytesMetric,
	}

	return result, nil
}

type observableBody struct {
	io.ReadCloser

	ctx   context.Context
	attrs []KeyValue

	metric metric.Int64Counter
	count  int64
}

func (b *observableBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	b.count += int64(n)

	return n, err
}

func (b *observableBody) Close() error {
	if b.count > 0 {
		b.metric.Add(b.ctx, b.count, metric.WithAttributes(b.attrs...))
		b.count = 0
	}

	return b.ReadCloser.Close()
}
