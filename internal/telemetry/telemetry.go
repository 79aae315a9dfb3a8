// Package telemetry exports user actions as OTLP spans. It is enabled only
// when OTEL_EXPORTER_OTLP_ENDPOINT is set; a nil *Recorder is valid and
// records nothing, so call sites never have to check.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Recorder turns discrete user actions into completed spans.
type Recorder struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewRecorder creates a recorder if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (disabled).
func NewRecorder(ctx context.Context) (*Recorder, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "pickem"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Recorder{
		provider: provider,
		tracer:   provider.Tracer("pickem/ui"),
	}, nil
}

// Action records one user action as an immediately-ended span. Attribute
// keys are namespaced under pickem.*.
func (r *Recorder) Action(name string, attrs ...attribute.KeyValue) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(context.Background(), name)
	span.SetAttributes(attrs...)
	span.End()
}

// Str builds a pickem.* string attribute.
func Str(key, value string) attribute.KeyValue {
	return attribute.String("pickem."+key, value)
}

// Int builds a pickem.* int attribute.
func Int(key string, value int) attribute.KeyValue {
	return attribute.Int("pickem."+key, value)
}

// Shutdown flushes and closes the exporter.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
