package otel

import (
	"context"
	"fmt"
	"salas/config"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"google.golang.org/grpc/credentials/insecure"
)

// Otel opens spans through NewScope; scopeName is the tracer (layer) and spanName the
// operation, e.g. ("service", "service.Reservation.Create").
type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
	Shutdown(ctx context.Context) error
}

type otelImpl struct {
	TracerProvider *trace.TracerProvider
}

func (o *otelImpl) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := o.TracerProvider.Tracer(scopeName).Start(ctx, spanName)

	return ctx, NewScope(span)
}

// Shutdown flushes pending spans.
func (o *otelImpl) Shutdown(ctx context.Context) error {
	if err := o.TracerProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown tracer provider: %w", err)
	}

	return nil
}

// New installs the global tracer provider. Without an OTLP endpoint spans are still
// recorded, so handlers and tests behave the same, but nothing is exported.
func New(cfg *config.Config) Otel {
	options := []trace.TracerProviderOption{
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(cfg.App.Name),
			semconv.DeploymentEnvironmentKey.String(cfg.Server.Env),
		)),
	}

	if batcher, ok := exporter(cfg.External.Otel.Endpoint); ok {
		options = append(options, batcher)
	}

	provider := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &otelImpl{TracerProvider: provider}
}

func exporter(endpoint string) (trace.TracerProviderOption, bool) {
	if endpoint == "" {
		log.Warn().Msg("No OTLP endpoint configured, spans are recorded but not exported")

		return nil, false
	}

	client, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Fatal().Err(err).Str("endpoint", endpoint).Msg("Failed to create OTLP exporter")
	}

	return trace.WithBatcher(client), true
}
