package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type Config struct {
	ServiceName string
	Version     string
	Environment string
	// Endpoint of the OTLP gRPC collector. Empty disables export.
	Endpoint string
}

// NewTracerProvider configures the OTLP exporter and installs the provider
// globally. Without an endpoint spans are still created but never exported.
func NewTracerProvider(ctx context.Context, cfg Config, logger *zap.Logger) (*trace.TracerProvider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.ServiceName),
			attribute.String("service.version", cfg.Version),
			attribute.String("deployment.environment", cfg.Environment),
		),
	)
	if err != nil {
		return nil, err
	}

	opts := []trace.TracerProviderOption{trace.WithResource(res)}

	if cfg.Endpoint != "" {
		dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		exporter, err := otlptracegrpc.New(dialCtx, otlptracegrpc.WithEndpoint(cfg.Endpoint), otlptracegrpc.WithInsecure())
		cancel()
		if err != nil {
			return nil, err
		}
		opts = append(opts, trace.WithBatcher(exporter))
	}

	tp := trace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	logger.Info("telemetry initialized",
		zap.String("endpoint", cfg.Endpoint),
		zap.Bool("exporting", cfg.Endpoint != ""))
	return tp, nil
}
