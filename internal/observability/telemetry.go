// Package observability подключает трассировку OpenTelemetry.
package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/annel0/levelgen/internal/logging"
)

// ShutdownFunc завершает экспорт спанов.
type ShutdownFunc func(context.Context) error

// InitTelemetry ставит глобальный TracerProvider с OTLP/HTTP экспортом. После него спаны
// проходов генератора (zones, floor, decorations, bonus, offscreen) и otelgin уходят в
// коллектор из OTEL_EXPORTER_OTLP_* переменных. Без вызова otel остаётся no-op,
// поэтому тесты и level-dump работают без коллектора.
func InitTelemetry(ctx context.Context, serviceName, version string) (ShutdownFunc, error) {
	exp, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("otel resource: %w", err)
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	logging.Info("📡 OpenTelemetry инициализирован (OTLP, service=%s)", serviceName)

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}
	return shutdown, nil
}

// NoopShutdown подставляется в cmd/server, когда OTLP не настроен.
func NoopShutdown(context.Context) error { return nil }
