package observability

import (
	"context"
	"time"

	"github.com/Sokol111/crm-commons/pkg/core/config"
	"github.com/Sokol111/crm-commons/pkg/core/health"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func provideTracerProvider(lc fx.Lifecycle, log *zap.Logger, conf Config, appConf config.AppConfig, readiness health.ComponentManager) (trace.TracerProvider, error) {
	markReady := readiness.AddComponent("tracing")

	if !conf.TracingEnabled {
		log.Info("otel tracing disabled")
		markReady()
		return noop.NewTracerProvider(), nil
	}

	ctx := context.Background()

	res, err := newResource(ctx, appConf)
	if err != nil {
		return nil, err
	}

	var tp *sdktrace.TracerProvider

	if conf.Endpoint != "" {
		exp, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(conf.Endpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, err
		}
		tp = sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exp),
			sdktrace.WithResource(res),
		)
	} else {
		log.Info("otel tracing: no collector endpoint provided; running in local in-process mode (no export)")
		tp = sdktrace.NewTracerProvider(
			sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
			sdktrace.WithResource(res),
		)
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			otel.SetTracerProvider(tp)
			otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
				propagation.TraceContext{},
				propagation.Baggage{},
			))
			log.Info("otel tracing initialized", zap.String("endpoint", conf.Endpoint))
			markReady()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			c, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return tp.Shutdown(c)
		},
	})

	return tp, nil
}

func newResource(ctx context.Context, appConf config.AppConfig) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		semconv.ServiceNameKey.String(appConf.ServiceName),
		semconv.ServiceVersionKey.String(appConf.ServiceVersion),
		semconv.DeploymentEnvironmentNameKey.String(string(appConf.Environment)),
	}

	return resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithOS(),
		resource.WithHost(),
		resource.WithAttributes(attrs...),
	)
}

// GetTraceId returns the current trace id or an empty string.
func GetTraceId(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}
