package observability

import (
	"context"
	"time"

	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"

	"github.com/Sokol111/crm-commons/pkg/core/config"
	"github.com/Sokol111/crm-commons/pkg/core/health"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func provideMeterProvider(lc fx.Lifecycle, log *zap.Logger, conf Config, appConf config.AppConfig, readiness health.ComponentManager) (metric.MeterProvider, error) {
	markReady := readiness.AddComponent("metrics")

	if !conf.MetricsEnabled {
		log.Info("otel metrics disabled")
		markReady()
		return noop.NewMeterProvider(), nil
	}

	ctx := context.Background()

	res, err := newResource(ctx, appConf)
	if err != nil {
		return nil, err
	}

	exp, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(conf.Endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(conf.MetricsInterval))

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			otel.SetMeterProvider(mp)

			_ = otelruntime.Start(otelruntime.WithMinimumReadMemStatsInterval(time.Second))

			log.Info("otel metrics initialized",
				zap.String("endpoint", conf.Endpoint),
				zap.Duration("interval", conf.MetricsInterval),
			)
			markReady()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			c, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return mp.Shutdown(c)
		},
	})

	return mp, nil
}
