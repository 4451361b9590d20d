package observability

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Endpoint of the OTLP gRPC collector. Tracing works without it in
	// local in-process mode; metrics require it.
	Endpoint        string        `mapstructure:"endpoint"`
	TracingEnabled  bool          `mapstructure:"tracing-enabled"`
	MetricsEnabled  bool          `mapstructure:"metrics-enabled"`
	MetricsInterval time.Duration `mapstructure:"metrics-interval"`
}

func newConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	sub := v.Sub("otel")
	if sub == nil {
		return cfg, nil
	}
	if err := sub.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to load otel config: %w", err)
	}
	if cfg.MetricsInterval == 0 {
		cfg.MetricsInterval = 10 * time.Second
	}
	return cfg, nil
}
