package email

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	FromName string `mapstructure:"from-name"`

	// RateLimit caps outbound messages per second, RateBurst the burst size.
	RateLimit float64 `mapstructure:"rate-limit"`
	RateBurst int     `mapstructure:"rate-burst"`
}

func newConfig(v *viper.Viper, logger *zap.Logger) (Config, error) {
	var cfg Config
	sub := v.Sub("email")
	if sub == nil {
		return cfg, fmt.Errorf("email config section is missing")
	}
	if err := sub.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to load email config: %w", err)
	}

	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.FromName == "" {
		cfg.FromName = "CRM System"
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = 1
	}
	if cfg.RateBurst == 0 {
		cfg.RateBurst = 5
	}

	if cfg.Host == "" {
		return cfg, fmt.Errorf("email host is required")
	}

	logger.Info("loaded email config",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("from", cfg.From))
	return cfg, nil
}
