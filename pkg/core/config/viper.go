package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// viperConfig holds internal configuration options for the Viper module.
type viperConfig struct {
	configPath   *string
	noConfigFile bool
}

// ViperOption is a functional option for configuring the Viper module.
type ViperOption func(*viperConfig)

// WithConfigPath sets a direct path to the configuration file.
// Overrides the path resolved from AppConfig.
func WithConfigPath(path string) ViperOption {
	return func(cfg *viperConfig) {
		cfg.configPath = &path
	}
}

// WithoutConfigFile disables loading of any config file.
// Viper will still be available for DI but with no file-based configuration.
func WithoutConfigFile() ViperOption {
	return func(cfg *viperConfig) {
		cfg.noConfigFile = true
	}
}

// FilePath represents the path to a configuration file.
// Empty string means no config file will be loaded.
type FilePath string

// NewViperModule creates an fx module for Viper configuration.
// By default the config path comes from AppConfig, which resolves it
// from CONFIG_FILE or falls back to ./configs/config.{env}.yaml.
func NewViperModule(opts ...ViperOption) fx.Option {
	cfg := &viperConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return fx.Module("viper",
		provideFilePath(cfg),
		fx.Provide(newViper),
		fx.Invoke(logViperConfig),
	)
}

func provideFilePath(cfg *viperConfig) fx.Option {
	if cfg.noConfigFile {
		return fx.Supply(FilePath(""))
	}
	if cfg.configPath != nil {
		return fx.Supply(FilePath(*cfg.configPath))
	}
	return fx.Provide(func(conf AppConfig) FilePath {
		return FilePath(conf.ConfigFile)
	})
}

func logViperConfig(logger *zap.Logger, v *viper.Viper) {
	if v.ConfigFileUsed() == "" {
		logger.Info("No config file specified, using empty viper instance")
		return
	}
	logger.Info("Configuration loaded successfully",
		zap.String("configFile", v.ConfigFileUsed()),
		zap.Int("settingsCount", len(v.AllSettings())),
	)
}

// newViper must not depend on the logger: the logger reads its own
// config from viper, so a logger parameter here would close a cycle.
func newViper(configFile FilePath) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if configFile == "" {
		return v, nil
	}

	v.SetConfigFile(string(configFile))
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file [%s]: %w", configFile, err)
	}

	return v, nil
}
