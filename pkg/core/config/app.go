package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Environment variable names
const (
	envAppEnv            = "APP_ENV"
	envAppServiceName    = "APP_SERVICE_NAME"
	envAppServiceVersion = "APP_SERVICE_VERSION"
	envConfigFile        = "CONFIG_FILE"
	envConfigDir         = "CONFIG_DIR"
	envConfigName        = "CONFIG_NAME"
)

const defaultConfigDir = "./configs"

// Environment represents the deployment environment.
type Environment string

const (
	// EnvStandalone runs the service without external infrastructure:
	// the in-process bus and the in-memory notification store are used.
	EnvStandalone  Environment = "standalone"
	EnvDevelopment Environment = "dev"
	EnvProduction  Environment = "pro"
)

// IsValid checks if the environment value is valid.
func (e Environment) IsValid() bool {
	switch e {
	case EnvStandalone, EnvDevelopment, EnvProduction:
		return true
	}
	return false
}

func (e Environment) String() string {
	return string(e)
}

// AppConfig represents the core application metadata and configuration paths.
// This is loaded from environment variables and provides service identity
// and configuration file location information.
type AppConfig struct {
	// ConfigFile is the full path to the config file
	ConfigFile string
	// ServiceName is the name of the service; also used as the event Source
	ServiceName string
	// ServiceVersion is the version of the service
	ServiceVersion string
	// Environment is the deployment environment
	Environment Environment
}

// NewAppConfigModule creates a new fx module for application configuration.
// It provides an AppConfig instance loaded from environment variables.
//
// Required environment variables:
//   - APP_ENV: Environment name (standalone, dev, pro)
//   - APP_SERVICE_NAME: Service name
//   - APP_SERVICE_VERSION: Service version
//
// Optional environment variables:
//   - CONFIG_FILE: Full path to config file (default: ./configs/config.{env}.yaml)
func NewAppConfigModule() fx.Option {
	return fx.Module("appconfig",
		fx.Provide(newAppConfig),
		fx.Invoke(func(logger *zap.Logger, conf AppConfig) {
			logger.Info("Loaded application configuration",
				zap.String("service", conf.ServiceName),
				zap.String("version", conf.ServiceVersion),
				zap.String("environment", conf.Environment.String()),
				zap.String("configFile", conf.ConfigFile),
			)
		}),
	)
}

// LoadAppConfig reads AppConfig from environment variables. The
// entrypoint uses it before the fx graph exists to decide which
// infrastructure modules to compose.
func LoadAppConfig() (AppConfig, error) {
	return newAppConfig()
}

// newAppConfig creates a new AppConfig by reading environment variables.
// It loads the .env file if it exists (optional).
func newAppConfig() (AppConfig, error) {
	// Load .env file if exists - silently ignore if it doesn't
	_ = godotenv.Load()

	env := Environment(os.Getenv(envAppEnv))
	if !env.IsValid() {
		return AppConfig{}, fmt.Errorf("invalid %s: %s", envAppEnv, env)
	}

	serviceName := os.Getenv(envAppServiceName)
	if serviceName == "" {
		return AppConfig{}, fmt.Errorf("%s is required", envAppServiceName)
	}

	serviceVersion := os.Getenv(envAppServiceVersion)
	if serviceVersion == "" {
		return AppConfig{}, fmt.Errorf("%s is required", envAppServiceVersion)
	}

	configFile := os.Getenv(envConfigFile)
	if configFile == "" {
		configDir := os.Getenv(envConfigDir)
		if configDir == "" {
			configDir = defaultConfigDir
		}

		configName := os.Getenv(envConfigName)
		if configName == "" {
			configName = "config." + env.String()
		}

		configFile = filepath.Join(configDir, configName+".yaml")
	}

	return AppConfig{
		ConfigFile:     configFile,
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Environment:    env,
	}, nil
}
