package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppConfig(t *testing.T) {
	t.Run("should load from environment variables", func(t *testing.T) {
		// Given
		t.Setenv(envAppEnv, "pro")
		t.Setenv(envAppServiceName, "notification-service")
		t.Setenv(envAppServiceVersion, "1.2.3")
		t.Setenv(envConfigFile, "/etc/crm/config.yaml")

		// When
		conf, err := newAppConfig()

		// Then
		require.NoError(t, err)
		assert.Equal(t, EnvProduction, conf.Environment)
		assert.Equal(t, "notification-service", conf.ServiceName)
		assert.Equal(t, "1.2.3", conf.ServiceVersion)
		assert.Equal(t, "/etc/crm/config.yaml", conf.ConfigFile)
	})

	t.Run("should derive config path from environment name", func(t *testing.T) {
		// Given
		t.Setenv(envAppEnv, "standalone")
		t.Setenv(envAppServiceName, "notification-service")
		t.Setenv(envAppServiceVersion, "dev")
		t.Setenv(envConfigFile, "")
		t.Setenv(envConfigDir, "")
		t.Setenv(envConfigName, "")

		// When
		conf, err := newAppConfig()

		// Then
		require.NoError(t, err)
		assert.Equal(t, "configs/config.standalone.yaml", conf.ConfigFile)
	})

	t.Run("should reject unknown environment", func(t *testing.T) {
		// Given
		t.Setenv(envAppEnv, "staging")
		t.Setenv(envAppServiceName, "notification-service")
		t.Setenv(envAppServiceVersion, "dev")

		// When
		_, err := newAppConfig()

		// Then
		require.Error(t, err)
	})

	t.Run("should require service name", func(t *testing.T) {
		// Given
		t.Setenv(envAppEnv, "dev")
		t.Setenv(envAppServiceName, "")
		t.Setenv(envAppServiceVersion, "dev")

		// When
		_, err := newAppConfig()

		// Then
		require.Error(t, err)
	})
}
