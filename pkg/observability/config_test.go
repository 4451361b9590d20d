package observability

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("should load config from otel section", func(t *testing.T) {
		// Given
		v := viper.New()
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(strings.NewReader(`
otel:
  endpoint: collector:4317
  tracing-enabled: true
  metrics-enabled: true
  metrics-interval: 30s
`)))

		// When
		cfg, err := newConfig(v)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "collector:4317", cfg.Endpoint)
		assert.True(t, cfg.TracingEnabled)
		assert.True(t, cfg.MetricsEnabled)
		assert.Equal(t, 30*time.Second, cfg.MetricsInterval)
	})

	t.Run("should tolerate missing section", func(t *testing.T) {
		// Given
		v := viper.New()

		// When
		cfg, err := newConfig(v)

		// Then
		require.NoError(t, err)
		assert.False(t, cfg.TracingEnabled)
		assert.False(t, cfg.MetricsEnabled)
	})

	t.Run("should default metrics interval", func(t *testing.T) {
		// Given
		v := viper.New()
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(strings.NewReader(`
otel:
  metrics-enabled: true
`)))

		// When
		cfg, err := newConfig(v)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, cfg.MetricsInterval)
	})
}
