package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViper_NoConfigFile(t *testing.T) {
	v, err := newViper("")

	require.NoError(t, err)
	assert.NotNil(t, v)
	assert.Empty(t, v.ConfigFileUsed())
}

func TestNewViper_ReadsYamlFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("rabbit:\n  host: localhost\n  port: 5672\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	v, err := newViper(FilePath(path))

	require.NoError(t, err)
	assert.Equal(t, "localhost", v.GetString("rabbit.host"))
	assert.Equal(t, 5672, v.GetInt("rabbit.port"))
}

func TestNewViper_MissingFile(t *testing.T) {
	_, err := newViper("/nonexistent/config.yaml")

	require.Error(t, err)
}


func TestEnvironmentIsValid(t *testing.T) {
	assert.True(t, EnvStandalone.IsValid())
	assert.True(t, EnvDevelopment.IsValid())
	assert.True(t, EnvProduction.IsValid())
	assert.False(t, Environment("staging").IsValid())
	assert.False(t, Environment("").IsValid())
}
