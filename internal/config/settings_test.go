package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv("MORTGO_FORMAT", "")
	t.Setenv("MORTGO_DEBUG", "")
	t.Setenv("MORTGO_CONFIG", "")

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "console", settings.Format)
	assert.False(t, settings.Debug)
	assert.Empty(t, settings.ConfigFile)
}

func TestLoadSettings_FromEnvironment(t *testing.T) {
	t.Setenv("MORTGO_FORMAT", "json")
	t.Setenv("MORTGO_DEBUG", "true")
	t.Setenv("MORTGO_CONFIG", "/tmp/loan.yaml")

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "json", settings.Format)
	assert.True(t, settings.Debug)
	assert.Equal(t, "/tmp/loan.yaml", settings.ConfigFile)
}

func TestLoadSettings_InvalidBool(t *testing.T) {
	t.Setenv("MORTGO_DEBUG", "sometimes")

	_, err := LoadSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
