package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testYAML = `
app:
  name: travelhub
http:
  port: "9999"
`

func writeConfigFile(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(dir+"/config.yaml", []byte(testYAML), 0o644))
	t.Chdir(dir)
}

func TestNew_EnvOverridesFile(t *testing.T) {
	writeConfigFile(t)
	t.Setenv("HTTP_PORT", "7777")

	cfg, err := New()

	assert.NoError(t, err)
	assert.Equal(t, "7777", cfg.HTTP.Port)
	assert.Equal(t, "travelhub", cfg.App.Name)
}

func TestNew_BadEnvOverrideFails(t *testing.T) {
	writeConfigFile(t)
	t.Setenv("JWT_ACCESS_TTL", "not-a-duration")

	_, err := New()

	assert.Error(t, err)
}

func TestNew_NoFileFallsBackToEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "8123")

	cfg, err := New()

	assert.NoError(t, err)
	assert.Equal(t, "8123", cfg.HTTP.Port)
}

func TestNew_ProdRequiresRealSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "prod")

	_, err := New()

	assert.Error(t, err)
}
