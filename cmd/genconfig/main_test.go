package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rebirthstudio/portfolio-backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuildConfig_Defaults(t *testing.T) {
	cfg, err := buildConfig(map[string]string{"RESEND_API_KEY": "re_123456789"})
	require.NoError(t, err)

	assert.Equal(t, config.EnvDevelopment, cfg.Server.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, config.ProviderResend, cfg.Email.Provider)
	assert.Equal(t, config.DefaultToAddress, cfg.Email.ToAddress)
}

func TestBuildConfig_Errors(t *testing.T) {
	_, err := buildConfig(map[string]string{})
	assert.ErrorContains(t, err, "RESEND_API_KEY")

	_, err = buildConfig(map[string]string{"EMAIL_PROVIDER": "postmark", "RESEND_API_KEY": "re_123"})
	assert.ErrorContains(t, err, "POSTMARK_SERVER_TOKEN")

	_, err = buildConfig(map[string]string{"RESEND_API_KEY": "re_123", "SHUTDOWN_TIMEOUT_SECONDS": "soon"})
	assert.ErrorContains(t, err, "SHUTDOWN_TIMEOUT_SECONDS")
}

func TestRun_WritesYAML(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	outPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(envPath, []byte(
		"ENVIRONMENT=production\nALLOWED_ORIGINS=https://rebirthstudio.org, https://www.rebirthstudio.org\nRESEND_API_KEY=re_live_key\n"),
		0o600))

	require.NoError(t, run(envPath, outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, config.EnvProduction, cfg.Server.Environment)
	assert.Equal(t, []string{"https://rebirthstudio.org", "https://www.rebirthstudio.org"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "re_live_key", cfg.Email.ResendAPIKey)
	assert.Contains(t, string(data), "resend_api_key: re_live_key")
}

func TestRun_MissingEnvFile(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "missing.env"), filepath.Join(t.TempDir(), "out.yaml"))
	assert.Error(t, err)
}
