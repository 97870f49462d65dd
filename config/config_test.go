package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rebirthstudio/portfolio-backend/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

// clearEnv blanks every variable LoadConfig reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, b := range envBindings {
		t.Setenv(b[1], "")
		os.Unsetenv(b[1])
	}
	t.Setenv("CONFIG_FILE", "")
	os.Unsetenv("CONFIG_FILE")
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Server.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, ProviderResend, cfg.Email.Provider)
	assert.Equal(t, "Portfolio Contact <contact@rebirthstudio.org>", cfg.Email.Sender())
	assert.Equal(t, DefaultToAddress, cfg.Email.ToAddress)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_MissingCredentialIsNotAnError(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.Email.Credential())
	assert.Equal(t, "RESEND_API_KEY", cfg.Email.CredentialEnvVar())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "resend key",
			envVars: map[string]string{
				"RESEND_API_KEY": "re_test_key",
				"PORT":           "9090",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "re_test_key", cfg.Email.Credential())
				assert.Equal(t, "9090", cfg.Server.Port)
			},
		},
		{
			name: "postmark provider uses server token",
			envVars: map[string]string{
				"EMAIL_PROVIDER":        "Postmark",
				"POSTMARK_SERVER_TOKEN": "pm-token",
				"RESEND_API_KEY":        "ignored",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ProviderPostmark, cfg.Email.Provider)
				assert.Equal(t, "pm-token", cfg.Email.Credential())
				assert.Equal(t, "POSTMARK_SERVER_TOKEN", cfg.Email.CredentialEnvVar())
			},
		},
		{
			name: "comma separated origins",
			envVars: map[string]string{
				"ALLOWED_ORIGINS": "https://rebirthstudio.org, https://www.rebirthstudio.org",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"https://rebirthstudio.org", "https://www.rebirthstudio.org"}, cfg.Server.AllowedOrigins)
			},
		},
		{
			name:        "unsupported provider",
			envVars:     map[string]string{"EMAIL_PROVIDER": "carrier-pigeon"},
			expectError: true,
		},
		{
			name:        "invalid origin",
			envVars:     map[string]string{"ALLOWED_ORIGINS": "not a url"},
			expectError: true,
		},
		{
			name:        "invalid recipient",
			envVars:     map[string]string{"EMAIL_TO_ADDRESS": "nobody"},
			expectError: true,
		},
		{
			name:        "unknown environment",
			envVars:     map[string]string{"ENVIRONMENT": "staging"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := LoadConfig()
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`server:
  environment: production
  port: "3000"
  allowed_origins:
    - https://rebirthstudio.org
email:
  provider: resend
  resend_api_key: re_from_file
  to_address: studio@example.com
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "4000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "4000", cfg.Server.Port, "environment overrides the file")
	assert.Equal(t, []string{"https://rebirthstudio.org"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "re_from_file", cfg.Email.Credential())
	assert.Equal(t, "studio@example.com", cfg.Email.ToAddress)
}

func TestLoadConfig_MissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := LoadConfig()
	assert.Error(t, err)
}
