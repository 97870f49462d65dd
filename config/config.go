// Package config handles loading and validation of application configuration
// from environment variables and an optional YAML configuration file.
package config

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/rebirthstudio/portfolio-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Supported transactional-email providers.
const (
	ProviderResend   = "resend"
	ProviderPostmark = "postmark"
)

// Fixed addressing used by the contact endpoint unless overridden by deployment config.
const (
	DefaultFromName    = "Portfolio Contact"
	DefaultFromAddress = "contact@rebirthstudio.org"
	DefaultToAddress   = "marilegrelle@gmail.com"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
	// TrustedProxies is a list of CIDR ranges or IPs of trusted reverse proxies.
	// If empty, X-Forwarded-For headers are ignored entirely.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES" yaml:"trusted_proxies"`
	// ShutdownTimeoutSeconds bounds how long in-flight requests may run after SIGTERM.
	ShutdownTimeoutSeconds int `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS" yaml:"shutdown_timeout_seconds"`
}

// EmailConfig holds configuration for delivering contact submissions.
// Only the provider credential is secret; addressing is fixed per deployment.
type EmailConfig struct {
	Provider            string `mapstructure:"PROVIDER" yaml:"provider"`
	ResendAPIKey        string `mapstructure:"RESEND_API_KEY" yaml:"resend_api_key"`
	PostmarkServerToken string `mapstructure:"POSTMARK_SERVER_TOKEN" yaml:"postmark_server_token"`
	FromName            string `mapstructure:"FROM_NAME" yaml:"from_name"`
	FromAddress         string `mapstructure:"FROM_ADDRESS" yaml:"from_address"`
	ToAddress           string `mapstructure:"TO_ADDRESS" yaml:"to_address"`
}

// Credential returns the secret for the selected provider, empty when unset.
func (c *EmailConfig) Credential() string {
	switch c.Provider {
	case ProviderPostmark:
		return c.PostmarkServerToken
	default:
		return c.ResendAPIKey
	}
}

// CredentialEnvVar names the environment variable an operator has to set.
func (c *EmailConfig) CredentialEnvVar() string {
	if c.Provider == ProviderPostmark {
		return "POSTMARK_SERVER_TOKEN"
	}
	return "RESEND_API_KEY"
}

// Sender formats the From header, e.g. "Portfolio Contact <contact@rebirthstudio.org>".
func (c *EmailConfig) Sender() string {
	return fmt.Sprintf("%s <%s>", c.FromName, c.FromAddress)
}

// Config aggregates all application configuration sections.
type Config struct {
	Server ServerConfig `mapstructure:"SERVER" yaml:"server"`
	Email  EmailConfig  `mapstructure:"EMAIL" yaml:"email"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// envBindings maps config keys to the environment variables operators set.
// Format: {configKey, envVar}
var envBindings = [][2]string{
	// Server config
	{"SERVER.ENVIRONMENT", "ENVIRONMENT"},
	{"SERVER.PORT", "PORT"},
	{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
	{"SERVER.VERSION", "VERSION"},
	{"SERVER.TRUSTED_PROXIES", "TRUSTED_PROXIES"},
	{"SERVER.SHUTDOWN_TIMEOUT_SECONDS", "SHUTDOWN_TIMEOUT_SECONDS"},
	// Email config
	{"EMAIL.PROVIDER", "EMAIL_PROVIDER"},
	{"EMAIL.RESEND_API_KEY", "RESEND_API_KEY"},
	{"EMAIL.POSTMARK_SERVER_TOKEN", "POSTMARK_SERVER_TOKEN"},
	{"EMAIL.FROM_NAME", "EMAIL_FROM_NAME"},
	{"EMAIL.FROM_ADDRESS", "EMAIL_FROM_ADDRESS"},
	{"EMAIL.TO_ADDRESS", "EMAIL_TO_ADDRESS"},
}

// bindEnvVars binds multiple environment variables to config keys.
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("SERVER.TRUSTED_PROXIES", []string{})
	v.SetDefault("SERVER.SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("EMAIL.PROVIDER", ProviderResend)
	v.SetDefault("EMAIL.RESEND_API_KEY", "")
	v.SetDefault("EMAIL.POSTMARK_SERVER_TOKEN", "")
	v.SetDefault("EMAIL.FROM_NAME", DefaultFromName)
	v.SetDefault("EMAIL.FROM_ADDRESS", DefaultFromAddress)
	v.SetDefault("EMAIL.TO_ADDRESS", DefaultToAddress)
}

// LoadConfig loads configuration using Viper: defaults first, then the YAML
// file named by CONFIG_FILE (if any), then environment variables. The result
// is validated before it is returned.
//
// A missing provider credential is not a load error. The server starts and
// the contact endpoint reports the service as not configured.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		log.Infow("Config file loaded", "path", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}
	// Comma separated env values arrive as a single element.
	cfg.Server.AllowedOrigins = splitList(cfg.Server.AllowedOrigins)
	cfg.Server.TrustedProxies = splitList(cfg.Server.TrustedProxies)
	cfg.Email.Provider = strings.ToLower(strings.TrimSpace(cfg.Email.Provider))

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"server_port", cfg.Server.Port,
		"allowed_origins", cfg.Server.AllowedOrigins,
		"trusted_proxies", cfg.Server.TrustedProxies,
		"email_provider", cfg.Email.Provider,
		"email_credential", logger.MaskAPIKey(cfg.Email.Credential()),
		"email_to", logger.MaskEmail(cfg.Email.ToAddress),
	)
	return &cfg, nil
}

// validateConfig checks if the loaded configuration values are valid.
func validateConfig(cfg *Config) error {
	log := logger.GetLogger()

	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	switch cfg.Server.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("unknown environment %q", cfg.Server.Environment)
	}
	if !containsWildcard(cfg.Server.AllowedOrigins) {
		for _, origin := range cfg.Server.AllowedOrigins {
			if _, err := url.ParseRequestURI(origin); err != nil {
				return fmt.Errorf("invalid allowed origin '%s': %w", origin, err)
			}
		}
	}
	if cfg.Server.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}

	switch cfg.Email.Provider {
	case ProviderResend, ProviderPostmark:
	default:
		return fmt.Errorf("unsupported email provider %q", cfg.Email.Provider)
	}
	if cfg.Email.FromName == "" {
		return fmt.Errorf("email from name is required")
	}
	if _, err := mail.ParseAddress(cfg.Email.FromAddress); err != nil {
		return fmt.Errorf("invalid email from address %q: %w", cfg.Email.FromAddress, err)
	}
	if _, err := mail.ParseAddress(cfg.Email.ToAddress); err != nil {
		return fmt.Errorf("invalid email to address %q: %w", cfg.Email.ToAddress, err)
	}
	if cfg.Email.Credential() == "" {
		log.Warnw("Email provider credential is not set; contact submissions will be rejected",
			"provider", cfg.Email.Provider,
			"env_var", cfg.Email.CredentialEnvVar())
	}

	return nil
}

// splitList expands comma separated entries and drops blanks.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// containsWildcard checks if the list of allowed origins contains the wildcard "*".
func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
