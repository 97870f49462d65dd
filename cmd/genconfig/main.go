// Command genconfig turns a .env file into the YAML file config.LoadConfig
// reads through CONFIG_FILE.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rebirthstudio/portfolio-backend/config"
	"gopkg.in/yaml.v3"
)

func getOrDefault(env map[string]string, key, defaultValue string) string {
	if value := strings.TrimSpace(env[key]); value != "" {
		return value
	}
	return defaultValue
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// buildConfig maps .env keys onto the config sections, with the same
// defaults the server applies.
func buildConfig(env map[string]string) (config.Config, error) {
	var cfg config.Config

	cfg.Server.Environment = config.Environment(getOrDefault(env, "ENVIRONMENT", string(config.EnvDevelopment)))
	cfg.Server.Port = getOrDefault(env, "PORT", "8080")
	cfg.Server.AllowedOrigins = splitCSV(getOrDefault(env, "ALLOWED_ORIGINS", "*"))
	cfg.Server.Version = getOrDefault(env, "VERSION", "dev")
	cfg.Server.TrustedProxies = splitCSV(env["TRUSTED_PROXIES"])

	timeout, err := strconv.Atoi(getOrDefault(env, "SHUTDOWN_TIMEOUT_SECONDS", "10"))
	if err != nil {
		return cfg, fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be a number: %w", err)
	}
	cfg.Server.ShutdownTimeoutSeconds = timeout

	cfg.Email.Provider = strings.ToLower(getOrDefault(env, "EMAIL_PROVIDER", config.ProviderResend))
	cfg.Email.ResendAPIKey = env["RESEND_API_KEY"]
	cfg.Email.PostmarkServerToken = env["POSTMARK_SERVER_TOKEN"]
	cfg.Email.FromName = getOrDefault(env, "EMAIL_FROM_NAME", config.DefaultFromName)
	cfg.Email.FromAddress = getOrDefault(env, "EMAIL_FROM_ADDRESS", config.DefaultFromAddress)
	cfg.Email.ToAddress = getOrDefault(env, "EMAIL_TO_ADDRESS", config.DefaultToAddress)

	if cfg.Email.Credential() == "" {
		return cfg, fmt.Errorf("%s is not set in your .env file; the contact endpoint would refuse every submission", cfg.Email.CredentialEnvVar())
	}
	return cfg, nil
}

func run(envPath, outPath string) error {
	env, err := godotenv.Read(envPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", envPath, err)
	}

	cfg, err := buildConfig(env)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file holds the provider credential.
	if err := os.WriteFile(outPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}

func main() {
	envPath := flag.String("env", ".env", "Path of the .env file to read")
	outPath := flag.String("out", "config.yaml", "Path of the YAML file to write")
	flag.Parse()

	if err := run(*envPath, *outPath); err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Configuration written to %s\n", *outPath)
}
