package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	EXCHANGE_BASE_URL=https://api.privatbank.ua
//	EXCHANGE_TIMEOUT=10s
//	EXCHANGE_MAX_DAYS=10
//	DEFAULT_CURRENCIES=USD,EUR
//	AUDIT_LOG_DIR=logs
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Exchange ExchangeConfig // remote exchange-rate API settings
	Audit    AuditConfig    // request/response audit log settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // TCP port the HTTP server will listen on (e.g., "8080")
}

// ExchangeConfig defines how the remote exchange-rate API is reached and
// which part of its answer the service cares about.
//
// Fields:
//   - BaseURL: scheme+host of the exchange API (no trailing slash).
//   - Timeout: per-request HTTP client timeout.
//   - MaxDays: deepest history window the remote supports (days).
//   - DefaultCurrencies: currency codes used when a request names none.
type ExchangeConfig struct {
	BaseURL           string
	Timeout           time.Duration
	MaxDays           int
	DefaultCurrencies []string
}

// AuditConfig holds settings for the append-only exchange audit log.
type AuditConfig struct {
	Dir string // directory the log file is created in
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read throughout the application
// instead of each package consulting the environment on its own.
var AppConfig Config

// LoadConfig initializes the global AppConfig from a .env file (if present)
// and environment variables.
//
// Precedence (lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file.
//  3. Environment variables.
//
// Fatal exit: validateConfig() terminates the process if required values
// are missing after loading.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("EXCHANGE_BASE_URL", "https://api.privatbank.ua")
	viper.SetDefault("EXCHANGE_TIMEOUT", "10s")
	viper.SetDefault("EXCHANGE_MAX_DAYS", 10)
	viper.SetDefault("DEFAULT_CURRENCIES", "USD,EUR")

	viper.SetDefault("AUDIT_LOG_DIR", "logs")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Exchange: ExchangeConfig{
			BaseURL:           strings.TrimRight(viper.GetString("EXCHANGE_BASE_URL"), "/"),
			Timeout:           viper.GetDuration("EXCHANGE_TIMEOUT"),
			MaxDays:           viper.GetInt("EXCHANGE_MAX_DAYS"),
			DefaultCurrencies: splitCurrencies(viper.GetString("DEFAULT_CURRENCIES")),
		},
		Audit: AuditConfig{
			Dir: viper.GetString("AUDIT_LOG_DIR"),
		},
	}

	validateConfig()
}

// splitCurrencies turns "usd, eur" into ["USD", "EUR"], dropping empties.
func splitCurrencies(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		code := strings.ToUpper(strings.TrimSpace(part))
		if code != "" {
			out = append(out, code)
		}
	}
	return out
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing. This avoids unexpected runtime failures
// due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Exchange.BaseURL == "" {
		missing = append(missing, "EXCHANGE_BASE_URL")
	}
	if AppConfig.Exchange.Timeout <= 0 {
		missing = append(missing, "EXCHANGE_TIMEOUT")
	}
	if AppConfig.Exchange.MaxDays <= 0 {
		missing = append(missing, "EXCHANGE_MAX_DAYS")
	}
	if len(AppConfig.Exchange.DefaultCurrencies) == 0 {
		missing = append(missing, "DEFAULT_CURRENCIES")
	}
	if AppConfig.Audit.Dir == "" {
		missing = append(missing, "AUDIT_LOG_DIR")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
