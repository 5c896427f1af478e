package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the server process.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Form   FormPaths
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Version               string
	Transport             string
	Host                  string
	Port                  string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// FormPaths locates the form override file and the UI build artifact.
type FormPaths struct {
	OverridePath string
	UIAssetPath  string
}

// Transport modes accepted by APP_TRANSPORT.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
	TransportREST  = "rest"
)

// Load reads process configuration from environment variables, applying
// defaults where possible. Delivery settings are read separately by
// EnvOverride so that unset variables fall through to the form defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	transport := getEnv("APP_TRANSPORT", TransportStdio)
	switch transport {
	case TransportStdio, TransportHTTP, TransportREST:
	default:
		return nil, fmt.Errorf("invalid APP_TRANSPORT %q", transport)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "support-desk"),
			Version:               getEnv("APP_VERSION", "dev"),
			Transport:             transport,
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Form: FormPaths{
			OverridePath: os.Getenv("SUPPORT_CONFIG_PATH"),
			UIAssetPath:  getEnv("SUPPORT_UI_PATH", "web/support-form.html"),
		},
	}

	return cfg, nil
}

// EnvOverride builds a form override from delivery-related environment
// variables. Only variables that are explicitly set appear in the override,
// so env values layer over the override file, which layers over the default.
func EnvOverride() (*Override, error) {
	ov := &Override{}

	delivery := func() *DeliveryOverride {
		if ov.Delivery == nil {
			ov.Delivery = &DeliveryOverride{}
		}
		return ov.Delivery
	}

	if v, ok := os.LookupEnv("SMTP_HOST"); ok {
		delivery().Host = &v
	}
	if v, ok := os.LookupEnv("SMTP_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
		delivery().Port = &port
	}
	if v, ok := os.LookupEnv("SMTP_SECURE"); ok {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_SECURE: %w", err)
		}
		delivery().Secure = &secure
	}
	if v, ok := os.LookupEnv("SMTP_USER"); ok {
		if delivery().Auth == nil {
			delivery().Auth = &AuthOverride{}
		}
		delivery().Auth.User = &v
	}
	if v, ok := os.LookupEnv("SMTP_PASS"); ok {
		if delivery().Auth == nil {
			delivery().Auth = &AuthOverride{}
		}
		delivery().Auth.Pass = &v
	}
	if v, ok := os.LookupEnv("SUPPORT_EMAIL"); ok {
		ov.SupportEmail = &v
	}

	return ov, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
