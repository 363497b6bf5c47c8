package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ytget/image-converter/internal/model"
)

// DefaultEndpoint can be overridden at build time with
// -ldflags "-X github.com/ytget/image-converter/internal/config.DefaultEndpoint=https://..."
var DefaultEndpoint = "http://127.0.0.1:8080/convert_image"

// Environment variable names
const (
	EnvEndpoint       = "CONVERTER_ENDPOINT"
	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxUploadSize  = "MAX_UPLOAD_SIZE"
	EnvDefaultFormat  = "DEFAULT_FORMAT"
)

// Defaults for values not supplied by the environment
const (
	DefaultRequestTimeout = 60 * time.Second
	DefaultMaxUploadSize  = 25 * 1024 * 1024
)

// Config holds the build/launch-time configuration of the converter client
type Config struct {
	Endpoint       string
	RequestTimeout time.Duration
	MaxUploadSize  int64
	DefaultFormat  model.Format
}

// LoadFromEnv reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment variables
// take precedence over it.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	formatName := getEnvOrDefault(EnvDefaultFormat, model.DefaultFormat.String())
	format, err := model.ParseFormat(formatName)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvDefaultFormat, err)
	}

	cfg := &Config{
		Endpoint:       strings.TrimSpace(getEnvOrDefault(EnvEndpoint, DefaultEndpoint)),
		RequestTimeout: parseDurationOrDefault(EnvRequestTimeout, DefaultRequestTimeout),
		MaxUploadSize:  parseIntOrDefault(EnvMaxUploadSize, DefaultMaxUploadSize),
		DefaultFormat:  format,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value
func (c *Config) Validate() error {
	if err := ValidateEndpoint(c.Endpoint); err != nil {
		return fmt.Errorf("invalid %s: %w", EnvEndpoint, err)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%s must be > 0 (got %s)", EnvRequestTimeout, c.RequestTimeout)
	}
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("%s must be > 0 (got %d)", EnvMaxUploadSize, c.MaxUploadSize)
	}
	if !c.DefaultFormat.Valid() {
		return fmt.Errorf("%s is not a supported format", EnvDefaultFormat)
	}
	return nil
}

// ValidateEndpoint accepts absolute http(s) URLs with a host
func ValidateEndpoint(endpoint string) error {
	parsedURL, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return err
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("URL must have a valid host")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
