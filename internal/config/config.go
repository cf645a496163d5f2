package config

import (
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/securecookie"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment variables naming the external API base URL, in priority order.
var apiBaseURLKeys = []string{"API_BASE_URL", "NEXT_PUBLIC_API_BASE_URL"}

// Config holds all configuration for the application.
type Config struct {
	// Addr is the listen address of the web server.
	Addr string `validate:"required"`
	// APIBaseURL is the external API base. Empty or relative values are
	// resolved against the incoming request's origin.
	APIBaseURL      string        `validate:"omitempty,uri"`
	UpstreamTimeout time.Duration `validate:"gt=0"`
	// SessionSecret signs the flash-message session cookie.
	SessionSecret string `validate:"required,min=16"`
	CookieSecure  bool
	// TokenMaxAge bounds the token cookie lifetime; zero means browser session.
	TokenMaxAge time.Duration `validate:"gte=0"`
	// StaticDir overrides the embedded static assets when set.
	StaticDir string
	// LoginRateLimit is the number of login attempts allowed per IP per minute.
	LoginRateLimit float64 `validate:"gt=0"`
	LogFormat      string  `validate:"oneof=text json"`
	LogLevel       string  `validate:"oneof=debug info warn error"`
}

// New loads configuration from the environment, after reading a .env file
// if one exists.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("SERVER_ADDR", ":3000")
	v.SetDefault("UPSTREAM_TIMEOUT", "10s")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("TOKEN_MAX_AGE", "0s")
	v.SetDefault("LOGIN_RATE_LIMIT", 10)
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_LEVEL", "info")

	apiBases := make([]string, 0, len(apiBaseURLKeys))
	for _, key := range apiBaseURLKeys {
		apiBases = append(apiBases, v.GetString(key))
	}

	cfg := &Config{
		Addr:            v.GetString("SERVER_ADDR"),
		APIBaseURL:      FirstNonEmpty(apiBases...),
		UpstreamTimeout: v.GetDuration("UPSTREAM_TIMEOUT"),
		SessionSecret:   v.GetString("SESSION_SECRET"),
		CookieSecure:    v.GetBool("COOKIE_SECURE"),
		TokenMaxAge:     v.GetDuration("TOKEN_MAX_AGE"),
		StaticDir:       v.GetString("STATIC_DIR"),
		LoginRateLimit:  v.GetFloat64("LOGIN_RATE_LIMIT"),
		LogFormat:       strings.ToLower(v.GetString("LOG_FORMAT")),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
	}

	if cfg.SessionSecret == "" {
		log.Println("WARNING: SESSION_SECRET is not set; using a random per-process secret")
		cfg.SessionSecret = hex.EncodeToString(securecookie.GenerateRandomKey(32))
	}
	if cfg.APIBaseURL == "" {
		log.Println("WARNING: API_BASE_URL is not set; API calls will be resolved against the request origin")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// FirstNonEmpty returns the first value that is not blank, or "".
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
