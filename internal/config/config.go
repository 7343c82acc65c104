package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"rps_match/internal/logger"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort    string `env:"APP_PORT" envDefault:"8080"`
	AppVersion string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON    bool   `env:"LOG_JSON" envDefault:"false"`

	// Match limits
	MaxRounds int `env:"MAX_ROUNDS" envDefault:"100"`

	// WebSocket origin check, empty allows any origin
	AllowedOrigin string `env:"ALLOWED_ORIGIN"`

	// Rate limiting. Without REDIS_ADDR the limiter runs in memory.
	RedisAddr            string `env:"REDIS_ADDR"`
	RedisPassword        string `env:"REDIS_PASSWORD"`
	RedisDB              int    `env:"REDIS_DB" envDefault:"0"`
	APIRateLimit         int    `env:"API_RATE_LIMIT" envDefault:"60"`
	APIRateWindowSeconds int    `env:"API_RATE_WINDOW_SECONDS" envDefault:"60"`
}

// APIRateWindow returns the rate limit window as a duration.
func (c *Config) APIRateWindow() time.Duration {
	return time.Duration(c.APIRateWindowSeconds) * time.Second
}

// Parse reads .env (if present) and the environment.
func Parse() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MaxRounds <= 0 {
		return errors.New("MAX_ROUNDS must be positive")
	}
	if c.APIRateLimit <= 0 {
		return errors.New("API_RATE_LIMIT must be positive")
	}
	if c.APIRateWindowSeconds <= 0 {
		return errors.New("API_RATE_WINDOW_SECONDS must be positive")
	}
	return nil
}

// initLogger sets up logging from the raw LOG_LEVEL/LOG_JSON values so that
// a config failure is already reported in the configured format.
func initLogger() {
	_ = godotenv.Load()
	asJSON, _ := strconv.ParseBool(os.Getenv("LOG_JSON"))
	logger.Init(os.Getenv("LOG_LEVEL"), asJSON)
}

// Load is Parse for process startup: any error is fatal.
func Load() *Config {
	initLogger()
	cfg, err := Parse()
	if err != nil {
		logger.Fatal("config load failed", "error", err)
	}
	return cfg
}
