package config

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseDriver     string  `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL        string  `mapstructure:"DATABASE_URL"`
	JWTSecret          string  `mapstructure:"JWT_SECRET"`
	TokenTTLHours      int     `mapstructure:"TOKEN_TTL_HOURS"`
	Port               string  `mapstructure:"PORT"`
	RedisURL           string  `mapstructure:"REDIS_URL"`
	RedisChannel       string  `mapstructure:"REDIS_CHANNEL"`
	RateLimitPerSecond float64 `mapstructure:"RATE_LIMIT_PER_SECOND"`
	RateLimitBurst     int     `mapstructure:"RATE_LIMIT_BURST"`
}

var AppConfig *Config

var defaults = map[string]any{
	"DATABASE_DRIVER":       "postgres",
	"DATABASE_URL":          "",
	"JWT_SECRET":            "",
	"TOKEN_TTL_HOURS":       24 * 7,
	"PORT":                  ":8080",
	"REDIS_URL":             "",
	"REDIS_CHANNEL":         "educonnect.notifications",
	"RATE_LIMIT_PER_SECOND": 2.0,
	"RATE_LIMIT_BURST":      5,
}

// TokenTTL returns how long minted access tokens stay valid.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// ErrMissingJWTSecret is returned by Validate when JWT_SECRET is empty.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Validate reports settings the server cannot run without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	cfg, err := Load(".")
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	AppConfig = cfg
}

// Load reads <dir>/.env if present, then overlays environment variables.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Println("[CONFIG] Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	log.Printf("[CONFIG] - Database driver: %s", cfg.DatabaseDriver)
	log.Printf("[CONFIG] - Port: %s", cfg.Port)
	log.Printf("[CONFIG] - Redis notifications: %t", cfg.RedisURL != "")
	log.Printf("[CONFIG] - Rate limit: %.2f/s, burst %d", cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	return &cfg, nil
}
