// README: Config loader for HTTP, Postgres, Redis, Maps, and AI settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Maps     MapsConfig
	AI       AIConfig
	Resolver ResolverConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	// DSN is optional. When empty the API serves the built-in country
	// rule catalog without price overrides.
	DSN string
}

type RedisConfig struct {
	// Addr is optional. When empty reverse-geocode results are not
	// cached between requests.
	Addr       string
	Password   string
	DB         int
	GeocodeTTL time.Duration
}

type MapsConfig struct {
	APIKey string
}

type AIConfig struct {
	// GeminiKey is optional. When empty special-toll detection runs on
	// route geometry alone.
	GeminiKey string
}

type ResolverConfig struct {
	RatePerSec float64
	Workers    int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine, the environment alone can carry the
		// configuration.
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			DSN: viper.GetString("DB_DSN"),
		},
		Redis: RedisConfig{
			Addr:       viper.GetString("REDIS_ADDR"),
			Password:   viper.GetString("REDIS_PASSWORD"),
			DB:         viper.GetInt("REDIS_DB"),
			GeocodeTTL: time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
		},
		Maps: MapsConfig{
			APIKey: viper.GetString("GOOGLE_MAPS_API_KEY"),
		},
		AI: AIConfig{
			GeminiKey: viper.GetString("GEMINI_API_KEY"),
		},
		Resolver: ResolverConfig{
			RatePerSec: viper.GetFloat64("RESOLVER_RATE_PER_SEC"),
			Workers:    viper.GetInt("RESOLVER_WORKERS"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Redis.GeocodeTTL == 0 {
		cfg.Redis.GeocodeTTL = 30 * 24 * time.Hour
	}
	if cfg.Resolver.RatePerSec == 0 {
		cfg.Resolver.RatePerSec = 10
	}
	if cfg.Resolver.Workers == 0 {
		cfg.Resolver.Workers = 4
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if cfg.Maps.APIKey == "" {
		return nil, errors.New("GOOGLE_MAPS_API_KEY is required")
	}
	return cfg, nil
}

func (c *Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
