package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"ulascansenturk/city-weather/internal/providers"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	HistoryFile string

	GeocodingBaseURL string
	ForecastBaseURL  string
	ProviderTimeout  time.Duration

	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration

	GeocodeCacheTTL time.Duration
}

func LoadConfig() (*Config, error) {
	return loadConfig(".")
}

func loadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "city-weather")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 15)
	v.SetDefault("HISTORY_FILE", "./searches.json")
	v.SetDefault("GEOCODING_BASE_URL", providers.DefaultGeocodingURL)
	v.SetDefault("FORECAST_BASE_URL", providers.DefaultForecastURL)
	v.SetDefault("PROVIDER_TIMEOUT", 10*time.Second)
	v.SetDefault("BREAKER_MAX_FAILURES", 5)
	v.SetDefault("BREAKER_OPEN_TIMEOUT", 30*time.Second)
	v.SetDefault("GEOCODE_CACHE_TTL", time.Hour)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:        v.GetString("SERVICE_NAME"),
		ServerAddress:      v.GetString("SERVER_ADDRESS"),
		DBName:             v.GetString("DATABASE_NAME"),
		DBPassword:         v.GetString("DATABASE_PASSWORD"),
		DBUser:             v.GetString("DATABASE_USER"),
		DBPort:             v.GetString("DATABASE_PORT"),
		DBHost:             v.GetString("DATABASE_HOST"),
		Env:                v.GetString("ENV"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		HTTPTimeout:        v.GetInt32("HTTP_TIMEOUT"),
		HistoryFile:        v.GetString("HISTORY_FILE"),
		GeocodingBaseURL:   v.GetString("GEOCODING_BASE_URL"),
		ForecastBaseURL:    v.GetString("FORECAST_BASE_URL"),
		ProviderTimeout:    v.GetDuration("PROVIDER_TIMEOUT"),
		BreakerMaxFailures: v.GetUint32("BREAKER_MAX_FAILURES"),
		BreakerOpenTimeout: v.GetDuration("BREAKER_OPEN_TIMEOUT"),
		GeocodeCacheTTL:    v.GetDuration("GEOCODE_CACHE_TTL"),
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// BreakerSettings is shared by both Open-Meteo clients; each client still
// gets its own breaker.
func (c *Config) BreakerSettings() providers.BreakerSettings {
	return providers.BreakerSettings{
		MaxFailures: c.BreakerMaxFailures,
		OpenTimeout: c.BreakerOpenTimeout,
	}
}

// LookupLogEnabled reports whether a Postgres lookup log is configured.
func (c *Config) LookupLogEnabled() bool {
	return c.DBHost != ""
}
