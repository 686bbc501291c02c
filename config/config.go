package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"path/filepath"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	ServiceName string

	DBDriver   string
	DBPath     string
	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	OutputDir string

	CollectBatchLimit   int
	CollectRequestDelay time.Duration
	SeasonYear          int
	FootballMaxWeek     int
	LocationCacheTTL    time.Duration

	CollegeFootballAPIKey string
	IPGeolocationAPIKey   string
	OpenUVAPIKey          string

	CollegeFootballBaseURL string
	WeatherArchiveBaseURL  string
	AirQualityBaseURL      string
	AstronomyBaseURL       string
	OpenUVBaseURL          string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "gameday-weather")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_PATH", "football_weather.db")
	v.SetDefault("DATABASE_PORT", "5432")

	v.SetDefault("HTTP_TIMEOUT", 10)
	v.SetDefault("OUTPUT_DIR", "outputs")

	v.SetDefault("COLLECT_BATCH_LIMIT", 25)
	v.SetDefault("COLLECT_REQUEST_DELAY", 500*time.Millisecond)
	v.SetDefault("SEASON_YEAR", 2024)
	v.SetDefault("FOOTBALL_MAX_WEEK", 14)
	v.SetDefault("LOCATION_CACHE_TTL", 10*time.Minute)

	v.SetDefault("COLLEGE_FOOTBALL_BASE_URL", "https://api.collegefootballdata.com")
	v.SetDefault("WEATHER_ARCHIVE_BASE_URL", "https://archive-api.open-meteo.com/v1/archive")
	v.SetDefault("AIR_QUALITY_BASE_URL", "https://air-quality-api.open-meteo.com/v1/air-quality")
	v.SetDefault("ASTRONOMY_BASE_URL", "https://api.ipgeolocation.io/v2/astronomy")
	v.SetDefault("OPENUV_BASE_URL", "https://api.openuv.io/api/v1/uv")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:            v.GetString("SERVICE_NAME"),
		DBDriver:               v.GetString("DATABASE_DRIVER"),
		DBPath:                 v.GetString("DATABASE_PATH"),
		DBName:                 v.GetString("DATABASE_NAME"),
		DBPassword:             v.GetString("DATABASE_PASSWORD"),
		DBUser:                 v.GetString("DATABASE_USER"),
		DBPort:                 v.GetString("DATABASE_PORT"),
		DBHost:                 v.GetString("DATABASE_HOST"),
		Env:                    v.GetString("ENV"),
		LogLevel:               v.GetString("LOG_LEVEL"),
		HTTPTimeout:            v.GetInt32("HTTP_TIMEOUT"),
		OutputDir:              v.GetString("OUTPUT_DIR"),
		CollectBatchLimit:      v.GetInt("COLLECT_BATCH_LIMIT"),
		CollectRequestDelay:    v.GetDuration("COLLECT_REQUEST_DELAY"),
		SeasonYear:             v.GetInt("SEASON_YEAR"),
		FootballMaxWeek:        v.GetInt("FOOTBALL_MAX_WEEK"),
		LocationCacheTTL:       v.GetDuration("LOCATION_CACHE_TTL"),
		CollegeFootballAPIKey:  v.GetString("COLLEGE_FOOTBALL_API_KEY"),
		IPGeolocationAPIKey:    v.GetString("IPGEOLOCATION_API_KEY"),
		OpenUVAPIKey:           v.GetString("OPENUV_API_KEY"),
		CollegeFootballBaseURL: v.GetString("COLLEGE_FOOTBALL_BASE_URL"),
		WeatherArchiveBaseURL:  v.GetString("WEATHER_ARCHIVE_BASE_URL"),
		AirQualityBaseURL:      v.GetString("AIR_QUALITY_BASE_URL"),
		AstronomyBaseURL:       v.GetString("ASTRONOMY_BASE_URL"),
		OpenUVBaseURL:          v.GetString("OPENUV_BASE_URL"),
	}

	if config.DBDriver != DriverSQLite && config.DBDriver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", config.DBDriver)
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// FiguresDir is where rendered charts are written, next to the exported CSVs.
func (c *Config) FiguresDir() string {
	return filepath.Join(c.OutputDir, "figures")
}
