package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// District match modes. Deployments disagree on which address field the dong
// filter is checked against, so the choice is explicit configuration.
const (
	DistrictMatchLot       = "lot"
	DistrictMatchLotOrRoad = "lot_or_road"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Upstream    UpstreamConfig
	Listing     ListingConfig
	Districts   DistrictConfig
	Auth        AuthConfig
	RateLimit   RateLimitConfig
	Logging     LoggingConfig
}

// UpstreamConfig holds open-data API configuration
type UpstreamConfig struct {
	APIKey            string
	Source            string
	Timeout           time.Duration
	UserAgent         string
	SeoulBaseURL      string
	FoodSafetyBaseURL string
}

// ListingConfig holds restaurant listing limits and defaults
type ListingConfig struct {
	MaxPageSize     int
	DefaultStartIdx int
	DefaultEndIdx   int
	DistrictMatch   string
}

// DistrictConfig holds configuration for the dong catalogue endpoint
type DistrictConfig struct {
	SampleSize int
	Timeout    time.Duration
	City       string
	Gu         string
}

// AuthConfig holds optional bearer token configuration. An empty secret
// disables authentication.
type AuthConfig struct {
	Secret string
	Issuer string
}

// RateLimitConfig holds rate limiter configuration for the HTTP server
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level         string
	Format        string // "text" or "json"
	FluentEnabled bool
	FluentHost    string
	FluentPort    int
	FluentTag     string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("UPSTREAM_SOURCE", "seoul")
	viper.SetDefault("UPSTREAM_TIMEOUT", 8*time.Second)
	viper.SetDefault("UPSTREAM_USER_AGENT", "Restaurant-Finder/1.0")
	viper.SetDefault("SEOUL_API_BASE_URL", "http://openapi.seoul.go.kr:8088")
	viper.SetDefault("FOODSAFETY_API_BASE_URL", "http://openapi.foodsafetykorea.go.kr/api")
	viper.SetDefault("MAX_PAGE_SIZE", 3000)
	viper.SetDefault("DEFAULT_START_IDX", 1)
	viper.SetDefault("DEFAULT_END_IDX", 100)
	viper.SetDefault("DISTRICT_MATCH", DistrictMatchLot)
	viper.SetDefault("DISTRICT_SAMPLE_SIZE", 3000)
	viper.SetDefault("DISTRICT_TIMEOUT", 25*time.Second)
	viper.SetDefault("DISTRICT_CITY", "서울특별시")
	viper.SetDefault("DISTRICT_GU", "종로구")
	viper.SetDefault("ACCESS_TOKEN_ISSUER", "restaurant-finder-api")
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("FLUENT_ENABLED", false)
	viper.SetDefault("FLUENT_HOST", "127.0.0.1")
	viper.SetDefault("FLUENT_PORT", 24224)
	viper.SetDefault("FLUENT_TAG", "restaurant-finder")

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Upstream: UpstreamConfig{
			APIKey:            viper.GetString("PUBLIC_DATA_KEY"),
			Source:            viper.GetString("UPSTREAM_SOURCE"),
			Timeout:           viper.GetDuration("UPSTREAM_TIMEOUT"),
			UserAgent:         viper.GetString("UPSTREAM_USER_AGENT"),
			SeoulBaseURL:      strings.TrimRight(viper.GetString("SEOUL_API_BASE_URL"), "/"),
			FoodSafetyBaseURL: strings.TrimRight(viper.GetString("FOODSAFETY_API_BASE_URL"), "/"),
		},
		Listing: ListingConfig{
			MaxPageSize:     viper.GetInt("MAX_PAGE_SIZE"),
			DefaultStartIdx: viper.GetInt("DEFAULT_START_IDX"),
			DefaultEndIdx:   viper.GetInt("DEFAULT_END_IDX"),
			DistrictMatch:   viper.GetString("DISTRICT_MATCH"),
		},
		Districts: DistrictConfig{
			SampleSize: viper.GetInt("DISTRICT_SAMPLE_SIZE"),
			Timeout:    viper.GetDuration("DISTRICT_TIMEOUT"),
			City:       viper.GetString("DISTRICT_CITY"),
			Gu:         viper.GetString("DISTRICT_GU"),
		},
		Auth: AuthConfig{
			Secret: viper.GetString("ACCESS_TOKEN_SECRET"),
			Issuer: viper.GetString("ACCESS_TOKEN_ISSUER"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
		Logging: LoggingConfig{
			Level:         viper.GetString("LOG_LEVEL"),
			Format:        viper.GetString("LOG_FORMAT"),
			FluentEnabled: viper.GetBool("FLUENT_ENABLED"),
			FluentHost:    viper.GetString("FLUENT_HOST"),
			FluentPort:    viper.GetInt("FLUENT_PORT"),
			FluentTag:     viper.GetString("FLUENT_TAG"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for values the services cannot work with
func (c *Config) Validate() error {
	if c.Listing.MaxPageSize <= 0 {
		return fmt.Errorf("MAX_PAGE_SIZE must be positive, got %d", c.Listing.MaxPageSize)
	}
	if c.Listing.DefaultStartIdx < 1 {
		return fmt.Errorf("DEFAULT_START_IDX must be at least 1, got %d", c.Listing.DefaultStartIdx)
	}
	if c.Listing.DefaultEndIdx < c.Listing.DefaultStartIdx {
		return fmt.Errorf("DEFAULT_END_IDX (%d) must not be less than DEFAULT_START_IDX (%d)",
			c.Listing.DefaultEndIdx, c.Listing.DefaultStartIdx)
	}
	switch c.Listing.DistrictMatch {
	case DistrictMatchLot, DistrictMatchLotOrRoad:
	default:
		return fmt.Errorf("DISTRICT_MATCH must be %q or %q, got %q",
			DistrictMatchLot, DistrictMatchLotOrRoad, c.Listing.DistrictMatch)
	}
	if c.Upstream.Timeout <= 0 || c.Districts.Timeout <= 0 {
		return fmt.Errorf("upstream timeouts must be positive")
	}
	if c.Districts.SampleSize <= 0 {
		return fmt.Errorf("DISTRICT_SAMPLE_SIZE must be positive, got %d", c.Districts.SampleSize)
	}
	return nil
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
