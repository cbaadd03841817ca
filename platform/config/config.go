// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTSecret() string
}

// AuthServiceConfig provides settings needed by the auth service.
type AuthServiceConfig interface {
	JWTConfig
	GetAccessTokenTTL() time.Duration
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RedisConfig provides settings for the Redis cache and task queue.
type RedisConfig interface {
	GetRedisURL() string
}

// YelpConfig provides settings for the Yelp business search client.
type YelpConfig interface {
	GetYelpAPIKey() string
	IsYelpEnabled() bool
}

// PlacesConfig provides settings for the Google Places client.
type PlacesConfig interface {
	GetGoogleMapsAPIKey() string
	IsGooglePlacesEnabled() bool
}

// GeoConfig provides the default search location used when a request
// carries no coordinates.
type GeoConfig interface {
	GetDefaultLatitude() float64
	GetDefaultLongitude() float64
}

// ArchiveConfig provides settings for the archive worker.
type ArchiveConfig interface {
	RedisConfig
	GetArchiveFilePath() string
	GetArchiveQueueName() string
}

// WebUIConfig provides settings for the server-rendered form frontend.
type WebUIConfig interface {
	GetProcessEndpointURL() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                string
	HTTPAddr           string
	DatabaseURL        string
	JWTSecret          string
	AccessTokenTTL     time.Duration
	CORSAllowAll       bool
	CORSOrigins        []string
	CORSAllowCreds     bool
	RedisURL           string
	YelpAPIKey         string
	GoogleMapsAPIKey   string
	DefaultLatitude    float64
	DefaultLongitude   float64
	ArchiveFilePath    string
	ArchiveQueueName   string
	ProcessEndpointURL string
	CacheTTL           time.Duration
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// JWTConfig implementation
func (c *Config) GetJWTSecret() string { return c.JWTSecret }

// AuthServiceConfig implementation
func (c *Config) GetAccessTokenTTL() time.Duration { return c.AccessTokenTTL }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RedisConfig implementation
func (c *Config) GetRedisURL() string { return c.RedisURL }

// YelpConfig implementation
func (c *Config) GetYelpAPIKey() string { return c.YelpAPIKey }
func (c *Config) IsYelpEnabled() bool   { return c.YelpAPIKey != "" }

// PlacesConfig implementation
func (c *Config) GetGoogleMapsAPIKey() string { return c.GoogleMapsAPIKey }
func (c *Config) IsGooglePlacesEnabled() bool { return c.GoogleMapsAPIKey != "" }

// GeoConfig implementation
func (c *Config) GetDefaultLatitude() float64  { return c.DefaultLatitude }
func (c *Config) GetDefaultLongitude() float64 { return c.DefaultLongitude }

// ArchiveConfig implementation
func (c *Config) GetArchiveFilePath() string  { return c.ArchiveFilePath }
func (c *Config) GetArchiveQueueName() string { return c.ArchiveQueueName }

// WebUIConfig implementation
func (c *Config) GetProcessEndpointURL() string { return c.ProcessEndpointURL }

// GetCacheTTL returns how long recommendation responses stay cached.
func (c *Config) GetCacheTTL() time.Duration { return c.CacheTTL }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	httpAddr := getEnv("HTTP_ADDR", ":8080")

	accessTokenTTL, err := durationEnv("JWT_ACCESS_TTL", "24h")
	if err != nil {
		return nil, err
	}
	cacheTTL, err := durationEnv("CACHE_TTL", "15m")
	if err != nil {
		return nil, err
	}
	defaultLatitude, err := floatEnv("DEFAULT_LATITUDE", "52.3676")
	if err != nil {
		return nil, err
	}
	defaultLongitude, err := floatEnv("DEFAULT_LONGITUDE", "4.9041")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           httpAddr,
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AccessTokenTTL:     accessTokenTTL,
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		CORSAllowCreds:     strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RedisURL:           getEnv("REDIS_URL", ""),
		YelpAPIKey:         getEnv("YELP_API_KEY", ""),
		GoogleMapsAPIKey:   getEnv("GOOGLE_MAPS_API_KEY", ""),
		DefaultLatitude:    defaultLatitude,
		DefaultLongitude:   defaultLongitude,
		ArchiveFilePath:    getEnv("ARCHIVE_FILE", "data.json"),
		ArchiveQueueName:   getEnv("ARCHIVE_QUEUE", "archive"),
		ProcessEndpointURL: getEnv("PROCESS_ENDPOINT_URL", "http://localhost"+defaultPortSuffix(httpAddr)+"/api/process-gps"),
		CacheTTL:           cacheTTL,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func durationEnv(key, fallback string) (time.Duration, error) {
	value := getEnv(key, fallback)
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, value)
	}
	return d, nil
}

func floatEnv(key, fallback string) (float64, error) {
	value := getEnv(key, fallback)
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", key, value)
	}
	return result, nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}

func defaultPortSuffix(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return addr
	}
	if idx := strings.LastIndex(addr, ":"); idx >= 0 {
		return addr[idx:]
	}
	return ":8080"
}
