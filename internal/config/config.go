// Package config loads the backend configuration from the environment,
// an optional .env file and an optional configuration file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	APIURL          *url.URL      // Public URL of the API, used for links
	Port            int           // Port to listen on
	GinMode         string        // gin mode, "release" unless explicitly set
	LogFormat       string        // "human" or "json". Defaults to human in debug mode
	LogLevel        string        // zerolog level. Defaults to debug in debug mode, info otherwise
	DBDriver        string        // "sqlite" or "postgres"
	DBDSN           string        // Path of the sqlite database or postgres connection string
	CORSOrigins     []string      // Allowed CORS origins. CORS is disabled when empty
	EnablePprof     bool          // Register pprof routes
	MaxPageSize     int           // Maximum page size for movement lists. 0 means unlimited
	ShutdownTimeout time.Duration // Time to wait for requests to finish on shutdown
}

var (
	ErrInvalidAPIURL = errors.New("API_URL must be a valid absolute URL")
	ErrInvalidDriver = errors.New("DB_DRIVER must be one of 'sqlite', 'postgres'")
	ErrNegative      = errors.New("must not be negative")
)

// Defaults sets the default values on v.
func Defaults(v *viper.Viper) {
	v.SetDefault("API_URL", "http://localhost:8080")
	v.SetDefault("PORT", 8080)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_FORMAT", "")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "data/taya.db")
	v.SetDefault("CORS_ALLOW_ORIGINS", "")
	v.SetDefault("ENABLE_PPROF", false)
	v.SetDefault("MAX_PAGE_SIZE", 0)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
}

// Load reads the configuration.
//
// Values are read from the environment, which is populated from a .env file
// in the working directory if it exists. If file is not empty, it is read as
// configuration file. Environment variables take precedence over the file.
func Load(v *viper.Viper, file string) (Config, error) {
	// A missing .env file is fine, the environment is used as is
	_ = godotenv.Load()

	Defaults(v)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return parse(v)
}

func parse(v *viper.Viper) (Config, error) {
	apiURL, err := url.Parse(v.GetString("API_URL"))
	if err != nil || !apiURL.IsAbs() {
		return Config{}, fmt.Errorf("%w: '%s'", ErrInvalidAPIURL, v.GetString("API_URL"))
	}

	driver := strings.ToLower(v.GetString("DB_DRIVER"))
	if driver != "sqlite" && driver != "postgres" {
		return Config{}, fmt.Errorf("%w, got '%s'", ErrInvalidDriver, driver)
	}

	maxPageSize := v.GetInt("MAX_PAGE_SIZE")
	if maxPageSize < 0 {
		return Config{}, fmt.Errorf("MAX_PAGE_SIZE %w", ErrNegative)
	}

	c := Config{
		APIURL:          apiURL,
		Port:            v.GetInt("PORT"),
		GinMode:         v.GetString("GIN_MODE"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		DBDriver:        driver,
		DBDSN:           v.GetString("DB_DSN"),
		CORSOrigins:     strings.Fields(v.GetString("CORS_ALLOW_ORIGINS")),
		EnablePprof:     v.GetBool("ENABLE_PPROF"),
		MaxPageSize:     maxPageSize,
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	return c, nil
}
