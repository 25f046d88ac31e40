package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"filingai/services"
)

// DatabaseConfig holds the submission-journal connection settings. An empty
// Name disables journaling.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig is the full service configuration, loaded from the environment.
type AppConfig struct {
	Port        string `validate:"required"`
	Environment string
	// AuthSecret protects the API when set; empty leaves the API open for
	// local use.
	AuthSecret string
	Headless   bool
	Database   DatabaseConfig
	Engine     services.EngineConfig
}

var validate = validator.New()

// Load reads configuration from the environment, applying the engine's tuned
// defaults where nothing is set.
func Load() (AppConfig, error) {
	cfg := AppConfig{
		Port:        getEnv("PORT", "8081"),
		Environment: getEnv("ENVIRONMENT", "development"),
		AuthSecret:  getEnv("AUTH_SECRET", ""),
		Headless:    getEnvBool("HEADLESS", true),
		Database:    loadDatabaseConfig(),
		Engine:      loadEngineConfig(),
	}

	if err := validate.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := checkTimeoutOrdering(cfg.Engine.Timeouts); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func loadDatabaseConfig() DatabaseConfig {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func loadEngineConfig() services.EngineConfig {
	cfg := services.DefaultEngineConfig()
	cfg.OptionSelector = getEnv("OPTION_ITEM_SELECTOR", cfg.OptionSelector)
	cfg.DescriptedOptionSelector = getEnv("DESCRIPTED_OPTION_SELECTOR", cfg.DescriptedOptionSelector)
	cfg.MaxOptions = getEnvInt("OPTION_LIST_CAP", cfg.MaxOptions)
	cfg.Timeouts.Open = getEnvDuration("FILL_OPEN_TIMEOUT", cfg.Timeouts.Open)
	cfg.Timeouts.Load = getEnvDuration("FILL_LOAD_TIMEOUT", cfg.Timeouts.Load)
	cfg.Timeouts.Refilter = getEnvDuration("FILL_REFILTER_TIMEOUT", cfg.Timeouts.Refilter)
	cfg.Timeouts.OptionLookup = getEnvDuration("FILL_OPTION_LOOKUP_TIMEOUT", cfg.Timeouts.OptionLookup)
	cfg.Timeouts.Settle = getEnvDuration("FILL_SETTLE_DELAY", cfg.Timeouts.Settle)
	return cfg
}

// checkTimeoutOrdering enforces the relative ordering the fill algorithm
// depends on. Absolute values are free configuration; the ordering is not.
func checkTimeoutOrdering(t services.TimeoutBudget) error {
	if t.Settle > t.Refilter {
		return fmt.Errorf("FILL_SETTLE_DELAY (%s) must not exceed FILL_REFILTER_TIMEOUT (%s)", t.Settle, t.Refilter)
	}
	if t.Refilter > t.Load {
		return fmt.Errorf("FILL_REFILTER_TIMEOUT (%s) must not exceed FILL_LOAD_TIMEOUT (%s)", t.Refilter, t.Load)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
