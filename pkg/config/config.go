package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server struct {
		Port    string
		Env     string
		Timeout time.Duration
		BaseURL string
	}

	// Database configuration
	Database struct {
		Driver   string // "sqlite" or "postgres"
		Path     string // sqlite file path
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
		MaxConns int
		Timeout  time.Duration
	}

	// Classifier configuration. The crisis keyword list and the sentiment floor
	// are heuristic constants with no documented derivation, so both stay
	// configurable instead of being baked into code.
	Classifier struct {
		RulesPath       string
		CrisisThreshold float64
	}

	// Resource directory configuration
	Resources struct {
		DirectoryPath    string
		DefaultCountry   string
		SecondaryCountry string
		Deduplicate      bool
	}

	// Responder configuration (generative reply service)
	Responder struct {
		Enabled     bool
		Model       string
		MaxTokens   int
		Temperature float32
		Timeout     time.Duration
	}

	// SMTP configuration for crisis alert email
	SMTP struct {
		Host     string
		Port     int
		Username string
		From     string
	}

	// Security configuration
	Security struct {
		RateLimit      float64
		RateLimitBurst int
		AllowedOrigins []string
		TrustedProxies []string
	}

	// Logging configuration
	Logging struct {
		Level  string
		Format string
	}

	// History / display limits
	History struct {
		DefaultChatLimit    int
		DashboardChatWindow int
	}

	// Cache settings
	Cache struct {
		Enabled     bool
		TTL         time.Duration
		MaxSize     int
		PurgeWindow time.Duration
	}
}

var (
	instance *Config
	once     sync.Once
)

// New creates a new Config instance with values from environment variables.
// Uses singleton pattern to ensure only one instance exists.
func New() *Config {
	once.Do(func() {
		// Load .env file if exists
		godotenv.Load()

		instance = &Config{}

		// Server config
		instance.Server.Port = getEnvString("PORT", "8081")
		instance.Server.Env = getEnvString("APP_ENV", "development")
		instance.Server.Timeout = getEnvDuration("SERVER_TIMEOUT", 30*time.Second)
		instance.Server.BaseURL = getEnvString("BASE_URL", "http://localhost:"+instance.Server.Port)

		// Database config
		instance.Database.Driver = getEnvString("DB_DRIVER", "sqlite")
		instance.Database.Path = getEnvString("DB_PATH", "mindcare.db")
		instance.Database.Host = getEnvString("DB_HOST", "localhost")
		instance.Database.Port = getEnvString("DB_PORT", "5432")
		instance.Database.User = getEnvString("DB_USER", "postgres")
		instance.Database.Password = getEnvString("DB_PASSWORD", "postgres")
		instance.Database.Name = getEnvString("DB_NAME", "mindcare")
		instance.Database.SSLMode = getEnvString("DB_SSL_MODE", "disable")
		instance.Database.MaxConns = getEnvInt("DB_MAX_CONNS", 20)
		instance.Database.Timeout = getEnvDuration("DB_TIMEOUT", 5*time.Second)

		// Classifier config
		instance.Classifier.RulesPath = getEnvString("RULES_PATH", "data/rules.json")
		instance.Classifier.CrisisThreshold = getEnvFloat("CRISIS_SENTIMENT_THRESHOLD", -0.6)

		// Resource directory config
		instance.Resources.DirectoryPath = getEnvString("RESOURCES_PATH", "data/resources.json")
		instance.Resources.DefaultCountry = getEnvString("RESOURCES_DEFAULT_COUNTRY", "india")
		instance.Resources.SecondaryCountry = getEnvString("RESOURCES_SECONDARY_COUNTRY", "usa")
		instance.Resources.Deduplicate = getEnvBool("RESOURCES_DEDUPLICATE", false)

		// Responder config
		instance.Responder.Enabled = getEnvBool("RESPONDER_ENABLED", true)
		instance.Responder.Model = getEnvString("RESPONDER_MODEL", "gpt-4o-mini")
		instance.Responder.MaxTokens = getEnvInt("RESPONDER_MAX_TOKENS", 300)
		instance.Responder.Temperature = float32(getEnvFloat("RESPONDER_TEMPERATURE", 0.7))
		instance.Responder.Timeout = getEnvDuration("RESPONDER_TIMEOUT", 20*time.Second)

		// SMTP config
		instance.SMTP.Host = getEnvString("SMTP_HOST", "")
		instance.SMTP.Port = getEnvInt("SMTP_PORT", 587)
		instance.SMTP.Username = getEnvString("SMTP_USERNAME", "")
		instance.SMTP.From = getEnvString("SMTP_FROM", "alerts@mindcare.local")

		// Security config
		instance.Security.RateLimit = getEnvFloat("RATE_LIMIT", 5)
		instance.Security.RateLimitBurst = getEnvInt("RATE_LIMIT_BURST", 10)
		instance.Security.AllowedOrigins = getEnvStringSlice("ALLOWED_ORIGINS", []string{"*"})
		instance.Security.TrustedProxies = getEnvStringSlice("TRUSTED_PROXIES", []string{"127.0.0.1"})

		// Logging config
		instance.Logging.Level = getEnvString("LOG_LEVEL", "info")
		instance.Logging.Format = getEnvString("LOG_FORMAT", "json")

		// History config
		instance.History.DefaultChatLimit = getEnvInt("CHAT_HISTORY_LIMIT", 200)
		instance.History.DashboardChatWindow = getEnvInt("DASHBOARD_CHAT_WINDOW", 30)

		// Cache settings
		instance.Cache.Enabled = getEnvBool("CACHE_ENABLED", true)
		instance.Cache.TTL = getEnvDuration("CACHE_TTL", 5*time.Minute)
		instance.Cache.MaxSize = getEnvInt("CACHE_MAX_SIZE", 1000)
		instance.Cache.PurgeWindow = getEnvDuration("CACHE_PURGE_WINDOW", 10*time.Minute)
	})

	return instance
}

// Get returns the singleton Config instance
func Get() *Config {
	if instance == nil {
		return New()
	}
	return instance
}

// Helper functions to read environment variables with default values

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
