package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultJWTKey = "defaultSecret"

// Config holds application configuration
type Config struct {
	Port         string `env:"PORT" envDefault:"3000"`
	AllowOrigins string `env:"ALLOW_ORIGINS" envDefault:"*"`

	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBDsn    string `env:"DB_DSN" envDefault:"portal.db"`

	JWTKey     string        `env:"JWT_SECRET_KEY" envDefault:"defaultSecret"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	APIBaseURL string        `env:"LMS_API_URL" envDefault:"http://localhost:8000/api"`
	APITimeout time.Duration `env:"LMS_API_TIMEOUT" envDefault:"15s"`

	RedisURL        string        `env:"REDIS_URL"`
	SectionCacheTTL time.Duration `env:"SECTION_CACHE_TTL" envDefault:"5m"`

	// best_effort or report
	ImageFailurePolicy string `env:"IMAGE_FAILURE_POLICY" envDefault:"best_effort"`

	DraftTTL        time.Duration `env:"DRAFT_TTL" envDefault:"72h"`
	RegistrationTTL time.Duration `env:"REGISTRATION_TTL" envDefault:"15m"`
	CleanupSchedule string        `env:"CLEANUP_SCHEDULE" envDefault:"@every 10m"`
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Populate AppConfig from the environment
	cfg, err := Parse()
	if err != nil {
		log.Fatalf("Failed to parse configuration: %v", err)
	}
	AppConfig = cfg

	// Warn about settings that only suit development
	if AppConfig.JWTKey == defaultJWTKey {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set. Section lists will not be cached.")
	}
}

// Parse reads the environment into a fresh Config without touching AppConfig.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
