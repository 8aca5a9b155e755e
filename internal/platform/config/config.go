package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret         = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTExpiry         = time.Hour
	defaultJWTIssuer         = "acme-marketplace"
	defaultRateSourceTimeout = 5 * time.Second
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	LogLevel       string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Formatted limiter rates, e.g. "5-M"
	LoginRateLimit string
	APIRateLimit   string

	CORSAllowedOrigins []string

	// Exchange rate source. An empty URL selects the static source.
	RateSourceURL     string
	RateSourceAPIKey  string
	RateSourceTimeout time.Duration
	StaticRates       string

	// Bootstrap administrator, created on startup when missing.
	AdminUsername string
	AdminPassword string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", defaultJWTExpiry.String())
	viper.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("API_RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_SOURCE_URL", "")
	viper.SetDefault("RATE_SOURCE_API_KEY", "")
	viper.SetDefault("RATE_SOURCE_TIMEOUT", defaultRateSourceTimeout.String())
	viper.SetDefault("STATIC_EXCHANGE_RATES", "EUR:USD=1.08;EUR:GBP=0.85")
	viper.SetDefault("ADMIN_USERNAME", "administrator")
	viper.SetDefault("ADMIN_PASSWORD", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Using in-memory storage.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.LogLevel = strings.ToLower(viper.GetString("LOG_LEVEL"))

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", defaultJWTExpiry)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.APIRateLimit = viper.GetString("API_RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitCSV(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.RateSourceURL = strings.TrimRight(viper.GetString("RATE_SOURCE_URL"), "/")
	cfg.RateSourceAPIKey = viper.GetString("RATE_SOURCE_API_KEY")
	cfg.RateSourceTimeout = durationOrDefault("RATE_SOURCE_TIMEOUT", defaultRateSourceTimeout)
	cfg.StaticRates = viper.GetString("STATIC_EXCHANGE_RATES")
	if cfg.RateSourceURL == "" {
		log.Println("Warning: RATE_SOURCE_URL not set. Using static exchange rates.")
	}

	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	if cfg.AdminPassword == "" {
		log.Println("Warning: ADMIN_PASSWORD not set. No administrator will be bootstrapped.")
	}

	return cfg, nil
}

// durationOrDefault reads key as a Go duration, falling back to def with a warning.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
