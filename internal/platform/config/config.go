package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// APIKeyHash is one configured service key: the subject it acts as and its bcrypt hash.
type APIKeyHash struct {
	Subject string
	Hash    string
}

// Config holds application configuration.
type Config struct {
	Port           string
	IsProduction   bool
	LogLevel       string
	StoreDriver    string
	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret string
	JWTIssuer string
	APIKeys   []APIKeyHash

	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter format, e.g. "100-M"

	// DiscountRoundingPlaces is the number of decimal places kept when a
	// percentage discount is converted to an amount. Zero rounds to whole units.
	DiscountRoundingPlaces int32

	// InstitutionName is printed as the issuer on credit note documents.
	InstitutionName string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", StoreMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "edu-billing-ledger")
	v.SetDefault("API_KEY_HASHES", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("DISCOUNT_ROUNDING_PLACES", 0)
	v.SetDefault("INSTITUTION_NAME", "Billing Office")
	v.AutomaticEnv()

	cfg := &Config{
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		LogLevel:       strings.ToLower(v.GetString("LOG_LEVEL")),
		StoreDriver:    strings.ToLower(v.GetString("STORE_DRIVER")),
		DatabaseURL:    v.GetString("PGSQL_URL"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		RateLimit:      v.GetString("RATE_LIMIT"),

		InstitutionName: v.GetString("INSTITUTION_NAME"),
	}
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	places := v.GetInt("DISCOUNT_ROUNDING_PLACES")
	if places < 0 || places > 8 {
		return nil, fmt.Errorf("DISCOUNT_ROUNDING_PLACES must be between 0 and 8, got %d", places)
	}
	cfg.DiscountRoundingPlaces = int32(places)

	keys, err := parseAPIKeyHashes(v.GetString("API_KEY_HASHES"))
	if err != nil {
		return nil, err
	}
	cfg.APIKeys = keys

	switch cfg.StoreDriver {
	case StoreMemory:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORE_DRIVER=%s", StorePostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want %s or %s)", cfg.StoreDriver, StoreMemory, StorePostgres)
	}

	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	return cfg, nil
}

// parseAPIKeyHashes reads "subject:bcrypt-hash" pairs separated by commas.
func parseAPIKeyHashes(raw string) ([]APIKeyHash, error) {
	var keys []APIKeyHash
	for _, entry := range splitList(raw) {
		subject, hash, ok := strings.Cut(entry, ":")
		if !ok || subject == "" || hash == "" {
			return nil, fmt.Errorf("invalid API_KEY_HASHES entry %q, want subject:hash", entry)
		}
		keys = append(keys, APIKeyHash{Subject: subject, Hash: hash})
	}
	return keys, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
