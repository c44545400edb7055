package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"

	ValidationLenient = "lenient"
	ValidationStrict  = "strict"
)

type Config struct {
	Port           string
	StoreBackend   string
	DBUrl          string
	MongoURL       string
	MongoDatabase  string
	JWTSecret      string
	IDPUserinfoURL string
	AppEnv         string
	ValidationMode string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret, exists := os.LookupEnv("JWT_SECRET")
	if !exists || jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		StoreBackend:   normalizeBackend(getEnv("STORE_BACKEND", BackendPostgres)),
		DBUrl:          getEnv("DB_URL", ""),
		MongoURL:       getEnv("MONGO_URL", ""),
		MongoDatabase:  getEnv("MONGO_DATABASE", "kozachok"),
		JWTSecret:      jwtSecret,
		IDPUserinfoURL: getEnv("IDP_USERINFO_URL", ""),
		AppEnv:         normalizeEnv(getEnv("APP_ENV", "production")),
		ValidationMode: normalizeValidation(getEnv("VALIDATION_MODE", ValidationLenient)),
	}

	switch cfg.StoreBackend {
	case BackendPostgres:
		if cfg.DBUrl == "" {
			return nil, fmt.Errorf("DB_URL is required for the postgres backend")
		}
	case BackendMongo:
		if cfg.MongoURL == "" {
			return nil, fmt.Errorf("MONGO_URL is required for the mongo backend")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func normalizeBackend(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "postgres", "postgresql", "pg":
		return BackendPostgres
	case "mongo", "mongodb":
		return BackendMongo
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func normalizeValidation(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "strict":
		return ValidationStrict
	default:
		return ValidationLenient
	}
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
