package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config is read once from the environment (and an optional .env file).
type Config struct {
	Environment string
	Port        string

	// Database
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string

	// Response cache
	RedisHost       string
	RedisPassword   string
	CacheTTLSeconds int

	// Score stream
	KafkaBroker     string
	KafkaScoreTopic string

	CorsOrigins []string
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

// requiredInProduction lists the connection settings that have no usable default
// outside of a developer machine.
var requiredInProduction = []string{
	"DATABASE_HOST",
	"POSTGRES_USER",
	"POSTGRES_PASSWORD",
	"DATABASE_NAME",
}

func loadConfig() *Config {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	return &Config{
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		Port:        getEnvWithDefault("PORT", "8000"),

		DatabaseHost:     getEnvWithDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("DATABASE_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnvWithDefault("POSTGRES_PASSWORD", "postgres"),
		DatabaseName:     getEnvWithDefault("DATABASE_NAME", "postgres"),

		RedisHost:       os.Getenv("REDIS_HOST"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		CacheTTLSeconds: getEnvAsInt("CACHE_TTL_SECONDS", 60),

		KafkaBroker:     os.Getenv("KAFKA_BROKER"),
		KafkaScoreTopic: getEnvWithDefault("KAFKA_SCORE_TOPIC", "hackaplan-scores"),

		CorsOrigins: splitList(getEnvWithDefault("CORS_ORIGINS", "http://localhost,http://localhost:3000")),
	}
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

// Validate reports every required setting that is absent. Outside production the
// database settings fall back to local defaults and are never missing.
func (c *Config) Validate() error {
	if !c.IsProduction() {
		return nil
	}
	missing := make([]string, 0)
	for _, key := range requiredInProduction {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DatabaseHost, c.DatabasePort, c.PostgresUser, c.PostgresPassword, c.DatabaseName)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnvAsInt falls back to fallback when key is unset or not an integer.
func getEnvAsInt(key string, fallback int) int {
	if parsed, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key))); err == nil {
		return parsed
	}
	return fallback
}

func getEnvWithDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
