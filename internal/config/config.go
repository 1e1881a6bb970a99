package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// Server configuration
	ServerPort  string
	Environment string

	// Remote store (Postgres) configuration. Defaults are demo-friendly:
	// an unreachable store just puts the service in demo mode.
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	AutoMigrate bool

	// Redis configuration (session persistence)
	RedisAddress string

	// JWT configuration
	JWTSecret  string
	SessionTTL time.Duration

	// Gemini configuration (optional; empty key disables the AI collaborator)
	GeminiAPIKey string
	GeminiModel  string

	// Demo store configuration
	DemoDataDir string

	// Budget for remote list reads before falling back to demo data
	ReadTimeout time.Duration
}

// Global application configuration
var AppConfig Config

// LoadConfig loads configuration from environment variables
func LoadConfig() {
	// Find .env file
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		// Try to find .env in parent directories
		envPath = filepath.Join("..", ".env")
		if _, err := os.Stat(envPath); os.IsNotExist(err) {
			envPath = filepath.Join("..", "..", ".env")
		}
	}

	// Load .env file if it exists
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Warn().Err(err).Msg("Error loading .env file")
		}
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = generateRandomSecret(32)
		log.Info().Msg("Generated random JWT secret")
	}

	AppConfig = Config{
		ServerPort:   getEnv("PORT", "8080"),
		Environment:  getEnv("ENV", "development"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBName:       getEnv("DB_NAME", "norms_hub"),
		AutoMigrate:  getEnvBool("DB_AUTO_MIGRATE", false),
		RedisAddress: getEnv("REDIS_ADDRESS", "localhost:6379"),
		JWTSecret:    jwtSecret,
		SessionTTL:   getEnvDuration("SESSION_TTL", 7*24*time.Hour),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		DemoDataDir:  getEnv("DEMO_DATA_DIR", "demo-data"),
		ReadTimeout:  getEnvDuration("STORE_READ_TIMEOUT", 10*time.Second),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
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

// generateRandomSecret generates a random secret of the specified length
func generateRandomSecret(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	secret := make([]byte, length)
	for i := range secret {
		secret[i] = charset[random(len(charset))]
	}
	return string(secret)
}

// random returns a random integer between 0 and n-1
func random(n int) int {
	return int(time.Now().UnixNano()) % n
}
