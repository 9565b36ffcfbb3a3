package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Test definition sources
const (
	TestSourceDatabase = "database"
	TestSourceStatic   = "static"
	TestSourceRemote   = "remote"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	DatabaseType    string
	DatabasePath    string
	DatabaseURL     string
	MigrationsPath  string
	SessionDuration time.Duration

	// Where test definitions come from
	TestSource         string
	RemoteTestsURL     string
	RemoteTokenURL     string
	RemoteClientID     string
	RemoteClientSecret string

	JWTSecret   string
	CSRFSecret  string
	CORSOrigins []string

	// Results e-mail (disabled when SESFromEmail is empty)
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	AppBaseURL   string

	TickInterval time.Duration
	Debug        bool
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is loaded first if present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		DatabaseType:    getEnv("DATABASE_TYPE", "sqlite"),
		DatabasePath:    getEnv("DB_PATH", "./quizmaker.db"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		SessionDuration: getEnvDuration("SESSION_DURATION", 24*time.Hour),

		TestSource:         getEnv("TEST_SOURCE", TestSourceDatabase),
		RemoteTestsURL:     getEnv("REMOTE_TESTS_URL", ""),
		RemoteTokenURL:     getEnv("REMOTE_TOKEN_URL", ""),
		RemoteClientID:     getEnv("REMOTE_CLIENT_ID", ""),
		RemoteClientSecret: getEnv("REMOTE_CLIENT_SECRET", ""),

		JWTSecret:   getEnv("JWT_SECRET", "change-me-in-production"),
		CSRFSecret:  getEnv("CSRF_SECRET", "change-me-in-production"),
		CORSOrigins: getEnvList("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"),

		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail: getEnv("SES_FROM_EMAIL", ""),
		SESFromName:  getEnv("SES_FROM_NAME", "QuizMaker"),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:8080"),

		TickInterval: time.Second,
		Debug:        getEnvBool("DEBUG", false),
	}
}

// getEnv reads an environment variable or returns a default value
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
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: invalid boolean for %s: %q", key, value)
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid duration for %s: %q", key, value)
		return defaultValue
	}
	return d
}

// getEnvList splits a comma-separated variable, dropping empty entries
func getEnvList(key, defaultValue string) []string {
	parts := strings.Split(getEnv(key, defaultValue), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
