package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/jwtx"
)

type Config struct {
	Issuer        string   // Optional: issuer claim for tokens (default: notes-service)
	Audience      []string // Optional: comma separated audience claim (default: notes-api)
	JWTSecret     string   // Optional: HS256 signing secret, at least 32 bytes
	JWTSecretFile string   // Optional: file holding the signing secret, created when missing
	PublicURL     string   // Optional: external base URL used to build invitation links

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./notes.db)
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	SeedDemoData         bool          // Optional: create the acme and globex demo tenants on an empty database
	SeedPassword         string        // Optional: password for the demo accounts (default: password)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)

	RateLimits httpx.RateLimitProfiles
}

func LoadConfig() Config {
	return Config{
		Issuer:        getEnvOrDefault("NOTES_ISSUER", jwtx.DefaultIssuer),
		Audience:      splitList(getEnvOrDefault("NOTES_AUDIENCE", jwtx.DefaultAudience)),
		JWTSecret:     os.Getenv("NOTES_JWT_SECRET"),
		JWTSecretFile: os.Getenv("NOTES_JWT_SECRET_FILE"),
		PublicURL:     os.Getenv("PUBLIC_URL"),

		DatabaseFile:         getEnvOrDefault("NOTES_DATABASE_FILE", "notes.db"),
		PepperFile:           getEnvOrDefault("NOTES_PEPPER_FILE", "pepper"),
		SeedDemoData:         getEnvBoolOrDefault("SEED_DEMO_DATA", false),
		SeedPassword:         getEnvOrDefault("SEED_PASSWORD", "password"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),

		RateLimits: httpx.RateLimitProfilesFromEnv(),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
