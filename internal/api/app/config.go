package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/aussiebroadwan/restbook/pkg/jwtx"
)

type Config struct {
	TokenSecret     string        // Required: HS256 signing secret
	TokenIssuer     string        // Optional: iss claim (default: restbook)
	TokenAudience   []string      // Optional: aud claim, comma separated (default: restbook)
	AccessTokenTTL  time.Duration // Optional: access token lifetime (default: 60m)
	RefreshTokenTTL time.Duration // Optional: refresh token lifetime (default: 7 days)

	AdminUsername string // Optional: account created at startup when missing
	AdminFullName string // Optional: display name for the admin account
	AdminPassword string // Optional: password for the admin account

	UploadBackend      string // Optional: disk or s3 (default: disk)
	UploadDir          string // Optional: directory for the disk backend (default: ./uploads)
	S3Bucket           string // Required when UploadBackend is s3
	S3Region           string
	S3Endpoint         string
	S3AccessKeyID      string
	S3SecretAccessKey  string
	MaxUploadBytes     int64    // Optional: multipart body cap (default: 32 MiB)
	CORSAllowedOrigins []string // Optional: comma separated browser origins

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./restbook.db)
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

// LoadConfig reads the environment. A .env file in the working directory is
// loaded first; variables already set take precedence over it.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		TokenSecret:     os.Getenv("TOKEN_SECRET"),
		TokenIssuer:     getEnvOrDefault("TOKEN_ISSUER", "restbook"),
		TokenAudience:   splitList(getEnvOrDefault("TOKEN_AUDIENCE", "restbook")),
		AccessTokenTTL:  getEnvDurationOrDefault("TOKEN_MINUTES", jwtx.DefaultAccessTokenTTL),
		RefreshTokenTTL: time.Duration(getEnvIntOrDefault("TOKEN_DAYS_TO_EXPIRY", 7)) * 24 * time.Hour,

		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminFullName: getEnvOrDefault("ADMIN_FULL_NAME", "Administrator"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		UploadBackend:      getEnvOrDefault("UPLOAD_BACKEND", "disk"),
		UploadDir:          getEnvOrDefault("UPLOAD_DIR", "uploads"),
		S3Bucket:           os.Getenv("S3_BUCKET"),
		S3Region:           getEnvOrDefault("S3_REGION", "us-east-1"),
		S3Endpoint:         os.Getenv("S3_ENDPOINT"),
		S3AccessKeyID:      os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey:  os.Getenv("S3_SECRET_ACCESS_KEY"),
		MaxUploadBytes:     int64(getEnvIntOrDefault("MAX_UPLOAD_BYTES", 32<<20)),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),

		DatabaseFile:         getEnvOrDefault("API_DATABASE_FILE", "restbook.db"),
		PepperFile:           getEnvOrDefault("API_PEPPER_FILE", "pepper"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
