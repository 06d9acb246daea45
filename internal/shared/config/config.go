package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port             string
	Env              string
	DatabaseURL      string
	CORSAllowOrigin  []string
	MaxUploadBytes   int64
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	ContactRecipient string
	SeedUsername     string
	SeedPassword     string
	AdminAuth        bool
}

const defaultMaxUploadBytes = 10 << 20

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:             getEnv("PORT", "5000"),
		Env:              env,
		DatabaseURL:      dbURL,
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		MaxUploadBytes:   getEnvInt64("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         int(getEnvInt64("SMTP_PORT", 587)),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		ContactRecipient: getEnv("CONTACT_RECIPIENT", "office@hospitoolity.com"),
		SeedUsername:     getEnv("SEED_ADMIN_USERNAME", "test"),
		SeedPassword:     getEnv("SEED_ADMIN_PASSWORD", "test"),
		AdminAuth:        getEnvBool("ADMIN_AUTH", false),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || val <= 0 {
		log.Printf("config %s invalid int: %q", key, raw)
		return def
	}
	return val
}

func getEnvBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("config %s invalid bool: %q", key, raw)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
