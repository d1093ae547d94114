// Package config loads server configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all server settings.
type Config struct {
	Addr          string
	BaseURL       string // e.g. http://localhost:8080
	MongoURI      string
	MongoDatabase string
	Offline       bool // serve the built-in dataset, no remote store
	DefaultOrigin string
	SupportEmail  string
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPass      string
	SMTPFrom      string
	DevMode       bool
}

// FromEnv creates a Config from environment variables. A .env file in
// the working directory is loaded first if present; real environment
// variables win over file entries.
func FromEnv() Config {
	_ = godotenv.Load()

	return Config{
		Addr:          envOrDefault("VISA_ADDR", ":8080"),
		BaseURL:       envOrDefault("VISA_BASE_URL", "http://localhost:8080"),
		MongoURI:      envOrDefault("VISA_MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: envOrDefault("VISA_MONGO_DATABASE", "globalvisa"),
		Offline:       os.Getenv("VISA_OFFLINE") == "true",
		DefaultOrigin: envOrDefault("VISA_DEFAULT_ORIGIN", "india"),
		SupportEmail:  envOrDefault("VISA_SUPPORT_EMAIL", "support@globalvisa.com"),
		SMTPHost:      os.Getenv("VISA_SMTP_HOST"),
		SMTPPort:      envOrDefault("VISA_SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("VISA_SMTP_USER"),
		SMTPPass:      os.Getenv("VISA_SMTP_PASS"),
		SMTPFrom:      os.Getenv("VISA_SMTP_FROM"),
		DevMode:       os.Getenv("VISA_DEV_MODE") == "true",
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
