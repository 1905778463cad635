package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every configuration parameter of the application.
type Config struct {
	Server struct {
		Port         string
		CookieSecure bool
	}
	Backend struct {
		BaseURL string // e.g. https://backend.example.org/api
		Timeout time.Duration
	}
	Database struct {
		DSN string // e.g. "sessions.db?_foreign_keys=on"
	}
	Session struct {
		Expiration time.Duration
	}
}

// AppConfig is the loaded configuration, available to the whole application.
var AppConfig *Config

// LoadConfig reads configuration from a .env file (when present) and the
// environment, falling back to defaults. Call once at startup from main.
func LoadConfig() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file.")
	}

	AppConfig = &Config{}

	// --- Server ---
	AppConfig.Server.Port = getEnv("ICTFORUM_PORT", "8080")
	// Cookie Secure: default false for local HTTP; set ICTFORUM_COOKIE_SECURE=true in prod
	AppConfig.Server.CookieSecure = getEnv("ICTFORUM_COOKIE_SECURE", "false") == "true"

	// --- Backend API ---
	base := getEnv("ICTFORUM_API_BASE", "http://localhost:8000/api")
	AppConfig.Backend.BaseURL = strings.TrimRight(base, "/")

	timeoutSecs, err := strconv.Atoi(getEnv("ICTFORUM_API_TIMEOUT_SECONDS", "10"))
	if err != nil || timeoutSecs <= 0 {
		log.Printf("WARNING: Invalid API timeout specified. Using default 10 seconds.")
		timeoutSecs = 10
	}
	AppConfig.Backend.Timeout = time.Duration(timeoutSecs) * time.Second

	// --- Session database ---
	dbName := getEnv("ICTFORUM_DB_NAME", "sessions.db")
	AppConfig.Database.DSN = dbName + "?_foreign_keys=on"

	// --- Sessions ---
	sessionHours, err := strconv.Atoi(getEnv("ICTFORUM_SESSION_HOURS", "24"))
	if err != nil {
		log.Printf("WARNING: Invalid session duration specified. Using default 24 hours. Error: %v", err)
		sessionHours = 24
	}
	AppConfig.Session.Expiration = time.Duration(sessionHours) * time.Hour

	log.Println("Configuration loaded successfully.")
}

// getEnv reads an environment variable, returning fallback when unset.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
