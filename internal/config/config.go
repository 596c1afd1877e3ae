package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything ownerd reads from the environment. A .env file
// in the working directory is honoured but optional.
type Config struct {
	Port string

	// Remote API base URLs. The backend splits its surface across an owner
	// API, a guest API and a message API, all consumed over HTTP+JSON.
	OwnerAPIURL   string
	GuestAPIURL   string
	MessageAPIURL string

	// Session state backend: "file" or "redis".
	SessionBackend string
	TokenFile      string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int

	// Bounded timeout on validation and who-am-I calls so a hung backend
	// cannot block the initial render.
	RequestTimeout time.Duration

	// Interval of the new-entry poll.
	PollInterval time.Duration
}

func Load() Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "8090"),
		OwnerAPIURL:    getEnv("OWNER_API_URL", "http://localhost:5000/api/owner"),
		GuestAPIURL:    getEnv("GUEST_API_URL", "http://localhost:5000/api/guest"),
		MessageAPIURL:  getEnv("MESSAGE_API_URL", "http://localhost:5000/api/messages"),
		SessionBackend: getEnv("SESSION_BACKEND", "file"),
		TokenFile:      getEnv("TOKEN_FILE", ".tikang-session.json"),
		// Empty means no Redis: no view cache, no event stream.
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
		PollInterval:   getDuration("POLL_INTERVAL", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		// Remove trailing slash if present
		return strings.TrimSuffix(value, "/")
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
