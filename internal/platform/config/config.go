package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Server captures process-level configuration.
type Server struct {
	Addr         string
	DatabaseURL  string
	RedisURL     string
	SessionTTL   time.Duration
	BcryptCost   int
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
// DATABASE_URL and REDIS_URL are optional; when absent the in-memory stores
// are wired instead, which is only suitable for development.
func FromEnv() Server {
	addr := os.Getenv("ROSTERHUB_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	ttl := 24 * time.Hour
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			ttl = parsed
		}
	}

	writeTimeout := 30 * time.Second
	if raw := os.Getenv("SERVER_WRITE_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			writeTimeout = parsed
		}
	}

	cost := bcrypt.DefaultCost
	if raw := os.Getenv("BCRYPT_COST"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= bcrypt.MinCost && parsed <= bcrypt.MaxCost {
			cost = parsed
		}
	}

	return Server{
		Addr:         addr,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		SessionTTL:   ttl,
		BcryptCost:   cost,
		WriteTimeout: writeTimeout,
	}
}
