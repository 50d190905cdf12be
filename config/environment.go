package config

import (
	"log"
	"os"
	"time"
)

type Environment struct {
	IsDevelopment bool
	DatabaseURL   string
	JWTSecret     string
	TokenTTL      time.Duration
	Port          string
}

var Env Environment

// Load reads process configuration from the environment exactly once at
// startup. The signing secret is required; the process refuses to start
// without one rather than falling back to a baked-in value.
func Load() Environment {
	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Fatal("config: JWT_SECRET_KEY not set")
	}

	ttl := time.Hour
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("config: invalid TOKEN_TTL %q: %v", raw, err)
		}
		ttl = parsed
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}

	Env = Environment{
		IsDevelopment: os.Getenv("APP_ENV") != "production",
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     secret,
		TokenTTL:      ttl,
		Port:          port,
	}
	return Env
}
