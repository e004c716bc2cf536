package confs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process-wide settings loaded once at startup. The JWT
// secret is injected from here into the token service rather than read from
// the environment at call sites.
type Config struct {
	Port      string
	JWTSecret string
}

// Load reads a .env file if present and validates essential settings.
func Load() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("missing required configuration: JWT_SECRET")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	return &Config{Port: port, JWTSecret: secret}, nil
}
