package config

import (
	"os"
	"time"
)

const defaultJWTExpiration = 24 * time.Hour

var JWTSecret []byte
var JWTExpiration time.Duration

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "change-me-in-production"
	}
	JWTSecret = []byte(secret)
	JWTExpiration = jwtExpirationFromEnv()
}

// jwtExpirationFromEnv reads JWT_EXPIRATION as a Go duration ("24h", "30m").
// Unset or unparseable values fall back to the default.
func jwtExpirationFromEnv() time.Duration {
	raw := os.Getenv("JWT_EXPIRATION")
	if raw == "" {
		return defaultJWTExpiration
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return defaultJWTExpiration
	}
	return d
}
