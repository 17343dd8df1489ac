package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	TLSCert     string
	TLSKey      string
	DatabaseURL string
	TokenKey    string
	AdminLogin  string
	AdminHash   string
	RateLimit   float64
	RateBurst   int
}

// Load reads .env files (missing ones are ignored) and then the process
// environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := Config{
		Addr:        getenv("ADDR", ":8080"),
		TLSCert:     os.Getenv("TLS_CERT"),
		TLSKey:      os.Getenv("TLS_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		TokenKey:    os.Getenv("TOKEN_KEY"),
		AdminLogin:  getenv("ADMIN_LOGIN", "admin"),
		AdminHash:   os.Getenv("ADMIN_PASSWORD_HASH"),
		RateLimit:   5,
		RateBurst:   10,
	}

	var err error
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if cfg.RateLimit, err = strconv.ParseFloat(v, 64); err != nil || cfg.RateLimit <= 0 {
			return Config{}, fmt.Errorf("RATE_LIMIT: invalid value %q", v)
		}
	}
	if v := os.Getenv("RATE_BURST"); v != "" {
		if cfg.RateBurst, err = strconv.Atoi(v); err != nil || cfg.RateBurst <= 0 {
			return Config{}, fmt.Errorf("RATE_BURST: invalid value %q", v)
		}
	}
	if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
		return Config{}, errors.New("TLS_CERT and TLS_KEY must be set together")
	}
	if cfg.TokenKey == "" {
		log.Println("TOKEN_KEY is not set, admin routes are disabled")
	}
	return cfg, nil
}

func (c Config) TLS() bool {
	return c.TLSCert != ""
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
