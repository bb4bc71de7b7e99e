package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string // "production" or "dev"
	DBDSN         string
	SessionSecret string

	AdminName     string
	AdminEmail    string
	AdminPassword string

	// Overridable so tests can point the router at the repo's templates
	// from their own working directory.
	TemplatesGlob string
	StaticDir     string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          os.Getenv("PORT"),
		Env:           os.Getenv("APP_ENV"),
		DBDSN:         os.Getenv("DB_DSN"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AdminName:     os.Getenv("ADMIN_NAME"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		TemplatesGlob: "web/templates/*.html",
		StaticDir:     "web/static",
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.Env == "" {
		// NODE_ENV kept for compatibility with existing deploy configs
		cfg.Env = os.Getenv("NODE_ENV")
	}
	if cfg.Env == "" {
		cfg.Env = "production"
	}
	if cfg.DBDSN == "" {
		cfg.DBDSN = "data/deptsite.db"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	return cfg
}

func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

// LiveReloadPort is one above the main port, used only in dev.
func (c *Config) LiveReloadPort() string {
	p, err := strconv.Atoi(c.Port)
	if err != nil {
		return "3001"
	}
	return strconv.Itoa(p + 1)
}
