package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Fallback signing secrets. They only exist so a fresh checkout starts;
// anything deployed must override them.
const (
	DefaultAccessSecret  = "ACCESS_SECRET"
	DefaultRefreshSecret = "REFRESH_SECRET"
)

// Config holds the settings shared by both services.
type Config struct {
	Env           string `envconfig:"ENV" default:"development"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding   string `envconfig:"LOG_ENCODING" default:"json"`
	LogOutputPath string `envconfig:"LOG_OUTPUT" default:"stdout"` // file path, stdout or stderr
	ServerPort    string `envconfig:"SERVER_PORT"`

	DBDriver string `envconfig:"DB_DRIVER" default:"sqlite"`
	DBDSN    string `envconfig:"DB_DSN"`

	JWTSecret       string        `envconfig:"JWT_SECRET" default:"ACCESS_SECRET"`
	RefreshSecret   string        `envconfig:"REFRESH_SECRET" default:"REFRESH_SECRET"`
	AccessTokenTTL  time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"15m"`
	RefreshTokenTTL time.Duration `envconfig:"JWT_REFRESH_TOKEN_TTL" default:"168h"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:4200"`

	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@admin.com"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`
}

// Defaults fills the settings that differ between the two binaries.
type Defaults struct {
	ServerPort string
	DBDSN      string
}

// GetAllowedOrigins splits CORSAllowedOrigins on commas.
func (c *Config) GetAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
}

// InsecureSecrets lists the env keys still set to their fallback value.
func (c *Config) InsecureSecrets() []string {
	var keys []string
	if c.JWTSecret == DefaultAccessSecret {
		keys = append(keys, "JWT_SECRET")
	}
	if c.RefreshSecret == DefaultRefreshSecret {
		keys = append(keys, "REFRESH_SECRET")
	}
	return keys
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig(envFilePath string, defaults Defaults) (*Config, error) {
	if envFilePath != "" {
		if _, err := os.Stat(envFilePath); err == nil {
			if err := godotenv.Load(envFilePath); err != nil {
				log.Printf("Warning: could not load %s: %v", envFilePath, err)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("Warning: error checking %s: %v", envFilePath, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = defaults.ServerPort
	}
	if cfg.DBDSN == "" {
		cfg.DBDSN = defaults.DBDSN
	}
	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("token TTLs must be positive (access=%s, refresh=%s)", cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	}
	return &cfg, nil
}
