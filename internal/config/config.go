// Package config loads service configuration: defaults, then an optional
// YAML file, then environment variables, each layer overriding the last.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr string `yaml:"http_addr"`

	DBDriver string `yaml:"db_driver"` // sqlite|postgres
	DBDSN    string `yaml:"db_dsn"`

	AuthSecret string `yaml:"auth_secret"`
	TokenTTL   string `yaml:"token_ttl"` // duration string, e.g. "8h"

	RedisAddr      string `yaml:"redis_addr"` // empty: in-process counter
	RedisPassword  string `yaml:"redis_password"`
	RedisDB        int    `yaml:"redis_db"`
	ParticipantTTL string `yaml:"participant_ttl"` // counter cache TTL

	CORSOrigins []string `yaml:"cors_origins"`

	// Bootstrap admin created at startup when no user has the email yet.
	AdminName     string `yaml:"admin_name"`
	AdminEmail    string `yaml:"admin_email"`
	AdminPassword string `yaml:"admin_password"`
}

// Load builds the configuration. path may be empty.
func Load(path string) (Config, error) {
	cfg := Config{
		HTTPAddr:       ":8080",
		DBDriver:       "sqlite",
		AuthSecret:     "supersecret-dev-key",
		TokenTTL:       "8h",
		ParticipantTTL: "1m",
		CORSOrigins:    []string{"http://localhost:3000", "http://localhost:5173"},
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	setStr(&c.HTTPAddr, "HTTP_ADDR")
	setStr(&c.DBDriver, "DB_DRIVER")
	setStr(&c.DBDSN, "DB_DSN")
	setStr(&c.AuthSecret, "AUTH_HMAC_SECRET")
	setStr(&c.TokenTTL, "TOKEN_TTL")
	setStr(&c.RedisAddr, "REDIS_ADDR")
	setStr(&c.RedisPassword, "REDIS_PASSWORD")
	setInt(&c.RedisDB, "REDIS_DB")
	setStr(&c.ParticipantTTL, "PARTICIPANT_TTL")
	setCSV(&c.CORSOrigins, "CORS_ORIGINS")
	setStr(&c.AdminName, "ADMIN_NAME")
	setStr(&c.AdminEmail, "ADMIN_EMAIL")
	setStr(&c.AdminPassword, "ADMIN_PASSWORD")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setCSV(dst *[]string, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	if len(out) > 0 {
		*dst = out
	}
}

// TTLDuration parses a duration string or returns the fallback if empty
// or malformed.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
