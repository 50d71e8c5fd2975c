package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreMemory   = "memory"
)

// Config holds all configuration for the application.
type Config struct {
	Port string

	StoreDriver      string
	OrderPersistence bool
	MongoURI         string
	MongoDatabase    string
	DatabaseDSN      string

	Mail MailConfig

	ShopName       string
	Currency       string
	AllowedOrigins []string
}

// MailConfig holds the SMTP relay settings and the notification policy.
type MailConfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	AdminEmail string
	Timeout    time.Duration
	FailFast   bool
}

// Load reads a .env file if present, then the process environment.
// Variables already set in the environment win over .env entries.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not load .env: %v", err)
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("PORT", "5000")
	v.SetDefault("STORE_DRIVER", StoreMemory)
	v.SetDefault("ORDER_PERSISTENCE", true)
	v.SetDefault("MONGO_DATABASE", "partsstore")
	v.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("MAIL_TIMEOUT", "30s")
	v.SetDefault("NOTIFY_FAIL_FAST", true)
	v.SetDefault("SHOP_NAME", "Farid Express")
	v.SetDefault("CURRENCY", "OMR")
	v.SetDefault("ALLOWED_ORIGINS", "https://farideducat.github.io")
	// Keys without a default are only visible to AutomaticEnv lookups once bound.
	for _, key := range []string{"MONGO_URI", "EMAIL_USER", "EMAIL_PASS", "ADMIN_EMAIL"} {
		_ = v.BindEnv(key)
	}
	v.AutomaticEnv()
	return v
}

// FromViper builds and validates a Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:             strings.TrimPrefix(v.GetString("PORT"), ":"),
		StoreDriver:      strings.ToLower(v.GetString("STORE_DRIVER")),
		OrderPersistence: v.GetBool("ORDER_PERSISTENCE"),
		MongoURI:         v.GetString("MONGO_URI"),
		MongoDatabase:    v.GetString("MONGO_DATABASE"),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		Mail: MailConfig{
			Host:       v.GetString("SMTP_HOST"),
			Port:       v.GetInt("SMTP_PORT"),
			User:       v.GetString("EMAIL_USER"),
			Password:   v.GetString("EMAIL_PASS"),
			AdminEmail: v.GetString("ADMIN_EMAIL"),
			Timeout:    v.GetDuration("MAIL_TIMEOUT"),
			FailFast:   v.GetBool("NOTIFY_FAIL_FAST"),
		},
		ShopName:       v.GetString("SHOP_NAME"),
		Currency:       v.GetString("CURRENCY"),
		AllowedOrigins: ParseOrigins(v.GetString("ALLOWED_ORIGINS")),
	}
	if cfg.Mail.AdminEmail == "" {
		cfg.Mail.AdminEmail = cfg.Mail.User
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	switch c.StoreDriver {
	case StoreMongo:
		if c.MongoURI == "" {
			return errors.New("MONGO_URI is required when STORE_DRIVER is mongo")
		}
	case StorePostgres, StoreSQLite:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required when STORE_DRIVER is %s", c.StoreDriver)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("invalid STORE_DRIVER: %s (must be mongo, postgres, sqlite or memory)", c.StoreDriver)
	}
	if c.Mail.User == "" {
		return errors.New("EMAIL_USER is required")
	}
	if c.Mail.Host == "" {
		return errors.New("SMTP_HOST is required")
	}
	if len(c.AllowedOrigins) == 0 {
		return errors.New("ALLOWED_ORIGINS must contain at least one origin")
	}
	return nil
}

// ParseOrigins splits a comma-separated origin list. Browsers send origins as
// scheme://host[:port], so entries carrying a path are dropped and a trailing
// slash is removed.
func ParseOrigins(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		origin := strings.TrimRight(strings.TrimSpace(part), "/")
		if origin == "" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" || u.Path != "" {
			log.Printf("Warning: ignoring allowed origin %q: not of the form scheme://host", part)
			continue
		}
		out = append(out, origin)
	}
	return out
}
