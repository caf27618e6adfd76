package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string
	DatabaseURI          string
	ProductLookupAddress string
	PublicBaseURL        string
	JWTSecret            string
	SessionTTL           time.Duration
	EditLinkTTL          time.Duration
	LinkSweepInterval    time.Duration
	ShutdownTimeout      time.Duration
}

const (
	defaultRunAddress        = ":8080"
	defaultPublicBaseURL     = "http://localhost:8080"
	defaultJWTSecret         = "change-me-in-production"
	defaultSessionTTL        = 24 * time.Hour
	defaultEditLinkTTL       = time.Hour
	defaultLinkSweepInterval = 10 * time.Minute
	defaultShutdownTimeout   = 10 * time.Second
)

// Load parses configuration from .env, environment variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		ProductLookupAddress: getString(lookup, "PRODUCT_LOOKUP_ADDRESS", ""),
		PublicBaseURL:        getString(lookup, "PUBLIC_BASE_URL", defaultPublicBaseURL),
		JWTSecret:            getString(lookup, "JWT_SECRET", defaultJWTSecret),
		SessionTTL:           getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		EditLinkTTL:          getDuration(lookup, "EDIT_LINK_TTL", defaultEditLinkTTL),
		LinkSweepInterval:    getDuration(lookup, "LINK_SWEEP_INTERVAL", defaultLinkSweepInterval),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("anishop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		editLinkTTLStr     = cfg.EditLinkTTL.String()
		sweepIntervalStr   = cfg.LinkSweepInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.ProductLookupAddress, "r", cfg.ProductLookupAddress, "Product lookup service base URL")
	fs.StringVar(&cfg.PublicBaseURL, "base-url", cfg.PublicBaseURL, "Public base URL used in edit-order links")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Auth token lifetime")
	fs.StringVar(&editLinkTTLStr, "edit-link-ttl", editLinkTTLStr, "Edit link lifetime")
	fs.StringVar(&sweepIntervalStr, "link-sweep-interval", sweepIntervalStr, "Interval between expired edit link sweeps")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.EditLinkTTL, err = time.ParseDuration(editLinkTTLStr); err != nil {
		return nil, fmt.Errorf("invalid edit link ttl: %w", err)
	}

	if cfg.LinkSweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid link sweep interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.EditLinkTTL <= 0 {
		cfg.EditLinkTTL = defaultEditLinkTTL
	}

	if cfg.LinkSweepInterval <= 0 {
		cfg.LinkSweepInterval = defaultLinkSweepInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
