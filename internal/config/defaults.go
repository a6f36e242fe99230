package config

import (
	"os"
	"time"
)

// Default values for optional configuration fields.
const (
	DefaultBaseURL        = "https://financialmodelingprep.com/api/v3"
	DefaultAPITimeout     = 30 * time.Second
	DefaultMaxRetries     = 3
	DefaultDriver         = DriverSQLite
	DefaultSQLitePath     = "data/trades.db"
	DefaultDBPort         = 5432
	DefaultDBSSLMode      = "prefer"
	DefaultMaxConns       = 10
	DefaultMinConns       = 2
	DefaultDaysBack       = 7
	DefaultMinTradeAmount = 1000
	DefaultAlertThreshold = 50000
	DefaultOutputPath     = "data/whatsapp-alert.txt"

	// APIKeyEnv is consulted when api.key is not set in the file.
	APIKeyEnv = "FMP_API_KEY"
)

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Key == "" {
		c.API.Key = os.Getenv(APIKeyEnv)
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}

	// Storage defaults
	if c.Storage.Driver == "" {
		c.Storage.Driver = DefaultDriver
	}
	if c.Storage.Path == "" {
		c.Storage.Path = DefaultSQLitePath
	}
	applyDBDefaults(&c.Storage.Postgres)

	// Tracker defaults
	if c.Tracker.DaysBack == 0 {
		c.Tracker.DaysBack = DefaultDaysBack
	}
	if c.Tracker.MinTradeAmount == 0 {
		c.Tracker.MinTradeAmount = DefaultMinTradeAmount
	}
	if c.Tracker.AlertThreshold == 0 {
		c.Tracker.AlertThreshold = DefaultAlertThreshold
	}

	// Report defaults
	if c.Report.OutputPath == "" {
		c.Report.OutputPath = DefaultOutputPath
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
