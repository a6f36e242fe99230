package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.API.Key == "" {
		return fmt.Errorf("api.key is required (set it in the config file or via %s)", APIKeyEnv)
	}

	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.Path == "" {
			return errors.New("storage.path is required for the sqlite driver")
		}
	case DriverPostgres:
		if err := c.Storage.Postgres.validate("storage.postgres"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("storage.driver must be %q or %q, got %q",
			DriverSQLite, DriverPostgres, c.Storage.Driver)
	}

	if c.Tracker.DaysBack < 1 {
		return errors.New("tracker.days_back must be >= 1")
	}
	if c.Tracker.MinTradeAmount < 0 {
		return errors.New("tracker.min_trade_amount must be >= 0")
	}
	if c.Tracker.AlertThreshold < 0 {
		return errors.New("tracker.alert_threshold must be >= 0")
	}

	if c.Report.OutputPath == "" {
		return errors.New("report.output_path is required")
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
