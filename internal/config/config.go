package config

import "time"

// Config is the full tracker configuration, loaded from YAML with
// ${VAR} environment substitution.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
	Tracker TrackerConfig `yaml:"tracker"`
	Report  ReportConfig  `yaml:"report"`
}

// APIConfig configures the upstream disclosure provider.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	// Key is the provider credential. Required; resolution order is the
	// config value first, then the FMP_API_KEY environment variable.
	Key        string        `yaml:"key"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// StorageConfig selects and configures the trade store backend.
type StorageConfig struct {
	// Driver is "sqlite" (default) or "postgres".
	Driver string `yaml:"driver"`

	// Path is the sqlite database file.
	Path string `yaml:"path"`

	Postgres DBConfig `yaml:"postgres"`
}

// DBConfig holds postgres connection settings.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// TrackerConfig configures an ingestion run.
type TrackerConfig struct {
	DaysBack       int     `yaml:"days_back"`
	MinTradeAmount float64 `yaml:"min_trade_amount"`
	AlertThreshold float64 `yaml:"alert_threshold"`
}

// ReportConfig configures the rendered alert artifact.
type ReportConfig struct {
	// OutputPath is where the report text is written for pickup by the
	// notification forwarder.
	OutputPath string `yaml:"output_path"`

	// Recipient identifies who the forwarder should deliver to.
	Recipient string `yaml:"recipient"`
}

// Storage driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)
