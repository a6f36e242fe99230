package store

import (
	"context"
	"fmt"

	"github.com/rickgao/congress-data/internal/config"
	"github.com/rickgao/congress-data/internal/model"
)

// Store persists trades and their per-official aggregates.
//
// Save is the dedup point of the whole pipeline: the insert of a new trade
// and the matching officials update happen in one transaction, so the
// aggregates can never diverge from the fact table, including under
// concurrent saves of the same disclosure.
type Store interface {
	// Init creates the schema. Idempotent; never destructive.
	Init(ctx context.Context) error

	// Save inserts the trade unless its identity tuple
	// (official_name, transaction_date, ticker, transaction_type, amount)
	// already exists. It reports whether a new row was inserted; a
	// duplicate leaves all state untouched.
	Save(ctx context.Context, t model.Trade) (bool, error)

	// TopOfficials returns officials ordered by trade count descending.
	TopOfficials(ctx context.Context, limit int) ([]model.OfficialStats, error)

	// LargeRecentTrades returns trades with amount >= minAmount (boundary
	// inclusive) ordered by transaction date descending, capped to limit.
	LargeRecentTrades(ctx context.Context, minAmount float64, limit int) ([]model.Trade, error)

	Close() error
}

// Open creates the store backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case "", config.DriverSQLite:
		return OpenSQLite(ctx, cfg.Path)
	case config.DriverPostgres:
		return OpenPostgres(ctx, cfg.Postgres)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
