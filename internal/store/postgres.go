package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rickgao/congress-data/internal/config"
	"github.com/rickgao/congress-data/internal/model"
)

// PostgresStore is the shared-deployment backend.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres creates a connection pool and verifies connectivity.
func OpenPostgres(ctx context.Context, cfg config.DBConfig) (*PostgresStore, error) {
	connStr := BuildConnString(cfg)

	poolCfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConns = int32(cfg.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS trades (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		official_name TEXT NOT NULL,
		chamber TEXT,
		state TEXT,
		party TEXT,
		transaction_date TEXT,
		disclosure_date TEXT,
		ticker TEXT,
		asset_name TEXT,
		transaction_type TEXT,
		amount DOUBLE PRECISION,
		range_low DOUBLE PRECISION,
		range_high DOUBLE PRECISION,
		raw_payload TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (official_name, transaction_date, ticker, transaction_type, amount)
	)`,
	`CREATE TABLE IF NOT EXISTS officials (
		name TEXT PRIMARY KEY,
		chamber TEXT,
		state TEXT,
		party TEXT,
		trade_count BIGINT NOT NULL DEFAULT 0,
		total_volume DOUBLE PRECISION NOT NULL DEFAULT 0,
		last_trade_date TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Init creates the schema if it does not exist yet.
func (s *PostgresStore) Init(ctx context.Context) error {
	for _, stmt := range postgresSchema {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// Save implements Store.
func (s *PostgresStore) Save(ctx context.Context, t model.Trade) (bool, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `
		INSERT INTO trades (official_name, chamber, state, party,
			transaction_date, disclosure_date, ticker, asset_name,
			transaction_type, amount, range_low, range_high, raw_payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (official_name, transaction_date, ticker, transaction_type, amount) DO NOTHING`,
		t.OfficialName, t.Chamber, t.State, t.Party,
		t.TransactionDate, t.DisclosureDate, t.Ticker, t.AssetName,
		t.TransactionType, t.Amount, t.RangeLow, t.RangeHigh, string(t.RawPayload),
	)
	if err != nil {
		return false, fmt.Errorf("insert trade: %w", err)
	}

	if ct.RowsAffected() == 0 {
		// Duplicate disclosure: aggregates stay untouched.
		return false, tx.Commit(ctx)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO officials (name, chamber, state, party, trade_count, total_volume, last_trade_date)
		VALUES ($1, $2, $3, $4, 1, $5, $6)
		ON CONFLICT (name) DO UPDATE SET
			chamber = excluded.chamber,
			state = excluded.state,
			party = excluded.party,
			trade_count = officials.trade_count + 1,
			total_volume = officials.total_volume + excluded.total_volume,
			last_trade_date = excluded.last_trade_date`,
		t.OfficialName, t.Chamber, t.State, t.Party, t.Amount, t.TransactionDate,
	)
	if err != nil {
		return false, fmt.Errorf("update official stats: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit save: %w", err)
	}
	return true, nil
}

// TopOfficials implements Store.
func (s *PostgresStore) TopOfficials(ctx context.Context, limit int) ([]model.OfficialStats, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT name, chamber, state, party, trade_count, total_volume, COALESCE(last_trade_date, '')
		FROM officials
		ORDER BY trade_count DESC, name ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top officials: %w", err)
	}
	defer rows.Close()

	return scanOfficials(rows)
}

// LargeRecentTrades implements Store.
func (s *PostgresStore) LargeRecentTrades(ctx context.Context, minAmount float64, limit int) ([]model.Trade, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT official_name, chamber, state, party, transaction_date, disclosure_date,
			ticker, asset_name, transaction_type, amount, range_low, range_high
		FROM trades
		WHERE amount >= $1
		ORDER BY transaction_date DESC, id DESC
		LIMIT $2`, minAmount, limit)
	if err != nil {
		return nil, fmt.Errorf("query large trades: %w", err)
	}
	defer rows.Close()

	return scanTrades(rows)
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
