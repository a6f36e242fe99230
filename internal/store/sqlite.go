package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/rickgao/congress-data/internal/model"
)

// SQLiteStore is the default single-file backend.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database file at path.
// Use ":memory:" for an ephemeral store.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// Single connection serializes writers and keeps :memory: databases
	// from silently splitting per connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS trades (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		official_name TEXT NOT NULL,
		chamber TEXT,
		state TEXT,
		party TEXT,
		transaction_date TEXT,
		disclosure_date TEXT,
		ticker TEXT,
		asset_name TEXT,
		transaction_type TEXT,
		amount REAL,
		range_low REAL,
		range_high REAL,
		raw_payload TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (official_name, transaction_date, ticker, transaction_type, amount)
	)`,
	`CREATE TABLE IF NOT EXISTS officials (
		name TEXT PRIMARY KEY,
		chamber TEXT,
		state TEXT,
		party TEXT,
		trade_count INTEGER NOT NULL DEFAULT 0,
		total_volume REAL NOT NULL DEFAULT 0,
		last_trade_date TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Init creates the schema if it does not exist yet.
func (s *SQLiteStore) Init(ctx context.Context) error {
	for _, stmt := range sqliteSchema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// Save implements Store.
func (s *SQLiteStore) Save(ctx context.Context, t model.Trade) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO trades (official_name, chamber, state, party,
			transaction_date, disclosure_date, ticker, asset_name,
			transaction_type, amount, range_low, range_high, raw_payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (official_name, transaction_date, ticker, transaction_type, amount) DO NOTHING`,
		t.OfficialName, t.Chamber, t.State, t.Party,
		t.TransactionDate, t.DisclosureDate, t.Ticker, t.AssetName,
		t.TransactionType, t.Amount, t.RangeLow, t.RangeHigh, string(t.RawPayload),
	)
	if err != nil {
		return false, fmt.Errorf("insert trade: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert trade: %w", err)
	}
	if n == 0 {
		// Duplicate disclosure: aggregates stay untouched.
		return false, tx.Commit()
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO officials (name, chamber, state, party, trade_count, total_volume, last_trade_date)
		VALUES (?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			chamber = excluded.chamber,
			state = excluded.state,
			party = excluded.party,
			trade_count = trade_count + 1,
			total_volume = total_volume + excluded.total_volume,
			last_trade_date = excluded.last_trade_date`,
		t.OfficialName, t.Chamber, t.State, t.Party, t.Amount, t.TransactionDate,
	)
	if err != nil {
		return false, fmt.Errorf("update official stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit save: %w", err)
	}
	return true, nil
}

// TopOfficials implements Store.
func (s *SQLiteStore) TopOfficials(ctx context.Context, limit int) ([]model.OfficialStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, chamber, state, party, trade_count, total_volume, COALESCE(last_trade_date, '')
		FROM officials
		ORDER BY trade_count DESC, name ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top officials: %w", err)
	}
	defer rows.Close()

	return scanOfficials(rows)
}

// LargeRecentTrades implements Store.
func (s *SQLiteStore) LargeRecentTrades(ctx context.Context, minAmount float64, limit int) ([]model.Trade, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT official_name, chamber, state, party, transaction_date, disclosure_date,
			ticker, asset_name, transaction_type, amount, range_low, range_high
		FROM trades
		WHERE amount >= ?
		ORDER BY transaction_date DESC, id DESC
		LIMIT ?`, minAmount, limit)
	if err != nil {
		return nil, fmt.Errorf("query large trades: %w", err)
	}
	defer rows.Close()

	return scanTrades(rows)
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
