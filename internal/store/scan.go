package store

import (
	"fmt"

	"github.com/rickgao/congress-data/internal/model"
)

// rowScanner is the cursor surface shared by database/sql and pgx rows.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanOfficials(rows rowScanner) ([]model.OfficialStats, error) {
	var officials []model.OfficialStats
	for rows.Next() {
		var o model.OfficialStats
		if err := rows.Scan(&o.Name, &o.Chamber, &o.State, &o.Party,
			&o.TradeCount, &o.TotalVolume, &o.LastTradeDate); err != nil {
			return nil, fmt.Errorf("scan official: %w", err)
		}
		officials = append(officials, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate officials: %w", err)
	}
	return officials, nil
}

func scanTrades(rows rowScanner) ([]model.Trade, error) {
	var trades []model.Trade
	for rows.Next() {
		var t model.Trade
		if err := rows.Scan(&t.OfficialName, &t.Chamber, &t.State, &t.Party,
			&t.TransactionDate, &t.DisclosureDate, &t.Ticker, &t.AssetName,
			&t.TransactionType, &t.Amount, &t.RangeLow, &t.RangeHigh); err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}
		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trades: %w", err)
	}
	return trades, nil
}
