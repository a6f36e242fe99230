package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// GetHouseTrades fetches House disclosure records for the date window.
// Dates are YYYY-MM-DD, inclusive on both ends.
func (c *Client) GetHouseTrades(ctx context.Context, from, to string) ([]RawTrade, error) {
	return c.getTrades(ctx, "/house-trades", from, to)
}

// GetSenateTrades fetches Senate disclosure records for the date window.
func (c *Client) GetSenateTrades(ctx context.Context, from, to string) ([]RawTrade, error) {
	return c.getTrades(ctx, "/senate-trades", from, to)
}

func (c *Client) getTrades(ctx context.Context, path, from, to string) ([]RawTrade, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)

	var records []json.RawMessage
	if err := c.get(ctx, path, query, &records); err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}

	trades := make([]RawTrade, 0, len(records))
	for _, rec := range records {
		raw := RawTrade{JSON: rec}
		// Non-object elements pass through with nil Fields; the
		// normalizer rejects them so the caller can log the skip.
		var fields map[string]any
		if err := json.Unmarshal(rec, &fields); err == nil {
			raw.Fields = fields
		}
		trades = append(trades, raw)
	}

	return trades, nil
}
