// Package report renders the run summary into the plain-text alert artifact
// picked up by the notification forwarder.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/rickgao/congress-data/internal/model"
	"github.com/rickgao/congress-data/internal/store"
)

// How many rows the store is asked for vs. how many the report shows.
const (
	queryLimit = 5
	showLimit  = 3
)

// Generator renders run summaries against the current store contents.
type Generator struct {
	store          store.Store
	alertThreshold float64
	logger         *slog.Logger
}

// NewGenerator creates a Generator. alertThreshold is the minimum amount for
// the large-trades section.
func NewGenerator(st store.Store, alertThreshold float64, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		store:          st,
		alertThreshold: alertThreshold,
		logger:         logger,
	}
}

// Render produces the report text. Output is deterministic for a given
// summary and store state. A summary carrying an error renders an
// error-only body.
func (g *Generator) Render(ctx context.Context, summary model.RunSummary) string {
	var b strings.Builder

	b.WriteString("Congressional Stock Tracker\n")
	fmt.Fprintf(&b, "Daily Report - %s\n", summary.Timestamp.Format("2006-01-02"))
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	if summary.HasError() {
		fmt.Fprintf(&b, "Error: %s\n", summary.Err)
		return b.String()
	}

	fmt.Fprintf(&b, "Trades found: %d\n", summary.TradesFound)
	fmt.Fprintf(&b, "New trades: %d\n", summary.NewTrades)
	fmt.Fprintf(&b, "Total value: $%s\n\n", dollars(summary.TotalValue))

	large, err := g.store.LargeRecentTrades(ctx, g.alertThreshold, queryLimit)
	if err != nil {
		g.logger.Error("failed to query large trades", "error", err)
	}
	if len(large) > 0 {
		b.WriteString("Recent Large Trades:\n")
		for _, t := range large[:min(showLimit, len(large))] {
			fmt.Fprintf(&b, "  - %s\n", t.OfficialName)
			fmt.Fprintf(&b, "    %s %s ($%s)\n\n", t.TransactionType, t.Ticker, dollars(t.Amount))
		}
	}

	top, err := g.store.TopOfficials(ctx, queryLimit)
	if err != nil {
		g.logger.Error("failed to query top officials", "error", err)
	}
	if len(top) > 0 {
		b.WriteString("Most Active Officials:\n")
		for _, o := range top[:min(showLimit, len(top))] {
			fmt.Fprintf(&b, "  %s (%s): %d trades\n", o.Name, o.Chamber, o.TradeCount)
		}
	}

	return b.String()
}

// dollars formats an amount rounded to whole dollars with thousands
// separators.
func dollars(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// WriteFile writes the report body to path, creating parent directories.
func WriteFile(path, body string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
