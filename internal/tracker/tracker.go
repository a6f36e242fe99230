package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/congress-data/internal/api"
	"github.com/rickgao/congress-data/internal/model"
	"github.com/rickgao/congress-data/internal/normalize"
	"github.com/rickgao/congress-data/internal/store"
)

const dateLayout = "2006-01-02"

// FeedClient fetches raw disclosure records from the upstream provider.
type FeedClient interface {
	GetHouseTrades(ctx context.Context, from, to string) ([]api.RawTrade, error)
	GetSenateTrades(ctx context.Context, from, to string) ([]api.RawTrade, error)
}

// Config holds tracker configuration.
type Config struct {
	// APIKey is the upstream credential. An empty key makes Run return
	// an error-tagged summary without touching the network.
	APIKey string

	// Now supplies the clock; nil means time.Now. Tests pin it.
	Now func() time.Time
}

// Tracker drives one ingestion run: fetch both feeds, normalize each
// record, save with dedup, and assemble the run summary.
type Tracker struct {
	cfg    Config
	client FeedClient
	store  store.Store
	logger *slog.Logger
}

// New creates a Tracker.
func New(cfg Config, client FeedClient, st store.Store, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Tracker{
		cfg:    cfg,
		client: client,
		store:  st,
		logger: logger,
	}
}

// Run ingests all disclosures in the window [today-daysBack, today].
//
// Per-record failures (unparseable shapes, storage write errors) and
// per-feed failures are logged and skipped; only a missing credential stops
// the run, and that is reported in the summary rather than as an error.
func (t *Tracker) Run(ctx context.Context, daysBack int) model.RunSummary {
	summary := model.RunSummary{
		RunID:     uuid.New(),
		Timestamp: t.cfg.Now(),
	}

	t.logger.Info("starting tracker run", "run_id", summary.RunID, "days_back", daysBack)

	if t.cfg.APIKey == "" {
		t.logger.Error("API key not configured, aborting run")
		summary.Err = "API key not configured"
		return summary
	}

	toDate := t.cfg.Now().Format(dateLayout)
	fromDate := t.cfg.Now().AddDate(0, 0, -daysBack).Format(dateLayout)
	summary.DateRange = fromDate + " to " + toDate

	raw := t.fetchAll(ctx, fromDate, toDate)
	summary.TradesFound = len(raw)

	for _, rec := range raw {
		trade, err := normalize.Normalize(rec, normalize.DefaultAmountText)
		if err != nil {
			t.logger.Error("skipping unparseable record", "chamber", rec.Chamber, "error", err)
			continue
		}

		inserted, err := t.store.Save(ctx, *trade)
		if err != nil {
			t.logger.Error("failed to save trade",
				"official", trade.OfficialName,
				"ticker", trade.Ticker,
				"error", err,
			)
			continue
		}
		if !inserted {
			continue
		}

		summary.NewTrades++
		summary.TotalValue += trade.Amount
		t.logger.Info("new trade",
			"official", trade.OfficialName,
			"type", trade.TransactionType,
			"ticker", trade.Ticker,
			"amount", int64(trade.Amount),
		)
	}

	t.logger.Info("tracker run complete",
		"run_id", summary.RunID,
		"trades_found", summary.TradesFound,
		"new_trades", summary.NewTrades,
		"total_value", summary.TotalValue,
		"date_range", summary.DateRange,
	)

	return summary
}

// fetchAll retrieves both feeds independently. A failed feed contributes
// zero records and never aborts the other.
func (t *Tracker) fetchAll(ctx context.Context, from, to string) []api.RawTrade {
	var all []api.RawTrade

	house, err := t.client.GetHouseTrades(ctx, from, to)
	if err != nil {
		t.logger.Warn("house feed unavailable", "error", err)
	} else {
		for i := range house {
			house[i].Chamber = model.ChamberHouse
		}
		all = append(all, house...)
		t.logger.Info("fetched house trades", "count", len(house), "from", from, "to", to)
	}

	senate, err := t.client.GetSenateTrades(ctx, from, to)
	if err != nil {
		t.logger.Warn("senate feed unavailable", "error", err)
	} else {
		for i := range senate {
			senate[i].Chamber = model.ChamberSenate
		}
		all = append(all, senate...)
		t.logger.Info("fetched senate trades", "count", len(senate), "from", from, "to", to)
	}

	return all
}
