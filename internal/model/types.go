package model

import (
	"time"

	"github.com/google/uuid"
)

// Chamber values. Feeds that omit the chamber are stored as Unknown.
const (
	ChamberHouse   = "House"
	ChamberSenate  = "Senate"
	ChamberUnknown = "Unknown"
)

// Common transaction types. The upstream value is stored verbatim, so
// other strings (e.g. "Exchange", "Sale (Partial)") can appear as well.
const (
	TransactionPurchase = "Purchase"
	TransactionSale     = "Sale"
	TransactionUnknown  = "Unknown"
)

// Trade is one disclosed transaction by a covered official.
//
// A trade is uniquely identified by (OfficialName, TransactionDate, Ticker,
// TransactionType, Amount); the store enforces that tuple. Rows are
// insert-only and never mutated.
type Trade struct {
	OfficialName    string // Name as reported by the feed
	Chamber         string // House, Senate, or Unknown
	State           string
	Party           string
	TransactionDate string // YYYY-MM-DD, empty when not reported
	DisclosureDate  string // YYYY-MM-DD, empty when not reported
	Ticker          string
	AssetName       string
	TransactionType string  // Upstream value, stored verbatim
	Amount          float64 // Midpoint of the disclosed bracket
	RangeLow        float64
	RangeHigh       float64
	RawPayload      []byte // Original source record, retained for audit
}

// OfficialStats is the running aggregate for one official.
//
// TradeCount and TotalVolume are maintained atomically with trade inserts:
// they always equal the count and amount sum of the stored trades for Name.
type OfficialStats struct {
	Name          string // Primary key
	Chamber       string // Last observed
	State         string // Last observed
	Party         string // Last observed
	TradeCount    int64
	TotalVolume   float64
	LastTradeDate string // Transaction date of the most recent new trade
}

// RunSummary is the outcome of one ingestion run.
type RunSummary struct {
	RunID       uuid.UUID
	TradesFound int     // Raw records returned by both feeds
	NewTrades   int     // Records stored for the first time
	TotalValue  float64 // Amount sum over the new trades
	DateRange   string  // "YYYY-MM-DD to YYYY-MM-DD"
	Timestamp   time.Time
	Err         string // Non-empty when the run could not start
}

// HasError reports whether the run failed before ingesting anything.
func (s RunSummary) HasError() bool {
	return s.Err != ""
}
