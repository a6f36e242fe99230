// Package normalize maps raw feed records onto the canonical Trade model.
//
// The House and Senate feeds name the same fields differently
// (representative vs senator, transactionType vs type, disclosureDate vs
// filingDate). Each canonical field carries an ordered alias list and the
// first present value wins.
package normalize

import (
	"errors"

	"github.com/rickgao/congress-data/internal/amount"
	"github.com/rickgao/congress-data/internal/api"
	"github.com/rickgao/congress-data/internal/model"
)

// DefaultAmountText is the smallest disclosure bracket, substituted when a
// record reports no amount at all.
const DefaultAmountText = "$1,001 - $15,000"

// ErrNotRecord reports that the raw input was not an object-shaped record.
// The caller logs the skip; the record is never retried.
var ErrNotRecord = errors.New("raw input is not a record")

// Normalize converts one raw feed record into a Trade.
//
// Identity and classification fields default to "Unknown" and date fields to
// the empty string when no accepted source field is present. The amount is
// always the midpoint of the parsed range, never read from upstream.
func Normalize(raw api.RawTrade, defaultAmountText string) (*model.Trade, error) {
	if raw.Fields == nil {
		return nil, ErrNotRecord
	}

	amountText := raw.StringField(defaultAmountText, "amount")
	r := amount.ParseRange(amountText)

	chamber := raw.Chamber
	if chamber == "" {
		chamber = raw.StringField(model.ChamberUnknown, "chamber")
	}

	return &model.Trade{
		OfficialName:    raw.StringField("Unknown", "representative", "senator"),
		Chamber:         chamber,
		State:           raw.StringField("Unknown", "state"),
		Party:           raw.StringField("Unknown", "party"),
		TransactionDate: raw.StringField("", "transactionDate"),
		DisclosureDate:  raw.StringField("", "disclosureDate", "filingDate"),
		Ticker:          raw.StringField("", "ticker"),
		AssetName:       raw.StringField("", "assetName", "asset"),
		TransactionType: raw.StringField(model.TransactionUnknown, "transactionType", "type"),
		Amount:          r.Midpoint(),
		RangeLow:        r.Low,
		RangeHigh:       r.High,
		RawPayload:      raw.JSON,
	}, nil
}
