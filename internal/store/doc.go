// Package store persists the trade fact table and official aggregates.
//
// Two backends implement Store:
//   - sqlite (default): a single local database file, suitable for the
//     scheduled single-binary deployment
//   - postgres: for shared deployments
//
// Both enforce the same identity tuple on trades and update the officials
// table in the same transaction as the trade insert. Trade rows are
// insert-only; official rows are upserted and never deleted.
//
// Dates are stored as YYYY-MM-DD text in both backends. Feeds can omit a
// date entirely, and the empty string must round-trip, so native date
// columns are deliberately not used.
package store
