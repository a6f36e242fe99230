// Package tracker implements the ingestion orchestrator.
//
// One run computes a date window, pulls the House and Senate feeds
// independently, tags each record with its source chamber, normalizes it,
// and saves it through the store's dedup path. Runs are idempotent over
// overlapping windows: re-fetched disclosures are never double-counted.
package tracker
