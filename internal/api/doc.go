// Package api provides the client for the upstream disclosure feeds.
//
// The provider exposes two logically independent endpoints:
//   - GET /house-trades
//   - GET /senate-trades
//
// Both take an apikey credential plus a from/to date window (YYYY-MM-DD)
// and return a JSON array of loosely-typed disclosure records. Record field
// names differ between the two feeds, so records are returned raw and
// normalized downstream.
package api
