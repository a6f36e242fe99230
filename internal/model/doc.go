// Package model defines shared data types used across the tracker.
//
// Conventions:
//   - Dates: YYYY-MM-DD strings as reported upstream (empty when absent)
//   - Amounts: float64 dollars, the midpoint of the disclosed bracket
//   - IDs: uuid.UUID for run ids; trades are keyed by their identity tuple
package model
