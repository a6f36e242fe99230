// Package amount parses disclosed monetary range strings into numeric bounds.
//
// Disclosure filings report amounts as brackets like "$1,001 - $15,000"
// rather than exact values. Parsing never fails: malformed input falls back
// to the smallest bracket so one bad field cannot abort an ingestion run.
package amount

import (
	"strconv"
	"strings"
)

// Smallest disclosure bracket, substituted on any parse failure.
const (
	FallbackLow  = 1000.0
	FallbackHigh = 15000.0
)

// Range holds the parsed bounds of a disclosed amount bracket.
type Range struct {
	Low  float64
	High float64

	// Fallback reports that the input could not be parsed and the
	// smallest bracket was substituted.
	Fallback bool
}

// Midpoint returns the point estimate used for a bracketed amount.
func (r Range) Midpoint() float64 {
	return (r.Low + r.High) / 2
}

// ParseRange parses a string like "$1,001 - $15,000" into its bounds.
// A single value ("$1,500") yields identical bounds. Bounds are returned
// in the order given, even when the first exceeds the second.
func ParseRange(s string) Range {
	clean := strings.ReplaceAll(s, "$", "")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)

	if clean == "" {
		return fallback()
	}

	if strings.Contains(clean, "-") {
		parts := strings.Split(clean, "-")
		low, errLow := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		high, errHigh := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errLow != nil || errHigh != nil {
			return fallback()
		}
		return Range{Low: low, High: high}
	}

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return fallback()
	}
	return Range{Low: v, High: v}
}

func fallback() Range {
	return Range{Low: FallbackLow, High: FallbackHigh, Fallback: true}
}
