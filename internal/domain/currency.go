package domain

import (
	"time"
)

// ExchangeRates is a snapshot of the rate table: currency code to units of
// that currency per one unit of the base currency. The base currency itself
// always maps to exactly 1.0.
type ExchangeRates struct {
	Rates       map[string]float64
	LastUpdated time.Time
}

// RateEntry is a single tracked currency with its current rate.
type RateEntry struct {
	Code string  `json:"code"`
	Rate float64 `json:"rate"`
}
