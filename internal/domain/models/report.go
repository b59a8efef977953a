package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReport is the derived per-date snapshot of all fuel prices across
// currencies. It is recomputed from the store on every request and has no
// identity of its own.
//
// Invariants:
//   - Fuels is sorted ascending by Fuel.Name.
//   - Each FuelReport.Prices is sorted ascending by Currency.Name.
type DailyReport struct {
	At    time.Time
	Fuels []FuelReport
}

// FuelReport groups one day's prices of a single fuel across currencies.
type FuelReport struct {
	Fuel   Fuel
	Prices []PriceEntry
}

// PriceEntry is one (currency, value) pair within a FuelReport.
type PriceEntry struct {
	Currency Currency
	Value    decimal.Decimal
}
