package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceRecord is a single immutable observation: the price of one fuel in
// one currency on one calendar day. The store enforces uniqueness of
// (At, Fuel.ID, Currency.ID), so a day never carries two prices for the
// same pair.
//
// At is day-granularity: midnight UTC of the observation date.
type PriceRecord struct {
	ID       int64
	At       time.Time
	Fuel     Fuel
	Currency Currency
	Price    decimal.Decimal
}
