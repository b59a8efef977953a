package dto

import (
	"github.com/shopspring/decimal"

	"github.com/benzak-dev/benzak-api/internal/domain/models"
)

// DailyReportResponse is the wire shape of one aggregated per-date report.
// Ordering inside the report (fuels by fuel name, prices by currency name)
// is established by the aggregation engine and preserved here.
type DailyReportResponse struct {
	At    string               `json:"at" example:"2024-01-01"`
	Fuels []FuelReportResponse `json:"fuels"`
}

// FuelReportResponse groups one fuel's prices across currencies for a day.
type FuelReportResponse struct {
	Fuel   FuelResponse         `json:"fuel"`
	Prices []PriceEntryResponse `json:"prices"`
}

// PriceEntryResponse is a single (currency, value) pair.
type PriceEntryResponse struct {
	Currency CurrencyResponse `json:"currency"`
	Value    decimal.Decimal  `json:"value" example:"2.36"`
}

func NewDailyReportResponse(rep models.DailyReport) DailyReportResponse {
	out := DailyReportResponse{
		At:    rep.At.Format(models.DateLayout),
		Fuels: make([]FuelReportResponse, 0, len(rep.Fuels)),
	}
	for _, fr := range rep.Fuels {
		entry := FuelReportResponse{
			Fuel:   NewFuelResponse(fr.Fuel),
			Prices: make([]PriceEntryResponse, 0, len(fr.Prices)),
		}
		for _, pe := range fr.Prices {
			entry.Prices = append(entry.Prices, PriceEntryResponse{
				Currency: NewCurrencyResponse(pe.Currency),
				Value:    pe.Value,
			})
		}
		out.Fuels = append(out.Fuels, entry)
	}
	return out
}
