package dto

import (
	"github.com/shopspring/decimal"

	"github.com/benzak-dev/benzak-api/internal/domain/models"
)

// CreatePriceRequest is the body of POST /api/v1/price-history.
// Fuel and Currency are reference row ids.
type CreatePriceRequest struct {
	At       string          `json:"at" binding:"required" example:"2024-01-01"`
	Fuel     int64           `json:"fuel" binding:"required" example:"1"`
	Currency int64           `json:"currency" binding:"required" example:"2"`
	Price    decimal.Decimal `json:"price" binding:"required" example:"2.36"`
}

// CurrencyResponse mirrors the reference catalog row on the wire.
type CurrencyResponse struct {
	Name string `json:"name" example:"BYN"`
}

// FuelResponse mirrors the reference catalog row on the wire.
type FuelResponse struct {
	Name      string `json:"name" example:"АИ-95"`
	ShortName string `json:"short_name" example:"95"`
	Color     string `json:"color" example:"#f44336"`
}

// PriceRecordResponse is one flat price observation as returned by
// GET /api/v1/price-history.
type PriceRecordResponse struct {
	ID       int64            `json:"id" example:"42"`
	At       string           `json:"at" example:"2024-01-01"`
	Fuel     FuelResponse     `json:"fuel"`
	Currency CurrencyResponse `json:"currency"`
	Price    decimal.Decimal  `json:"price" example:"2.36"`
}

func NewCurrencyResponse(c models.Currency) CurrencyResponse {
	return CurrencyResponse{Name: c.Name}
}

func NewFuelResponse(f models.Fuel) FuelResponse {
	return FuelResponse{Name: f.Name, ShortName: f.ShortName, Color: f.Color}
}

func NewPriceRecordResponse(rec models.PriceRecord) PriceRecordResponse {
	return PriceRecordResponse{
		ID:       rec.ID,
		At:       rec.At.Format(models.DateLayout),
		Fuel:     NewFuelResponse(rec.Fuel),
		Currency: NewCurrencyResponse(rec.Currency),
		Price:    rec.Price,
	}
}
