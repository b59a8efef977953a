package models

// Fuel is a reference catalog entry for a kind of fuel sold at the pump.
// Rows are created out-of-band (seeding) and are read-only to the API.
//
// Fields:
//   - Name: unique human label (e.g., "АИ-95"). Used as the ordering key.
//   - ShortName: unique compact label for chat/UI output.
//   - Color: unique display hint (hex color) for chart rendering.
//
// swagger:model Fuel
type Fuel struct {
	ID        int64  `json:"id" example:"1"`
	Name      string `json:"name" example:"АИ-95"`
	ShortName string `json:"short_name" example:"95"`
	Color     string `json:"color" example:"#f44336"`
}

// Currency is a reference catalog entry identified by its unique name
// (ISO-style code, e.g., "BYN"). Ordering key is the name.
//
// swagger:model Currency
type Currency struct {
	ID   int64  `json:"id" example:"2"`
	Name string `json:"name" example:"BYN"`
}
