package models

import "github.com/shopspring/decimal"

// FieldValue pairs a raw numeric result with a rounded display string.
type FieldValue struct {
	Raw     float64 `json:"raw"`     // For clients doing their own math
	Display string  `json:"display"` // For UI: "21.609652"
	Type    string  `json:"type"`
}

// NewPriceField rounds value to precision decimal places for display.
func NewPriceField(value float64, precision int32) FieldValue {
	return FieldValue{
		Raw:     value,
		Display: decimal.NewFromFloat(value).Round(precision).String(),
		Type:    "price",
	}
}

// PriceRequest is the body of the vanilla pricing endpoints. Rates and
// returns are per lattice step; maturity is the step count.
type PriceRequest struct {
	Rate       float64 `json:"rate"`
	Up         float64 `json:"up"`
	Down       float64 `json:"down"`
	Maturity   int     `json:"maturity"`
	StartPrice float64 `json:"start_price"`
	Strike     float64 `json:"strike"`
}

// BarrierPriceRequest adds the knock-in level for the up-and-in call.
type BarrierPriceRequest struct {
	PriceRequest
	Barrier float64 `json:"barrier"`
}

// PriceResponse is the shared response of every pricing endpoint.
type PriceResponse struct {
	Success  bool        `json:"success"`
	Contract string      `json:"contract"`
	Price    *FieldValue `json:"price,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// HealthResponse reports liveness and the supported contracts.
type HealthResponse struct {
	Status    string   `json:"status"`
	Engine    string   `json:"engine"`
	Contracts []string `json:"contracts"`
}
