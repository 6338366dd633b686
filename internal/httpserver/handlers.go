package httpserver

import (
	"log"

	"pos-terminal/internal/auth"
	"pos-terminal/internal/domain"
	"pos-terminal/internal/pos"
	"pos-terminal/internal/repository/salelog"
)

type handlers struct {
	engine  *pos.Engine
	auth    *auth.Service
	archive salelog.Repository
	logger  *log.Logger
}

// pricingResponse renders monetary values rounded to two fraction digits.
// Rounding happens only here; the engine keeps exact decimals throughout.
type pricingResponse struct {
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

func toPricingResponse(p domain.PricingResult) pricingResponse {
	return pricingResponse{
		Subtotal: p.Subtotal.StringFixed(2),
		Discount: p.Discount.StringFixed(2),
		Tax:      p.Tax.StringFixed(2),
		Total:    p.Total.StringFixed(2),
	}
}

type cartResponse struct {
	Lines   []domain.CartLine `json:"lines"`
	Pricing pricingResponse   `json:"pricing"`
}
