package domain

import "github.com/shopspring/decimal"

// CartLine pairs a product with a pending quantity. Product is a copy taken
// when the line is created, so administrative price edits do not reprice lines
// already in a cart. Quantity never exceeds the product's stock.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// PricingResult is derived from a cart snapshot plus a flat discount. It is
// recomputed on every read and never stored.
type PricingResult struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}
