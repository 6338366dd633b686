package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry. Stock is the only field checkout may mutate;
// everything else changes through administrative CRUD only.
type Product struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	CategoryID string          `json:"categoryId"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	SKU        string          `json:"sku"`
	Image      string          `json:"image,omitempty"`
}
