package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem is an immutable snapshot of a cart line, captured at checkout.
// Later product edits never alter it.
type SaleItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// Sale is a finalized transaction. It is created once at checkout and owned
// by the ledger afterwards; nothing in the core mutates it.
type Sale struct {
	ID         string          `json:"id"`
	Items      []SaleItem      `json:"items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Change     decimal.Decimal `json:"change"`
	Cashier    string          `json:"cashier"`
	Timestamp  time.Time       `json:"timestamp"`
}
