// Package pricing computes totals for a cart snapshot. All arithmetic stays
// in exact decimals; rounding to two fraction digits is left to presentation.
package pricing

import (
	"github.com/shopspring/decimal"

	"pos-terminal/internal/domain"
)

// Compute derives subtotal, tax and total from the given lines, a flat
// discount amount and a tax rate. The taxable base is the subtotal minus the
// discount, floored at zero, so an oversized discount never produces a
// negative total.
func Compute(lines []domain.CartLine, discount, taxRate decimal.Decimal) domain.PricingResult {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	base := subtotal.Sub(discount)
	if base.IsNegative() {
		base = decimal.Zero
	}
	tax := base.Mul(taxRate)

	return domain.PricingResult{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    base.Add(tax),
	}
}
