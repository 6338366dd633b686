package pos

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos-terminal/internal/domain"
	"pos-terminal/internal/pricing"
)

// Checkout validates the tendered amount against a freshly computed total and,
// if it covers the total, finalizes the operator's cart in one step: the lines
// are snapshotted into an immutable sale, stock is decremented, the sale is
// prepended to the ledger and the cart is cleared. All of it happens under the
// engine lock, so no reader ever sees stock moved without the matching ledger
// entry.
//
// A nil result means the checkout did not apply: empty cart, no operator,
// amountPaid below the total, or a line no longer covered by current stock.
// These are ordinary outcomes, not errors.
func (e *Engine) Checkout(operator *domain.Operator, amountPaid, discount decimal.Decimal) *domain.Sale {
	if operator == nil {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	lines := e.carts[operator.ID]
	if len(lines) == 0 {
		return nil
	}

	result := pricing.Compute(lines, discount, e.taxRate)
	if amountPaid.LessThan(result.Total) {
		return nil
	}

	// The cart invariant bounds each quantity by the stock seen at mutation
	// time, but another operator's checkout or an administrative edit may
	// have shrunk it since. Re-check here so the decrement below never
	// drives stock negative. A deleted product has no stock row left to
	// decrement and still finalizes from the snapshot.
	for _, line := range lines {
		product, err := e.catalog.Get(line.Product.ID)
		if err != nil {
			continue
		}
		if line.Quantity > product.Stock {
			return nil
		}
	}

	items := make([]domain.SaleItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.SaleItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.Product.Price,
			Total:       line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}

	sale := domain.Sale{
		ID:         uuid.NewString(),
		Items:      items,
		Subtotal:   result.Subtotal,
		Discount:   result.Discount,
		Tax:        result.Tax,
		Total:      result.Total,
		AmountPaid: amountPaid,
		Change:     amountPaid.Sub(result.Total),
		Cashier:    operator.Name,
		Timestamp:  time.Now().UTC(),
	}

	for _, line := range lines {
		e.catalog.DecrementStock(line.Product.ID, line.Quantity)
	}
	e.ledger.Prepend(sale)
	delete(e.carts, operator.ID)

	e.logger.Printf("checkout: finalized sale id=%s cashier=%s items=%d total=%s",
		sale.ID, sale.Cashier, len(sale.Items), sale.Total.StringFixed(2))
	return &sale
}
