package pos

import (
	"github.com/shopspring/decimal"

	"pos-terminal/internal/domain"
	"pos-terminal/internal/pricing"
)

// AddToCart puts one more unit of the product into the operator's cart.
// An existing line grows by 1 unless that would exceed the product's current
// stock; a new line is created with quantity 1 only while stock is positive.
// Hitting the cap is a silent no-op, not an error. Unknown product ids return
// domain.ErrNotFound.
func (e *Engine) AddToCart(operatorID, productID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	product, err := e.catalog.Get(productID)
	if err != nil {
		return err
	}

	lines := e.carts[operatorID]
	for i := range lines {
		if lines[i].Product.ID == productID {
			if lines[i].Quantity >= product.Stock {
				return nil
			}
			lines[i].Quantity++
			return nil
		}
	}

	if product.Stock <= 0 {
		return nil
	}
	e.carts[operatorID] = append(lines, domain.CartLine{Product: *product, Quantity: 1})
	return nil
}

// RemoveFromCart drops the line for the given product. Absent lines are
// ignored.
func (e *Engine) RemoveFromCart(operatorID, productID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeLine(operatorID, productID)
}

// SetQuantity updates an existing line. A qty of zero or less removes the
// line; anything above the product's stock is silently capped. A line that is
// not present stays absent: unlike AddToCart, SetQuantity never creates one.
func (e *Engine) SetQuantity(operatorID, productID string, qty int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if qty <= 0 {
		e.removeLine(operatorID, productID)
		return
	}

	lines := e.carts[operatorID]
	for i := range lines {
		if lines[i].Product.ID != productID {
			continue
		}
		stock := lines[i].Product.Stock
		if current, err := e.catalog.Get(productID); err == nil {
			stock = current.Stock
		}
		if qty > stock {
			qty = stock
		}
		lines[i].Quantity = qty
		return
	}
}

// ClearCart empties the operator's cart.
func (e *Engine) ClearCart(operatorID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.carts, operatorID)
}

// Cart returns a snapshot of the operator's cart in insertion order.
func (e *Engine) Cart(operatorID string) []domain.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.CartLine(nil), e.carts[operatorID]...)
}

// Pricing computes subtotal, tax and total for the operator's current cart
// and the given flat discount.
func (e *Engine) Pricing(operatorID string, discount decimal.Decimal) domain.PricingResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return pricing.Compute(e.carts[operatorID], discount, e.taxRate)
}

func (e *Engine) removeLine(operatorID, productID string) {
	lines := e.carts[operatorID]
	for i := range lines {
		if lines[i].Product.ID == productID {
			e.carts[operatorID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}
