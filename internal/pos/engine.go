// Package pos implements the order/transaction engine: the operator carts,
// pricing reads, checkout finalization and the resulting stock and ledger
// updates.
package pos

import (
	"io"
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"pos-terminal/internal/catalog"
	"pos-terminal/internal/domain"
	"pos-terminal/internal/sales"
)

// Engine owns the catalog store, the sale ledger and one cart per operator.
// A single mutex guards all three, so the checkout transition in checkout.go
// is all-or-nothing to any other caller.
type Engine struct {
	mu      sync.Mutex
	logger  *log.Logger
	catalog *catalog.Store
	ledger  *sales.Ledger
	carts   map[string][]domain.CartLine
	taxRate decimal.Decimal
}

func New(store *catalog.Store, ledger *sales.Ledger, taxRate decimal.Decimal, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{
		logger:  logger,
		catalog: store,
		ledger:  ledger,
		carts:   make(map[string][]domain.CartLine),
		taxRate: taxRate,
	}
}

// TaxRate returns the flat tax rate the engine was configured with.
func (e *Engine) TaxRate() decimal.Decimal {
	return e.taxRate
}

// Products returns a snapshot of the catalog.
func (e *Engine) Products() []domain.Product {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.Products()
}

// Categories returns a snapshot of the category list.
func (e *Engine) Categories() []domain.Category {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.Categories()
}

// CreateProduct stores a new product under a fresh id and returns it.
func (e *Engine) CreateProduct(p domain.Product) domain.Product {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.Create(p)
}

// UpdateProduct replaces the stored product with the same id; unknown ids
// are ignored.
func (e *Engine) UpdateProduct(p domain.Product) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.catalog.Update(p)
}

// DeleteProduct removes a product; unknown ids are ignored. Cart lines still
// referencing it keep their snapshot and price as usual.
func (e *Engine) DeleteProduct(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.catalog.Delete(id)
}

// Sales returns the ledger contents, newest first.
func (e *Engine) Sales() []domain.Sale {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.List()
}
