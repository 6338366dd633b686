package catalog

import (
	"io"
	"log"

	"github.com/google/uuid"

	"pos-terminal/internal/domain"
)

// Store holds the product catalog and category list in memory. It is not
// safe for concurrent use on its own; the engine that owns it serializes
// every access behind its lock.
type Store struct {
	logger     *log.Logger
	products   []domain.Product
	categories []domain.Category
}

func New(products []domain.Product, categories []domain.Category, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{
		logger:     logger,
		products:   append([]domain.Product(nil), products...),
		categories: append([]domain.Category(nil), categories...),
	}
}

// Products returns a copy of the catalog in insertion order.
func (s *Store) Products() []domain.Product {
	return append([]domain.Product(nil), s.products...)
}

// Categories returns a copy of the category list.
func (s *Store) Categories() []domain.Category {
	return append([]domain.Category(nil), s.categories...)
}

// Get returns a copy of the product with the given id.
func (s *Store) Get(id string) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create appends a product under a freshly assigned id, ignoring any id on
// the input, and returns the stored record.
func (s *Store) Create(p domain.Product) domain.Product {
	p.ID = uuid.NewString()
	s.products = append(s.products, p)
	s.logger.Printf("catalog: created product id=%s sku=%s", p.ID, p.SKU)
	return p
}

// Update replaces the product with the same id. Unknown ids are ignored.
func (s *Store) Update(p domain.Product) {
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			s.logger.Printf("catalog: updated product id=%s", p.ID)
			return
		}
	}
}

// Delete removes the product with the given id. Unknown ids are ignored.
// Cart lines referencing the product are left alone.
func (s *Store) Delete(id string) {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.logger.Printf("catalog: deleted product id=%s", id)
			return
		}
	}
}

// DecrementStock reduces the stock of the given product. Checkout is the only
// caller; the cart invariant already bounds qty by the current stock, so no
// clamping happens here. Unknown ids are ignored (the product was deleted
// while still referenced by a cart).
func (s *Store) DecrementStock(id string, qty int) {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Stock -= qty
			return
		}
	}
}
