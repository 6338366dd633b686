// Package sales holds the append-only history of finalized sales.
package sales

import "pos-terminal/internal/domain"

// Ledger keeps finalized sales newest first. Entries are never edited or
// removed. Like the catalog store it carries no lock of its own; the owning
// engine serializes access.
type Ledger struct {
	entries []domain.Sale
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Prepend records a finalized sale as the newest entry.
func (l *Ledger) Prepend(sale domain.Sale) {
	l.entries = append([]domain.Sale{sale}, l.entries...)
}

// List returns a copy of all sales, newest first.
func (l *Ledger) List() []domain.Sale {
	return append([]domain.Sale(nil), l.entries...)
}

// Len reports the number of recorded sales.
func (l *Ledger) Len() int {
	return len(l.entries)
}
