package salelog

import (
	"context"

	"pos-terminal/internal/domain"
)

// Repository archives finalized sales outside the process. The engine never
// reads from it; it exists for reporting retention across restarts.
type Repository interface {
	Insert(ctx context.Context, sale domain.Sale) error
	ListRecent(ctx context.Context, limit int) ([]domain.Sale, error)
}
