package repository

import (
	"context"

	"github.com/jackel7/stock-mate/internal/domain/entity"
)

// StockMovementRepository is the port for the append-only movement log.
// There is deliberately no update or delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListRecent returns the newest movements (created_at descending) with
	// product name and SKU joined in.
	ListRecent(ctx context.Context, limit int) ([]*entity.StockMovement, error)
	// ListByProduct returns a product's movement history, newest first.
	ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error)
}
