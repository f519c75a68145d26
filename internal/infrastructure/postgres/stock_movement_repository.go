package postgres

import (
	"context"
	"fmt"

	"github.com/jackel7/stock-mate/internal/domain/entity"
	"github.com/jackel7/stock-mate/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implements the append-only movement log over PostgreSQL
// (usable with pool or tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository builds the movement adapter. Pass a pool or tx
// (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create appends a stock movement.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, transaction_id, change_quantity, current_stock_after, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.TransactionID,
		movement.ChangeQuantity, movement.CurrentStockAfter, movement.Note, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListRecent returns the newest movements with product name/sku joined in.
func (r *StockMovementRepo) ListRecent(ctx context.Context, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT m.id, m.product_id, m.transaction_id, m.change_quantity, m.current_stock_after, m.note, m.created_at,
		       COALESCE(p.name, ''), COALESCE(p.sku, '')
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id
		ORDER BY m.created_at DESC
		LIMIT $1`
	return r.list(ctx, query, limit)
}

// ListByProduct returns a product's movement history, newest first.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT m.id, m.product_id, m.transaction_id, m.change_quantity, m.current_stock_after, m.note, m.created_at,
		       COALESCE(p.name, ''), COALESCE(p.sku, '')
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id
		WHERE m.product_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2`
	return r.list(ctx, query, productID, limit)
}

func (r *StockMovementRepo) list(ctx context.Context, query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.TransactionID, &m.ChangeQuantity, &m.CurrentStockAfter,
			&m.Note, &m.CreatedAt, &m.ProductName, &m.ProductSKU,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
