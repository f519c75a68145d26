package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jackel7/stock-mate/internal/domain/entity"
	"github.com/jackel7/stock-mate/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implements TransactionRepository over PostgreSQL (usable
// with pool or tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository builds the transaction adapter. Pass a pool or tx
// (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// CreateHeader persists a transaction header.
func (r *TransactionRepo) CreateHeader(ctx context.Context, tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, type, total_amount, transaction_date, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		tx.ID, string(tx.Type), tx.TotalAmount, tx.TransactionDate, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// CreateItem persists one line item.
func (r *TransactionRepo) CreateItem(ctx context.Context, item *entity.TransactionItem) error {
	query := `
		INSERT INTO transaction_items (id, transaction_id, product_id, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.TransactionID, item.ProductID, item.Quantity, item.UnitPrice, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction item: %w", err)
	}
	return nil
}

// GetByID returns a header by ID, or nil.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	query := `
		SELECT id, type, total_amount, transaction_date, created_at
		FROM transactions WHERE id = $1`
	var t entity.Transaction
	var ttype string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &ttype, &t.TotalAmount, &t.TransactionDate, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	t.Type = entity.TransactionType(ttype)
	return &t, nil
}

// ListItems returns a transaction's items in creation order with product name
// and SKU joined in.
func (r *TransactionRepo) ListItems(ctx context.Context, transactionID string) ([]*entity.TransactionItem, error) {
	query := `
		SELECT i.id, i.transaction_id, i.product_id, i.quantity, i.unit_price, i.created_at,
		       COALESCE(p.name, ''), COALESCE(p.sku, '')
		FROM transaction_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.transaction_id = $1
		ORDER BY i.created_at ASC, i.id ASC`
	rows, err := r.q.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list transaction items: %w", err)
	}
	defer rows.Close()

	var list []*entity.TransactionItem
	for rows.Next() {
		var item entity.TransactionItem
		if err := rows.Scan(
			&item.ID, &item.TransactionID, &item.ProductID, &item.Quantity, &item.UnitPrice,
			&item.CreatedAt, &item.ProductName, &item.ProductSKU,
		); err != nil {
			return nil, fmt.Errorf("scan transaction item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// List returns headers ordered by transaction_date descending with item
// counts.
func (r *TransactionRepo) List(ctx context.Context) ([]*entity.Transaction, error) {
	return r.list(ctx, `
		SELECT t.id, t.type, t.total_amount, t.transaction_date, t.created_at,
		       (SELECT COUNT(*) FROM transaction_items i WHERE i.transaction_id = t.id)
		FROM transactions t
		ORDER BY t.transaction_date DESC`)
}

// ListRecent returns the newest headers by creation time.
func (r *TransactionRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	return r.list(ctx, `
		SELECT t.id, t.type, t.total_amount, t.transaction_date, t.created_at,
		       (SELECT COUNT(*) FROM transaction_items i WHERE i.transaction_id = t.id)
		FROM transactions t
		ORDER BY t.created_at DESC
		LIMIT $1`, limit)
}

func (r *TransactionRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		var ttype string
		if err := rows.Scan(&t.ID, &ttype, &t.TotalAmount, &t.TransactionDate, &t.CreatedAt, &t.ItemCount); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Type = entity.TransactionType(ttype)
		list = append(list, &t)
	}
	return list, rows.Err()
}
