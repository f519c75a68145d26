package repository

import (
	"context"

	"github.com/jackel7/stock-mate/internal/domain/entity"
)

// TransactionRepository is the persistence port for transaction headers and
// their line items. Both are written once by the ledger and read-only
// afterward.
type TransactionRepository interface {
	CreateHeader(ctx context.Context, tx *entity.Transaction) error
	CreateItem(ctx context.Context, item *entity.TransactionItem) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	// ListItems returns a transaction's items in creation order, with product
	// name and SKU joined in.
	ListItems(ctx context.Context, transactionID string) ([]*entity.TransactionItem, error)
	// List returns headers ordered by transaction_date descending, with
	// ItemCount populated.
	List(ctx context.Context) ([]*entity.Transaction, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Transaction, error)
}
