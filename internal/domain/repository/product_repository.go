package repository

import (
	"context"

	"github.com/jackel7/stock-mate/internal/domain/entity"
)

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategoryID string
	VendorID   string
	LowStock   bool // quantity <= reorder_level
}

// ProductRepository is the persistence port for Product.
//
// Quantity is ledger-owned: Update never touches it, only UpdateQuantity does,
// and callers are expected to hold the row lock obtained via GetForUpdate.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// GetForUpdate loads the product and locks its row (SELECT FOR UPDATE).
	// Only meaningful inside a transaction.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, categoryID string) (int, error)
	CountByVendor(ctx context.Context, vendorID string) (int, error)
}
