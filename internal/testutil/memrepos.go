package testutil

import (
	"context"

	"github.com/jackel7/stock-mate/internal/domain"
	"github.com/jackel7/stock-mate/internal/domain/entity"
	"github.com/jackel7/stock-mate/internal/domain/repository"
)

// The repositories below operate directly on the store and are not
// goroutine-safe on their own; concurrent writes go through TxRunner.Run,
// which holds the store mutex.

var (
	_ repository.TransactionRepository   = (*TransactionRepo)(nil)
	_ repository.ProductRepository       = (*ProductRepo)(nil)
	_ repository.StockMovementRepository = (*StockMovementRepo)(nil)
	_ repository.AlertRepository         = (*AlertRepo)(nil)
)

// TransactionRepo is the in-memory TransactionRepository.
type TransactionRepo struct {
	store *Store
}

// NewTransactionRepo builds the repo for direct (non-transactional) use.
func NewTransactionRepo(store *Store) *TransactionRepo { return &TransactionRepo{store: store} }

func (r *TransactionRepo) CreateHeader(_ context.Context, tx *entity.Transaction) error {
	cp := *tx
	r.store.Transactions[tx.ID] = &cp
	return nil
}

func (r *TransactionRepo) CreateItem(_ context.Context, item *entity.TransactionItem) error {
	if r.store.FailItemCreate != nil {
		return r.store.FailItemCreate
	}
	cp := *item
	r.store.Items = append(r.store.Items, &cp)
	return nil
}

func (r *TransactionRepo) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	t, ok := r.store.Transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *TransactionRepo) ListItems(_ context.Context, transactionID string) ([]*entity.TransactionItem, error) {
	var out []*entity.TransactionItem
	for _, item := range r.store.Items {
		if item.TransactionID != transactionID {
			continue
		}
		cp := *item
		if p, ok := r.store.Products[item.ProductID]; ok {
			cp.ProductName = p.Name
			cp.ProductSKU = p.SKU
		}
		out = append(out, &cp)
	}
	return out, nil
}

func (r *TransactionRepo) List(_ context.Context) ([]*entity.Transaction, error) {
	out := r.all()
	// transaction_date descending
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].TransactionDate.After(out[i].TransactionDate) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *TransactionRepo) ListRecent(_ context.Context, limit int) ([]*entity.Transaction, error) {
	out := r.all()
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *TransactionRepo) all() []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(r.store.Transactions))
	for _, t := range r.store.Transactions {
		cp := *t
		for _, item := range r.store.Items {
			if item.TransactionID == t.ID {
				cp.ItemCount++
			}
		}
		out = append(out, &cp)
	}
	return out
}

// ProductRepo is the in-memory ProductRepository.
type ProductRepo struct {
	store *Store
}

// NewProductRepo builds the repo for direct (non-transactional) use.
func NewProductRepo(store *Store) *ProductRepo { return &ProductRepo{store: store} }

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	for _, p := range r.store.Products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *product
	r.store.Products[product.ID] = &cp
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.store.Products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.store.Products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// GetForUpdate behaves like GetByID; exclusion is provided by the TxRunner
// mutex.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	existing, ok := r.store.Products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *product
	cp.Quantity = existing.Quantity // quantity is ledger-owned
	r.store.Products[product.ID] = &cp
	return nil
}

func (r *ProductRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	p, ok := r.store.Products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *ProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.Products {
		if filter.CategoryID != "" && (p.CategoryID == nil || *p.CategoryID != filter.CategoryID) {
			continue
		}
		if filter.VendorID != "" && (p.VendorID == nil || *p.VendorID != filter.VendorID) {
			continue
		}
		if filter.LowStock && p.Quantity > p.ReorderLevel {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	delete(r.store.Products, id)
	return nil
}

func (r *ProductRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	count := 0
	for _, p := range r.store.Products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *ProductRepo) CountByVendor(_ context.Context, vendorID string) (int, error) {
	count := 0
	for _, p := range r.store.Products {
		if p.VendorID != nil && *p.VendorID == vendorID {
			count++
		}
	}
	return count, nil
}

// StockMovementRepo is the in-memory StockMovementRepository.
type StockMovementRepo struct {
	store *Store
}

// NewStockMovementRepo builds the repo for direct (non-transactional) use.
func NewStockMovementRepo(store *Store) *StockMovementRepo { return &StockMovementRepo{store: store} }

func (r *StockMovementRepo) Create(_ context.Context, movement *entity.StockMovement) error {
	if r.store.FailMovementCreate != nil {
		return r.store.FailMovementCreate
	}
	cp := *movement
	r.store.Movements = append(r.store.Movements, &cp)
	return nil
}

func (r *StockMovementRepo) ListRecent(_ context.Context, limit int) ([]*entity.StockMovement, error) {
	return r.newestFirst(nil, limit), nil
}

func (r *StockMovementRepo) ListByProduct(_ context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	return r.newestFirst(func(m *entity.StockMovement) bool { return m.ProductID == productID }, limit), nil
}

// newestFirst reverses append order, which is creation order.
func (r *StockMovementRepo) newestFirst(match func(*entity.StockMovement) bool, limit int) []*entity.StockMovement {
	var out []*entity.StockMovement
	for i := len(r.store.Movements) - 1; i >= 0 && len(out) < limit; i-- {
		m := r.store.Movements[i]
		if match != nil && !match(m) {
			continue
		}
		cp := *m
		if p, ok := r.store.Products[m.ProductID]; ok {
			cp.ProductName = p.Name
			cp.ProductSKU = p.SKU
		}
		out = append(out, &cp)
	}
	return out
}

// AlertRepo is the in-memory AlertRepository.
type AlertRepo struct {
	store *Store
}

// NewAlertRepo builds the repo for direct (non-transactional) use.
func NewAlertRepo(store *Store) *AlertRepo { return &AlertRepo{store: store} }

func (r *AlertRepo) Create(_ context.Context, alert *entity.Alert) error {
	if r.store.FailAlertCreate != nil {
		return r.store.FailAlertCreate
	}
	cp := *alert
	r.store.Alerts = append(r.store.Alerts, &cp)
	return nil
}

func (r *AlertRepo) ListRecent(_ context.Context, limit int) ([]*entity.Alert, error) {
	var out []*entity.Alert
	for i := len(r.store.Alerts) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *r.store.Alerts[i]
		out = append(out, &cp)
	}
	return out, nil
}
