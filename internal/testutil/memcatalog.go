package testutil

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jackel7/stock-mate/internal/domain"
	"github.com/jackel7/stock-mate/internal/domain/entity"
	"github.com/jackel7/stock-mate/internal/domain/repository"
)

var (
	_ repository.CategoryRepository  = (*CategoryRepo)(nil)
	_ repository.VendorRepository    = (*VendorRepo)(nil)
	_ repository.DashboardRepository = (*DashboardRepo)(nil)
)

// CategoryRepo is the in-memory CategoryRepository.
type CategoryRepo struct {
	store *Store
}

// NewCategoryRepo builds the repo.
func NewCategoryRepo(store *Store) *CategoryRepo { return &CategoryRepo{store: store} }

func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	cp := *category
	r.store.Categories[category.ID] = &cp
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.store.Categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.store.Categories))
	for _, c := range r.store.Categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *CategoryRepo) Update(_ context.Context, category *entity.Category) error {
	if _, ok := r.store.Categories[category.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *category
	r.store.Categories[category.ID] = &cp
	return nil
}

func (r *CategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.store.Categories, id)
	return nil
}

// VendorRepo is the in-memory VendorRepository.
type VendorRepo struct {
	store *Store
}

// NewVendorRepo builds the repo.
func NewVendorRepo(store *Store) *VendorRepo { return &VendorRepo{store: store} }

func (r *VendorRepo) Create(_ context.Context, vendor *entity.Vendor) error {
	cp := *vendor
	r.store.Vendors[vendor.ID] = &cp
	return nil
}

func (r *VendorRepo) GetByID(_ context.Context, id string) (*entity.Vendor, error) {
	v, ok := r.store.Vendors[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *VendorRepo) List(_ context.Context) ([]*entity.Vendor, error) {
	out := make([]*entity.Vendor, 0, len(r.store.Vendors))
	for _, v := range r.store.Vendors {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (r *VendorRepo) Update(_ context.Context, vendor *entity.Vendor) error {
	if _, ok := r.store.Vendors[vendor.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *vendor
	r.store.Vendors[vendor.ID] = &cp
	return nil
}

func (r *VendorRepo) Delete(_ context.Context, id string) error {
	delete(r.store.Vendors, id)
	return nil
}

// DashboardRepo computes the aggregate stats from the store.
type DashboardRepo struct {
	store *Store
}

// NewDashboardRepo builds the repo.
func NewDashboardRepo(store *Store) *DashboardRepo { return &DashboardRepo{store: store} }

func (r *DashboardRepo) GetStats(_ context.Context) (repository.DashboardStats, error) {
	stats := repository.DashboardStats{
		Transactions: len(r.store.Transactions),
		Vendors:      len(r.store.Vendors),
		TotalValue:   decimal.Zero,
	}
	for _, p := range r.store.Products {
		stats.Products++
		if p.LowStock() {
			stats.LowStock++
		}
		stats.TotalValue = stats.TotalValue.Add(p.CostPrice.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return stats, nil
}
