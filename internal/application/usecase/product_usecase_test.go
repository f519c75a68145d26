package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackel7/stock-mate/internal/application/dto"
	"github.com/jackel7/stock-mate/internal/application/usecase"
	"github.com/jackel7/stock-mate/internal/domain"
	"github.com/jackel7/stock-mate/internal/domain/entity"
	"github.com/jackel7/stock-mate/internal/domain/repository"
	"github.com/jackel7/stock-mate/internal/testutil"
)

func TestProductCreate(t *testing.T) {
	store := testutil.NewStore()
	uc := usecase.NewProductUseCase(testutil.NewProductRepo(store))

	resp, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU:      "WID-1",
		Name:     "Widget",
		Quantity: 15,
		Unit:     "pcs",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultReorderLevel, resp.ReorderLevel)
	assert.Equal(t, 15, resp.Quantity)
	assert.False(t, resp.LowStock)

	// Duplicate SKU is rejected.
	_, err = uc.Create(context.Background(), dto.CreateProductRequest{SKU: "WID-1", Name: "Other"})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	// Missing fields and negative prices are rejected.
	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Name: "No SKU"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "WID-2", Name: "Widget", CostPrice: decimal.NewFromInt(-1),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdateLeavesQuantityAlone(t *testing.T) {
	store := testutil.NewStore()
	store.SeedProduct(&entity.Product{ID: "p1", SKU: "WID-1", Name: "Widget", Quantity: 42, ReorderLevel: 5})
	uc := usecase.NewProductUseCase(testutil.NewProductRepo(store))

	name := "Renamed"
	reorder := 50
	resp, err := uc.Update(context.Background(), "p1", dto.UpdateProductRequest{
		Name:         &name,
		ReorderLevel: &reorder,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", resp.Name)
	assert.Equal(t, 42, resp.Quantity)
	assert.True(t, resp.LowStock) // 42 <= new reorder level 50

	_, err = uc.Update(context.Background(), "missing", dto.UpdateProductRequest{Name: &name})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductListLowStockFilter(t *testing.T) {
	store := testutil.NewStore()
	store.SeedProduct(&entity.Product{ID: "low", SKU: "A", Name: "A", Quantity: 2, ReorderLevel: 10})
	store.SeedProduct(&entity.Product{ID: "ok", SKU: "B", Name: "B", Quantity: 20, ReorderLevel: 10})
	uc := usecase.NewProductUseCase(testutil.NewProductRepo(store))

	list, err := uc.List(context.Background(), repository.ProductFilter{LowStock: true})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "low", list[0].ID)
	assert.True(t, list[0].LowStock)
}

func TestCategoryDeleteGuardedByProducts(t *testing.T) {
	store := testutil.NewStore()
	catID := "c1"
	store.Categories[catID] = &entity.Category{ID: catID, Name: "Tools"}
	store.SeedProduct(&entity.Product{ID: "p1", SKU: "A", Name: "A", CategoryID: &catID})
	uc := usecase.NewCategoryUseCase(testutil.NewCategoryRepo(store), testutil.NewProductRepo(store))

	err := uc.Delete(context.Background(), catID)
	require.ErrorIs(t, err, domain.ErrConflict)

	// Once the product moves away, the delete goes through.
	store.Products["p1"].CategoryID = nil
	require.NoError(t, uc.Delete(context.Background(), catID))
	assert.Empty(t, store.Categories)
}

func TestVendorDeleteGuardedByProducts(t *testing.T) {
	store := testutil.NewStore()
	vendorID := "v1"
	store.Vendors[vendorID] = &entity.Vendor{ID: vendorID, Name: "Acme"}
	store.SeedProduct(&entity.Product{ID: "p1", SKU: "A", Name: "A", VendorID: &vendorID})
	uc := usecase.NewVendorUseCase(testutil.NewVendorRepo(store), testutil.NewProductRepo(store))

	err := uc.Delete(context.Background(), vendorID)
	require.ErrorIs(t, err, domain.ErrConflict)

	store.Products["p1"].VendorID = nil
	require.NoError(t, uc.Delete(context.Background(), vendorID))
	assert.Empty(t, store.Vendors)
}
