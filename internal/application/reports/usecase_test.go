package reports_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackel7/stock-mate/internal/application/reports"
	"github.com/jackel7/stock-mate/internal/domain/entity"
	"github.com/jackel7/stock-mate/internal/testutil"
)

func TestRecentMovements(t *testing.T) {
	store := testutil.NewStore()
	store.SeedProduct(&entity.Product{ID: "p1", SKU: "WID-1", Name: "Widget"})
	store.Movements = []*entity.StockMovement{
		{ID: "m1", ProductID: "p1", ChangeQuantity: 5, CurrentStockAfter: 5},
		{ID: "m2", ProductID: "p1", ChangeQuantity: -2, CurrentStockAfter: 3},
	}
	uc := reports.NewReportsUseCase(testutil.NewStockMovementRepo(store), testutil.NewAlertRepo(store))

	list, err := uc.RecentMovements(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Newest first, product reference joined in.
	assert.Equal(t, "m2", list[0].ID)
	assert.Equal(t, "m1", list[1].ID)
	assert.Equal(t, "Widget", list[0].ProductName)
	assert.Equal(t, "WID-1", list[0].ProductSKU)
}

func TestProductHistoryIsCapped(t *testing.T) {
	store := testutil.NewStore()
	store.SeedProduct(&entity.Product{ID: "p1", SKU: "WID-1", Name: "Widget"})
	for i := 0; i < reports.ReportLimit+20; i++ {
		store.Movements = append(store.Movements, &entity.StockMovement{
			ID: fmt.Sprintf("m%d", i), ProductID: "p1", ChangeQuantity: 1, CurrentStockAfter: i + 1,
		})
	}
	uc := reports.NewReportsUseCase(testutil.NewStockMovementRepo(store), testutil.NewAlertRepo(store))

	list, err := uc.ProductHistory(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, list, reports.ReportLimit)
	assert.Equal(t, fmt.Sprintf("m%d", reports.ReportLimit+19), list[0].ID)
}

func TestRecentAlerts(t *testing.T) {
	store := testutil.NewStore()
	store.Alerts = []*entity.Alert{
		{ID: "a1", Type: entity.AlertTypeLowStock, Message: "Low stock alert: Widget is now at 2 pcs."},
	}
	uc := reports.NewReportsUseCase(testutil.NewStockMovementRepo(store), testutil.NewAlertRepo(store))

	list, err := uc.RecentAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.AlertTypeLowStock, list[0].Type)
	assert.False(t, list[0].IsResolved)
}

func TestDashboard(t *testing.T) {
	store := testutil.NewStore()
	store.SeedProduct(&entity.Product{ID: "p1", SKU: "A", Name: "A", Quantity: 4, ReorderLevel: 10, CostPrice: decimal.NewFromInt(3)})
	store.SeedProduct(&entity.Product{ID: "p2", SKU: "B", Name: "B", Quantity: 20, ReorderLevel: 10, CostPrice: decimal.NewFromInt(2)})
	store.Vendors["v1"] = &entity.Vendor{ID: "v1", Name: "Acme"}
	for i := 0; i < 7; i++ {
		id := fmt.Sprintf("t%d", i)
		store.Transactions[id] = &entity.Transaction{
			ID: id, Type: entity.TransactionIn,
			CreatedAt: time.Date(2026, 8, 1+i, 0, 0, 0, 0, time.UTC),
		}
	}
	uc := reports.NewDashboardUseCase(testutil.NewDashboardRepo(store), testutil.NewTransactionRepo(store))

	out, err := uc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, out.Stats.Products)
	assert.Equal(t, 1, out.Stats.LowStock)
	assert.Equal(t, 7, out.Stats.Transactions)
	assert.Equal(t, 1, out.Stats.Vendors)
	// 4*3 + 20*2
	assert.True(t, out.Stats.TotalValue.Equal(decimal.NewFromInt(52)), out.Stats.TotalValue.String())

	require.Len(t, out.RecentActivity, reports.RecentActivityLimit)
	assert.Equal(t, "t6", out.RecentActivity[0].ID)
	assert.Equal(t, "t2", out.RecentActivity[4].ID)
}
