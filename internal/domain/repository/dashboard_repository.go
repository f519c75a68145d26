package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardStats are the aggregate counters shown on the dashboard.
type DashboardStats struct {
	Products     int
	LowStock     int // products with quantity <= reorder_level
	Transactions int
	Vendors      int
	TotalValue   decimal.Decimal // sum of quantity * cost_price
}

// DashboardRepository serves read-only aggregate queries. It never writes.
type DashboardRepository interface {
	GetStats(ctx context.Context) (DashboardStats, error)
}
