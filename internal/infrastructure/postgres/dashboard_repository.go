package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jackel7/stock-mate/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo serves read-only aggregate queries for the dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository builds the dashboard adapter.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// GetStats returns every dashboard counter in one round trip. Low stock
// compares each product against its own reorder_level. COALESCE keeps the
// total value at zero when there are no products.
func (r *DashboardRepo) GetStats(ctx context.Context) (repository.DashboardStats, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM products)                                      AS products,
	    (SELECT COUNT(*) FROM products WHERE quantity <= reorder_level)      AS low_stock,
	    (SELECT COUNT(*) FROM transactions)                                  AS transactions,
	    (SELECT COUNT(*) FROM vendors)                                       AS vendors,
	    (SELECT COALESCE(SUM(quantity * cost_price), 0) FROM products)       AS total_value`

	var stats repository.DashboardStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.Products, &stats.LowStock, &stats.Transactions, &stats.Vendors, &stats.TotalValue,
	)
	if err != nil {
		return repository.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	return stats, nil
}
