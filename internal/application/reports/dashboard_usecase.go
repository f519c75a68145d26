package reports

import (
	"context"

	"github.com/jackel7/stock-mate/internal/application/dto"
	"github.com/jackel7/stock-mate/internal/domain/repository"
)

// RecentActivityLimit is how many transactions the dashboard shows.
const RecentActivityLimit = 5

// DashboardUseCase aggregates the landing-view counters and recent activity.
type DashboardUseCase struct {
	dashboardRepo   repository.DashboardRepository
	transactionRepo repository.TransactionRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository, transactionRepo repository.TransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo, transactionRepo: transactionRepo}
}

// Get returns the dashboard counters and the most recent transactions.
func (uc *DashboardUseCase) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	stats, err := uc.dashboardRepo.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.transactionRepo.ListRecent(ctx, RecentActivityLimit)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{
		Stats: dto.DashboardStats{
			Products:     stats.Products,
			LowStock:     stats.LowStock,
			Transactions: stats.Transactions,
			Vendors:      stats.Vendors,
			TotalValue:   stats.TotalValue,
		},
		RecentActivity: make([]dto.TransactionResponse, 0, len(recent)),
	}
	for _, t := range recent {
		out.RecentActivity = append(out.RecentActivity, dto.TransactionResponse{
			ID:              t.ID,
			Type:            string(t.Type),
			TotalAmount:     t.TotalAmount,
			TransactionDate: t.TransactionDate,
			CreatedAt:       t.CreatedAt,
			ItemCount:       t.ItemCount,
		})
	}
	return out, nil
}
