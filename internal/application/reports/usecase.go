// Package reports composes the movement log, alert sink and transaction store
// into read-only report views. Nothing here writes.
package reports

import (
	"context"

	"github.com/jackel7/stock-mate/internal/application/dto"
	"github.com/jackel7/stock-mate/internal/domain/entity"
	"github.com/jackel7/stock-mate/internal/domain/repository"
)

// ReportLimit caps every report listing to the most recent rows.
const ReportLimit = 100

// ReportsUseCase serves the stock and agent reports plus per-product movement
// history.
type ReportsUseCase struct {
	movementRepo repository.StockMovementRepository
	alertRepo    repository.AlertRepository
}

// NewReportsUseCase builds the use case.
func NewReportsUseCase(movementRepo repository.StockMovementRepository, alertRepo repository.AlertRepository) *ReportsUseCase {
	return &ReportsUseCase{movementRepo: movementRepo, alertRepo: alertRepo}
}

// RecentMovements returns the newest movements with product name/sku, capped
// at ReportLimit.
func (uc *ReportsUseCase) RecentMovements(ctx context.Context) ([]dto.StockMovementResponse, error) {
	movements, err := uc.movementRepo.ListRecent(ctx, ReportLimit)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// RecentAlerts returns the newest alert records, capped at ReportLimit.
func (uc *ReportsUseCase) RecentAlerts(ctx context.Context) ([]dto.AlertResponse, error) {
	alerts, err := uc.alertRepo.ListRecent(ctx, ReportLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.AlertResponse{
			ID:         a.ID,
			Type:       a.Type,
			Message:    a.Message,
			IsResolved: a.IsResolved,
			CreatedAt:  a.CreatedAt,
		})
	}
	return out, nil
}

// ProductHistory returns one product's movements, newest first.
func (uc *ReportsUseCase) ProductHistory(ctx context.Context, productID string) ([]dto.StockMovementResponse, error) {
	movements, err := uc.movementRepo.ListByProduct(ctx, productID, ReportLimit)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

func toMovementResponses(movements []*entity.StockMovement) []dto.StockMovementResponse {
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.StockMovementResponse{
			ID:                m.ID,
			ProductID:         m.ProductID,
			ProductName:       m.ProductName,
			ProductSKU:        m.ProductSKU,
			TransactionID:     m.TransactionID,
			ChangeQuantity:    m.ChangeQuantity,
			CurrentStockAfter: m.CurrentStockAfter,
			Note:              m.Note,
			CreatedAt:         m.CreatedAt,
		})
	}
	return out
}
