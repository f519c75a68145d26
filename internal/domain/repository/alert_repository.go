package repository

import (
	"context"

	"github.com/jackel7/stock-mate/internal/domain/entity"
)

// AlertRepository is the port for the alert sink. The ledger only appends;
// resolution happens elsewhere.
type AlertRepository interface {
	Create(ctx context.Context, alert *entity.Alert) error
	ListRecent(ctx context.Context, limit int) ([]*entity.Alert, error)
}
