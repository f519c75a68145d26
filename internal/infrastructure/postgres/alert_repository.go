package postgres

import (
	"context"
	"fmt"

	"github.com/jackel7/stock-mate/internal/domain/entity"
	"github.com/jackel7/stock-mate/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implements the alert sink over PostgreSQL (usable with pool or tx).
type AlertRepo struct {
	q Querier
}

// NewAlertRepository builds the alert adapter. Pass a pool or tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create appends an alert. New alerts are always unresolved.
func (r *AlertRepo) Create(ctx context.Context, alert *entity.Alert) error {
	query := `
		INSERT INTO agent_alerts (id, type, message, is_resolved, created_at)
		VALUES ($1, $2, $3, false, $4)`
	_, err := r.q.Exec(ctx, query, alert.ID, alert.Type, alert.Message, alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// ListRecent returns the newest alerts.
func (r *AlertRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Alert, error) {
	query := `
		SELECT id, type, message, is_resolved, created_at
		FROM agent_alerts
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.Type, &a.Message, &a.IsResolved, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
