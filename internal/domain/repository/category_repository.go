package repository

import (
	"context"

	"github.com/jackel7/stock-mate/internal/domain/entity"
)

// CategoryRepository is the persistence port for Category.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}
