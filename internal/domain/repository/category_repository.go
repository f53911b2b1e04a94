package repository

import (
	"context"

	"github.com/jortega/comercio-api/internal/domain/document"
	"github.com/jortega/comercio-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, businessID, id string) (*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	SoftDelete(ctx context.Context, businessID, id string) error
	List(ctx context.Context, businessID string, opts document.QueryOptions) (*Page[entity.Category], error)
}
