package repository

import (
	"context"

	"github.com/jortega/comercio-api/internal/domain/document"
	"github.com/jortega/comercio-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	GetByID(ctx context.Context, businessID, id string) (*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) error
	SoftDelete(ctx context.Context, businessID, id string) error
	List(ctx context.Context, businessID string, opts document.QueryOptions) (*Page[entity.Customer], error)
}
