package repository

import (
	"context"

	"github.com/jortega/comercio-api/internal/domain/document"
	"github.com/jortega/comercio-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, s *entity.Supplier) error
	GetByID(ctx context.Context, businessID, id string) (*entity.Supplier, error)
	Update(ctx context.Context, s *entity.Supplier) error
	SoftDelete(ctx context.Context, businessID, id string) error
	List(ctx context.Context, businessID string, opts document.QueryOptions) (*Page[entity.Supplier], error)
}
