package repository

import (
	"context"

	"github.com/jortega/comercio-api/internal/domain/document"
	"github.com/jortega/comercio-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// El ajuste de stock por ventas ocurre dentro de la transacción de venta
// vía Update (leer-modificar-escribir con los repos atados a la tx).
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, businessID, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, businessID, sku string) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	SoftDelete(ctx context.Context, businessID, id string) error
	HardDelete(ctx context.Context, businessID, id string) error
	List(ctx context.Context, businessID string, opts document.QueryOptions) (*Page[entity.Product], error)
}
