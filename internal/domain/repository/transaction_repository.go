package repository

import (
	"context"

	"github.com/jortega/comercio-api/internal/domain/document"
	"github.com/jortega/comercio-api/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para Transaction (DIP).
// Las transacciones son inmutables una vez registradas: no hay Update ni
// SoftDelete; una anulación se registra como transacción nueva de tipo void.
type TransactionRepository interface {
	Create(ctx context.Context, t *entity.Transaction) error
	GetByID(ctx context.Context, businessID, id string) (*entity.Transaction, error)
	List(ctx context.Context, businessID string, opts document.QueryOptions) (*Page[entity.Transaction], error)
}
