package repository

import (
	"context"

	"github.com/jortega/comercio-api/internal/domain/entity"
)

// BusinessRepository define el puerto de persistencia para Business (DIP).
// Un negocio nunca se elimina físicamente: Deactivate lo marca inactivo.
type BusinessRepository interface {
	Create(ctx context.Context, b *entity.Business) error
	GetByID(ctx context.Context, id string) (*entity.Business, error)
	Update(ctx context.Context, b *entity.Business) error
	Deactivate(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Business, error)
}
