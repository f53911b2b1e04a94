package repository

import (
	"context"

	"github.com/jortega/comercio-api/internal/domain/document"
	"github.com/jortega/comercio-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, businessID, id string) (*entity.Employee, error)
	GetByUserUID(ctx context.Context, businessID, userUID string) (*entity.Employee, error)
	Update(ctx context.Context, e *entity.Employee) error
	SoftDelete(ctx context.Context, businessID, id string) error
	List(ctx context.Context, businessID string, opts document.QueryOptions) (*Page[entity.Employee], error)
}
