package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jortega/comercio-api/internal/domain"
	"github.com/jortega/comercio-api/internal/domain/document"
	"github.com/jortega/comercio-api/internal/domain/entity"
	"github.com/jortega/comercio-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository: fachada tipada
// sobre la colección employees del DocumentStore.
type EmployeeRepo struct {
	store *DocumentStore
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{store: NewDocumentStore(q)}
}

func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	if e.BusinessID == "" {
		return domain.ErrInvalidInput
	}
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal employee: %w", err)
	}
	rec := document.Record{ID: e.ID, BusinessID: e.BusinessID, Body: body}
	if err := r.store.Insert(ctx, document.ColEmployees, &rec); err != nil {
		return err
	}
	e.ID, e.CreatedAt, e.UpdatedAt, e.IsActive = rec.ID, rec.CreatedAt, rec.UpdatedAt, rec.IsActive
	return nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, businessID, id string) (*entity.Employee, error) {
	rec, err := r.store.Get(ctx, document.ColEmployees, businessID, id)
	if err != nil || rec == nil {
		return nil, err
	}
	return decodeEmployee(rec)
}

// GetByUserUID busca el empleado activo asociado a una cuenta de usuario.
func (r *EmployeeRepo) GetByUserUID(ctx context.Context, businessID, userUID string) (*entity.Employee, error) {
	rec, err := r.store.FindOne(ctx, document.ColEmployees, businessID, map[string]string{"user_uid": userUID})
	if err != nil || rec == nil {
		return nil, err
	}
	return decodeEmployee(rec)
}

func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal employee: %w", err)
	}
	return r.store.Update(ctx, document.ColEmployees, e.BusinessID, e.ID, body)
}

func (r *EmployeeRepo) SoftDelete(ctx context.Context, businessID, id string) error {
	return r.store.SoftDelete(ctx, document.ColEmployees, businessID, id)
}

func (r *EmployeeRepo) List(ctx context.Context, businessID string, opts document.QueryOptions) (*repository.Page[entity.Employee], error) {
	page, err := r.store.List(ctx, document.ColEmployees, businessID, opts)
	if err != nil {
		return nil, err
	}
	items := make([]*entity.Employee, 0, len(page.Data))
	for i := range page.Data {
		e, err := decodeEmployee(&page.Data[i])
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return &repository.Page[entity.Employee]{Items: items, Cursor: page.Cursor, HasMore: page.HasMore}, nil
}

func decodeEmployee(rec *document.Record) (*entity.Employee, error) {
	var e entity.Employee
	if err := json.Unmarshal(rec.Body, &e); err != nil {
		return nil, fmt.Errorf("decode employee %s: %w", rec.ID, err)
	}
	e.ID, e.BusinessID = rec.ID, rec.BusinessID
	e.CreatedAt, e.UpdatedAt, e.IsActive = rec.CreatedAt, rec.UpdatedAt, rec.IsActive
	return &e, nil
}
