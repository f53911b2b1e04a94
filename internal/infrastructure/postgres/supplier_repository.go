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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository.
type SupplierRepo struct {
	store *DocumentStore
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{store: NewDocumentStore(q)}
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	if s.BusinessID == "" {
		return domain.ErrInvalidInput
	}
	body, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal supplier: %w", err)
	}
	rec := document.Record{ID: s.ID, BusinessID: s.BusinessID, Body: body}
	if err := r.store.Insert(ctx, document.ColSuppliers, &rec); err != nil {
		return err
	}
	s.ID, s.CreatedAt, s.UpdatedAt, s.IsActive = rec.ID, rec.CreatedAt, rec.UpdatedAt, rec.IsActive
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, businessID, id string) (*entity.Supplier, error) {
	rec, err := r.store.Get(ctx, document.ColSuppliers, businessID, id)
	if err != nil || rec == nil {
		return nil, err
	}
	return decodeSupplier(rec)
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	body, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal supplier: %w", err)
	}
	return r.store.Update(ctx, document.ColSuppliers, s.BusinessID, s.ID, body)
}

func (r *SupplierRepo) SoftDelete(ctx context.Context, businessID, id string) error {
	return r.store.SoftDelete(ctx, document.ColSuppliers, businessID, id)
}

func (r *SupplierRepo) List(ctx context.Context, businessID string, opts document.QueryOptions) (*repository.Page[entity.Supplier], error) {
	page, err := r.store.List(ctx, document.ColSuppliers, businessID, opts)
	if err != nil {
		return nil, err
	}
	items := make([]*entity.Supplier, 0, len(page.Data))
	for i := range page.Data {
		s, err := decodeSupplier(&page.Data[i])
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return &repository.Page[entity.Supplier]{Items: items, Cursor: page.Cursor, HasMore: page.HasMore}, nil
}

func decodeSupplier(rec *document.Record) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := json.Unmarshal(rec.Body, &s); err != nil {
		return nil, fmt.Errorf("decode supplier %s: %w", rec.ID, err)
	}
	s.ID, s.BusinessID = rec.ID, rec.BusinessID
	s.CreatedAt, s.UpdatedAt, s.IsActive = rec.CreatedAt, rec.UpdatedAt, rec.IsActive
	return &s, nil
}
