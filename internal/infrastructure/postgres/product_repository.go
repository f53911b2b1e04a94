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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository.
type ProductRepo struct {
	store *DocumentStore
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{store: NewDocumentStore(q)}
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if p.BusinessID == "" {
		return domain.ErrInvalidInput
	}
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	rec := document.Record{ID: p.ID, BusinessID: p.BusinessID, Body: body}
	if err := r.store.Insert(ctx, document.ColProducts, &rec); err != nil {
		return err
	}
	p.ID, p.CreatedAt, p.UpdatedAt, p.IsActive = rec.ID, rec.CreatedAt, rec.UpdatedAt, rec.IsActive
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, businessID, id string) (*entity.Product, error) {
	rec, err := r.store.Get(ctx, document.ColProducts, businessID, id)
	if err != nil || rec == nil {
		return nil, err
	}
	return decodeProduct(rec)
}

// GetBySKU busca el producto activo con ese SKU dentro del negocio. El SKU
// es único por negocio a nivel de caso de uso, no de esquema.
func (r *ProductRepo) GetBySKU(ctx context.Context, businessID, sku string) (*entity.Product, error) {
	rec, err := r.store.FindOne(ctx, document.ColProducts, businessID, map[string]string{"sku": sku})
	if err != nil || rec == nil {
		return nil, err
	}
	return decodeProduct(rec)
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	return r.store.Update(ctx, document.ColProducts, p.BusinessID, p.ID, body)
}

func (r *ProductRepo) SoftDelete(ctx context.Context, businessID, id string) error {
	return r.store.SoftDelete(ctx, document.ColProducts, businessID, id)
}

// HardDelete elimina el producto físicamente. La autorización (solo el
// propietario) la exige la capa HTTP.
func (r *ProductRepo) HardDelete(ctx context.Context, businessID, id string) error {
	return r.store.HardDelete(ctx, document.ColProducts, businessID, id)
}

func (r *ProductRepo) List(ctx context.Context, businessID string, opts document.QueryOptions) (*repository.Page[entity.Product], error) {
	page, err := r.store.List(ctx, document.ColProducts, businessID, opts)
	if err != nil {
		return nil, err
	}
	items := make([]*entity.Product, 0, len(page.Data))
	for i := range page.Data {
		p, err := decodeProduct(&page.Data[i])
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return &repository.Page[entity.Product]{Items: items, Cursor: page.Cursor, HasMore: page.HasMore}, nil
}

func decodeProduct(rec *document.Record) (*entity.Product, error) {
	var p entity.Product
	if err := json.Unmarshal(rec.Body, &p); err != nil {
		return nil, fmt.Errorf("decode product %s: %w", rec.ID, err)
	}
	p.ID, p.BusinessID = rec.ID, rec.BusinessID
	p.CreatedAt, p.UpdatedAt, p.IsActive = rec.CreatedAt, rec.UpdatedAt, rec.IsActive
	return &p, nil
}
