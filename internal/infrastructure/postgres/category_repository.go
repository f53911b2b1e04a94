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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository.
type CategoryRepo struct {
	store *DocumentStore
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{store: NewDocumentStore(q)}
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	if c.BusinessID == "" {
		return domain.ErrInvalidInput
	}
	body, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal category: %w", err)
	}
	rec := document.Record{ID: c.ID, BusinessID: c.BusinessID, Body: body}
	if err := r.store.Insert(ctx, document.ColCategories, &rec); err != nil {
		return err
	}
	c.ID, c.CreatedAt, c.UpdatedAt, c.IsActive = rec.ID, rec.CreatedAt, rec.UpdatedAt, rec.IsActive
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, businessID, id string) (*entity.Category, error) {
	rec, err := r.store.Get(ctx, document.ColCategories, businessID, id)
	if err != nil || rec == nil {
		return nil, err
	}
	return decodeCategory(rec)
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	body, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal category: %w", err)
	}
	return r.store.Update(ctx, document.ColCategories, c.BusinessID, c.ID, body)
}

func (r *CategoryRepo) SoftDelete(ctx context.Context, businessID, id string) error {
	return r.store.SoftDelete(ctx, document.ColCategories, businessID, id)
}

func (r *CategoryRepo) List(ctx context.Context, businessID string, opts document.QueryOptions) (*repository.Page[entity.Category], error) {
	page, err := r.store.List(ctx, document.ColCategories, businessID, opts)
	if err != nil {
		return nil, err
	}
	items := make([]*entity.Category, 0, len(page.Data))
	for i := range page.Data {
		c, err := decodeCategory(&page.Data[i])
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return &repository.Page[entity.Category]{Items: items, Cursor: page.Cursor, HasMore: page.HasMore}, nil
}

func decodeCategory(rec *document.Record) (*entity.Category, error) {
	var c entity.Category
	if err := json.Unmarshal(rec.Body, &c); err != nil {
		return nil, fmt.Errorf("decode category %s: %w", rec.ID, err)
	}
	c.ID, c.BusinessID = rec.ID, rec.BusinessID
	c.CreatedAt, c.UpdatedAt, c.IsActive = rec.CreatedAt, rec.UpdatedAt, rec.IsActive
	return &c, nil
}
