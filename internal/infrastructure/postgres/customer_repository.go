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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository.
type CustomerRepo struct {
	store *DocumentStore
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{store: NewDocumentStore(q)}
}

func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	if c.BusinessID == "" {
		return domain.ErrInvalidInput
	}
	body, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal customer: %w", err)
	}
	rec := document.Record{ID: c.ID, BusinessID: c.BusinessID, Body: body}
	if err := r.store.Insert(ctx, document.ColCustomers, &rec); err != nil {
		return err
	}
	c.ID, c.CreatedAt, c.UpdatedAt, c.IsActive = rec.ID, rec.CreatedAt, rec.UpdatedAt, rec.IsActive
	return nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, businessID, id string) (*entity.Customer, error) {
	rec, err := r.store.Get(ctx, document.ColCustomers, businessID, id)
	if err != nil || rec == nil {
		return nil, err
	}
	return decodeCustomer(rec)
}

func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	body, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal customer: %w", err)
	}
	return r.store.Update(ctx, document.ColCustomers, c.BusinessID, c.ID, body)
}

func (r *CustomerRepo) SoftDelete(ctx context.Context, businessID, id string) error {
	return r.store.SoftDelete(ctx, document.ColCustomers, businessID, id)
}

func (r *CustomerRepo) List(ctx context.Context, businessID string, opts document.QueryOptions) (*repository.Page[entity.Customer], error) {
	page, err := r.store.List(ctx, document.ColCustomers, businessID, opts)
	if err != nil {
		return nil, err
	}
	items := make([]*entity.Customer, 0, len(page.Data))
	for i := range page.Data {
		c, err := decodeCustomer(&page.Data[i])
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return &repository.Page[entity.Customer]{Items: items, Cursor: page.Cursor, HasMore: page.HasMore}, nil
}

func decodeCustomer(rec *document.Record) (*entity.Customer, error) {
	var c entity.Customer
	if err := json.Unmarshal(rec.Body, &c); err != nil {
		return nil, fmt.Errorf("decode customer %s: %w", rec.ID, err)
	}
	c.ID, c.BusinessID = rec.ID, rec.BusinessID
	c.CreatedAt, c.UpdatedAt, c.IsActive = rec.CreatedAt, rec.UpdatedAt, rec.IsActive
	return &c, nil
}
