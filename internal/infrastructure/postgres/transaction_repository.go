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

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository.
// Las transacciones son inmutables: no expone Update ni SoftDelete.
type TransactionRepo struct {
	store *DocumentStore
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{store: NewDocumentStore(q)}
}

func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	if t.BusinessID == "" {
		return domain.ErrInvalidInput
	}
	body, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal transaction: %w", err)
	}
	rec := document.Record{ID: t.ID, BusinessID: t.BusinessID, Body: body}
	if err := r.store.Insert(ctx, document.ColTransactions, &rec); err != nil {
		return err
	}
	t.ID, t.CreatedAt, t.UpdatedAt, t.IsActive = rec.ID, rec.CreatedAt, rec.UpdatedAt, rec.IsActive
	return nil
}

func (r *TransactionRepo) GetByID(ctx context.Context, businessID, id string) (*entity.Transaction, error) {
	rec, err := r.store.Get(ctx, document.ColTransactions, businessID, id)
	if err != nil || rec == nil {
		return nil, err
	}
	return decodeTransaction(rec)
}

func (r *TransactionRepo) List(ctx context.Context, businessID string, opts document.QueryOptions) (*repository.Page[entity.Transaction], error) {
	page, err := r.store.List(ctx, document.ColTransactions, businessID, opts)
	if err != nil {
		return nil, err
	}
	items := make([]*entity.Transaction, 0, len(page.Data))
	for i := range page.Data {
		t, err := decodeTransaction(&page.Data[i])
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return &repository.Page[entity.Transaction]{Items: items, Cursor: page.Cursor, HasMore: page.HasMore}, nil
}

func decodeTransaction(rec *document.Record) (*entity.Transaction, error) {
	var t entity.Transaction
	if err := json.Unmarshal(rec.Body, &t); err != nil {
		return nil, fmt.Errorf("decode transaction %s: %w", rec.ID, err)
	}
	t.ID, t.BusinessID = rec.ID, rec.BusinessID
	t.CreatedAt, t.UpdatedAt, t.IsActive = rec.CreatedAt, rec.UpdatedAt, rec.IsActive
	return &t, nil
}
