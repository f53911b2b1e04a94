package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jortega/comercio-api/internal/domain/document"
	"github.com/jortega/comercio-api/internal/domain/entity"
	"github.com/jortega/comercio-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación del puerto BusinessRepository. Los negocios son
// colección raíz: su business_id es su propio id, así los índices de tenant
// los cubren igual que al resto de documentos.
type BusinessRepo struct {
	store *DocumentStore
	q     Querier
}

// NewBusinessRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{store: NewDocumentStore(q), q: q}
}

func (r *BusinessRepo) Create(ctx context.Context, b *entity.Business) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	body, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal business: %w", err)
	}
	rec := document.Record{ID: b.ID, BusinessID: b.ID, Body: body}
	if err := r.store.Insert(ctx, document.ColBusinesses, &rec); err != nil {
		return err
	}
	b.CreatedAt, b.UpdatedAt, b.IsActive = rec.CreatedAt, rec.UpdatedAt, rec.IsActive
	return nil
}

func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	rec, err := r.store.Get(ctx, document.ColBusinesses, "", id)
	if err != nil || rec == nil {
		return nil, err
	}
	return decodeBusiness(rec)
}

func (r *BusinessRepo) Update(ctx context.Context, b *entity.Business) error {
	body, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal business: %w", err)
	}
	return r.store.Update(ctx, document.ColBusinesses, "", b.ID, body)
}

// Deactivate marca el negocio inactivo. No hay borrado físico de tenants.
func (r *BusinessRepo) Deactivate(ctx context.Context, id string) error {
	return r.store.SoftDelete(ctx, document.ColBusinesses, "", id)
}

// ListByOwner devuelve los negocios activos de un propietario, del más
// antiguo al más reciente. Un propietario tiene pocos negocios; no se pagina.
func (r *BusinessRepo) ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Business, error) {
	query := "SELECT " + docColumns + ` FROM documents
		WHERE collection = $1 AND body->>'owner_uid' = $2 AND is_active = TRUE
		ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(ctx, query, document.ColBusinesses, ownerUID)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()

	var out []*entity.Business
	for rows.Next() {
		var rec document.Record
		if err := rows.Scan(&rec.ID, &rec.BusinessID, &rec.Body, &rec.CreatedAt, &rec.UpdatedAt, &rec.IsActive); err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		b, err := decodeBusiness(&rec)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func decodeBusiness(rec *document.Record) (*entity.Business, error) {
	var b entity.Business
	if err := json.Unmarshal(rec.Body, &b); err != nil {
		return nil, fmt.Errorf("decode business %s: %w", rec.ID, err)
	}
	b.ID = rec.ID
	b.CreatedAt, b.UpdatedAt, b.IsActive = rec.CreatedAt, rec.UpdatedAt, rec.IsActive
	return &b, nil
}
