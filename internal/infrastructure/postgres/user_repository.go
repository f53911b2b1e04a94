package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jortega/comercio-api/internal/domain/document"
	"github.com/jortega/comercio-api/internal/domain/entity"
	"github.com/jortega/comercio-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository. Los usuarios son
// colección raíz: no pertenecen a un tenant (un usuario puede tener acceso
// a varios negocios).
type UserRepo struct {
	store *DocumentStore
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{store: NewDocumentStore(q)}
}

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	body, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	rec := document.Record{ID: u.ID, Body: body}
	if err := r.store.Insert(ctx, document.ColUsers, &rec); err != nil {
		return err
	}
	u.ID, u.CreatedAt, u.UpdatedAt, u.IsActive = rec.ID, rec.CreatedAt, rec.UpdatedAt, rec.IsActive
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	rec, err := r.store.Get(ctx, document.ColUsers, "", id)
	if err != nil || rec == nil {
		return nil, err
	}
	return decodeUser(rec)
}

// FindByEmail busca por email normalizado (minúsculas). Devuelve nil, nil
// si no existe cuenta activa con ese email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	rec, err := r.store.FindOne(ctx, document.ColUsers, "", map[string]string{"email": email})
	if err != nil || rec == nil {
		return nil, err
	}
	return decodeUser(rec)
}

func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	body, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	return r.store.Update(ctx, document.ColUsers, "", u.ID, body)
}

func decodeUser(rec *document.Record) (*entity.User, error) {
	var u entity.User
	if err := json.Unmarshal(rec.Body, &u); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", rec.ID, err)
	}
	u.ID = rec.ID
	u.CreatedAt, u.UpdatedAt, u.IsActive = rec.CreatedAt, rec.UpdatedAt, rec.IsActive
	return &u, nil
}
