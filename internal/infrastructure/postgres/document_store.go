package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jortega/comercio-api/internal/domain"
	"github.com/jortega/comercio-api/internal/domain/document"
)

// DocumentStore es la fachada CRUD genérica sobre la tabla documents.
// Todos los repositorios tipados delegan aquí; el store es stateless y no
// posee estado persistente propio (pasa directo al backend).
//
// Convención de alcance: businessID vacío significa colección raíz
// (businesses, users); cualquier colección de tenant exige businessID en los
// listados y en las operaciones con guardia de tenant.
type DocumentStore struct {
	q Querier
}

// NewDocumentStore construye la fachada. Pasar pool o tx (Querier).
func NewDocumentStore(q Querier) *DocumentStore {
	return &DocumentStore{q: q}
}

// Insert persiste un documento nuevo: genera id si no viene, estampa
// created_at/updated_at del lado del servidor y fuerza is_active = true.
// El registro queda actualizado con los valores almacenados.
func (s *DocumentStore) Insert(ctx context.Context, collection string, rec *document.Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if len(rec.Body) == 0 {
		rec.Body = json.RawMessage("{}")
	}
	query := `
		INSERT INTO documents (collection, id, business_id, body, created_at, updated_at, is_active)
		VALUES ($1, $2, $3, $4, now(), now(), TRUE)
		RETURNING created_at, updated_at`
	err := s.q.QueryRow(ctx, query, collection, rec.ID, rec.BusinessID, rec.Body).
		Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", collection, err)
	}
	rec.IsActive = true
	return nil
}

// Get obtiene un documento por id. businessID vacío omite la guardia de
// tenant (colecciones raíz). Devuelve nil, nil si no existe.
func (s *DocumentStore) Get(ctx context.Context, collection, businessID, id string) (*document.Record, error) {
	query := "SELECT " + docColumns + " FROM documents WHERE collection = $1 AND id = $2"
	args := []any{collection, id}
	if businessID != "" {
		query += " AND business_id = $3"
		args = append(args, businessID)
	}
	var rec document.Record
	err := s.q.QueryRow(ctx, query, args...).
		Scan(&rec.ID, &rec.BusinessID, &rec.Body, &rec.CreatedAt, &rec.UpdatedAt, &rec.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", collection, err)
	}
	return &rec, nil
}

// FindOne busca el primer documento activo que cumpla todos los filtros de
// igualdad. businessID vacío = colección raíz (ej. users por email).
func (s *DocumentStore) FindOne(ctx context.Context, collection, businessID string, filters map[string]string) (*document.Record, error) {
	b := &queryBuilder{}
	b.and("collection = " + b.arg(collection))
	if businessID != "" {
		b.and("business_id = " + b.arg(businessID))
	}
	b.and("is_active = TRUE")

	fields := make([]string, 0, len(filters))
	for f := range filters {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		b.and(jsonField(f) + " = " + b.arg(filters[f]))
	}

	query := "SELECT " + docColumns + " FROM documents WHERE " + strings.Join(b.where, " AND ") + " LIMIT 1"
	var rec document.Record
	err := s.q.QueryRow(ctx, query, b.args...).
		Scan(&rec.ID, &rec.BusinessID, &rec.Body, &rec.CreatedAt, &rec.UpdatedAt, &rec.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	return &rec, nil
}

// Update escribe el body nuevo y refresca updated_at. created_at es una
// columna aparte y nunca se toca.
func (s *DocumentStore) Update(ctx context.Context, collection, businessID, id string, body json.RawMessage) error {
	query := "UPDATE documents SET body = $3, updated_at = now() WHERE collection = $1 AND id = $2"
	args := []any{collection, id, body}
	if businessID != "" {
		query += " AND business_id = $4"
		args = append(args, businessID)
	}
	cmd, err := s.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", collection, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el documento inactivo y refresca updated_at. El documento
// sigue siendo consultable solo vía ShowInactive.
func (s *DocumentStore) SoftDelete(ctx context.Context, collection, businessID, id string) error {
	query := "UPDATE documents SET is_active = FALSE, updated_at = now() WHERE collection = $1 AND id = $2"
	args := []any{collection, id}
	if businessID != "" {
		query += " AND business_id = $3"
		args = append(args, businessID)
	}
	cmd, err := s.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft delete %s: %w", collection, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// HardDelete elimina el documento físicamente. Sin recuperación; se usa en
// una minoría de flujos (ej. descartar un producto recién creado por error).
func (s *DocumentStore) HardDelete(ctx context.Context, collection, businessID, id string) error {
	query := "DELETE FROM documents WHERE collection = $1 AND id = $2"
	args := []any{collection, id}
	if businessID != "" {
		query += " AND business_id = $3"
		args = append(args, businessID)
	}
	cmd, err := s.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("hard delete %s: %w", collection, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List ejecuta una consulta paginada sobre una colección de tenant.
//
// Camino normal: una sola consulta nativa con lookahead de pageSize+1; el
// registro extra se descarta y marca HasMore. Sin reintentos ni caché entre
// páginas; cada página se consulta de forma independiente.
//
// Fallback: si la búsqueda no cabe en un rango por prefijo (varios campos),
// se traen los candidatos del tenant y se filtra/ordena/pagina en memoria,
// igual que hacía el backend original. Conocidamente ineficiente para
// colecciones grandes.
func (s *DocumentStore) List(ctx context.Context, collection, businessID string, opts document.QueryOptions) (document.Page, error) {
	if err := validateScope(businessID); err != nil {
		return document.Page{}, err
	}
	opts = opts.Normalized()

	if opts.NeedsMemoryScan() {
		query, args := buildScanQuery(collection, businessID, opts)
		recs, err := s.queryRecords(ctx, collection, query, args)
		if err != nil {
			return document.Page{}, err
		}
		return document.PageRecords(recs, opts)
	}

	query, args, err := buildListQuery(collection, businessID, opts)
	if err != nil {
		return document.Page{}, err
	}
	recs, err := s.queryRecords(ctx, collection, query, args)
	if err != nil {
		return document.Page{}, err
	}
	return document.NormalizePage(recs, opts), nil
}

func (s *DocumentStore) queryRecords(ctx context.Context, collection, query string, args []any) ([]document.Record, error) {
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()

	var recs []document.Record
	for rows.Next() {
		var rec document.Record
		if err := rows.Scan(&rec.ID, &rec.BusinessID, &rec.Body, &rec.CreatedAt, &rec.UpdatedAt, &rec.IsActive); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
