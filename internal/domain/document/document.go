// Package document define el modelo genérico de documentos del negocio:
// el registro base {id, business_id, created_at, updated_at, is_active},
// las opciones de consulta (filtros, búsqueda, orden, paginación por cursor)
// y el resultado paginado. Es la capa que comparten todos los listados
// de administración; no conoce el backend de persistencia.
package document

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Colecciones del sistema. Cada documento vive en una colección particionada
// por tenant (business_id); businesses y users son colecciones raíz.
const (
	ColBusinesses   = "businesses"
	ColUsers        = "users"
	ColEmployees    = "employees"
	ColCategories   = "categories"
	ColProducts     = "products"
	ColSuppliers    = "suppliers"
	ColCustomers    = "customers"
	ColTransactions = "transactions"
)

// Campos base que existen como columnas propias y no dentro del body.
const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

// Record es un documento genérico: los campos base van aparte del body,
// que contiene solo los campos de dominio serializados como JSON.
type Record struct {
	ID         string
	BusinessID string
	Body       json.RawMessage
	CreatedAt  time.Time
	UpdatedAt  time.Time
	IsActive   bool
}

// SortValue devuelve la representación textual del valor de ordenamiento
// del registro para el campo dado. Se usa para construir cursores.
// Los timestamps base usan RFC3339Nano, que preserva el orden lexicográfico.
func (r Record) SortValue(field string) string {
	switch field {
	case FieldID:
		return r.ID
	case FieldCreatedAt:
		return r.CreatedAt.UTC().Format(time.RFC3339Nano)
	case FieldUpdatedAt:
		return r.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	v, _ := r.BodyField(field)
	return v
}

// BodyField extrae un campo del body como texto (igual que body->>campo en SQL).
// Números se devuelven con su representación JSON original.
func (r Record) BodyField(field string) (string, bool) {
	if len(r.Body) == 0 {
		return "", false
	}
	dec := json.NewDecoder(strings.NewReader(string(r.Body)))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return "", false
	}
	v, ok := m[field]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}

// Page es el resultado de una consulta paginada.
// len(Data) nunca excede el PageSize solicitado; Cursor queda vacío cuando
// la página no tiene registros; HasMore indica que existía al menos un
// registro más allá de la página devuelta.
type Page struct {
	Data    []Record
	Cursor  string
	HasMore bool
}

// NormalizePage empaqueta el resultado de una consulta con lookahead:
// recibe hasta pageSize+1 registros, descarta el extra y arma el cursor
// a partir del último registro de la página recortada.
func NormalizePage(recs []Record, opts QueryOptions) Page {
	opts = opts.Normalized()
	hasMore := len(recs) > opts.PageSize
	if hasMore {
		recs = recs[:opts.PageSize]
	}
	page := Page{Data: recs, HasMore: hasMore}
	if len(recs) > 0 {
		last := recs[len(recs)-1]
		page.Cursor = Cursor{
			SortValue: last.SortValue(opts.SortField),
			ID:        last.ID,
		}.Encode()
	}
	return page
}
