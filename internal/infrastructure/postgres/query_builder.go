package postgres

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jortega/comercio-api/internal/domain"
	"github.com/jortega/comercio-api/internal/domain/document"
)

const docColumns = "id, business_id, body, created_at, updated_at, is_active"

// sortKey describe cómo ordenar y comparar por un campo: los campos base son
// columnas reales (los timestamps necesitan cast en el cursor); cualquier otro
// campo se resuelve como texto dentro del body. Un campo de orden desconocido
// pasa sin interpretar: no existe capa de validación de esquema.
type sortKey struct {
	expr string
	cast string // cast aplicado al placeholder del cursor ("::timestamptz" o vacío)
}

func sortKeyFor(field string) sortKey {
	switch field {
	case document.FieldCreatedAt:
		return sortKey{expr: "created_at", cast: "::timestamptz"}
	case document.FieldUpdatedAt:
		return sortKey{expr: "updated_at", cast: "::timestamptz"}
	case document.FieldID:
		return sortKey{expr: "id"}
	default:
		return sortKey{expr: jsonField(field)}
	}
}

// queryBuilder acumula predicados y argumentos con placeholders numerados.
type queryBuilder struct {
	where []string
	args  []any
}

func (b *queryBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *queryBuilder) and(cond string) {
	b.where = append(b.where, cond)
}

// buildListQuery traduce QueryOptions a una sola consulta SQL sobre la tabla
// documents, en este orden: alcance de tenant, filtros de igualdad, filtro de
// activos, búsqueda por prefijo, predicado de cursor (keyset), orden y
// lookahead de pageSize+1.
//
// La búsqueda por prefijo replica la semántica del backend de documentos
// original: `campo >= q AND campo < q+centinela` sobre exactamente un campo.
// No es substring ni multi-palabra; ese caso lo cubre el fallback en memoria
// (ver DocumentStore.List).
func buildListQuery(collection, businessID string, opts document.QueryOptions) (string, []any, error) {
	opts = opts.Normalized()

	b := &queryBuilder{}
	b.and("collection = " + b.arg(collection))
	b.and("business_id = " + b.arg(businessID))

	appendFilters(b, opts.Filters)

	if !opts.ShowInactive {
		b.and("is_active = TRUE")
	}

	if opts.HasSearch() {
		if len(opts.SearchFields) != 1 {
			return "", nil, fmt.Errorf("búsqueda multi-campo requiere el fallback en memoria")
		}
		expr := jsonField(opts.SearchFields[0])
		b.and(expr + " >= " + b.arg(opts.SearchQuery))
		b.and(expr + " < " + b.arg(opts.SearchQuery+document.PrefixEnd))
	}

	key := sortKeyFor(opts.SortField)

	if opts.Cursor != "" {
		cur, err := document.DecodeCursor(opts.Cursor)
		if err != nil {
			return "", nil, err
		}
		op := ">"
		if opts.SortDirection == document.Desc {
			op = "<"
		}
		// Comparación por fila (valor de orden, id): reanuda exactamente
		// después del último registro de la página anterior.
		b.and(fmt.Sprintf("(%s, id) %s (%s%s, %s)",
			key.expr, op, b.arg(cur.SortValue), key.cast, b.arg(cur.ID)))
	}

	dir := "ASC"
	if opts.SortDirection == document.Desc {
		dir = "DESC"
	}

	query := fmt.Sprintf(
		"SELECT %s FROM documents WHERE %s ORDER BY %s %s, id %s LIMIT %d",
		docColumns,
		strings.Join(b.where, " AND "),
		key.expr, dir, dir,
		opts.PageSize+1,
	)
	return query, b.args, nil
}

// buildScanQuery arma la consulta de candidatos para el fallback en memoria:
// mismo alcance, filtros y orden, pero sin búsqueda, sin cursor y sin límite.
// El filtrado por substring, el cursor y el recorte de página ocurren después
// en document.PageRecords.
func buildScanQuery(collection, businessID string, opts document.QueryOptions) (string, []any) {
	opts = opts.Normalized()

	b := &queryBuilder{}
	b.and("collection = " + b.arg(collection))
	b.and("business_id = " + b.arg(businessID))
	appendFilters(b, opts.Filters)
	if !opts.ShowInactive {
		b.and("is_active = TRUE")
	}

	key := sortKeyFor(opts.SortField)
	dir := "ASC"
	if opts.SortDirection == document.Desc {
		dir = "DESC"
	}

	query := fmt.Sprintf(
		"SELECT %s FROM documents WHERE %s ORDER BY %s %s, id %s",
		docColumns,
		strings.Join(b.where, " AND "),
		key.expr, dir, dir,
	)
	return query, b.args
}

// appendFilters agrega un predicado de igualdad por cada entrada no vacía,
// en orden determinista (los mapas de Go no lo garantizan).
func appendFilters(b *queryBuilder, filters map[string]string) {
	if len(filters) == 0 {
		return
	}
	fields := make([]string, 0, len(filters))
	for f := range filters {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		if filters[f] == "" {
			continue
		}
		b.and(jsonField(f) + " = " + b.arg(filters[f]))
	}
}

// validateScope es la validación previa a construir cualquier constraint:
// sin tenant no hay consulta.
func validateScope(businessID string) error {
	if strings.TrimSpace(businessID) == "" {
		return fmt.Errorf("business_id requerido: %w", domain.ErrInvalidInput)
	}
	return nil
}
