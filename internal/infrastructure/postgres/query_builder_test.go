package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega/comercio-api/internal/domain"
	"github.com/jortega/comercio-api/internal/domain/document"
)

// Consulta por defecto: alcance de tenant, solo activos, orden updated_at
// DESC con desempate por id y lookahead de pageSize+1.
func TestBuildListQuery_ConsultaPorDefecto(t *testing.T) {
	sql, args, err := buildListQuery(document.ColProducts, "biz-1", document.QueryOptions{})
	require.NoError(t, err)

	assert.Contains(t, sql, "collection = $1")
	assert.Contains(t, sql, "business_id = $2")
	assert.Contains(t, sql, "is_active = TRUE")
	assert.Contains(t, sql, "ORDER BY updated_at DESC, id DESC")
	assert.Contains(t, sql, "LIMIT 26", "debe pedir pageSize+1 para saber si hay más")
	assert.Equal(t, []any{document.ColProducts, "biz-1"}, args)
}

// ShowInactive quita el filtro de activos.
func TestBuildListQuery_ShowInactive(t *testing.T) {
	sql, _, err := buildListQuery(document.ColProducts, "biz-1", document.QueryOptions{ShowInactive: true})
	require.NoError(t, err)
	assert.NotContains(t, sql, "is_active")
}

// Búsqueda por prefijo sobre un solo campo: rango cerrado-abierto con el
// centinela de fin.
func TestBuildListQuery_BusquedaPorPrefijo(t *testing.T) {
	sql, args, err := buildListQuery(document.ColProducts, "biz-1", document.QueryOptions{
		SearchQuery:  "caf",
		SearchFields: []string{"name"},
	})
	require.NoError(t, err)

	assert.Contains(t, sql, "body->>'name' >= $3")
	assert.Contains(t, sql, "body->>'name' < $4")
	require.Len(t, args, 4)
	assert.Equal(t, "caf", args[2])
	assert.Equal(t, "caf"+document.PrefixEnd, args[3])
}

// La búsqueda multi-campo no es expresable como rango: el caller debe usar el
// fallback en memoria.
func TestBuildListQuery_BusquedaMultiCampoRechazada(t *testing.T) {
	_, _, err := buildListQuery(document.ColProducts, "biz-1", document.QueryOptions{
		SearchQuery:  "caf",
		SearchFields: []string{"name", "sku"},
	})
	assert.Error(t, err)
}

// El cursor agrega la comparación por fila (valor, id) con cast de timestamp
// para los campos base.
func TestBuildListQuery_CursorKeyset(t *testing.T) {
	cur := document.Cursor{SortValue: "2026-08-30T12:00:00Z", ID: "id-010"}
	sql, args, err := buildListQuery(document.ColProducts, "biz-1", document.QueryOptions{
		SortField:     document.FieldCreatedAt,
		SortDirection: document.Desc,
		Cursor:        cur.Encode(),
	})
	require.NoError(t, err)

	assert.Contains(t, sql, "(created_at, id) < ($3::timestamptz, $4)")
	require.Len(t, args, 4)
	assert.Equal(t, "2026-08-30T12:00:00Z", args[2])
	assert.Equal(t, "id-010", args[3])
}

// En orden ascendente el predicado del cursor invierte el operador.
func TestBuildListQuery_CursorAscendente(t *testing.T) {
	cur := document.Cursor{SortValue: "Producto 05", ID: "id-005"}
	sql, _, err := buildListQuery(document.ColProducts, "biz-1", document.QueryOptions{
		SortField:     "name",
		SortDirection: document.Asc,
		Cursor:        cur.Encode(),
	})
	require.NoError(t, err)
	assert.Contains(t, sql, "(body->>'name', id) > ($3, $4)")
	assert.Contains(t, sql, "ORDER BY body->>'name' ASC, id ASC")
}

// Un cursor corrupto corta antes de tocar la base de datos.
func TestBuildListQuery_CursorCorrupto(t *testing.T) {
	_, _, err := buildListQuery(document.ColProducts, "biz-1", document.QueryOptions{Cursor: "???"})
	assert.ErrorIs(t, err, domain.ErrInvalidCursor)
}

// Los filtros se agregan en orden alfabético de campo (determinismo) y las
// entradas vacías se ignoran.
func TestBuildListQuery_FiltrosDeterministas(t *testing.T) {
	sql, args, err := buildListQuery(document.ColTransactions, "biz-1", document.QueryOptions{
		Filters: map[string]string{
			"transaction_type": "sale",
			"payment_method":   "cash",
			"customer_id":      "",
		},
	})
	require.NoError(t, err)
	assert.Contains(t, sql, "body->>'payment_method' = $3")
	assert.Contains(t, sql, "body->>'transaction_type' = $4")
	assert.NotContains(t, sql, "customer_id")
	assert.Equal(t, []any{document.ColTransactions, "biz-1", "cash", "sale"}, args)
}

// La consulta de candidatos para el fallback no lleva búsqueda, cursor ni
// límite: eso ocurre después en memoria.
func TestBuildScanQuery_SinBusquedaNiLimite(t *testing.T) {
	sql, args := buildScanQuery(document.ColProducts, "biz-1", document.QueryOptions{
		SearchQuery:  "caf",
		SearchFields: []string{"name", "sku"},
		Cursor:       document.Cursor{SortValue: "x", ID: "y"}.Encode(),
	})
	assert.NotContains(t, sql, "LIMIT")
	assert.NotContains(t, sql, ">=")
	assert.Contains(t, sql, "ORDER BY updated_at DESC, id DESC")
	assert.Equal(t, []any{document.ColProducts, "biz-1"}, args)
}

// Sin tenant no hay consulta.
func TestValidateScope_BusinessIDRequerido(t *testing.T) {
	assert.ErrorIs(t, validateScope("   "), domain.ErrInvalidInput)
	assert.NoError(t, validateScope("biz-1"))
}

// El campo de orden de un campo del body escapa comillas simples.
func TestJSONField_EscapaComillas(t *testing.T) {
	assert.Equal(t, "body->>'na''me'", jsonField("na'me"))
}
