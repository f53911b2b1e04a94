package document_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega/comercio-api/internal/domain"
	"github.com/jortega/comercio-api/internal/domain/document"
)

// makeRecords construye n registros activos con created_at crecientes
// (el registro 1 es el más antiguo) y un body con name y sku.
func makeRecords(n int) []document.Record {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	recs := make([]document.Record, 0, n)
	for i := 1; i <= n; i++ {
		body, _ := json.Marshal(map[string]any{
			"name": fmt.Sprintf("Producto %02d", i),
			"sku":  fmt.Sprintf("SKU-%03d", i),
		})
		recs = append(recs, document.Record{
			ID:         fmt.Sprintf("id-%03d", i),
			BusinessID: "biz-1",
			Body:       body,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
			UpdatedAt:  base.Add(time.Duration(i) * time.Minute),
			IsActive:   true,
		})
	}
	return recs
}

// 30 registros, páginas de 10 ordenadas por creación descendente: deben salir
// exactamente 3 páginas, la tercera sin más resultados, y la unión de las tres
// debe cubrir los 30 ids sin duplicados.
func TestPageRecords_TresPaginasSinDuplicados(t *testing.T) {
	recs := makeRecords(30)
	opts := document.QueryOptions{
		SortField:     document.FieldCreatedAt,
		SortDirection: document.Desc,
		PageSize:      10,
	}

	seen := map[string]bool{}
	cursor := ""
	for pageNum := 1; pageNum <= 3; pageNum++ {
		opts.Cursor = cursor
		page, err := document.PageRecords(recs, opts)
		require.NoError(t, err, "página %d", pageNum)
		require.Len(t, page.Data, 10, "página %d debe traer 10 registros", pageNum)

		for _, r := range page.Data {
			assert.False(t, seen[r.ID], "id %s repetido entre páginas", r.ID)
			seen[r.ID] = true
		}

		if pageNum < 3 {
			assert.True(t, page.HasMore, "página %d debe indicar que hay más", pageNum)
			require.NotEmpty(t, page.Cursor)
		} else {
			assert.False(t, page.HasMore, "la última página no debe indicar más")
		}
		cursor = page.Cursor
	}
	assert.Len(t, seen, 30, "las tres páginas deben cubrir los 30 registros")
}

// Orden descendente por creación: el primer registro de la primera página es
// el creado más recientemente.
func TestPageRecords_OrdenDescendentePorCreacion(t *testing.T) {
	page, err := document.PageRecords(makeRecords(5), document.QueryOptions{
		SortField:     document.FieldCreatedAt,
		SortDirection: document.Desc,
		PageSize:      5,
	})
	require.NoError(t, err)
	require.Len(t, page.Data, 5)
	assert.Equal(t, "id-005", page.Data[0].ID)
	assert.Equal(t, "id-001", page.Data[4].ID)
}

// Búsqueda multi-campo: substring case-insensitive sobre cualquiera de los
// campos indicados.
func TestPageRecords_BusquedaSubstringMultiCampo(t *testing.T) {
	recs := makeRecords(10)
	page, err := document.PageRecords(recs, document.QueryOptions{
		SearchQuery:  "sku-00",
		SearchFields: []string{"name", "sku"},
		PageSize:     25,
	})
	require.NoError(t, err)
	assert.Len(t, page.Data, 9, "SKU-001..SKU-009 contienen 'sku-00'")
	assert.False(t, page.HasMore)
}

// Los inactivos quedan fuera salvo que se pidan explícitamente.
func TestPageRecords_InactivosSoloConShowInactive(t *testing.T) {
	recs := makeRecords(4)
	recs[1].IsActive = false

	page, err := document.PageRecords(recs, document.QueryOptions{PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 3)

	page, err = document.PageRecords(recs, document.QueryOptions{PageSize: 10, ShowInactive: true})
	require.NoError(t, err)
	assert.Len(t, page.Data, 4)
}

// Los filtros son igualdad exacta y las entradas vacías se ignoran.
func TestPageRecords_FiltrosIgualdadExacta(t *testing.T) {
	recs := makeRecords(6)
	page, err := document.PageRecords(recs, document.QueryOptions{
		Filters:  map[string]string{"sku": "SKU-003", "name": ""},
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "id-003", page.Data[0].ID)
}

// Un cursor corrupto debe rechazarse, no empezar desde el principio.
func TestPageRecords_CursorCorrupto(t *testing.T) {
	_, err := document.PageRecords(makeRecords(3), document.QueryOptions{
		Cursor:   "no-es-un-cursor",
		PageSize: 10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCursor)
}

// Una página vacía no lleva cursor ni promete más resultados.
func TestPageRecords_PaginaVacia(t *testing.T) {
	page, err := document.PageRecords(nil, document.QueryOptions{PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Empty(t, page.Cursor)
	assert.False(t, page.HasMore)
}

// Valores por defecto: updated_at desc, tamaño 25, tope en MaxPageSize.
func TestQueryOptions_Normalized(t *testing.T) {
	n := document.QueryOptions{}.Normalized()
	assert.Equal(t, document.FieldUpdatedAt, n.SortField)
	assert.Equal(t, document.Desc, n.SortDirection)
	assert.Equal(t, document.DefaultPageSize, n.PageSize)

	n = document.QueryOptions{PageSize: 9999, SortDirection: "sideways"}.Normalized()
	assert.Equal(t, document.MaxPageSize, n.PageSize)
	assert.Equal(t, document.Desc, n.SortDirection)
}

// NeedsMemoryScan solo con búsqueda sobre más de un campo.
func TestQueryOptions_NeedsMemoryScan(t *testing.T) {
	assert.False(t, document.QueryOptions{SearchQuery: "x", SearchFields: []string{"name"}}.NeedsMemoryScan())
	assert.True(t, document.QueryOptions{SearchQuery: "x", SearchFields: []string{"name", "sku"}}.NeedsMemoryScan())
	assert.False(t, document.QueryOptions{SearchFields: []string{"name", "sku"}}.NeedsMemoryScan())
}

// Ordenar por un campo numérico del body compara como número, no como texto:
// 9 < 10 aunque "9" > "10" lexicográficamente.
func TestPageRecords_OrdenNumericoDelBody(t *testing.T) {
	recs := []document.Record{
		{ID: "a", Body: json.RawMessage(`{"stock_quantity": 9}`), IsActive: true},
		{ID: "b", Body: json.RawMessage(`{"stock_quantity": 10}`), IsActive: true},
		{ID: "c", Body: json.RawMessage(`{"stock_quantity": 2}`), IsActive: true},
	}
	page, err := document.PageRecords(recs, document.QueryOptions{
		SortField:     "stock_quantity",
		SortDirection: document.Asc,
		PageSize:      10,
	})
	require.NoError(t, err)
	require.Len(t, page.Data, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{page.Data[0].ID, page.Data[1].ID, page.Data[2].ID})
}
