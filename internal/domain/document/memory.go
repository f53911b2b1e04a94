package document

import (
	"sort"
	"strconv"
	"strings"
)

// PageRecords aplica QueryOptions sobre un conjunto de registros en memoria:
// es el fallback para búsquedas que el backend no puede expresar como rango
// por prefijo (varios campos, substring). El caller ya trajo los candidatos
// del tenant; aquí se filtra, ordena y pagina con la misma semántica de
// lookahead que la consulta nativa.
func PageRecords(recs []Record, opts QueryOptions) (Page, error) {
	opts = opts.Normalized()

	filtered := make([]Record, 0, len(recs))
	for _, r := range recs {
		if !opts.ShowInactive && !r.IsActive {
			continue
		}
		if !matchesFilters(r, opts.Filters) {
			continue
		}
		if opts.HasSearch() && !matchesSearch(r, opts.SearchFields, opts.SearchQuery) {
			continue
		}
		filtered = append(filtered, r)
	}

	sortRecords(filtered, opts.SortField, opts.SortDirection)

	// Reanudar después del cursor: los registros quedan ordenados, así que
	// basta descartar hasta pasar la posición (sortValue, id) del cursor.
	if opts.Cursor != "" {
		cur, err := DecodeCursor(opts.Cursor)
		if err != nil {
			return Page{}, err
		}
		filtered = afterCursor(filtered, cur, opts)
	}

	if len(filtered) > opts.PageSize+1 {
		filtered = filtered[:opts.PageSize+1]
	}
	return NormalizePage(filtered, opts), nil
}

// matchesFilters exige igualdad exacta en cada entrada no vacía del mapa.
func matchesFilters(r Record, filters map[string]string) bool {
	for field, want := range filters {
		if want == "" {
			continue
		}
		got, ok := r.BodyField(field)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// matchesSearch hace substring case-insensitive sobre cualquiera de los campos.
func matchesSearch(r Record, fields []string, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		v, ok := r.BodyField(f)
		if ok && strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

func sortRecords(recs []Record, field string, dir Direction) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i].SortValue(field), recs[j].SortValue(field)
		if a == b {
			// Desempate por id para que el orden sea estable entre páginas.
			if dir == Desc {
				return recs[i].ID > recs[j].ID
			}
			return recs[i].ID < recs[j].ID
		}
		if dir == Desc {
			return compareValues(a, b) > 0
		}
		return compareValues(a, b) < 0
	})
}

// compareValues compara numéricamente cuando ambos valores lo permiten
// (el body serializa números como texto JSON) y lexicográficamente si no.
func compareValues(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

func afterCursor(recs []Record, cur Cursor, opts QueryOptions) []Record {
	for i, r := range recs {
		v, id := r.SortValue(opts.SortField), r.ID
		cmp := compareValues(v, cur.SortValue)
		if cmp == 0 {
			cmp = strings.Compare(id, cur.ID)
		}
		if (opts.SortDirection == Asc && cmp > 0) || (opts.SortDirection == Desc && cmp < 0) {
			return recs[i:]
		}
	}
	return nil
}
