package document

// Direction sentido de ordenamiento.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// PrefixEnd es el centinela de fin de rango para la búsqueda por prefijo:
// un code point alto que acota `campo >= q AND campo < q+PrefixEnd`.
// Es la misma aproximación documentada del backend original; no es búsqueda
// de texto completo (ver QueryOptions.SearchFields).
const PrefixEnd = ""

// Valores por defecto de los listados.
const (
	DefaultSortField = FieldUpdatedAt
	DefaultPageSize  = 25
	MaxPageSize      = 100
)

// QueryOptions describe una consulta de listado de forma inmutable:
// se construye una vez a partir de la petición y se pasa hacia abajo,
// nunca se muta estado ambiente entre páginas.
//
// Un cursor solo es válido para la misma consulta ordenada que lo produjo:
// cambiar filtros, búsqueda u orden invalida cursores previos.
type QueryOptions struct {
	SearchQuery   string
	SearchFields  []string // un solo campo -> rango por prefijo en el backend; varios -> filtrado en memoria (substring)
	SortField     string
	SortDirection Direction
	PageSize      int
	Filters       map[string]string // igualdad exacta, una condición por entrada no vacía
	Cursor        string            // token opaco producido por la página anterior
	ShowInactive  bool              // incluir documentos con is_active = false
}

// Normalized devuelve una copia con los valores por defecto aplicados:
// orden updated_at desc, PageSize en [1, MaxPageSize].
func (o QueryOptions) Normalized() QueryOptions {
	if o.SortField == "" {
		o.SortField = DefaultSortField
	}
	if o.SortDirection != Asc && o.SortDirection != Desc {
		o.SortDirection = Desc
	}
	if o.PageSize < 1 {
		o.PageSize = DefaultPageSize
	}
	if o.PageSize > MaxPageSize {
		o.PageSize = MaxPageSize
	}
	return o
}

// HasSearch indica si la consulta lleva búsqueda de texto.
func (o QueryOptions) HasSearch() bool {
	return o.SearchQuery != "" && len(o.SearchFields) > 0
}

// NeedsMemoryScan indica si la búsqueda no puede expresarse como rango por
// prefijo en el backend (más de un campo) y requiere el fallback en memoria.
func (o QueryOptions) NeedsMemoryScan() bool {
	return o.SearchQuery != "" && len(o.SearchFields) > 1
}
