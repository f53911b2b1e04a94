package repository

// Page es el resultado tipado de un listado paginado por cursor.
// Items nunca excede el PageSize solicitado; Cursor permite pedir la página
// siguiente de la misma consulta ordenada; HasMore indica si existe.
type Page[T any] struct {
	Items   []*T
	Cursor  string
	HasMore bool
}
