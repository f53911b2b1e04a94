package usecase

import (
	"strings"

	"github.com/jortega/comercio-api/internal/application/dto"
	"github.com/jortega/comercio-api/internal/domain/document"
)

// queryOptions traduce los parámetros HTTP de listado a las opciones de la
// capa de documentos. Los valores fuera de rango los normaliza esa capa.
func queryOptions(in dto.ListRequest) document.QueryOptions {
	var fields []string
	for _, f := range strings.Split(in.SearchFields, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}

	// Dirección vacía o inválida: la normaliza la capa de documentos.
	var dir document.Direction
	switch strings.ToLower(in.SortDirection) {
	case "asc":
		dir = document.Asc
	case "desc":
		dir = document.Desc
	}

	return document.QueryOptions{
		SearchQuery:   strings.TrimSpace(in.Search),
		SearchFields:  fields,
		SortField:     in.SortField,
		SortDirection: dir,
		PageSize:      in.PageSize,
		Cursor:        in.Cursor,
		ShowInactive:  in.ShowInactive,
	}
}

// pageMeta arma los metadatos de paginación de una respuesta de listado.
func pageMeta(cursor string, hasMore bool) dto.PageMeta {
	return dto.PageMeta{Cursor: cursor, HasMore: hasMore}
}
