package dto

// ListRequest parámetros de consulta de un listado paginado por cursor.
// SearchFields acepta varios campos separados por coma; con más de un campo
// la búsqueda pasa a ser por substring (ver capa de documentos).
type ListRequest struct {
	Search        string `query:"search"`
	SearchFields  string `query:"search_fields"`
	SortField     string `query:"sort_field"`
	SortDirection string `query:"sort_direction" validate:"omitempty,oneof=asc desc"`
	PageSize      int    `query:"page_size" validate:"omitempty,min=1,max=100"`
	Cursor        string `query:"cursor"`
	ShowInactive  bool   `query:"show_inactive"`
}

// PageMeta metadatos de paginación en respuestas de listado.
type PageMeta struct {
	Cursor  string `json:"cursor,omitempty"`
	HasMore bool   `json:"has_more"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
