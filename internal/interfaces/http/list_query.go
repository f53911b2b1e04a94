package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jortega/comercio-api/internal/application/dto"
)

// parseListRequest lee los parámetros de listado del query string. Valores
// fuera de rango los normaliza la capa de documentos.
func parseListRequest(c *fiber.Ctx) dto.ListRequest {
	return dto.ListRequest{
		Search:        c.Query("search"),
		SearchFields:  c.Query("search_fields"),
		SortField:     c.Query("sort_field"),
		SortDirection: c.Query("sort_direction"),
		PageSize:      c.QueryInt("page_size"),
		Cursor:        c.Query("cursor"),
		ShowInactive:  c.QueryBool("show_inactive"),
	}
}
