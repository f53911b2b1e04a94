package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jortega/comercio-api/internal/application/dto"
	"github.com/jortega/comercio-api/internal/application/usecase"
)

// ReportHandler reportes de solo lectura del negocio (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales godoc
// @Summary      Resumen de ventas
// @Description  Agrega las ventas de [from, to). Sin rango se toman los últimos 30 días.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha inicial (RFC 3339 o YYYY-MM-DD)"
// @Param        to    query  string  false  "Fecha final (RFC 3339 o YYYY-MM-DD)"
// @Success      200   {object}  dto.SalesReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	from, ok := parseDate(c.Query("from"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido"})
	}
	to, ok := parseDate(c.Query("to"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido"})
	}
	out, err := h.uc.SalesReport(c.UserContext(), GetBusinessID(c), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LowStockResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseDate acepta RFC 3339 o fecha simple YYYY-MM-DD. Vacío es válido y
// devuelve el cero (el caso de uso aplica el rango por defecto).
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
