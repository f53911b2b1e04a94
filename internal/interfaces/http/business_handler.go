package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jortega/comercio-api/internal/application/dto"
	"github.com/jortega/comercio-api/internal/application/usecase"
)

// BusinessHandler maneja el negocio activo de la sesión (protegido).
type BusinessHandler struct {
	uc *usecase.BusinessUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener el negocio activo
// @Tags         business
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BusinessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business [get]
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión sin negocio activo"})
	}
	out, err := h.uc.Get(c.UserContext(), businessID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar la configuración del negocio
// @Tags         business
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateBusinessRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.BusinessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/business [put]
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión sin negocio activo"})
	}
	var in dto.UpdateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), businessID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Dar de baja el negocio
// @Description  Borrado lógico: los datos se conservan pero el negocio deja de operar. Solo propietario.
// @Tags         business
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business [delete]
func (h *BusinessHandler) Deactivate(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión sin negocio activo"})
	}
	if err := h.uc.Deactivate(c.UserContext(), businessID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "negocio dado de baja"})
}

// ListMine godoc
// @Summary      Listar los negocios del usuario autenticado
// @Tags         business
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BusinessResponse
// @Router       /api/business/mine [get]
func (h *BusinessHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListByOwner(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
