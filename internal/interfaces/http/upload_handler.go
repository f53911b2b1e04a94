package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jortega/comercio-api/internal/application/dto"
	"github.com/jortega/comercio-api/internal/infrastructure/media"
)

// UploadHandler sube imágenes al hosting de assets (protegido). Las
// credenciales nunca salen del backend.
type UploadHandler struct {
	uploader *media.Uploader
}

// NewUploadHandler construye el handler.
func NewUploadHandler(uploader *media.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload godoc
// @Summary      Subir imagen
// @Tags         uploads
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Imagen a subir"
// @Success      201   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/uploads [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	if !h.uploader.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UPLOADS_DISABLED", Message: "el servicio de imágenes no está configurado"})
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo file requerido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	result, err := h.uploader.Upload(c.UserContext(), GetBusinessID(c), fileHeader.Filename, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	})
}

// Delete godoc
// @Summary      Eliminar imagen
// @Description  Elimina un asset por su public_id (la ruta completa, con carpetas).
// @Tags         uploads
// @Security     Bearer
// @Produce      json
// @Param        publicId  path      string  true  "public_id del asset"
// @Success      200       {object}  dto.MessageResponse
// @Failure      503       {object}  dto.ErrorResponse
// @Router       /api/uploads/{publicId} [delete]
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	if !h.uploader.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UPLOADS_DISABLED", Message: "el servicio de imágenes no está configurado"})
	}
	// El public_id incluye la carpeta (comercio/<business_id>/...), por eso
	// la ruta usa comodín y no un parámetro simple.
	publicID := c.Params("*")
	if publicID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PUBLIC_ID", Message: "public_id requerido"})
	}
	if err := h.uploader.Delete(c.UserContext(), publicID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "imagen eliminada"})
}
