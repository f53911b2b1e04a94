package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jortega/comercio-api/internal/application/dto"
	"github.com/jortega/comercio-api/internal/application/usecase"
)

// TransactionHandler maneja las operaciones del POS (protegido).
type TransactionHandler struct {
	uc *usecase.TransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// CreateSale godoc
// @Summary      Registrar venta
// @Description  Descuenta stock y acumula puntos del cliente de forma atómica.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Líneas de la venta"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) CreateSale(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Lines) == 0 || in.PaymentMethod == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lines y payment_method son requeridos"})
	}
	out, err := h.uc.RegisterSale(c.UserContext(), GetBusinessID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateRefund godoc
// @Summary      Registrar devolución
// @Description  Repone el stock de las líneas devueltas. Sin líneas devuelve la venta completa.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRefundRequest  true  "Venta original y líneas a devolver"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions/refunds [post]
func (h *TransactionHandler) CreateRefund(c *fiber.Ctx) error {
	var in dto.CreateRefundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.TransactionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "transaction_id es requerido"})
	}
	out, err := h.uc.RegisterRefund(c.UserContext(), GetBusinessID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Void godoc
// @Summary      Anular venta
// @Description  Repone todo el stock y registra la anulación como transacción nueva.
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID de la venta"
// @Param        notes  query  string  false  "Motivo de la anulación"
// @Success      201    {object}  dto.TransactionResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      409    {object}  dto.ErrorResponse
// @Router       /api/transactions/{id}/void [post]
func (h *TransactionHandler) Void(c *fiber.Ctx) error {
	out, err := h.uc.Void(c.UserContext(), GetBusinessID(c), GetUserID(c), c.Params("id"), c.Query("notes"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener transacción por ID
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetBusinessID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar transacciones
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        search          query  string  false  "Texto a buscar"
// @Param        search_fields   query  string  false  "Campos de búsqueda separados por coma"
// @Param        sort_field      query  string  false  "Campo de orden"  default(updated_at)
// @Param        sort_direction  query  string  false  "asc o desc"      default(desc)
// @Param        page_size       query  int     false  "Tamaño de página (máx 100)"
// @Param        cursor          query  string  false  "Cursor de la página anterior"
// @Success      200  {object}  dto.TransactionListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetBusinessID(c), parseListRequest(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar ticket en PDF
// @Tags         transactions
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id}/receipt [get]
func (h *TransactionHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.Receipt(c.UserContext(), GetBusinessID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
