package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jortega/comercio-api/internal/application/auth"
	"github.com/jortega/comercio-api/internal/application/dto"
	"github.com/jortega/comercio-api/pkg/config"
)

// AuthHandler maneja registro, login, logout y verificación de sesión.
// El token viaja en una cookie HTTP-only además del cuerpo de la respuesta.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	session config.SessionConfig
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{uc: uc, session: session}
}

// Signup godoc
// @Summary      Registrar cuenta y negocio
// @Description  Crea la cuenta, el negocio y sus datos semilla en una sola operación.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "Datos de registro"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" || in.BusinessName == "" || in.BusinessType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, password, business_name y business_type son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	out, err := h.uc.Signup(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	h.setSessionCookie(c, out.Token)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	h.setSessionCookie(c, out.Token)
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.session.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// Check godoc
// @Summary      Verificar sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/check [get]
func (h *AuthHandler) Check(c *fiber.Ctx) error {
	out, err := h.uc.Check(c.UserContext(), GetUserID(c), GetBusinessID(c), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.session.CookieName,
		Value:    token,
		Expires:  time.Now().AddDate(0, 0, h.session.MaxAgeDays),
		HTTPOnly: true,
		Secure:   h.session.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
