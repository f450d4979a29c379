package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invorder-api/internal/application/auth"
	"github.com/jhoicas/invorder-api/internal/application/dto"
	"github.com/rs/zerolog/log"
)

// AuthHandler maneja login, logout y la sesión actual.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		log.Error().Err(err).Msg("login")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno"})
	}
	if out == nil {
		// Email inexistente y password incorrecto responden exactamente igual.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "credenciales inválidas"})
	}
	setSessionCookie(c, out.Token, h.uc.SessionTTL())
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.OKResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	clearSessionCookie(c)
	return c.JSON(dto.OKResponse{OK: true})
}

// Me godoc
// @Summary      Sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	// user es null para requests anónimos; nunca es un error.
	return c.JSON(dto.MeResponse{User: CurrentSession(c)})
}
