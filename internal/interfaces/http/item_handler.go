package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invorder-api/internal/application/dto"
	"github.com/jhoicas/invorder-api/internal/application/usecase"
	"github.com/jhoicas/invorder-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// ItemHandler maneja las peticiones HTTP del catálogo de items (protegido).
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar items
// @Tags         items
// @Produce      json
// @Param        active  query  bool  false  "Filtrar por estado activo"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var active *bool
	switch c.Query("active") {
	case "true":
		v := true
		active = &v
	case "false":
		v := false
		active = &v
	}
	out, err := h.uc.List(active)
	if err != nil {
		log.Error().Err(err).Msg("listar items")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del item"
// @Success      201   {object}  dto.CreateItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo JSON inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "validación fallida", Details: verr.Fields})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "ya existe un item con ese SKU"})
		}
		log.Error().Err(err).Msg("crear item")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateItemResponse{Item: *out})
}

// Delete godoc
// @Summary      Eliminar item
// @Tags         items
// @Produce      json
// @Param        id  path  string  true  "ID del item (UUID)"
// @Success      200  {object}  dto.DeleteItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido", Details: verr.Fields})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "item no encontrado"})
		}
		log.Error().Err(err).Msg("eliminar item")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno"})
	}
	return c.JSON(dto.DeleteItemResponse{Deleted: *out})
}
