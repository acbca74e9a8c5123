package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/malkitsweets/invoicing-api/internal/application/dto"
	"github.com/malkitsweets/invoicing-api/internal/application/usecase"
	"github.com/malkitsweets/invoicing-api/internal/domain"
	"github.com/malkitsweets/invoicing-api/internal/domain/entity"
)

// SweetHandler maneja el catálogo de dulces.
type SweetHandler struct {
	uc *usecase.SweetUseCase
}

// NewSweetHandler construye el handler.
func NewSweetHandler(uc *usecase.SweetUseCase) *SweetHandler {
	return &SweetHandler{uc: uc}
}

// List godoc
// @Summary      Listar dulces del catálogo
// @Tags         sweets
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-sweets [get]
func (h *SweetHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar dulce
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveSweetRequest  true  "Nombre y precio"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /add-sweet [post]
func (h *SweetHandler) Add(c *fiber.Ctx) error {
	var in dto.SaveSweetRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, err)
	}
	if err := checkRequest(in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Add(c.Context(), sweetFromRequest(in)); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Sweet added successfully."})
}

// Edit godoc
// @Summary      Editar dulce
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveSweetRequest  true  "Datos con row_number"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /edit-sweet [post]
func (h *SweetHandler) Edit(c *fiber.Ctx) error {
	var in dto.SaveSweetRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, err)
	}
	if err := checkRequest(in); err != nil {
		return respondError(c, err)
	}
	if in.RowNumber < 2 {
		return respondError(c, fmt.Errorf("%w: a valid row_number is required", domain.ErrInvalidInput))
	}
	if err := h.uc.Edit(c.Context(), in.RowNumber, sweetFromRequest(in)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Sweet updated successfully."})
}

// Delete godoc
// @Summary      Eliminar dulce por fila
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteRowRequest  true  "Fila a eliminar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /delete-sweet [post]
func (h *SweetHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteRowRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), in.RowNumber); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Sweet deleted successfully."})
}

func sweetFromRequest(in dto.SaveSweetRequest) entity.Sweet {
	return entity.Sweet{
		Name:  in.Name,
		Price: strings.TrimSpace(in.Price.Raw),
	}
}
