package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/malkitsweets/invoicing-api/internal/application/dto"
	"github.com/malkitsweets/invoicing-api/internal/application/usecase"
	"github.com/malkitsweets/invoicing-api/internal/domain"
)

// DraftHandler maneja los borradores de factura. Los borradores se guardan
// sin validar: pueden estar a medias por diseño.
type DraftHandler struct {
	uc *usecase.DraftUseCase
}

// NewDraftHandler construye el handler.
func NewDraftHandler(uc *usecase.DraftUseCase) *DraftHandler {
	return &DraftHandler{uc: uc}
}

// List godoc
// @Summary      Listar borradores
// @Tags         drafts
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-drafts [get]
func (h *DraftHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener un borrador por fila
// @Tags         drafts
// @Produce      json
// @Param        row  path  int  true  "Número de fila"
// @Success      200  {object}  object
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-draft/{row} [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	row, err := c.ParamsInt("row")
	if err != nil {
		// Una fila que no es número equivale a una fila que no existe.
		return respondError(c, fmt.Errorf("%w: draft at row %q", domain.ErrNotFound, c.Params("row")))
	}
	out, err := h.uc.Get(c.Context(), row)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Guardar o actualizar un borrador
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveDraftRequest  true  "Borrador, con row_number para actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Success      201   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /save-draft [post]
func (h *DraftHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, err)
	}
	created, err := h.uc.Save(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Draft saved successfully."})
	}
	return c.JSON(dto.MessageResponse{Message: "Draft updated successfully."})
}

// Delete godoc
// @Summary      Eliminar borrador por fila
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteRowRequest  true  "Fila a eliminar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /delete-draft [post]
func (h *DraftHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteRowRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), in.RowNumber); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Draft deleted successfully."})
}
