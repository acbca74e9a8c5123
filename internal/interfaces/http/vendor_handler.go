package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/malkitsweets/invoicing-api/internal/application/dto"
	"github.com/malkitsweets/invoicing-api/internal/application/usecase"
	"github.com/malkitsweets/invoicing-api/internal/domain"
	"github.com/malkitsweets/invoicing-api/internal/domain/entity"
)

// VendorHandler maneja el directorio de vendors.
type VendorHandler struct {
	uc *usecase.VendorUseCase
}

// NewVendorHandler construye el handler.
func NewVendorHandler(uc *usecase.VendorUseCase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

// List godoc
// @Summary      Listar vendors
// @Tags         vendors
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-vendors [get]
func (h *VendorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar vendor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveVendorRequest  true  "Datos del vendor"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /add-vendor [post]
func (h *VendorHandler) Add(c *fiber.Ctx) error {
	var in dto.SaveVendorRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, err)
	}
	if err := checkRequest(in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Add(c.Context(), vendorFromRequest(in)); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Vendor added successfully."})
}

// Edit godoc
// @Summary      Editar vendor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveVendorRequest  true  "Datos del vendor con row_number"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /edit-vendor [post]
func (h *VendorHandler) Edit(c *fiber.Ctx) error {
	var in dto.SaveVendorRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, err)
	}
	if err := checkRequest(in); err != nil {
		return respondError(c, err)
	}
	if in.RowNumber < 2 {
		return respondError(c, fmt.Errorf("%w: a valid row_number is required", domain.ErrInvalidInput))
	}
	if err := h.uc.Edit(c.Context(), in.RowNumber, vendorFromRequest(in)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Vendor updated successfully."})
}

// Delete godoc
// @Summary      Eliminar vendor por fila
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteRowRequest  true  "Fila a eliminar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /delete-vendor [post]
func (h *VendorHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteRowRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), in.RowNumber); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Vendor deleted successfully."})
}

func vendorFromRequest(in dto.SaveVendorRequest) entity.Vendor {
	return entity.Vendor{
		Name:    in.Name,
		Email:   in.Email,
		Address: in.Address,
		City:    in.City,
		Phone:   in.Phone,
	}
}
