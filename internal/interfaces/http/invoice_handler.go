package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/malkitsweets/invoicing-api/internal/application/dto"
	"github.com/malkitsweets/invoicing-api/internal/application/invoicing"
	"github.com/malkitsweets/invoicing-api/internal/application/usecase"
)

// InvoiceHandler maneja el libro de facturas y el pipeline de emisión.
type InvoiceHandler struct {
	ledger   *usecase.LedgerUseCase
	generate *invoicing.GenerateInvoiceUseCase
	preview  *invoicing.PreviewUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(
	ledger *usecase.LedgerUseCase,
	generate *invoicing.GenerateInvoiceUseCase,
	preview *invoicing.PreviewUseCase,
) *InvoiceHandler {
	return &InvoiceHandler{ledger: ledger, generate: generate, preview: preview}
}

// List godoc
// @Summary      Listar facturas emitidas, más recientes primero
// @Tags         invoices
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.ledger.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una factura
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateStatusRequest  true  "Fila y nuevo estado"
// @Success      200   {object}  dto.UpdateStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /update-status [post]
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, err)
	}
	if err := checkRequest(in); err != nil {
		return respondError(c, err)
	}
	status, err := h.ledger.UpdateStatus(c.Context(), in.RowNumber, in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.UpdateStatusResponse{Status: status})
}

// Generate godoc
// @Summary      Emitir una factura: renderiza el PDF, lo envía por correo y registra en el libro
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateInvoiceRequest  true  "Factura a emitir"
// @Success      200   {object}  dto.GenerateInvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /generate-invoice [post]
func (h *InvoiceHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, err)
	}
	if err := checkRequest(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.generate.Execute(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Preview godoc
// @Summary      Descargar la vista previa en PDF de un borrador
// @Tags         invoices
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.PreviewDraftRequest  true  "Borrador a previsualizar"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /download-draft-preview [post]
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, err)
	}
	if err := checkRequest(in); err != nil {
		return respondError(c, err)
	}
	pdfBytes, fileName, err := h.preview.Execute(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(fileName)
	return c.Send(pdfBytes)
}
