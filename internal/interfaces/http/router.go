package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/malkitsweets/invoicing-api/internal/application/invoicing"
	"github.com/malkitsweets/invoicing-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	VendorUC   *usecase.VendorUseCase
	SweetUC    *usecase.SweetUseCase
	DraftUC    *usecase.DraftUseCase
	LedgerUC   *usecase.LedgerUseCase
	GenerateUC *invoicing.GenerateInvoiceUseCase
	PreviewUC  *invoicing.PreviewUseCase
}

// Router registra las rutas de la API. Las rutas son planas, sin prefijo,
// como las espera el frontend existente.
func Router(app *fiber.App, deps RouterDeps) {
	// Vendors
	vendorHandler := NewVendorHandler(deps.VendorUC)
	app.Get("/get-vendors", vendorHandler.List)
	app.Post("/add-vendor", vendorHandler.Add)
	app.Post("/edit-vendor", vendorHandler.Edit)
	app.Post("/delete-vendor", vendorHandler.Delete)

	// Facturas: libro, estado y emisión
	invoiceHandler := NewInvoiceHandler(deps.LedgerUC, deps.GenerateUC, deps.PreviewUC)
	app.Get("/get-invoices", invoiceHandler.List)
	app.Post("/update-status", invoiceHandler.UpdateStatus)
	app.Post("/generate-invoice", invoiceHandler.Generate)
	app.Post("/download-draft-preview", invoiceHandler.Preview)

	// Borradores
	draftHandler := NewDraftHandler(deps.DraftUC)
	app.Get("/get-drafts", draftHandler.List)
	app.Get("/get-draft/:row", draftHandler.Get)
	app.Post("/save-draft", draftHandler.Save)
	app.Post("/delete-draft", draftHandler.Delete)

	// Catálogo de dulces
	sweetHandler := NewSweetHandler(deps.SweetUC)
	app.Get("/get-sweets", sweetHandler.List)
	app.Post("/add-sweet", sweetHandler.Add)
	app.Post("/edit-sweet", sweetHandler.Edit)
	app.Post("/delete-sweet", sweetHandler.Delete)
}
