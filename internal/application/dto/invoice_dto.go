package dto

import "github.com/malkitsweets/invoicing-api/internal/domain/entity"

// GenerateInvoiceRequest petición de emisión de una factura final. DraftRow,
// si llega, referencia el borrador de origen para borrarlo tras el envío.
type GenerateInvoiceRequest struct {
	VendorName    string            `json:"vendor_name" validate:"required"`
	VendorEmail   string            `json:"vendor_email" validate:"required,vendor_email"`
	VendorAddress string            `json:"vendor_address"`
	VendorCity    string            `json:"vendor_city"`
	VendorPhone   string            `json:"vendor_phone"`
	Date          string            `json:"date" validate:"required,invoice_date"`
	Items         []entity.LineItem `json:"items" validate:"required,min=1"`
	Notes         string            `json:"notes"`
	DraftRow      int               `json:"draft_row"`
}

// GenerateInvoiceResponse resultado del pipeline completo.
type GenerateInvoiceResponse struct {
	Message    string  `json:"message"`
	InvoiceNum string  `json:"invoice_num"`
	Total      float64 `json:"total"`
}

// PreviewDraftRequest vista previa en PDF de un borrador. Solo exige el
// nombre del vendor (da nombre al archivo); todo lo demás puede faltar.
type PreviewDraftRequest struct {
	VendorName    string            `json:"vendor_name" validate:"required"`
	VendorEmail   string            `json:"vendor_email"`
	VendorAddress string            `json:"vendor_address"`
	VendorCity    string            `json:"vendor_city"`
	VendorPhone   string            `json:"vendor_phone"`
	Date          string            `json:"date"`
	Items         []entity.LineItem `json:"items"`
	Notes         string            `json:"notes"`
}

// UpdateStatusRequest cambia la columna Status de una fila del libro.
type UpdateStatusRequest struct {
	RowNumber int    `json:"row_number" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

// UpdateStatusResponse devuelve el estado ya aplicado.
type UpdateStatusResponse struct {
	Status string `json:"status"`
}
