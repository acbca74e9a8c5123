package dto

import "github.com/malkitsweets/invoicing-api/internal/domain/entity"

// SaveDraftRequest guarda o actualiza un borrador. Sin validación de campos:
// un borrador puede estar a medias. Con RowNumber reescribe esa fila; sin él
// agrega una nueva.
type SaveDraftRequest struct {
	RowNumber     int               `json:"row_number"`
	VendorName    string            `json:"vendor_name"`
	VendorEmail   string            `json:"vendor_email"`
	VendorAddress string            `json:"vendor_address"`
	VendorCity    string            `json:"vendor_city"`
	VendorPhone   string            `json:"vendor_phone"`
	Date          string            `json:"date"`
	Items         []entity.LineItem `json:"items"`
	Notes         string            `json:"notes"`
}
