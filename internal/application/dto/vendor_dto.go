package dto

// SaveVendorRequest alta o edición de un vendor. RowNumber llega solo en la
// edición, para identificar la fila a reescribir.
type SaveVendorRequest struct {
	RowNumber int    `json:"row_number"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,vendor_email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Phone     string `json:"phone"`
}
