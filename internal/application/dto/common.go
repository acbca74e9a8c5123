package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteRowRequest borrado por número de fila (vendors, drafts y sweets).
type DeleteRowRequest struct {
	RowNumber int `json:"row_number"`
}
