package dto

import "github.com/malkitsweets/invoicing-api/internal/domain/entity"

// SaveSweetRequest alta o edición de un dulce del catálogo. Price puede
// llegar como string o número; el caso de uso valida que parsee como decimal.
type SaveSweetRequest struct {
	RowNumber int               `json:"row_number"`
	Name      string            `json:"name" validate:"required"`
	Price     entity.FlexNumber `json:"price"`
}
