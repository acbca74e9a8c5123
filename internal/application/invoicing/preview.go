package invoicing

import (
	"context"
	"fmt"

	"github.com/malkitsweets/invoicing-api/internal/application/dto"
	"github.com/malkitsweets/invoicing-api/internal/domain/entity"
)

// Número que llevan las vistas previas en lugar de uno secuencial.
const previewNumber = "DRAFT"

// PreviewUseCase renderiza un borrador como PDF de vista previa. No consume
// numeración y no toca correo, libro ni archivo.
type PreviewUseCase struct {
	renderer DocumentRenderer
}

// NewPreviewUseCase construye el caso de uso.
func NewPreviewUseCase(renderer DocumentRenderer) *PreviewUseCase {
	return &PreviewUseCase{renderer: renderer}
}

// Execute devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *PreviewUseCase) Execute(ctx context.Context, in dto.PreviewDraftRequest) ([]byte, string, error) {
	doc := entity.BuildInvoiceDocument(previewNumber, in.Date, entity.Vendor{
		Name:    in.VendorName,
		Email:   in.VendorEmail,
		Address: in.VendorAddress,
		City:    in.VendorCity,
		Phone:   in.VendorPhone,
	}, in.Items, in.Notes)

	pdfBytes, err := uc.renderer.Render(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("preview: renderizar PDF: %w", err)
	}
	return pdfBytes, doc.FileName(), nil
}
