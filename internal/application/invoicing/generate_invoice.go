package invoicing

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/malkitsweets/invoicing-api/internal/application/dto"
	"github.com/malkitsweets/invoicing-api/internal/domain/entity"
	"github.com/malkitsweets/invoicing-api/internal/domain/repository"
	"github.com/malkitsweets/invoicing-api/pkg/logger"
)

// Estado inicial de una factura recién emitida en el libro.
const initialStatus = "Sent"

const companyName = "Malkit Sweets and Catering"

// GenerateInvoiceUseCase orquesta el pipeline completo de emisión. El render
// y el envío del correo son obligatorios: su fallo aborta la operación. El
// registro en el libro, la subida al archivo y el borrado del borrador de
// origen son best-effort: su fallo solo se registra en el log.
type GenerateInvoiceUseCase struct {
	store      repository.LedgerStore
	archive    repository.ArchiveStore
	renderer   DocumentRenderer
	mailer     MailSender
	folderName string
	log        *logger.Logger
}

// NewGenerateInvoiceUseCase construye el caso de uso inyectando colaboradores.
func NewGenerateInvoiceUseCase(
	store repository.LedgerStore,
	archive repository.ArchiveStore,
	renderer DocumentRenderer,
	mailer MailSender,
	folderName string,
	log *logger.Logger,
) *GenerateInvoiceUseCase {
	return &GenerateInvoiceUseCase{
		store:      store,
		archive:    archive,
		renderer:   renderer,
		mailer:     mailer,
		folderName: folderName,
		log:        log,
	}
}

// Execute corre el pipeline sobre una petición ya validada.
//
// Retorna:
//   - (resp, nil) con el número emitido y el total si el correo salió.
//   - el error del renderer o del mailer si un paso obligatorio falló; en ese
//     caso el libro y el archivo quedan sin tocar.
func (uc *GenerateInvoiceUseCase) Execute(ctx context.Context, in dto.GenerateInvoiceRequest) (*dto.GenerateInvoiceResponse, error) {
	// ── 1. Numerar ────────────────────────────────────────────────────────────
	number := NextInvoiceNumber(ctx, uc.store, uc.log)

	// ── 2. Armar el documento (coerción permisiva de items) ───────────────────
	doc := entity.BuildInvoiceDocument(number, in.Date, entity.Vendor{
		Name:    in.VendorName,
		Email:   in.VendorEmail,
		Address: in.VendorAddress,
		City:    in.VendorCity,
		Phone:   in.VendorPhone,
	}, in.Items, in.Notes)

	// ── 3. Renderizar el PDF (obligatorio) ────────────────────────────────────
	pdfBytes, err := uc.renderer.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("generate: renderizar PDF: %w", err)
	}

	// ── 4. Persistir el artefacto efímero ─────────────────────────────────────
	// El directorio con uuid es propiedad exclusiva de esta petición y se
	// elimina al salir, haya o no llegado el pipeline al final.
	artifactDir := filepath.Join(os.TempDir(), "invoices", uuid.NewString())
	if err := os.MkdirAll(artifactDir, 0o755); err != nil {
		return nil, fmt.Errorf("generate: crear directorio temporal: %w", err)
	}
	defer os.RemoveAll(artifactDir)

	artifactPath := filepath.Join(artifactDir, doc.FileName())
	if err := os.WriteFile(artifactPath, pdfBytes, 0o644); err != nil {
		return nil, fmt.Errorf("generate: escribir artefacto: %w", err)
	}

	// ── 5. Enviar el correo (obligatorio; aborta antes de tocar libro/archivo) ─
	subject := fmt.Sprintf("Invoice %s from %s", number, companyName)
	body := fmt.Sprintf(
		"Hello %s,\n\nPlease find attached invoice %s for a total of %s.\n\nThank you,\n%s",
		doc.VendorName, number, entity.FormatMoney(doc.GrandTotal), companyName,
	)
	if err := uc.mailer.Send(ctx, doc.VendorEmail, subject, body, artifactPath); err != nil {
		return nil, fmt.Errorf("generate: enviar correo: %w", err)
	}

	// ── 6. Registrar en el libro (best-effort) ────────────────────────────────
	ledgerRow := []string{
		time.Now().Format(entity.TimestampLayout),
		number,
		doc.Date,
		doc.VendorName,
		doc.VendorEmail,
		entity.MarshalLineItems(in.Items),
		entity.FormatMoney(doc.GrandTotal),
		initialStatus,
		doc.Notes,
	}
	if err := uc.store.AppendRow(ctx, repository.RegionInvoices, ledgerRow); err != nil {
		uc.log.Error().Err(err).Str("invoice", number).Msg("no se pudo registrar la factura en el libro")
	}

	// ── 7. Archivar el PDF (best-effort) ──────────────────────────────────────
	if folderID, err := uc.archive.EnsureFolder(ctx, uc.folderName); err != nil {
		uc.log.Error().Err(err).Str("folder", uc.folderName).Msg("no se pudo resolver la carpeta de archivo")
	} else if err := uc.archive.Upload(ctx, folderID, doc.FileName(), bytes.NewReader(pdfBytes), "application/pdf"); err != nil {
		uc.log.Error().Err(err).Str("invoice", number).Msg("no se pudo archivar el PDF")
	}

	// ── 8. Borrar el borrador de origen (best-effort) ─────────────────────────
	if in.DraftRow > 0 {
		if err := uc.store.DeleteRow(ctx, repository.RegionDrafts, in.DraftRow); err != nil {
			uc.log.Error().Err(err).Int("row", in.DraftRow).Msg("no se pudo borrar el borrador de origen")
		}
	}

	uc.log.Info().
		Str("invoice", number).
		Str("recipient", doc.VendorEmail).
		Float64("total", doc.GrandTotal).
		Msg("factura emitida")

	return &dto.GenerateInvoiceResponse{
		Message:    fmt.Sprintf("Invoice %s sent to %s.", number, doc.VendorEmail),
		InvoiceNum: number,
		Total:      doc.GrandTotal,
	}, nil
}
