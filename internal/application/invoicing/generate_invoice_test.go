package invoicing_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malkitsweets/invoicing-api/internal/application/dto"
	"github.com/malkitsweets/invoicing-api/internal/application/invoicing"
	"github.com/malkitsweets/invoicing-api/internal/domain/entity"
	"github.com/malkitsweets/invoicing-api/internal/domain/repository"
	"github.com/malkitsweets/invoicing-api/internal/infrastructure/memstore"
	"github.com/malkitsweets/invoicing-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles del renderer y del mailer. El libro y el archivo usan memstore.
// ──────────────────────────────────────────────────────────────────────────────

type fakeRenderer struct {
	fail error
	docs []entity.InvoiceDocument
}

func (f *fakeRenderer) Render(_ context.Context, doc entity.InvoiceDocument) ([]byte, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.docs = append(f.docs, doc)
	return []byte("%PDF-1.4 fake"), nil
}

type sentMail struct {
	recipient      string
	subject        string
	body           string
	attachmentPath string
	attachment     []byte
}

type fakeMailer struct {
	fail error
	sent []sentMail
}

// Send lee el adjunto en el momento del envío, igual que haría el relay:
// así el test verifica que el artefacto existe mientras el correo sale.
func (f *fakeMailer) Send(_ context.Context, recipient, subject, body, attachmentPath string) error {
	if f.fail != nil {
		return f.fail
	}
	data, err := os.ReadFile(attachmentPath)
	if err != nil {
		return fmt.Errorf("adjunto ilegible: %w", err)
	}
	f.sent = append(f.sent, sentMail{recipient, subject, body, attachmentPath, data})
	return nil
}

func newPipeline() (*invoicing.GenerateInvoiceUseCase, *memstore.Store, *memstore.Archive, *fakeMailer, *fakeRenderer) {
	store := memstore.NewStore()
	archive := memstore.NewArchive()
	mailer := &fakeMailer{}
	renderer := &fakeRenderer{}
	uc := invoicing.NewGenerateInvoiceUseCase(store, archive, renderer, mailer, "Invoices", logger.Nop())
	return uc, store, archive, mailer, renderer
}

// tenDollarRequest dos items de $3.00 y uno de $4.00: total $10.00.
func tenDollarRequest() dto.GenerateInvoiceRequest {
	return dto.GenerateInvoiceRequest{
		VendorName:  "Malkit Sweets",
		VendorEmail: "pedidos@malkit.co",
		Date:        "01/02/2026",
		Items: []entity.LineItem{
			{
				Description: "Baklava",
				Quantity:    entity.FlexNumber{Raw: "2", Set: true},
				Price:       entity.FlexNumber{Raw: "3.00", Set: true},
			},
			{
				Description: "Barfi",
				Quantity:    entity.FlexNumber{Raw: "1", Set: true},
				Price:       entity.FlexNumber{Raw: "4.00", Set: true},
			},
		},
		Notes: "entregar refrigerado",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Pipeline completo
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_PipelineCompleto(t *testing.T) {
	uc, store, archive, mailer, _ := newPipeline()

	resp, err := uc.Execute(context.Background(), tenDollarRequest())
	require.NoError(t, err)

	assert.Equal(t, "INV-0001", resp.InvoiceNum)
	assert.Equal(t, 10.0, resp.Total)
	assert.Contains(t, resp.Message, "INV-0001")
	assert.Contains(t, resp.Message, "pedidos@malkit.co")

	// Correo: asunto con el número, cuerpo con el total formateado.
	require.Len(t, mailer.sent, 1)
	mail := mailer.sent[0]
	assert.Equal(t, "pedidos@malkit.co", mail.recipient)
	assert.Contains(t, mail.subject, "INV-0001", "el asunto debe llevar el número emitido")
	assert.Contains(t, mail.body, "$10.00", "el cuerpo debe llevar el total con prefijo de moneda")
	assert.Equal(t, []byte("%PDF-1.4 fake"), mail.attachment)

	// Libro: cabecera inicializada más la fila de la factura.
	rows := store.Rows(repository.RegionInvoices)
	require.Len(t, rows, 2)
	fila := rows[1]
	assert.Equal(t, "INV-0001", fila[1])
	assert.Equal(t, "01/02/2026", fila[2])
	assert.Equal(t, "Malkit Sweets", fila[3])
	assert.Equal(t, "$10.00", fila[6], "la celda Total muestra el mismo valor que el correo")
	assert.Equal(t, "Sent", fila[7])
	assert.Equal(t, "entregar refrigerado", fila[8])

	// Archivo: una copia del PDF con el nombre del artefacto.
	uploads := archive.Uploads()
	require.Len(t, uploads, 1)
	assert.Equal(t, "INV-0001_Malkit_Sweets.pdf", uploads[0].FileName)
	assert.Equal(t, "application/pdf", uploads[0].MimeType)
	assert.Equal(t, []byte("%PDF-1.4 fake"), uploads[0].Content)

	// El artefacto efímero se limpia al terminar la petición.
	_, statErr := os.Stat(mail.attachmentPath)
	assert.True(t, os.IsNotExist(statErr), "el PDF temporal debe borrarse al salir")
}

func TestGenerate_NumeracionAvanzaConElLibro(t *testing.T) {
	uc, store, _, _, _ := newPipeline()
	ctx := context.Background()

	first, err := uc.Execute(ctx, tenDollarRequest())
	require.NoError(t, err)
	second, err := uc.Execute(ctx, tenDollarRequest())
	require.NoError(t, err)

	assert.Equal(t, "INV-0001", first.InvoiceNum)
	assert.Equal(t, "INV-0002", second.InvoiceNum)
	assert.Len(t, store.Rows(repository.RegionInvoices), 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Asimetría obligatorio / best-effort
// ──────────────────────────────────────────────────────────────────────────────

// El render es obligatorio: si falla no se envía nada y no se toca el libro.
func TestGenerate_FalloDeRenderAborta(t *testing.T) {
	uc, store, archive, mailer, renderer := newPipeline()
	renderer.fail = errors.New("fuente corrupta")

	_, err := uc.Execute(context.Background(), tenDollarRequest())
	require.Error(t, err)

	assert.Empty(t, mailer.sent)
	assert.Empty(t, store.Rows(repository.RegionInvoices))
	assert.Empty(t, archive.Uploads())
}

// El correo es obligatorio y corre antes que el libro y el archivo: si el
// relay rechaza, no queda fila ni copia archivada.
func TestGenerate_FalloDeCorreoAbortaAntesDelLibro(t *testing.T) {
	uc, store, archive, mailer, _ := newPipeline()
	mailer.fail = errors.New("relay rechazó la sesión")

	_, err := uc.Execute(context.Background(), tenDollarRequest())
	require.Error(t, err)
	assert.ErrorContains(t, err, "relay rechazó la sesión")

	assert.Empty(t, store.Rows(repository.RegionInvoices), "sin correo no hay fila en el libro")
	assert.Empty(t, archive.Uploads(), "sin correo no hay copia archivada")
}

// El libro es best-effort: con el append caído la factura sale igual.
func TestGenerate_FalloDeLibroNoAborta(t *testing.T) {
	uc, store, archive, mailer, _ := newPipeline()
	store.FailAppend = errors.New("cuota de escritura agotada")

	resp, err := uc.Execute(context.Background(), tenDollarRequest())
	require.NoError(t, err, "el fallo del libro no debe abortar la emisión")

	assert.Equal(t, "INV-0001", resp.InvoiceNum)
	assert.Len(t, mailer.sent, 1, "el correo ya salió")
	assert.Len(t, archive.Uploads(), 1, "el archivo se intenta aunque el libro falle")
}

// El archivo es best-effort: con la subida caída la factura sale igual.
func TestGenerate_FalloDeArchivoNoAborta(t *testing.T) {
	uc, store, _, mailer, _ := newPipeline()

	for _, inject := range []func(*memstore.Archive){
		func(a *memstore.Archive) { a.FailEnsure = errors.New("drive caído") },
		func(a *memstore.Archive) { a.FailUpload = errors.New("subida rechazada") },
	} {
		archive := memstore.NewArchive()
		inject(archive)
		uc = invoicing.NewGenerateInvoiceUseCase(store, archive, &fakeRenderer{}, mailer, "Invoices", logger.Nop())

		resp, err := uc.Execute(context.Background(), tenDollarRequest())
		require.NoError(t, err, "el fallo del archivo no debe abortar la emisión")
		assert.NotEmpty(t, resp.InvoiceNum)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrador de origen
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_BorraElBorradorDeOrigen(t *testing.T) {
	uc, store, _, _, _ := newPipeline()
	store.Seed(repository.RegionDrafts, [][]string{
		repository.RegionDrafts.Headers(),
		{"2026-01-01 09:00:00", "Queda"},
		{"2026-01-02 09:00:00", "Se emite"},
	})

	in := tenDollarRequest()
	in.DraftRow = 3

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	rows := store.Rows(repository.RegionDrafts)
	require.Len(t, rows, 2, "debe quedar la cabecera y un borrador")
	assert.Equal(t, "Queda", rows[1][1])
}

func TestGenerate_SinBorradorNoTocaDrafts(t *testing.T) {
	uc, store, _, _, _ := newPipeline()
	store.Seed(repository.RegionDrafts, [][]string{
		repository.RegionDrafts.Headers(),
		{"2026-01-01 09:00:00", "Intacto"},
	})

	_, err := uc.Execute(context.Background(), tenDollarRequest())
	require.NoError(t, err)
	assert.Len(t, store.Rows(repository.RegionDrafts), 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vista previa
// ──────────────────────────────────────────────────────────────────────────────

func TestPreview_DevuelveBytesYNombreDeArchivo(t *testing.T) {
	renderer := &fakeRenderer{}
	uc := invoicing.NewPreviewUseCase(renderer)

	pdfBytes, fileName, err := uc.Execute(context.Background(), dto.PreviewDraftRequest{
		VendorName: "Malkit Sweets",
		Date:       "01/02/2026",
	})
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.4 fake"), pdfBytes)
	assert.Equal(t, "DRAFT_Malkit_Sweets.pdf", fileName)
	require.Len(t, renderer.docs, 1)
	assert.Equal(t, "DRAFT", renderer.docs[0].Number, "la vista previa no consume numeración")
}

func TestPreview_FalloDeRenderPropagaError(t *testing.T) {
	renderer := &fakeRenderer{fail: errors.New("fuente corrupta")}
	uc := invoicing.NewPreviewUseCase(renderer)

	_, _, err := uc.Execute(context.Background(), dto.PreviewDraftRequest{VendorName: "Malkit"})
	assert.Error(t, err)
}
