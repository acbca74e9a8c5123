// Package pdf renderiza el documento de factura con Maroto v2.
//
// Layout de la página Letter:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Logo (o marca en texto)  │  INVOICE                │
//	│  Bloque de la empresa             │  N° Factura + Fecha     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: nombre + contacto del vendor                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Item Description | Quantity | Unit Price | Total    │
//	│                                        TOTAL resaltado      │
//	│  Notes (opcional)                                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: línea de copyright en cada página                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/malkitsweets/invoicing-api/internal/application/invoicing"
	"github.com/malkitsweets/invoicing-api/internal/domain/entity"
	"github.com/malkitsweets/invoicing-api/pkg/logger"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorHeaderBg  = &props.Color{Red: 79, Green: 70, Blue: 229}   // índigo
	colorHeaderTxt = &props.Color{Red: 245, Green: 245, Blue: 245} // whitesmoke
	colorBody      = &props.Color{Red: 245, Green: 245, Blue: 220} // beige
	colorTotalBg   = &props.Color{Red: 211, Green: 211, Blue: 211} // lightgrey
	colorGray      = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorBlack     = &props.Color{Red: 0, Green: 0, Blue: 0}
)

const (
	defaultLogoURL   = "https://malkitsweetsandcatering.com/img/logo.png"
	logoFallbackText = "Your Company"
)

// ── Renderer ──────────────────────────────────────────────────────────────────

var _ invoicing.DocumentRenderer = (*InvoiceRenderer)(nil)

// InvoiceRenderer implementa invoicing.DocumentRenderer usando Maroto v2.
type InvoiceRenderer struct {
	client  *http.Client
	logoURL string
	log     *logger.Logger
}

// NewInvoiceRenderer construye el renderer. La descarga del logo tiene su
// propio timeout para que una imagen lenta no retrase la factura completa.
func NewInvoiceRenderer(log *logger.Logger) *InvoiceRenderer {
	return &InvoiceRenderer{
		client:  &http.Client{Timeout: 10 * time.Second},
		logoURL: defaultLogoURL,
		log:     log,
	}
}

// Render genera el PDF y devuelve sus bytes.
func (r *InvoiceRenderer) Render(ctx context.Context, doc entity.InvoiceDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(25).WithRightMargin(25).
		WithTopMargin(25).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Invoice "+doc.Number, true).
		WithAuthor("Malkit Sweets and Catering", true).
		Build()

	m := maroto.New(cfg)

	// El pie va registrado antes de agregar filas para que cada página le
	// reserve su espacio.
	if err := m.RegisterFooter(footerRow()); err != nil {
		return nil, fmt.Errorf("pdf: registrar pie de página: %w", err)
	}

	m.AddRows(r.headerRow(ctx))
	m.AddRows(row.New(4))
	m.AddRows(companyRow(doc))
	m.AddRows(row.New(8))
	for _, br := range billToRows(doc) {
		m.AddRows(br)
	}
	m.AddRows(row.New(8))

	m.AddRows(tableHeaderRow())
	for _, lr := range tableLineRows(doc.Lines) {
		m.AddRows(lr)
	}
	m.AddRows(row.New(4))
	m.AddRows(totalRow(doc.GrandTotal))

	for _, nr := range notesRows(doc.Notes) {
		m.AddRows(nr)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: logo (o marca en texto si la descarga falla) y el título INVOICE.
func (r *InvoiceRenderer) headerRow(ctx context.Context) core.Row {
	logoCol := col.New(4)
	if logo := r.fetchLogo(ctx); len(logo) > 0 {
		logoCol = logoCol.Add(image.NewFromBytes(logo, extension.Png, props.Rect{Percent: 90}))
	} else {
		logoCol = logoCol.Add(text.New(logoFallbackText, props.Text{
			Style: fontstyle.Bold, Size: 14, Top: 6,
		}))
	}
	return row.New(20).Add(
		logoCol,
		col.New(8).Add(text.New("INVOICE", props.Text{
			Style: fontstyle.Bold, Size: 24, Align: align.Center, Top: 4,
		})),
	)
}

// companyRow: identidad fija de la empresa (izq) y número + fecha (der).
func companyRow(doc entity.InvoiceDocument) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Your Company Name", props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
			text.New("123 Sweet Lane", props.Text{Size: 9, Top: 6, Color: colorGray}),
			text.New("Pastryville, PV 54321", props.Text{Size: 9, Top: 10, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Invoice #: "+doc.Number, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Date: "+doc.DateLong(), props.Text{
				Size: 9, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// billToRows: bloque del destinatario. Solo las líneas con contenido.
func billToRows(doc entity.InvoiceDocument) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("BILL TO:", props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(doc.VendorName, props.Text{Size: 10, Top: 1}),
		)),
	}
	for _, detail := range []string{doc.VendorEmail, doc.VendorPhone, doc.VendorAddress, doc.VendorCity} {
		if detail == "" {
			continue
		}
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(detail, props.Text{Size: 9, Top: 1, Color: colorGray}),
		)))
	}
	return rows
}

// tableHeaderRow: cabecera índigo con texto claro y rejilla completa.
func tableHeaderRow() core.Row {
	h := func(size int, label string) core.Col {
		return col.New(size).
			Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center,
				Color: colorHeaderTxt, Top: 2.5,
			})).
			WithStyle(&props.Cell{
				BackgroundColor: colorHeaderBg,
				BorderColor:     colorBlack,
				BorderType:      border.Full,
			})
	}
	return row.New(9).Add(
		h(6, "Item Description"),
		h(2, "Quantity"),
		h(2, "Unit Price"),
		h(2, "Total"),
	)
}

// tableLineRows: una fila beige por línea coercida, cantidades y precios a
// dos decimales.
func tableLineRows(lines []entity.DocumentLine) []core.Row {
	cell := func(size int, value string) core.Col {
		return col.New(size).
			Add(text.New(value, props.Text{Size: 9, Align: align.Center, Top: 1.5})).
			WithStyle(&props.Cell{
				BackgroundColor: colorBody,
				BorderColor:     colorBlack,
				BorderType:      border.Full,
			})
	}
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			cell(6, l.Description),
			cell(2, decimal.NewFromFloat(l.Quantity).StringFixed(2)),
			cell(2, entity.FormatMoney(l.Price)),
			cell(2, entity.FormatMoney(l.Total())),
		))
	}
	return result
}

// totalRow: total general resaltado a la derecha.
func totalRow(total float64) core.Row {
	highlight := &props.Cell{
		BackgroundColor: colorTotalBg,
		BorderColor:     colorBlack,
		BorderType:      border.Full,
	}
	return row.New(8).Add(
		col.New(8),
		col.New(2).
			Add(text.New("Total:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1.5, Right: 2,
			})).
			WithStyle(highlight),
		col.New(2).
			Add(text.New(entity.FormatMoney(total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1.5, Right: 2,
			})).
			WithStyle(highlight),
	)
}

// notesRows: bloque de notas, solo si hay contenido.
func notesRows(notes string) []core.Row {
	if strings.TrimSpace(notes) == "" {
		return nil
	}
	return []core.Row{
		row.New(10),
		row.New(6).Add(col.New(12).Add(
			text.New("Notes:", props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(notes, props.Text{Size: 9, Top: 1, Color: colorGray}),
		)),
	}
}

// footerRow: línea de copyright repetida al pie de cada página.
func footerRow() core.Row {
	legend := fmt.Sprintf("© %d Malkit Sweets and Catering. Thank you for your business!", time.Now().Year())
	return row.New(10).Add(col.New(12).Add(
		text.New(legend, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 4}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// fetchLogo descarga la imagen de marca. Cualquier fallo devuelve nil y el
// header cae al texto de respaldo; el render nunca se aborta por el logo.
func (r *InvoiceRenderer) fetchLogo(ctx context.Context) []byte {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.logoURL, nil)
	if err != nil {
		r.log.Warn().Err(err).Msg("no se pudo armar la petición del logo")
		return nil
	}
	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Warn().Err(err).Str("url", r.logoURL).Msg("no se pudo descargar el logo, se usa texto")
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		r.log.Warn().Int("status", resp.StatusCode).Str("url", r.logoURL).Msg("no se pudo descargar el logo, se usa texto")
		return nil
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		r.log.Warn().Err(err).Msg("no se pudo leer el logo, se usa texto")
		return nil
	}
	return b
}
