package entity

import (
	"strings"
	"time"
)

// TimestampLayout formato de los sellos de tiempo del libro (Timestamp de
// Invoices, Saved At de Drafts). Ordena cronológicamente como texto.
const TimestampLayout = "2006-01-02 15:04:05"

// DocumentLine una línea ya coercida que entra a la tabla del PDF.
type DocumentLine struct {
	Description string
	Quantity    float64
	Price       float64
}

// Total de la línea.
func (l DocumentLine) Total() float64 { return l.Quantity * l.Price }

// InvoiceDocument el documento armado listo para renderizar: número, fecha,
// bloque BILL TO, líneas válidas y total general. Vive solo durante la
// petición que lo creó; su única identidad persistente es el nombre de archivo.
type InvoiceDocument struct {
	Number        string
	Date          string // tal como llegó, MM/DD/YYYY
	VendorName    string
	VendorEmail   string
	VendorAddress string
	VendorCity    string
	VendorPhone   string
	Lines         []DocumentLine
	GrandTotal    float64
	Notes         string
}

// BuildInvoiceDocument aplica la coerción permisiva a los items y acumula el
// total solo sobre las líneas que la pasaron. El total resultante es exacto
// respecto de las líneas incluidas: libro, correo y PDF muestran este valor.
func BuildInvoiceDocument(number, date string, vendor Vendor, items []LineItem, notes string) InvoiceDocument {
	doc := InvoiceDocument{
		Number:        number,
		Date:          date,
		VendorName:    vendor.Name,
		VendorEmail:   vendor.Email,
		VendorAddress: vendor.Address,
		VendorCity:    vendor.City,
		VendorPhone:   vendor.Phone,
		Notes:         notes,
	}
	for _, it := range items {
		qty, price, ok := it.Numeric()
		if !ok {
			continue // línea no numérica: fuera de la tabla y del total
		}
		line := DocumentLine{Description: it.Description, Quantity: qty, Price: price}
		doc.Lines = append(doc.Lines, line)
		doc.GrandTotal += line.Total()
	}
	return doc
}

// FileName nombre del artefacto: número más el vendor con guiones bajos.
func (d InvoiceDocument) FileName() string {
	vendor := strings.ReplaceAll(strings.TrimSpace(d.VendorName), " ", "_")
	return d.Number + "_" + vendor + ".pdf"
}

// DateLong la fecha en formato largo para el PDF ("January 02, 2006").
// Si la fecha no parsea se devuelve tal cual.
func (d InvoiceDocument) DateLong() string {
	t, err := time.Parse(DateLayout, d.Date)
	if err != nil {
		return d.Date
	}
	return t.Format("January 02, 2006")
}
