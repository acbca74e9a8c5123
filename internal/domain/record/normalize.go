// Package record normaliza filas tabulares externas a registros canónicos.
// Las cabeceras del libro llegan con mayúsculas y espaciado arbitrarios
// ("Vendor Name", " VENDOR_EMAIL ") y todos los endpoints de lectura dependen
// de que el mismo encabezado produzca siempre la misma clave.
package record

import (
	"regexp"
	"strings"
)

// Record un registro con claves canónicas más row_number inyectado.
type Record map[string]any

var spaceRun = regexp.MustCompile(`\s+`)

// Key normaliza una cabecera: recorta, pasa a minúsculas y colapsa cada
// corrida de espacios internos en un "_". Es idempotente.
func Key(header string) string {
	k := strings.ToLower(strings.TrimSpace(header))
	return spaceRun.ReplaceAllString(k, "_")
}

// InvoiceKey es Key más la sustitución "#" -> "num" propia de la región
// Invoices ("Invoice #" -> "invoice_num").
func InvoiceKey(header string) string {
	return strings.ReplaceAll(Key(header), "#", "num")
}

// FromRow construye el registro de la fila de datos en la posición index
// (0-based). row_number refleja la posición real dentro de la región:
// index + 2 por la fila de cabeceras.
func FromRow(headers, row []string, index int) Record {
	return fromRow(headers, row, index, Key)
}

// FromInvoiceRow igual que FromRow pero con las claves de la región Invoices.
func FromInvoiceRow(headers, row []string, index int) Record {
	return fromRow(headers, row, index, InvoiceKey)
}

func fromRow(headers, row []string, index int, keyFn func(string) string) Record {
	rec := make(Record, len(headers)+1)
	for i, h := range headers {
		k := keyFn(h)
		if k == "" {
			continue
		}
		var v string
		if i < len(row) {
			v = row[i]
		}
		rec[k] = v
	}
	rec["row_number"] = index + 2
	return rec
}
