package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/malkitsweets/invoicing-api/internal/domain/record"
)

// Las cabeceras del libro las escriben humanos: el normalizador tiene que
// producir la misma clave sin importar mayúsculas, recortes ni espaciado.
func TestKey_InsensibleAMayusculasYEspacios(t *testing.T) {
	variants := []string{"Vendor  Email", "vendor_email", " VENDOR_EMAIL ", "Vendor Email"}
	for _, v := range variants {
		assert.Equal(t, "vendor_email", record.Key(v),
			"la cabecera %q debe normalizar a vendor_email", v)
	}
}

func TestKey_Idempotente(t *testing.T) {
	headers := []string{"Vendor Name", "Saved At", "Notes", "invoice_date"}
	for _, h := range headers {
		once := record.Key(h)
		assert.Equal(t, once, record.Key(once),
			"normalizar dos veces %q debe dar lo mismo que una", h)
	}
}

// La región Invoices sustituye además "#" por "num".
func TestInvoiceKey_NumeroDeFactura(t *testing.T) {
	assert.Equal(t, "invoice_num", record.InvoiceKey("Invoice #"))
	assert.Equal(t, "vendor_name", record.InvoiceKey("Vendor Name"),
		"las cabeceras sin # se normalizan igual que en las otras regiones")
}

// row_number refleja la posición real en la región: índice 0-based de la
// fila de datos más 2 por la cabecera.
func TestFromRow_InyectaRowNumber(t *testing.T) {
	headers := []string{"Name", "Email"}

	rec := record.FromRow(headers, []string{"Malkit", "pedidos@malkit.co"}, 0)
	assert.Equal(t, 2, rec["row_number"], "la primera fila de datos vive en la fila 2")
	assert.Equal(t, "Malkit", rec["name"])
	assert.Equal(t, "pedidos@malkit.co", rec["email"])

	rec = record.FromRow(headers, []string{"Otro", "otro@x.co"}, 3)
	assert.Equal(t, 5, rec["row_number"])
}

// Una fila más corta que la cabecera rellena con celdas vacías, sin fallar.
func TestFromRow_FilaCorta(t *testing.T) {
	headers := []string{"Name", "Email", "Address", "City", "Phone"}
	rec := record.FromRow(headers, []string{"Solo Nombre"}, 0)

	assert.Equal(t, "Solo Nombre", rec["name"])
	assert.Equal(t, "", rec["email"])
	assert.Equal(t, "", rec["phone"])
}

// Las columnas inesperadas pasan normalizadas; las cabeceras vacías se omiten.
func TestFromRow_ColumnasInesperadas(t *testing.T) {
	headers := []string{"Name", "", "Columna Rara"}
	rec := record.FromRow(headers, []string{"a", "b", "c"}, 0)

	assert.Equal(t, "a", rec["name"])
	assert.Equal(t, "c", rec["columna_rara"], "una columna desconocida pasa con su clave normalizada")
	_, hasEmpty := rec[""]
	assert.False(t, hasEmpty, "una cabecera vacía no debe producir clave")
}
