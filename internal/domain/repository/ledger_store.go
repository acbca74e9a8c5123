// Package repository define los puertos hacia el almacenamiento externo.
// Todo el estado persistente del sistema vive en el libro tabular (cuatro
// regiones) y en el archivo de objetos; aquí solo viven los contratos.
package repository

import "context"

// Region una pestaña con nombre dentro del libro tabular.
type Region string

// Regiones del libro. En cada una la fila 1 está reservada para cabeceras.
const (
	RegionVendors  Region = "Vendors"
	RegionInvoices Region = "Invoices"
	RegionDrafts   Region = "Drafts"
	RegionSweets   Region = "Sweets"
)

// Headers la fila de cabeceras canónica de la región, la que se escribe al
// inicializar una región vacía en el primer append.
func (r Region) Headers() []string {
	switch r {
	case RegionVendors:
		return []string{"Name", "Email", "Address", "City", "Phone"}
	case RegionInvoices:
		return []string{"Timestamp", "Invoice #", "Invoice Date", "Vendor Name", "Vendor Email", "Items", "Total", "Status", "Notes"}
	case RegionDrafts:
		return []string{"Saved At", "Vendor Name", "Vendor Email", "Vendor Address", "Vendor City", "Vendor Phone", "Invoice Date", "Items", "Notes"}
	case RegionSweets:
		return []string{"Name", "Price"}
	}
	return nil
}

// LedgerStore acceso por filas al libro tabular. Las filas se numeran desde 1
// y la fila 1 es la cabecera; ListRows la incluye.
type LedgerStore interface {
	ListRows(ctx context.Context, region Region) ([][]string, error)
	AppendRow(ctx context.Context, region Region, values []string) error
	UpdateRow(ctx context.Context, region Region, rowNumber int, values []string) error
	DeleteRow(ctx context.Context, region Region, rowNumber int) error
}
