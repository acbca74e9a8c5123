package entity

import "time"

// Draft una factura guardada sin enviar todavía. Items viaja serializado como
// JSON en una sola celda de la región Drafts.
type Draft struct {
	SavedAt time.Time
	Vendor  Vendor
	Date    string
	Items   []LineItem
	Notes   string
}

// Row serializa el borrador en el orden canónico de columnas de la región.
func (d Draft) Row() []string {
	return []string{
		d.SavedAt.Format(TimestampLayout),
		d.Vendor.Name,
		d.Vendor.Email,
		d.Vendor.Address,
		d.Vendor.City,
		d.Vendor.Phone,
		d.Date,
		MarshalLineItems(d.Items),
		d.Notes,
	}
}
