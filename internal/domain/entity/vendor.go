package entity

// Vendor un proveedor del catálogo (región Vendors del libro).
type Vendor struct {
	Name    string
	Email   string
	Address string
	City    string
	Phone   string
}

// Row serializa el vendor en el orden canónico de columnas de la región.
func (v Vendor) Row() []string {
	return []string{v.Name, v.Email, v.Address, v.City, v.Phone}
}
