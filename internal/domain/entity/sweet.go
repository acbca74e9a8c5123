package entity

// Sweet un dulce del catálogo de venta (región Sweets). Price se guarda como
// texto tal cual llegó; el caso de uso valida que parsee como decimal.
type Sweet struct {
	Name  string
	Price string
}

// Row serializa el dulce en el orden canónico de columnas de la región.
func (s Sweet) Row() []string {
	return []string{s.Name, s.Price}
}
