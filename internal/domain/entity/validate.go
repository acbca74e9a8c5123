package entity

import (
	"regexp"
	"time"
)

// DateLayout formato de la fecha de factura (MM/DD/YYYY).
const DateLayout = "01/02/2006"

// emailPattern acepta local@dominio.tld: sin espacios, una sola arroba y al
// menos un punto en el dominio.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail indica si s parece una dirección de correo utilizable.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidDate indica si s cumple el formato de fecha de la factura.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
