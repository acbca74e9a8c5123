package entity

import "github.com/shopspring/decimal"

// FormatMoney formatea un importe como "$1234.50": dos decimales y prefijo de
// dólar. Es el formato que comparten la celda Total del libro, el cuerpo del
// correo y la fila de total del PDF.
func FormatMoney(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}
