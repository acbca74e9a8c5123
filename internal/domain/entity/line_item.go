package entity

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexNumber acepta en JSON tanto string como número y conserva el literal
// original con su tipo, para que los items de un borrador sobrevivan el viaje
// de ida y vuelta sin alterarse. La coerción numérica se decide después (ver
// Value).
type FlexNumber struct {
	Raw string
	Set bool
	num bool // el literal llegó como número JSON
}

// UnmarshalJSON nunca falla: lo que no sea string JSON queda como literal crudo.
func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	f.Set = true
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Raw = s
		return nil
	}
	f.Raw = string(data)
	f.num = json.Unmarshal(data, new(json.Number)) == nil
	return nil
}

// MarshalJSON devuelve el literal con el tipo con que llegó: número si vino
// como número JSON, string en cualquier otro caso.
func (f FlexNumber) MarshalJSON() ([]byte, error) {
	if f.num {
		return []byte(f.Raw), nil
	}
	return json.Marshal(f.Raw)
}

// Value intenta la coerción numérica del literal. Un literal no finito (NaN,
// Inf) cuenta como no numérico: ParseFloat lo acepta pero no es un importe.
func (f FlexNumber) Value() (float64, bool) {
	s := strings.TrimSpace(f.Raw)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func (f FlexNumber) String() string { return f.Raw }

// LineItem una línea de factura tal como llega del cliente. Quantity y Price
// pueden venir como string o como número.
type LineItem struct {
	Description string     `json:"description"`
	Quantity    FlexNumber `json:"quantity"`
	Price       FlexNumber `json:"price"`
}

// Numeric aplica la política de coerción permisiva: cantidad ausente vale 1,
// precio ausente vale 0, y un valor presente pero no numérico descarta la
// línea completa (ok=false). La línea descartada no entra ni a la tabla ni
// al total.
func (li LineItem) Numeric() (qty, price float64, ok bool) {
	qty = 1
	if li.Quantity.Set {
		q, qok := li.Quantity.Value()
		if !qok {
			return 0, 0, false
		}
		qty = q
	}
	price = 0
	if li.Price.Set {
		p, pok := li.Price.Value()
		if !pok {
			return 0, 0, false
		}
		price = p
	}
	return qty, price, true
}

// MarshalLineItems serializa los items para la celda Items del libro.
func MarshalLineItems(items []LineItem) string {
	if len(items) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(items)
	return string(b)
}

// UnmarshalLineItems deserializa una celda Items. Una celda corrupta produce
// una lista vacía, nunca un error.
func UnmarshalLineItems(cell string) []LineItem {
	var items []LineItem
	if err := json.Unmarshal([]byte(cell), &items); err != nil || items == nil {
		return []LineItem{}
	}
	return items
}
