package usecase

import "github.com/malkitsweets/invoicing-api/internal/domain/record"

// recordsFromRows normaliza todas las filas de datos de una región. rows trae
// la cabecera en la posición 0; una región vacía o con solo cabecera produce
// una lista vacía, no nil (el JSON de respuesta debe ser []).
func recordsFromRows(rows [][]string, fromRow func(headers, row []string, index int) record.Record) []record.Record {
	if len(rows) <= 1 {
		return []record.Record{}
	}
	headers := rows[0]
	out := make([]record.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		out = append(out, fromRow(headers, row, i))
	}
	return out
}
