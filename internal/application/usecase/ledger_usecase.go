package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/malkitsweets/invoicing-api/internal/domain/record"
	"github.com/malkitsweets/invoicing-api/internal/domain/repository"
)

// LedgerUseCase lectura del libro de facturas emitidas y cambio de estado.
type LedgerUseCase struct {
	store repository.LedgerStore
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(store repository.LedgerStore) *LedgerUseCase {
	return &LedgerUseCase{store: store}
}

// List devuelve las facturas normalizadas, la más reciente primero. El sello
// Timestamp ordena cronológicamente como texto (ver entity.TimestampLayout).
func (uc *LedgerUseCase) List(ctx context.Context) ([]record.Record, error) {
	rows, err := uc.store.ListRows(ctx, repository.RegionInvoices)
	if err != nil {
		return nil, fmt.Errorf("invoices: listar filas: %w", err)
	}
	records := recordsFromRows(rows, record.FromInvoiceRow)
	sort.SliceStable(records, func(i, j int) bool {
		ti, _ := records[i]["timestamp"].(string)
		tj, _ := records[j]["timestamp"].(string)
		return ti > tj
	})
	return records, nil
}

// UpdateStatus reescribe la columna Status de la fila rowNumber y devuelve el
// estado ya aplicado. La fila se reescribe completa, con el resto de celdas
// intactas.
func (uc *LedgerUseCase) UpdateStatus(ctx context.Context, rowNumber int, status string) (string, error) {
	rows, err := uc.store.ListRows(ctx, repository.RegionInvoices)
	if err != nil {
		return "", fmt.Errorf("invoices: listar filas: %w", err)
	}
	if rowNumber < 2 || rowNumber > len(rows) {
		return "", fmt.Errorf("invoices: fila %d fuera de rango", rowNumber)
	}

	statusCol := -1
	for i, h := range rows[0] {
		if record.InvoiceKey(h) == "status" {
			statusCol = i
			break
		}
	}
	if statusCol == -1 {
		return "", fmt.Errorf("invoices: columna Status no encontrada")
	}

	row := rows[rowNumber-1]
	for len(row) <= statusCol {
		row = append(row, "")
	}
	row[statusCol] = status

	if err := uc.store.UpdateRow(ctx, repository.RegionInvoices, rowNumber, row); err != nil {
		return "", fmt.Errorf("invoices: actualizar fila %d: %w", rowNumber, err)
	}
	return status, nil
}
