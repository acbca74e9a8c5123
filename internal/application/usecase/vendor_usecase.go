package usecase

import (
	"context"
	"fmt"

	"github.com/malkitsweets/invoicing-api/internal/domain/entity"
	"github.com/malkitsweets/invoicing-api/internal/domain/record"
	"github.com/malkitsweets/invoicing-api/internal/domain/repository"
)

// VendorUseCase CRUD de vendors sobre la región Vendors del libro.
type VendorUseCase struct {
	store repository.LedgerStore
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(store repository.LedgerStore) *VendorUseCase {
	return &VendorUseCase{store: store}
}

// List devuelve todos los vendors normalizados. Hojas viejas traen la columna
// "Phone Number" en vez de "Phone"; el valor se refleja también bajo "phone"
// para que el frontend lea siempre la misma clave.
func (uc *VendorUseCase) List(ctx context.Context) ([]record.Record, error) {
	rows, err := uc.store.ListRows(ctx, repository.RegionVendors)
	if err != nil {
		return nil, fmt.Errorf("vendors: listar filas: %w", err)
	}
	records := recordsFromRows(rows, record.FromRow)
	for _, rec := range records {
		if _, ok := rec["phone"]; !ok {
			if v, ok := rec["phone_number"]; ok {
				rec["phone"] = v
			}
		}
	}
	return records, nil
}

// Add agrega un vendor al final de la región.
func (uc *VendorUseCase) Add(ctx context.Context, v entity.Vendor) error {
	if err := uc.store.AppendRow(ctx, repository.RegionVendors, v.Row()); err != nil {
		return fmt.Errorf("vendors: agregar fila: %w", err)
	}
	return nil
}

// Edit reescribe completa la fila rowNumber.
func (uc *VendorUseCase) Edit(ctx context.Context, rowNumber int, v entity.Vendor) error {
	if err := uc.store.UpdateRow(ctx, repository.RegionVendors, rowNumber, v.Row()); err != nil {
		return fmt.Errorf("vendors: actualizar fila %d: %w", rowNumber, err)
	}
	return nil
}

// Delete elimina la fila rowNumber.
func (uc *VendorUseCase) Delete(ctx context.Context, rowNumber int) error {
	if err := uc.store.DeleteRow(ctx, repository.RegionVendors, rowNumber); err != nil {
		return fmt.Errorf("vendors: eliminar fila %d: %w", rowNumber, err)
	}
	return nil
}
