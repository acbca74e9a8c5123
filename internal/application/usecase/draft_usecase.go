package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/malkitsweets/invoicing-api/internal/application/dto"
	"github.com/malkitsweets/invoicing-api/internal/domain"
	"github.com/malkitsweets/invoicing-api/internal/domain/entity"
	"github.com/malkitsweets/invoicing-api/internal/domain/record"
	"github.com/malkitsweets/invoicing-api/internal/domain/repository"
)

// DraftUseCase gestiona los borradores de factura en la región Drafts.
type DraftUseCase struct {
	store repository.LedgerStore
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(store repository.LedgerStore) *DraftUseCase {
	return &DraftUseCase{store: store}
}

// List devuelve todos los borradores con la celda items ya deserializada.
func (uc *DraftUseCase) List(ctx context.Context) ([]record.Record, error) {
	rows, err := uc.store.ListRows(ctx, repository.RegionDrafts)
	if err != nil {
		return nil, fmt.Errorf("drafts: listar filas: %w", err)
	}
	records := recordsFromRows(rows, record.FromRow)
	for _, rec := range records {
		decodeDraftItems(rec)
	}
	return records, nil
}

// Get devuelve el borrador de la fila rowNumber, o domain.ErrNotFound.
func (uc *DraftUseCase) Get(ctx context.Context, rowNumber int) (record.Record, error) {
	rows, err := uc.store.ListRows(ctx, repository.RegionDrafts)
	if err != nil {
		return nil, fmt.Errorf("drafts: listar filas: %w", err)
	}
	for _, rec := range recordsFromRows(rows, record.FromRow) {
		if rec["row_number"] == rowNumber {
			decodeDraftItems(rec)
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: draft at row %d", domain.ErrNotFound, rowNumber)
}

// Save agrega un borrador nuevo (created=true) o, si llega RowNumber,
// reescribe el existente (created=false). Los items se reserializan siempre.
func (uc *DraftUseCase) Save(ctx context.Context, in dto.SaveDraftRequest) (created bool, err error) {
	draft := entity.Draft{
		SavedAt: time.Now(),
		Vendor: entity.Vendor{
			Name:    in.VendorName,
			Email:   in.VendorEmail,
			Address: in.VendorAddress,
			City:    in.VendorCity,
			Phone:   in.VendorPhone,
		},
		Date:  in.Date,
		Items: in.Items,
		Notes: in.Notes,
	}
	if in.RowNumber > 0 {
		if err := uc.store.UpdateRow(ctx, repository.RegionDrafts, in.RowNumber, draft.Row()); err != nil {
			return false, fmt.Errorf("drafts: actualizar fila %d: %w", in.RowNumber, err)
		}
		return false, nil
	}
	if err := uc.store.AppendRow(ctx, repository.RegionDrafts, draft.Row()); err != nil {
		return false, fmt.Errorf("drafts: agregar fila: %w", err)
	}
	return true, nil
}

// Delete elimina la fila rowNumber.
func (uc *DraftUseCase) Delete(ctx context.Context, rowNumber int) error {
	if err := uc.store.DeleteRow(ctx, repository.RegionDrafts, rowNumber); err != nil {
		return fmt.Errorf("drafts: eliminar fila %d: %w", rowNumber, err)
	}
	return nil
}

// decodeDraftItems reemplaza la celda items serializada por la lista real.
// Una celda corrupta queda como lista vacía.
func decodeDraftItems(rec record.Record) {
	cell, _ := rec["items"].(string)
	rec["items"] = entity.UnmarshalLineItems(cell)
}
