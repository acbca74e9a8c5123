package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/malkitsweets/invoicing-api/internal/domain"
	"github.com/malkitsweets/invoicing-api/internal/domain/entity"
	"github.com/malkitsweets/invoicing-api/internal/domain/record"
	"github.com/malkitsweets/invoicing-api/internal/domain/repository"
)

// SweetUseCase CRUD del catálogo de dulces sobre la región Sweets.
type SweetUseCase struct {
	store repository.LedgerStore
}

// NewSweetUseCase construye el caso de uso.
func NewSweetUseCase(store repository.LedgerStore) *SweetUseCase {
	return &SweetUseCase{store: store}
}

// List devuelve el catálogo normalizado.
func (uc *SweetUseCase) List(ctx context.Context) ([]record.Record, error) {
	rows, err := uc.store.ListRows(ctx, repository.RegionSweets)
	if err != nil {
		return nil, fmt.Errorf("sweets: listar filas: %w", err)
	}
	return recordsFromRows(rows, record.FromRow), nil
}

// Add valida el precio y agrega el dulce al final de la región.
func (uc *SweetUseCase) Add(ctx context.Context, s entity.Sweet) error {
	if err := validPrice(s.Price); err != nil {
		return err
	}
	if err := uc.store.AppendRow(ctx, repository.RegionSweets, s.Row()); err != nil {
		return fmt.Errorf("sweets: agregar fila: %w", err)
	}
	return nil
}

// Edit valida el precio y reescribe la fila rowNumber.
func (uc *SweetUseCase) Edit(ctx context.Context, rowNumber int, s entity.Sweet) error {
	if err := validPrice(s.Price); err != nil {
		return err
	}
	if err := uc.store.UpdateRow(ctx, repository.RegionSweets, rowNumber, s.Row()); err != nil {
		return fmt.Errorf("sweets: actualizar fila %d: %w", rowNumber, err)
	}
	return nil
}

// Delete elimina la fila rowNumber.
func (uc *SweetUseCase) Delete(ctx context.Context, rowNumber int) error {
	if err := uc.store.DeleteRow(ctx, repository.RegionSweets, rowNumber); err != nil {
		return fmt.Errorf("sweets: eliminar fila %d: %w", rowNumber, err)
	}
	return nil
}

func validPrice(price string) error {
	if _, err := decimal.NewFromString(strings.TrimSpace(price)); err != nil {
		return fmt.Errorf("%w: price must be a decimal number", domain.ErrInvalidInput)
	}
	return nil
}
