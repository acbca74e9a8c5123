package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malkitsweets/invoicing-api/internal/application/usecase"
	"github.com/malkitsweets/invoicing-api/internal/domain"
	"github.com/malkitsweets/invoicing-api/internal/domain/entity"
	"github.com/malkitsweets/invoicing-api/internal/domain/repository"
	"github.com/malkitsweets/invoicing-api/internal/infrastructure/memstore"
)

func TestSweet_AddGuardaNombreYPrecio(t *testing.T) {
	store := memstore.NewStore()
	uc := usecase.NewSweetUseCase(store)

	require.NoError(t, uc.Add(context.Background(), entity.Sweet{Name: "Baklava", Price: "3.50"}))

	rows := store.Rows(repository.RegionSweets)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Name", "Price"}, rows[0])
	assert.Equal(t, []string{"Baklava", "3.50"}, rows[1])
}

func TestSweet_AddRechazaPrecioNoDecimal(t *testing.T) {
	store := memstore.NewStore()
	uc := usecase.NewSweetUseCase(store)

	err := uc.Add(context.Background(), entity.Sweet{Name: "Baklava", Price: "tres con cincuenta"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.Rows(repository.RegionSweets), "un precio inválido no debe tocar la hoja")
}

func TestSweet_AddRechazaPrecioVacio(t *testing.T) {
	uc := usecase.NewSweetUseCase(memstore.NewStore())
	err := uc.Add(context.Background(), entity.Sweet{Name: "Baklava", Price: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSweet_EditValidaPrecioAntesDeEscribir(t *testing.T) {
	store := memstore.NewStore()
	store.Seed(repository.RegionSweets, [][]string{
		{"Name", "Price"},
		{"Barfi", "4.00"},
	})
	uc := usecase.NewSweetUseCase(store)

	err := uc.Edit(context.Background(), 2, entity.Sweet{Name: "Barfi", Price: "4,00"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "4.00", store.Rows(repository.RegionSweets)[1][1], "la fila original queda intacta")

	require.NoError(t, uc.Edit(context.Background(), 2, entity.Sweet{Name: "Barfi", Price: "4.25"}))
	assert.Equal(t, "4.25", store.Rows(repository.RegionSweets)[1][1])
}

func TestSweet_ListYDelete(t *testing.T) {
	store := memstore.NewStore()
	store.Seed(repository.RegionSweets, [][]string{
		{"Name", "Price"},
		{"Baklava", "3.50"},
		{"Barfi", "4.00"},
	})
	uc := usecase.NewSweetUseCase(store)
	ctx := context.Background()

	records, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Baklava", records[0]["name"])
	assert.Equal(t, "3.50", records[0]["price"])

	require.NoError(t, uc.Delete(ctx, 2))
	records, err = uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Barfi", records[0]["name"])
}
