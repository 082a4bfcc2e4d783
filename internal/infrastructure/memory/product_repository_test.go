package memory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodities-api/internal/domain"
	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/infrastructure/memory"
)

func newRepo(t *testing.T, seed []*entity.Product) *memory.ProductRepo {
	t.Helper()
	return memory.NewProductRepository(memory.InstantClock(), seed)
}

func sampleProduct() *entity.Product {
	return &entity.Product{
		Name:     "Cafe Sello Rojo",
		Category: "Beverages",
		Quantity: 40,
		Price:    decimal.RequireFromString("32.50"),
		Unit:     entity.UnitKg,
		Supplier: "Colcafe",
		Status:   entity.DeriveStatus(40),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_CreateAsignaIDYTimestamp(t *testing.T) {
	repo := newRepo(t, nil)
	before := time.Now()

	stored, err := repo.Create(sampleProduct())
	require.NoError(t, err)

	assert.NotEmpty(t, stored.ID, "el almacén debe asignar un ID nuevo")
	assert.False(t, stored.LastUpdated.Before(before),
		"LastUpdated debe ser igual o posterior al momento de la llamada")

	got, err := repo.GetByID(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, got, "lo leído debe coincidir con lo creado")
}

func TestProductRepo_CreatePermiteNombresDuplicados(t *testing.T) {
	repo := newRepo(t, nil)

	a, err := repo.Create(sampleProduct())
	require.NoError(t, err)
	b, err := repo.Create(sampleProduct())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID, "cada create recibe un ID distinto")
}

func TestProductRepo_GetByIDInexistente(t *testing.T) {
	repo := newRepo(t, nil)

	_, err := repo.GetByID("no-existe")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// Las lecturas devuelven copias: mutar lo devuelto no toca el estado vivo.
func TestProductRepo_LecturasDevuelvenCopias(t *testing.T) {
	repo := newRepo(t, nil)
	stored, err := repo.Create(sampleProduct())
	require.NoError(t, err)

	stored.Name = "mutado por el llamador"
	stored.Quantity = 0

	got, err := repo.GetByID(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cafe Sello Rojo", got.Name)
	assert.Equal(t, 40, got.Quantity)

	list, err := repo.List()
	require.NoError(t, err)
	list[0].Name = "mutado vía list"

	got, err = repo.GetByID(got.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cafe Sello Rojo", got.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_ListPreservaOrdenDeInsercion(t *testing.T) {
	repo := newRepo(t, memory.SeedProducts(time.Now()))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 8)
	assert.Equal(t, "Tata Tea Premium", list[0].Name)
	assert.Equal(t, "MDH Chana Masala", list[7].Name)

	extra, err := repo.Create(sampleProduct())
	require.NoError(t, err)

	list, err = repo.List()
	require.NoError(t, err)
	require.Len(t, list, 9)
	assert.Equal(t, extra.ID, list[8].ID, "lo nuevo se agrega al final")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_UpdateReestampaLastUpdated(t *testing.T) {
	repo := newRepo(t, nil)
	stored, err := repo.Create(sampleProduct())
	require.NoError(t, err)

	stored.Quantity = 10
	before := time.Now()
	updated, err := repo.Update(stored)
	require.NoError(t, err)

	assert.Equal(t, 10, updated.Quantity)
	assert.False(t, updated.LastUpdated.Before(before))

	got, err := repo.GetByID(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)
}

// El almacén persiste Status tal cual: NO corrige un status desincronizado
// de la cantidad. Derivarlo es responsabilidad del llamador.
func TestProductRepo_UpdateNoCorrigeStatusDesincronizado(t *testing.T) {
	repo := newRepo(t, nil)
	stored, err := repo.Create(sampleProduct())
	require.NoError(t, err)

	stored.Quantity = 0
	stored.Status = entity.StatusInStock // deliberadamente inconsistente

	_, err = repo.Update(stored)
	require.NoError(t, err)

	got, err := repo.GetByID(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)
	assert.Equal(t, entity.StatusInStock, got.Status,
		"el almacén no deriva Status por su cuenta")
}

func TestProductRepo_UpdateInexistente(t *testing.T) {
	repo := newRepo(t, nil)

	p := sampleProduct()
	p.ID = "no-existe"
	_, err := repo.Update(p)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_DeleteLuegoGetReportaNotFound(t *testing.T) {
	repo := newRepo(t, nil)
	stored, err := repo.Create(sampleProduct())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(stored.ID))

	_, err = repo.GetByID(stored.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	assert.True(t, errors.Is(repo.Delete(stored.ID), domain.ErrNotFound),
		"borrar dos veces reporta not found la segunda")
}
