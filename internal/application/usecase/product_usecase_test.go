package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodities-api/internal/application/dto"
	"github.com/jhoicas/commodities-api/internal/application/usecase"
	"github.com/jhoicas/commodities-api/internal/domain"
	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/infrastructure/memory"
)

func newProductUC(t *testing.T, seeded bool) *usecase.ProductUseCase {
	t.Helper()
	var seed []*entity.Product
	if seeded {
		seed = memory.SeedProducts(time.Now())
	}
	repo := memory.NewProductRepository(memory.InstantClock(), seed)
	return usecase.NewProductUseCase(repo)
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUC_CreateDerivaStatus(t *testing.T) {
	uc := newProductUC(t, false)

	cases := []struct {
		quantity int
		want     string
	}{
		{0, entity.StatusOutOfStock},
		{5, entity.StatusLowStock},
		{20, entity.StatusInStock},
	}
	for _, tc := range cases {
		out, err := uc.Create(dto.CreateProductRequest{
			Name:     "Panela El Trapiche",
			Category: "Sweeteners",
			Quantity: tc.quantity,
			Price:    decimal.RequireFromString("12.00"),
			Unit:     entity.UnitKg,
			Supplier: "Trapiche SAS",
		})
		require.NoError(t, err)
		assert.Equal(t, tc.want, out.Status, "cantidad %d", tc.quantity)
		assert.NotEmpty(t, out.ID)
	}
}

func TestProductUC_CreateRechazaPrecioNoPositivo(t *testing.T) {
	uc := newProductUC(t, false)

	for _, price := range []string{"0", "-1.50"} {
		_, err := uc.Create(dto.CreateProductRequest{
			Name:     "Producto inválido",
			Category: "Misc",
			Quantity: 1,
			Price:    decimal.RequireFromString(price),
			Unit:     entity.UnitPiece,
			Supplier: "Proveedor",
		})
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "precio %s", price)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUC_UpdateRecalculaStatusConNuevaCantidad(t *testing.T) {
	uc := newProductUC(t, false)
	created, err := uc.Create(dto.CreateProductRequest{
		Name:     "Atun Van Camps",
		Category: "Canned",
		Quantity: 30,
		Price:    decimal.RequireFromString("8.90"),
		Unit:     entity.UnitBox,
		Supplier: "Van Camps",
	})
	require.NoError(t, err)
	require.Equal(t, entity.StatusInStock, created.Status)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Quantity: ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)
	assert.Equal(t, entity.StatusOutOfStock, out.Status,
		"bajar la cantidad a 0 debe derivar out-of-stock")

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOutOfStock, got.Status)
}

func TestProductUC_UpdateSinCantidadNoTocaStatus(t *testing.T) {
	uc := newProductUC(t, false)
	created, err := uc.Create(dto.CreateProductRequest{
		Name:     "Arroz Diana",
		Category: "Grains",
		Quantity: 3,
		Price:    decimal.RequireFromString("4.20"),
		Unit:     entity.UnitBag,
		Supplier: "Arroz Diana SA",
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: ptr("Arroz Diana Premium")})
	require.NoError(t, err)
	assert.Equal(t, "Arroz Diana Premium", out.Name)
	assert.Equal(t, entity.StatusLowStock, out.Status)
	assert.Equal(t, 3, out.Quantity)
}

func TestProductUC_UpdateInexistente(t *testing.T) {
	uc := newProductUC(t, false)

	_, err := uc.Update("no-existe", dto.UpdateProductRequest{Quantity: ptr(1)})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// List / búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUC_ListSinFiltroDevuelveTodo(t *testing.T) {
	uc := newProductUC(t, true)

	out, err := uc.List("")
	require.NoError(t, err)
	assert.Equal(t, 8, out.Total)
	assert.Equal(t, "Tata Tea Premium", out.Items[0].Name, "orden de inserción")
}

func TestProductUC_BusquedaInsensibleAMayusculas(t *testing.T) {
	uc := newProductUC(t, true)

	for _, q := range []string{"rice", "RICE", "Rice"} {
		out, err := uc.List(q)
		require.NoError(t, err)
		require.Equal(t, 1, out.Total, "query %q", q)
		assert.Equal(t, "India Gate Basmati Rice", out.Items[0].Name)
	}
}

func TestProductUC_BusquedaPorCategoriaYProveedor(t *testing.T) {
	uc := newProductUC(t, true)

	// "spices" aparece en la categoría Spices y en el proveedor MDH Spices.
	out, err := uc.List("spices")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)

	// proveedor "ITC Limited"
	out, err = uc.List("itc")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Aashirvaad Atta (Whole Wheat Flour)", out.Items[0].Name)
}

func TestProductUC_BusquedaIgnoraAcentos(t *testing.T) {
	uc := newProductUC(t, false)
	_, err := uc.Create(dto.CreateProductRequest{
		Name:     "Azúcar Manuelita",
		Category: "Sweeteners",
		Quantity: 25,
		Price:    decimal.RequireFromString("3.80"),
		Unit:     entity.UnitKg,
		Supplier: "Manuelita",
	})
	require.NoError(t, err)

	out, err := uc.List("azucar")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
}

func TestProductUC_BusquedaSinCoincidencias(t *testing.T) {
	uc := newProductUC(t, true)

	out, err := uc.List("zzz-no-existe")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
	assert.Empty(t, out.Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUC_DeleteLuegoGetReportaNotFound(t *testing.T) {
	uc := newProductUC(t, true)

	out, err := uc.List("")
	require.NoError(t, err)
	id := out.Items[0].ID

	require.NoError(t, uc.Delete(id))

	_, err = uc.GetByID(id)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	assert.True(t, errors.Is(uc.Delete(id), domain.ErrNotFound))
}
