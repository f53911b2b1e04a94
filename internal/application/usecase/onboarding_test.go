package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega/comercio-api/internal/application/usecase"
	"github.com/jortega/comercio-api/internal/domain/document"
	"github.com/jortega/comercio-api/internal/domain/entity"
)

func seedFixture(t *testing.T, businessType string) (usecase.TxRepos, *entity.Business) {
	t.Helper()
	ctx := context.Background()

	repos := usecase.TxRepos{
		Businesses: newFakeBusinessRepo(),
		Employees:  newFakeEmployeeRepo(),
		Categories: newFakeCategoryRepo(),
		Products:   newFakeProductRepo(),
		Suppliers:  newFakeSupplierRepo(),
	}

	business := &entity.Business{
		OwnerUID:     "user-1",
		BusinessName: "Negocio Demo",
		BusinessType: businessType,
	}
	require.NoError(t, repos.Businesses.Create(ctx, business))

	owner := &entity.User{ID: "user-1", Email: "owner@demo.com", FullName: "Dueño Demo"}
	require.NoError(t, usecase.SeedTenant(ctx, repos, business, owner))
	return repos, business
}

// El dueño queda registrado como empleado con rol owner y todos los permisos,
// vinculado a su cuenta de usuario.
func TestSeedTenant_EmpleadoPropietario(t *testing.T) {
	repos, business := seedFixture(t, entity.BusinessTypeFB)
	ctx := context.Background()

	emp, err := repos.Employees.GetByUserUID(ctx, business.ID, "user-1")
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.Equal(t, entity.RoleOwner, emp.Role)
	assert.Equal(t, "Dueño Demo", emp.FullName)
	assert.Equal(t, "Propietario", emp.Position)
	assert.Len(t, emp.Permissions, 5, "el owner recibe todos los permisos")
}

// Un negocio de comidas arranca con Bebidas, Comidas y Postres, y los
// productos semilla quedan colgados de su categoría.
func TestSeedTenant_CatalogoFB(t *testing.T) {
	repos, business := seedFixture(t, entity.BusinessTypeFB)
	ctx := context.Background()

	cats, err := repos.Categories.List(ctx, business.ID, document.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, cats.Items, 3)

	names := map[string]string{}
	for _, c := range cats.Items {
		names[c.Name] = c.ID
	}
	assert.Contains(t, names, "Bebidas")
	assert.Contains(t, names, "Comidas")
	assert.Contains(t, names, "Postres")

	prods, err := repos.Products.List(ctx, business.ID, document.QueryOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, prods.Items)
	for _, p := range prods.Items {
		assert.Equal(t, business.ID, p.BusinessID)
		assert.NotEmpty(t, p.CategoryID, "producto semilla sin categoría: %s", p.SKU)
		assert.NotEmpty(t, p.SKU)
	}
}

// Un negocio de servicios arranca con una sola categoría.
func TestSeedTenant_CatalogoService(t *testing.T) {
	repos, business := seedFixture(t, entity.BusinessTypeService)

	cats, err := repos.Categories.List(context.Background(), business.ID, document.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, cats.Items, 1)
	assert.Equal(t, "Servicios", cats.Items[0].Name)
}

// Siempre queda un proveedor de ejemplo para que la pantalla no arranque vacía.
func TestSeedTenant_ProveedorDeEjemplo(t *testing.T) {
	repos, business := seedFixture(t, entity.BusinessTypeRetail)

	sups, err := repos.Suppliers.List(context.Background(), business.ID, document.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, sups.Items, 1)
	assert.Equal(t, "Proveedor de ejemplo", sups.Items[0].Name)
}
