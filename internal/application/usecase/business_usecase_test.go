package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega/comercio-api/internal/application/usecase"
	"github.com/jortega/comercio-api/internal/domain"
	"github.com/jortega/comercio-api/internal/domain/entity"
)

func newBusinessUC() (*usecase.BusinessUseCase, *fakeBusinessRepo) {
	repo := newFakeBusinessRepo()
	return usecase.NewBusinessUseCase(repo), repo
}

// La baja de un negocio es lógica: el registro se conserva pero queda
// inactivo y desaparece de la lista de negocios del propietario.
func TestBusinessDeactivate_EsLogico(t *testing.T) {
	uc, repo := newBusinessUC()
	ctx := context.Background()

	b := &entity.Business{OwnerUID: "user-1", BusinessName: "Cafetería Central", BusinessType: entity.BusinessTypeFB}
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, uc.Deactivate(ctx, b.ID))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got, "el registro sigue existiendo")
	assert.False(t, got.IsActive)

	mine, err := uc.ListByOwner(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, mine, "un negocio dado de baja no se lista")
}

func TestBusinessDeactivate_NoExiste(t *testing.T) {
	uc, _ := newBusinessUC()
	err := uc.Deactivate(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
