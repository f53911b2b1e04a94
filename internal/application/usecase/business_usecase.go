package usecase

import (
	"context"

	"github.com/jortega/comercio-api/internal/application/dto"
	"github.com/jortega/comercio-api/internal/domain"
	"github.com/jortega/comercio-api/internal/domain/entity"
	"github.com/jortega/comercio-api/internal/domain/repository"
)

// BusinessUseCase casos de uso del negocio activo (tenant).
type BusinessUseCase struct {
	repo repository.BusinessRepository
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository) *BusinessUseCase {
	return &BusinessUseCase{repo: repo}
}

// Get obtiene el negocio activo de la sesión.
func (uc *BusinessUseCase) Get(ctx context.Context, businessID string) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return ToBusinessResponse(b), nil
}

// Update actualiza la configuración del negocio. Campos nulos no se tocan;
// el tipo de negocio y el propietario no se editan por aquí.
func (uc *BusinessUseCase) Update(ctx context.Context, businessID string, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if in.BusinessName != nil {
		b.BusinessName = *in.BusinessName
	}
	if in.Address != nil {
		b.Address = *in.Address
	}
	if in.Phone != nil {
		b.Phone = *in.Phone
	}
	if in.TaxNumber != nil {
		b.TaxNumber = *in.TaxNumber
	}
	if in.TaxRate != nil {
		if *in.TaxRate < 0 || *in.TaxRate > 100 {
			return nil, domain.ErrInvalidInput
		}
		b.TaxRate = *in.TaxRate
	}
	if in.Currency != nil {
		b.Currency = *in.Currency
	}
	if in.Timezone != nil {
		b.Timezone = *in.Timezone
	}
	if in.EnabledModules != nil {
		b.EnabledModules = in.EnabledModules
	}
	if in.Settings != nil {
		b.Settings = *in.Settings
	}
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return ToBusinessResponse(updated), nil
}

// Deactivate da de baja el negocio (borrado lógico). Los datos quedan en la
// base para auditoría; un negocio inactivo deja de aceptar sesiones.
func (uc *BusinessUseCase) Deactivate(ctx context.Context, businessID string) error {
	b, err := uc.repo.GetByID(ctx, businessID)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(ctx, businessID)
}

// ListByOwner devuelve los negocios del propietario autenticado.
func (uc *BusinessUseCase) ListByOwner(ctx context.Context, ownerUID string) ([]dto.BusinessResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, ownerUID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BusinessResponse, 0, len(list))
	for _, b := range list {
		out = append(out, *ToBusinessResponse(b))
	}
	return out, nil
}

// ToBusinessResponse mapea la entidad a su DTO de salida.
func ToBusinessResponse(b *entity.Business) *dto.BusinessResponse {
	if b == nil {
		return nil
	}
	return &dto.BusinessResponse{
		ID:             b.ID,
		OwnerUID:       b.OwnerUID,
		BusinessName:   b.BusinessName,
		BusinessType:   b.BusinessType,
		Address:        b.Address,
		Phone:          b.Phone,
		TaxNumber:      b.TaxNumber,
		TaxRate:        b.TaxRate,
		Currency:       b.Currency,
		Timezone:       b.Timezone,
		EnabledModules: b.EnabledModules,
		Settings:       b.Settings,
		IsActive:       b.IsActive,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
