package usecase

import (
	"context"

	"github.com/jortega/comercio-api/internal/application/dto"
	"github.com/jortega/comercio-api/internal/domain"
	"github.com/jortega/comercio-api/internal/domain/entity"
	"github.com/jortega/comercio-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create registra un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, businessID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Supplier{
		BusinessID:    businessID,
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		PaymentTerms:  in.PaymentTerms,
		Notes:         in.Notes,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// GetByID obtiene un proveedor del negocio.
func (uc *SupplierUseCase) GetByID(ctx context.Context, businessID, id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(s), nil
}

// Update actualiza un proveedor. Campos nulos se dejan como están.
func (uc *SupplierUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.ContactPerson != nil {
		s.ContactPerson = *in.ContactPerson
	}
	if in.Email != nil {
		s.Email = *in.Email
	}
	if in.Phone != nil {
		s.Phone = *in.Phone
	}
	if in.Address != nil {
		s.Address = *in.Address
	}
	if in.PaymentTerms != nil {
		s.PaymentTerms = *in.PaymentTerms
	}
	if in.Notes != nil {
		s.Notes = *in.Notes
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, businessID, id)
}

// Delete marca el proveedor inactivo (borrado lógico).
func (uc *SupplierUseCase) Delete(ctx context.Context, businessID, id string) error {
	return uc.repo.SoftDelete(ctx, businessID, id)
}

// List lista proveedores con búsqueda, orden y paginación por cursor.
func (uc *SupplierUseCase) List(ctx context.Context, businessID string, in dto.ListRequest) (*dto.SupplierListResponse, error) {
	page, err := uc.repo.List(ctx, businessID, queryOptions(in))
	if err != nil {
		return nil, err
	}
	data := make([]dto.SupplierResponse, 0, len(page.Items))
	for _, s := range page.Items {
		data = append(data, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Data: data, Page: pageMeta(page.Cursor, page.HasMore)}, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		PaymentTerms:  s.PaymentTerms,
		Notes:         s.Notes,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
