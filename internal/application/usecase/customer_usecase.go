package usecase

import (
	"context"

	"github.com/jortega/comercio-api/internal/application/dto"
	"github.com/jortega/comercio-api/internal/domain"
	"github.com/jortega/comercio-api/internal/domain/entity"
	"github.com/jortega/comercio-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes del negocio.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registra un cliente. Los acumulados arrancan en cero.
func (uc *CustomerUseCase) Create(ctx context.Context, businessID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.FullName == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Customer{
		BusinessID: businessID,
		FullName:   in.FullName,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		Notes:      in.Notes,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// GetByID obtiene un cliente del negocio.
func (uc *CustomerUseCase) GetByID(ctx context.Context, businessID, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(c), nil
}

// Update actualiza los datos de contacto de un cliente. Los acumulados
// (puntos, gasto, visitas) los mueve el registro de ventas, no este método.
func (uc *CustomerUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.FullName != nil {
		c.FullName = *in.FullName
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.Notes != nil {
		c.Notes = *in.Notes
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, businessID, id)
}

// Delete marca el cliente inactivo (borrado lógico).
func (uc *CustomerUseCase) Delete(ctx context.Context, businessID, id string) error {
	return uc.repo.SoftDelete(ctx, businessID, id)
}

// List lista clientes con búsqueda, orden y paginación por cursor.
func (uc *CustomerUseCase) List(ctx context.Context, businessID string, in dto.ListRequest) (*dto.CustomerListResponse, error) {
	page, err := uc.repo.List(ctx, businessID, queryOptions(in))
	if err != nil {
		return nil, err
	}
	data := make([]dto.CustomerResponse, 0, len(page.Items))
	for _, c := range page.Items {
		data = append(data, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Data: data, Page: pageMeta(page.Cursor, page.HasMore)}, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:            c.ID,
		FullName:      c.FullName,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		LoyaltyPoints: c.LoyaltyPoints,
		TotalSpent:    c.TotalSpent,
		VisitCount:    c.VisitCount,
		Notes:         c.Notes,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
