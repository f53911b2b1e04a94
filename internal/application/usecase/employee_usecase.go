package usecase

import (
	"context"
	"strings"

	"github.com/jortega/comercio-api/internal/application/dto"
	"github.com/jortega/comercio-api/internal/domain"
	"github.com/jortega/comercio-api/internal/domain/entity"
	"github.com/jortega/comercio-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados del negocio.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create registra un empleado nuevo.
func (uc *EmployeeUseCase) Create(ctx context.Context, businessID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.FullName == "" || in.Email == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	e := &entity.Employee{
		BusinessID:  businessID,
		FullName:    in.FullName,
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:       in.Phone,
		Role:        in.Role,
		Permissions: in.Permissions,
		HourlyRate:  in.HourlyRate,
		Position:    in.Position,
		PinCode:     in.PinCode,
	}
	if e.Permissions == nil {
		e.Permissions = defaultPermissions(e.Role)
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// GetByID obtiene un empleado del negocio.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, businessID, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(e), nil
}

// Update actualiza un empleado. Campos nulos se dejan como están.
func (uc *EmployeeUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.FullName != nil {
		e.FullName = *in.FullName
	}
	if in.Email != nil {
		e.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Phone != nil {
		e.Phone = *in.Phone
	}
	if in.Role != nil {
		e.Role = *in.Role
	}
	if in.Permissions != nil {
		e.Permissions = in.Permissions
	}
	if in.HourlyRate != nil {
		e.HourlyRate = *in.HourlyRate
	}
	if in.Position != nil {
		e.Position = *in.Position
	}
	if in.PinCode != nil {
		e.PinCode = *in.PinCode
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, businessID, id)
}

// Delete marca el empleado inactivo (borrado lógico).
func (uc *EmployeeUseCase) Delete(ctx context.Context, businessID, id string) error {
	return uc.repo.SoftDelete(ctx, businessID, id)
}

// List lista empleados con búsqueda, orden y paginación por cursor.
func (uc *EmployeeUseCase) List(ctx context.Context, businessID string, in dto.ListRequest) (*dto.EmployeeListResponse, error) {
	page, err := uc.repo.List(ctx, businessID, queryOptions(in))
	if err != nil {
		return nil, err
	}
	data := make([]dto.EmployeeResponse, 0, len(page.Items))
	for _, e := range page.Items {
		data = append(data, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{Data: data, Page: pageMeta(page.Cursor, page.HasMore)}, nil
}

// defaultPermissions asigna los permisos estándar según el rol.
func defaultPermissions(role string) []string {
	switch role {
	case entity.RoleOwner:
		return []string{entity.PermPOS, entity.PermInventory, entity.PermReports, entity.PermEmployees, entity.PermSettings}
	case entity.RoleManager:
		return []string{entity.PermPOS, entity.PermInventory, entity.PermReports, entity.PermEmployees}
	case entity.RoleCashier:
		return []string{entity.PermPOS}
	default:
		return []string{entity.PermPOS, entity.PermInventory}
	}
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:          e.ID,
		UserUID:     e.UserUID,
		FullName:    e.FullName,
		Email:       e.Email,
		Phone:       e.Phone,
		Role:        e.Role,
		Permissions: e.Permissions,
		HourlyRate:  e.HourlyRate,
		Position:    e.Position,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
