package usecase

import (
	"context"

	"github.com/jortega/comercio-api/internal/application/dto"
	"github.com/jortega/comercio-api/internal/domain"
	"github.com/jortega/comercio-api/internal/domain/entity"
	"github.com/jortega/comercio-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías de producto.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría.
func (uc *CategoryUseCase) Create(ctx context.Context, businessID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Category{
		BusinessID:  businessID,
		Name:        in.Name,
		Description: in.Description,
		ColorCode:   in.ColorCode,
		SortOrder:   in.SortOrder,
		ParentID:    in.ParentID,
		ImageURL:    in.ImageURL,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// GetByID obtiene una categoría del negocio.
func (uc *CategoryUseCase) GetByID(ctx context.Context, businessID, id string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(c), nil
}

// Update actualiza una categoría. Campos nulos se dejan como están.
func (uc *CategoryUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.ColorCode != nil {
		c.ColorCode = *in.ColorCode
	}
	if in.SortOrder != nil {
		c.SortOrder = *in.SortOrder
	}
	if in.ParentID != nil {
		c.ParentID = *in.ParentID
	}
	if in.ImageURL != nil {
		c.ImageURL = *in.ImageURL
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, businessID, id)
}

// Delete marca la categoría inactiva (borrado lógico). Los productos que la
// referencian conservan el category_id.
func (uc *CategoryUseCase) Delete(ctx context.Context, businessID, id string) error {
	return uc.repo.SoftDelete(ctx, businessID, id)
}

// List lista categorías con búsqueda, orden y paginación por cursor.
func (uc *CategoryUseCase) List(ctx context.Context, businessID string, in dto.ListRequest) (*dto.CategoryListResponse, error) {
	page, err := uc.repo.List(ctx, businessID, queryOptions(in))
	if err != nil {
		return nil, err
	}
	data := make([]dto.CategoryResponse, 0, len(page.Items))
	for _, c := range page.Items {
		data = append(data, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Data: data, Page: pageMeta(page.Cursor, page.HasMore)}, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ColorCode:   c.ColorCode,
		SortOrder:   c.SortOrder,
		ParentID:    c.ParentID,
		ImageURL:    c.ImageURL,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
