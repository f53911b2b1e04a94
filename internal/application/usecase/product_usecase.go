package usecase

import (
	"context"

	"github.com/jortega/comercio-api/internal/application/dto"
	"github.com/jortega/comercio-api/internal/domain"
	"github.com/jortega/comercio-api/internal/domain/entity"
	"github.com/jortega/comercio-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo de productos. El stock
// baja con las ventas (TransactionUseCase) y se ajusta manualmente por aquí.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. El SKU debe ser único dentro del negocio.
func (uc *ProductUseCase) Create(ctx context.Context, businessID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.CostPrice.IsNegative() || in.StockQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(ctx, businessID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	unit := in.Unit
	if unit == "" {
		unit = "pcs"
	}
	p := &entity.Product{
		BusinessID:    businessID,
		CategoryID:    in.CategoryID,
		Name:          in.Name,
		Description:   in.Description,
		SKU:           in.SKU,
		Barcode:       in.Barcode,
		Price:         in.Price,
		CostPrice:     in.CostPrice,
		StockQuantity: in.StockQuantity,
		MinStockLevel: in.MinStockLevel,
		Unit:          unit,
		Images:        in.Images,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene un producto del negocio.
func (uc *ProductUseCase) GetByID(ctx context.Context, businessID, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// Update actualiza un producto. Campos nulos se dejan como están; cambiar el
// SKU exige que el nuevo no exista en el negocio.
func (uc *ProductUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU != nil && *in.SKU != p.SKU {
		existing, err := uc.repo.GetBySKU(ctx, businessID, *in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		p.SKU = *in.SKU
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Barcode != nil {
		p.Barcode = *in.Barcode
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.Price = *in.Price
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.CostPrice = *in.CostPrice
	}
	if in.StockQuantity != nil {
		if *in.StockQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		p.StockQuantity = *in.StockQuantity
	}
	if in.MinStockLevel != nil {
		p.MinStockLevel = *in.MinStockLevel
	}
	if in.Unit != nil {
		p.Unit = *in.Unit
	}
	if in.Images != nil {
		p.Images = in.Images
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, businessID, id)
}

// AdjustStock aplica un ajuste manual de inventario sobre el stock actual.
// El delta puede ser negativo (merma, rotura) pero nunca puede dejar el
// stock por debajo de cero.
func (uc *ProductUseCase) AdjustStock(ctx context.Context, businessID, id string, in dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	if in.Delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	next := p.StockQuantity + in.Delta
	if next < 0 {
		return nil, domain.ErrInsufficientStock
	}
	p.StockQuantity = next
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, businessID, id)
}

// Delete marca el producto inactivo (borrado lógico): desaparece del catálogo
// pero su historial de ventas queda intacto.
func (uc *ProductUseCase) Delete(ctx context.Context, businessID, id string) error {
	return uc.repo.SoftDelete(ctx, businessID, id)
}

// HardDelete elimina el producto físicamente. Reservado al propietario
// (la capa HTTP lo exige) para descartar altas erróneas.
func (uc *ProductUseCase) HardDelete(ctx context.Context, businessID, id string) error {
	return uc.repo.HardDelete(ctx, businessID, id)
}

// List lista productos con búsqueda, orden y paginación por cursor.
func (uc *ProductUseCase) List(ctx context.Context, businessID string, in dto.ListRequest) (*dto.ProductListResponse, error) {
	page, err := uc.repo.List(ctx, businessID, queryOptions(in))
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, 0, len(page.Items))
	for _, p := range page.Items {
		data = append(data, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Data: data, Page: pageMeta(page.Cursor, page.HasMore)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		Description:   p.Description,
		SKU:           p.SKU,
		Barcode:       p.Barcode,
		Price:         p.Price,
		CostPrice:     p.CostPrice,
		StockQuantity: p.StockQuantity,
		MinStockLevel: p.MinStockLevel,
		Unit:          p.Unit,
		Images:        p.Images,
		LowStock:      p.LowStock(),
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
