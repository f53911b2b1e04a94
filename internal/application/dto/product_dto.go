package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	CategoryID    string          `json:"category_id"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description"`
	SKU           string          `json:"sku" validate:"required,min=1,max=100"`
	Barcode       string          `json:"barcode"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0"`
	MinStockLevel int             `json:"min_stock_level" validate:"min=0"`
	Unit          string          `json:"unit"`
	Images        []string        `json:"images"`
}

// UpdateProductRequest entrada para actualizar un producto. Campos nulos se
// dejan como están.
type UpdateProductRequest struct {
	CategoryID    *string          `json:"category_id"`
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	SKU           *string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Barcode       *string          `json:"barcode"`
	Price         *decimal.Decimal `json:"price"`
	CostPrice     *decimal.Decimal `json:"cost_price"`
	StockQuantity *int             `json:"stock_quantity" validate:"omitempty,min=0"`
	MinStockLevel *int             `json:"min_stock_level" validate:"omitempty,min=0"`
	Unit          *string          `json:"unit"`
	Images        []string         `json:"images"`
}

// AdjustStockRequest entrada para un ajuste manual de inventario.
// Delta positivo repone (compra, conteo); negativo descuenta (merma, rotura).
type AdjustStockRequest struct {
	Delta  int    `json:"delta" validate:"required"`
	Reason string `json:"reason"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	CategoryID    string          `json:"category_id,omitempty"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	SKU           string          `json:"sku"`
	Barcode       string          `json:"barcode,omitempty"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	StockQuantity int             `json:"stock_quantity"`
	MinStockLevel int             `json:"min_stock_level"`
	Unit          string          `json:"unit"`
	Images        []string        `json:"images,omitempty"`
	LowStock      bool            `json:"low_stock"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Data []ProductResponse `json:"data"`
	Page PageMeta          `json:"page"`
}
