package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es un producto o SKU del catálogo de un negocio.
// El stock se ajusta por ventas y por ajustes manuales de inventario.
type Product struct {
	ID         string    `json:"-"`
	BusinessID string    `json:"-"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
	IsActive   bool      `json:"-"`

	CategoryID    string          `json:"category_id,omitempty"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	SKU           string          `json:"sku"`
	Barcode       string          `json:"barcode,omitempty"`
	Price         decimal.Decimal `json:"price"`      // precio de venta
	CostPrice     decimal.Decimal `json:"cost_price"` // costo de adquisición/producción
	StockQuantity int             `json:"stock_quantity"`
	MinStockLevel int             `json:"min_stock_level"`
	Unit          string          `json:"unit"` // pcs, cup, kg, session...
	Images        []string        `json:"images,omitempty"`
}

// LowStock indica si el producto está en o bajo su nivel mínimo.
func (p Product) LowStock() bool {
	return p.MinStockLevel > 0 && p.StockQuantity <= p.MinStockLevel
}
