package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest línea de una venta: el producto, la cantidad y un precio
// opcional que pisa el del catálogo (promociones manuales).
type SaleLineRequest struct {
	ProductID string           `json:"product_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest entrada para registrar una venta en el POS.
type CreateSaleRequest struct {
	CustomerID     string            `json:"customer_id"`
	PaymentMethod  string            `json:"payment_method" validate:"required,oneof=cash card mobile"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
	Lines          []SaleLineRequest `json:"lines" validate:"required,min=1,dive"`
	Notes          string            `json:"notes"`
}

// CreateRefundRequest entrada para registrar una devolución sobre una venta.
type CreateRefundRequest struct {
	TransactionID string            `json:"transaction_id" validate:"required"`
	Lines         []SaleLineRequest `json:"lines"` // vacío = devolución total
	Notes         string            `json:"notes"`
}

// TransactionLineResponse línea de una transacción.
type TransactionLineResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Total     decimal.Decimal `json:"total"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID                string                    `json:"id"`
	TransactionNumber string                    `json:"transaction_number"`
	EmployeeID        string                    `json:"employee_id"`
	CustomerID        string                    `json:"customer_id,omitempty"`
	Type              string                    `json:"transaction_type"`
	PaymentMethod     string                    `json:"payment_method"`
	Subtotal          decimal.Decimal           `json:"subtotal"`
	TaxAmount         decimal.Decimal           `json:"tax_amount"`
	DiscountAmount    decimal.Decimal           `json:"discount_amount"`
	TotalAmount       decimal.Decimal           `json:"total_amount"`
	LineItems         []TransactionLineResponse `json:"line_items"`
	Notes             string                    `json:"notes,omitempty"`
	CreatedAt         time.Time                 `json:"created_at"`
}

// TransactionListResponse lista paginada de transacciones.
type TransactionListResponse struct {
	Data []TransactionResponse `json:"data"`
	Page PageMeta              `json:"page"`
}
