package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del POS.
const (
	TxTypeSale   = "sale"
	TxTypeRefund = "refund"
	TxTypeVoid   = "void"
)

// Métodos de pago aceptados.
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentMobile = "mobile"
)

// TransactionLine es una línea de venta dentro de una transacción.
// Name y SKU se copian del producto al momento de la venta: el ticket debe
// reflejar lo vendido aunque el producto cambie después.
type TransactionLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Total     decimal.Decimal `json:"total"` // quantity * unit_price, sin impuesto
}

// Transaction es una operación del POS (venta, devolución o anulación).
// A diferencia del resto de documentos, una transacción registrada nunca se
// edita; una anulación es una transacción nueva de tipo void.
type Transaction struct {
	ID         string    `json:"-"`
	BusinessID string    `json:"-"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
	IsActive   bool      `json:"-"`

	TransactionNumber string            `json:"transaction_number"`
	EmployeeID        string            `json:"employee_id"`
	CustomerID        string            `json:"customer_id,omitempty"`
	Type              string            `json:"transaction_type"` // ver constantes TxType*
	PaymentMethod     string            `json:"payment_method"`
	Subtotal          decimal.Decimal   `json:"subtotal"`
	TaxAmount         decimal.Decimal   `json:"tax_amount"`
	DiscountAmount    decimal.Decimal   `json:"discount_amount"`
	TotalAmount       decimal.Decimal   `json:"total_amount"`
	LineItems         []TransactionLine `json:"line_items"`
	Notes             string            `json:"notes,omitempty"`
}
