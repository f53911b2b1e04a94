package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesReportResponse resumen de ventas de un rango de fechas.
type SalesReportResponse struct {
	From             time.Time       `json:"from"`
	To               time.Time       `json:"to"`
	TransactionCount int             `json:"transaction_count"`
	GrossSales       decimal.Decimal `json:"gross_sales"`
	TaxCollected     decimal.Decimal `json:"tax_collected"`
	RefundTotal      decimal.Decimal `json:"refund_total"`
	NetSales         decimal.Decimal `json:"net_sales"`
}

// LowStockResponse productos en o bajo su nivel mínimo de stock.
type LowStockResponse struct {
	Data []ProductResponse `json:"data"`
}

// UploadResponse salida de la subida de una imagen.
type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}
