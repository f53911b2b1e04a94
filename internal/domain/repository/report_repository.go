package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jortega/comercio-api/internal/domain/entity"
)

// SalesSummary agrega las ventas de un negocio en un rango de fechas.
type SalesSummary struct {
	From             time.Time
	To               time.Time
	TransactionCount int
	GrossSales       decimal.Decimal // suma de total_amount (ventas)
	TaxCollected     decimal.Decimal
	RefundTotal      decimal.Decimal // suma de total_amount (devoluciones)
	NetSales         decimal.Decimal // ventas - devoluciones
}

// ReportRepository define consultas agregadas de solo lectura.
// Se resuelven directo en el backend (no pasan por la capa de documentos).
type ReportRepository interface {
	SalesSummary(ctx context.Context, businessID string, from, to time.Time) (*SalesSummary, error)
	LowStockProducts(ctx context.Context, businessID string) ([]*entity.Product, error)
}
