package usecase

import (
	"context"
	"time"

	"github.com/jortega/comercio-api/internal/application/dto"
	"github.com/jortega/comercio-api/internal/domain"
	"github.com/jortega/comercio-api/internal/domain/repository"
)

// ReportUseCase reportes de solo lectura del negocio.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// SalesReport resume las ventas en [from, to). Sin rango se toman los
// últimos 30 días.
func (uc *ReportUseCase) SalesReport(ctx context.Context, businessID string, from, to time.Time) (*dto.SalesReportResponse, error) {
	if to.IsZero() {
		to = time.Now().UTC()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	if !from.Before(to) {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.repo.SalesSummary(ctx, businessID, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.SalesReportResponse{
		From:             s.From,
		To:               s.To,
		TransactionCount: s.TransactionCount,
		GrossSales:       s.GrossSales,
		TaxCollected:     s.TaxCollected,
		RefundTotal:      s.RefundTotal,
		NetSales:         s.NetSales,
	}, nil
}

// LowStock lista los productos en o bajo su nivel mínimo de stock.
func (uc *ReportUseCase) LowStock(ctx context.Context, businessID string) (*dto.LowStockResponse, error) {
	products, err := uc.repo.LowStockProducts(ctx, businessID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		data = append(data, *toProductResponse(p))
	}
	return &dto.LowStockResponse{Data: data}, nil
}
