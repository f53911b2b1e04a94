package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jortega/comercio-api/internal/domain/document"
	"github.com/jortega/comercio-api/internal/domain/entity"
	"github.com/jortega/comercio-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo resuelve los reportes agregados directo en SQL: los montos
// viven como texto dentro del body y se castean a numeric para sumar sin
// perder precisión (el pool registra el codec de decimales al conectar).
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesSummary agrega las transacciones del negocio en [from, to). Las
// anulaciones (void) no cuentan ni como venta ni como devolución.
func (r *ReportRepo) SalesSummary(ctx context.Context, businessID string, from, to time.Time) (*repository.SalesSummary, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE body->>'transaction_type' = 'sale'),
			COALESCE(SUM((body->>'total_amount')::numeric) FILTER (WHERE body->>'transaction_type' = 'sale'), 0),
			COALESCE(SUM((body->>'tax_amount')::numeric) FILTER (WHERE body->>'transaction_type' = 'sale'), 0),
			COALESCE(SUM((body->>'total_amount')::numeric) FILTER (WHERE body->>'transaction_type' = 'refund'), 0)
		FROM documents
		WHERE collection = $1 AND business_id = $2
		  AND created_at >= $3 AND created_at < $4`

	s := repository.SalesSummary{From: from, To: to}
	err := r.q.QueryRow(ctx, query, document.ColTransactions, businessID, from, to).
		Scan(&s.TransactionCount, &s.GrossSales, &s.TaxCollected, &s.RefundTotal)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	s.NetSales = s.GrossSales.Sub(s.RefundTotal)
	return &s, nil
}

// LowStockProducts devuelve los productos activos en o bajo su nivel mínimo,
// del más crítico (mayor déficit) al menos.
func (r *ReportRepo) LowStockProducts(ctx context.Context, businessID string) ([]*entity.Product, error) {
	query := "SELECT " + docColumns + ` FROM documents
		WHERE collection = $1 AND business_id = $2 AND is_active = TRUE
		  AND (body->>'min_stock_level')::int > 0
		  AND (body->>'stock_quantity')::int <= (body->>'min_stock_level')::int
		ORDER BY (body->>'min_stock_level')::int - (body->>'stock_quantity')::int DESC, id ASC`

	rows, err := r.q.Query(ctx, query, document.ColProducts, businessID)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		var rec document.Record
		if err := rows.Scan(&rec.ID, &rec.BusinessID, &rec.Body, &rec.CreatedAt, &rec.UpdatedAt, &rec.IsActive); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p, err := decodeProduct(&rec)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
