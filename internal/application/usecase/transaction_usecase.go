package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jortega/comercio-api/internal/application/dto"
	"github.com/jortega/comercio-api/internal/domain"
	"github.com/jortega/comercio-api/internal/domain/entity"
	"github.com/jortega/comercio-api/internal/domain/repository"
)

// TransactionUseCase registra las operaciones del POS. Una venta descuenta
// stock y actualiza los acumulados del cliente en la misma transacción de
// base de datos; si algo falla no queda nada a medias.
type TransactionUseCase struct {
	runner       TxRunner
	txRepo       repository.TransactionRepository
	businessRepo repository.BusinessRepository
	receipts     ReceiptGenerator
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(runner TxRunner, txRepo repository.TransactionRepository, businessRepo repository.BusinessRepository, receipts ReceiptGenerator) *TransactionUseCase {
	return &TransactionUseCase{runner: runner, txRepo: txRepo, businessRepo: businessRepo, receipts: receipts}
}

// RegisterSale registra una venta: congela nombre, SKU y precio de cada
// producto, descuenta stock y acumula puntos del cliente, todo atómico.
func (uc *TransactionUseCase) RegisterSale(ctx context.Context, businessID, employeeID string, in dto.CreateSaleRequest) (*dto.TransactionResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.DiscountAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.Lines {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("producto %s: cantidad inválida: %w", l.ProductID, domain.ErrInvalidInput)
		}
	}

	business, err := uc.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	taxRate := decimal.NewFromFloat(business.TaxRate)

	var sale *entity.Transaction
	err = uc.runner.WithinTx(ctx, func(ctx context.Context, repos TxRepos) error {
		lines := make([]entity.TransactionLine, 0, len(in.Lines))
		subtotal := decimal.Zero

		for _, l := range in.Lines {
			p, err := repos.Products.GetByID(ctx, businessID, l.ProductID)
			if err != nil {
				return err
			}
			if p == nil || !p.IsActive {
				return fmt.Errorf("producto %s: %w", l.ProductID, domain.ErrNotFound)
			}
			if p.StockQuantity < l.Quantity {
				return fmt.Errorf("producto %s: %w", p.SKU, domain.ErrInsufficientStock)
			}

			price := p.Price
			if l.UnitPrice != nil {
				if l.UnitPrice.IsNegative() {
					return domain.ErrInvalidInput
				}
				price = *l.UnitPrice
			}
			total := price.Mul(decimal.NewFromInt(int64(l.Quantity)))
			lines = append(lines, entity.TransactionLine{
				ProductID: p.ID,
				Name:      p.Name,
				SKU:       p.SKU,
				Quantity:  l.Quantity,
				UnitPrice: price,
				TaxRate:   taxRate,
				Total:     total,
			})
			subtotal = subtotal.Add(total)

			p.StockQuantity -= l.Quantity
			if err := repos.Products.Update(ctx, p); err != nil {
				return err
			}
		}

		if in.DiscountAmount.GreaterThan(subtotal) {
			return domain.ErrInvalidInput
		}
		base := subtotal.Sub(in.DiscountAmount)
		tax := base.Mul(taxRate).Div(decimal.NewFromInt(100)).Round(2)
		total := base.Add(tax)

		if in.CustomerID != "" {
			c, err := repos.Customers.GetByID(ctx, businessID, in.CustomerID)
			if err != nil {
				return err
			}
			if c == nil {
				return fmt.Errorf("cliente %s: %w", in.CustomerID, domain.ErrNotFound)
			}
			c.TotalSpent = c.TotalSpent.Add(total)
			c.VisitCount++
			c.LoyaltyPoints += int(total.IntPart())
			if err := repos.Customers.Update(ctx, c); err != nil {
				return err
			}
		}

		sale = &entity.Transaction{
			BusinessID:        businessID,
			TransactionNumber: newTransactionNumber("TXN"),
			EmployeeID:        employeeID,
			CustomerID:        in.CustomerID,
			Type:              entity.TxTypeSale,
			PaymentMethod:     in.PaymentMethod,
			Subtotal:          subtotal,
			TaxAmount:         tax,
			DiscountAmount:    in.DiscountAmount,
			TotalAmount:       total,
			LineItems:         lines,
			Notes:             in.Notes,
		}
		return repos.Transactions.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("business_id", businessID).
		Str("transaction", sale.TransactionNumber).
		Str("total", sale.TotalAmount.String()).
		Msg("venta registrada")
	return toTransactionResponse(sale), nil
}

// RegisterRefund registra una devolución sobre una venta existente y repone
// el stock de las líneas devueltas. Sin líneas explícitas devuelve todo.
func (uc *TransactionUseCase) RegisterRefund(ctx context.Context, businessID, employeeID string, in dto.CreateRefundRequest) (*dto.TransactionResponse, error) {
	original, err := uc.txRepo.GetByID(ctx, businessID, in.TransactionID)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, domain.ErrNotFound
	}
	if original.Type != entity.TxTypeSale {
		return nil, fmt.Errorf("solo se devuelven ventas: %w", domain.ErrConflict)
	}

	lines, err := refundLines(original, in.Lines)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total)
	}
	// Impuesto proporcional a lo devuelto.
	tax := decimal.Zero
	if original.Subtotal.IsPositive() {
		tax = original.TaxAmount.Mul(subtotal).Div(original.Subtotal).Round(2)
	}
	total := subtotal.Add(tax)

	var refund *entity.Transaction
	err = uc.runner.WithinTx(ctx, func(ctx context.Context, repos TxRepos) error {
		for _, l := range lines {
			p, err := repos.Products.GetByID(ctx, businessID, l.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				continue // producto eliminado físicamente: se devuelve sin reponer
			}
			p.StockQuantity += l.Quantity
			if err := repos.Products.Update(ctx, p); err != nil {
				return err
			}
		}
		refund = &entity.Transaction{
			BusinessID:        businessID,
			TransactionNumber: newTransactionNumber("DEV"),
			EmployeeID:        employeeID,
			CustomerID:        original.CustomerID,
			Type:              entity.TxTypeRefund,
			PaymentMethod:     original.PaymentMethod,
			Subtotal:          subtotal,
			TaxAmount:         tax,
			DiscountAmount:    decimal.Zero,
			TotalAmount:       total,
			LineItems:         lines,
			Notes:             strings.TrimSpace("Devolución de " + original.TransactionNumber + ". " + in.Notes),
		}
		return repos.Transactions.Create(ctx, refund)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("business_id", businessID).
		Str("transaction", refund.TransactionNumber).
		Str("original", original.TransactionNumber).
		Msg("devolución registrada")
	return toTransactionResponse(refund), nil
}

// Void anula una venta completa: repone todo el stock y deja constancia como
// transacción nueva de tipo void. La venta original no se toca.
func (uc *TransactionUseCase) Void(ctx context.Context, businessID, employeeID, transactionID, notes string) (*dto.TransactionResponse, error) {
	original, err := uc.txRepo.GetByID(ctx, businessID, transactionID)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, domain.ErrNotFound
	}
	if original.Type != entity.TxTypeSale {
		return nil, fmt.Errorf("solo se anulan ventas: %w", domain.ErrConflict)
	}

	var void *entity.Transaction
	err = uc.runner.WithinTx(ctx, func(ctx context.Context, repos TxRepos) error {
		for _, l := range original.LineItems {
			p, err := repos.Products.GetByID(ctx, businessID, l.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				continue
			}
			p.StockQuantity += l.Quantity
			if err := repos.Products.Update(ctx, p); err != nil {
				return err
			}
		}
		void = &entity.Transaction{
			BusinessID:        businessID,
			TransactionNumber: newTransactionNumber("ANU"),
			EmployeeID:        employeeID,
			CustomerID:        original.CustomerID,
			Type:              entity.TxTypeVoid,
			PaymentMethod:     original.PaymentMethod,
			Subtotal:          original.Subtotal,
			TaxAmount:         original.TaxAmount,
			DiscountAmount:    original.DiscountAmount,
			TotalAmount:       original.TotalAmount,
			LineItems:         original.LineItems,
			Notes:             strings.TrimSpace("Anulación de " + original.TransactionNumber + ". " + notes),
		}
		return repos.Transactions.Create(ctx, void)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(void), nil
}

// GetByID obtiene una transacción del negocio.
func (uc *TransactionUseCase) GetByID(ctx context.Context, businessID, id string) (*dto.TransactionResponse, error) {
	t, err := uc.txRepo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toTransactionResponse(t), nil
}

// List lista transacciones con filtros, orden y paginación por cursor.
func (uc *TransactionUseCase) List(ctx context.Context, businessID string, in dto.ListRequest) (*dto.TransactionListResponse, error) {
	page, err := uc.txRepo.List(ctx, businessID, queryOptions(in))
	if err != nil {
		return nil, err
	}
	data := make([]dto.TransactionResponse, 0, len(page.Items))
	for _, t := range page.Items {
		data = append(data, *toTransactionResponse(t))
	}
	return &dto.TransactionListResponse{Data: data, Page: pageMeta(page.Cursor, page.HasMore)}, nil
}

// Receipt genera el ticket PDF de una transacción. Devuelve los bytes y un
// nombre de archivo sugerido.
func (uc *TransactionUseCase) Receipt(ctx context.Context, businessID, id string) ([]byte, string, error) {
	t, err := uc.txRepo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, "", err
	}
	if t == nil {
		return nil, "", domain.ErrNotFound
	}
	business, err := uc.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, "", err
	}
	if business == nil {
		return nil, "", domain.ErrNotFound
	}
	pdfBytes, err := uc.receipts.GenerateReceipt(ctx, business, t)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, t.TransactionNumber + ".pdf", nil
}

// refundLines resuelve las líneas a devolver: todas las de la venta si no se
// especifican, o un subconjunto validado contra lo vendido.
func refundLines(original *entity.Transaction, requested []dto.SaleLineRequest) ([]entity.TransactionLine, error) {
	if len(requested) == 0 {
		lines := make([]entity.TransactionLine, len(original.LineItems))
		copy(lines, original.LineItems)
		return lines, nil
	}

	sold := make(map[string]entity.TransactionLine, len(original.LineItems))
	for _, l := range original.LineItems {
		sold[l.ProductID] = l
	}

	lines := make([]entity.TransactionLine, 0, len(requested))
	for _, r := range requested {
		l, ok := sold[r.ProductID]
		if !ok {
			return nil, fmt.Errorf("producto %s no está en la venta: %w", r.ProductID, domain.ErrInvalidInput)
		}
		if r.Quantity <= 0 || r.Quantity > l.Quantity {
			return nil, fmt.Errorf("cantidad inválida para %s: %w", l.SKU, domain.ErrInvalidInput)
		}
		l.Quantity = r.Quantity
		l.Total = l.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
		lines = append(lines, l)
	}
	return lines, nil
}

// newTransactionNumber genera un número legible y único: prefijo, fecha y un
// fragmento aleatorio.
func newTransactionNumber(prefix string) string {
	frag := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().UTC().Format("20060102"), frag)
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	lines := make([]dto.TransactionLineResponse, 0, len(t.LineItems))
	for _, l := range t.LineItems {
		lines = append(lines, dto.TransactionLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			SKU:       l.SKU,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			TaxRate:   l.TaxRate,
			Total:     l.Total,
		})
	}
	return &dto.TransactionResponse{
		ID:                t.ID,
		TransactionNumber: t.TransactionNumber,
		EmployeeID:        t.EmployeeID,
		CustomerID:        t.CustomerID,
		Type:              t.Type,
		PaymentMethod:     t.PaymentMethod,
		Subtotal:          t.Subtotal,
		TaxAmount:         t.TaxAmount,
		DiscountAmount:    t.DiscountAmount,
		TotalAmount:       t.TotalAmount,
		LineItems:         lines,
		Notes:             t.Notes,
		CreatedAt:         t.CreatedAt,
	}
}
