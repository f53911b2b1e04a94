package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega/comercio-api/internal/application/dto"
	"github.com/jortega/comercio-api/internal/application/usecase"
	"github.com/jortega/comercio-api/internal/domain"
	"github.com/jortega/comercio-api/internal/domain/entity"
)

// posFixture arma un negocio con IVA 10%, dos productos con stock y un
// cliente, todo sobre repos en memoria compartidos por el runner.
type posFixture struct {
	uc        *usecase.TransactionUseCase
	products  *fakeProductRepo
	customers *fakeCustomerRepo
	txns      *fakeTransactionRepo
	business  *entity.Business
	cafe      *entity.Product
	jugo      *entity.Product
	cliente   *entity.Customer
}

func newPOSFixture(t *testing.T) *posFixture {
	t.Helper()
	ctx := context.Background()

	businesses := newFakeBusinessRepo()
	products := newFakeProductRepo()
	customers := newFakeCustomerRepo()
	txns := newFakeTransactionRepo()

	business := &entity.Business{
		OwnerUID:     "user-1",
		BusinessName: "Cafetería Demo",
		BusinessType: entity.BusinessTypeFB,
		Currency:     "COP",
		TaxRate:      10,
	}
	require.NoError(t, businesses.Create(ctx, business))

	cafe := &entity.Product{
		BusinessID:    business.ID,
		Name:          "Café americano",
		SKU:           "BEB-001",
		Price:         decimal.NewFromInt(4500),
		StockQuantity: 10,
		Unit:          "cup",
	}
	require.NoError(t, products.Create(ctx, cafe))

	jugo := &entity.Product{
		BusinessID:    business.ID,
		Name:          "Jugo natural",
		SKU:           "BEB-002",
		Price:         decimal.NewFromInt(6000),
		StockQuantity: 3,
		Unit:          "cup",
	}
	require.NoError(t, products.Create(ctx, jugo))

	cliente := &entity.Customer{BusinessID: business.ID, FullName: "Ana Gómez"}
	require.NoError(t, customers.Create(ctx, cliente))

	runner := &fakeRunner{repos: usecase.TxRepos{
		Businesses:   businesses,
		Products:     products,
		Customers:    customers,
		Transactions: txns,
	}}
	uc := usecase.NewTransactionUseCase(runner, txns, businesses, fakeReceipts{})

	return &posFixture{
		uc: uc, products: products, customers: customers, txns: txns,
		business: business, cafe: cafe, jugo: jugo, cliente: cliente,
	}
}

func (f *posFixture) sell(t *testing.T, in dto.CreateSaleRequest) *dto.TransactionResponse {
	t.Helper()
	resp, err := f.uc.RegisterSale(context.Background(), f.business.ID, "emp-1", in)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterSale
// ──────────────────────────────────────────────────────────────────────────────

// Una venta congela nombre, SKU y precio; descuenta stock; calcula el
// impuesto sobre la base con descuento; y acumula los contadores del cliente.
func TestRegisterSale_VentaCompleta(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()

	resp := f.sell(t, dto.CreateSaleRequest{
		CustomerID:     f.cliente.ID,
		PaymentMethod:  "cash",
		DiscountAmount: decimal.NewFromInt(500),
		Lines: []dto.SaleLineRequest{
			{ProductID: f.cafe.ID, Quantity: 2},
			{ProductID: f.jugo.ID, Quantity: 1},
		},
	})

	// subtotal = 2*4500 + 6000 = 15000; base = 14500; IVA 10% = 1450.
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(15000)), "subtotal: %s", resp.Subtotal)
	assert.True(t, resp.TaxAmount.Equal(decimal.NewFromInt(1450)), "impuesto: %s", resp.TaxAmount)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(15950)), "total: %s", resp.TotalAmount)
	assert.Equal(t, entity.TxTypeSale, resp.Type)
	assert.True(t, strings.HasPrefix(resp.TransactionNumber, "TXN-"))

	require.Len(t, resp.LineItems, 2)
	assert.Equal(t, "Café americano", resp.LineItems[0].Name)
	assert.Equal(t, "BEB-001", resp.LineItems[0].SKU)
	assert.True(t, resp.LineItems[0].UnitPrice.Equal(decimal.NewFromInt(4500)))

	cafe, _ := f.products.GetByID(ctx, f.business.ID, f.cafe.ID)
	assert.Equal(t, 8, cafe.StockQuantity, "la venta debe descontar stock")
	jugo, _ := f.products.GetByID(ctx, f.business.ID, f.jugo.ID)
	assert.Equal(t, 2, jugo.StockQuantity)

	cliente, _ := f.customers.GetByID(ctx, f.business.ID, f.cliente.ID)
	assert.True(t, cliente.TotalSpent.Equal(decimal.NewFromInt(15950)))
	assert.Equal(t, 1, cliente.VisitCount)
	assert.Equal(t, 15950, cliente.LoyaltyPoints)
}

// Stock insuficiente corta la venta con el SKU en el mensaje.
func TestRegisterSale_StockInsuficiente(t *testing.T) {
	f := newPOSFixture(t)

	_, err := f.uc.RegisterSale(context.Background(), f.business.ID, "emp-1", dto.CreateSaleRequest{
		PaymentMethod: "cash",
		Lines:         []dto.SaleLineRequest{{ProductID: f.jugo.ID, Quantity: 99}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "BEB-002")
}

// Un descuento mayor que el subtotal no tiene sentido.
func TestRegisterSale_DescuentoMayorQueSubtotal(t *testing.T) {
	f := newPOSFixture(t)

	_, err := f.uc.RegisterSale(context.Background(), f.business.ID, "emp-1", dto.CreateSaleRequest{
		PaymentMethod:  "cash",
		DiscountAmount: decimal.NewFromInt(1000000),
		Lines:          []dto.SaleLineRequest{{ProductID: f.cafe.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El precio por línea puede sobreescribirse, pero nunca en negativo.
func TestRegisterSale_PrecioOverride(t *testing.T) {
	f := newPOSFixture(t)

	precio := decimal.NewFromInt(4000)
	resp := f.sell(t, dto.CreateSaleRequest{
		PaymentMethod: "card",
		Lines:         []dto.SaleLineRequest{{ProductID: f.cafe.ID, Quantity: 1, UnitPrice: &precio}},
	})
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(4000)))

	negativo := decimal.NewFromInt(-1)
	_, err := f.uc.RegisterSale(context.Background(), f.business.ID, "emp-1", dto.CreateSaleRequest{
		PaymentMethod: "card",
		Lines:         []dto.SaleLineRequest{{ProductID: f.cafe.ID, Quantity: 1, UnitPrice: &negativo}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un producto desactivado no se puede vender.
func TestRegisterSale_ProductoInactivo(t *testing.T) {
	f := newPOSFixture(t)
	require.NoError(t, f.products.SoftDelete(context.Background(), f.business.ID, f.cafe.ID))

	_, err := f.uc.RegisterSale(context.Background(), f.business.ID, "emp-1", dto.CreateSaleRequest{
		PaymentMethod: "cash",
		Lines:         []dto.SaleLineRequest{{ProductID: f.cafe.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Sin líneas no hay venta.
func TestRegisterSale_SinLineas(t *testing.T) {
	f := newPOSFixture(t)
	_, err := f.uc.RegisterSale(context.Background(), f.business.ID, "emp-1", dto.CreateSaleRequest{PaymentMethod: "cash"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Una línea con cantidad negativa o cero se rechaza siempre, incluso si el
// carrito mezclado da un subtotal positivo: de lo contrario la venta sumaría
// stock en vez de descontarlo.
func TestRegisterSale_CantidadInvalida(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()

	_, err := f.uc.RegisterSale(ctx, f.business.ID, "emp-1", dto.CreateSaleRequest{
		PaymentMethod: "cash",
		Lines: []dto.SaleLineRequest{
			{ProductID: f.jugo.ID, Quantity: 3},
			{ProductID: f.cafe.ID, Quantity: -2},
		},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	cafe, _ := f.products.GetByID(ctx, f.business.ID, f.cafe.ID)
	assert.Equal(t, 10, cafe.StockQuantity, "el stock no debe tocarse")
	jugo, _ := f.products.GetByID(ctx, f.business.ID, f.jugo.ID)
	assert.Equal(t, 3, jugo.StockQuantity)

	_, err = f.uc.RegisterSale(ctx, f.business.ID, "emp-1", dto.CreateSaleRequest{
		PaymentMethod: "cash",
		Lines:         []dto.SaleLineRequest{{ProductID: f.cafe.ID, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterRefund
// ──────────────────────────────────────────────────────────────────────────────

// Devolución parcial: repone solo lo devuelto y el impuesto es proporcional
// a la parte devuelta de la venta original.
func TestRegisterRefund_Parcial(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()

	sale := f.sell(t, dto.CreateSaleRequest{
		PaymentMethod: "cash",
		Lines: []dto.SaleLineRequest{
			{ProductID: f.cafe.ID, Quantity: 2},
			{ProductID: f.jugo.ID, Quantity: 1},
		},
	})

	refund, err := f.uc.RegisterRefund(ctx, f.business.ID, "emp-2", dto.CreateRefundRequest{
		TransactionID: sale.ID,
		Lines:         []dto.SaleLineRequest{{ProductID: f.cafe.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TxTypeRefund, refund.Type)
	assert.True(t, strings.HasPrefix(refund.TransactionNumber, "DEV-"))
	assert.Contains(t, refund.Notes, "Devolución de "+sale.TransactionNumber)

	// Se devuelve 4500 de un subtotal de 15000 con IVA 1500: proporcional 450.
	assert.True(t, refund.Subtotal.Equal(decimal.NewFromInt(4500)), "subtotal: %s", refund.Subtotal)
	assert.True(t, refund.TaxAmount.Equal(decimal.NewFromInt(450)), "impuesto: %s", refund.TaxAmount)

	cafe, _ := f.products.GetByID(ctx, f.business.ID, f.cafe.ID)
	assert.Equal(t, 9, cafe.StockQuantity, "vendió 2 y devolvió 1")
	jugo, _ := f.products.GetByID(ctx, f.business.ID, f.jugo.ID)
	assert.Equal(t, 2, jugo.StockQuantity, "el jugo no se devolvió")
}

// Sin líneas explícitas la devolución es total.
func TestRegisterRefund_TotalPorDefecto(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()

	sale := f.sell(t, dto.CreateSaleRequest{
		PaymentMethod: "cash",
		Lines:         []dto.SaleLineRequest{{ProductID: f.cafe.ID, Quantity: 3}},
	})

	refund, err := f.uc.RegisterRefund(ctx, f.business.ID, "emp-2", dto.CreateRefundRequest{TransactionID: sale.ID})
	require.NoError(t, err)
	assert.True(t, refund.Subtotal.Equal(sale.Subtotal))

	cafe, _ := f.products.GetByID(ctx, f.business.ID, f.cafe.ID)
	assert.Equal(t, 10, cafe.StockQuantity, "todo el stock vendido debe reponerse")
}

// No se puede devolver más de lo vendido ni productos ajenos a la venta.
func TestRegisterRefund_LineasInvalidas(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()

	sale := f.sell(t, dto.CreateSaleRequest{
		PaymentMethod: "cash",
		Lines:         []dto.SaleLineRequest{{ProductID: f.cafe.ID, Quantity: 2}},
	})

	_, err := f.uc.RegisterRefund(ctx, f.business.ID, "emp-2", dto.CreateRefundRequest{
		TransactionID: sale.ID,
		Lines:         []dto.SaleLineRequest{{ProductID: f.cafe.ID, Quantity: 5}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad mayor a la vendida")

	_, err = f.uc.RegisterRefund(ctx, f.business.ID, "emp-2", dto.CreateRefundRequest{
		TransactionID: sale.ID,
		Lines:         []dto.SaleLineRequest{{ProductID: f.jugo.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "producto que no está en la venta")
}

// Una devolución no se devuelve: solo las ventas admiten refund.
func TestRegisterRefund_SoloVentas(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()

	sale := f.sell(t, dto.CreateSaleRequest{
		PaymentMethod: "cash",
		Lines:         []dto.SaleLineRequest{{ProductID: f.cafe.ID, Quantity: 1}},
	})
	refund, err := f.uc.RegisterRefund(ctx, f.business.ID, "emp-2", dto.CreateRefundRequest{TransactionID: sale.ID})
	require.NoError(t, err)

	_, err = f.uc.RegisterRefund(ctx, f.business.ID, "emp-2", dto.CreateRefundRequest{TransactionID: refund.ID})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Void
// ──────────────────────────────────────────────────────────────────────────────

// Anular repone todo el stock y deja constancia como transacción nueva;
// la venta original no se toca.
func TestVoid_ReponeTodoElStock(t *testing.T) {
	f := newPOSFixture(t)
	ctx := context.Background()

	sale := f.sell(t, dto.CreateSaleRequest{
		PaymentMethod: "cash",
		Lines: []dto.SaleLineRequest{
			{ProductID: f.cafe.ID, Quantity: 4},
			{ProductID: f.jugo.ID, Quantity: 2},
		},
	})

	void, err := f.uc.Void(ctx, f.business.ID, "emp-1", sale.ID, "cobro equivocado")
	require.NoError(t, err)

	assert.Equal(t, entity.TxTypeVoid, void.Type)
	assert.True(t, strings.HasPrefix(void.TransactionNumber, "ANU-"))
	assert.Contains(t, void.Notes, "Anulación de "+sale.TransactionNumber)
	assert.Contains(t, void.Notes, "cobro equivocado")
	assert.True(t, void.TotalAmount.Equal(sale.TotalAmount))

	cafe, _ := f.products.GetByID(ctx, f.business.ID, f.cafe.ID)
	assert.Equal(t, 10, cafe.StockQuantity)
	jugo, _ := f.products.GetByID(ctx, f.business.ID, f.jugo.ID)
	assert.Equal(t, 3, jugo.StockQuantity)

	original, err := f.uc.GetByID(ctx, f.business.ID, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TxTypeSale, original.Type, "la venta original queda intacta")
}

func TestVoid_TransaccionInexistente(t *testing.T) {
	f := newPOSFixture(t)
	_, err := f.uc.Void(context.Background(), f.business.ID, "emp-1", "no-existe", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Receipt
// ──────────────────────────────────────────────────────────────────────────────

func TestReceipt_DevuelvePDFYNombre(t *testing.T) {
	f := newPOSFixture(t)

	sale := f.sell(t, dto.CreateSaleRequest{
		PaymentMethod: "cash",
		Lines:         []dto.SaleLineRequest{{ProductID: f.cafe.ID, Quantity: 1}},
	})

	pdf, filename, err := f.uc.Receipt(context.Background(), f.business.ID, sale.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, sale.TransactionNumber+".pdf", filename)
}
