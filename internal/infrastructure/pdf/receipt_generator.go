// Package pdf implementa la generación del ticket de venta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio │ N° Ticket + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Dirección / Tel / NIT del negocio                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Total                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / Impuesto / TOTAL           │
//	│  Método de pago + leyenda                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jortega/comercio-api/internal/application/usecase"
	"github.com/jortega/comercio-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 60, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ReceiptGenerator = (*ReceiptGenerator)(nil)

// ReceiptGenerator implementa usecase.ReceiptGenerator usando Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// GenerateReceipt genera el ticket PDF de una transacción y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateReceipt(_ context.Context, business *entity.Business, tx *entity.Transaction) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ticket "+tx.TransactionNumber, true).
		WithAuthor(business.BusinessName, true).
		Build()

	fmtMoney := moneyFormatter(business.Currency)

	m := maroto.New(cfg)

	m.AddRows(headerRow(business, tx))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(businessInfoRow(business))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range lineRows(tx.LineItems, fmtMoney) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(tx, fmtMoney))
	m.AddRows(footerRows(tx)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del negocio (izq), número de ticket y fecha (der).
func headerRow(business *entity.Business, tx *entity.Transaction) core.Row {
	title := "TICKET DE VENTA"
	switch tx.Type {
	case entity.TxTypeRefund:
		title = "NOTA DE DEVOLUCIÓN"
	case entity.TxTypeVoid:
		title = "ANULACIÓN"
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(business.BusinessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(tx.TransactionNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+tx.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// businessInfoRow: dirección, teléfono e identificación fiscal del negocio.
func businessInfoRow(business *entity.Business) core.Row {
	parts := make([]string, 0, 3)
	if business.Address != "" {
		parts = append(parts, business.Address)
	}
	if business.Phone != "" {
		parts = append(parts, "Tel: "+business.Phone)
	}
	if business.TaxNumber != "" {
		parts = append(parts, "NIT: "+business.TaxNumber)
	}
	info := "—"
	if len(parts) > 0 {
		info = strings.Join(parts, "   |   ")
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(info, props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// lineRows: una fila por línea de venta, con nombre y SKU congelados al
// momento de la transacción.
func lineRows(items []entity.TransactionLine, fmtMoney func(decimal.Decimal) string) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := it.Name
		if it.SKU != "" {
			name += "  (" + it.SKU + ")"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmtMoney(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				fmtMoney(it.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(tx *entity.Transaction, fmtMoney func(decimal.Decimal) string) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(30).Add(
		col.New(3),
		col.New(4).Add(
			label("Subtotal:"),
			label("Descuento:"),
			label("Impuesto:"),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value(fmtMoney(tx.Subtotal)),
			value(fmtMoney(tx.DiscountAmount)),
			value(fmtMoney(tx.TaxAmount)),
			grandValue(fmtMoney(tx.TotalAmount)),
		),
		col.New(1),
	)
}

// footerRows: método de pago, notas y leyenda de cierre.
func footerRows(tx *entity.Transaction) []core.Row {
	pago := map[string]string{
		entity.PaymentCash:   "Efectivo",
		entity.PaymentCard:   "Tarjeta",
		entity.PaymentMobile: "Pago móvil",
	}[tx.PaymentMethod]
	if pago == "" {
		pago = tx.PaymentMethod
	}

	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Método de pago: "+pago, props.Text{Size: 8, Top: 2, Color: colorGray}),
		)),
	}
	if tx.Notes != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Notas: "+tx.Notes, props.Text{Size: 7, Top: 1, Color: colorGray}),
		)))
	}
	rows = append(rows, row.New(10).Add(col.New(12).Add(
		text.New("¡Gracias por su compra!", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center,
			Color: colorPrimary, Top: 3,
		}),
	)))
	return rows
}

// moneyFormatter devuelve una función de formato monetario con separadores
// de miles según la moneda del negocio (COP y similares sin decimales, el
// resto con dos).
func moneyFormatter(currency string) func(decimal.Decimal) string {
	tag := language.Spanish
	decimals := 2
	switch strings.ToUpper(currency) {
	case "COP", "CLP", "PYG":
		decimals = 0
	case "USD", "CAD":
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return func(d decimal.Decimal) string {
		f, _ := d.Float64()
		return "$" + p.Sprintf("%v", number.Decimal(f,
			number.MinFractionDigits(decimals),
			number.MaxFractionDigits(decimals),
		))
	}
}
