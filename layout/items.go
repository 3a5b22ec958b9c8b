package layout

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/gofranz/tradedoc/document"
)

// Six-column grid shared by the invoice and proforma invoice tables.
// Column positions are the left edges of the header labels; numeric
// cells right-align against a fixed edge inside each column.
const (
	colProductX   = 50.0
	colQuantityX  = 230.0
	colUnitPriceX = 280.0
	colDiscountX  = 350.0
	colTaxX       = 420.0
	colTotalX     = 490.0

	quantityRightEdge = colQuantityX + 35
	amountRightInset  = 45.0

	billingDescLimit = 25

	tableHeaderLift   = 5.0
	tableFirstRowDrop = 25.0

	totalsRectX     = colTaxX - 70
	totalsLabelX    = colTaxX - 65
	totalsRowWidth  = 215.0
	totalsRowHeight = 15.0
	totalsTextLift  = 2.0
)

// billingStyle is where the proforma table deviates from the invoice
// one: its amount headers sit 20 units further left and the grand-total
// rows are labelled as estimates.
type billingStyle struct {
	headerInset float64
	totalLabel  string
}

// billingItems draws the item table and the shaded totals block, and
// returns the cursor below the last totals row.
func (c *canvas) billingItems(order *document.Order, items []document.LineItem, y float64, style billingStyle) float64 {
	c.headerBand(y)
	c.boldText(colProductX, y+tableHeaderLift, c.props.FontSizeLabel, c.dict.ProductHeader)
	c.boldText(colQuantityX, y+tableHeaderLift, c.props.FontSizeLabel, c.dict.QuantityHeader)
	c.boldText(colUnitPriceX-style.headerInset, y+tableHeaderLift, c.props.FontSizeLabel, c.dict.UnitPriceHeader)
	c.boldText(colDiscountX-style.headerInset, y+tableHeaderLift, c.props.FontSizeLabel, c.dict.DiscountLabel)
	c.boldText(colTaxX-style.headerInset, y+tableHeaderLift, c.props.FontSizeLabel, c.dict.TaxLabel)
	c.boldText(colTotalX-style.headerInset, y+tableHeaderLift, c.props.FontSizeLabel, style.totalLabel)

	y -= tableFirstRowDrop

	for _, it := range items {
		c.text(colProductX, y, c.props.FontSizeBody, truncate(itemDescription(it), billingDescLimit))

		qty := strconv.FormatInt(it.Quantity, 10)
		c.text(rightAligned(quantityRightEdge, qty), y, c.props.FontSizeBody, qty)

		cells := []struct {
			right  float64
			amount decimal.Decimal
		}{
			{colUnitPriceX + amountRightInset, it.UnitPrice},
			{colDiscountX + amountRightInset, it.DiscountTotal},
			{colTaxX + amountRightInset, it.TaxTotal},
			{colTotalX + amountRightInset, it.Total},
		}
		for _, cell := range cells {
			s := formatAmount(cell.amount, order.Currency)
			c.text(rightAligned(cell.right, s), y, c.props.FontSizeBody, s)
		}

		y -= tableRowStep
	}

	y -= tableRowStep

	totals := []struct {
		label  string
		amount decimal.Decimal
	}{
		{c.dict.SubtotalBeforeDiscountLabel, order.SubtotalBeforeDiscount},
		{c.dict.DiscountLabel, order.DiscountTotal},
		{c.dict.SubtotalLabel, order.Subtotal},
		{c.dict.ShippingLabel, order.ShippingTotal},
		{c.dict.TaxLabel, order.TaxTotal},
		{style.totalLabel, order.Total},
	}
	for _, row := range totals {
		y -= tableRowStep
		c.fillRect(totalsRectX, y, totalsRowWidth, totalsRowHeight, totalsRowFill)
		c.boldText(totalsLabelX, y+totalsTextLift, c.props.FontSizeBody, row.label)

		s := formatAmount(row.amount, order.Currency)
		c.text(rightAligned(colTotalX+amountRightInset, s), y+totalsTextLift, c.props.FontSizeBody, s)
	}
	return y
}
