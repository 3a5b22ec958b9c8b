package layout

import (
	"github.com/gofranz/tradedoc/doc"
	"github.com/gofranz/tradedoc/document"
	"github.com/gofranz/tradedoc/fontkit"
	"github.com/gofranz/tradedoc/i18n"
)

// Invoice geometry. The invoice keeps the logo on the left and the
// title on the right; its meta column starts lower than on the other
// kinds because the from-address block sits higher.
const (
	invLogoX, invLogoY   = 50.0, 790.0
	invTitleX, invTitleY = 420.0, 790.0
	invFromY             = 750.0
	invMetaX             = 350.0
	invMetaNumberY       = 740.0
	invMetaDateY         = 720.0
	invMetaStatusY       = 700.0
	invRuleY             = 630.0
	invAddressY          = 610.0

	itemsGap     = 40.0
	notesGap     = 40.0
	notesTextGap = 15.0
)

// Invoice lays out a tax invoice for order.
func Invoice(order *document.Order, items []document.LineItem, warehouse *document.Address, props document.ResolvedProperties, dict *i18n.Dictionary, fonts *fontkit.Bundle, logo *doc.Image) (*doc.Document, error) {
	if order == nil || warehouse == nil || dict == nil || fonts == nil {
		return nil, errNilInput
	}
	c := newCanvas(props, dict, fonts)

	c.logo(logo, invLogoX, invLogoY)
	c.boldText(invTitleX, invTitleY, props.FontSizeTitle, dict.InvoiceTitle)
	c.address(addressLeftX, invFromY, dict.FromLabel, *warehouse)

	c.text(invMetaX, invMetaNumberY, props.FontSizeBody, dict.InvoiceNumberPrefix+order.ID)
	c.text(invMetaX, invMetaDateY, props.FontSizeBody, dict.DateLabel+" "+order.CreatedAt.Format(dateLayout))
	c.text(invMetaX, invMetaStatusY, props.FontSizeBody, dict.OrderStatusLabel+" "+order.Status)
	c.rule(invRuleY)

	ruleY := c.addresses(invAddressY, dict.ShipToLabel, order.ShippingAddress, dict.BillToLabel, order.BillingAddress)

	y := c.billingItems(order, items, ruleY-itemsGap, billingStyle{totalLabel: dict.TotalLabel})

	if order.Notes != "" {
		y -= notesGap
		c.text(marginLeft, y, props.FontSizeBody, dict.NotesLabel)
		y -= notesTextGap
		c.text(marginLeft, y, props.FontSizeBody, order.Notes)
	}

	return c.document(dict.InvoiceTitle), nil
}
