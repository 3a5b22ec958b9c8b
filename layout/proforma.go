package layout

import (
	"github.com/gofranz/tradedoc/doc"
	"github.com/gofranz/tradedoc/document"
	"github.com/gofranz/tradedoc/fontkit"
	"github.com/gofranz/tradedoc/i18n"
)

// Proforma invoice geometry. Title top-left, logo top-right, and a
// four-line meta column ending in the bold estimate notice.
const (
	proTitleY          = 820.0
	proLogoX, proLogoY = 420.0, 790.0
	proFromY           = 780.0
	proMetaX           = 350.0
	proMetaNumberY     = 800.0
	proMetaDateY       = 780.0
	proMetaStatusY     = 760.0
	proMetaNoticeY     = 740.0
	proRuleY           = 660.0
	proAddressY        = 640.0
	proHeaderInset     = 20.0
	proFooterGap       = 40.0
	proNotesGap        = 25.0
)

// proNumberPrefix marks the document number as non-fiscal across all
// languages.
const proNumberPrefix = "PROFORMA-"

// ProformaInvoice lays out a proforma (estimate) invoice for order.
func ProformaInvoice(order *document.Order, items []document.LineItem, warehouse *document.Address, props document.ResolvedProperties, dict *i18n.Dictionary, fonts *fontkit.Bundle, logo *doc.Image) (*doc.Document, error) {
	if order == nil || warehouse == nil || dict == nil || fonts == nil {
		return nil, errNilInput
	}
	c := newCanvas(props, dict, fonts)

	c.boldText(marginLeft, proTitleY, props.FontSizeTitle, dict.ProformaInvoiceTitle)
	c.logo(logo, proLogoX, proLogoY)
	c.address(addressLeftX, proFromY, dict.FromLabel, *warehouse)

	c.text(proMetaX, proMetaNumberY, props.FontSizeBody, proNumberPrefix+order.ID)
	c.text(proMetaX, proMetaDateY, props.FontSizeBody, dict.DateLabel+" "+order.CreatedAt.Format(dateLayout))
	c.text(proMetaX, proMetaStatusY, props.FontSizeBody, dict.OrderStatusLabel+" "+order.Status)
	c.boldText(proMetaX, proMetaNoticeY, props.FontSizeBody, dict.ProformaNotice)
	c.rule(proRuleY)

	ruleY := c.addresses(proAddressY, dict.ShipToLabel, order.ShippingAddress, dict.BillToLabel, order.BillingAddress)

	y := c.billingItems(order, items, ruleY-itemsGap, billingStyle{
		headerInset: proHeaderInset,
		totalLabel:  dict.EstimatedTotalLabel,
	})

	y -= proFooterGap
	c.boldText(marginLeft, y, props.FontSizeBody, dict.ProformaFooterNotice)

	if order.Notes != "" {
		y -= proNotesGap
		c.text(marginLeft, y, props.FontSizeBody, dict.NotesLabel)
		y -= notesTextGap
		c.text(marginLeft, y, props.FontSizeBody, order.Notes)
	}

	return c.document(dict.ProformaInvoiceTitle), nil
}
