package layout

import (
	"strconv"

	"github.com/gofranz/tradedoc/doc"
	"github.com/gofranz/tradedoc/document"
	"github.com/gofranz/tradedoc/fontkit"
	"github.com/gofranz/tradedoc/i18n"
)

// Packing list geometry. The header carries the shipping method in its
// meta column; the right address column shows the return (billing)
// address. Below the table come the hand-filled package info blanks and
// the packer verification block.
const (
	packTitleY           = 820.0
	packLogoX, packLogoY = 420.0, 790.0
	packFromY            = 780.0
	packMetaX            = 350.0
	packMetaNumberY      = 800.0
	packMetaDateY        = 780.0
	packMetaMethodY      = 760.0
	packMetaStatusY      = 740.0
	packRuleY            = 660.0
	packAddressY         = 640.0

	packProductX  = 50.0
	packSKUX      = 300.0
	packQuantityX = 400.0
	packPackedX   = 480.0

	packTitleLimit = 35
	packSKULimit   = 12
	checkboxSize   = 10.0

	packageInfoGap   = 30.0
	packageFieldStep = 18.0
	totalItemsGap    = 20.0
	verificationGap  = 40.0
	verificationStep = 20.0
)

// packNumberPrefix precedes the order id in the meta column.
const packNumberPrefix = "PACK-"

// PackingList lays out a warehouse packing list for order.
func PackingList(order *document.Order, items []document.LineItem, warehouse *document.Address, props document.ResolvedProperties, dict *i18n.Dictionary, fonts *fontkit.Bundle, logo *doc.Image) (*doc.Document, error) {
	if order == nil || warehouse == nil || dict == nil || fonts == nil {
		return nil, errNilInput
	}
	c := newCanvas(props, dict, fonts)

	c.boldText(marginLeft, packTitleY, props.FontSizeTitle, dict.PackingListTitle)
	c.logo(logo, packLogoX, packLogoY)
	c.address(addressLeftX, packFromY, dict.FromLabel, *warehouse)

	c.text(packMetaX, packMetaNumberY, props.FontSizeBody, packNumberPrefix+order.ID)
	c.text(packMetaX, packMetaDateY, props.FontSizeBody, dict.DateLabel+" "+order.CreatedAt.Format(dateLayout))
	c.text(packMetaX, packMetaMethodY, props.FontSizeBody, dict.ShippingMethodLabel+" "+order.ShippingMethod)
	c.text(packMetaX, packMetaStatusY, props.FontSizeBody, dict.OrderStatusLabel+" "+order.Status)
	c.rule(packRuleY)

	ruleY := c.addresses(packAddressY, dict.ShipToLabel, order.ShippingAddress, dict.ReturnAddressLabel, order.BillingAddress)

	y := c.packingItems(items, ruleY-itemsGap)
	c.packingTrailer(items, y)

	return c.document(dict.PackingListTitle), nil
}

// packingItems draws the four-column item table and returns the cursor
// below the last row.
func (c *canvas) packingItems(items []document.LineItem, y float64) float64 {
	c.headerBand(y)
	c.boldText(packProductX, y+tableHeaderLift, c.props.FontSizeLabel, c.dict.ProductHeader)
	c.boldText(packSKUX, y+tableHeaderLift, c.props.FontSizeLabel, c.dict.SKUHeader)
	c.boldText(packQuantityX, y+tableHeaderLift, c.props.FontSizeLabel, c.dict.QuantityHeader)
	c.boldText(packPackedX, y+tableHeaderLift, c.props.FontSizeLabel, c.dict.PackedHeader)

	y -= tableFirstRowDrop

	for _, it := range items {
		c.text(packProductX, y, c.props.FontSizeBody, truncate(it.Title, packTitleLimit))

		sku := it.SKU
		if sku == "" {
			sku = "N/A"
		}
		c.text(packSKUX, y, c.props.FontSizeBody, truncate(sku, packSKULimit))

		qty := strconv.FormatInt(it.Quantity, 10)
		c.text(rightAligned(packQuantityX+35, qty), y, c.props.FontSizeBody, qty)

		c.strokeRect(packPackedX, y, checkboxSize, checkboxSize)

		y -= tableRowStep
	}
	return y
}

// packingTrailer draws the package info blanks, the item count and the
// packer verification block.
func (c *canvas) packingTrailer(items []document.LineItem, y float64) {
	y -= packageInfoGap
	c.boldText(marginLeft, y, c.props.FontSizeLabel, c.dict.PackageInfoTitle)
	y -= totalItemsGap

	fields := []string{
		c.dict.PackageWeightLabel + " ___________",
		c.dict.PackageDimensionsLabel + " L:_____ W:_____ H:_____",
		c.dict.CarrierLabel + " ___________",
		c.dict.TrackingNumberLabel + " ___________",
	}
	for _, field := range fields {
		c.text(marginLeft, y, c.props.FontSizeBody, field)
		y -= packageFieldStep
	}

	y -= totalItemsGap
	var total int64
	for _, it := range items {
		total += it.Quantity
	}
	c.boldText(marginLeft, y, c.props.FontSizeLabel, c.dict.TotalItemsLabel+" "+strconv.FormatInt(total, 10))

	y -= verificationGap
	c.boldText(marginLeft, y, c.props.FontSizeLabel, c.dict.PackerVerificationTitle)
	y -= verificationStep
	c.text(marginLeft, y, c.props.FontSizeBody, c.dict.PackedByLabel+" ___________________ Date: _________ Time: _________")
	y -= verificationStep
	c.text(marginLeft, y, c.props.FontSizeBody, c.dict.SignatureLabel+" ___________________________________")
}
