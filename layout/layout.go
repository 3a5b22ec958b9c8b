// Package layout computes the drawing operations for the three shipping
// document kinds. Each engine walks a y cursor down a single A4 page in
// PDF user space (origin bottom-left) and emits text, line, rectangle
// and image operations against a shared canvas. Layout never touches
// the PDF writer; it only produces a doc.Document.
//
// All documents are laid out on one page. Orders long enough to
// overflow the page are not paginated; the cursor simply runs past the
// bottom margin.
package layout

import (
	"errors"
	"fmt"

	"github.com/go-text/typesetting/language"
	"github.com/shopspring/decimal"

	"github.com/gofranz/tradedoc/doc"
	"github.com/gofranz/tradedoc/document"
	"github.com/gofranz/tradedoc/fontkit"
	"github.com/gofranz/tradedoc/i18n"
	"github.com/gofranz/tradedoc/textseg"
)

// A4 media size in PDF user-space units.
const (
	PageWidth  = 595.0
	PageHeight = 842.0
)

// LogoWidth and LogoHeight are the layout-unit dimensions every logo is
// scaled to.
const (
	LogoWidth  = 80.0
	LogoHeight = 24.0
)

const (
	marginLeft  = 50.0
	marginRight = 545.0

	addressLineStep    = 12.0
	contactGap         = 8.0
	contactValueIndent = 50.0
	addressLeftX       = 50.0
	addressRightX      = 300.0
	addressRuleGap     = 20.0

	tableBandHeight = 20.0
	tableRowStep    = 20.0

	// numericCharWidth approximates the advance of table digits for
	// right alignment.
	numericCharWidth = 6.0

	dateLayout = "2006-01-02"
)

// totalsRowFill shades the highlighted totals rows.
var totalsRowFill = doc.Color{R: 0.95, G: 0.95, B: 0.95}

var errNilInput = errors.New("layout: order, warehouse and dictionary must be non-nil")

// canvas carries the shared drawing state of one layout pass.
type canvas struct {
	props document.ResolvedProperties
	dict  *i18n.Dictionary
	fonts *fontkit.Bundle
	ops   []doc.Op
}

func newCanvas(props document.ResolvedProperties, dict *i18n.Dictionary, fonts *fontkit.Bundle) *canvas {
	return &canvas{props: props, dict: dict, fonts: fonts}
}

// runs segments s by script and assigns each segment a font: the primary
// face for Thai segments, the fallback face for everything else when the
// bundle carries one.
func (c *canvas) runs(s string, bold bool) []doc.TextRun {
	primary, fallback := c.fonts.Normal, c.fonts.NormalFallback
	if bold {
		primary, fallback = c.fonts.Bold, c.fonts.BoldFallback
	}
	segs := textseg.Segment(s)
	out := make([]doc.TextRun, 0, len(segs))
	for _, seg := range segs {
		font := primary
		if fallback != nil && seg.Script != language.Thai {
			font = fallback
		}
		out = append(out, doc.TextRun{Text: seg.Text, Font: font})
	}
	return out
}

func (c *canvas) text(x, y, size float64, s string) {
	if s == "" {
		return
	}
	c.ops = append(c.ops, doc.TextOp{X: x, Y: y, Size: size, Runs: c.runs(s, false)})
}

func (c *canvas) boldText(x, y, size float64, s string) {
	if s == "" {
		return
	}
	c.ops = append(c.ops, doc.TextOp{X: x, Y: y, Size: size, Runs: c.runs(s, true)})
}

// rule strokes a full-width horizontal separator at y.
func (c *canvas) rule(y float64) {
	c.ops = append(c.ops, doc.LineOp{X1: marginLeft, Y1: y, X2: marginRight, Y2: y, Width: 1})
}

func (c *canvas) fillRect(x, y, w, h float64, fill doc.Color) {
	f := fill
	c.ops = append(c.ops, doc.RectOp{X: x, Y: y, W: w, H: h, Fill: &f})
}

func (c *canvas) strokeRect(x, y, w, h float64) {
	c.ops = append(c.ops, doc.RectOp{X: x, Y: y, W: w, H: h, Stroke: true})
}

// headerBand draws the tinted background band of a table header row.
func (c *canvas) headerBand(y float64) {
	c.fillRect(marginLeft, y, marginRight-marginLeft, tableBandHeight, c.props.Background)
}

func (c *canvas) logo(img *doc.Image, x, y float64) {
	if img == nil {
		return
	}
	c.ops = append(c.ops, doc.ImageOp{Image: img, X: x, Y: y, W: LogoWidth, H: LogoHeight})
}

// address draws one address column headed by title, starting at (x, y),
// and returns the y of the line below the last row. The name, street,
// city and country rows always consume a line even when empty; company
// and street2 are skipped entirely when absent. Phone and VAT follow
// after an extra gap when either is present.
func (c *canvas) address(x, y float64, title string, a document.Address) float64 {
	c.boldText(x, y, c.props.FontSizeLabel, title)
	y -= addressLineStep

	c.text(x, y, c.props.FontSizeBody, a.Name)
	y -= addressLineStep

	if a.Company != "" {
		c.text(x, y, c.props.FontSizeBody, a.Company)
		y -= addressLineStep
	}

	c.text(x, y, c.props.FontSizeBody, a.Street)
	y -= addressLineStep

	if a.Street2 != "" {
		c.text(x, y, c.props.FontSizeBody, a.Street2)
		y -= addressLineStep
	}

	c.text(x, y, c.props.FontSizeBody, fmt.Sprintf("%s, %s %s", a.City, a.State, a.Zip))
	y -= addressLineStep

	c.text(x, y, c.props.FontSizeBody, a.Country)
	y -= addressLineStep

	if a.Phone != "" || a.VAT != "" {
		y -= contactGap
	}
	if a.Phone != "" {
		c.boldText(x, y, c.props.FontSizeLabel, c.dict.PhoneLabel)
		c.text(x+contactValueIndent, y, c.props.FontSizeBody, a.Phone)
		y -= addressLineStep
	}
	if a.VAT != "" {
		c.boldText(x, y, c.props.FontSizeLabel, c.dict.VATLabel)
		c.text(x+contactValueIndent, y, c.props.FontSizeBody, a.VAT)
		y -= addressLineStep
	}
	return y
}

// addresses draws the two-column address block at y and the separator
// rule below it, returning the rule's y.
func (c *canvas) addresses(y float64, leftTitle string, left document.Address, rightTitle string, right document.Address) float64 {
	leftEnd := c.address(addressLeftX, y, leftTitle, left)
	rightEnd := c.address(addressRightX, y, rightTitle, right)

	end := leftEnd
	if rightEnd < end {
		end = rightEnd
	}
	ruleY := end - addressRuleGap
	c.rule(ruleY)
	return ruleY
}

// rightAligned returns the x position that right-aligns s against the
// column edge at right, assuming the fixed table digit width.
func rightAligned(right float64, s string) float64 {
	return right - float64(len(s))*numericCharWidth
}

// truncate caps s at max runes, replacing the overflow with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func formatAmount(amount decimal.Decimal, currency string) string {
	return currency + " " + amount.StringFixed(2)
}

// itemDescription renders a line item as its title plus bracketed SKU.
func itemDescription(it document.LineItem) string {
	if it.SKU == "" {
		return it.Title
	}
	return fmt.Sprintf("%s [%s]", it.Title, it.SKU)
}

// document wraps the accumulated ops in a single-page A4 document.
func (c *canvas) document(title string) *doc.Document {
	return &doc.Document{
		Title:   title,
		Subject: title,
		Creator: "tradedoc",
		Pages: []*doc.Page{{
			Width:  PageWidth,
			Height: PageHeight,
			Ops:    c.ops,
		}},
		Fonts: c.fonts.Fonts(),
	}
}
