// Package document holds the order-domain input types for document
// generation. The types carry data only: amounts are displayed as
// stored, never recomputed, and no field is validated. Optional string
// fields use the empty string as "absent" and are skipped by layout.
package document

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gofranz/tradedoc/doc"
)

// Address is a postal address. Name, Company, Street2, Phone and VAT are
// optional.
type Address struct {
	Name    string
	Company string
	Street  string
	Street2 string
	City    string
	State   string
	Zip     string
	Country string
	Phone   string
	VAT     string
}

// LineItem is one order line. Quantity is signed but expected to be
// non-negative; packing lists sum it as-is.
type LineItem struct {
	ID       string
	Title    string
	SKU      string
	Quantity int64

	UnitPrice              decimal.Decimal
	UnitTax                decimal.Decimal
	UnitDiscount           decimal.Decimal
	SubtotalBeforeDiscount decimal.Decimal
	DiscountTotal          decimal.Decimal
	Subtotal               decimal.Decimal
	TaxTotal               decimal.Decimal
	Total                  decimal.Decimal
}

// Order is the document subject. ShippingAddress and BillingAddress are
// owned copies; callers may duplicate the same address into both. The
// caller is the source of truth for the rollup arithmetic
// (Total = Subtotal + ShippingTotal + TaxTotal, and
// Subtotal = SubtotalBeforeDiscount - DiscountTotal).
type Order struct {
	ID              string
	ShippingAddress Address
	BillingAddress  Address
	Currency        string
	Status          string
	ShippingMethod  string

	ShippingTotal          decimal.Decimal
	SubtotalBeforeDiscount decimal.Decimal
	DiscountTotal          decimal.Decimal
	Subtotal               decimal.Decimal
	TaxTotal               decimal.Decimal
	Total                  decimal.Decimal

	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Properties is the caller-facing visual configuration. Zero values mean
// "use the default"; Resolve maps them to concrete values exactly once
// per generation call.
type Properties struct {
	FontNormal    string
	FontBold      string
	Background    *doc.Color
	FontSizeTitle float64
	FontSizeBody  float64
	FontSizeLabel float64
}

// ResolvedProperties is Properties with every field defaulted.
type ResolvedProperties struct {
	FontNormal    string
	FontBold      string
	Background    doc.Color
	FontSizeTitle float64
	FontSizeBody  float64
	FontSizeLabel float64
}

// Defaults applied by Resolve.
const (
	DefaultFontNormal    = "Helvetica"
	DefaultFontBold      = "Helvetica-Bold"
	DefaultFontSizeTitle = 20.0
	DefaultFontSizeBody  = 10.0
	DefaultFontSizeLabel = 10.0
)

// DefaultBackground is the light gray tint used for table header bands.
var DefaultBackground = doc.Color{R: 0.9, G: 0.9, B: 0.9}

// Resolve fills every unset field with its documented default. It is a
// pure total function: a fully populated input comes back unchanged.
func (p Properties) Resolve() ResolvedProperties {
	r := ResolvedProperties{
		FontNormal:    p.FontNormal,
		FontBold:      p.FontBold,
		Background:    DefaultBackground,
		FontSizeTitle: p.FontSizeTitle,
		FontSizeBody:  p.FontSizeBody,
		FontSizeLabel: p.FontSizeLabel,
	}
	if r.FontNormal == "" {
		r.FontNormal = DefaultFontNormal
	}
	if r.FontBold == "" {
		r.FontBold = DefaultFontBold
	}
	if p.Background != nil {
		r.Background = *p.Background
	}
	if r.FontSizeTitle == 0 {
		r.FontSizeTitle = DefaultFontSizeTitle
	}
	if r.FontSizeBody == 0 {
		r.FontSizeBody = DefaultFontSizeBody
	}
	if r.FontSizeLabel == 0 {
		r.FontSizeLabel = DefaultFontSizeLabel
	}
	return r
}
