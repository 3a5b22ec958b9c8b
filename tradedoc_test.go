package tradedoc

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gofranz/tradedoc/document"
	"github.com/gofranz/tradedoc/fontkit"
	"github.com/gofranz/tradedoc/i18n"
	"github.com/gofranz/tradedoc/images"
	"github.com/gofranz/tradedoc/observability"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return d
}

func sampleOrder(t *testing.T) (*document.Order, []document.LineItem, *document.Address) {
	t.Helper()
	addr := document.Address{
		Name:    "Max Mustermann",
		Street:  "Musterstrasse 12",
		City:    "Berlin",
		State:   "BE",
		Zip:     "10115",
		Country: "Germany",
	}
	order := &document.Order{
		ID:              "ORD-1001",
		ShippingAddress: addr,
		BillingAddress:  addr,
		Currency:        "EUR",
		Status:          "paid",
		ShippingMethod:  "DHL Express",

		ShippingTotal:          dec(t, "5.00"),
		SubtotalBeforeDiscount: dec(t, "500.00"),
		DiscountTotal:          dec(t, "50.00"),
		Subtotal:               dec(t, "450.00"),
		TaxTotal:               dec(t, "85.50"),
		Total:                  dec(t, "540.50"),

		CreatedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}
	items := []document.LineItem{
		{ID: "li-1", Title: "Widget", SKU: "WID-01", Quantity: 2,
			UnitPrice: dec(t, "150.00"), DiscountTotal: dec(t, "30.00"),
			TaxTotal: dec(t, "51.30"), Total: dec(t, "321.30")},
		{ID: "li-2", Title: "Gadget", Quantity: 1,
			UnitPrice: dec(t, "200.00"), DiscountTotal: dec(t, "20.00"),
			TaxTotal: dec(t, "34.20"), Total: dec(t, "219.20")},
	}
	warehouse := &document.Address{
		Company: "Gofranz Logistics",
		Street:  "Lagerweg 1",
		City:    "Hamburg",
		State:   "HH",
		Zip:     "20095",
		Country: "Germany",
	}
	return order, items, warehouse
}

func TestGenerateInvoice(t *testing.T) {
	order, items, warehouse := sampleOrder(t)
	dict := i18n.ForLanguage(i18n.English)

	pdf, err := GenerateInvoice(context.Background(), order, items, warehouse, dict, Options{})
	if err != nil {
		t.Fatalf("GenerateInvoice: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Errorf("output does not start with %%PDF-: %.8q", pdf)
	}
}

func TestGenerateAllKinds(t *testing.T) {
	order, items, warehouse := sampleOrder(t)
	dict := i18n.ForLanguage(i18n.German)

	kinds := []struct {
		name string
		gen  func(context.Context, *document.Order, []document.LineItem, *document.Address, *i18n.Dictionary, Options) ([]byte, error)
	}{
		{"invoice", GenerateInvoice},
		{"proforma", GenerateProformaInvoice},
		{"packing", GeneratePackingList},
	}
	for _, k := range kinds {
		t.Run(k.name, func(t *testing.T) {
			pdf, err := k.gen(context.Background(), order, items, warehouse, dict, Options{})
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
				t.Error("not a PDF")
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	order, items, warehouse := sampleOrder(t)
	dict := i18n.ForLanguage(i18n.English)

	a, err := GenerateInvoice(context.Background(), order, items, warehouse, dict, Options{})
	if err != nil {
		t.Fatalf("GenerateInvoice: %v", err)
	}
	b, err := GenerateInvoice(context.Background(), order, items, warehouse, dict, Options{})
	if err != nil {
		t.Fatalf("GenerateInvoice: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical input must produce identical PDFs")
	}
}

func TestGenerateWithSVGLogo(t *testing.T) {
	order, items, warehouse := sampleOrder(t)
	dict := i18n.ForLanguage(i18n.English)
	logo := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 80 24"><rect width="80" height="24" fill="#cc2828"/></svg>`)

	pdf, err := GenerateInvoice(context.Background(), order, items, warehouse, dict, Options{Logo: logo})
	if err != nil {
		t.Fatalf("GenerateInvoice: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Error("not a PDF")
	}
}

func TestGenerateBadLogo(t *testing.T) {
	order, items, warehouse := sampleOrder(t)
	dict := i18n.ForLanguage(i18n.English)

	_, err := GenerateInvoice(context.Background(), order, items, warehouse, dict, Options{Logo: []byte("junk")})
	var de *images.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want wrapped *images.DecodeError", err)
	}
}

func TestGenerateThaiWithoutFonts(t *testing.T) {
	order, items, warehouse := sampleOrder(t)
	dict := i18n.ForLanguage(i18n.Thai)

	_, err := GenerateInvoice(context.Background(), order, items, warehouse, dict, Options{FontDir: t.TempDir()})
	var le *fontkit.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want wrapped *fontkit.LoadError", err)
	}
}

func TestGenerateNilOrder(t *testing.T) {
	_, _, warehouse := sampleOrder(t)
	dict := i18n.ForLanguage(i18n.English)

	if _, err := GenerateInvoice(context.Background(), nil, nil, warehouse, dict, Options{}); err == nil {
		t.Error("nil order must fail")
	}
}

func TestGenerateLogs(t *testing.T) {
	order, items, warehouse := sampleOrder(t)
	dict := i18n.ForLanguage(i18n.English)

	var sb strings.Builder
	_, err := GenerateInvoice(context.Background(), order, items, warehouse, dict, Options{
		Logger: observability.NewTextLogger(&sb),
	})
	if err != nil {
		t.Fatalf("GenerateInvoice: %v", err)
	}
	if !strings.Contains(sb.String(), "document generated") {
		t.Errorf("log output %q missing completion line", sb.String())
	}
}
