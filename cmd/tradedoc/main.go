// Command tradedoc generates a sample shipping document PDF in any of
// the supported languages.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gofranz/tradedoc"
	"github.com/gofranz/tradedoc/document"
	"github.com/gofranz/tradedoc/i18n"
	"github.com/gofranz/tradedoc/observability"
)

type options struct {
	kind       string
	language   i18n.Language
	out        string
	logoPath   string
	fontDir    string
	fontNormal string
	fontBold   string
	orderID    string
	verbose    bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tradedoc: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "tradedoc: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: tradedoc [flags] {invoice|proforma-invoice|packing-list}\n")
		flag.PrintDefaults()
	}
	language := flag.String("language", "en", "Document language (en, de, fr, es, pt, th, it)")
	out := flag.String("out", "", "Output file (default sample_<kind>[_<lang>].pdf)")
	logoPath := flag.String("logo", "", "Logo file (SVG, PNG, JPEG or GIF)")
	fontDir := flag.String("font-dir", "", "Directory with the Noto font files (Thai)")
	fontNormal := flag.String("font-normal", "", "Custom TTF for body text")
	fontBold := flag.String("font-bold", "", "Custom TTF for bold text")
	orderID := flag.String("order-id", "", "Order id for the sample order")
	verbose := flag.Bool("verbose", false, "Log generation steps")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return options{}, fmt.Errorf("missing document kind")
	}
	opts.kind = flag.Arg(0)

	lang, ok := i18n.Parse(*language)
	if !ok {
		return options{}, fmt.Errorf("unsupported language %q (supported: en, de, fr, es, pt, th, it)", *language)
	}
	opts.language = lang
	opts.out = *out
	opts.logoPath = *logoPath
	opts.fontDir = *fontDir
	opts.fontNormal = *fontNormal
	opts.fontBold = *fontBold
	opts.orderID = *orderID
	opts.verbose = *verbose
	return opts, nil
}

func run(opts options) error {
	generators := map[string]func(context.Context, *document.Order, []document.LineItem, *document.Address, *i18n.Dictionary, tradedoc.Options) ([]byte, error){
		"invoice":          tradedoc.GenerateInvoice,
		"proforma-invoice": tradedoc.GenerateProformaInvoice,
		"packing-list":     tradedoc.GeneratePackingList,
	}
	generate, ok := generators[opts.kind]
	if !ok {
		return fmt.Errorf("unknown document kind %q", opts.kind)
	}

	orderID := opts.orderID
	if orderID == "" {
		orderID = "ORD-" + uuid.NewString()[:8]
	}
	order, items, warehouse := sampleData(orderID)

	genOpts := tradedoc.Options{
		FontDir:        opts.fontDir,
		FontNormalPath: opts.fontNormal,
		FontBoldPath:   opts.fontBold,
	}
	if opts.verbose {
		genOpts.Logger = observability.NewTextLogger(os.Stderr)
	}
	if opts.logoPath != "" {
		logo, err := os.ReadFile(opts.logoPath)
		if err != nil {
			return fmt.Errorf("read logo: %w", err)
		}
		genOpts.Logo = logo
	}

	dict := i18n.ForLanguage(opts.language)
	pdf, err := generate(context.Background(), order, items, warehouse, dict, genOpts)
	if err != nil {
		return err
	}

	out := opts.out
	if out == "" {
		out = outputName(opts.kind, opts.language)
	}
	if err := os.WriteFile(out, pdf, 0o644); err != nil {
		return err
	}
	fmt.Printf("PDF %s has been generated as %q\n", opts.kind, out)
	return nil
}

func outputName(kind string, lang i18n.Language) string {
	base := map[string]string{
		"invoice":          "sample_invoice",
		"proforma-invoice": "sample_proforma_invoice",
		"packing-list":     "sample_packing_list",
	}[kind]
	if lang == i18n.English {
		return base + ".pdf"
	}
	return fmt.Sprintf("%s_%s.pdf", base, lang.Code())
}

func dec(value int64) decimal.Decimal { return decimal.New(value, -2) }

func sampleAddress(name string) document.Address {
	return document.Address{
		Name:    name,
		Company: "Sample Company GmbH",
		Street:  "Musterstraße 123",
		Street2: "4. Etage",
		City:    "Frankfurt am Main",
		State:   "Hesse",
		Zip:     "60311",
		Country: "Germany",
		Phone:   "+49 69 123 456 789",
		VAT:     "DE123456789",
	}
}

func sampleData(orderID string) (*document.Order, []document.LineItem, *document.Address) {
	created := time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC)
	order := &document.Order{
		ID:              orderID,
		ShippingAddress: sampleAddress("John Doe"),
		BillingAddress:  sampleAddress("Jane Doe"),
		Currency:        "€",
		Status:          "Completed",
		ShippingMethod:  "Express",

		ShippingTotal:          dec(1500),
		SubtotalBeforeDiscount: dec(50000),
		DiscountTotal:          dec(5000),
		Subtotal:               dec(45000),
		TaxTotal:               dec(9000),
		Total:                  dec(55500),

		Notes:     "Vielen Dank für Ihr Vertrauen!",
		CreatedAt: created,
		UpdatedAt: created,
	}

	items := []document.LineItem{
		{
			ID:                     "ITEM1",
			Title:                  "Premium Widget",
			SKU:                    "WDG-001",
			Quantity:               2,
			UnitPrice:              dec(15000),
			UnitTax:                dec(3000),
			UnitDiscount:           dec(1500),
			SubtotalBeforeDiscount: dec(30000),
			DiscountTotal:          dec(3000),
			Subtotal:               dec(27000),
			TaxTotal:               dec(5400),
			Total:                  dec(32400),
		},
		{
			ID:                     "ITEM2",
			Title:                  "Basic Gadget",
			SKU:                    "GDG-001",
			Quantity:               1,
			UnitPrice:              dec(20000),
			UnitTax:                dec(4000),
			UnitDiscount:           dec(2000),
			SubtotalBeforeDiscount: dec(20000),
			DiscountTotal:          dec(2000),
			Subtotal:               dec(18000),
			TaxTotal:               dec(3600),
			Total:                  dec(21600),
		},
	}

	warehouse := &document.Address{
		Company: "Hauptlager GmbH",
		Street:  "Lagerstraße 789",
		City:    "Frankfurt am Main",
		State:   "Hesse",
		Zip:     "60329",
		Country: "Germany",
		Phone:   "+49 69 987 654 321",
		VAT:     "DE987654321",
	}
	return order, items, warehouse
}
