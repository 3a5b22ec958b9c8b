// Package tradedoc generates shipping and billing PDFs: tax invoices,
// proforma invoices and packing lists, translated into seven languages
// with automatic Thai font handling.
package tradedoc

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/gofranz/tradedoc/doc"
	"github.com/gofranz/tradedoc/document"
	"github.com/gofranz/tradedoc/fontkit"
	"github.com/gofranz/tradedoc/i18n"
	"github.com/gofranz/tradedoc/images"
	"github.com/gofranz/tradedoc/layout"
	"github.com/gofranz/tradedoc/observability"
	"github.com/gofranz/tradedoc/writer"
)

// Options configures one generation call. The zero value renders with
// core Helvetica fonts, no logo, a silent logger and the default
// deterministic writer.
type Options struct {
	Properties document.Properties

	// Logo holds SVG or raster bytes placed in the page header.
	Logo []byte

	// FontDir overrides where the built-in Noto files are read from
	// (Thai documents only).
	FontDir string

	// Custom body fonts for non-Thai documents; bytes win over paths.
	FontNormalPath string
	FontBoldPath   string
	FontNormal     []byte
	FontBold       []byte

	Logger       observability.Logger
	Writer       writer.Writer
	WriterConfig *writer.Config
}

// GenerateInvoice renders a tax invoice for order and returns the PDF
// bytes.
func GenerateInvoice(ctx context.Context, order *document.Order, items []document.LineItem, warehouse *document.Address, dict *i18n.Dictionary, opts Options) ([]byte, error) {
	return generate(ctx, "invoice", layout.Invoice, order, items, warehouse, dict, opts)
}

// GenerateProformaInvoice renders a proforma (estimate) invoice.
func GenerateProformaInvoice(ctx context.Context, order *document.Order, items []document.LineItem, warehouse *document.Address, dict *i18n.Dictionary, opts Options) ([]byte, error) {
	return generate(ctx, "proforma-invoice", layout.ProformaInvoice, order, items, warehouse, dict, opts)
}

// GeneratePackingList renders a warehouse packing list.
func GeneratePackingList(ctx context.Context, order *document.Order, items []document.LineItem, warehouse *document.Address, dict *i18n.Dictionary, opts Options) ([]byte, error) {
	return generate(ctx, "packing-list", layout.PackingList, order, items, warehouse, dict, opts)
}

type layoutFunc func(*document.Order, []document.LineItem, *document.Address, document.ResolvedProperties, *i18n.Dictionary, *fontkit.Bundle, *doc.Image) (*doc.Document, error)

func generate(ctx context.Context, kind string, lay layoutFunc, order *document.Order, items []document.LineItem, warehouse *document.Address, dict *i18n.Dictionary, opts Options) ([]byte, error) {
	log := opts.Logger
	if log == nil {
		log = observability.NopLogger{}
	}
	log = log.With(observability.String("kind", kind))
	start := time.Now()

	props := opts.Properties.Resolve()

	var lang i18n.Language
	if dict != nil {
		lang = dict.Language
	}
	fonts, err := fontkit.Load(lang, fontkit.Options{
		Dir:        opts.FontDir,
		NormalPath: opts.FontNormalPath,
		BoldPath:   opts.FontBoldPath,
		Normal:     opts.FontNormal,
		Bold:       opts.FontBold,
		CoreNormal: props.FontNormal,
		CoreBold:   props.FontBold,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	var logo *doc.Image
	if len(opts.Logo) > 0 {
		logo, err = images.DecodeLogo(opts.Logo, layout.LogoWidth, layout.LogoHeight)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		log.Debug("logo decoded",
			observability.Int("width_px", logo.Width),
			observability.Int("height_px", logo.Height))
	}

	d, err := lay(order, items, warehouse, props, dict, fonts, logo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	log.Debug("layout complete", observability.Int("ops", len(d.Pages[0].Ops)))

	w := opts.Writer
	if w == nil {
		w = (&writer.WriterBuilder{}).Build()
	}
	cfg := writer.DefaultConfig()
	if opts.WriterConfig != nil {
		cfg = *opts.WriterConfig
	}

	var buf bytes.Buffer
	if err := w.Write(ctx, d, &buf, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	log.Info("document generated",
		observability.Int("bytes", buf.Len()),
		observability.Int64("elapsed_ms", time.Since(start).Milliseconds()))
	return buf.Bytes(), nil
}
