package writer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/gofranz/tradedoc/doc"
)

// deterministicDate is the pinned timestamp written when
// Config.Deterministic is set.
var deterministicDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

type impl struct{}

func (w *impl) Write(ctx context.Context, d *doc.Document, out io.Writer, cfg Config) error {
	if d == nil || len(d.Pages) == 0 {
		return &WriteError{Err: errors.New("document has no pages")}
	}
	if err := ctx.Err(); err != nil {
		return &WriteError{Err: err}
	}

	first := d.Pages[0]
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: first.Width, Ht: first.Height},
	})
	pdf.SetCompression(cfg.Compress)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)

	if d.Title != "" {
		pdf.SetTitle(d.Title, true)
	}
	if d.Subject != "" {
		pdf.SetSubject(d.Subject, true)
	}
	if d.Creator != "" {
		pdf.SetCreator(d.Creator, true)
	}
	if cfg.Deterministic {
		pdf.SetCreationDate(deterministicDate)
		pdf.SetModificationDate(deterministicDate)
	}

	for _, f := range d.Fonts {
		if !f.IsCore() {
			pdf.AddUTF8FontFromBytes(f.Family, f.Style, f.Data)
		}
	}

	r := &renderer{pdf: pdf, translate: pdf.UnicodeTranslatorFromDescriptor("")}
	for _, page := range d.Pages {
		if err := ctx.Err(); err != nil {
			return &WriteError{Err: err}
		}
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: page.Width, Ht: page.Height})
		r.page(page)
	}

	if err := pdf.Error(); err != nil {
		return &WriteError{Err: err}
	}
	if err := pdf.Output(out); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// renderer replays page ops onto an fpdf page, flipping the y axis from
// the bottom-left layout origin to fpdf's top-left one.
type renderer struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
	images    int
}

func (r *renderer) page(p *doc.Page) {
	for _, op := range p.Ops {
		switch o := op.(type) {
		case doc.TextOp:
			r.text(p, o)
		case doc.LineOp:
			r.line(p, o)
		case doc.RectOp:
			r.rect(p, o)
		case doc.ImageOp:
			r.image(p, o)
		}
	}
}

func (r *renderer) text(p *doc.Page, o doc.TextOp) {
	x := o.X
	y := p.Height - o.Y
	for _, run := range o.Runs {
		if run.Font == nil {
			r.pdf.SetError(fmt.Errorf("text run %q has no font", run.Text))
			return
		}
		r.pdf.SetFont(run.Font.Family, run.Font.Style, o.Size)
		s := run.Text
		if run.Font.IsCore() {
			s = r.translate(s)
		}
		r.pdf.Text(x, y, s)
		x += r.pdf.GetStringWidth(s)
	}
}

func (r *renderer) line(p *doc.Page, o doc.LineOp) {
	if o.Width > 0 {
		r.pdf.SetLineWidth(o.Width)
	}
	r.pdf.Line(o.X1, p.Height-o.Y1, o.X2, p.Height-o.Y2)
}

func (r *renderer) rect(p *doc.Page, o doc.RectOp) {
	y := p.Height - o.Y - o.H
	if o.Fill != nil {
		r.pdf.SetFillColor(channel(o.Fill.R), channel(o.Fill.G), channel(o.Fill.B))
		r.pdf.Rect(o.X, y, o.W, o.H, "F")
	}
	if o.Stroke {
		r.pdf.Rect(o.X, y, o.W, o.H, "D")
	}
}

func (r *renderer) image(p *doc.Page, o doc.ImageOp) {
	if o.Image == nil {
		return
	}
	r.images++
	name := fmt.Sprintf("%s-%d", o.Image.Name, r.images)
	opts := fpdf.ImageOptions{ImageType: o.Image.Format}
	r.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(o.Image.Data))
	r.pdf.ImageOptions(name, o.X, p.Height-o.Y-o.H, o.W, o.H, false, opts, 0, "")
}

// channel maps a [0,1] color channel to fpdf's 8-bit scale.
func channel(c float64) int {
	return int(math.Round(c * 255))
}
