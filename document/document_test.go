package document

import (
	"testing"

	"github.com/gofranz/tradedoc/doc"
)

func TestResolveDefaults(t *testing.T) {
	r := Properties{}.Resolve()

	if r.FontNormal != "Helvetica" {
		t.Errorf("FontNormal = %q, want Helvetica", r.FontNormal)
	}
	if r.FontBold != "Helvetica-Bold" {
		t.Errorf("FontBold = %q, want Helvetica-Bold", r.FontBold)
	}
	if r.Background != (doc.Color{R: 0.9, G: 0.9, B: 0.9}) {
		t.Errorf("Background = %v, want light gray", r.Background)
	}
	if r.FontSizeTitle != 20 || r.FontSizeBody != 10 || r.FontSizeLabel != 10 {
		t.Errorf("font sizes = %v/%v/%v, want 20/10/10",
			r.FontSizeTitle, r.FontSizeBody, r.FontSizeLabel)
	}
}

func TestResolvePassthrough(t *testing.T) {
	bg := doc.Color{R: 1, G: 0.5, B: 0.25}
	p := Properties{
		FontNormal:    "Times-Roman",
		FontBold:      "Times-Bold",
		Background:    &bg,
		FontSizeTitle: 32,
		FontSizeBody:  9,
		FontSizeLabel: 8,
	}
	r := p.Resolve()

	want := ResolvedProperties{
		FontNormal:    "Times-Roman",
		FontBold:      "Times-Bold",
		Background:    bg,
		FontSizeTitle: 32,
		FontSizeBody:  9,
		FontSizeLabel: 8,
	}
	if r != want {
		t.Errorf("Resolve() = %+v, want %+v", r, want)
	}
}

func TestResolveIsPartial(t *testing.T) {
	r := Properties{FontNormal: "Courier"}.Resolve()
	if r.FontNormal != "Courier" {
		t.Errorf("FontNormal = %q, want Courier", r.FontNormal)
	}
	if r.FontBold != "Helvetica-Bold" {
		t.Errorf("FontBold = %q, want default", r.FontBold)
	}
}
