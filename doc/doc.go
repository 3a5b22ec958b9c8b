// Package doc defines the document model shared between the layout
// engines and the document writer: a page is an ordered list of drawing
// operations in PDF user space (origin bottom-left, units of 1/72 inch).
package doc

// Document is a fully laid out document, ready to be serialized by a
// writer backend.
type Document struct {
	Title   string
	Subject string
	Creator string
	Pages   []*Page
	Fonts   []*Font
}

// Page holds the media size and the draw operations for one page.
type Page struct {
	Width  float64
	Height float64
	Ops    []Op
}

// Op is a single drawing operation. The set is sealed; writers switch
// over the concrete types.
type Op interface {
	isOp()
}

// TextRun is a piece of text drawn with a single font. A TextOp carries
// one run per script segment; the writer advances the x position between
// runs using its own font metrics.
type TextRun struct {
	Text string
	Font *Font
}

// TextOp draws one or more text runs starting at the baseline (X, Y).
type TextOp struct {
	X, Y float64
	Size float64
	Runs []TextRun
}

// LineOp strokes a straight line.
type LineOp struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
}

// RectOp draws an axis-aligned rectangle. (X, Y) is the lower-left
// corner. A nil Fill means the rectangle is stroked only.
type RectOp struct {
	X, Y   float64
	W, H   float64
	Fill   *Color
	Stroke bool
}

// ImageOp places a registered image with its lower-left corner at (X, Y).
type ImageOp struct {
	Image *Image
	X, Y  float64
	W, H  float64
}

func (TextOp) isOp()  {}
func (LineOp) isOp()  {}
func (RectOp) isOp()  {}
func (ImageOp) isOp() {}

// Color is an RGB color with channels in [0, 1].
type Color struct {
	R, G, B float64
}

// Black is the default text and stroke color.
var Black = Color{}

// Font identifies a font face for text runs. Data holds the TTF bytes
// for fonts the writer must embed; a nil Data means a writer-builtin
// (core) font addressed by Family and Style alone.
type Font struct {
	Family string
	Style  string // "" or "B"
	Data   []byte
}

// IsCore reports whether the font is a writer-builtin face that needs no
// embedding.
func (f *Font) IsCore() bool { return len(f.Data) == 0 }

// Image is a decoded, page-ready raster image. Data holds the encoded
// bytes in Format ("PNG", "JPG" or "GIF"), which is what PDF writers
// register directly.
type Image struct {
	Name   string
	Format string
	Data   []byte
	Width  int
	Height int
}
