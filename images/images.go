// Package images turns raster or vector logo bytes into a page-ready
// image object. Vector input is detected by its XML/SVG signature,
// rasterized at a fixed pixel density derived from the requested
// physical size, and re-encoded as PNG. Raster input in a format the
// PDF writer accepts natively (PNG, JPEG, GIF) passes through; anything
// else decodable (BMP, TIFF, WebP via x/image) is re-encoded as PNG.
// There is no caching: every call decodes from scratch.
package images

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/gif" // raster decoders for the re-encode path
	_ "image/jpeg"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gofranz/tradedoc/doc"
)

// pixelsPerUnit is the raster density for vector logos, roughly 200 DPI
// at PDF user-space units.
const pixelsPerUnit = 8

// DecodeError reports logo bytes that could not be decoded, rasterized
// or re-encoded.
type DecodeError struct {
	Stage string
	Err   error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode logo (%s): %v", e.Stage, e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeLogo prepares logo bytes for placement at width × height layout
// units.
func DecodeLogo(data []byte, width, height float64) (*doc.Image, error) {
	if isSVG(data) {
		return rasterizeSVG(data, width, height)
	}

	switch sniffRaster(data) {
	case "PNG", "JPG", "GIF":
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, &DecodeError{Stage: "decode", Err: err}
		}
		return &doc.Image{
			Name:   "logo",
			Format: sniffRaster(data),
			Data:   data,
			Width:  cfg.Width,
			Height: cfg.Height,
		}, nil
	}

	// Unrecognized signature: try the registered decoders and normalize
	// to PNG.
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Stage: "decode", Err: err}
	}
	return encodePNG(img)
}

func isSVG(data []byte) bool {
	return bytes.HasPrefix(data, []byte("<?xml")) || bytes.HasPrefix(data, []byte("<svg"))
}

func sniffRaster(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "PNG"
	case bytes.HasPrefix(data, []byte("\xff\xd8\xff")):
		return "JPG"
	case bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a")):
		return "GIF"
	}
	return ""
}

func rasterizeSVG(data []byte, width, height float64) (*doc.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Stage: "svg-parse", Err: err}
	}

	pw := int(width * pixelsPerUnit)
	ph := int(height * pixelsPerUnit)
	if pw < 1 || ph < 1 {
		return nil, &DecodeError{Stage: "rasterize", Err: fmt.Errorf("target size %gx%g too small", width, height)}
	}

	rgba := image.NewRGBA(image.Rect(0, 0, pw, ph))
	icon.SetTarget(0, 0, float64(pw), float64(ph))
	scanner := rasterx.NewScannerGV(pw, ph, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(pw, ph, scanner), 1.0)

	return encodePNG(rgba)
}

func encodePNG(img image.Image) (*doc.Image, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &DecodeError{Stage: "png-encode", Err: err}
	}
	b := img.Bounds()
	return &doc.Image{
		Name:   "logo",
		Format: "PNG",
		Data:   buf.Bytes(),
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}
