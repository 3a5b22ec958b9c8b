package images

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

const sampleSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 80 24">
  <rect x="0" y="0" width="80" height="24" fill="#cc2828"/>
</svg>`

func TestDecodeLogoPNGPassthrough(t *testing.T) {
	data := pngBytes(t, 160, 48)
	img, err := DecodeLogo(data, 80, 24)
	if err != nil {
		t.Fatalf("DecodeLogo: %v", err)
	}
	if img.Format != "PNG" {
		t.Errorf("Format = %q, want PNG", img.Format)
	}
	if !bytes.Equal(img.Data, data) {
		t.Error("raster input must pass through unmodified")
	}
	if img.Width != 160 || img.Height != 48 {
		t.Errorf("size = %dx%d, want 160x48", img.Width, img.Height)
	}
}

func TestDecodeLogoSVG(t *testing.T) {
	img, err := DecodeLogo([]byte(sampleSVG), 80, 24)
	if err != nil {
		t.Fatalf("DecodeLogo: %v", err)
	}
	if img.Format != "PNG" {
		t.Errorf("Format = %q, want PNG (re-encoded)", img.Format)
	}
	if img.Width != 80*pixelsPerUnit || img.Height != 24*pixelsPerUnit {
		t.Errorf("size = %dx%d, want %dx%d", img.Width, img.Height, 80*pixelsPerUnit, 24*pixelsPerUnit)
	}
	if _, err := png.Decode(bytes.NewReader(img.Data)); err != nil {
		t.Errorf("result is not valid PNG: %v", err)
	}
}

func TestDecodeLogoXMLPrologSVG(t *testing.T) {
	data := []byte(`<?xml version="1.0"?>` + "\n" + sampleSVG)
	img, err := DecodeLogo(data, 80, 24)
	if err != nil {
		t.Fatalf("DecodeLogo: %v", err)
	}
	if img.Format != "PNG" {
		t.Errorf("Format = %q", img.Format)
	}
}

func TestDecodeLogoGarbage(t *testing.T) {
	_, err := DecodeLogo([]byte("definitely not an image"), 80, 24)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want *DecodeError", err)
	}
}

func TestDecodeLogoBadSVG(t *testing.T) {
	_, err := DecodeLogo([]byte("<svg "), 80, 24)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want *DecodeError", err)
	}
}
