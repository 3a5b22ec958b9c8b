package writer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/gofranz/tradedoc/doc"
)

func sampleDocument() *doc.Document {
	helv := &doc.Font{Family: "Helvetica"}
	helvBold := &doc.Font{Family: "Helvetica", Style: "B"}
	fill := doc.Color{R: 0.9, G: 0.9, B: 0.9}
	return &doc.Document{
		Title:   "Invoice",
		Subject: "Invoice",
		Creator: "tradedoc",
		Fonts:   []*doc.Font{helv, helvBold},
		Pages: []*doc.Page{{
			Width:  595,
			Height: 842,
			Ops: []doc.Op{
				doc.TextOp{X: 420, Y: 790, Size: 20, Runs: []doc.TextRun{{Text: "Invoice", Font: helvBold}}},
				doc.TextOp{X: 50, Y: 700, Size: 10, Runs: []doc.TextRun{{Text: "Total: ", Font: helv}, {Text: "EUR 540.50", Font: helv}}},
				doc.LineOp{X1: 50, Y1: 630, X2: 545, Y2: 630, Width: 1},
				doc.RectOp{X: 50, Y: 400, W: 495, H: 20, Fill: &fill},
				doc.RectOp{X: 480, Y: 380, W: 10, H: 10, Stroke: true},
			},
		}},
	}
}

func TestWriteProducesPDF(t *testing.T) {
	w := (&WriterBuilder{}).Build()
	var buf bytes.Buffer
	if err := w.Write(context.Background(), sampleDocument(), &buf, DefaultConfig()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with %%PDF-: %.8q", buf.Bytes())
	}
	if !bytes.Contains(buf.Bytes(), []byte("%%EOF")) {
		t.Error("output has no EOF marker")
	}
}

func TestWriteDeterministic(t *testing.T) {
	w := (&WriterBuilder{}).Build()
	var a, b bytes.Buffer
	if err := w.Write(context.Background(), sampleDocument(), &a, DefaultConfig()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Write(context.Background(), sampleDocument(), &b, DefaultConfig()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("deterministic config must produce identical bytes")
	}
}

func TestWriteEmptyDocument(t *testing.T) {
	w := (&WriterBuilder{}).Build()
	var buf bytes.Buffer
	err := w.Write(context.Background(), &doc.Document{}, &buf, DefaultConfig())
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("err = %v, want *WriteError", err)
	}
}

func TestWriteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := (&WriterBuilder{}).Build()
	var buf bytes.Buffer
	err := w.Write(ctx, sampleDocument(), &buf, DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want wrapped context.Canceled", err)
	}
}

func TestWriteMissingRunFont(t *testing.T) {
	d := sampleDocument()
	d.Pages[0].Ops = append(d.Pages[0].Ops, doc.TextOp{X: 1, Y: 1, Size: 10, Runs: []doc.TextRun{{Text: "x"}}})

	w := (&WriterBuilder{}).Build()
	var buf bytes.Buffer
	err := w.Write(context.Background(), d, &buf, DefaultConfig())
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("err = %v, want *WriteError", err)
	}
}
