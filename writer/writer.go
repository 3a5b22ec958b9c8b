// Package writer serializes a laid-out document to PDF bytes. The
// backend is go-pdf/fpdf behind a narrow interface so the layout
// engines never see the PDF library.
package writer

import (
	"context"
	"fmt"
	"io"

	"github.com/gofranz/tradedoc/doc"
)

// Config controls serialization.
type Config struct {
	// Deterministic pins the PDF creation and modification dates so
	// identical input yields identical bytes.
	Deterministic bool
	// Compress enables content stream compression.
	Compress bool
}

// DefaultConfig is what the facade uses when the caller does not supply
// a config.
func DefaultConfig() Config {
	return Config{Deterministic: true, Compress: true}
}

// Writer serializes documents.
type Writer interface {
	Write(ctx context.Context, d *doc.Document, out io.Writer, cfg Config) error
}

// WriterBuilder constructs the default backend.
type WriterBuilder struct{}

func (b *WriterBuilder) Build() Writer { return &impl{} }

// WriteError reports a serialization failure.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write pdf: %v", e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }
