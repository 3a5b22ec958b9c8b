package observability

import (
	"context"
	"strings"
	"testing"
)

func TestNopTracer(t *testing.T) {
	tracer := NopTracer()
	ctx := context.Background()
	ctx2, span := tracer.StartSpan(ctx, "test")
	if ctx2 != ctx {
		t.Fatalf("nop tracer should return same context")
	}
	span.SetTag("key", "value")
	span.SetError(nil)
	span.Finish()
}

func TestTextLogger(t *testing.T) {
	var sb strings.Builder
	log := NewTextLogger(&sb).With(String("kind", "invoice"))
	log.Info("generated", Int64("bytes", 1234))

	line := sb.String()
	for _, want := range []string{"INFO", "generated", "kind=invoice", "bytes=1234"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %q", line, want)
		}
	}
}
