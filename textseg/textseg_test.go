package textseg

import (
	"strings"
	"testing"

	"github.com/go-text/typesetting/language"
)

func join(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

func TestSegmentRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"ก",
		" ",
		"Hello, world!",
		"สวัสดีครับ",
		"Hello สวัสดี World",
		"ราคา 150.00 บาท (incl. VAT)",
		"123 !?",
		"Grüße aus Frankfurt",
	}
	for _, in := range inputs {
		if got := join(Segment(in)); got != in {
			t.Errorf("Segment(%q) concatenates to %q", in, got)
		}
	}
}

func TestSegmentSingleScript(t *testing.T) {
	tests := []struct {
		in     string
		script language.Script
	}{
		{"Hello world", language.Latin},
		{"สวัสดีครับ", language.Thai},
		{"abc123!?", language.Latin},
	}
	for _, tt := range tests {
		runs := Segment(tt.in)
		if len(runs) != 1 {
			t.Errorf("Segment(%q) = %d runs, want 1", tt.in, len(runs))
			continue
		}
		if runs[0].Script != tt.script {
			t.Errorf("Segment(%q) script = %v, want %v", tt.in, runs[0].Script, tt.script)
		}
	}
}

func TestSegmentMixed(t *testing.T) {
	runs := Segment("Hello สวัสดี World")
	if len(runs) != 3 {
		t.Fatalf("got %d runs %v, want 3", len(runs), runs)
	}
	if runs[0].Script != language.Latin || runs[0].Text != "Hello " {
		t.Errorf("run 0 = %+v", runs[0])
	}
	// The space after the Thai stretch is neutral and attaches to the
	// open Thai run.
	if runs[1].Script != language.Thai || runs[1].Text != "สวัสดี " {
		t.Errorf("run 1 = %+v", runs[1])
	}
	if runs[2].Script != language.Latin || runs[2].Text != "World" {
		t.Errorf("run 2 = %+v", runs[2])
	}
}

func TestSegmentEmpty(t *testing.T) {
	if runs := Segment(""); len(runs) != 0 {
		t.Errorf("Segment(\"\") = %v, want no runs", runs)
	}
}

func TestSegmentNeutralOnly(t *testing.T) {
	runs := Segment(" 123 ")
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
}
