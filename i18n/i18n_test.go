package i18n

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Language
		ok   bool
	}{
		{"en", English, true},
		{"EN", English, true},
		{"english", English, true},
		{"English", English, true},
		{"de", German, true},
		{"German", German, true},
		{"fr", French, true},
		{"es", Spanish, true},
		{"pt", Portuguese, true},
		{"th", Thai, true},
		{"THAI", Thai, true},
		{"it", Italian, true},
		{" it ", Italian, true},
		{"", "", false},
		{"xx", "", false},
		{"klingon", "", false},
		{"en-US", "", false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

// Every field of every supported language's dictionary must be non-empty:
// untranslated fields fall back to English rather than disappearing.
func TestForLanguageComplete(t *testing.T) {
	for _, lang := range Supported() {
		d := ForLanguage(lang)
		if d.Language != lang {
			t.Errorf("%s: Language = %q", lang, d.Language)
		}
		v := reflect.ValueOf(*d)
		typ := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if s, ok := v.Field(i).Interface().(string); ok && s == "" {
				t.Errorf("%s: field %s is empty", lang, typ.Field(i).Name)
			}
		}
	}
}

func TestForLanguageTranslates(t *testing.T) {
	if got := ForLanguage(German).InvoiceTitle; got != "RECHNUNG" {
		t.Errorf("German invoice title = %q", got)
	}
	if got := ForLanguage(French).InvoiceTitle; got != "FACTURE" {
		t.Errorf("French invoice title = %q", got)
	}
	if got := ForLanguage(Thai).ProductHeader; got != "สินค้า" {
		t.Errorf("Thai product header = %q", got)
	}
}

// An overlay field left empty keeps the English value.
func TestMergeFallsBackToEnglish(t *testing.T) {
	got := merge(english, Dictionary{InvoiceTitle: "RECHNUNG"})
	if got.InvoiceTitle != "RECHNUNG" {
		t.Errorf("overridden field = %q", got.InvoiceTitle)
	}
	if got.NotesLabel != english.NotesLabel {
		t.Errorf("untranslated field = %q, want English %q", got.NotesLabel, english.NotesLabel)
	}
}

// An unknown language degrades to the English base instead of failing.
func TestForLanguageUnknownFallsBack(t *testing.T) {
	d := ForLanguage(Language("xx"))
	if d.InvoiceTitle != english.InvoiceTitle {
		t.Errorf("InvoiceTitle = %q, want English base", d.InvoiceTitle)
	}
}
