// Package fontkit resolves the fonts for one document generation call
// into a Bundle of font handles. Thai documents get a Thai-optimized
// primary pair plus a Latin-coverage fallback pair; every other language
// uses caller-supplied TTF data if given, or the writer's builtin core
// pair named by the resolved properties. All TTF data is validated with
// x/image/font/sfnt before it reaches the writer.
package fontkit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"

	"github.com/gofranz/tradedoc/doc"
	"github.com/gofranz/tradedoc/i18n"
)

// DefaultDir is where the built-in Noto font files are looked up when
// Options.Dir is empty.
const DefaultDir = "fonts"

// Built-in font file names, matching the upstream Noto releases.
const (
	fileNotoRegular      = "NotoSans-Regular.ttf"
	fileNotoSemiBold     = "NotoSans-SemiBold.ttf"
	fileNotoThaiRegular  = "NotoSansThai-Regular.ttf"
	fileNotoThaiSemiBold = "NotoSansThai-SemiBold.ttf"
)

// Bundle is the resolved font set for one document. The fallback pair is
// populated only for Thai, where Latin segments need a second face.
type Bundle struct {
	Normal         *doc.Font
	Bold           *doc.Font
	NormalFallback *doc.Font
	BoldFallback   *doc.Font
}

// Fonts returns the distinct fonts of the bundle, for embedding.
func (b *Bundle) Fonts() []*doc.Font {
	var out []*doc.Font
	seen := make(map[*doc.Font]bool)
	for _, f := range []*doc.Font{b.Normal, b.Bold, b.NormalFallback, b.BoldFallback} {
		if f != nil && !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// Options configures font resolution. Normal/Bold bytes take precedence
// over NormalPath/BoldPath; both are ignored for Thai, which always uses
// the built-in pairs. CoreNormal/CoreBold are the resolved property font
// identifiers ("Helvetica", "Helvetica-Bold", ...) used when no custom
// data is supplied.
type Options struct {
	Dir        string
	NormalPath string
	BoldPath   string
	Normal     []byte
	Bold       []byte
	CoreNormal string
	CoreBold   string
}

// LoadError reports font data that could not be read or parsed.
type LoadError struct {
	Font string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load font %s: %v", e.Font, e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

// Load resolves the font bundle for lang.
func Load(lang i18n.Language, opts Options) (*Bundle, error) {
	if lang == i18n.Thai {
		return loadThai(opts)
	}

	normal, err := customOrCore(opts.Normal, opts.NormalPath, opts.CoreNormal, doc.Font{Family: "Helvetica"})
	if err != nil {
		return nil, err
	}
	bold, err := customOrCore(opts.Bold, opts.BoldPath, opts.CoreBold, doc.Font{Family: "Helvetica", Style: "B"})
	if err != nil {
		return nil, err
	}
	return &Bundle{Normal: normal, Bold: bold}, nil
}

func loadThai(opts Options) (*Bundle, error) {
	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir
	}
	normal, err := fileFont("NotoSansThai", "", filepath.Join(dir, fileNotoThaiRegular))
	if err != nil {
		return nil, err
	}
	bold, err := fileFont("NotoSansThai", "B", filepath.Join(dir, fileNotoThaiSemiBold))
	if err != nil {
		return nil, err
	}
	fbNormal, err := fileFont("NotoSans", "", filepath.Join(dir, fileNotoRegular))
	if err != nil {
		return nil, err
	}
	fbBold, err := fileFont("NotoSans", "B", filepath.Join(dir, fileNotoSemiBold))
	if err != nil {
		return nil, err
	}
	return &Bundle{
		Normal:         normal,
		Bold:           bold,
		NormalFallback: fbNormal,
		BoldFallback:   fbBold,
	}, nil
}

func fileFont(family, style, path string) (*doc.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Font: filepath.Base(path), Err: err}
	}
	if _, err := sfnt.Parse(data); err != nil {
		return nil, &LoadError{Font: filepath.Base(path), Err: err}
	}
	return &doc.Font{Family: family, Style: style, Data: data}, nil
}

func customOrCore(data []byte, path, coreName string, coreDefault doc.Font) (*doc.Font, error) {
	if len(data) == 0 && path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, &LoadError{Font: filepath.Base(path), Err: err}
		}
	}
	if len(data) > 0 {
		return parseFont(data, coreDefault.Style)
	}
	if coreName != "" {
		return coreFont(coreName), nil
	}
	f := coreDefault
	return &f, nil
}

// parseFont validates TTF bytes and names the face after its sfnt family
// name, falling back to a generic family when the name table is absent.
func parseFont(data []byte, style string) (*doc.Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, &LoadError{Font: "custom", Err: err}
	}
	family, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil || family == "" {
		family = "CustomSans"
	}
	return &doc.Font{Family: family, Style: style, Data: data}, nil
}

// coreFont maps a core font identifier like "Helvetica-Bold" or
// "Times-Roman" to a writer-builtin family and style. Unknown
// identifiers pass through as a plain family; the writer rejects them.
func coreFont(name string) *doc.Font {
	family, style := name, ""
	if i := strings.IndexByte(name, '-'); i >= 0 {
		family = name[:i]
		switch strings.ToLower(name[i+1:]) {
		case "bold":
			style = "B"
		case "oblique", "italic":
			style = "I"
		case "boldoblique", "bolditalic":
			style = "BI"
		}
	}
	return &doc.Font{Family: family, Style: style}
}
