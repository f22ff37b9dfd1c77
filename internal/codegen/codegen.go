// Package codegen renders keyword tables as source code for the editor to compile in.
package codegen

import (
	"bytes"
	"io"
	"strings"

	"github.com/ted-editor/tools/internal/errs"
	"github.com/ted-editor/tools/internal/keywords"
)

// Format selects the language of the generated file
type Format string

const (
	FormatC  Format = "c"
	FormatGo Format = "go"
)

// Formats lists the supported formats
var Formats = []Format{FormatC, FormatGo}

// ParseFormat parses a format name, case insensitive
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errs.New("Unknown output format %q, expected c or go", name)
}

// Options tweak the generated output
type Options struct {
	// Generator is named in the header of the generated file
	Generator string
	// Package is the package clause of generated Go files
	Package string
	// CategoryType is the C enum type the editor declares for token categories
	CategoryType string
}

// DefaultOptions match what the editor's sources expect
var DefaultOptions = Options{
	Generator:    "keywords-generator",
	Package:      "syntax",
	CategoryType: "SyntaxCharType",
}

func (o Options) withDefaults() Options {
	if o.Generator == "" {
		o.Generator = DefaultOptions.Generator
	}
	if o.Package == "" {
		o.Package = DefaultOptions.Package
	}
	if o.CategoryType == "" {
		o.CategoryType = DefaultOptions.CategoryType
	}
	return o
}

// Renderer writes keyword tables in one output format
type Renderer interface {
	Render(w io.Writer, tables []*keywords.Table) error
}

// NewRenderer returns the renderer for format
func NewRenderer(format Format, opts Options) (Renderer, error) {
	opts = opts.withDefaults()
	switch format {
	case FormatC:
		return &CHeader{opts}, nil
	case FormatGo:
		return &GoSource{opts}, nil
	}
	return nil, errs.New("Unknown output format %q", format)
}

// Generate renders tables in the given format.
// The result only depends on its inputs, so regenerating unchanged tables gives identical bytes.
func Generate(format Format, opts Options, tables []*keywords.Table) ([]byte, error) {
	r, err := NewRenderer(format, opts)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := r.Render(buf, tables); err != nil {
		return nil, errs.Wrap(err, "Rendering %s output failed", format)
	}
	return buf.Bytes(), nil
}
