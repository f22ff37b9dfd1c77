package keywords

import (
	"strings"

	"github.com/ted-editor/tools/internal/errs"
)

// Category tells the highlighter how to colour a token.
// The ordinal values are part of the generated output and must not be reordered.
type Category uint8

const (
	Keyword Category = iota
	Constant
	Builtin
)

// Categories lists every category in ordinal order
var Categories = []Category{Keyword, Constant, Builtin}

var categoryNames = map[Category]string{
	Keyword:  "keyword",
	Constant: "constant",
	Builtin:  "builtin",
}

// String returns the name used for the category in token data files
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// CName is the name of the enum value the editor's C sources declare for this category
func (c Category) CName() string {
	return "SYNTAX_" + strings.ToUpper(c.String())
}

// GoName is the name of the constant declared in generated Go sources
func (c Category) GoName() string {
	name := c.String()
	return "Category" + strings.ToUpper(name[:1]) + name[1:]
}

// ParseCategory parses a category name as written in token data files. Case insensitive.
func ParseCategory(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Categories {
		if categoryNames[c] == name {
			return c, nil
		}
	}
	return 0, errs.New("Unknown token category %q, expected one of keyword, constant or builtin", name)
}
