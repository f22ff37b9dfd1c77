package keywords

import (
	"fmt"
	"strings"

	"github.com/ted-editor/tools/internal/errs"
)

// IndexSize is the number of slots in a language's first-byte index
const IndexSize = 128

// Duplicate describes a literal that occurs more than once in a language
type Duplicate struct {
	Str    string
	First  Category
	Second Category
}

// DuplicateTokenError is returned when a language lists the same literal twice.
// Keeping either entry would silently give the highlighter an arbitrary category, so this always aborts generation.
type DuplicateTokenError struct {
	Language   string
	Duplicates []Duplicate
}

func (e *DuplicateTokenError) Error() string {
	parts := make([]string, 0, len(e.Duplicates))
	for _, d := range e.Duplicates {
		parts = append(parts, fmt.Sprintf("%q (%s and %s)", d.Str, d.First, d.Second))
	}
	noun := "token"
	if len(parts) > 1 {
		noun = "tokens"
	}
	return fmt.Sprintf("language %s: duplicate %s %s", e.Language, noun, strings.Join(parts, ", "))
}

// InvalidTokenError is returned for tokens that cannot be placed in the first-byte index
type InvalidTokenError struct {
	Language string
	Token    Token
	Reason   string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("language %s: invalid %s token %q: %s", e.Language, e.Token.Category, e.Token.Str, e.Reason)
}

// Validate checks that every token of lang can be indexed and that no literal occurs twice.
func Validate(lang Language) error {
	if !ValidLanguageName(lang.Name) {
		return errs.New("Invalid language name %q, names must match [a-z][a-z0-9_]*", lang.Name)
	}

	seen := make(map[string]Category, len(lang.Tokens))
	var dups []Duplicate
	for _, t := range lang.Tokens {
		if t.Str == "" {
			return &InvalidTokenError{lang.Name, t, "empty token"}
		}
		if t.First() >= IndexSize {
			return &InvalidTokenError{lang.Name, t, fmt.Sprintf("first byte 0x%x is not ASCII", t.First())}
		}
		if int(t.Category) >= len(Categories) {
			return &InvalidTokenError{lang.Name, t, fmt.Sprintf("unknown category %d", t.Category)}
		}
		if prev, ok := seen[t.Str]; ok {
			dups = append(dups, Duplicate{t.Str, prev, t.Category})
			continue
		}
		seen[t.Str] = t.Category
	}

	if len(dups) > 0 {
		return &DuplicateTokenError{lang.Name, dups}
	}
	return nil
}
