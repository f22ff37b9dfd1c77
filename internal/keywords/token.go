package keywords

import (
	"fmt"
	"regexp"
)

// Token is a literal the highlighter recognizes, tagged with its category.
type Token struct {
	Str      string
	Category Category
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Str, t.Category)
}

// First returns the byte the token is bucketed under
func (t Token) First() byte {
	return t.Str[0]
}

// Language is the ordered token set of one target language.
type Language struct {
	Name   string
	Tokens []Token
}

// Label tags every string in strs with category c
func Label(c Category, strs ...string) []Token {
	tokens := make([]Token, 0, len(strs))
	for _, s := range strs {
		tokens = append(tokens, Token{s, c})
	}
	return tokens
}

var languageNameRx = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidLanguageName reports whether name can be embedded in generated symbol names
func ValidLanguageName(name string) bool {
	return languageNameRx.MatchString(name)
}
