package keywords

import "fmt"

// EscapeChar turns a bucket's first byte into something that is safe inside an identifier.
// ASCII letters are kept as is, anything else becomes x followed by its hex code, so '@' is x40.
func EscapeChar(c byte) string {
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return string(c)
	}
	return fmt.Sprintf("x%x", c)
}
