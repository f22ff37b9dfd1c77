package codegen

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ted-editor/tools/internal/keywords"
)

// CHeader renders tables as a C header declaring static arrays.
// Each bucket becomes a Keyword array and each language gets a 128 slot KeywordList index
// using designated initializers, so only first bytes that start a token are filled in.
type CHeader struct {
	opts Options
}

func (c *CHeader) Render(w io.Writer, tables []*keywords.Table) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "// keywords for all languages ted supports\n")
	fmt.Fprintf(bw, "// This file was auto-generated by %s, do not edit it by hand.\n", c.opts.Generator)
	fmt.Fprintf(bw, "typedef struct {\n\tconst char *str;\n\t%s type;\n} Keyword;\n", c.opts.CategoryType)
	fmt.Fprint(bw, "typedef struct {\n\tconst Keyword *keywords;\n\tsize_t len;\n} KeywordList;\n\n")

	for _, t := range tables {
		c.renderTable(bw, t)
	}
	return bw.Flush()
}

func (c *CHeader) renderTable(w io.Writer, t *keywords.Table) {
	for _, b := range t.Buckets {
		entries := make([]string, 0, b.Len())
		for _, tok := range b.Tokens {
			entries = append(entries, fmt.Sprintf("{%s, %s}", cString(tok.Str), tok.Category.CName()))
		}
		fmt.Fprintf(w, "static const Keyword %s[%d] = {%s};\n", cBucketName(t.Language, b.First), b.Len(), strings.Join(entries, ","))
	}

	index := cIndexName(t.Language)
	if len(t.Buckets) == 0 {
		fmt.Fprintf(w, "static const KeywordList %s[%d] = {0};\n\n", index, keywords.IndexSize)
		return
	}
	fmt.Fprintf(w, "static const KeywordList %s[%d] = {\n", index, keywords.IndexSize)
	for _, b := range t.Buckets {
		fmt.Fprintf(w, "\t[%s] = {%s, %d},\n", cChar(b.First), cBucketName(t.Language, b.First), b.Len())
	}
	fmt.Fprint(w, "};\n\n")
}

// cString quotes s as a C string literal. Bytes outside printable ASCII are written as three digit octal escapes,
// which can't run into a following character the way hex escapes can.
func cString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case ch == '"' || ch == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(ch)
		case ch == '?' && i+1 < len(s) && s[i+1] == '?':
			// keep trigraphs from forming
			sb.WriteString(`\?`)
		case ch < 0x20 || ch >= 0x7f:
			fmt.Fprintf(&sb, "\\%03o", ch)
		default:
			sb.WriteByte(ch)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// cChar renders a designated initializer index for c
func cChar(c byte) string {
	switch {
	case c == '\'' || c == '\\':
		return `'\` + string(c) + `'`
	case c < 0x20 || c >= 0x7f:
		return fmt.Sprintf("%d", c)
	}
	return "'" + string(c) + "'"
}
