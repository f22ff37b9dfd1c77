package keywords

import (
	"sort"

	"github.com/ted-editor/tools/internal/errs"
	"github.com/ted-editor/tools/internal/logging"
)

// Table is the validated, bucketed form of a language, ready to be rendered.
type Table struct {
	Language string
	Buckets  []Bucket

	// index maps a first byte to its position in Buckets plus one, zero meaning no bucket
	index [IndexSize]int
}

// NewTable validates lang and partitions its tokens.
// A language without tokens yields a table without buckets.
func NewTable(lang Language) (*Table, error) {
	if err := Validate(lang); err != nil {
		return nil, err
	}

	t := &Table{
		Language: lang.Name,
		Buckets:  Partition(lang.Tokens),
	}
	for i, b := range t.Buckets {
		t.index[b.First] = i + 1
	}
	return t, nil
}

// Build turns every language into a table. Languages are handled independently, the first invalid one aborts the build.
func Build(langs []Language) ([]*Table, error) {
	tables := make([]*Table, 0, len(langs))
	seen := map[string]bool{}
	for _, lang := range langs {
		if seen[lang.Name] {
			return nil, errs.New("Language %s is defined more than once", lang.Name)
		}
		seen[lang.Name] = true

		table, err := NewTable(lang)
		if err != nil {
			return nil, errs.Wrap(err, "Could not build keyword table for %s", lang.Name)
		}
		logging.Debug("Language %s: %d tokens in %d buckets", lang.Name, table.Len(), len(table.Buckets))
		tables = append(tables, table)
	}
	return tables, nil
}

// Len returns the total number of tokens in the table
func (t *Table) Len() int {
	n := 0
	for _, b := range t.Buckets {
		n += b.Len()
	}
	return n
}

// Bucket returns the bucket for first byte c
func (t *Table) Bucket(c byte) (Bucket, bool) {
	if c >= IndexSize || t.index[c] == 0 {
		return Bucket{}, false
	}
	return t.Buckets[t.index[c]-1], true
}

// Lookup finds the category of word the way the editor does: pick the bucket by first byte, then search it.
func (t *Table) Lookup(word string) (Category, bool) {
	if word == "" {
		return 0, false
	}
	b, ok := t.Bucket(word[0])
	if !ok {
		return 0, false
	}
	i := sort.Search(len(b.Tokens), func(i int) bool {
		return b.Tokens[i].Str >= word
	})
	if i < len(b.Tokens) && b.Tokens[i].Str == word {
		return b.Tokens[i].Category, true
	}
	return 0, false
}

// Tokens returns every token of the table in bucket order
func (t *Table) Tokens() []Token {
	tokens := make([]Token, 0, t.Len())
	for _, b := range t.Buckets {
		tokens = append(tokens, b.Tokens...)
	}
	return tokens
}
