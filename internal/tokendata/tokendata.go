// Package tokendata holds the token lists of every language the editor highlights and resolves them into
// keyword languages. The lists live in tokens.yaml, which is compiled into the generator.
package tokendata

import (
	"bytes"
	_ "embed"
	"sort"
	"strings"

	"github.com/thoas/go-funk"
	"gopkg.in/yaml.v3"

	"github.com/ted-editor/tools/internal/errs"
	"github.com/ted-editor/tools/internal/fileutils"
	"github.com/ted-editor/tools/internal/keywords"
)

//go:embed tokens.yaml
var embedded []byte

// Data is the parsed form of a token data file
type Data struct {
	Languages []LanguageDef `yaml:"languages"`
}

// LanguageDef declares the tokens of one language
type LanguageDef struct {
	Name    string     `yaml:"name"`
	Extends string     `yaml:"extends,omitempty"`
	Exclude []string   `yaml:"exclude,omitempty"`
	Groups  []GroupDef `yaml:"groups"`
}

// GroupDef is a list of tokens sharing a category
type GroupDef struct {
	Category string   `yaml:"category"`
	Suffix   string   `yaml:"suffix,omitempty"`
	Tokens   []string `yaml:"tokens"`
}

// Load returns the token data compiled into the generator
func Load() (*Data, error) {
	data, err := Parse(embedded)
	if err != nil {
		return nil, errs.Wrap(err, "Embedded token data is invalid")
	}
	return data, nil
}

// LoadFile reads token data from path instead of using the embedded copy
func LoadFile(path string) (*Data, error) {
	b, err := fileutils.ReadFile(path)
	if err != nil {
		return nil, errs.WrapUserFacing(err, "Could not read token data: "+errs.JoinMessage(err, ": "), errs.SetInput())
	}
	data, err := Parse(b)
	if err != nil {
		return nil, errs.WrapUserFacing(err, "Token data in "+path+" is invalid: "+err.Error(), errs.SetInput())
	}
	return data, nil
}

// Parse decodes token data. Unknown fields are rejected so typos don't silently drop tokens.
func Parse(b []byte) (*Data, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	data := &Data{}
	if err := dec.Decode(data); err != nil {
		return nil, errs.Wrap(err, "Could not parse token data")
	}
	return data, nil
}

// Resolve turns every language definition into a keywords.Language, in declaration order
func (d *Data) Resolve() ([]keywords.Language, error) {
	resolved := make(map[string]keywords.Language, len(d.Languages))
	langs := make([]keywords.Language, 0, len(d.Languages))

	for _, def := range d.Languages {
		if !keywords.ValidLanguageName(def.Name) {
			return nil, errs.New("Invalid language name %q, names must match [a-z][a-z0-9_]*", def.Name)
		}
		if _, exists := resolved[def.Name]; exists {
			return nil, errs.New("Language %s is declared more than once", def.Name)
		}

		lang, err := def.resolve(resolved)
		if err != nil {
			return nil, errs.Wrap(err, "Could not resolve language %s", def.Name)
		}
		resolved[def.Name] = lang
		langs = append(langs, lang)
	}
	return langs, nil
}

func (def LanguageDef) resolve(resolved map[string]keywords.Language) (keywords.Language, error) {
	lang := keywords.Language{Name: def.Name}

	if def.Extends != "" {
		base, ok := resolved[def.Extends]
		if !ok {
			known := funk.Keys(resolved).([]string)
			sort.Strings(known)
			return lang, errs.New("Base language %s must be declared before %s (declared so far: %s)",
				def.Extends, def.Name, strings.Join(known, ", "))
		}
		inherited, err := exclude(base.Tokens, def.Exclude)
		if err != nil {
			return lang, err
		}
		lang.Tokens = inherited
	} else if len(def.Exclude) > 0 {
		return lang, errs.New("exclude only applies to languages that extend another one")
	}

	for _, group := range def.Groups {
		category, err := keywords.ParseCategory(group.Category)
		if err != nil {
			return lang, err
		}
		for _, tok := range group.Tokens {
			lang.Tokens = append(lang.Tokens, keywords.Token{Str: tok + group.Suffix, Category: category})
		}
	}
	return lang, nil
}

// exclude drops the given literals from tokens. Every excluded literal has to be present.
func exclude(tokens []keywords.Token, excluded []string) ([]keywords.Token, error) {
	present := funk.Map(tokens, func(t keywords.Token) (string, bool) {
		return t.Str, true
	}).(map[string]bool)
	for _, ex := range excluded {
		if !present[ex] {
			return nil, errs.New("Cannot exclude %q, the base language does not define it", ex)
		}
	}

	result := make([]keywords.Token, 0, len(tokens))
	for _, t := range tokens {
		if !funk.ContainsString(excluded, t.Str) {
			result = append(result, t)
		}
	}
	return result, nil
}
