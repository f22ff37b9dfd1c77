package codegen

import (
	"io"

	"github.com/dave/jennifer/jen"

	"github.com/ted-editor/tools/internal/keywords"
)

// GoSource renders tables as a Go file with the same layout as the C header: per bucket arrays and a
// 128 slot index per language, plus a Lookup function for consumers.
type GoSource struct {
	opts Options
}

// multiLine puts every item of a composite literal on its own line
func multiLine(items []jen.Code) func(*jen.Group) {
	return func(g *jen.Group) {
		for _, item := range items {
			g.Line().Add(item)
		}
		g.Line()
	}
}

func (g *GoSource) Render(w io.Writer, tables []*keywords.Table) error {
	f := jen.NewFile(g.opts.Package)
	f.HeaderComment("Code generated by " + g.opts.Generator + ". DO NOT EDIT.")

	g.renderTypes(f)

	for _, t := range tables {
		g.renderTable(f, t)
	}

	f.Comment("AllKeywords maps a language name to its keyword index")
	f.Var().Id("AllKeywords").Op("=").Map(jen.String()).Op("*").Index(jen.Lit(keywords.IndexSize)).Id("KeywordList").Values(jen.DictFunc(func(d jen.Dict) {
		for _, t := range tables {
			d[jen.Lit(t.Language)] = jen.Op("&").Id(goIndexName(t.Language))
		}
	}))

	g.renderLookup(f)

	return f.Render(w)
}

func (g *GoSource) renderTypes(f *jen.File) {
	f.Comment("Category tells the highlighter how to colour a keyword")
	f.Type().Id("Category").Uint8()
	f.Const().DefsFunc(func(d *jen.Group) {
		for i, c := range keywords.Categories {
			if i == 0 {
				d.Id(c.GoName()).Id("Category").Op("=").Iota()
				continue
			}
			d.Id(c.GoName())
		}
	})

	f.Type().Id("Keyword").Struct(
		jen.Id("Str").String(),
		jen.Id("Category").Id("Category"),
	)
	f.Type().Id("KeywordList").Struct(
		jen.Id("Keywords").Index().Id("Keyword"),
		jen.Id("Len").Int(),
	)
}

func (g *GoSource) renderTable(f *jen.File, t *keywords.Table) {
	for _, b := range t.Buckets {
		items := make([]jen.Code, 0, b.Len())
		for _, tok := range b.Tokens {
			items = append(items, jen.Values(jen.Lit(tok.Str), jen.Id(tok.Category.GoName())))
		}
		f.Var().Id(goBucketName(t.Language, b.First)).Op("=").Index(jen.Lit(b.Len())).Id("Keyword").ValuesFunc(multiLine(items))
	}

	index := goIndexName(t.Language)
	if len(t.Buckets) == 0 {
		f.Var().Id(index).Index(jen.Lit(keywords.IndexSize)).Id("KeywordList")
		return
	}

	entries := make([]jen.Code, 0, len(t.Buckets))
	for _, b := range t.Buckets {
		entries = append(entries, jen.LitRune(rune(b.First)).Op(":").Values(
			jen.Id(goBucketName(t.Language, b.First)).Index(jen.Op(":")),
			jen.Lit(b.Len()),
		))
	}
	f.Var().Id(index).Op("=").Index(jen.Lit(keywords.IndexSize)).Id("KeywordList").ValuesFunc(multiLine(entries))
}

func (g *GoSource) renderLookup(f *jen.File) {
	entry := func() *jen.Statement {
		return jen.Id("list").Dot("Keywords").Index(jen.Id("i"))
	}

	f.Comment("Lookup returns the category of word in the given keyword index")
	f.Func().Id("Lookup").Params(
		jen.Id("all").Op("*").Index(jen.Lit(keywords.IndexSize)).Id("KeywordList"),
		jen.Id("word").String(),
	).Params(jen.Id("Category"), jen.Bool()).Block(
		jen.If(jen.Id("word").Op("==").Lit("").Op("||").Id("word").Index(jen.Lit(0)).Op(">=").Lit(keywords.IndexSize)).Block(
			jen.Return(jen.Lit(0), jen.False()),
		),
		jen.Id("list").Op(":=").Id("all").Index(jen.Id("word").Index(jen.Lit(0))),
		jen.Id("i").Op(":=").Qual("sort", "Search").Call(
			jen.Id("list").Dot("Len"),
			jen.Func().Params(jen.Id("i").Int()).Bool().Block(
				jen.Return(entry().Dot("Str").Op(">=").Id("word")),
			),
		),
		jen.If(jen.Id("i").Op("<").Id("list").Dot("Len").Op("&&").Add(entry()).Dot("Str").Op("==").Id("word")).Block(
			jen.Return(entry().Dot("Category"), jen.True()),
		),
		jen.Return(jen.Lit(0), jen.False()),
	)
}
