package codegen

import (
	"strings"

	"github.com/ted-editor/tools/internal/keywords"
)

func cBucketName(lang string, first byte) string {
	return "syntax_keywords_" + lang + "_" + keywords.EscapeChar(first)
}

func cIndexName(lang string) string {
	return "syntax_all_keywords_" + lang
}

func exportedLang(lang string) string {
	return strings.ToUpper(lang[:1]) + lang[1:]
}

func goBucketName(lang string, first byte) string {
	return "syntaxKeywords" + exportedLang(lang) + "_" + keywords.EscapeChar(first)
}

func goIndexName(lang string) string {
	return "SyntaxAllKeywords" + exportedLang(lang)
}
