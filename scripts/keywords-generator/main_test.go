package main

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ted-editor/tools/internal/errs"
	"github.com/ted-editor/tools/internal/logging"
)

func init() {
	color.NoColor = true
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Setenv("GOFILE", "")
	t.Setenv("GOPACKAGE", "")

	out := &bytes.Buffer{}
	cmd := newCommand(out)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	err := cmd.Execute()
	return out.String(), err
}

func writeData(t *testing.T, src string) string {
	path := filepath.Join(t.TempDir(), "tokens.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestGenerate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "keywords.h")

	out, err := execute(t, target)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote keyword tables for 13 languages to "+target)
	assert.FileExists(t, target, "File is generated")

	b, err := os.ReadFile(target)
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, "static const KeywordList syntax_all_keywords_c[128] = {\n")
	assert.Contains(t, s, "static const KeywordList syntax_all_keywords_css[128] = {\n")
	assert.Contains(t, s, "static const Keyword syntax_keywords_css_x40[")
	assert.Contains(t, s, `{"href=", SYNTAX_BUILTIN}`)

	out, err = execute(t, target)
	require.NoError(t, err)
	assert.Equal(t, target+" is up to date\n", out)

	again, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, b, again, "regenerating gives identical output")
}

func TestGenerateGo(t *testing.T) {
	target := filepath.Join(t.TempDir(), "highlight", "keywords_gen.go")

	_, err := execute(t, "--format", "go", "--package", "highlight", target)
	require.NoError(t, err)

	b, err := os.ReadFile(target)
	require.NoError(t, err)
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, target, b, 0)
	require.NoError(t, err)
	assert.Equal(t, "highlight", file.Name.Name)
	assert.Contains(t, string(b), "var SyntaxAllKeywordsGlsl = [128]KeywordList{")

	consumer, err := parser.ParseFile(fset, "consumer.go", `package highlight

var _, _ = Lookup(AllKeywords["cpp"], "constexpr")
var _, _ = Lookup(&SyntaxAllKeywordsCss, "@media")
`, 0)
	require.NoError(t, err)

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	_, err = conf.Check("highlight", fset, []*ast.File{file, consumer}, nil)
	assert.NoError(t, err, "generated tables must compile")
}

func TestLogLevel(t *testing.T) {
	logs := &bytes.Buffer{}
	prevOut, prevLevel := logging.CurrentHandler().Output(), logging.Level()
	logging.SetOutput(logs)
	t.Cleanup(func() {
		logging.SetOutput(prevOut)
		logging.SetLevel(prevLevel)
	})

	target := filepath.Join(t.TempDir(), "keywords.h")
	_, err := execute(t, target)
	require.NoError(t, err)
	assert.NotContains(t, logs.String(), "Loaded 13 languages", "info is hidden by default")

	_, err = execute(t, "--log-level", "info", target)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "[INFO ")
	assert.Contains(t, logs.String(), "Loaded 13 languages")
	assert.NotContains(t, logs.String(), "[DEBUG ")

	_, err = execute(t, "--log-level", "chatty", target)
	require.Error(t, err)
	assert.True(t, errs.IsInputError(err))
}

func TestReport(t *testing.T) {
	out := &bytes.Buffer{}
	code := report(out, errs.WrapUserFacing(errs.New("bad"), "Token data is invalid", errs.SetInput(), errs.SetTips("Fix it")))
	assert.Equal(t, 1, code)
	assert.Equal(t, "Invalid input: Token data is invalid\n  - Fix it\n", out.String())

	out.Reset()
	code = report(out, errs.Wrap(errs.New("disk full"), "Could not write keyword tables"))
	assert.Equal(t, 1, code)
	assert.Equal(t, "Failed: Could not write keyword tables: disk full\n", out.String())

	_, err := execute(t, "--no-such-flag")
	require.Error(t, err)
	out.Reset()
	report(out, err)
	assert.Contains(t, out.String(), "Invalid input: unknown flag: --no-such-flag")
}

func TestGenerateFromDataFile(t *testing.T) {
	data := writeData(t, `
languages:
  - name: c
    groups:
      - category: keyword
        tokens: [if, else, do, while]
  - name: empty
    groups: []
`)
	target := filepath.Join(t.TempDir(), "keywords.h")

	out, err := execute(t, "--data", data, target)
	require.NoError(t, err)
	assert.Contains(t, out, "for 2 languages")

	b, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(b), "\t['w'] = {syntax_keywords_c_w, 1},\n")
	assert.Contains(t, string(b), "static const KeywordList syntax_all_keywords_empty[128] = {0};\n")
}

func TestDuplicateTokensAbort(t *testing.T) {
	data := writeData(t, `
languages:
  - name: go
    groups:
      - category: constant
        tokens: ["nil", "true"]
      - category: builtin
        tokens: ["nil", "len"]
`)
	target := filepath.Join(t.TempDir(), "keywords.h")

	_, err := execute(t, "--data", data, target)
	require.Error(t, err)
	assert.Contains(t, errorMessage(err), `language go: duplicate token "nil" (constant and builtin)`)
	assert.NotEmpty(t, errs.Tips(err))
	assert.True(t, errs.IsInputError(err))
	assert.Equal(t, 1, errs.UnwrapExitCode(err))
	assert.NoFileExists(t, target, "nothing is written when validation fails")
}

func TestCheck(t *testing.T) {
	target := filepath.Join(t.TempDir(), "keywords.h")

	_, err := execute(t, "--check", target)
	require.Error(t, err, "a missing target is out of date")
	assert.Equal(t, exitStale, errs.UnwrapExitCode(err))
	assert.NoFileExists(t, target)

	_, err = execute(t, target)
	require.NoError(t, err)

	out, err := execute(t, "--check", target)
	require.NoError(t, err)
	assert.Contains(t, out, "is up to date")

	b, err := os.ReadFile(target)
	require.NoError(t, err)
	edited := strings.Replace(string(b), `{"while", SYNTAX_KEYWORD}`, `{"whilst", SYNTAX_KEYWORD}`, 1)
	require.NoError(t, os.WriteFile(target, []byte(edited), 0644))

	out, err = execute(t, "--check", target)
	require.Error(t, err)
	assert.Equal(t, exitStale, errs.UnwrapExitCode(err))
	assert.Equal(t, target+" is out of date", errorMessage(err))
	assert.Contains(t, out, "-static const Keyword syntax_keywords_c_w[")
	assert.Contains(t, out, "+static const Keyword syntax_keywords_c_w[")
}

func TestInvalidArguments(t *testing.T) {
	_, err := execute(t, "--format", "rust")
	require.Error(t, err)
	assert.True(t, errs.IsInputError(err))

	_, err = execute(t, "a.h", "b.h")
	require.Error(t, err)
	assert.True(t, errs.IsInputError(err))

	_, err = execute(t, "--data", filepath.Join(t.TempDir(), "missing.yaml"), filepath.Join(t.TempDir(), "k.h"))
	require.Error(t, err)
	assert.Contains(t, errorMessage(err), "Could not read token data")
}

func TestLineDiff(t *testing.T) {
	diff := lineDiff("a\nb\nc\n", "a\nB\nc\nd\n")
	assert.Equal(t, "-b\n+B\n+d\n", diff)
	assert.Empty(t, lineDiff("same\n", "same\n"))
}
