package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/ted-editor/tools/internal/codegen"
	"github.com/ted-editor/tools/internal/condition"
	"github.com/ted-editor/tools/internal/errs"
	"github.com/ted-editor/tools/internal/fileutils"
	"github.com/ted-editor/tools/internal/keywords"
	"github.com/ted-editor/tools/internal/logging"
	"github.com/ted-editor/tools/internal/tokendata"
)

// exitStale is returned by --check when the target needs regenerating
const exitStale = 2

var defaultTargets = map[codegen.Format]string{
	codegen.FormatC:  "keywords.h",
	codegen.FormatGo: "keywords_gen.go",
}

type params struct {
	format   string
	pkg      string
	dataFile string
	check    bool
	verbose  bool
	logLevel string
}

func main() {
	if condition.InTest() {
		return
	}

	logging.CurrentHandler().SetFormatter(&logging.ColorFormatter{Formatter: logging.DefaultFormatter})

	if err := newCommand(os.Stdout).Execute(); err != nil {
		os.Exit(report(os.Stderr, err))
	}
}

// report prints err for the person running the generator and returns the exit code to use
func report(w io.Writer, err error) int {
	prefix := "Failed:"
	if errs.IsInputError(err) {
		prefix = "Invalid input:"
	}
	fmt.Fprintf(w, "%s %s\n", color.RedString(prefix), errorMessage(err))
	for _, tip := range errs.Tips(err) {
		fmt.Fprintf(w, "  - %s\n", tip)
	}
	logging.Debug("%+v", err)
	return errs.UnwrapExitCode(err)
}

func inputError(err error) error {
	return errs.WrapUserFacing(err, err.Error(), errs.SetInput(),
		errs.SetTips("Run keywords-generator --help for usage"))
}

// errorMessage prefers the message meant for users, falling back to the whole error chain
func errorMessage(err error) string {
	var userErr errs.UserFacingError
	if errors.As(err, &userErr) {
		return userErr.UserError()
	}
	return errs.JoinMessage(err, ": ")
}

func newCommand(out io.Writer) *cobra.Command {
	p := &params{}

	cmd := &cobra.Command{
		Use:   "keywords-generator [target-file]",
		Short: "Generate the keyword tables used for syntax highlighting",
		Long: "Generates static keyword lookup tables for every language the editor highlights.\n" +
			"Tokens are split into buckets by their first character and written as a C header (default) or Go source.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return inputError(err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			return run(out, p, target)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return inputError(err)
	})

	flags := cmd.Flags()
	flags.StringVarP(&p.format, "format", "f", string(codegen.FormatC), "output format, c or go")
	flags.StringVar(&p.pkg, "package", "", "package name for go output (defaults to $GOPACKAGE under go generate, else syntax)")
	flags.StringVar(&p.dataFile, "data", "", "read token data from this yaml file instead of the built in data")
	flags.BoolVar(&p.check, "check", false, "don't write anything, fail if the target is out of date")
	flags.BoolVarP(&p.verbose, "verbose", "v", false, "log every step, same as --log-level debug")
	flags.StringVar(&p.logLevel, "log-level", "", "minimal level to log: debug, info, warning, error")

	return cmd
}

func run(out io.Writer, p *params, target string) error {
	switch {
	case p.verbose:
		logging.SetLevel(logging.ALL)
	case p.logLevel != "":
		if err := logging.SetMinimalLevelByName(p.logLevel); err != nil {
			return inputError(err)
		}
	}

	format, err := codegen.ParseFormat(p.format)
	if err != nil {
		return errs.WrapUserFacing(err, err.Error(), errs.SetInput())
	}
	if target == "" {
		target = defaultTargets[format]
	}

	opts := codegen.DefaultOptions
	if p.pkg != "" {
		opts.Package = p.pkg
	} else if condition.InGoGenerate() {
		opts.Package = os.Getenv("GOPACKAGE")
	}
	if condition.InGoGenerate() {
		logging.Debug("Invoked by go generate from %s", os.Getenv("GOFILE"))
	}

	generated, n, err := generate(p.dataFile, format, opts)
	if err != nil {
		return err
	}

	if p.check {
		return check(out, target, generated)
	}

	changed, err := fileutils.WriteFileIfChanged(target, generated)
	if err != nil {
		return errs.Wrap(err, "Could not write keyword tables")
	}
	if !changed {
		fmt.Fprintf(out, "%s is up to date\n", target)
		return nil
	}
	fmt.Fprintf(out, "Wrote keyword tables for %d languages to %s\n", n, color.GreenString(target))
	return nil
}

func generate(dataFile string, format codegen.Format, opts codegen.Options) ([]byte, int, error) {
	var data *tokendata.Data
	var err error
	if dataFile != "" {
		data, err = tokendata.LoadFile(dataFile)
	} else {
		data, err = tokendata.Load()
	}
	if err != nil {
		return nil, 0, err
	}

	langs, err := data.Resolve()
	if err != nil {
		return nil, 0, errs.WrapUserFacing(err, errs.JoinMessage(err, ": "), errs.SetInput())
	}
	logging.Info("Loaded %d languages", len(langs))

	tables, err := keywords.Build(langs)
	if err != nil {
		var dupErr *keywords.DuplicateTokenError
		return nil, 0, errs.WrapUserFacing(err, errs.JoinMessage(err, ": "), errs.SetInput(),
			errs.SetIf(errors.As(err, &dupErr),
				errs.SetTips("Every literal may appear only once per language, remove it from all but one category")))
	}

	generated, err := codegen.Generate(format, opts, tables)
	if err != nil {
		return nil, 0, err
	}
	return generated, len(tables), nil
}

func check(out io.Writer, target string, generated []byte) error {
	current := []byte{}
	if !fileutils.FileExists(target) {
		logging.Warning("%s does not exist yet", target)
	} else {
		b, err := fileutils.ReadFile(target)
		if err != nil {
			return err
		}
		current = b
	}

	if string(current) == string(generated) {
		fmt.Fprintf(out, "%s is up to date\n", target)
		return nil
	}

	fmt.Fprint(out, lineDiff(string(current), string(generated)))
	return errs.WrapExitCode(
		errs.NewUserFacing(target+" is out of date", errs.SetTips("Run keywords-generator (or go generate) to regenerate it")),
		exitStale,
	)
}

// lineDiff renders the lines that differ between a and b, prefixed with - and +
func lineDiff(a, b string) string {
	dmp := diffmatchpatch.New()
	ac, bc, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ac, bc, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		var paint func(format string, a ...interface{}) string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, paint = "-", color.RedString
		case diffmatchpatch.DiffInsert:
			prefix, paint = "+", color.GreenString
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(paint("%s", prefix+strings.TrimSuffix(line, "\n")))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
