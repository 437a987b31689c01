package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/spellcheck"
	"github.com/fwojciec/spellcheck/aspell"
	"github.com/fwojciec/spellcheck/fuzzy"
	"github.com/fwojciec/spellcheck/htmltomarkdown"
	"github.com/fwojciec/spellcheck/lipgloss"
	"github.com/fwojciec/spellcheck/pandoc"
	scslog "github.com/fwojciec/spellcheck/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	code, err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "The spellcheck tool encountered a fatal error: %s\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments and returns the exit
// code to terminate with: 0 when all checked files are clean, 1 when
// misspellings were found. Fatal errors are returned instead.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) (int, error) {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("spellcheck"),
		kong.Description("Spellcheck the provided files with aspell using the provided "+
			"dictionary. The language should be specified with a locale code like "+
			"'en_US'. Requires aspell and pandoc on PATH. Any processing error "+
			"aborts the whole run."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return 0, fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return 0, nil
	}

	if _, err := parser.Parse(args); err != nil {
		return 0, err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	if cli.Plain {
		deps.Styles = spellcheck.PlainStyles()
	} else {
		deps.Styles = lipgloss.DefaultStyles()
	}

	var conv spellcheck.Converter = pandoc.NewConverter()
	if cli.BuiltinRenderer {
		conv = &spellcheck.ComposedConverter{
			HTML:     conv,
			Markdown: htmltomarkdown.NewRenderer(),
		}
	}

	// The speller constructors validate the dictionary path, so a bad
	// path fails here, before any file is checked.
	var speller spellcheck.Speller
	switch cli.Engine {
	case "builtin":
		speller, err = fuzzy.NewSpeller(cli.Dictionary, cli.Wordlist...)
	default:
		speller, err = aspell.NewSpeller(cli.Language, cli.Dictionary)
	}
	if err != nil {
		return 0, err
	}

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		conv = scslog.NewLoggingConverter(conv, logger)
		speller = scslog.NewLoggingSpeller(speller, logger)
	}

	deps.Converter = conv
	deps.Speller = speller

	if err := cli.Run(deps); err != nil {
		return 0, err
	}
	return deps.ExitCode, nil
}
