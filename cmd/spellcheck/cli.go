package main

import (
	"context"
	"io"

	"github.com/fwojciec/spellcheck"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Converter spellcheck.Converter
	Speller   spellcheck.Speller
	Styles    spellcheck.Styles

	// ExitCode is set by the command: 1 when misspellings were found,
	// 0 otherwise.
	ExitCode int
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Files           string   `arg:"" help:"Glob pattern of files to spellcheck ('**' matches nested directories)."`
	Language        string   `short:"l" default:"en_US" help:"Locale code of the language in which the provided files are written."`
	Dictionary      string   `short:"d" required:"" help:"Path to personal dictionary with words to accept (must have 'personal_ws-1.1 <language> 1000 utf-8' on the first line)."`
	Engine          string   `default:"aspell" enum:"aspell,builtin" help:"Spellchecking engine: the aspell binary or the builtin word-list engine."`
	Wordlist        []string `help:"Extra word-list files for the builtin engine (repeatable)."`
	BuiltinRenderer bool     `help:"Render pruned HTML to markdown in-process instead of a second pandoc call."`
	Plain           bool     `help:"Disable ANSI colors and paragraph wrapping."`
	Verbose         bool     `short:"v" help:"Log converter and engine invocations to stderr."`
}
