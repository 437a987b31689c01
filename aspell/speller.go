// Package aspell invokes the aspell binary as the spellchecking
// engine.
package aspell

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/fwojciec/spellcheck"
)

// Ensure Speller implements spellcheck.Speller at compile time.
var _ spellcheck.Speller = (*Speller)(nil)

// Speller shells out to aspell in markdown-aware list mode. Each
// invocation blocks until the subprocess exits; there is no timeout.
type Speller struct {
	// Binary is the aspell executable to invoke. Defaults to
	// "aspell" resolved through PATH.
	Binary string

	// Lang is the locale code of the document language, e.g. "en_US".
	Lang string

	// Dictionary is the path to the personal dictionary. Empty means
	// the engine's default dictionary only.
	Dictionary string

	// HomeDir scopes engine-generated cache artifacts. Defaults to
	// the current directory.
	HomeDir string
}

// NewSpeller returns a Speller for lang using the personal dictionary
// at dictionary. Returns ENOTFOUND if a dictionary path is given but
// no file exists there, so a bad path aborts before any file is
// checked.
func NewSpeller(lang, dictionary string) (*Speller, error) {
	if dictionary != "" {
		if _, err := os.Stat(dictionary); err != nil {
			return nil, spellcheck.Errorf(spellcheck.ENOTFOUND,
				"no file exists at the specified dictionary path: %s", dictionary)
		}
	}
	return &Speller{
		Binary:     "aspell",
		Lang:       lang,
		Dictionary: dictionary,
		HomeDir:    ".",
	}, nil
}

// Check feeds text to aspell and returns the flagged words in engine
// order, duplicates included. Whitespace-only engine output means no
// flagged words.
func (s *Speller) Check(ctx context.Context, text string) ([]string, error) {
	homeDir := s.HomeDir
	if homeDir == "" {
		homeDir = "."
	}

	args := []string{"--home-dir", homeDir, "--mode", "markdown", "--lang", s.Lang}
	if s.Dictionary != "" {
		args = append(args, "--personal", s.Dictionary)
	}
	args = append(args, "list")

	binary := s.Binary
	if binary == "" {
		binary = "aspell"
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdin = strings.NewReader(text)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, spellcheck.Errorf(spellcheck.ESPELLCHECK,
			"running '%s %s' failed: %v: %s",
			binary, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return ParseWords(stdout.String()), nil
}

// ParseWords splits the engine's newline-delimited word list. Each
// word is trimmed; whitespace-only input yields no words.
func ParseWords(out string) []string {
	trimmed := strings.TrimSpace(out)
	if trimmed == "" {
		return nil
	}
	lines := strings.Split(trimmed, "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		words = append(words, strings.TrimSpace(line))
	}
	return words
}
