// Package fuzzy provides an in-process word-list spellchecking
// engine for hosts where aspell is not installed.
package fuzzy

import (
	"bufio"
	"context"
	"os"
	"strings"
	"unicode"

	"github.com/fwojciec/spellcheck"
	"github.com/sajari/fuzzy"
)

// Ensure Speller implements spellcheck.Speller at compile time.
var _ spellcheck.Speller = (*Speller)(nil)

// Speller checks tokens against a model trained from word-list files.
// Unlike aspell it is not markdown-aware, so it relies entirely on
// the pruner having removed code and link targets beforehand.
type Speller struct {
	model *fuzzy.Model
}

// NewSpeller trains a speller from the personal dictionary at
// dictionary plus any extra word-list files, one word per line. A
// leading "personal_ws-1.1 ..." header line is skipped. Returns
// ENOTFOUND for a missing file, so a bad path aborts before any file
// is checked.
func NewSpeller(dictionary string, wordlists ...string) (*Speller, error) {
	model := fuzzy.NewModel()
	model.SetDepth(2)
	model.SetThreshold(1)

	paths := append([]string{dictionary}, wordlists...)
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := trainFromFile(model, path); err != nil {
			return nil, err
		}
	}
	return &Speller{model: model}, nil
}

func trainFromFile(model *fuzzy.Model, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return spellcheck.Errorf(spellcheck.ENOTFOUND,
				"no file exists at the specified dictionary path: %s", path)
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "personal_ws-") {
			continue
		}
		model.TrainWord(strings.ToLower(word))
	}
	return scanner.Err()
}

// Check tokenizes text on whitespace, strips surrounding punctuation,
// and flags every token the model has no exact match for. Tokens are
// reported in encounter order, duplicates included, matching the
// aspell engine contract.
func (s *Speller) Check(ctx context.Context, text string) ([]string, error) {
	var flagged []string
	for _, field := range strings.Fields(text) {
		token := cleanToken(field)
		if token == "" {
			continue
		}
		lower := strings.ToLower(token)
		if _, known := s.model.Potentials(lower, false)[lower]; known {
			continue
		}
		flagged = append(flagged, token)
	}
	return flagged, nil
}

// cleanToken trims punctuation from a whitespace-delimited field and
// returns the remaining word, or "" if the field is not a word (too
// short, contains digits or inner symbols).
func cleanToken(field string) string {
	token := strings.TrimFunc(field, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if len([]rune(token)) < 2 {
		return ""
	}
	for _, r := range token {
		if !unicode.IsLetter(r) && r != '\'' {
			return ""
		}
	}
	return token
}
