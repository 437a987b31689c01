package spellcheck

import "context"

// Speller checks text for misspelled words.
type Speller interface {
	// Check spellchecks text and returns the flagged words in the
	// order the engine reported them. Duplicates are preserved;
	// deduplication happens at reporting time.
	Check(ctx context.Context, text string) ([]string, error)
}
