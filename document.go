package spellcheck

import (
	"os"
	"strings"
)

// Document represents a file under spelling evaluation. The pruner
// and the context reporter read the file independently because their
// views diverge (pruned plain text vs raw lines).
type Document struct {
	// Path the content was read from.
	Path string

	// Raw textual content, immutable once read.
	Content string
}

// ReadDocument reads the file at path into a Document.
// Returns ENOTFOUND if no file exists at path.
func ReadDocument(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Errorf(ENOTFOUND, "can't spellcheck non-existent file: %s", path)
		}
		return nil, err
	}
	return &Document{Path: path, Content: string(content)}, nil
}

// Lines splits the content into lines without trailing newlines.
func (d *Document) Lines() []string {
	return strings.Split(strings.TrimSuffix(d.Content, "\n"), "\n")
}

// CheckedFile is the result of spellchecking a single file. It is
// created once per input file and never mutated afterwards.
type CheckedFile struct {
	FilePath        string
	MisspelledWords []string
}

// Clean reports whether the file produced no flagged words.
func (f *CheckedFile) Clean() bool {
	return len(f.MisspelledWords) == 0
}

// UniqueWords returns the flagged words deduplicated, keeping
// first-seen order. The engine reports a token once per occurrence;
// deduplication is a reporting-time concern.
func (f *CheckedFile) UniqueWords() []string {
	seen := make(map[string]bool, len(f.MisspelledWords))
	words := make([]string, 0, len(f.MisspelledWords))
	for _, w := range f.MisspelledWords {
		if seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return words
}

// Partition splits checked files into clean and flagged. Every file
// lands in exactly one of the two groups.
func Partition(files []*CheckedFile) (good, bad []*CheckedFile) {
	for _, f := range files {
		if f.Clean() {
			good = append(good, f)
		} else {
			bad = append(bad, f)
		}
	}
	return good, bad
}
