package spellcheck

import (
	"fmt"
	"io"
	"strconv"
)

// Aggregator partitions checked files into clean and flagged, prints
// the final report, and decides the exit code.
type Aggregator struct {
	Stdout   io.Writer
	Styles   Styles
	Reporter *ContextReporter

	// DictionaryPath is echoed in the report so the user knows which
	// word list to extend.
	DictionaryPath string
}

// Aggregate prints the summary for the checked files and returns the
// exit code: 1 if any file has flagged words, 0 otherwise. Context
// for flagged words is rendered against a fresh read of the original
// file, never against the pruned text.
func (a *Aggregator) Aggregate(files []*CheckedFile) (int, error) {
	good, bad := Partition(files)

	if len(good) > 0 {
		if len(good) > 1 {
			a.paragraph("The following files are free from spelling errors:")
		} else {
			a.paragraph("The following file is free from spelling errors:")
		}
		for _, f := range good {
			fmt.Fprintf(a.Stdout, "  - %s\n", f.FilePath)
		}
		fmt.Fprintln(a.Stdout)
		if len(bad) == 0 {
			fmt.Fprintln(a.Stdout, a.Styles.Success("All checked files are free from misspellings!"))
		}
	}

	if len(bad) == 0 {
		return 0, nil
	}

	a.paragraph(fmt.Sprintf("Found %s files with potentially misspelled words.",
		a.Styles.Bold(strconv.Itoa(len(bad)))))

	for _, f := range bad {
		a.paragraph(fmt.Sprintf("The file %s has potentially misspelled words, "+
			"highlighted in their context here:", a.Styles.Bold(f.FilePath)))

		doc, err := ReadDocument(f.FilePath)
		if err != nil {
			return 0, err
		}
		a.Reporter.Report(a.Stdout, doc.Lines(), f.MisspelledWords)

		a.paragraph("All occurrences of the detected potential misspellings are " +
			"highlighted, but code and the link part of markdown links do not " +
			"actually trigger the spellcheck. The potentially misspelled words are:")
		for _, word := range f.UniqueWords() {
			fmt.Fprintf(a.Stdout, "  - %s\n", a.Styles.Misspelled(word))
		}
		fmt.Fprintln(a.Stdout)
	}

	a.paragraph("If you think any word marked as misspelled is actually correct " +
		"in your chosen language, please update your local dictionary at:")
	a.paragraph(a.DictionaryPath)
	fmt.Fprintln(a.Stdout, a.Styles.Wrap("If the word in question is more 'inline "+
		"code' than natural language, you can circumvent spellchecking by using "+
		"backticks (`) since inline code is not spellchecked."))

	return 1, nil
}

// paragraph prints wrapped text followed by a blank line.
func (a *Aggregator) paragraph(text string) {
	fmt.Fprintf(a.Stdout, "%s\n\n", a.Styles.Wrap(text))
}
