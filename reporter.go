package spellcheck

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Styles is an injectable set of render hooks for report output.
// Each hook receives a string and returns it decorated, so output
// targets without ANSI support can use PlainStyles.
type Styles struct {
	// Misspelled marks a flagged word inside its line context.
	Misspelled func(string) string

	// LineNumber decorates the line-number gutter.
	LineNumber func(string) string

	// Rule decorates the separator between disjoint context blocks.
	Rule func(string) string

	// Bold emphasizes headings and file names.
	Bold func(string) string

	// Success decorates the all-clean summary line.
	Success func(string) string

	// Wrap reflows paragraph text for the output target.
	Wrap func(string) string
}

// PlainStyles returns styles that leave text unchanged.
func PlainStyles() Styles {
	identity := func(s string) string { return s }
	return Styles{
		Misspelled: identity,
		LineNumber: identity,
		Rule:       identity,
		Bold:       identity,
		Success:    identity,
		Wrap:       identity,
	}
}

// ContextReporter prints flagged words in their original-file context.
type ContextReporter struct {
	Styles Styles
}

// Report prints every line containing a flagged word together with
// one line of surrounding context, clamped to file bounds. Matching
// is case-sensitive substring containment: a flagged word inside a
// longer word still matches, and every literal occurrence on a line
// is highlighted. Lines print in ascending order with 1-based line
// numbers right-aligned to the widest number; a dashed rule separates
// context blocks that are not adjacent in the file.
func (r *ContextReporter) Report(w io.Writer, lines []string, words []string) {
	highlighted := make([]string, len(lines))
	matched := make(map[int]bool)
	for i, line := range lines {
		highlighted[i] = line
		for _, word := range words {
			if word == "" {
				continue
			}
			if strings.Contains(line, word) {
				matched[i] = true
				highlighted[i] = strings.ReplaceAll(highlighted[i], word, r.Styles.Misspelled(word))
			}
		}
	}
	if len(matched) == 0 {
		return
	}

	printSet := make(map[int]bool)
	for i := range matched {
		if i > 0 {
			printSet[i-1] = true
		}
		if i < len(lines)-1 {
			printSet[i+1] = true
		}
		printSet[i] = true
	}

	order := make([]int, 0, len(printSet))
	for i := range printSet {
		order = append(order, i)
	}
	sort.Ints(order)

	width := len(strconv.Itoa(len(lines) + 1))
	last := order[0]
	for _, i := range order {
		if i-last > 1 {
			fmt.Fprintln(w, r.Styles.Rule(strings.Repeat("-", width)))
		}
		gutter := fmt.Sprintf("%*d:", width, i+1)
		fmt.Fprintf(w, "%s %s\n", r.Styles.LineNumber(gutter), highlighted[i])
		last = i
	}
	fmt.Fprintln(w)
}
