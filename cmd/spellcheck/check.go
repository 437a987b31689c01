package main

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/spellcheck"
)

// Run executes the spellcheck over every file matching the glob
// pattern. Files are processed sequentially in discovery order; the
// first prune or engine error aborts the whole run.
func (c *CLI) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "%s\n\n", deps.Styles.Wrap(deps.Styles.Bold("RUNNING SPELLCHECK")))

	paths, err := doublestar.FilepathGlob(c.Files)
	if err != nil {
		return spellcheck.Errorf(spellcheck.EINVALID, "invalid glob pattern %q: %v", c.Files, err)
	}

	pruner := &spellcheck.Pruner{Converter: deps.Converter}

	checked := make([]*spellcheck.CheckedFile, 0, len(paths))
	for _, path := range paths {
		pruned, err := pruner.Prune(deps.Ctx, path)
		if err != nil {
			return err
		}

		words, err := deps.Speller.Check(deps.Ctx, pruned)
		if err != nil {
			return err
		}

		checked = append(checked, &spellcheck.CheckedFile{
			FilePath:        path,
			MisspelledWords: words,
		})
	}

	agg := &spellcheck.Aggregator{
		Stdout:         deps.Stdout,
		Styles:         deps.Styles,
		Reporter:       &spellcheck.ContextReporter{Styles: deps.Styles},
		DictionaryPath: c.Dictionary,
	}
	code, err := agg.Aggregate(checked)
	if err != nil {
		return err
	}
	deps.ExitCode = code
	return nil
}
