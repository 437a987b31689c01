package spellcheck

import (
	"context"
	stdhtml "html"
	"os"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// bareURLPattern matches link-like tokens that survive tree pruning,
// e.g. bare URLs pasted into prose outside of a hyperlink node.
var bareURLPattern = regexp.MustCompile(`https://\S*`)

// Pruner produces a spellchecker-safe plain-text rendering of a
// document: inline code, code blocks, and link targets are removed
// while prose and link text are kept.
type Pruner struct {
	Converter Converter
}

// Prune converts the file at path into pruned markdown. The content
// round-trips through HTML even when there is nothing to prune, so
// the output may differ from the input in whitespace only.
// Returns ENOTFOUND if path does not exist; conversion failures are
// propagated from the converter.
func (p *Pruner) Prune(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", Errorf(ENOTFOUND, "can't spellcheck non-existent file: %s", path)
	}

	html, err := p.Converter.ToHTML(ctx, path)
	if err != nil {
		return "", err
	}

	pruned, err := PruneHTML(html)
	if err != nil {
		return "", err
	}

	return p.Converter.ToMarkdown(ctx, pruned)
}

// PruneHTML removes every inline-code node and code block from an
// HTML fragment, replaces every hyperlink with its visible text, and
// strips any remaining bare https:// tokens from the serialized
// result. Code blocks are identified by the "sourceCode" wrapper the
// converter emits.
func PruneHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", Errorf(EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("code").Remove()
	doc.Find("div.sourceCode").Remove()

	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		sel.ReplaceWithHtml(stdhtml.EscapeString(sel.Text()))
	})

	pruned, err := doc.Find("body").Html()
	if err != nil {
		return "", Errorf(EINTERNAL, "failed to serialize pruned HTML: %v", err)
	}

	return bareURLPattern.ReplaceAllString(pruned, ""), nil
}
