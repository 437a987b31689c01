// Package htmltomarkdown renders HTML as markdown in-process,
// covering the second conversion leg without a subprocess.
package htmltomarkdown

import (
	"context"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/spellcheck"
)

// Ensure Renderer implements spellcheck.MarkdownRenderer at compile time.
var _ spellcheck.MarkdownRenderer = (*Renderer)(nil)

// Renderer wraps html-to-markdown to convert pruned HTML to Markdown.
type Renderer struct {
	conv *converter.Converter
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Renderer{conv: conv}
}

// ToMarkdown transforms HTML content into Markdown. Empty input is
// legitimate here: a document that was nothing but code prunes down
// to nothing.
func (r *Renderer) ToMarkdown(ctx context.Context, html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	result, err := r.conv.ConvertString(html)
	if err != nil {
		return "", spellcheck.Errorf(spellcheck.ECONVERSION,
			"failed to render markdown: %v", err)
	}
	return result, nil
}
