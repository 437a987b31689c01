package mock

import (
	"context"

	"github.com/fwojciec/spellcheck"
)

var _ spellcheck.Converter = (*Converter)(nil)

// Converter is a mock implementation of spellcheck.Converter.
type Converter struct {
	ToHTMLFn     func(ctx context.Context, path string) (string, error)
	ToMarkdownFn func(ctx context.Context, html string) (string, error)
}

func (c *Converter) ToHTML(ctx context.Context, path string) (string, error) {
	return c.ToHTMLFn(ctx, path)
}

func (c *Converter) ToMarkdown(ctx context.Context, html string) (string, error) {
	return c.ToMarkdownFn(ctx, html)
}
