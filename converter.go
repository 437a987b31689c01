package spellcheck

import "context"

// Converter converts documents between formats by way of an external
// format-conversion capability.
type Converter interface {
	// ToHTML converts the file at path to HTML, auto-detecting the
	// source format. Returns ECONVERSION if the conversion fails.
	ToHTML(ctx context.Context, path string) (string, error)

	// ToMarkdown converts HTML back into a plain markdown rendering.
	// Returns ECONVERSION if the conversion fails.
	ToMarkdown(ctx context.Context, html string) (string, error)
}

// MarkdownRenderer renders HTML as markdown. It covers the second leg
// of the conversion round-trip for converters that only handle the
// first.
type MarkdownRenderer interface {
	ToMarkdown(ctx context.Context, html string) (string, error)
}

// Ensure ComposedConverter implements Converter at compile time.
var _ Converter = (*ComposedConverter)(nil)

// ComposedConverter pairs the HTML leg of one converter with a
// standalone markdown renderer.
type ComposedConverter struct {
	HTML     Converter
	Markdown MarkdownRenderer
}

// ToHTML delegates to the HTML converter.
func (c *ComposedConverter) ToHTML(ctx context.Context, path string) (string, error) {
	return c.HTML.ToHTML(ctx, path)
}

// ToMarkdown delegates to the markdown renderer.
func (c *ComposedConverter) ToMarkdown(ctx context.Context, html string) (string, error) {
	return c.Markdown.ToMarkdown(ctx, html)
}
