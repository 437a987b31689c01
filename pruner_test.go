package spellcheck_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/spellcheck"
	"github.com/fwojciec/spellcheck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneHTML(t *testing.T) {
	t.Parallel()

	t.Run("removes inline code including its text", func(t *testing.T) {
		t.Parallel()

		out, err := spellcheck.PruneHTML("<p>Use the <code>frobnicate</code> helper.</p>")

		require.NoError(t, err)
		assert.Contains(t, out, "Use the")
		assert.Contains(t, out, "helper.")
		assert.NotContains(t, out, "frobnicate")
	})

	t.Run("removes code blocks including their text", func(t *testing.T) {
		t.Parallel()

		html := `<p>Intro prose.</p>` +
			`<div class="sourceCode"><pre class="sourceCode python"><code>print("sekrit")</code></pre></div>` +
			`<p>Outro prose.</p>`

		out, err := spellcheck.PruneHTML(html)

		require.NoError(t, err)
		assert.Contains(t, out, "Intro prose.")
		assert.Contains(t, out, "Outro prose.")
		assert.NotContains(t, out, "sekrit")
		assert.NotContains(t, out, "sourceCode")
	})

	t.Run("replaces hyperlinks with their visible text", func(t *testing.T) {
		t.Parallel()

		out, err := spellcheck.PruneHTML(`<p>See <a href="https://example.com/xyzdocs">the docs</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, out, "the docs")
		assert.NotContains(t, out, "example.com")
		assert.NotContains(t, out, "href")
	})

	t.Run("strips bare https tokens not captured as hyperlinks", func(t *testing.T) {
		t.Parallel()

		out, err := spellcheck.PruneHTML("<p>Visit https://weird.example/page now.</p>")

		require.NoError(t, err)
		assert.NotContains(t, out, "https://")
		assert.NotContains(t, out, "weird.example")
		assert.Contains(t, out, "Visit")
		assert.Contains(t, out, "now.")
	})

	t.Run("keeps plain prose unchanged", func(t *testing.T) {
		t.Parallel()

		out, err := spellcheck.PruneHTML("<p>Nothing to prune here.</p>")

		require.NoError(t, err)
		assert.Contains(t, out, "Nothing to prune here.")
	})
}

func TestPruner_Prune(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND without invoking the converter", func(t *testing.T) {
		t.Parallel()

		called := false
		conv := &mock.Converter{
			ToHTMLFn: func(_ context.Context, _ string) (string, error) {
				called = true
				return "", nil
			},
			ToMarkdownFn: func(_ context.Context, _ string) (string, error) {
				called = true
				return "", nil
			},
		}
		pruner := &spellcheck.Pruner{Converter: conv}

		_, err := pruner.Prune(context.Background(), filepath.Join(t.TempDir(), "missing.md"))

		require.Error(t, err)
		assert.Equal(t, spellcheck.ENOTFOUND, spellcheck.ErrorCode(err))
		assert.False(t, called)
	})

	t.Run("propagates conversion failure from the first leg", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "# Title\n")
		conv := &mock.Converter{
			ToHTMLFn: func(_ context.Context, _ string) (string, error) {
				return "", spellcheck.Errorf(spellcheck.ECONVERSION, "pandoc exploded")
			},
		}
		pruner := &spellcheck.Pruner{Converter: conv}

		_, err := pruner.Prune(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, spellcheck.ECONVERSION, spellcheck.ErrorCode(err))
		assert.Contains(t, spellcheck.ErrorMessage(err), "pandoc exploded")
	})

	t.Run("propagates conversion failure from the second leg", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "prose\n")
		conv := &mock.Converter{
			ToHTMLFn: func(_ context.Context, _ string) (string, error) {
				return "<p>prose</p>", nil
			},
			ToMarkdownFn: func(_ context.Context, _ string) (string, error) {
				return "", spellcheck.Errorf(spellcheck.ECONVERSION, "render exploded")
			},
		}
		pruner := &spellcheck.Pruner{Converter: conv}

		_, err := pruner.Prune(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, spellcheck.ECONVERSION, spellcheck.ErrorCode(err))
	})

	t.Run("feeds pruned HTML to the second leg", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "irrelevant\n")
		var rendered string
		conv := &mock.Converter{
			ToHTMLFn: func(_ context.Context, p string) (string, error) {
				assert.Equal(t, path, p)
				return `<p>Run <code>gofmt</code> on <a href="https://example.com">your code</a>.</p>`, nil
			},
			ToMarkdownFn: func(_ context.Context, html string) (string, error) {
				rendered = html
				return "PLAIN", nil
			},
		}
		pruner := &spellcheck.Pruner{Converter: conv}

		out, err := pruner.Prune(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "PLAIN", out)
		assert.NotContains(t, rendered, "gofmt")
		assert.NotContains(t, rendered, "example.com")
		assert.Contains(t, rendered, "your code")
	})
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
