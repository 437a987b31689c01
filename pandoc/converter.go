// Package pandoc invokes the pandoc binary to convert documents
// between formats.
package pandoc

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/fwojciec/spellcheck"
)

// Ensure Converter implements spellcheck.Converter at compile time.
var _ spellcheck.Converter = (*Converter)(nil)

// Converter shells out to pandoc for both conversion legs. Each
// invocation blocks until the subprocess exits; there is no timeout.
type Converter struct {
	// Binary is the pandoc executable to invoke. Defaults to
	// "pandoc" resolved through PATH.
	Binary string
}

// NewConverter returns a Converter using the pandoc binary from PATH.
func NewConverter() *Converter {
	return &Converter{Binary: "pandoc"}
}

// ToHTML converts the file at path to HTML. Pandoc auto-detects the
// source format from the file content and extension.
func (c *Converter) ToHTML(ctx context.Context, path string) (string, error) {
	out, err := c.run(ctx, "", path, "--to", "html")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ToMarkdown converts HTML on standard input back to markdown.
func (c *Converter) ToMarkdown(ctx context.Context, html string) (string, error) {
	return c.run(ctx, html, "--from", "html", "--to", "markdown")
}

func (c *Converter) run(ctx context.Context, stdin string, args ...string) (string, error) {
	binary := c.Binary
	if binary == "" {
		binary = "pandoc"
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", spellcheck.Errorf(spellcheck.ECONVERSION,
			"running '%s %s' failed: %v: %s",
			binary, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
