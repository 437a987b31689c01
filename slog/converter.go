package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/spellcheck"
)

// Ensure LoggingConverter implements spellcheck.Converter.
var _ spellcheck.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with debug logging.
type LoggingConverter struct {
	next   spellcheck.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next spellcheck.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// ToHTML delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) ToHTML(ctx context.Context, path string) (html string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("convert to html",
			"path", path,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ToHTML(ctx, path)
}

// ToMarkdown delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) ToMarkdown(ctx context.Context, html string) (markdown string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("convert to markdown",
			"bytes", len(markdown),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ToMarkdown(ctx, html)
}
