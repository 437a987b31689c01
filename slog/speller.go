// Package slog provides logging decorators for the collaborator
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/spellcheck"
)

// Ensure LoggingSpeller implements spellcheck.Speller.
var _ spellcheck.Speller = (*LoggingSpeller)(nil)

// LoggingSpeller wraps a Speller with debug logging.
type LoggingSpeller struct {
	next   spellcheck.Speller
	logger *slog.Logger
}

// NewLoggingSpeller creates a new LoggingSpeller.
func NewLoggingSpeller(next spellcheck.Speller, logger *slog.Logger) *LoggingSpeller {
	return &LoggingSpeller{next: next, logger: logger}
}

// Check delegates to the wrapped speller and logs the operation.
func (s *LoggingSpeller) Check(ctx context.Context, text string) (words []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("spellcheck",
			"bytes", len(text),
			"flagged", len(words),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Check(ctx, text)
}
