package mock

import (
	"context"

	"github.com/fwojciec/spellcheck"
)

var _ spellcheck.Speller = (*Speller)(nil)

// Speller is a mock implementation of spellcheck.Speller.
type Speller struct {
	CheckFn func(ctx context.Context, text string) ([]string, error)
}

func (s *Speller) Check(ctx context.Context, text string) ([]string, error) {
	return s.CheckFn(ctx, text)
}
