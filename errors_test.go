package spellcheck_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/spellcheck"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code of application error", func(t *testing.T) {
		t.Parallel()

		err := spellcheck.Errorf(spellcheck.ENOTFOUND, "file missing")

		assert.Equal(t, spellcheck.ENOTFOUND, spellcheck.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for non-application error", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")

		assert.Equal(t, spellcheck.EINTERNAL, spellcheck.ErrorCode(err))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, spellcheck.ErrorCode(nil))
	})

	t.Run("unwraps wrapped application error", func(t *testing.T) {
		t.Parallel()

		inner := spellcheck.Errorf(spellcheck.ECONVERSION, "pandoc failed")
		err := errors.Join(errors.New("outer"), inner)

		assert.Equal(t, spellcheck.ECONVERSION, spellcheck.ErrorCode(err))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns formatted message of application error", func(t *testing.T) {
		t.Parallel()

		err := spellcheck.Errorf(spellcheck.EINVALID, "bad pattern %q", "[")

		assert.Equal(t, `bad pattern "["`, spellcheck.ErrorMessage(err))
	})

	t.Run("returns generic message for non-application error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", spellcheck.ErrorMessage(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, spellcheck.ErrorMessage(nil))
	})
}

func TestError_Error(t *testing.T) {
	t.Parallel()

	err := spellcheck.Errorf(spellcheck.ESPELLCHECK, "engine exited")

	assert.Equal(t, "spellcheck error: code=spellcheck message=engine exited", err.Error())
}
