//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"wildhaven/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("no rows")

func TestWrap(t *testing.T) {
	t.Run("keeps the cause visible to Is", func(t *testing.T) {
		wrapped := errs.Wrap(errSentinel, "query cabins")

		assert.True(t, errs.Is(wrapped, errSentinel))
		assert.Contains(t, wrapped.Error(), "query cabins")
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "query cabins"))
	})
}

func TestIs(t *testing.T) {
	assert.True(t, errs.Is(errSentinel, errSentinel))
	assert.False(t, errs.Is(errs.New("other"), errSentinel))
}
