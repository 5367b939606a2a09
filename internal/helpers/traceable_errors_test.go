package helpers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	var err error
	assert.True(t, IsNil(err))

	var traceableErr Error = NilError
	assert.True(t, IsNil(traceableErr))
	assert.True(t, IsNil(Wrap(nil)))
}

var errSentinel = errors.New("sentinel")

func TestErrorsIsThroughWrap(t *testing.T) {
	err := Errorf("looking up e4: %w", errSentinel)
	assert.False(t, IsNil(err))
	assert.True(t, errors.Is(err, errSentinel))

	outer := Errorf("outer: %w", err)
	assert.True(t, errors.Is(outer, errSentinel))
	assert.Contains(t, outer.Error(), "looking up e4")
}

func TestJoin(t *testing.T) {
	assert.True(t, IsNil(Join(NilError, NilError)))

	a := Errorf("a")
	b := Wrap(errSentinel)
	joined := Join(a, NilError, b)
	assert.Equal(t, 2, joined.NumErrors())
	assert.True(t, errors.Is(joined, errSentinel))
	assert.Equal(t, "a; sentinel", joined.Error())
}
