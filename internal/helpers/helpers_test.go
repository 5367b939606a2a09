package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	a := make([]int, 0, 5)
	b := append(a[:0], 1, 2, 3, 4)
	c := append(a[:0], 4, 5, 6)

	assert.Equal(t, []int{}, a)
	assert.Equal(t, []int{4, 5, 6, 4}, b)
	assert.Equal(t, []int{4, 5, 6}, c)
}

func TestSortedSet(t *testing.T) {
	assert.Equal(t, []int{0, 3, 7}, SortedSet([]int{7, 0, 7, 3, 0}))
	assert.Equal(t, []int{}, SortedSet([]int{}))
}

func TestAbsDiff(t *testing.T) {
	assert.Equal(t, 3, AbsDiff(2, 5))
	assert.Equal(t, 3, AbsDiff(5, 2))
	assert.Equal(t, uint(0), AbsDiff(uint(4), uint(4)))
}

func TestOptional(t *testing.T) {
	assert.True(t, Empty[int]().IsEmpty())
	assert.Equal(t, 4, Empty[int]().ValueOr(4))
	assert.Equal(t, 2, Some(2).ValueOr(4))
	assert.True(t, FindInSlice([]string{"a", "b"}, func(s string) bool { return s == "b" }).HasValue())
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n\n  b", Indent("a\n\nb", "  "))
}
