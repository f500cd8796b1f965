package scope

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption_SomeAndNone(t *testing.T) {
	t.Parallel()
	some := Some(3)
	none := None[int]()

	assert.True(t, some.IsSome())
	assert.False(t, some.IsNone())
	assert.True(t, none.IsNone())

	v, ok := none.Get()
	assert.False(t, ok)
	assert.Zero(t, v)

	assert.Equal(t, 3, some.OrElse(9))
	assert.Equal(t, 9, none.OrElse(9))
	assert.Equal(t, 8, none.OrElseGet(func() int { return 8 }))
	assert.PanicsWithValue(t, "scope: MustGet on None", func() { none.MustGet() })
}

func TestMapOption(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "3", MapOption(Some(3), strconv.Itoa).MustGet())
	assert.True(t, MapOption(None[int](), strconv.Itoa).IsNone())
}
