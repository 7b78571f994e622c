package assert_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/tychoish/slist/assert"
)

func TestAssertion(t *testing.T) {
	var strVal string = "merlin"
	var zeroStrPtr *string
	var err error

	t.Run("Passing", func(t *testing.T) {
		assert.True(t, true)
		assert.Equal(t, 1, 1)
		assert.NotEqual(t, 10, 1)
		assert.Zero(t, "")
		assert.NotZero(t, strVal)
		assert.Nil(t, nil)
		assert.Nil(t, zeroStrPtr)
		assert.NotNil(t, strVal)
		assert.NotNil(t, 42)
		assert.Error(t, errors.New(strVal))
		assert.NotError(t, err)
		assert.ErrorIs(t, fmt.Errorf("end: %w", io.EOF), io.EOF)
		assert.NotErrorIs(t, fmt.Errorf("end"), io.EOF)
		assert.Panic(t, func() { panic(strVal) })
		assert.NotPanic(t, func() {})
		assert.Contains(t, []int{1, 2, 3}, 3)
		assert.NotContains(t, []int{1, 2, 3}, 43)
		assert.NotContains(t, []int{}, 43)
		assert.EqualItems(t, []int{12, 34, 56}, []int{12, 34, 56})
		assert.EqualItems(t, []int{}, nil)
		assert.Substring(t, "merlin the cat", strVal)
	})
}
