package slist

import (
	"encoding/json"
	"testing"

	"github.com/tychoish/slist/assert"
	"github.com/tychoish/slist/assert/check"
)

func TestJSON(t *testing.T) {
	t.Run("Marshal", func(t *testing.T) {
		out, err := json.Marshal(New(1, 2, 3))
		assert.NotError(t, err)
		check.Equal(t, string(out), "[1,2,3]")

		out, err = json.Marshal(&List[string]{})
		assert.NotError(t, err)
		check.Equal(t, string(out), "[]")

		out, err = json.Marshal(New("a", "b"))
		assert.NotError(t, err)
		check.Equal(t, string(out), `["a","b"]`)
	})
	t.Run("MarshalStructs", func(t *testing.T) {
		type record struct {
			Name string `json:"name"`
			Age  int    `json:"age"`
		}
		out, err := json.Marshal(New(record{"merlin", 7}, record{"buddy", 11}))
		assert.NotError(t, err)
		check.Equal(t, string(out), `[{"name":"merlin","age":7},{"name":"buddy","age":11}]`)
	})
	t.Run("MarshalError", func(t *testing.T) {
		_, err := json.Marshal(New(make(chan int)))
		check.Error(t, err)
	})
	t.Run("Node", func(t *testing.T) {
		out, err := json.Marshal(New("hi").Front())
		assert.NotError(t, err)
		check.Equal(t, string(out), `"hi"`)

		var n *Node[string]
		out, err = n.MarshalJSON()
		assert.NotError(t, err)
		check.Equal(t, string(out), "null")
	})
	t.Run("Unmarshal", func(t *testing.T) {
		list := &List[int]{}
		assert.NotError(t, json.Unmarshal([]byte("[1, 2,\n 3]"), list))
		check.EqualItems(t, list.Slice(), []int{1, 2, 3})
		checkChain(t, list)
	})
	t.Run("UnmarshalAppends", func(t *testing.T) {
		list := New(0)
		assert.NotError(t, json.Unmarshal([]byte("[1,2]"), list))
		check.EqualItems(t, list.Slice(), []int{0, 1, 2})
		checkChain(t, list)
	})
	t.Run("UnmarshalMalformed", func(t *testing.T) {
		list := New(0)
		for _, in := range []string{`[1, "two"]`, `{"a": 1}`, `[1, 2`} {
			err := list.UnmarshalJSON([]byte(in))
			check.Error(t, err)
			check.ErrorIs(t, err, ErrMalformedInput)
		}
		check.EqualItems(t, list.Slice(), []int{0})
	})
	t.Run("Embedded", func(t *testing.T) {
		type payload struct {
			Items *List[string] `json:"items"`
		}
		out, err := json.Marshal(payload{Items: New("x", "y")})
		assert.NotError(t, err)
		check.Equal(t, string(out), `{"items":["x","y"]}`)

		var in payload
		assert.NotError(t, json.Unmarshal(out, &in))
		assert.NotNil(t, in.Items)
		check.EqualItems(t, in.Items.Slice(), []string{"x", "y"})
		checkChain(t, in.Items)

		assert.NotError(t, json.Unmarshal([]byte(`{"items":["x"]}`), &in))
		check.EqualItems(t, in.Items.Slice(), []string{"x", "y", "x"})
		checkChain(t, in.Items)
	})
	t.Run("RoundTrip", func(t *testing.T) {
		list := randomList(100)
		out, err := json.Marshal(list)
		assert.NotError(t, err)

		cp := &List[int]{}
		assert.NotError(t, json.Unmarshal(out, cp))
		check.EqualItems(t, cp.Slice(), list.Slice())
	})
}
