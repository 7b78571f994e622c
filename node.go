package slist

import (
	"encoding/json"
	"fmt"
)

// Node is a single link in a List. Nodes are created by the list's
// insertion operations and are only ever linked into one list at a
// time.
type Node[T comparable] struct {
	next  *Node[T]
	list  *List[T]
	value T
}

// String implements fmt.Stringer, and returns the string value of the
// node's value.
func (n *Node[T]) String() string { return fmt.Sprint(n.Value()) }

// Value returns the node's value, or the zero value for a nil node.
func (n *Node[T]) Value() (out T) {
	if n != nil {
		out = n.value
	}
	return
}

// Next returns the following node, or nil at the tail of the list, for
// detached nodes, and for a nil node.
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// Ok reports whether the node is non-nil and currently owned by a
// list.
func (n *Node[T]) Ok() bool { return n != nil && n.list != nil }

// In reports if a node is a member of the list. Because nodes track
// their owner, this is an O(1) operation.
func (n *Node[T]) In(l *List[T]) bool { return n != nil && l != nil && n.list == l }

// Set replaces the value stored in the node, returning false only
// when the node is nil.
func (n *Node[T]) Set(v T) bool {
	if n == nil {
		return false
	}
	n.value = v
	return true
}

// MarshalJSON returns the result of json.Marshal on the value of the
// node. Nil nodes marshal as null.
func (n *Node[T]) MarshalJSON() ([]byte, error) {
	if n == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(n.value)
}

// release drops everything a node refers to. The node must already be
// unlinked.
func release[T comparable](n *Node[T]) {
	var zero T
	n.next, n.list, n.value = nil, nil, zero
}
