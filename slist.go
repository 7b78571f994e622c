// Package slist provides a generic singly linked list.
//
// A List is a handle that owns a chain of Nodes. The zero value is an
// empty list that is ready to use. Operations that change the head of
// the chain update the handle in place, so callers never need to
// reassign it. Nodes record the list that owns them: a node is owned
// by at most one list, and moving nodes between lists (Concat) or out
// of a list (RemoveLink, PopFront) transfers that ownership.
//
// Values are compared by identity (==) in Find, Index, Remove and
// RemoveAll. Store pointers to get reference semantics for values that
// are not comparable. Ordering operations (Sort, InsertSorted,
// FindFunc) take a three-way comparator from the cmp package; a nil
// comparator makes them do nothing.
//
// Lists are not safe for concurrent use. Callers must not mutate a
// list from within ForEach or while ranging over one of its iterators,
// except to remove the node that the Nodes iterator has just produced.
package slist

import "github.com/tychoish/slist/ers"

// ErrUninitializedContainer is the content of the panic produced when
// you call a mutating method on a nil *List.
const ErrUninitializedContainer ers.Error = ers.Error("uninitialized container")

// ErrMalformedInput is returned (joined with the decoder's error) when
// JSON or msgpack input cannot be decoded into a list.
const ErrMalformedInput ers.Error = ers.Error("malformed list input")
