package slist

import (
	"fmt"
	"iter"

	"github.com/tychoish/slist/cmp"
	"github.com/tychoish/slist/ers"
	"github.com/tychoish/slist/irt"
)

// List is a generic singly linked list. Callers are responsible for
// their own concurrency control, and should generally use it with the
// same care as a slice.
type List[T comparable] struct {
	head   *Node[T]
	length int
}

// New builds a list holding the items in order.
func New[T comparable](items ...T) *List[T] { return From(irt.Slice(items)) }

// From builds a list holding the values of the sequence in order.
func From[T comparable](seq iter.Seq[T]) *List[T] { return new(List[T]).Extend(seq) }

func (l *List[T]) check() { ers.Invariant(l != nil, ErrUninitializedContainer) }

func (l *List[T]) newNode(v T, next *Node[T]) *Node[T] {
	l.length++
	return &Node[T]{value: v, next: next, list: l}
}

// insertAfter links a new node holding v directly after prev and
// returns the new node.
func (l *List[T]) insertAfter(prev *Node[T], v T) *Node[T] {
	prev.next = l.newNode(v, prev.next)
	return prev.next
}

// seek returns the first node for which match is true, and the node
// before it. prev is nil when the match is the head; both are nil
// when nothing matches.
func (l *List[T]) seek(match func(*Node[T]) bool) (prev, cur *Node[T]) {
	for cur = l.Front(); cur != nil; prev, cur = cur, cur.next {
		if match(cur) {
			return prev, cur
		}
	}
	return nil, nil
}

// unlink removes cur (whose predecessor is prev) from the chain and
// detaches it.
func (l *List[T]) unlink(prev, cur *Node[T]) *Node[T] {
	if prev == nil {
		l.head = cur.next
	} else {
		prev.next = cur.next
	}
	cur.next, cur.list = nil, nil
	l.length--
	return cur
}

func hasValue[T comparable](v T) func(*Node[T]) bool {
	return func(n *Node[T]) bool { return n.value == v }
}
func isNode[T comparable](nd *Node[T]) func(*Node[T]) bool {
	return func(n *Node[T]) bool { return n == nd }
}

// Prepend adds a value to the front of the list. This is an O(1)
// operation.
func (l *List[T]) Prepend(v T) *List[T] {
	l.check()
	l.head = l.newNode(v, l.head)
	return l
}

// Append adds a value to the end of the list. Append walks the list to
// find the tail, so it is O(n); use Extend to add many values.
func (l *List[T]) Append(v T) *List[T] { return l.Concat(new(List[T]).Prepend(v)) }

// Extend appends every value of the sequence to the end of the
// list. The values are collected into a detached chain before it is
// linked, so the sequence may be a view of the list itself.
func (l *List[T]) Extend(seq iter.Seq[T]) *List[T] {
	l.check()
	batch := new(List[T])
	var tail *Node[T]
	for v := range seq {
		if tail == nil {
			tail = batch.Prepend(v).head
			continue
		}
		tail = batch.insertAfter(tail, v)
	}
	return l.Concat(batch)
}

// Free releases every node in the list, leaving the list empty. Nodes
// the caller still holds are detached and no longer refer to their
// values. Free is safe to call on empty and nil lists.
func (l *List[T]) Free() {
	if l == nil {
		return
	}

	for n := l.head; n != nil; {
		next := n.next
		release(n)
		n = next
	}
	l.head, l.length = nil, 0
}

// InsertBefore inserts a new value immediately before sibling. When
// sibling is nil or is not a member of this list, the value is added
// to the front of the list.
func (l *List[T]) InsertBefore(sibling *Node[T], v T) *List[T] {
	l.check()
	if sibling.In(l) {
		if prev, cur := l.seek(isNode(sibling)); cur != nil && prev != nil {
			l.insertAfter(prev, v)
			return l
		}
	}
	return l.Prepend(v)
}

// InsertSorted adds a value to a list that is already sorted by fn,
// keeping it sorted. The new value goes before the first value that
// is strictly greater, which puts it after any values that compare
// as equal. When fn is nil, InsertSorted does nothing.
func (l *List[T]) InsertSorted(v T, fn cmp.Compare[T]) *List[T] {
	l.check()
	if fn == nil {
		return l
	}

	if l.head == nil || fn(l.head.value, v) > 0 {
		return l.Prepend(v)
	}

	prev := l.head
	for prev.next != nil && fn(prev.next.value, v) <= 0 {
		prev = prev.next
	}
	l.insertAfter(prev, v)
	return l
}

// Remove removes the first node whose value is equal to v. When no
// such node exists the list is unchanged.
func (l *List[T]) Remove(v T) *List[T] {
	l.check()
	if prev, cur := l.seek(hasValue(v)); cur != nil {
		release(l.unlink(prev, cur))
	}
	return l
}

// RemoveAll removes every node whose value is equal to v. The
// remaining nodes keep their order.
func (l *List[T]) RemoveAll(v T) *List[T] {
	l.check()
	var prev *Node[T]
	for cur := l.head; cur != nil; {
		next := cur.next
		if cur.value == v {
			release(l.unlink(prev, cur))
		} else {
			prev = cur
		}
		cur = next
	}
	return l
}

// RemoveLink detaches the node from the list. The caller keeps the
// node, and its value; the node no longer has a next node or an
// owner. RemoveLink returns false, without modifying the list, when
// the node is nil or not a member of this list.
func (l *List[T]) RemoveLink(n *Node[T]) bool {
	l.check()
	if !n.In(l) {
		return false
	}

	prev, cur := l.seek(isNode(n))
	if cur == nil {
		return false
	}
	l.unlink(prev, cur)
	return true
}

// DeleteLink removes the node from the list, as RemoveLink, and then
// releases it.
func (l *List[T]) DeleteLink(n *Node[T]) bool {
	if !l.RemoveLink(n) {
		return false
	}
	release(n)
	return true
}

// PopFront detaches and returns the first node of the list, or nil
// when the list is empty. This is an O(1) operation.
func (l *List[T]) PopFront() *Node[T] {
	l.check()
	if l.head == nil {
		return nil
	}
	return l.unlink(nil, l.head)
}

// Front returns the first node of the list, or nil when the list is
// empty. You can use it to begin a c-style iteration over the list:
//
//	for n := list.Front(); n != nil; n = n.Next() {
//	       // operate
//	}
func (l *List[T]) Front() *Node[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// Last walks the list and returns its final node, or nil when the
// list is empty.
func (l *List[T]) Last() *Node[T] {
	n := l.Front()
	if n == nil {
		return nil
	}
	for n.next != nil {
		n = n.next
	}
	return n
}

// Len returns the length of the list. As the list tracks its length,
// this is an O(1) operation.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// count walks the chain.
func (l *List[T]) count() int { return irt.Count(l.Nodes()) }

// Find returns the first node whose value is equal to v, or nil.
func (l *List[T]) Find(v T) *Node[T] { _, n := l.seek(hasValue(v)); return n }

// FindFunc returns the first node for which fn(node value, v) is
// zero, or nil. When fn is nil, FindFunc returns nil without
// searching.
func (l *List[T]) FindFunc(v T, fn cmp.Compare[T]) *Node[T] {
	if fn == nil {
		return nil
	}
	_, n := l.seek(func(n *Node[T]) bool { return fn(n.value, v) == 0 })
	return n
}

// Index returns the zero-based position of the first value equal to
// v, or -1.
func (l *List[T]) Index(v T) int {
	idx := 0
	for n := l.Front(); n != nil; n = n.next {
		if n.value == v {
			return idx
		}
		idx++
	}
	return -1
}

// Nth returns the node at zero-based position idx, or nil when idx is
// out of range.
func (l *List[T]) Nth(idx int) *Node[T] {
	if idx < 0 {
		return nil
	}
	n := l.Front()
	for ; n != nil && idx > 0; idx-- {
		n = n.next
	}
	return n
}

// NthValue returns the value at zero-based position idx. The second
// value is false, and the first is the zero value, when idx is out
// of range.
func (l *List[T]) NthValue(idx int) (T, bool) { n := l.Nth(idx); return n.Value(), n != nil }

// ForEach calls fn for every value in the list, from front to back.
// fn must not modify the list.
func (l *List[T]) ForEach(fn func(T)) {
	for n := l.Front(); n != nil; n = n.next {
		fn(n.value)
	}
}

// Nodes returns a native go iterator over the nodes of the list. Each
// iteration starts at the current front of the list. The body of the
// loop may remove the node it was given, but must not otherwise
// modify the list.
func (l *List[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := l.Front(); n != nil; {
			next := n.next
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

// Iterator returns a native go iterator over the values in the list,
// from front to back.
func (l *List[T]) Iterator() iter.Seq[T] { return irt.Convert(l.Nodes(), (*Node[T]).Value) }

// Slice exports the contents of the list to a slice.
func (l *List[T]) Slice() []T { return irt.Collect(l.Iterator(), 0, l.Len()) }

// String formats the list as its values in brackets, like a slice.
func (l *List[T]) String() string { return fmt.Sprint(l.Slice()) }

// Copy duplicates the list. The nodes of the new list are distinct,
// though if the values are themselves references, the values of both
// lists would be shared.
func (l *List[T]) Copy() *List[T] { return From(l.Iterator()) }

// Concat moves every node of other to the end of this list. other is
// left empty and its former nodes are members of this list. Passing
// the list itself, a nil list, or an empty list does nothing.
func (l *List[T]) Concat(other *List[T]) *List[T] {
	l.check()
	if other == nil || other == l || other.head == nil {
		return l
	}

	for n := other.head; n != nil; n = n.next {
		n.list = l
	}

	if tail := l.Last(); tail != nil {
		tail.next = other.head
	} else {
		l.head = other.head
	}

	l.length += other.length
	other.head, other.length = nil, 0
	return l
}

// Reverse reverses the order of the list in place.
func (l *List[T]) Reverse() *List[T] {
	l.check()
	var prev *Node[T]
	for cur := l.head; cur != nil; {
		next := cur.next
		cur.next = prev
		prev, cur = cur, next
	}
	l.head = prev
	return l
}
