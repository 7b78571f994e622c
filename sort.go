package slist

import (
	"math/bits"

	"github.com/tychoish/slist/cmp"
)

// Sort orders the list by fn using a stable merge sort. The nodes are
// relinked in place: no node is allocated or copied, and nodes the
// caller holds remain members of the list. Values that compare as
// equal keep their relative order. Lists with fewer than two nodes,
// and calls with a nil fn, are left unchanged.
func (l *List[T]) Sort(fn cmp.Compare[T]) *List[T] {
	l.check()
	if fn == nil || l.head == nil || l.head.next == nil {
		return l
	}

	l.head = mergeSort(l.head, fn)
	return l
}

// mergeSort is a bottom-up merge sort over the chain. ranks[i] holds
// either nil or a sorted run of 2^i nodes; every run in a higher rank
// came from earlier in the input than every run in a lower rank.
func mergeSort[T comparable](head *Node[T], fn cmp.Compare[T]) *Node[T] {
	var ranks [bits.UintSize]*Node[T]
	top := 0

	for head != nil {
		run := head
		head = head.next
		run.next = nil

		rank := 0
		for ; ranks[rank] != nil; rank++ {
			run = merge(ranks[rank], run, fn)
			ranks[rank] = nil
		}
		ranks[rank] = run
		top = max(top, rank)
	}

	var out *Node[T]
	for rank := 0; rank <= top; rank++ {
		if ranks[rank] != nil {
			out = merge(ranks[rank], out, fn)
		}
	}
	return out
}

// merge combines two sorted chains. On ties the node from a wins, so
// a must hold the earlier nodes.
func merge[T comparable](a, b *Node[T], fn cmp.Compare[T]) *Node[T] {
	var head Node[T]
	tail := &head
	for a != nil && b != nil {
		if fn(a.value, b.value) <= 0 {
			tail.next, a = a, a.next
		} else {
			tail.next, b = b, b.next
		}
		tail = tail.next
	}

	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return head.next
}
