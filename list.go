// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

import "iter"

// List is a persistent singly linked list.
//
// Non-consuming operations never mutate a list; they may share node chains
// between results and operands instead of copying. Consuming operations
// (Splice, MapInPlace) take ownership of their operands: callers must not
// use a list again after passing it to one.
type List[T any] struct {
	head *node[T]
}

type node[T any] struct {
	elem T
	next *node[T]
}

// ListOf constructs a list holding the given elements in order.
func ListOf[T any](elems ...T) List[T] {
	var l List[T]
	tail := &l.head
	for _, e := range elems {
		n := &node[T]{elem: e}
		*tail = n
		tail = &n.next
	}
	return l
}

// CollectList drains a sequence into a fresh list, preserving order.
func CollectList[T any](src iter.Seq[T]) List[T] {
	var l List[T]
	tail := &l.head
	for e := range src {
		n := &node[T]{elem: e}
		*tail = n
		tail = &n.next
	}
	return l
}

// Cons prepends an element, sharing the tail with l.
func Cons[T any](x T, l List[T]) List[T] {
	return List[T]{head: &node[T]{elem: x, next: l.head}}
}

// All yields the elements in order. This satisfies Iterable and hence
// unlocks the derived Foldable operations.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// IsEmpty reports whether the list has no elements.
func (l List[T]) IsEmpty() bool { return l.head == nil }

// Len returns the element count. O(n).
func (l List[T]) Len() int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}
	return count
}

// Head returns the first element, or false for an empty list.
func (l List[T]) Head() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.elem, true
}

// Tail returns the list without its first element, sharing structure.
// The tail of an empty list is empty.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return List[T]{}
	}
	return List[T]{head: l.head.next}
}

// Slice copies the elements into a fresh slice.
func (l List[T]) Slice() []T {
	s := make([]T, 0, l.Len())
	for n := l.head; n != nil; n = n.next {
		s = append(s, n.elem)
	}
	return s
}

// EqualList reports whether two lists hold equal elements in equal order.
func EqualList[T comparable](a, b List[T]) bool {
	na, nb := a.head, b.head
	for na != nil && nb != nil {
		if na.elem != nb.elem {
			return false
		}
		na, nb = na.next, nb.next
	}
	return na == nil && nb == nil
}

// Empty returns the empty list, the identity of the list monoid.
func (List[T]) Empty() List[T] { return List[T]{} }

// Append concatenates two lists: the monoid combine.
//
// The left spine is copied; the right chain is shared with the result.
// Neither operand is mutated.
func (l List[T]) Append(other List[T]) List[T] {
	if l.head == nil {
		return other
	}
	var res List[T]
	tail := &res.head
	for n := l.head; n != nil; n = n.next {
		nn := &node[T]{elem: n.elem}
		*tail = nn
		tail = &nn.next
	}
	*tail = other.head
	return res
}

// Splice concatenates by linking the two node chains in place, with zero
// allocation. Functionally equal to Append; it consumes both operands.
func (l List[T]) Splice(other List[T]) List[T] {
	if l.head == nil {
		return other
	}
	n := l.head
	for n.next != nil {
		n = n.next
	}
	n.next = other.head
	return l
}

// FoldrList is the native right fold for lists: linear recursion over
// successive tails, combining each head with the folded remainder.
// Equivalent to Foldr over l.All(), without the pull-iterator machinery.
func FoldrList[T, U any](fn func(T, U) U, zero U, l List[T]) U {
	return foldrNode(fn, zero, l.head)
}

func foldrNode[T, U any](fn func(T, U) U, zero U, n *node[T]) U {
	if n == nil {
		return zero
	}
	return fn(n.elem, foldrNode(fn, zero, n.next))
}
