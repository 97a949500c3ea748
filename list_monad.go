// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

// Functor, Applicative and Monad operations for List.
//
// Minimal definition: PureList and ConcatMap. BindList is Flip of
// ConcatMap; JoinList and ApplyList are derived from them.

// PureList embeds a single value as a one-element list.
func PureList[T any](x T) List[T] {
	return List[T]{head: &node[T]{elem: x}}
}

// MapList applies fn to every element, producing a fresh list.
// l is not mutated and fn may change the element type.
func MapList[T, U any](fn func(T) U, l List[T]) List[U] {
	var res List[U]
	tail := &res.head
	for n := l.head; n != nil; n = n.next {
		nn := &node[U]{elem: fn(n.elem)}
		*tail = nn
		tail = &nn.next
	}
	return res
}

// MapInPlace is the no-copies map for element-preserving functions.
// It consumes l, rewrites the elements through the existing nodes and
// returns the same chain. Output equals MapList(fn, l); only ownership
// and cost differ.
func MapInPlace[T any](fn func(T) T, l List[T]) List[T] {
	for n := l.head; n != nil; n = n.next {
		n.elem = fn(n.elem)
	}
	return l
}

// ConcatMap maps every element to a list and flattens the results in
// order, in a single walk. Each sub-list returned by fn is owned by
// ConcatMap and spliced directly into the output without copying.
func ConcatMap[T, U any](fn func(T) List[U], l List[T]) List[U] {
	var res List[U]
	tail := &res.head
	for n := l.head; n != nil; n = n.next {
		sub := fn(n.elem)
		if sub.head == nil {
			continue
		}
		*tail = sub.head
		last := sub.head
		for last.next != nil {
			last = last.next
		}
		tail = &last.next
	}
	return res
}

// BindList is the monadic bind: Flip of ConcatMap.
func BindList[T, U any](l List[T], fn func(T) List[U]) List[U] {
	return ConcatMap(fn, l)
}

// JoinList flattens one level of nesting: ConcatMap with the identity.
func JoinList[T any](l List[List[T]]) List[T] {
	return ConcatMap(Identity[List[T]], l)
}

// ApplyList applies every function in fs to every element of xs, in order:
// the applicative ap, derived from BindList and MapList.
func ApplyList[T, U any](fs List[func(T) U], xs List[T]) List[U] {
	return BindList(fs, func(f func(T) U) List[U] {
		return MapList(f, xs)
	})
}
