// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

import (
	"iter"
	"slices"
)

// Slice retrofits the builtin slice with the typeclass instances.
// Converting between Slice[T] and []T is free; the underlying slice is
// untouched by the declaration.
type Slice[T any] []T

// All yields the elements in order, satisfying Iterable.
func (s Slice[T]) All() iter.Seq[T] {
	return slices.Values(s)
}

// Empty returns the empty slice, the identity of the slice monoid.
func (Slice[T]) Empty() Slice[T] { return nil }

// Append concatenates two slices into a fresh backing array.
// Neither operand is mutated or aliased by the result.
func (s Slice[T]) Append(other Slice[T]) Slice[T] {
	res := make(Slice[T], 0, len(s)+len(other))
	res = append(res, s...)
	return append(res, other...)
}

// PureSlice embeds a single value as a one-element slice.
func PureSlice[T any](x T) Slice[T] {
	return Slice[T]{x}
}

// MapSlice applies fn to every element, producing a fresh slice.
func MapSlice[T, U any](fn func(T) U, s Slice[T]) Slice[U] {
	res := make(Slice[U], len(s))
	for i, x := range s {
		res[i] = fn(x)
	}
	return res
}

// ConcatMapSlice maps every element to a slice and flattens the results
// in order.
func ConcatMapSlice[T, U any](fn func(T) Slice[U], s Slice[T]) Slice[U] {
	var res Slice[U]
	for _, x := range s {
		res = append(res, fn(x)...)
	}
	return res
}

// BindSlice is the monadic bind: Flip of ConcatMapSlice.
func BindSlice[T, U any](s Slice[T], fn func(T) Slice[U]) Slice[U] {
	return ConcatMapSlice(fn, s)
}

// JoinSlice flattens one level of nesting.
func JoinSlice[T any](s Slice[Slice[T]]) Slice[T] {
	return ConcatMapSlice(Identity[Slice[T]], s)
}

// ApplySlice applies every function in fs to every element of xs, in order.
func ApplySlice[T, U any](fs Slice[func(T) U], xs Slice[T]) Slice[U] {
	return BindSlice(fs, func(f func(T) U) Slice[U] {
		return MapSlice(f, xs)
	})
}
