// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

import "iter"

// Foldable typeclass: linear reduction of a structure to a single value.
//
// Minimal definition: a forward traversal (Iterable, or any iter.Seq).
// Foldl follows directly from the traversal; FoldMap is derived from Foldl
// plus the target monoid, and Fold from FoldMap with the identity mapping.
// A container only has to expose All to unlock the whole family.
//
// Foldable is not a full catamorphism: it traverses linearly and cannot
// rebuild tree shape, only accumulate in sequence.

// Iterable is the minimal traversal capability a container needs for the
// Foldable operations: All yields each element once, in order.
type Iterable[T any] interface {
	All() iter.Seq[T]
}

// Foldl is the left-associative fold: it applies fn(accumulator, element)
// in traversal order, starting from zero.
//
//	Foldl(sub, 3, ListOf(4, 8, 5).All()) // ((3-4)-8)-5 == -14
func Foldl[U, T any](fn func(U, T) U, zero U, src iter.Seq[T]) U {
	for x := range src {
		zero = fn(zero, x)
	}
	return zero
}

// Foldr is the right-associative fold: it applies fn(element, accumulator),
// combining from the end of the structure backwards. The traversal recurses
// to the end first and folds on the way back.
//
//	Foldr(sub, 3, ListOf(4, 8, 5).All()) // 4-(8-(5-3)) == -2
//
// The recursion depth equals the element count.
func Foldr[T, U any](fn func(T, U) U, zero U, src iter.Seq[T]) U {
	next, stop := iter.Pull(src)
	defer stop()
	return foldrPull(fn, zero, next)
}

func foldrPull[T, U any](fn func(T, U) U, zero U, next func() (T, bool)) U {
	x, ok := next()
	if !ok {
		return zero
	}
	return fn(x, foldrPull(fn, zero, next))
}

// FoldMap maps every element into a monoid and combines the results with
// Append, starting from Empty. Derived from Foldl alone.
//
//	FoldMap(SumOf, ListOf(2, 4, 10).All()) // Sum(16)
func FoldMap[M Monoid[M], T any](fn func(T) M, src iter.Seq[T]) M {
	var zero M
	return Foldl(func(acc M, x T) M {
		return acc.Append(fn(x))
	}, zero.Empty(), src)
}

// Fold combines a structure of monoid-valued elements directly.
// Derived as FoldMap with the identity mapping.
func Fold[M Monoid[M]](src iter.Seq[M]) M {
	return FoldMap(Identity[M], src)
}

// FoldlWith is the curried facade of Foldl: arguments are supplied one at a
// time, left to right.
//
//	FoldlWith(sub)(3)(xs.All())
func FoldlWith[U, T any](fn func(U, T) U) func(U) func(iter.Seq[T]) U {
	return func(zero U) func(iter.Seq[T]) U {
		return func(src iter.Seq[T]) U {
			return Foldl(fn, zero, src)
		}
	}
}

// FoldrWith is the curried facade of Foldr.
func FoldrWith[T, U any](fn func(T, U) U) func(U) func(iter.Seq[T]) U {
	return func(zero U) func(iter.Seq[T]) U {
		return func(src iter.Seq[T]) U {
			return Foldr(fn, zero, src)
		}
	}
}

// FoldMapWith is the curried facade of FoldMap.
func FoldMapWith[M Monoid[M], T any](fn func(T) M) func(iter.Seq[T]) M {
	return func(src iter.Seq[T]) M {
		return FoldMap(fn, src)
	}
}
