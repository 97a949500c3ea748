// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

import "iter"

// Maybe represents an optional value: Just a value, or Nothing.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just wraps a present value.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, just: true}
}

// Nothing returns the absent value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust reports whether a value is present.
func (m Maybe[T]) IsJust() bool { return m.just }

// IsNothing reports whether the value is absent.
func (m Maybe[T]) IsNothing() bool { return !m.just }

// Get returns the value and true, or zero and false.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

// OrElse returns the value if present, otherwise def.
func (m Maybe[T]) OrElse(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// All yields the value if present: a Maybe is a zero-or-one element
// sequence, which makes it Foldable through the derived operations.
func (m Maybe[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if m.just {
			yield(m.value)
		}
	}
}

// MapMaybe applies fn to the value if present.
func MapMaybe[T, U any](fn func(T) U, m Maybe[T]) Maybe[U] {
	if m.just {
		return Just(fn(m.value))
	}
	return Nothing[U]()
}

// BindMaybe sequences an optional computation: Nothing short-circuits.
func BindMaybe[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if m.just {
		return fn(m.value)
	}
	return Nothing[U]()
}

// MatchMaybe pattern matches on the Maybe, calling onJust or onNothing.
func MatchMaybe[T, U any](m Maybe[T], onJust func(T) U, onNothing func() U) U {
	if m.just {
		return onJust(m.value)
	}
	return onNothing()
}

// AppendMaybe lifts a monoid combine over Maybe: Nothing is the identity,
// and two present values combine with Append.
//
// This is a free function because a method could not constrain the element
// type; Maybe[M] with monoidal M is still a lawful monoid through it.
func AppendMaybe[M Monoid[M]](a, b Maybe[M]) Maybe[M] {
	if !a.just {
		return b
	}
	if !b.just {
		return a
	}
	return Just(a.value.Append(b.value))
}
