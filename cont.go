// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

// Cont represents a continuation-passing computation.
// Cont[R, A] computes a value of type A, with final result type R.
//
// The function receives a continuation k of type func(A) R, which
// represents "the rest of the computation". Applying k to a value of
// type A produces the final result of type R.
//
// Minimal definition: PureCont and BindCont. MapCont and ThenCont are
// derived operations kept as optimizations to avoid intermediate closure
// allocations.
type Cont[R, A any] func(k func(A) R) R

// PureCont lifts a pure value into the continuation monad.
// The resulting computation immediately passes the value to its
// continuation.
func PureCont[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// SuspendCont creates a continuation from a CPS function. This is the
// primitive constructor for computations that need direct access to the
// continuation.
func SuspendCont[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// BindCont sequences two continuations (monadic bind).
// It runs m, then passes the result to fn to get a new continuation.
func BindCont[R, A, B any](m Cont[R, A], fn func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return fn(a)(k)
		})
	}
}

// MapCont applies a pure function to the result of a continuation.
// Equivalent to BindCont(m, Compose(fn, PureCont)) without the
// intermediate PureCont closure.
func MapCont[R, A, B any](m Cont[R, A], fn func(A) B) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return k(fn(a))
		})
	}
}

// ThenCont sequences two continuations, discarding the first result.
// Cheaper than BindCont when the second computation does not depend on
// the first result.
func ThenCont[R, A, B any](m Cont[R, A], n Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(A) R {
			return n(k)
		})
	}
}

// RunCont executes a continuation with the identity continuation.
// The result type must match the value type (R = A).
func RunCont[A any](m Cont[A, A]) A {
	return m(Identity[A])
}

// RunContWith executes a continuation with a custom final continuation.
func RunContWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}
