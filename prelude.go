// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

// Basic function combinators shared by the typeclass operations.
//
// Named generic functions produce a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.

// Identity returns its argument unchanged.
// It is the unit of Compose and the mapping function of Fold.
func Identity[A any](a A) A { return a }

// Compose is left-to-right function composition.
// Compose(f, g)(x) == g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Const returns a function that ignores its argument and always yields a.
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Flip swaps the argument order of a binary function.
// BindList is Flip of ConcatMap.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}

// Curry2 transforms a binary function into a chain of unary functions,
// applied left to right.
func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 transforms a ternary function into a chain of unary functions,
// applied left to right.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}
