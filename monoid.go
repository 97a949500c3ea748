// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

// Monoid typeclass and primitive instances.

// Monoid is the F-bounded constraint for types with an identity value and
// an associative combine operation. A type M is a Monoid instance when it
// satisfies Monoid[M].
//
// Laws (contractual, not checked at runtime):
//
//	x.Append(x.Empty()) == x
//	x.Empty().Append(x) == x
//	a.Append(b).Append(c) == a.Append(b.Append(c))
//
// Empty must be meaningful on the zero value of M: derived operations
// obtain the identity as (*new(M)).Empty() when no instance value is at
// hand. Instances are therefore value types with value receivers.
type Monoid[M any] interface {
	// Empty returns the identity value of the monoid.
	Empty() M
	// Append combines the receiver with other. Must be associative.
	Append(other M) M
}

// Number constrains the numeric types usable with Sum and Prod.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum is the additive monoid over a numeric type: identity 0, combine +.
type Sum[N Number] struct{ Value N }

// SumOf wraps a number in the additive monoid.
func SumOf[N Number](v N) Sum[N] { return Sum[N]{Value: v} }

// Empty returns Sum(0).
func (Sum[N]) Empty() Sum[N] { return Sum[N]{} }

// Append adds the two wrapped numbers.
func (s Sum[N]) Append(other Sum[N]) Sum[N] {
	return Sum[N]{Value: s.Value + other.Value}
}

// Prod is the multiplicative monoid over a numeric type: identity 1,
// combine *.
type Prod[N Number] struct{ Value N }

// ProdOf wraps a number in the multiplicative monoid.
func ProdOf[N Number](v N) Prod[N] { return Prod[N]{Value: v} }

// Empty returns Prod(1).
func (Prod[N]) Empty() Prod[N] { return Prod[N]{Value: 1} }

// Append multiplies the two wrapped numbers.
func (p Prod[N]) Append(other Prod[N]) Prod[N] {
	return Prod[N]{Value: p.Value * other.Value}
}

// Any is the boolean disjunction monoid: identity false, combine ||.
type Any bool

// Empty returns false.
func (Any) Empty() Any { return false }

// Append is logical or.
func (a Any) Append(other Any) Any { return a || other }

// All is the boolean conjunction monoid: identity true, combine &&.
type All bool

// Empty returns true.
func (All) Empty() All { return true }

// Append is logical and.
func (a All) Append(other All) All { return a && other }

// Str is the string concatenation monoid: identity "", combine +.
type Str string

// Empty returns the empty string.
func (Str) Empty() Str { return "" }

// Append concatenates the two strings.
func (s Str) Append(other Str) Str { return s + other }
