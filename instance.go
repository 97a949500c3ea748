// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

// Compile-time instance checks: these fail to compile if the argument type
// does not satisfy the typeclass. They are the library's "instance"
// declarations — a type either passes here, or using it with the generic
// operations is rejected at the call site.

type nothing *struct{}

// AssertMonoid fails to compile unless M is a Monoid instance.
func AssertMonoid[M Monoid[M]](M) nothing { return nil }

// AssertIterable fails to compile unless the argument is forward iterable
// over T.
func AssertIterable[T any](Iterable[T]) nothing { return nil }

// Shipped instances.
var (
	_ = AssertMonoid(Sum[int]{})
	_ = AssertMonoid(Prod[float64]{})
	_ = AssertMonoid(Any(false))
	_ = AssertMonoid(All(true))
	_ = AssertMonoid(Str(""))
	_ = AssertMonoid(List[int]{})
	_ = AssertMonoid(Slice[int]{})

	_ = AssertIterable[int](List[int]{})
	_ = AssertIterable[int](Slice[int]{})
	_ = AssertIterable[int](Maybe[int]{})
)
