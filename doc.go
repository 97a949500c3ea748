// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ftl retrofits functional typeclasses — Monoid, Foldable, Functor,
// Applicative, Monad — onto container types in Go.
//
// Instances are declared structurally: a type belongs to a typeclass when it
// satisfies the corresponding generic constraint, and every dispatch is
// resolved at compile time. There is no runtime registry and no runtime
// failure path; using an operation on a type without an instance is a
// compile error at the call site.
//
// # Design Philosophy
//
// ftl provides:
//   - Minimal constraints per typeclass, with the rest of each operation
//     family derived from the minimal set
//   - Structural instance declaration with compile-time conformance checks
//   - Explicit ownership-transfer variants of operations that would
//     otherwise copy (splice-based concatenation, in-place map)
//
// # Typeclass Constraints
//
// [Monoid] is the F-bounded constraint for types with an identity value and
// an associative combine operation:
//
//   - Empty: the identity value, callable on the zero value of the type
//   - Append: associative combine
//
// [Iterable] is the minimal traversal capability ("forward iterable"):
// All yields each element once, in order. Any type satisfying Iterable
// gets the whole Foldable family through the derived operations below.
//
// # Foldable
//
// Linear reduction of a structure to a single value:
//
//   - [Foldl]: left-associative fold, fn(accumulator, element)
//   - [Foldr]: right-associative fold, fn(element, accumulator), combining
//     from the end of the structure backwards
//   - [FoldMap]: map every element into a monoid and combine — derived
//     from Foldl alone
//   - [Fold]: combine monoid-valued elements — derived from FoldMap
//
// Curried facades [FoldlWith], [FoldrWith] and [FoldMapWith] accept the
// arguments one at a time, left to right. [Curry2] and [Curry3] curry any
// binary or ternary function.
//
// # Monoid Instances
//
//   - [List], [Slice]: identity is the empty container, combine is
//     concatenation
//   - [Sum], [Prod]: numeric addition and multiplication
//   - [Any], [All]: boolean disjunction and conjunction
//   - [Str]: string concatenation
//   - [AppendMaybe]: lifts a monoid combine over [Maybe]
//
// # List
//
// [List] is a persistent singly linked list. Non-consuming operations share
// structure freely; consuming operations take ownership of their operands
// and reuse node chains instead of copying:
//
//   - [List.Append]: persistent concatenation (copies the left spine,
//     shares the right chain)
//   - [List.Splice]: consuming concatenation, links chains in place with
//     zero allocation
//   - [MapList]: fresh list, the element type may change
//   - [MapInPlace]: consuming map for element-preserving functions,
//     reuses the nodes
//   - [PureList], [BindList], [ConcatMap], [JoinList], [ApplyList]:
//     the Monad and Applicative instance; ConcatMap maps and flattens in a
//     single walk, splicing each sub-list into the output
//   - [FoldrList]: native right fold by linear recursion over tails
//
// # Other Instances
//
//   - [Slice]: the builtin slice retrofitted with the same families
//     ([MapSlice], [BindSlice], [ConcatMapSlice], [JoinSlice], [ApplySlice])
//   - [Maybe]: optional value ([Just], [Nothing], [MapMaybe], [BindMaybe],
//     [MatchMaybe]); iterable as a zero-or-one element sequence
//   - [Either]: success or failure ([Left], [Right], [MapEither],
//     [BindEither], [MapLeftEither], [MatchEither])
//   - [Cont]: continuation-passing computations ([PureCont], [MapCont],
//     [BindCont], [ThenCont], [RunCont])
//
// # Laws
//
// Instances are obligated to the usual laws: monoid identity and
// associativity, functor identity and composition, monad left/right
// identity and associativity, and map/bind coherence
// (MapList(f, l) == BindList(l, f composed with PureList)). The library
// never checks laws at runtime; the test suite verifies them for every
// shipped instance with fixed-seed property tests.
//
// # Example
//
//	xs := ftl.ListOf(4, 8, 5)
//
//	sub := func(acc, x int) int { return acc - x }
//	ftl.Foldl(sub, 3, xs.All()) // ((3-4)-8)-5 == -14
//
//	total := ftl.FoldMap(ftl.SumOf, xs.All())
//	total.Value // 17
package ftl
