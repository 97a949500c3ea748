// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl_test

import (
	"slices"
	"testing"

	"github.com/derofim/ftl"
)

func TestListOfAndSlice(t *testing.T) {
	l := ftl.ListOf(1, 2, 3)
	if got := l.Slice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
	if l.Len() != 3 {
		t.Fatalf("got len %d, want 3", l.Len())
	}
	if l.IsEmpty() {
		t.Fatal("list must not be empty")
	}
}

func TestEmptyList(t *testing.T) {
	l := ftl.ListOf[int]()
	if !l.IsEmpty() || l.Len() != 0 {
		t.Fatal("expected empty list")
	}
	if _, ok := l.Head(); ok {
		t.Fatal("Head of empty list must report false")
	}
	if !l.Tail().IsEmpty() {
		t.Fatal("Tail of empty list must be empty")
	}
}

func TestHeadTail(t *testing.T) {
	l := ftl.ListOf(1, 2, 3)
	h, ok := l.Head()
	if !ok || h != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", h, ok)
	}
	if !ftl.EqualList(l.Tail(), ftl.ListOf(2, 3)) {
		t.Fatalf("got tail %v, want [2 3]", l.Tail().Slice())
	}
}

func TestCons(t *testing.T) {
	l := ftl.Cons(0, ftl.ListOf(1, 2))
	if !ftl.EqualList(l, ftl.ListOf(0, 1, 2)) {
		t.Fatalf("got %v, want [0 1 2]", l.Slice())
	}
}

func TestCollectList(t *testing.T) {
	src := ftl.ListOf(1, 2, 3)
	got := ftl.CollectList(src.All())
	if !ftl.EqualList(got, src) {
		t.Fatalf("got %v, want %v", got.Slice(), src.Slice())
	}
}

func TestEqualList(t *testing.T) {
	if !ftl.EqualList(ftl.ListOf(1, 2), ftl.ListOf(1, 2)) {
		t.Fatal("equal lists reported unequal")
	}
	if ftl.EqualList(ftl.ListOf(1, 2), ftl.ListOf(1, 2, 3)) {
		t.Fatal("prefix must not equal longer list")
	}
	if ftl.EqualList(ftl.ListOf(1, 2), ftl.ListOf(1, 3)) {
		t.Fatal("different elements reported equal")
	}
}

func TestPureList(t *testing.T) {
	l := ftl.PureList(42)
	if !ftl.EqualList(l, ftl.ListOf(42)) {
		t.Fatalf("got %v, want [42]", l.Slice())
	}
}

func TestMapList(t *testing.T) {
	l := ftl.ListOf(1, 2, 3)
	got := ftl.MapList(func(x int) int { return x * 2 }, l)
	if !ftl.EqualList(got, ftl.ListOf(2, 4, 6)) {
		t.Fatalf("got %v, want [2 4 6]", got.Slice())
	}
	if !ftl.EqualList(l, ftl.ListOf(1, 2, 3)) {
		t.Fatal("MapList mutated its operand")
	}
}

func TestMapListChangesDomain(t *testing.T) {
	l := ftl.ListOf(1, 2, 3)
	got := ftl.MapList(func(x int) ftl.Str {
		return ftl.Str(rune('a' + x - 1))
	}, l)
	if !ftl.EqualList(got, ftl.ListOf[ftl.Str]("a", "b", "c")) {
		t.Fatalf("got %v, want [a b c]", got.Slice())
	}
}

func TestMapInPlaceMatchesMapList(t *testing.T) {
	double := func(x int) int { return x * 2 }
	fresh := ftl.MapList(double, ftl.ListOf(1, 2, 3))
	inPlace := ftl.MapInPlace(double, ftl.ListOf(1, 2, 3))
	if !ftl.EqualList(fresh, inPlace) {
		t.Fatalf("in-place %v != fresh %v", inPlace.Slice(), fresh.Slice())
	}
}

func TestConcatMap(t *testing.T) {
	// f returns variable-length sublists: n copies of n.
	f := func(n int) ftl.List[int] {
		var l ftl.List[int]
		for range n {
			l = ftl.Cons(n, l)
		}
		return l
	}
	got := ftl.ConcatMap(f, ftl.ListOf(0, 1, 2, 3))
	want := ftl.ListOf(1, 2, 2, 3, 3, 3)
	if !ftl.EqualList(got, want) {
		t.Fatalf("got %v, want %v", got.Slice(), want.Slice())
	}
}

func TestConcatMapMatchesMapThenJoin(t *testing.T) {
	f := func(n int) ftl.List[int] { return ftl.ListOf(n, n+1) }
	xs := ftl.ListOf(1, 5, 9)
	direct := ftl.ConcatMap(f, xs)
	composed := ftl.JoinList(ftl.MapList(f, xs))
	if !ftl.EqualList(direct, composed) {
		t.Fatalf("concatMap %v != join(map) %v", direct.Slice(), composed.Slice())
	}
}

func TestBindListLeftIdentity(t *testing.T) {
	// BindList(PureList(x), f) == f(x)
	f := func(x int) ftl.List[int] { return ftl.ListOf(x, x*2) }
	got := ftl.BindList(ftl.PureList(21), f)
	if !ftl.EqualList(got, f(21)) {
		t.Fatalf("got %v, want %v", got.Slice(), f(21).Slice())
	}
}

func TestBindListRightIdentity(t *testing.T) {
	// BindList(l, PureList) == l
	l := ftl.ListOf(1, 2, 3)
	got := ftl.BindList(l, ftl.PureList[int])
	if !ftl.EqualList(got, l) {
		t.Fatalf("got %v, want %v", got.Slice(), l.Slice())
	}
}

func TestJoinList(t *testing.T) {
	nested := ftl.ListOf(ftl.ListOf(1, 2), ftl.ListOf[int](), ftl.ListOf(3))
	got := ftl.JoinList(nested)
	if !ftl.EqualList(got, ftl.ListOf(1, 2, 3)) {
		t.Fatalf("got %v, want [1 2 3]", got.Slice())
	}
}

func TestApplyList(t *testing.T) {
	double := func(x int) int { return x * 2 }
	negate := func(x int) int { return -x }
	got := ftl.ApplyList(ftl.ListOf(double, negate), ftl.ListOf(1, 2))
	want := ftl.ListOf(2, 4, -1, -2)
	if !ftl.EqualList(got, want) {
		t.Fatalf("got %v, want %v", got.Slice(), want.Slice())
	}
}

func TestAllEarlyStop(t *testing.T) {
	l := ftl.ListOf(1, 2, 3, 4)
	var seen []int
	for x := range l.All() {
		seen = append(seen, x)
		if x == 2 {
			break
		}
	}
	if !slices.Equal(seen, []int{1, 2}) {
		t.Fatalf("got %v, want [1 2]", seen)
	}
}
