package dscontract_test

import (
	"testing"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/dscontract"
	"go.llib.dev/testcase"
)

func TestLenAppendable(t *testing.T) {
	s := testcase.NewSpec(t)

	c := dscontract.Config[string]{
		MakeElem: dscontract.MakeUniqElem[string](),
	}

	s.Context("List", dscontract.LenAppendable[string](func(tb testing.TB) *datastruct.List[string] {
		return datastruct.NewList[string]()
	}, c).Spec)

	s.Context("Set", dscontract.LenAppendable[string](func(tb testing.TB) *datastruct.Set[string] {
		return &datastruct.Set[string]{}
	}, c).Spec)

	s.Context("OrderedSet", dscontract.LenAppendable[string](func(tb testing.TB) *datastruct.OrderedSet[string] {
		return &datastruct.OrderedSet[string]{}
	}, c).Spec)

	s.Context("Counter", dscontract.LenAppendable[string](func(tb testing.TB) *datastruct.Counter[string] {
		return datastruct.NewCounter[string]()
	}, c).Spec)
}

func TestAppendable(t *testing.T) {
	s := testcase.NewSpec(t)

	c := dscontract.Config[string]{
		MakeElem: dscontract.MakeUniqElem[string](),
	}

	s.Context("List", dscontract.Appendable[string](func(tb testing.TB) *datastruct.List[string] {
		return datastruct.NewList[string]()
	}, c).Spec)

	s.Context("Set", dscontract.Appendable[string](func(tb testing.TB) *datastruct.Set[string] {
		return &datastruct.Set[string]{}
	}, c).Spec)
}

func TestContainable(t *testing.T) {
	s := testcase.NewSpec(t)

	c := dscontract.Config[string]{
		MakeElem: dscontract.MakeUniqElem[string](),
	}

	s.Context("List", dscontract.Containable[string](func(tb testing.TB) *datastruct.List[string] {
		return datastruct.NewList[string]()
	}, c).Spec)

	s.Context("Set", dscontract.Containable[string](func(tb testing.TB) *datastruct.Set[string] {
		return &datastruct.Set[string]{}
	}, c).Spec)

	s.Context("OrderedSet", dscontract.Containable[string](func(tb testing.TB) *datastruct.OrderedSet[string] {
		return &datastruct.OrderedSet[string]{}
	}, c).Spec)

	s.Context("Counter", dscontract.Containable[string](func(tb testing.TB) *datastruct.Counter[string] {
		return datastruct.NewCounter[string]()
	}, c).Spec)
}

func TestValues(t *testing.T) {
	s := testcase.NewSpec(t)

	c := dscontract.Config[string]{
		MakeElem: dscontract.MakeUniqElem[string](),
	}

	s.Context("List", dscontract.Values[string](func(tb testing.TB) *datastruct.List[string] {
		return datastruct.NewList[string]()
	}, c).Spec)

	s.Context("Set", dscontract.Values[string](func(tb testing.TB) *datastruct.Set[string] {
		return &datastruct.Set[string]{}
	}, c).Spec)

	s.Context("OrderedSet", dscontract.Values[string](func(tb testing.TB) *datastruct.OrderedSet[string] {
		return &datastruct.OrderedSet[string]{}
	}, c).Spec)
}

func TestBag(t *testing.T) {
	s := testcase.NewSpec(t)

	c := dscontract.Config[string]{
		MakeElem: dscontract.MakeUniqElem[string](),
	}

	s.Context("List", dscontract.Bag[string](func(tb testing.TB) *datastruct.List[string] {
		return datastruct.NewList[string]()
	}, c).Spec)

	s.Context("Set", dscontract.Bag[string](func(tb testing.TB) *datastruct.Set[string] {
		return &datastruct.Set[string]{}
	}, c).Spec)

	s.Context("OrderedSet", dscontract.Bag[string](func(tb testing.TB) *datastruct.OrderedSet[string] {
		return &datastruct.OrderedSet[string]{}
	}, c).Spec)
}

func TestSequence(t *testing.T) {
	s := testcase.NewSpec(t)

	c := dscontract.Config[string]{
		MakeElem: dscontract.MakeUniqElem[string](),
	}

	s.Context("List", dscontract.Sequence[string](func(tb testing.TB) *datastruct.List[string] {
		return datastruct.NewList[string]()
	}, c).Spec)
}

func TestCloneable(t *testing.T) {
	s := testcase.NewSpec(t)

	c := dscontract.Config[string]{
		MakeElem: dscontract.MakeUniqElem[string](),
	}

	s.Context("List", dscontract.Cloneable[string](func(tb testing.TB) *datastruct.List[string] {
		return datastruct.NewList[string]()
	}, c).Spec)

	s.Context("Set", dscontract.Cloneable[string](func(tb testing.TB) *datastruct.Set[string] {
		return &datastruct.Set[string]{}
	}, c).Spec)

	s.Context("OrderedSet", dscontract.Cloneable[string](func(tb testing.TB) *datastruct.OrderedSet[string] {
		return &datastruct.OrderedSet[string]{}
	}, c).Spec)

	s.Context("Counter", dscontract.Cloneable[string](func(tb testing.TB) *datastruct.Counter[string] {
		return datastruct.NewCounter[string]()
	}, c).Spec)
}
