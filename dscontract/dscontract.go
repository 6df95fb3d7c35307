// Package dscontract holds reusable behavioural suites for the capability
// interfaces of the datastruct package.
// Implementations outside this module can run them against their own container types.
package dscontract

import (
	"fmt"
	"iter"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/iterkit/iterkitcontract"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"

	"go.llib.dev/datastruct"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

type Option[T any] interface {
	option.Option[Config[T]]
}

type Config[T any] struct {
	// MakeElem creates the elements the suites feed into the subject container.
	//
	// Default: a random value made with testcase.
	MakeElem func(testing.TB) T
}

var _ Option[any] = Config[any]{}

func (c Config[T]) Configure(o *Config[T]) {
	o.MakeElem = zerokit.Coalesce(c.MakeElem, o.MakeElem)
}

func (c Config[T]) makeElem(tb testing.TB) T {
	return zerokit.Coalesce(c.MakeElem, makeValue[T])(tb)
}

func makeValue[T any](tb testing.TB) T {
	t := testcase.ToT(&tb)
	return t.Random.Make(reflectkit.TypeOf[T]()).(T)
}

// MakeUniqElem returns a MakeElem function that never repeats a value.
// Suites that reason about length or containment need it
// for subjects that collapse duplicates, such as Set.
func MakeUniqElem[T any]() func(testing.TB) T {
	vs := make([]T, 0)
	return func(tb testing.TB) T {
		t := testcase.ToT(&tb)
		mk := func() T { return t.Random.Make(reflectkit.TypeOf[T]()).(T) }
		v := random.Unique(mk, vs...)
		vs = append(vs, v)
		return v
	}
}

type SubjectLenAppendable[T any] interface {
	datastruct.Appendable[T]
	datastruct.Len
}

func LenAppendable[T any, Subject SubjectLenAppendable[T]](mk contract.Make[Subject], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("append affects length", func(t *testcase.T) {
		subject := mk(t)

		exp := 0
		assert.Equal(t, exp, subject.Len())

		t.Random.Repeat(3, 7, func() {
			subject.Append(c.makeElem(t))
			exp++
			assert.Equal(t, exp, subject.Len())
		})
	})

	s.Test("append many at once increases the length by the number of appended values", func(t *testcase.T) {
		var (
			subject      = mk(t)
			expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
		)
		baseLen := subject.Len()
		subject.Append(expected...)
		assert.Equal(t, len(expected)+baseLen, subject.Len())
	})

	return s.AsSuite(fmt.Sprintf("Len[%s] (appendable)", reflectkit.TypeOf[T]().String()))
}

func Appendable[T any, Subject datastruct.Appendable[T]](mk contract.Make[Subject], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("appending nothing is a no-op", func(t *testcase.T) {
		subject := mk(t)

		subject.Append()

		if n, ok := any(subject).(datastruct.Len); ok {
			assert.Equal(t, 0, n.Len())
		}
	})

	s.Test("appended values become part of the container", func(t *testcase.T) {
		var (
			subject      = mk(t)
			expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) }, random.UniqueValues)
		)
		subject.Append(expected...)

		if vs, ok := any(subject).(datastruct.Values[T]); ok {
			assert.ContainsExactly(t, expected, iterkit.Collect(vs.Values()))
		}
		if cs, ok := any(subject).(datastruct.Containable[T]); ok {
			for _, v := range expected {
				assert.True(t, cs.Contains(v))
			}
		}
	})

	return s.AsSuite(fmt.Sprintf("Appendable[%s]", reflectkit.TypeOf[T]().String()))
}

type SubjectContainable[T any] interface {
	datastruct.Appendable[T]
	datastruct.Containable[T]
}

func Containable[T any, Subject SubjectContainable[T]](mk contract.Make[Subject], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("an empty subject contains nothing", func(t *testcase.T) {
		subject := mk(t)

		assert.False(t, subject.Contains(c.makeElem(t)))
	})

	s.Test("an appended value is contained", func(t *testcase.T) {
		subject := mk(t)

		v := c.makeElem(t)
		subject.Append(v)

		assert.True(t, subject.Contains(v))
	})

	s.Test("containment follows the live state", func(t *testcase.T) {
		subject := mk(t)
		a := c.makeElem(t)
		b := c.makeElem(t)

		subject.Append(a)
		assert.True(t, subject.Contains(a))
		assert.False(t, subject.Contains(b))

		subject.Append(b)
		assert.True(t, subject.Contains(b))
	})

	return s.AsSuite(fmt.Sprintf("Containable[%s]", reflectkit.TypeOf[T]().String()))
}

type SubjectValues[T any] interface {
	datastruct.Appendable[T]
	datastruct.Values[T]
}

func Values[T any, Subject SubjectValues[T]](mk contract.Make[Subject], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Describe("#Values", iterkitcontract.IterSeq(func(tb testing.TB) iter.Seq[T] {
		t := testcase.ToT(&tb)
		subject := mk(t)
		t.Random.Repeat(3, 7, func() {
			subject.Append(c.makeElem(t))
		})
		return subject.Values()
	}).Spec)

	s.Test("iteration is restartable", func(t *testcase.T) {
		subject := mk(t)
		t.Random.Repeat(3, 7, func() {
			subject.Append(c.makeElem(t))
		})

		vs := subject.Values()

		assert.ContainsExactly(t, iterkit.Collect(vs), iterkit.Collect(vs))
	})

	s.Test("iteration can be stopped early", func(t *testcase.T) {
		subject := mk(t)
		t.Random.Repeat(3, 7, func() {
			subject.Append(c.makeElem(t))
		})

		var got []T
		for v := range subject.Values() {
			got = append(got, v)
			break
		}

		assert.Equal(t, 1, len(got))
	})

	s.Test("the sequence follows the live state of the container", func(t *testcase.T) {
		subject := mk(t)
		vs := subject.Values()

		assert.Empty(t, iterkit.Collect(vs))

		var expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) }, random.UniqueValues)
		subject.Append(expected...)

		assert.ContainsExactly(t, expected, iterkit.Collect(vs))
	})

	return s.AsSuite(fmt.Sprintf("Values[%s]", reflectkit.TypeOf[T]().String()))
}

// Bag composes the suites of the capabilities every single-value container kind shares.
func Bag[T any, Subject datastruct.Bag[T]](mk contract.Make[Subject], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Context("implements Len", LenAppendable[T, Subject](mk, c).Spec)
	s.Context("implements Appendable", Appendable[T, Subject](mk, c).Spec)
	s.Context("implements Containable", Containable[T, Subject](mk, c).Spec)
	s.Context("implements Values", Values[T, Subject](mk, c).Spec)

	return s.AsSuite(fmt.Sprintf("Bag[%s]", reflectkit.TypeOf[T]().String()))
}

func Sequence[T any, Subject datastruct.Sequence[T]](mk contract.Make[Subject], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	seed := func(t *testcase.T, subject Subject) []T {
		vs := random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) }, random.UniqueValues)
		subject.Append(vs...)
		return vs
	}

	s.Test("Lookup addresses the elements in append order", func(t *testcase.T) {
		subject := mk(t)
		vs := seed(t, subject)

		for i, exp := range vs {
			got, ok := subject.Lookup(i)
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		}
	})

	s.Test("a negative index addresses from the back", func(t *testcase.T) {
		subject := mk(t)
		vs := seed(t, subject)

		got, ok := subject.Lookup(-1)
		assert.True(t, ok)
		assert.Equal(t, vs[len(vs)-1], got)
	})

	s.Test("an out of range index reports failure", func(t *testcase.T) {
		subject := mk(t)
		vs := seed(t, subject)

		_, ok := subject.Lookup(len(vs))
		assert.False(t, ok)

		_, ok = subject.Lookup(-1 * (len(vs) + 1))
		assert.False(t, ok)
	})

	s.Test("Set replaces the element at the index", func(t *testcase.T) {
		subject := mk(t)
		vs := seed(t, subject)

		var (
			index = t.Random.IntN(len(vs))
			v     = c.makeElem(t)
		)
		assert.True(t, subject.Set(index, v))

		got, ok := subject.Lookup(index)
		assert.True(t, ok)
		assert.Equal(t, v, got)
		assert.Equal(t, len(vs), subject.Len(), "replacing doesn't grow the sequence")
	})

	s.Test("Set on an out of range index reports failure", func(t *testcase.T) {
		subject := mk(t)
		vs := seed(t, subject)

		assert.False(t, subject.Set(len(vs), c.makeElem(t)))
	})

	s.Test("Insert places the values before the index", func(t *testcase.T) {
		subject := mk(t)
		vs := seed(t, subject)

		v := c.makeElem(t)
		assert.True(t, subject.Insert(0, v))

		got, ok := subject.Lookup(0)
		assert.True(t, ok)
		assert.Equal(t, v, got)
		assert.Equal(t, len(vs)+1, subject.Len())
	})

	s.Test("Insert at the length acts as an append", func(t *testcase.T) {
		subject := mk(t)
		seed(t, subject)

		v := c.makeElem(t)
		assert.True(t, subject.Insert(subject.Len(), v))

		got, ok := subject.Lookup(-1)
		assert.True(t, ok)
		assert.Equal(t, v, got)
	})

	s.Test("Delete removes the element at the index", func(t *testcase.T) {
		subject := mk(t)
		vs := seed(t, subject)

		assert.True(t, subject.Delete(0))

		assert.Equal(t, len(vs)-1, subject.Len())
		got, ok := subject.Lookup(0)
		assert.True(t, ok)
		assert.Equal(t, vs[1], got, "the elements after the deleted index shift down")
	})

	s.Test("Delete on an out of range index reports failure", func(t *testcase.T) {
		subject := mk(t)
		seed(t, subject)

		assert.False(t, subject.Delete(subject.Len()))
	})

	return s.AsSuite(fmt.Sprintf("Sequence[%s]", reflectkit.TypeOf[T]().String()))
}

type SubjectCloneable[T any, Subject any] interface {
	datastruct.Appendable[T]
	datastruct.Len
	Clone() Subject
}

// Cloneable asserts that Clone returns an independent copy,
// where mutations on either side leave the other side untouched.
func Cloneable[T any, Subject SubjectCloneable[T, Subject]](mk contract.Make[Subject], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	seed := func(t *testcase.T, subject Subject) {
		t.Random.Repeat(3, 7, func() {
			subject.Append(c.makeElem(t))
		})
	}

	s.Test("the clone starts out with the same content", func(t *testcase.T) {
		subject := mk(t)
		seed(t, subject)

		clone := subject.Clone()

		assert.Equal(t, subject.Len(), clone.Len())
		if svs, ok := any(subject).(datastruct.Values[T]); ok {
			cvs := any(clone).(datastruct.Values[T])
			assert.ContainsExactly(t, iterkit.Collect(svs.Values()), iterkit.Collect(cvs.Values()))
		}
	})

	s.Test("growing the original leaves the clone untouched", func(t *testcase.T) {
		subject := mk(t)
		seed(t, subject)

		clone := subject.Clone()
		cloneLen := clone.Len()

		subject.Append(c.makeElem(t))

		assert.Equal(t, cloneLen, clone.Len())
	})

	s.Test("growing the clone leaves the original untouched", func(t *testcase.T) {
		subject := mk(t)
		seed(t, subject)

		clone := subject.Clone()
		subjectLen := subject.Len()

		clone.Append(c.makeElem(t))

		assert.Equal(t, subjectLen, subject.Len())
	})

	return s.AsSuite(fmt.Sprintf("Cloneable[%s]", reflectkit.TypeOf[T]().String()))
}
