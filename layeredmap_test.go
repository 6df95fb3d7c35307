package datastruct_test

import (
	"testing"

	"go.llib.dev/datastruct"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestLayeredMap(t *testing.T) {
	s := testcase.NewSpec(t)

	overrides := let.Var(s, func(t *testcase.T) *datastruct.Map[string, any] {
		m := datastruct.NewMap[string, any]()
		assert.NoError(t, m.Set("threshold", 10))
		return m
	})
	defaults := let.Var(s, func(t *testcase.T) *datastruct.Map[string, any] {
		m := datastruct.NewMap[string, any]()
		assert.NoError(t, m.Set("mode", "auto"))
		assert.NoError(t, m.Set("threshold", 5))
		return m
	})
	subject := let.Var(s, func(t *testcase.T) *datastruct.LayeredMap[string, any] {
		return datastruct.NewLayeredMap(overrides.Get(t), defaults.Get(t))
	})

	s.Describe("#Get", func(s *testcase.Spec) {
		key := let.VarOf[string](s, "threshold")
		act := let.Act2(func(t *testcase.T) (any, error) {
			return subject.Get(t).Get(key.Get(t))
		})

		s.Then("the front layer shadows the deeper one", func(t *testcase.T) {
			got, err := act(t)
			assert.NoError(t, err)
			assert.Equal[any](t, 10, got)
		})

		s.When("only a deeper layer has the key", func(s *testcase.Spec) {
			key.LetValue(s, "mode")

			s.Then("the deeper layer's value is found", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.Equal[any](t, "auto", got)
			})
		})

		s.When("no layer has the key", func(s *testcase.Spec) {
			key.Let(s, func(t *testcase.T) string {
				return t.Random.String()
			})

			s.Then("not found is reported", func(t *testcase.T) {
				_, err := act(t)

				assert.ErrorIs(t, err, datastruct.ErrNotFound)
			})
		})
	})

	s.Describe("#Set", func(s *testcase.Spec) {
		s.Test("writes go to the front layer only", func(t *testcase.T) {
			assert.NoError(t, subject.Get(t).Set("mode", "manual"))

			got, err := subject.Get(t).Get("mode")
			assert.NoError(t, err)
			assert.Equal[any](t, "manual", got)

			assert.Equal[any](t, "auto", defaults.Get(t).Get("mode"),
				"the deeper layer is left untouched")
			assert.True(t, overrides.Get(t).Contains("mode"))
		})
	})

	s.Describe("#SetAt", func(s *testcase.Spec) {
		s.Test("a named layer can be targeted", func(t *testcase.T) {
			assert.NoError(t, subject.Get(t).SetAt(1, "retries", 3))

			assert.True(t, defaults.Get(t).Contains("retries"))
			assert.False(t, overrides.Get(t).Contains("retries"))
		})

		s.Test("an out of range layer index is refused", func(t *testcase.T) {
			err := subject.Get(t).SetAt(t.Random.IntBetween(2, 10), "retries", 3)

			assert.ErrorIs(t, err, datastruct.ErrNotFound)
		})
	})

	s.Describe("#Delete", func(s *testcase.Spec) {
		s.Test("removing a front layer key unshadows the deeper value", func(t *testcase.T) {
			assert.True(t, subject.Get(t).Delete("threshold"))

			got, err := subject.Get(t).Get("threshold")
			assert.NoError(t, err)
			assert.Equal[any](t, 5, got)
		})

		s.Test("a key living only in a deeper layer is not deletable through the view", func(t *testcase.T) {
			assert.False(t, subject.Get(t).Delete("mode"))
			assert.True(t, subject.Get(t).Contains("mode"))
		})
	})

	s.Describe("#Len", func(s *testcase.Spec) {
		s.Test("distinct keys are counted once across layers", func(t *testcase.T) {
			assert.Equal(t, 2, subject.Get(t).Len())
		})
	})

	s.Describe("#ToMap", func(s *testcase.Spec) {
		s.Test("the effective view is flattened", func(t *testcase.T) {
			assert.Equal(t, map[string]any{"threshold": 10, "mode": "auto"}, subject.Get(t).ToMap())
		})
	})

	s.Describe("#NewChild", func(s *testcase.Spec) {
		act := let.Act(func(t *testcase.T) *datastruct.LayeredMap[string, any] {
			return subject.Get(t).NewChild()
		})

		s.Then("a fresh front layer is pushed while the rest is shared", func(t *testcase.T) {
			child := act(t)

			assert.Equal(t, 3, child.Layers())
			assert.NoError(t, child.Set("threshold", 99))

			got, err := child.Get("threshold")
			assert.NoError(t, err)
			assert.Equal[any](t, 99, got)

			got, err = subject.Get(t).Get("threshold")
			assert.NoError(t, err)
			assert.Equal[any](t, 10, got, "the parent view is unaffected by child writes")
		})

		s.Then("writes on the shared layers show through the child", func(t *testcase.T) {
			child := act(t)

			assert.NoError(t, overrides.Get(t).Set("limit", 100))

			got, err := child.Get("limit")
			assert.NoError(t, err)
			assert.Equal[any](t, 100, got)
		})
	})

	s.Describe("#Parents", func(s *testcase.Spec) {
		s.Test("the front layer is dropped from the view", func(t *testcase.T) {
			parents := subject.Get(t).Parents()

			got, err := parents.Get("threshold")
			assert.NoError(t, err)
			assert.Equal[any](t, 5, got)
		})

		s.Test("on a single layer view an empty view is returned", func(t *testcase.T) {
			single := datastruct.NewLayeredMap[string, any]()
			assert.NoError(t, single.Set("k", 1))

			assert.Equal(t, 0, single.Parents().Len())
		})
	})

	s.Describe("#Clone", func(s *testcase.Spec) {
		act := let.Act(func(t *testcase.T) *datastruct.LayeredMap[string, any] {
			return subject.Get(t).Clone()
		})

		s.Then("the clone equals the original but shares no layer", func(t *testcase.T) {
			clone := act(t)

			assert.True(t, clone.Equal(subject.Get(t)))
			assert.False(t, clone.Is(subject.Get(t)))

			assert.NoError(t, overrides.Get(t).Set("threshold", 77))

			got, err := clone.Get("threshold")
			assert.NoError(t, err)
			assert.Equal[any](t, 10, got, "layer mutation doesn't show through the clone")
		})
	})

	s.Describe("#Equal", func(s *testcase.Spec) {
		s.Test("views with the same effective entries are equal regardless of layering", func(t *testcase.T) {
			flat := datastruct.NewLayeredMap[string, any]()
			assert.NoError(t, flat.Set("threshold", 10))
			assert.NoError(t, flat.Set("mode", "auto"))

			assert.True(t, subject.Get(t).Equal(flat))
		})

		s.Test("views with different effective entries are not equal", func(t *testcase.T) {
			flat := datastruct.NewLayeredMap[string, any]()
			assert.NoError(t, flat.Set("threshold", 5))
			assert.NoError(t, flat.Set("mode", "auto"))

			assert.False(t, subject.Get(t).Equal(flat))
		})
	})

	s.Test("the zero value acts as a single empty layer", func(t *testcase.T) {
		var m datastruct.LayeredMap[string, int]

		_, err := m.Get("missing")
		assert.ErrorIs(t, err, datastruct.ErrNotFound)

		assert.NoError(t, m.Set("k", 1))

		got, err := m.Get("k")
		assert.NoError(t, err)
		assert.Equal(t, 1, got)
	})
}
