package datastruct_test

import (
	"go.llib.dev/datastruct"
	"go.llib.dev/frameless/pkg/iterkit"
)

func ExampleList() {
	var list datastruct.List[string]
	list.Append("foo", "bar", "baz")
	list.Lookup(0)     // "foo", true
	list.Lookup(-1)    // "baz", true
	list.Remove("bar") // true
	list.ToSlice()     // []string{"foo", "baz"}
}

func ExampleList_Push() {
	var stack datastruct.List[int]
	stack.Push(1, 2, 3)
	stack.Pop() // 3, true
	stack.Pop() // 2, true
}

func ExampleList_Dequeue() {
	var queue datastruct.List[string]
	queue.Enqueue("first", "second")
	queue.Dequeue() // "first", true
}

func ExampleList_Values() {
	var nums datastruct.List[int]
	nums.Append(1, 2, 3, 4, 5)

	evens := iterkit.Filter(nums.Values(), func(n int) bool { return n%2 == 0 })
	doubled := iterkit.Map(evens, func(n int) int { return n * 2 })
	sum := iterkit.Reduce(doubled, 0, func(acc, n int) int { return acc + n })
	_ = sum // 12
}

func ExampleSet() {
	var set datastruct.Set[string]
	set.Append("foo", "bar", "foo")
	set.Len()           // 2
	set.Contains("foo") // true

	oth := datastruct.NewSet("bar", "baz")
	set.Union(oth)     // "foo" + "bar" + "baz"
	set.Intersect(oth) // "bar"
	set.Diff(oth)      // "foo"
}

func ExampleOrderedSet() {
	var set datastruct.OrderedSet[string]
	set.Append("foo", "bar", "baz", "foo")
	set.ToSlice() // []string{"foo", "bar", "baz"}
	set.Len()     // 3
}

func ExampleSortedList() {
	list := datastruct.NewSortedList[int]()
	_ = list.Add(3, 1, 2)
	list.ToSlice() // []int{1, 2, 3}
	list.Min()     // 1, true
	list.Max()     // 3, true
}

func ExampleSortedList_Range() {
	list := datastruct.NewSortedList[int]()
	_ = list.Add(10, 20, 30, 40)

	vs, _ := list.Range(15, 35)
	for v := range vs {
		_ = v // 20 -> 30
	}
}

func ExampleSortedListCompare() {
	byLen := datastruct.SortedListCompare(func(a, b string) int {
		return len(a) - len(b)
	})

	list := datastruct.NewSortedList(byLen)
	_ = list.Add("ccc", "a", "bb")
	list.ToSlice() // []string{"a", "bb", "ccc"}
}

func ExampleMap() {
	m := datastruct.NewMap[string, int]()
	_ = m.Set("foo", 1)
	_ = m.Set("foo", 2) // a non strict map overwrites
	m.Get("foo")        // 2

	m.Delete("bar") // false, deleting an absent key is not an error
}

func ExampleNewStrictMap() {
	m := datastruct.NewStrictMap[string, int]()
	_ = m.Set("foo", 1)

	err := m.Set("foo", 2)
	_ = err // datastruct.ErrDuplicateKey
}

func ExampleDefaultMap() {
	groups := datastruct.NewDefaultMap[string, []string](func() []string {
		return []string{}
	})

	// a missing key resolves to the factory value, no presence check needed
	groups.Set("vowels", append(groups.Get("vowels"), "a"))
	groups.Set("vowels", append(groups.Get("vowels"), "e"))
	groups.Get("vowels") // []string{"a", "e"}
}

func ExampleLayeredMap() {
	defaults := datastruct.NewMap[string, any]()
	_ = defaults.Set("threshold", 5)
	_ = defaults.Set("mode", "auto")

	overrides := datastruct.NewMap[string, any]()
	_ = overrides.Set("threshold", 10)

	config := datastruct.NewLayeredMap(overrides, defaults)
	config.Get("threshold") // 10, the front layer wins
	config.Get("mode")      // "auto", resolved from the defaults layer
}

func ExampleCounter() {
	var wordcount datastruct.Counter[string]
	wordcount.Append("a", "b", "a", "a", "b")

	wordcount.Get("a") // 3
	wordcount.Get("b") // 2

	for word, n := range wordcount.MostCommon(1) {
		_, _ = word, n // "a", 3
	}
}

func ExampleRingBuffer() {
	window := datastruct.NewRingBuffer[int](datastruct.RingBufferCapacity(3))

	for i := 1; i <= 5; i++ {
		_ = window.PushBack(i)
	}

	window.ToSlice() // []int{3, 4, 5}, the oldest readings were evicted
}

func ExampleRejectNew() {
	rb := datastruct.NewRingBuffer[int](
		datastruct.RingBufferCapacity(2),
		datastruct.RejectNew,
	)

	_ = rb.PushBack(1)
	_ = rb.PushBack(2)

	err := rb.PushBack(3)
	_ = err // datastruct.ErrCapacityExceeded
}

func ExampleTree() {
	bom := datastruct.NewTree("bike")
	root, _ := bom.Root()
	frame, _ := bom.AddChild(root, "frame")
	wheel, _ := bom.AddChild(root, "wheel")
	_, _ = bom.AddChild(wheel, "rim")
	_, _ = bom.AddChild(wheel, "spoke")

	for part := range bom.Values() {
		_ = part // "bike" -> "frame" -> "wheel" -> "rim" -> "spoke"
	}

	bom.Depth(frame) // 1, nil
}

func ExampleGraph_BFS() {
	g := datastruct.NewGraph[string]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	_ = g.AddEdge(a, b)
	_ = g.AddEdge(b, c)
	_ = g.AddEdge(c, a) // cycle back to the start

	ids, _ := g.BFS(a)
	for id := range ids {
		_ = id // a -> b -> c, every reachable node exactly once
	}
}

func ExampleGraph_DFS() {
	g := datastruct.NewGraph[string]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	d := g.AddNode("d")
	_ = g.AddEdge(a, b)
	_ = g.AddEdge(a, c)
	_ = g.AddEdge(b, d)

	ids, _ := g.DFS(a)
	for id := range ids {
		_ = id // a -> b -> d -> c, branches in edge insertion order
	}
}

func ExampleGraph_TopoSort() {
	g := datastruct.NewGraph[string]()
	build := g.AddNode("build")
	test := g.AddNode("test")
	release := g.AddNode("release")
	_ = g.AddEdge(build, test)
	_ = g.AddEdge(test, release)

	order, _ := g.TopoSort()
	_ = order // build -> test -> release
}

func ExampleTuple() {
	row, _ := datastruct.NewTuple(
		datastruct.F[any]("name", "Ada"),
		datastruct.F[any]("age", 36),
	)
	row.Get("name") // "Ada", true
	row.At(1)       // 36, true

	older, _ := row.WithValue("age", 37)
	_ = older // the original row is left untouched
}
