package datastruct

import (
	"iter"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/slicekit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
)

// Graph is a directed graph of payload holding nodes, addressed by NodeID.
// Edges are weighted, self loops and cycles are permitted.
// Removing a node also removes every edge incident to it.
// The zero value is an empty graph ready for use.
type Graph[T any] struct {
	nodes  map[NodeID]*graphNode[T]
	order  []NodeID
	nextID NodeID
}

type graphNode[T any] struct {
	payload T
	out     []edge
}

type edge struct {
	dst    NodeID
	weight float64
}

// Edge is a single directed weighted connection between two graph nodes.
type Edge struct {
	Src    NodeID
	Dst    NodeID
	Weight float64
}

func NewGraph[T any]() *Graph[T] {
	return &Graph[T]{}
}

type EdgeOption option.Option[EdgeConfig]

type EdgeConfig struct {
	// Weight is the cost of the edge.
	// A zero weight resolves to the default weight of one.
	Weight float64
}

var _ EdgeOption = EdgeConfig{}

func (c EdgeConfig) Configure(oth *EdgeConfig) {
	oth.Weight = zerokit.Coalesce(c.Weight, oth.Weight)
}

// EdgeWeight sets the cost of the edge being added.
func EdgeWeight(w float64) EdgeOption {
	return option.Func[EdgeConfig](func(c *EdgeConfig) {
		c.Weight = w
	})
}

var _ interface {
	Len
	Values[any]
	Containable[NodeID]
} = (*Graph[any])(nil)

// AddNode adds a new node holding the payload and returns its id.
func (g *Graph[T]) AddNode(payload T) NodeID {
	g.init()
	g.nextID++
	id := g.nextID
	g.nodes[id] = &graphNode[T]{payload: payload}
	g.order = append(g.order, id)
	return id
}

// AddEdge connects src to dst with a directed edge.
// Adding an edge that already exists updates its weight but keeps its position.
func (g *Graph[T]) AddEdge(src, dst NodeID, opts ...EdgeOption) error {
	c := option.ToConfig(opts)
	sn, ok := g.nodes[src]
	if !ok {
		return ErrNotFound.F("%d source node was not found", src)
	}
	if _, ok := g.nodes[dst]; !ok {
		return ErrNotFound.F("%d destination node was not found", dst)
	}
	weight := zerokit.Coalesce(c.Weight, 1)
	for i, e := range sn.out {
		if e.dst == dst {
			sn.out[i].weight = weight
			return nil
		}
	}
	sn.out = append(sn.out, edge{dst: dst, weight: weight})
	return nil
}

// RemoveNode removes the node and every edge incident to it,
// and reports whether the node was present.
func (g *Graph[T]) RemoveNode(id NodeID) bool {
	if _, ok := g.nodes[id]; !ok {
		return false
	}
	delete(g.nodes, id)
	for i, nid := range g.order {
		if nid == id {
			slicekit.Delete(&g.order, i)
			break
		}
	}
	for _, n := range g.nodes {
		for i, e := range n.out {
			if e.dst == id {
				slicekit.Delete(&n.out, i)
				break
			}
		}
	}
	return true
}

// RemoveEdge removes the directed edge between src and dst,
// and reports whether the edge was present.
func (g *Graph[T]) RemoveEdge(src, dst NodeID) bool {
	n, ok := g.nodes[src]
	if !ok {
		return false
	}
	for i, e := range n.out {
		if e.dst == dst {
			slicekit.Delete(&n.out, i)
			return true
		}
	}
	return false
}

// Contains reports whether the id addresses a node of the graph.
func (g *Graph[T]) Contains(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Lookup returns the payload of the node.
func (g *Graph[T]) Lookup(id NodeID) (T, bool) {
	var zero T
	n, ok := g.nodes[id]
	if !ok {
		return zero, false
	}
	return n.payload, true
}

// Update replaces the payload of the node.
func (g *Graph[T]) Update(id NodeID, payload T) error {
	n, ok := g.nodes[id]
	if !ok {
		return ErrNotFound.F("%d node was not found", id)
	}
	n.payload = payload
	return nil
}

func (g *Graph[T]) HasEdge(src, dst NodeID) bool {
	_, ok := g.Weight(src, dst)
	return ok
}

// Weight returns the weight of the edge between src and dst.
func (g *Graph[T]) Weight(src, dst NodeID) (float64, bool) {
	n, ok := g.nodes[src]
	if !ok {
		return 0, false
	}
	for _, e := range n.out {
		if e.dst == dst {
			return e.weight, true
		}
	}
	return 0, false
}

// Nodes yields the node ids in insertion order.
// Each call starts a fresh traversal.
func (g *Graph[T]) Nodes() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for i := 0; i < len(g.order); i++ {
			if !yield(g.order[i]) {
				return
			}
		}
	}
}

// Values yields the node payloads in node insertion order.
// Each call starts a fresh traversal.
func (g *Graph[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(g.order); i++ {
			n, ok := g.nodes[g.order[i]]
			if !ok {
				continue
			}
			if !yield(n.payload) {
				return
			}
		}
	}
}

// Edges yields every edge of the graph,
// ordered by the insertion order of the source nodes, then by edge insertion order.
func (g *Graph[T]) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for i := 0; i < len(g.order); i++ {
			src := g.order[i]
			n, ok := g.nodes[src]
			if !ok {
				continue
			}
			for _, e := range n.out {
				if !yield(Edge{Src: src, Dst: e.dst, Weight: e.weight}) {
					return
				}
			}
		}
	}
}

// Neighbours yields the ids the node has an outgoing edge to, in edge insertion order.
func (g *Graph[T]) Neighbours(id NodeID) (iter.Seq[NodeID], error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNotFound.F("%d node was not found", id)
	}
	return func(yield func(NodeID) bool) {
		for i := 0; i < len(n.out); i++ {
			if !yield(n.out[i].dst) {
				return
			}
		}
	}, nil
}

// BFS yields the ids of the nodes reachable from start in breadth first order.
// The frontier is first in first out, neighbours enter it in edge insertion order,
// and every reachable node is visited exactly once even when the graph has cycles.
func (g *Graph[T]) BFS(start NodeID) (iter.Seq[NodeID], error) {
	if _, ok := g.nodes[start]; !ok {
		return nil, ErrNotFound.F("%d start node was not found", start)
	}
	return func(yield func(NodeID) bool) {
		var (
			frontier RingBuffer[NodeID]
			visited  Set[NodeID]
		)
		_ = frontier.PushBack(start)
		visited.Append(start)
		for {
			id, ok := frontier.PopFront()
			if !ok {
				return
			}
			if !yield(id) {
				return
			}
			n, ok := g.nodes[id]
			if !ok {
				continue
			}
			for _, e := range n.out {
				if visited.Contains(e.dst) {
					continue
				}
				visited.Append(e.dst)
				_ = frontier.PushBack(e.dst)
			}
		}
	}, nil
}

// DFS yields the ids of the nodes reachable from start in depth first pre-order,
// expanding neighbours in edge insertion order.
// The frontier is last in first out,
// and every reachable node is visited exactly once even when the graph has cycles.
func (g *Graph[T]) DFS(start NodeID) (iter.Seq[NodeID], error) {
	if _, ok := g.nodes[start]; !ok {
		return nil, ErrNotFound.F("%d start node was not found", start)
	}
	return func(yield func(NodeID) bool) {
		var (
			frontier List[NodeID]
			visited  Set[NodeID]
		)
		frontier.Push(start)
		for {
			id, ok := frontier.Pop()
			if !ok {
				return
			}
			if visited.Contains(id) {
				continue
			}
			visited.Append(id)
			if !yield(id) {
				return
			}
			n, ok := g.nodes[id]
			if !ok {
				continue
			}
			for i := len(n.out) - 1; 0 <= i; i-- {
				if !visited.Contains(n.out[i].dst) {
					frontier.Push(n.out[i].dst)
				}
			}
		}
	}, nil
}

// TopoSort returns the node ids in an order where every edge points forward.
// Nodes without dependencies come in insertion order.
// A graph with a cycle has no such order, which is reported with ErrCycleDetected.
func (g *Graph[T]) TopoSort() ([]NodeID, error) {
	indegree := NewCounter[NodeID]()
	for _, id := range g.order {
		indegree.Increment(id, 0)
		for _, e := range g.nodes[id].out {
			indegree.Increment(e.dst, 1)
		}
	}
	var queue RingBuffer[NodeID]
	for _, id := range g.order {
		if indegree.Get(id) == 0 {
			_ = queue.PushBack(id)
		}
	}
	sorted := make([]NodeID, 0, len(g.order))
	for {
		id, ok := queue.PopFront()
		if !ok {
			break
		}
		sorted = append(sorted, id)
		for _, e := range g.nodes[id].out {
			indegree.Decrement(e.dst, 1)
			if indegree.Get(e.dst) == 0 {
				_ = queue.PushBack(e.dst)
			}
		}
	}
	if len(sorted) != len(g.order) {
		return nil, ErrCycleDetected.F("%d nodes are part of a dependency cycle", len(g.order)-len(sorted))
	}
	return sorted, nil
}

func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// Clone returns an independent copy of the graph that keeps the node ids.
func (g *Graph[T]) Clone() *Graph[T] {
	clone := &Graph[T]{
		nodes:  make(map[NodeID]*graphNode[T], len(g.nodes)),
		order:  slicekit.Clone(g.order),
		nextID: g.nextID,
	}
	for id, n := range g.nodes {
		clone.nodes[id] = &graphNode[T]{payload: n.payload, out: slicekit.Clone(n.out)}
	}
	return clone
}

// Equal reports whether both graphs hold the same node ids with equal payloads,
// and the same edges with the same weights.
// Unlike with Tree, node ids take part in the comparison,
// as ids are how edges express the structure of the graph.
func (g *Graph[T]) Equal(oth *Graph[T]) bool {
	return g.EqualFunc(oth, func(a, b T) bool {
		return reflectkit.Equal(a, b)
	})
}

func (g *Graph[T]) EqualFunc(oth *Graph[T], eq func(a, b T) bool) bool {
	if g == nil || oth == nil {
		return g == oth
	}
	if len(g.nodes) != len(oth.nodes) {
		return false
	}
	for id, n := range g.nodes {
		on, ok := oth.nodes[id]
		if !ok {
			return false
		}
		if !eq(n.payload, on.payload) {
			return false
		}
		if len(n.out) != len(on.out) {
			return false
		}
		for i := range n.out {
			if n.out[i] != on.out[i] {
				return false
			}
		}
	}
	return true
}

// Is reports whether both references point to the same graph.
func (g *Graph[T]) Is(oth *Graph[T]) bool {
	return g == oth
}

func (g *Graph[T]) init() {
	if g.nodes == nil {
		g.nodes = make(map[NodeID]*graphNode[T])
	}
}
