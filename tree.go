package datastruct

import (
	"iter"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/slicekit"
)

// NodeID addresses a node within a Tree or a Graph.
// Ids are handed out by the owning container and are never reused within it.
// The zero value never addresses a node.
type NodeID int

// Tree is a hierarchy of payload holding nodes, addressed by NodeID.
// Every node except the root is owned by exactly one parent,
// and removing a node removes the whole subtree it owns.
// The zero value is an empty tree without a root.
type Tree[T any] struct {
	nodes  map[NodeID]*treeNode[T]
	root   NodeID
	nextID NodeID
}

type treeNode[T any] struct {
	payload  T
	parent   NodeID
	children []NodeID
}

// NewTree constructs a tree with a root node holding the given payload.
func NewTree[T any](rootPayload T) *Tree[T] {
	var tr Tree[T]
	tr.root = tr.allocate(rootPayload, 0)
	return &tr
}

var _ interface {
	Len
	Values[any]
	Containable[NodeID]
} = (*Tree[any])(nil)

// Root returns the id of the root node.
func (tr *Tree[T]) Root() (NodeID, bool) {
	return tr.root, tr.root != 0
}

// AddChild adds a new node holding the payload under the parent node, and returns its id.
// The new node becomes the last child of its parent.
func (tr *Tree[T]) AddChild(parent NodeID, payload T) (NodeID, error) {
	p, ok := tr.nodes[parent]
	if !ok {
		return 0, ErrNotFound.F("%d parent node was not found", parent)
	}
	id := tr.allocate(payload, parent)
	p.children = append(p.children, id)
	return id, nil
}

// Move re-parents the subtree rooted at id under newParent, appended as its last child.
// The node detaches from its old parent in the same step, so no node ever has two parents.
// Moving a node under itself or under any node of its own subtree fails with ErrCycleDetected.
func (tr *Tree[T]) Move(id, newParent NodeID) error {
	n, ok := tr.nodes[id]
	if !ok {
		return ErrNotFound.F("%d node was not found", id)
	}
	np, ok := tr.nodes[newParent]
	if !ok {
		return ErrNotFound.F("%d parent node was not found", newParent)
	}
	if tr.inSubtree(newParent, id) {
		return ErrCycleDetected.F("%d node cannot move under its own subtree", id)
	}
	tr.detach(id)
	n.parent = newParent
	np.children = append(np.children, id)
	return nil
}

// Remove deletes the node and cascades to the whole subtree it owns.
// Removing the root empties the tree.
func (tr *Tree[T]) Remove(id NodeID) error {
	if _, ok := tr.nodes[id]; !ok {
		return ErrNotFound.F("%d node was not found", id)
	}
	tr.detach(id)
	tr.remove(id)
	if id == tr.root {
		tr.root = 0
	}
	return nil
}

// Contains reports whether the id addresses a node of the tree.
func (tr *Tree[T]) Contains(id NodeID) bool {
	_, ok := tr.nodes[id]
	return ok
}

// Lookup returns the payload of the node.
func (tr *Tree[T]) Lookup(id NodeID) (T, bool) {
	var zero T
	n, ok := tr.nodes[id]
	if !ok {
		return zero, false
	}
	return n.payload, true
}

// Update replaces the payload of the node.
func (tr *Tree[T]) Update(id NodeID, payload T) error {
	n, ok := tr.nodes[id]
	if !ok {
		return ErrNotFound.F("%d node was not found", id)
	}
	n.payload = payload
	return nil
}

// Depth returns the distance of the node from the root, where the root has a depth of zero.
func (tr *Tree[T]) Depth(id NodeID) (int, error) {
	n, ok := tr.nodes[id]
	if !ok {
		return 0, ErrNotFound.F("%d node was not found", id)
	}
	var depth int
	for cur := n; cur.parent != 0; cur = tr.nodes[cur.parent] {
		depth++
	}
	return depth, nil
}

// Parent returns the id of the node's parent.
// The root node has no parent.
func (tr *Tree[T]) Parent(id NodeID) (NodeID, bool) {
	n, ok := tr.nodes[id]
	if !ok || n.parent == 0 {
		return 0, false
	}
	return n.parent, true
}

// Children yields the ids of the node's children in insertion order.
// Each call starts a fresh traversal.
func (tr *Tree[T]) Children(id NodeID) (iter.Seq[NodeID], error) {
	n, ok := tr.nodes[id]
	if !ok {
		return nil, ErrNotFound.F("%d node was not found", id)
	}
	return func(yield func(NodeID) bool) {
		for i := 0; i < len(n.children); i++ {
			if !yield(n.children[i]) {
				return
			}
		}
	}, nil
}

// Walk yields the ids of the subtree rooted at the given node in pre-order,
// visiting each node before its children, children in insertion order.
func (tr *Tree[T]) Walk(from NodeID) (iter.Seq[NodeID], error) {
	if _, ok := tr.nodes[from]; !ok {
		return nil, ErrNotFound.F("%d node was not found", from)
	}
	return func(yield func(NodeID) bool) {
		tr.walk(from, yield)
	}, nil
}

// Values yields the payloads of the tree in pre-order.
// Each call starts a fresh traversal.
func (tr *Tree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if tr.root == 0 {
			return
		}
		tr.walk(tr.root, func(id NodeID) bool {
			return yield(tr.nodes[id].payload)
		})
	}
}

// Len returns how many nodes the tree holds.
func (tr *Tree[T]) Len() int {
	return len(tr.nodes)
}

// Clone returns an independent copy of the tree that keeps the node ids.
func (tr *Tree[T]) Clone() *Tree[T] {
	clone := &Tree[T]{
		nodes:  make(map[NodeID]*treeNode[T], len(tr.nodes)),
		root:   tr.root,
		nextID: tr.nextID,
	}
	for id, n := range tr.nodes {
		clone.nodes[id] = &treeNode[T]{
			payload:  n.payload,
			parent:   n.parent,
			children: slicekit.Clone(n.children),
		}
	}
	return clone
}

// Equal reports whether both trees have the same shape with equal payloads.
// Node ids are not part of the comparison.
func (tr *Tree[T]) Equal(oth *Tree[T]) bool {
	return tr.EqualFunc(oth, func(a, b T) bool {
		return reflectkit.Equal(a, b)
	})
}

func (tr *Tree[T]) EqualFunc(oth *Tree[T], eq func(a, b T) bool) bool {
	if tr == nil || oth == nil {
		return tr == oth
	}
	if len(tr.nodes) != len(oth.nodes) {
		return false
	}
	if (tr.root == 0) != (oth.root == 0) {
		return false
	}
	if tr.root == 0 {
		return true
	}
	return tr.equalNode(oth, tr.root, oth.root, eq)
}

// Is reports whether both references point to the same tree.
func (tr *Tree[T]) Is(oth *Tree[T]) bool {
	return tr == oth
}

func (tr *Tree[T]) equalNode(oth *Tree[T], a, b NodeID, eq func(a, b T) bool) bool {
	na, nb := tr.nodes[a], oth.nodes[b]
	if !eq(na.payload, nb.payload) {
		return false
	}
	if len(na.children) != len(nb.children) {
		return false
	}
	for i := range na.children {
		if !tr.equalNode(oth, na.children[i], nb.children[i], eq) {
			return false
		}
	}
	return true
}

func (tr *Tree[T]) walk(id NodeID, yield func(NodeID) bool) bool {
	n, ok := tr.nodes[id]
	if !ok {
		return true
	}
	if !yield(id) {
		return false
	}
	for _, cid := range n.children {
		if !tr.walk(cid, yield) {
			return false
		}
	}
	return true
}

// inSubtree reports whether id lies within the subtree rooted at root, root included.
func (tr *Tree[T]) inSubtree(id, root NodeID) bool {
	for cur := id; cur != 0; cur = tr.nodes[cur].parent {
		if cur == root {
			return true
		}
	}
	return false
}

func (tr *Tree[T]) detach(id NodeID) {
	n := tr.nodes[id]
	if n.parent == 0 {
		return
	}
	p := tr.nodes[n.parent]
	for i, cid := range p.children {
		if cid == id {
			slicekit.Delete(&p.children, i)
			break
		}
	}
	n.parent = 0
}

func (tr *Tree[T]) remove(id NodeID) {
	n, ok := tr.nodes[id]
	if !ok {
		return
	}
	for _, cid := range n.children {
		tr.remove(cid)
	}
	delete(tr.nodes, id)
}

func (tr *Tree[T]) allocate(payload T, parent NodeID) NodeID {
	tr.init()
	tr.nextID++
	id := tr.nextID
	tr.nodes[id] = &treeNode[T]{payload: payload, parent: parent}
	return id
}

func (tr *Tree[T]) init() {
	if tr.nodes == nil {
		tr.nodes = make(map[NodeID]*treeNode[T])
	}
}
