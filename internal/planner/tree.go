package planner

import "github.com/armlab/ropeplan/internal/space"

// #region node

// Node is one vertex of the search tree. Nodes are immutable after
// creation: propagation computes new nodes, it never edits existing ones.
// The parent is referenced by arena index, -1 at the root.
type Node struct {
	State  space.State
	Flat   []float64 // encoded State, kept for nearest-neighbor lookup
	Action []float64 // incoming action, nil at the root
	Parent int
}

// #endregion node

// #region tree

// Tree is a parent-index arena: nodes live in a slice and ancestor chains
// are walked through parent indices, keeping the tree cache-friendly and
// trivially serializable. One tree is owned by one planning episode.
type Tree struct {
	nodes []Node
}

// NewTree creates a tree rooted at the given state.
func NewTree(schema *space.Schema, root space.State) *Tree {
	t := &Tree{}
	t.nodes = append(t.nodes, Node{
		State:  root,
		Flat:   schema.Encode(root),
		Parent: -1,
	})
	return t
}

// Add appends a node and returns its index.
func (t *Tree) Add(n Node) int {
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

// Node returns the node at index i.
func (t *Tree) Node(i int) Node {
	return t.nodes[i]
}

// Len is the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Nearest returns the index of the node closest to target under dist.
// Linear scan; tree sizes in one episode stay small enough that this
// beats maintaining an index.
func (t *Tree) Nearest(target []float64, dist func(a, b []float64) float64) int {
	best := 0
	bestD := dist(t.nodes[0].Flat, target)
	for i := 1; i < len(t.nodes); i++ {
		if d := dist(t.nodes[i].Flat, target); d < bestD {
			best = i
			bestD = d
		}
	}
	return best
}

// PathTo reconstructs the root-to-i path: the state sequence and the
// actions between them (one fewer than states).
func (t *Tree) PathTo(i int) ([]space.State, [][]float64) {
	var states []space.State
	var actions [][]float64
	for idx := i; idx != -1; idx = t.nodes[idx].Parent {
		n := t.nodes[idx]
		states = append(states, n.State)
		if n.Parent != -1 {
			actions = append(actions, n.Action)
		}
	}
	// reverse into root-first order
	for l, r := 0, len(states)-1; l < r; l, r = l+1, r-1 {
		states[l], states[r] = states[r], states[l]
	}
	for l, r := 0, len(actions)-1; l < r; l, r = l+1, r-1 {
		actions[l], actions[r] = actions[r], actions[l]
	}
	return states, actions
}

// #endregion tree
