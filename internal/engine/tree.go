package engine

import "github.com/rocketscienceinc/tictactoe-oracle/internal/board"

// nodeID addresses a node in the arena of one tree.
type nodeID int32

const (
	// absent marks a cell with no edge: occupied, or the node is terminal.
	absent nodeID = -1
	// unresolved is the link placeholder, an edge waiting for the linker.
	unresolved nodeID = -2
)

type node struct {
	children [board.NumPositions]nodeID
	score    float64
	scored   bool
}

func newNode() node {
	n := node{}
	for i := range n.children {
		n.children[i] = absent
	}

	return n
}

// Score - the evaluated score clamped to [-1, 1]. An unscored node reads as a loss.
func (that *node) Score() float64 {
	if !that.scored {
		return -1
	}
	return clamp(that.score)
}

func (that *node) hasChildren() bool {
	for _, child := range that.children {
		if child != absent {
			return true
		}
	}

	return false
}

func clamp(score float64) float64 {
	return max(-1, min(1, score))
}

// tree is the shared-node graph for one first-mover assignment.
type tree struct {
	nodes []node
	root  nodeID
	first board.Mark
}

func (that *tree) alloc() nodeID {
	that.nodes = append(that.nodes, newNode())
	return nodeID(len(that.nodes) - 1)
}

func (that *tree) node(id nodeID) *node {
	return &that.nodes[id]
}

// trace - follows path from the root one edge per ply and returns the deepest node reached.
func (that *tree) trace(path []board.Position) nodeID {
	current := that.root
	for _, p := range path {
		next := that.nodes[current].children[p]
		if next < 0 {
			break
		}
		current = next
	}

	return current
}

// reachable - visits every node reachable from the root once.
func (that *tree) reachable(visit func(id nodeID)) {
	seen := make([]bool, len(that.nodes))

	var walk func(id nodeID)
	walk = func(id nodeID) {
		if seen[id] {
			return
		}
		seen[id] = true
		visit(id)

		for _, child := range that.nodes[id].children {
			if child >= 0 {
				walk(child)
			}
		}
	}

	walk(that.root)
}
