package engine

import "github.com/rocketscienceinc/tictactoe-oracle/internal/board"

// link - rewrites every link placeholder below id to the node its canonical path leads to.
// Canonical paths are always expanded, so a single depth-first pass resolves all of them.
func (that *tree) link(id nodeID, path []board.Position) {
	for i, child := range that.nodes[id].children {
		p := board.Position(i)

		switch child {
		case absent:
			continue
		case unresolved:
			next := append(path[:len(path):len(path)], p)
			that.nodes[id].children[p] = that.trace(Canonical(next))
		default:
			that.link(child, append(path[:len(path):len(path)], p))
		}
	}
}
