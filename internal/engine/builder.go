package engine

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/board"
)

// build - expands every position reachable with first to move. Paths that reorder a side's
// own picks get a link placeholder instead of a subtree.
func build(first board.Mark) (*tree, error) {
	t := &tree{first: first}

	root, err := t.expand(first, board.Board{}, nil)
	if err != nil {
		return nil, err
	}
	t.root = root

	return t, nil
}

func (that *tree) expand(mover board.Mark, b board.Board, path []board.Position) (nodeID, error) {
	id := that.alloc()

	if b.Terminal() {
		that.node(id).score = terminalScore(b)
		that.node(id).scored = true
		return id, nil
	}

	for _, p := range b.Open() {
		next := append(path[:len(path):len(path)], p)

		if !expandable(next) {
			that.node(id).children[p] = unresolved
			continue
		}

		nextBoard, err := b.Place(p, mover)
		if err != nil {
			return absent, fmt.Errorf("failed to expand %v: %w", next, err)
		}

		child, err := that.expand(mover.Opponent(), nextBoard, next)
		if err != nil {
			return absent, err
		}

		// the arena may have grown, so the node is looked up again
		that.node(id).children[p] = child
	}

	return id, nil
}

// terminalScore - +1 when the reference mark won, -1 when it lost, 0 for a draw.
func terminalScore(b board.Board) float64 {
	outcome, _ := b.Result(Reference)
	return float64(outcome)
}
