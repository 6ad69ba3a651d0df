package engine

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/board"
)

var (
	ErrUnresolvedLink = errors.New("unresolved link placeholder")
	ErrEmptyNode      = errors.New("non-terminal node without children")
)

// evaluate - backward induction from the leaves. A node scores the mean of its children,
// except that a node where the opponent moves and can reach a -1 child scores -1 itself.
// Already scored nodes are skipped, so shared nodes are scored once and a second pass is a no-op.
func (that *tree) evaluate(id nodeID, mover board.Mark) error {
	if that.nodes[id].scored {
		return nil
	}

	var (
		sum       float64
		count     int
		forceLoss bool
	)

	for i, child := range that.nodes[id].children {
		switch child {
		case absent:
			continue
		case unresolved:
			return fmt.Errorf("%w at %s", ErrUnresolvedLink, board.Position(i))
		}

		if err := that.evaluate(child, mover.Opponent()); err != nil {
			return err
		}

		score := that.nodes[child].Score()
		if mover != Reference && score == -1 {
			forceLoss = true
		}

		sum += score
		count++
	}

	if count == 0 {
		return ErrEmptyNode
	}

	n := that.node(id)
	n.score = sum / float64(count)
	if forceLoss {
		n.score = -1
	}
	n.scored = true

	return nil
}
