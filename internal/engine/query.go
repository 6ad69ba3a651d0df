package engine

import "github.com/rocketscienceinc/tictactoe-oracle/internal/board"

// Recommendation is a best move together with the score of the position it leads to, from the mover's point of view.
type Recommendation struct {
	Position board.Position
	Score    float64
}

// BestMove - the move with the highest score for me, ties broken at random.
// It reports false when the board is finished, malformed, or not me's turn.
func (that *Engine) BestMove(b board.Board, me board.Mark) (board.Position, bool) {
	recommendation, ok := that.Recommend(b, me)
	return recommendation.Position, ok
}

// Recommend - BestMove with the chosen child's score.
func (that *Engine) Recommend(b board.Board, me board.Mark) (Recommendation, bool) {
	if b.Terminal() {
		return Recommendation{}, false
	}

	t, id, ok := that.locate(b, me)
	if !ok {
		return Recommendation{}, false
	}

	n := t.node(id)
	if !n.hasChildren() {
		return Recommendation{}, false
	}

	best := make([]board.Position, 0, board.NumPositions)
	bestScore := -2.0
	for i, child := range n.children {
		if child < 0 {
			continue
		}

		score := t.node(child).Score()
		switch {
		case score > bestScore:
			bestScore = score
			best = append(best[:0], board.Position(i))
		case score == bestScore:
			best = append(best, board.Position(i))
		}
	}

	return Recommendation{Position: best[that.pick(len(best))], Score: bestScore}, true
}

// Score - the score of the node the board leads to, from me's point of view.
func (that *Engine) Score(b board.Board, me board.Mark) (float64, bool) {
	t, id, ok := that.locate(b, me)
	if !ok {
		return 0, false
	}

	return t.node(id).Score(), true
}

// locate - finds the node for b with me to move, or the deepest node on its path.
func (that *Engine) locate(b board.Board, me board.Mark) (*tree, nodeID, bool) {
	if !me.Valid() {
		return nil, absent, false
	}

	if me != Reference {
		b = b.Relabel()
	}

	mine := b.MovesOf(Reference)
	theirs := b.MovesOf(Reference.Opponent())

	var (
		t             *tree
		first, second []board.Position
	)

	switch len(theirs) - len(mine) {
	case 0:
		t, first, second = that.referenceFirst, mine, theirs
	case 1:
		t, first, second = that.opponentFirst, theirs, mine
	default:
		return nil, absent, false
	}

	current := t.root
	for i := 0; i < len(first)+len(second); i++ {
		p := first[i/2]
		if i%2 == 1 {
			p = second[i/2]
		}

		next := t.node(current).children[p]
		if next < 0 {
			break
		}
		current = next
	}

	return t, current, true
}
