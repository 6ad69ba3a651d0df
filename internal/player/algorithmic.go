package player

import "github.com/rocketscienceinc/tictactoe-oracle/internal/board"

type decider interface {
	BestMove(b board.Board, me board.Mark) (board.Position, bool)
}

// Algorithmic asks the precomputed decision engine.
type Algorithmic struct {
	noFeedback

	engine decider
}

func NewAlgorithmic(engine decider) *Algorithmic {
	return &Algorithmic{engine: engine}
}

func (that *Algorithmic) Name() string {
	return "Math"
}

func (that *Algorithmic) React(b board.Board, me board.Mark) (board.Position, bool) {
	return that.engine.BestMove(b, me)
}
