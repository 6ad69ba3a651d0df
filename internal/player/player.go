package player

import "github.com/rocketscienceinc/tictactoe-oracle/internal/board"

// Player reacts to a board on its turn and learns the outcome when a match ends.
type Player interface {
	Name() string

	// React - the cell to mark as me, false when the player has nothing to offer.
	React(b board.Board, me board.Mark) (board.Position, bool)

	Accept(outcome board.Outcome)
}

// noFeedback is embedded by players that ignore outcomes.
type noFeedback struct{}

func (noFeedback) Accept(board.Outcome) {}
