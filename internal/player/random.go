package player

import (
	"github.com/rocketscienceinc/tictactoe-oracle/internal/board"
	"golang.org/x/exp/rand"
)

// Random marks a uniformly chosen free cell.
type Random struct {
	noFeedback
}

func NewRandom() *Random {
	return &Random{}
}

func (that *Random) Name() string {
	return "Drunk Fool"
}

func (that *Random) React(b board.Board, _ board.Mark) (board.Position, bool) {
	open := b.Open()
	if len(open) == 0 {
		return 0, false
	}

	return open[rand.Intn(len(open))], true
}
