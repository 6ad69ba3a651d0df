package dataset

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/board"
	"golang.org/x/exp/rand"
)

type labeller interface {
	React(b board.Board, me board.Mark) (board.Position, bool)
}

// Sample is one labelled position: the board, the side to move and the cell it should mark.
type Sample struct {
	Board board.Board
	Mover board.Mark
	Pick  board.Position
}

// Features - the board seen by the mover: 1 for its own marks, -1 for the opponent's, 0 when free.
func (that Sample) Features() []float64 {
	return Encode(that.Board, that.Mover)
}

// Label - one-hot encoding of the pick.
func (that Sample) Label() []float64 {
	label := make([]float64, board.NumPositions)
	label[that.Pick] = 1

	return label
}

func Encode(b board.Board, me board.Mark) []float64 {
	features := make([]float64, board.NumPositions)
	for i, cell := range b.Cells() {
		switch cell {
		case me:
			features[i] = 1
		case me.Opponent():
			features[i] = -1
		}
	}

	return features
}

// Generate - n samples of random unfinished positions labelled by the given player.
// Positions hold 0 to 8 marks and the labelled side is always the one to move.
func Generate(ctx context.Context, expert labeller, n int) ([]Sample, error) {
	samples := make([]Sample, 0, max(n, 0))

	for len(samples) < n {
		if err := ctx.Err(); err != nil {
			return samples, fmt.Errorf("dataset generation interrupted: %w", err)
		}

		me := board.X
		if rand.Intn(2) == 1 {
			me = board.O
		}

		filled := rand.Intn(board.NumPositions)
		mark := me
		if filled%2 == 1 {
			mark = me.Opponent()
		}

		b, ok := randomPosition(filled, mark)
		if !ok {
			continue
		}

		pick, ok := expert.React(b, me)
		if !ok {
			continue
		}

		samples = append(samples, Sample{Board: b, Mover: me, Pick: pick})
	}

	return samples, nil
}

// randomPosition - plays filled random moves starting with mark. Reports false when the game ended on the way.
func randomPosition(filled int, mark board.Mark) (board.Board, bool) {
	var b board.Board
	for range filled {
		open := b.Open()

		next, err := b.Place(open[rand.Intn(len(open))], mark)
		if err != nil {
			return b, false
		}

		b = next
		mark = mark.Opponent()
	}

	return b, !b.Terminal()
}
