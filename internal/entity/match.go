package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/board"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	WinnerTie = "-"
)

type Match struct {
	ID        string           `json:"id"`
	Board     board.Board      `json:"-"`
	Moves     []board.Position `json:"moves"`
	First     board.Mark       `json:"first"`
	Turn      board.Mark       `json:"turn"`
	Winner    string           `json:"winner"`
	Status    string           `json:"status"`
	Forfeited bool             `json:"forfeited,omitempty"`
}

func NewMatch(first board.Mark) *Match {
	return &Match{
		ID:     uuid.NewString(),
		First:  first,
		Turn:   first,
		Status: StatusOngoing,
	}
}

// MakeTurn - places mark on p when it is mark's turn and finishes the match when the board is terminal.
func (that *Match) MakeTurn(mark board.Mark, p board.Position) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	next, err := that.Board.Place(p, mark)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Board = next
	that.Moves = append(that.Moves, p)
	that.Turn = mark.Opponent()
	that.UpdateMatchState()

	return nil
}

// Replay - rebuilds the board from the recorded moves, used after loading a match from storage.
func (that *Match) Replay() error {
	var b board.Board

	mark := that.First
	for _, p := range that.Moves {
		next, err := b.Place(p, mark)
		if err != nil {
			return fmt.Errorf("invalid history: %w", err)
		}
		b = next
		mark = mark.Opponent()
	}

	that.Board = b

	return nil
}

func (that *Match) UpdateMatchState() {
	if winner, ok := that.Board.Winner(); ok {
		that.finish(winner.String())
		return
	}

	if that.Board.Full() {
		that.finish(WinnerTie)
	}
}

// Forfeit - mark gave up its turn or played an illegal move, the other side wins.
func (that *Match) Forfeit(mark board.Mark) {
	that.Forfeited = true
	that.finish(mark.Opponent().String())
}

// OutcomeFor - the result of a finished match for mark.
func (that *Match) OutcomeFor(mark board.Mark) (board.Outcome, bool) {
	switch {
	case !that.IsFinished():
		return board.Draw, false
	case that.Winner == WinnerTie:
		return board.Draw, true
	case that.Winner == mark.String():
		return board.Victory, true
	default:
		return board.Defeat, true
	}
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Match) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Match) finish(winner string) {
	that.Winner = winner
	that.Status = StatusFinished
	that.Turn = board.Empty
}
