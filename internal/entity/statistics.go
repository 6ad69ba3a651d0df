package entity

import "github.com/rocketscienceinc/tictactoe-oracle/internal/board"

// Statistics are the running tallies of one player against one opponent.
type Statistics struct {
	Subject   string `json:"subject"`
	Opponent  string `json:"opponent"`
	Victories int    `json:"victories"`
	Defeats   int    `json:"defeats"`
	Draws     int    `json:"draws"`
}

func (that *Statistics) Add(outcome board.Outcome) {
	switch outcome {
	case board.Victory:
		that.Victories++
	case board.Defeat:
		that.Defeats++
	default:
		that.Draws++
	}
}

func (that *Statistics) Matches() int {
	return that.Victories + that.Defeats + that.Draws
}

func (that *Statistics) WinRate() float64 {
	return that.rate(that.Victories)
}

func (that *Statistics) LossRate() float64 {
	return that.rate(that.Defeats)
}

func (that *Statistics) DrawRate() float64 {
	return that.rate(that.Draws)
}

func (that *Statistics) rate(n int) float64 {
	if that.Matches() == 0 {
		return 0
	}
	return float64(n) / float64(that.Matches())
}
