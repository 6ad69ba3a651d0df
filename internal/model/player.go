package model

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/board"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/dataset"
	"golang.org/x/exp/rand"
)

// Player plays the network's predictions and retrains on its own picks after every match.
type Player struct {
	network *Network

	mu      sync.Mutex
	history []dataset.Sample
}

func NewPlayer(network *Network) *Player {
	return &Player{network: network}
}

func (that *Player) Name() string {
	return "Neural"
}

func (that *Player) React(b board.Board, me board.Mark) (board.Position, bool) {
	if b.Terminal() {
		return 0, false
	}

	pick, ok := that.network.Predict(b, me)
	if !ok {
		return 0, false
	}

	that.mu.Lock()
	that.history = append(that.history, dataset.Sample{Board: b, Mover: me, Pick: pick})
	that.mu.Unlock()

	return pick, true
}

// Accept - retrains on the match's picks. After a defeat every pick is swapped for another free cell.
func (that *Player) Accept(outcome board.Outcome) {
	that.mu.Lock()
	history := that.history
	that.history = nil
	that.mu.Unlock()

	if outcome == board.Defeat {
		for i, sample := range history {
			history[i].Pick = other(sample)
		}
	}

	that.network.Train(history, 1)
}

// other - a random free cell other than the sample's pick, or the pick itself when none is left.
func other(sample dataset.Sample) board.Position {
	options := make([]board.Position, 0, board.NumPositions)
	for _, p := range sample.Board.Open() {
		if p != sample.Pick {
			options = append(options, p)
		}
	}

	if len(options) == 0 {
		return sample.Pick
	}

	return options[rand.Intn(len(options))]
}
