package model

import (
	"sync"

	"github.com/patrikeh/go-deep"
	"github.com/patrikeh/go-deep/training"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/board"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/dataset"
)

type Config struct {
	Hidden       []int
	LearningRate float64
	Epochs       int
}

// Network is a classifier from a board, seen by the mover, to the cell to mark.
type Network struct {
	mu      sync.Mutex
	neural  *deep.Neural
	trainer training.Trainer
	epochs  int
}

func NewNetwork(conf Config) *Network {
	layout := append([]int{}, conf.Hidden...)
	layout = append(layout, board.NumPositions)

	learningRate := conf.LearningRate
	if learningRate <= 0 {
		learningRate = 0.05
	}

	epochs := conf.Epochs
	if epochs <= 0 {
		epochs = 1
	}

	return &Network{
		neural: deep.NewNeural(&deep.Config{
			Inputs:     board.NumPositions,
			Layout:     layout,
			Activation: deep.ActivationReLU,
			Mode:       deep.ModeMultiClass,
			Loss:       deep.LossCrossEntropy,
			Weight:     deep.NewNormal(0.1, 0.0),
			Bias:       true,
		}),
		trainer: training.NewTrainer(training.NewSGD(learningRate, 0.5, 0.0, false), 0),
		epochs:  epochs,
	}
}

// Train - fits the network to the samples. Zero epochs means the configured default.
func (that *Network) Train(samples []dataset.Sample, epochs int) {
	if len(samples) == 0 {
		return
	}

	if epochs <= 0 {
		epochs = that.epochs
	}

	examples := make(training.Examples, 0, len(samples))
	for _, sample := range samples {
		examples = append(examples, training.Example{
			Input:    sample.Features(),
			Response: sample.Label(),
		})
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.trainer.Train(that.neural, examples, nil, epochs)
}

// Predict - the free cell with the highest output.
func (that *Network) Predict(b board.Board, me board.Mark) (board.Position, bool) {
	that.mu.Lock()
	output := that.neural.Predict(dataset.Encode(b, me))
	that.mu.Unlock()

	best, found := board.Position(0), false
	for _, p := range b.Open() {
		if !found || output[p] > output[best] {
			best, found = p, true
		}
	}

	return best, found
}
