package main

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/board"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/player"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func drawSequence(n int) []uint64 {
	sequence := make([]uint64, n)
	for i := range sequence {
		sequence[i] = rand.Uint64()
	}

	return sequence
}

func randomOpenings(n int) []board.Position {
	random := player.NewRandom()

	openings := make([]board.Position, 0, n)
	for range n {
		p, _ := random.React(board.Board{}, board.X)
		openings = append(openings, p)
	}

	return openings
}

func TestInitRandom(t *testing.T) {
	t.Run("Different seeds give different sequences", func(t *testing.T) {
		// Given: the shared source seeded twice with different seeds
		initRandom(1)
		first := drawSequence(8)

		initRandom(2)
		second := drawSequence(8)

		// Then: the draws differ
		assert.NotEqual(t, first, second)
	})

	t.Run("Same seed replays the sequence", func(t *testing.T) {
		initRandom(42)
		first := drawSequence(8)

		initRandom(42)
		second := drawSequence(8)

		assert.Equal(t, first, second)
	})

	t.Run("Random player follows the seed", func(t *testing.T) {
		// Given: two processes started with different clocks
		initRandom(1_700_000_000_000_000_000)
		first := randomOpenings(20)

		initRandom(1_700_000_000_000_000_001)
		second := randomOpenings(20)

		// Then: the random player does not replay the same game
		assert.NotEqual(t, first, second)
	})
}
