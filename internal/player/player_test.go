package player

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEngine struct {
	position board.Position
	ok       bool
	calls    int
}

func (that *stubEngine) BestMove(board.Board, board.Mark) (board.Position, bool) {
	that.calls++
	return that.position, that.ok
}

func TestRandom_React(t *testing.T) {
	t.Run("Always picks a free cell", func(t *testing.T) {
		// Given: a board with only top and bottom free
		b, err := board.Parse("X.XOXOO.O")
		require.NoError(t, err)

		r := NewRandom()
		for range 50 {
			// When: the random player reacts
			p, ok := r.React(b, board.X)

			// Then: it chose one of the free cells
			require.True(t, ok)
			assert.Contains(t, []board.Position{board.Top, board.Bottom}, p)
		}
	})

	t.Run("Nothing to offer on a full board", func(t *testing.T) {
		b, err := board.Parse("XOXXOOOXX")
		require.NoError(t, err)

		_, ok := NewRandom().React(b, board.X)

		assert.False(t, ok)
	})
}

func TestFixed_React(t *testing.T) {
	t.Run("Default preference starts in the center", func(t *testing.T) {
		p, ok := NewFixed().React(board.Board{}, board.X)

		require.True(t, ok)
		assert.Equal(t, board.Mid, p)
	})

	t.Run("Skips taken cells", func(t *testing.T) {
		b, err := board.Parse("....X....")
		require.NoError(t, err)

		p, ok := NewFixed().React(b, board.O)

		require.True(t, ok)
		assert.Equal(t, board.TopLeft, p)
	})

	t.Run("Exhausted preference", func(t *testing.T) {
		b, err := board.Parse("....X....")
		require.NoError(t, err)

		_, ok := NewFixed(board.Mid).React(b, board.O)

		assert.False(t, ok)
	})
}

func TestAlgorithmic_React(t *testing.T) {
	// Given: an engine recommending the bottom cell
	engine := &stubEngine{position: board.Bottom, ok: true}
	p := NewAlgorithmic(engine)

	// When: reacting
	pos, ok := p.React(board.Board{}, board.O)

	// Then: the engine's answer is passed through
	require.True(t, ok)
	assert.Equal(t, board.Bottom, pos)
	assert.Equal(t, 1, engine.calls)
	assert.Equal(t, "Math", p.Name())
}
