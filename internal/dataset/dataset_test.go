package dataset

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type firstOpen struct{}

func (firstOpen) React(b board.Board, _ board.Mark) (board.Position, bool) {
	open := b.Open()
	if len(open) == 0 {
		return 0, false
	}
	return open[0], true
}

func TestGenerate(t *testing.T) {
	t.Run("Labels unfinished positions for the side to move", func(t *testing.T) {
		// When: generating samples
		samples, err := Generate(context.Background(), firstOpen{}, 200)

		// Then: every sample is playable by its mover
		require.NoError(t, err)
		require.Len(t, samples, 200)

		for _, sample := range samples {
			assert.False(t, sample.Board.Terminal())
			assert.Equal(t, board.Empty, sample.Board.At(sample.Pick))

			mine := len(sample.Board.MovesOf(sample.Mover))
			theirs := len(sample.Board.MovesOf(sample.Mover.Opponent()))
			assert.Contains(t, []int{0, 1}, theirs-mine)
		}
	})

	t.Run("Stops on a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		samples, err := Generate(ctx, firstOpen{}, 10)

		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, samples)
	})

	t.Run("Negative size yields nothing", func(t *testing.T) {
		samples, err := Generate(context.Background(), firstOpen{}, -5)

		require.NoError(t, err)
		assert.Empty(t, samples)
	})
}

func TestSample_Features(t *testing.T) {
	// Given: O to move on a board with one X and no O
	b, err := board.Parse("X........")
	require.NoError(t, err)
	sample := Sample{Board: b, Mover: board.O, Pick: board.Mid}

	// Then: the opponent's mark is encoded as -1 and the pick is one-hot
	assert.Equal(t, []float64{-1, 0, 0, 0, 0, 0, 0, 0, 0}, sample.Features())
	assert.Equal(t, []float64{0, 0, 0, 0, 1, 0, 0, 0, 0}, sample.Label())
}

func TestCSV(t *testing.T) {
	t.Run("Written samples read back from the mover's perspective", func(t *testing.T) {
		// Given: a sample where O is to move
		b, err := board.Parse("X...O...X")
		require.NoError(t, err)
		samples := []Sample{{Board: b, Mover: board.O, Pick: board.Top}}

		// When: writing and reading them back
		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, samples))
		read, err := ReadCSV(&buf)

		// Then: features and pick survive
		require.NoError(t, err)
		require.Len(t, read, 1)
		assert.Equal(t, samples[0].Features(), read[0].Features())
		assert.Equal(t, board.Top, read[0].Pick)
	})

	t.Run("Header names the cells", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, nil))

		assert.Equal(t, "topLeft,top,topRight,midLeft,mid,midRight,bottomLeft,bottom,bottomRight,pick\n", buf.String())
	})

	t.Run("Rejects unknown cell values", func(t *testing.T) {
		input := "topLeft, top, topRight, midLeft, mid, midRight, bottomLeft, bottom, bottomRight, pick\n" +
			"2, 0, 0, 0, 0, 0, 0, 0, 0, 4\n"

		_, err := ReadCSV(strings.NewReader(input))

		require.ErrorIs(t, err, ErrBadRecord)
	})
}
