package board

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPlay(t *testing.T, first Mark, moves ...Position) Board {
	t.Helper()

	var b Board
	mark := first
	for _, p := range moves {
		next, err := b.Place(p, mark)
		require.NoError(t, err)
		b = next
		mark = mark.Opponent()
	}

	return b
}

func TestPosition_Groupings(t *testing.T) {
	t.Run("Row and column are derived from the ordinal", func(t *testing.T) {
		// Given: the right middle cell
		p := MidRight

		// Then: its row and column are the middle row and right column
		assert.Equal(t, [3]Position{MidLeft, Mid, MidRight}, p.Row())
		assert.Equal(t, [3]Position{TopRight, MidRight, BottomRight}, p.Column())
	})

	t.Run("Lines are columns, rows, diagonals", func(t *testing.T) {
		// When: enumerating the winning lines
		lines := Lines()

		// Then: there are eight of them in a fixed order
		require.Len(t, lines, 8)
		assert.Equal(t, [3]Position{TopLeft, MidLeft, BottomLeft}, lines[0])
		assert.Equal(t, [3]Position{TopLeft, Top, TopRight}, lines[3])
		assert.Equal(t, [3]Position{TopRight, Mid, BottomLeft}, lines[7])
	})
}

func TestParsePosition(t *testing.T) {
	t.Run("Accepts names case-insensitively", func(t *testing.T) {
		p, err := ParsePosition("BottomRight")
		require.NoError(t, err)
		assert.Equal(t, BottomRight, p)
	})

	t.Run("Accepts ordinals", func(t *testing.T) {
		p, err := ParsePosition("4")
		require.NoError(t, err)
		assert.Equal(t, Mid, p)
	})

	t.Run("Rejects unknown cells", func(t *testing.T) {
		_, err := ParsePosition("9")
		require.ErrorIs(t, err, apperror.ErrInvalidPosition)

		_, err = ParsePosition("center")
		require.ErrorIs(t, err, apperror.ErrInvalidPosition)
	})
}

func TestParseMark(t *testing.T) {
	m, err := ParseMark("o")
	require.NoError(t, err)
	assert.Equal(t, O, m)

	_, err = ParseMark("")
	require.ErrorIs(t, err, apperror.ErrInvalidMark)
}

func TestBoard_Place(t *testing.T) {
	t.Run("Place returns a new board and keeps the original", func(t *testing.T) {
		// Given: an empty board
		var empty Board

		// When: X marks the center
		next, err := empty.Place(Mid, X)

		// Then: only the new board carries the mark
		require.NoError(t, err)
		assert.Equal(t, X, next.At(Mid))
		assert.Equal(t, Empty, empty.At(Mid))
		assert.Equal(t, 1, next.Len())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		b := mustPlay(t, X, Mid)

		_, err := b.Place(Mid, O)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		b := mustPlay(t, X, Mid)

		_, err := b.Place(TopLeft, X)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Error on placing after the game is won", func(t *testing.T) {
		// Given: X owns the top row
		b := mustPlay(t, X, TopLeft, MidLeft, Top, Mid, TopRight)

		// When: O tries another move
		_, err := b.Place(BottomLeft, O)

		// Then: the game is over
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Error on invalid position or mark", func(t *testing.T) {
		var b Board

		_, err := b.Place(Position(9), X)
		require.ErrorIs(t, err, apperror.ErrInvalidPosition)

		_, err = b.Place(Mid, Empty)
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestBoard_MovesOf(t *testing.T) {
	t.Run("Keeps each side's play order", func(t *testing.T) {
		// Given: X plays bottom right before top left
		b := mustPlay(t, X, BottomRight, Mid, TopLeft, Top)

		// Then: the picks come back in play order
		assert.Equal(t, []Position{BottomRight, TopLeft}, b.MovesOf(X))
		assert.Equal(t, []Position{Mid, Top}, b.MovesOf(O))
	})

	t.Run("Parsed boards report ascending picks", func(t *testing.T) {
		b, err := Parse("O.X|.X.|..O")
		require.NoError(t, err)

		assert.Equal(t, []Position{TopRight, Mid}, b.MovesOf(X))
		assert.Equal(t, []Position{TopLeft, BottomRight}, b.MovesOf(O))
	})
}

func TestBoard_Winner(t *testing.T) {
	t.Run("Column win", func(t *testing.T) {
		b, err := Parse("XO.XO.X..")
		require.NoError(t, err)

		winner, ok := b.Winner()

		require.True(t, ok)
		assert.Equal(t, X, winner)
	})

	t.Run("Diagonal win", func(t *testing.T) {
		b, err := Parse("OXX.OX..O")
		require.NoError(t, err)

		winner, ok := b.Winner()

		require.True(t, ok)
		assert.Equal(t, O, winner)
	})

	t.Run("Ongoing game has no winner", func(t *testing.T) {
		b, err := Parse("XOX.O.X..")
		require.NoError(t, err)

		_, ok := b.Winner()

		assert.False(t, ok)
		assert.False(t, b.Terminal())
	})

	t.Run("Every full board is terminal", func(t *testing.T) {
		// Given: every assignment of five X and four O to the nine cells
		for mask := 0; mask < 1<<NumPositions; mask++ {
			var cells [NumPositions]Mark
			xs := 0
			for i := range cells {
				if mask&(1<<i) != 0 {
					cells[i] = X
					xs++
				} else {
					cells[i] = O
				}
			}
			if xs != 5 {
				continue
			}

			b, err := FromCells(cells)
			if err != nil {
				// both sides own a line, not reachable
				require.ErrorIs(t, err, apperror.ErrMalformedBoard)
				continue
			}

			// Then: the board is terminal and has a result for both sides
			require.True(t, b.Terminal(), b.String())
			_, ok := b.Result(X)
			require.True(t, ok)
		}
	})
}

func TestBoard_Open(t *testing.T) {
	b := mustPlay(t, O, Mid, TopLeft, BottomRight)

	assert.Equal(t, []Position{Top, TopRight, MidLeft, MidRight, BottomLeft, Bottom}, b.Open())
}

func TestBoard_Result(t *testing.T) {
	t.Run("Draw for both sides on a full board without a line", func(t *testing.T) {
		b, err := Parse("XOXXOOOXX")
		require.NoError(t, err)

		forX, ok := b.Result(X)
		require.True(t, ok)
		forO, ok := b.Result(O)
		require.True(t, ok)

		assert.Equal(t, Draw, forX)
		assert.Equal(t, Draw, forO)
	})

	t.Run("Victory and defeat", func(t *testing.T) {
		b, err := Parse("XXXOO....")
		require.NoError(t, err)

		forX, _ := b.Result(X)
		forO, _ := b.Result(O)

		assert.Equal(t, Victory, forX)
		assert.Equal(t, Defeat, forO)
	})

	t.Run("No result while the game continues", func(t *testing.T) {
		var b Board

		_, ok := b.Result(X)

		assert.False(t, ok)
	})
}

func TestBoard_Relabel(t *testing.T) {
	b := mustPlay(t, X, Top, Mid, TopLeft)

	swapped := b.Relabel()

	assert.Equal(t, "OO..X....", swapped.String())
	assert.Equal(t, []Position{Top, TopLeft}, swapped.MovesOf(O))
	assert.Equal(t, []Position{Mid}, swapped.MovesOf(X))
}

func TestParse(t *testing.T) {
	t.Run("Round trip through String", func(t *testing.T) {
		b, err := Parse("X.O.X.O..")
		require.NoError(t, err)

		assert.Equal(t, "X.O.X.O..", b.String())
	})

	t.Run("Rejects impossible counts", func(t *testing.T) {
		_, err := Parse("XXX......")

		require.ErrorIs(t, err, apperror.ErrMalformedBoard)
	})

	t.Run("Rejects wrong length and symbols", func(t *testing.T) {
		_, err := Parse("X.O")
		require.ErrorIs(t, err, apperror.ErrMalformedBoard)

		_, err = Parse("X.O.Z....")
		require.ErrorIs(t, err, apperror.ErrMalformedBoard)
	})
}
