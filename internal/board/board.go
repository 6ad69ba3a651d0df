package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/apperror"
)

const maxPicks = (NumPositions + 1) / 2

// Board is an immutable game position. Besides the cells it remembers, per side,
// the order in which that side placed its marks.
type Board struct {
	cells [NumPositions]Mark
	picks [2][maxPicks]Position
	count [2]uint8
}

func side(m Mark) int {
	return int(m) - 1
}

// Place - returns a copy of the board with mark m placed on p.
func (that Board) Place(p Position, m Mark) (Board, error) {
	if !p.Valid() {
		return that, fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, p)
	}

	if !m.Valid() {
		return that, fmt.Errorf("%w: %d", apperror.ErrInvalidMark, m)
	}

	if that.cells[p] != Empty {
		return that, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, p)
	}

	if that.Terminal() {
		return that, apperror.ErrGameFinished
	}

	if int(that.count[side(m)]) > int(that.count[side(m.Opponent())]) {
		return that, fmt.Errorf("%w: %s", apperror.ErrNotYourTurn, m)
	}

	next := that
	next.cells[p] = m
	next.picks[side(m)][next.count[side(m)]] = p
	next.count[side(m)]++

	return next, nil
}

// At - the mark on p, Empty when the cell is free.
func (that Board) At(p Position) Mark {
	if !p.Valid() {
		return Empty
	}
	return that.cells[p]
}

func (that Board) Cells() [NumPositions]Mark {
	return that.cells
}

// Len - number of marks on the board.
func (that Board) Len() int {
	return int(that.count[0]) + int(that.count[1])
}

// MovesOf - the cells marked by m, in the order m placed them.
func (that Board) MovesOf(m Mark) []Position {
	if !m.Valid() {
		return nil
	}

	moves := make([]Position, that.count[side(m)])
	copy(moves, that.picks[side(m)][:that.count[side(m)]])

	return moves
}

// Winner - scans columns, rows and diagonals and returns the mark owning a full line.
func (that Board) Winner() (Mark, bool) {
	for _, line := range Lines() {
		a, b, c := that.cells[line[0]], that.cells[line[1]], that.cells[line[2]]
		if a != Empty && a == b && b == c {
			return a, true
		}
	}

	return Empty, false
}

// Open - the free cells in ascending order.
func (that Board) Open() []Position {
	open := make([]Position, 0, NumPositions-that.Len())
	for i, cell := range that.cells {
		if cell == Empty {
			open = append(open, Position(i))
		}
	}

	return open
}

func (that Board) Full() bool {
	return that.Len() == NumPositions
}

func (that Board) Terminal() bool {
	if _, ok := that.Winner(); ok {
		return true
	}
	return that.Full()
}

// Result - the outcome for mark m once the board is terminal.
func (that Board) Result(m Mark) (Outcome, bool) {
	if winner, ok := that.Winner(); ok {
		if winner == m {
			return Victory, true
		}
		return Defeat, true
	}

	if that.Full() {
		return Draw, true
	}

	return Draw, false
}

// Relabel - swaps the two marks, keeping each side's play order.
func (that Board) Relabel() Board {
	next := Board{
		picks: [2][maxPicks]Position{that.picks[1], that.picks[0]},
		count: [2]uint8{that.count[1], that.count[0]},
	}
	for i, cell := range that.cells {
		next.cells[i] = cell.Opponent()
	}

	return next
}

// Validate - rejects boards no alternating game can reach.
func (that Board) Validate() error {
	x, o := int(that.count[side(X)]), int(that.count[side(O)])
	if x-o > 1 || o-x > 1 {
		return fmt.Errorf("%w: %d X against %d O", apperror.ErrMalformedBoard, x, o)
	}

	winners := make(map[Mark]bool)
	for _, line := range Lines() {
		a, b, c := that.cells[line[0]], that.cells[line[1]], that.cells[line[2]]
		if a != Empty && a == b && b == c {
			winners[a] = true
		}
	}

	if len(winners) > 1 {
		return fmt.Errorf("%w: both sides own a line", apperror.ErrMalformedBoard)
	}

	return nil
}

// String - nine characters row by row, '.' for free cells.
func (that Board) String() string {
	var sb strings.Builder
	for _, cell := range that.cells {
		sb.WriteString(cell.String())
	}

	return sb.String()
}

// FromCells - builds a board without history. Each side's picks are recorded in ascending order.
func FromCells(cells [NumPositions]Mark) (Board, error) {
	var b Board
	for i, cell := range cells {
		switch cell {
		case Empty:
			continue
		case X, O:
			if int(b.count[side(cell)]) == maxPicks {
				return Board{}, fmt.Errorf("%w: too many %s", apperror.ErrMalformedBoard, cell)
			}
			b.cells[i] = cell
			b.picks[side(cell)][b.count[side(cell)]] = Position(i)
			b.count[side(cell)]++
		default:
			return Board{}, fmt.Errorf("%w: %d", apperror.ErrInvalidMark, cell)
		}
	}

	if err := b.Validate(); err != nil {
		return Board{}, err
	}

	return b, nil
}

// Parse - reads the String form. '.', '-', '_' and ' ' are free cells; '|' and '/' are ignored.
func Parse(s string) (Board, error) {
	var cells [NumPositions]Mark

	i := 0
	for _, r := range s {
		if r == '|' || r == '/' || r == '\n' {
			continue
		}

		if i == NumPositions {
			return Board{}, fmt.Errorf("%w: more than %d cells", apperror.ErrMalformedBoard, NumPositions)
		}

		switch r {
		case 'X', 'x':
			cells[i] = X
		case 'O', 'o', '0':
			cells[i] = O
		case '.', '-', '_', ' ':
			cells[i] = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q", apperror.ErrMalformedBoard, r)
		}
		i++
	}

	if i != NumPositions {
		return Board{}, fmt.Errorf("%w: %d cells", apperror.ErrMalformedBoard, i)
	}

	return FromCells(cells)
}
