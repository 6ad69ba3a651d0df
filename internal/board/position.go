package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/apperror"
)

// Position is one of the nine cells, numbered row by row from the top left corner.
type Position uint8

const (
	TopLeft Position = iota
	Top
	TopRight
	MidLeft
	Mid
	MidRight
	BottomLeft
	Bottom
	BottomRight
)

const NumPositions = 9

var positionNames = [NumPositions]string{
	"topLeft", "top", "topRight",
	"midLeft", "mid", "midRight",
	"bottomLeft", "bottom", "bottomRight",
}

// Positions - all cells in their total order.
func Positions() []Position {
	all := make([]Position, NumPositions)
	for i := range all {
		all[i] = Position(i)
	}

	return all
}

// ParsePosition - accepts a cell name ("mid", "bottomRight") or its ordinal ("4").
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= NumPositions {
			return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, n)
		}
		return Position(n), nil
	}

	for i, name := range positionNames {
		if strings.EqualFold(name, s) {
			return Position(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, s)
}

func (that Position) Valid() bool {
	return that < NumPositions
}

func (that Position) String() string {
	if !that.Valid() {
		return "Position(" + strconv.Itoa(int(that)) + ")"
	}
	return positionNames[that]
}

// Row - the three cells sharing a row with this one, left to right.
func (that Position) Row() [3]Position {
	first := that - that%3
	return [3]Position{first, first + 1, first + 2}
}

// Column - the three cells sharing a column with this one, top to bottom.
func (that Position) Column() [3]Position {
	first := that % 3
	return [3]Position{first, first + 3, first + 6}
}

func Rows() [][3]Position {
	return [][3]Position{Top.Row(), Mid.Row(), Bottom.Row()}
}

func Columns() [][3]Position {
	return [][3]Position{MidLeft.Column(), Mid.Column(), MidRight.Column()}
}

func Diagonals() [][3]Position {
	return [][3]Position{
		{TopLeft, Mid, BottomRight},
		{TopRight, Mid, BottomLeft},
	}
}

// Lines - every winning line: columns, then rows, then diagonals.
func Lines() [][3]Position {
	lines := make([][3]Position, 0, 8)
	lines = append(lines, Columns()...)
	lines = append(lines, Rows()...)
	lines = append(lines, Diagonals()...)

	return lines
}
