package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/apperror"
)

// Mark is what a side places on a cell. The zero value marks an empty cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (that Mark) Valid() bool {
	return that == X || that == O
}

// Opponent - the other side's mark. Empty stays empty.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// ParseMark - "X" or "O", case-insensitive.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}

// Outcome is a finished game seen from one side.
type Outcome int

const (
	Defeat  Outcome = -1
	Draw    Outcome = 0
	Victory Outcome = 1
)

func (that Outcome) String() string {
	switch that {
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return "draw"
	}
}
