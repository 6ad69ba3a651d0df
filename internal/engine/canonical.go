package engine

import (
	"slices"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/board"
)

// Canonical - reorders an interleaved move path so that each side's own picks are ascending.
// Even indices belong to the side that moved first, odd indices to the other one.
func Canonical(path []board.Position) []board.Position {
	var evens, odds []board.Position
	for i, p := range path {
		if i%2 == 0 {
			evens = append(evens, p)
		} else {
			odds = append(odds, p)
		}
	}

	slices.Sort(evens)
	slices.Sort(odds)

	canonical := make([]board.Position, len(path))
	for i := range canonical {
		if i%2 == 0 {
			canonical[i] = evens[i/2]
		} else {
			canonical[i] = odds[i/2]
		}
	}

	return canonical
}

// expandable - whether path, whose last pick was just appended, matches its canonical
// reordering everywhere except the last element.
func expandable(path []board.Position) bool {
	if len(path) <= 2 {
		return true
	}

	canonical := Canonical(path)

	return slices.Equal(canonical[:len(path)-1], path[:len(path)-1])
}
