package player

import "github.com/rocketscienceinc/tictactoe-oracle/internal/board"

// Fixed marks the first free cell of its preference list.
type Fixed struct {
	noFeedback

	preference []board.Position
}

// NewFixed - without a preference the center comes first, then corners, then edges.
func NewFixed(preference ...board.Position) *Fixed {
	if len(preference) == 0 {
		preference = []board.Position{
			board.Mid,
			board.TopLeft, board.TopRight, board.BottomLeft, board.BottomRight,
			board.Top, board.MidLeft, board.MidRight, board.Bottom,
		}
	}

	return &Fixed{preference: preference}
}

func (that *Fixed) Name() string {
	return "Creature of Habit"
}

func (that *Fixed) React(b board.Board, _ board.Mark) (board.Position, bool) {
	for _, p := range that.preference {
		if p.Valid() && b.At(p) == board.Empty {
			return p, true
		}
	}

	return 0, false
}
