package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/board"
)

const divider = "-----------\n"

// Renderer draws boards as a 3x3 grid, X in red and O in blue when the terminal supports colour.
type Renderer struct {
	out *termenv.Output
}

func New(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

// Board - the grid as text, rows divided by dashes.
func (that *Renderer) Board(b board.Board) string {
	var sb strings.Builder

	for i, row := range board.Rows() {
		if i > 0 {
			sb.WriteString(divider)
		}

		cells := make([]string, 0, len(row))
		for _, p := range row {
			cells = append(cells, " "+that.cell(b.At(p))+" ")
		}
		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")
	}

	return sb.String()
}

// Write - prints the board followed by an empty line.
func (that *Renderer) Write(b board.Board) error {
	if _, err := fmt.Fprintln(that.out, that.Board(b)); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

func (that *Renderer) cell(m board.Mark) string {
	switch m {
	case board.X:
		return that.out.String("X").Foreground(that.out.Color("1")).Bold().String()
	case board.O:
		return that.out.String("O").Foreground(that.out.Color("4")).Bold().String()
	default:
		return " "
	}
}
