package match

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/board"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/entity"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/player"
	"golang.org/x/exp/rand"
)

type statsRecorder interface {
	Record(ctx context.Context, subject, opponent string, outcome board.Outcome) error
}

type matchArchive interface {
	Save(ctx context.Context, match *entity.Match) error
}

type boardWriter interface {
	Write(b board.Board) error
}

type Option func(runner *Runner)

// WithPace - waits d after every ply.
func WithPace(d time.Duration) Option {
	return func(r *Runner) {
		r.pace = d
	}
}

// WithRenderer - draws the board after every ply.
func WithRenderer(w boardWriter) Option {
	return func(r *Runner) {
		r.renderer = w
	}
}

// WithArchive - stores every finished match.
func WithArchive(archive matchArchive) Option {
	return func(r *Runner) {
		r.archive = archive
	}
}

// WithFirstMover - decides which mark opens each match, a coin flip by default.
func WithFirstMover(first func() board.Mark) Option {
	return func(r *Runner) {
		if first != nil {
			r.first = first
		}
	}
}

// Runner plays players against each other and keeps score.
type Runner struct {
	logger *slog.Logger
	stats  statsRecorder

	archive  matchArchive
	renderer boardWriter
	pace     time.Duration
	first    func() board.Mark
}

func NewRunner(logger *slog.Logger, stats statsRecorder, options ...Option) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	r := &Runner{
		logger: logger.With("component", "match"),
		stats:  stats,
		first:  coinFlip,
	}
	for _, option := range options {
		option(r)
	}

	return r
}

// Play - one match, x plays X and o plays O. A player that has no move or an illegal one loses.
// Both players learn their outcome before Play returns.
func (that *Runner) Play(ctx context.Context, x, o player.Player) (*entity.Match, error) {
	log := that.logger.With("method", "Play")

	match := entity.NewMatch(that.first())
	players := map[board.Mark]player.Player{board.X: x, board.O: o}

	for match.IsOngoing() {
		mover := match.Turn
		current := players[mover]

		p, ok := current.React(match.Board, mover)
		if !ok {
			log.Debug("player has no move", "match_id", match.ID, "player", current.Name())
			match.Forfeit(mover)
			break
		}

		if err := match.MakeTurn(mover, p); err != nil {
			log.Debug("illegal move", "match_id", match.ID, "player", current.Name(), "position", p.String(), "error", err)
			match.Forfeit(mover)
			break
		}

		if that.renderer != nil {
			if err := that.renderer.Write(match.Board); err != nil {
				return match, fmt.Errorf("failed to render match %s: %w", match.ID, err)
			}
		}

		if err := that.wait(ctx); err != nil {
			return match, err
		}
	}

	for mark, participant := range players {
		outcome, _ := match.OutcomeFor(mark)
		participant.Accept(outcome)
	}

	log.Debug("match finished",
		"match_id", match.ID,
		"x", x.Name(),
		"o", o.Name(),
		"winner", match.Winner,
		"forfeited", match.Forfeited,
		"moves", len(match.Moves),
	)

	if that.archive != nil {
		if err := that.archive.Save(ctx, match); err != nil {
			return match, fmt.Errorf("failed to archive match %s: %w", match.ID, err)
		}
	}

	return match, nil
}

// Series - rounds matches of subject against opponent, subject switching marks every round.
func (that *Runner) Series(ctx context.Context, subject, opponent player.Player, rounds int) (*entity.Statistics, error) {
	log := that.logger.With("method", "Series")

	stats := &entity.Statistics{Subject: subject.Name(), Opponent: opponent.Name()}

	for round := 0; round < rounds; round++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		mark := board.X
		x, o := subject, opponent
		if round%2 == 1 {
			mark = board.O
			x, o = opponent, subject
		}

		match, err := that.Play(ctx, x, o)
		if err != nil {
			return stats, err
		}

		outcome, _ := match.OutcomeFor(mark)
		stats.Add(outcome)

		if that.stats != nil {
			if err = that.stats.Record(ctx, stats.Subject, stats.Opponent, outcome); err != nil {
				return stats, fmt.Errorf("failed to record statistics: %w", err)
			}
		}
	}

	log.Info("series finished",
		"subject", stats.Subject,
		"opponent", stats.Opponent,
		"matches", stats.Matches(),
		"win_rate", stats.WinRate(),
		"loss_rate", stats.LossRate(),
		"draw_rate", stats.DrawRate(),
	)

	return stats, nil
}

func (that *Runner) wait(ctx context.Context) error {
	if that.pace <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(that.pace)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func coinFlip() board.Mark {
	if rand.Intn(2) == 0 {
		return board.X
	}
	return board.O
}
