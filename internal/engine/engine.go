package engine

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/board"
	"golang.org/x/exp/rand"
)

// Reference is the mark terminal scores are taken from: +1 when it wins, -1 when it loses.
const Reference = board.X

type Option func(engine *Engine)

// WithLogger - logger for the initialization summary.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithPicker - chooses among n equally scored moves. It must be safe for concurrent use
// when the engine is queried concurrently.
func WithPicker(pick func(n int) int) Option {
	return func(e *Engine) {
		if pick != nil {
			e.pick = pick
		}
	}
}

// Engine holds the two scored trees: one where the reference mark moves first and one
// where its opponent does. It is read-only after New returns.
type Engine struct {
	logger *slog.Logger
	pick   func(n int) int

	referenceFirst *tree
	opponentFirst  *tree
}

// New - builds, links and scores both trees.
func New(options ...Option) (*Engine, error) {
	e := &Engine{
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		pick:   rand.Intn,
	}
	for _, option := range options {
		option(e)
	}

	log := e.logger.With("component", "engine")
	started := time.Now()

	var err error
	if e.referenceFirst, err = prepare(Reference); err != nil {
		return nil, fmt.Errorf("failed to prepare tree for %s moving first: %w", Reference, err)
	}

	if e.opponentFirst, err = prepare(Reference.Opponent()); err != nil {
		return nil, fmt.Errorf("failed to prepare tree for %s moving first: %w", Reference.Opponent(), err)
	}

	log.Info("decision trees ready",
		"reference_first_nodes", len(e.referenceFirst.nodes),
		"opponent_first_nodes", len(e.opponentFirst.nodes),
		"took", time.Since(started),
	)

	return e, nil
}

// prepare - the three stages in order: build with placeholders, resolve them, score.
func prepare(first board.Mark) (*tree, error) {
	t, err := build(first)
	if err != nil {
		return nil, fmt.Errorf("failed to build: %w", err)
	}

	t.link(t.root, nil)

	if err = t.evaluate(t.root, first); err != nil {
		return nil, fmt.Errorf("failed to evaluate: %w", err)
	}

	return t, nil
}
