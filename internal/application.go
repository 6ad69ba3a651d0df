package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/config"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/dataset"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/engine"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/match"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/model"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/player"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/render"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/repository"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-oracle/transport/rest"
)

var (
	ErrAddrNotFound    = errors.New("redis address string is empty")
	ErrUnknownOpponent = errors.New("unknown opponent")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	oracle, err := engine.New(engine.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("could not initialize engine: %w", err)
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	statsRepo := repository.NewStatisticsRepository(redisStorage)
	matchRepo := repository.NewMatchRepository(redisStorage)

	subject := player.NewAlgorithmic(oracle)
	opponents, err := buildOpponents(ctx, logger, conf, subject)
	if err != nil {
		return fmt.Errorf("could not build opponents: %w", err)
	}

	options := []match.Option{match.WithPace(conf.Match.Pace), match.WithArchive(matchRepo)}
	if conf.Match.Watch {
		options = append(options, match.WithRenderer(render.New(os.Stdout)))
	}
	runner := match.NewRunner(logger, statsRepo, options...)

	// run tournament
	tournamentErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting tournament", "subject", subject.Name(), "opponents", len(opponents), "rounds", conf.Match.Rounds)
		results, tErr := runner.Tournament(ctx, subject, opponents, conf.Match.Rounds)
		if tErr != nil {
			if !errors.Is(tErr, context.Canceled) {
				tournamentErrCh <- tErr
			}
			return
		}

		for _, stats := range results {
			log.Info("Tournament result",
				"subject", stats.Subject,
				"opponent", stats.Opponent,
				"victories", stats.Victories,
				"defeats", stats.Defeats,
				"draws", stats.Draws,
			)
		}
	}()

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, oracle, statsRepo)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-tournamentErrCh:
		return fmt.Errorf("tournament error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// buildOpponents - the configured opponents in order: random, fixed or neural.
func buildOpponents(ctx context.Context, logger *slog.Logger, conf *config.Config, expert player.Player) ([]player.Player, error) {
	opponents := make([]player.Player, 0, len(conf.Match.Opponents))

	for _, name := range conf.Match.Opponents {
		switch name {
		case "random":
			opponents = append(opponents, player.NewRandom())
		case "fixed":
			opponents = append(opponents, player.NewFixed())
		case "neural":
			neural, err := trainNeural(ctx, logger, conf, expert)
			if err != nil {
				return nil, err
			}
			opponents = append(opponents, neural)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownOpponent, name)
		}
	}

	return opponents, nil
}

// trainNeural - fits a network to the expert's picks, read from dataset.path when the file exists
// and generated (then written there) otherwise.
func trainNeural(ctx context.Context, logger *slog.Logger, conf *config.Config, expert player.Player) (*model.Player, error) {
	log := logger.With("method", "trainNeural")

	samples, err := loadSamples(conf.Dataset.Path)
	if err != nil {
		return nil, err
	}

	if samples == nil {
		samples, err = dataset.Generate(ctx, expert, conf.Dataset.Size)
		if err != nil {
			return nil, fmt.Errorf("could not generate dataset: %w", err)
		}

		if err = saveSamples(conf.Dataset.Path, samples); err != nil {
			return nil, err
		}
	}

	network := model.NewNetwork(model.Config{
		Hidden:       conf.Model.Hidden,
		LearningRate: conf.Model.LearningRate,
		Epochs:       conf.Model.Epochs,
	})
	network.Train(samples, 0)

	log.Info("neural opponent trained", "samples", len(samples), "epochs", conf.Model.Epochs)

	return model.NewPlayer(network), nil
}

func loadSamples(path string) ([]dataset.Sample, error) {
	if path == "" {
		return nil, nil
	}

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open dataset: %w", err)
	}
	defer file.Close()

	samples, err := dataset.ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("could not read dataset %s: %w", path, err)
	}

	return samples, nil
}

func saveSamples(path string, samples []dataset.Sample) error {
	if path == "" {
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create dataset: %w", err)
	}
	defer file.Close()

	if err = dataset.WriteCSV(file, samples); err != nil {
		return fmt.Errorf("could not write dataset %s: %w", path, err)
	}

	return nil
}
