package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	app "github.com/rocketscienceinc/tictactoe-oracle/internal"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/config"
	"golang.org/x/exp/rand"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	initRandom(uint64(time.Now().UnixNano()))

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// initialize randomness. The shared source of x/exp/rand starts from the same seed in every process,
// so tie-breaks, coin flips, random players and generated datasets would repeat run after run.
func initRandom(seed uint64) {
	rand.Seed(seed)
}
