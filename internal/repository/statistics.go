package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/board"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/entity"
)

const (
	fieldVictories = "victories"
	fieldDefeats   = "defeats"
	fieldDraws     = "draws"
)

var ErrStatsNotFound = errors.New("statistics not found")

type StatisticsRepository interface {
	Record(ctx context.Context, subject, opponent string, outcome board.Outcome) error
	GetByMatchup(ctx context.Context, subject, opponent string) (*entity.Statistics, error)
	DeleteByMatchup(ctx context.Context, subject, opponent string) error
}

type dbStatistics struct {
	client *redis.Client
}

func NewStatisticsRepository(client *redis.Client) StatisticsRepository {
	return &dbStatistics{
		client: client,
	}
}

// Record - counts one more outcome of subject against opponent.
func (that *dbStatistics) Record(ctx context.Context, subject, opponent string, outcome board.Outcome) error {
	field := fieldDraws
	switch outcome {
	case board.Victory:
		field = fieldVictories
	case board.Defeat:
		field = fieldDefeats
	}

	if err := that.client.HIncrBy(ctx, statsKey(subject, opponent), field, 1).Err(); err != nil {
		return fmt.Errorf("failed to record %s: %w", outcome, err)
	}

	return nil
}

func (that *dbStatistics) GetByMatchup(ctx context.Context, subject, opponent string) (*entity.Statistics, error) {
	fields, err := that.client.HGetAll(ctx, statsKey(subject, opponent)).Result()
	if err != nil {
		return &entity.Statistics{}, fmt.Errorf("failed to get statistics: %w", err)
	}

	if len(fields) == 0 {
		return &entity.Statistics{}, ErrStatsNotFound
	}

	stats := &entity.Statistics{Subject: subject, Opponent: opponent}
	for field, target := range map[string]*int{
		fieldVictories: &stats.Victories,
		fieldDefeats:   &stats.Defeats,
		fieldDraws:     &stats.Draws,
	} {
		value, ok := fields[field]
		if !ok {
			continue
		}

		if *target, err = strconv.Atoi(value); err != nil {
			return &entity.Statistics{}, fmt.Errorf("failed to parse %s: %w", field, err)
		}
	}

	return stats, nil
}

func (that *dbStatistics) DeleteByMatchup(ctx context.Context, subject, opponent string) error {
	deleted, err := that.client.Del(ctx, statsKey(subject, opponent)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete statistics: %w", err)
	}

	if deleted == 0 {
		return ErrStatsNotFound
	}

	return nil
}

func statsKey(subject, opponent string) string {
	return "stats:" + subject + ":" + opponent
}
