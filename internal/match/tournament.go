package match

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/entity"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/player"
	"golang.org/x/sync/errgroup"
)

// Tournament - a series against every opponent, all series running at once. The subject is
// shared between the series and must be safe for concurrent use; each opponent plays one series.
func (that *Runner) Tournament(ctx context.Context, subject player.Player, opponents []player.Player, rounds int) ([]*entity.Statistics, error) {
	results := make([]*entity.Statistics, len(opponents))

	group, ctx := errgroup.WithContext(ctx)
	for i, opponent := range opponents {
		group.Go(func() error {
			stats, err := that.Series(ctx, subject, opponent, rounds)
			if err != nil {
				return fmt.Errorf("series against %s: %w", opponent.Name(), err)
			}

			results[i] = stats

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
