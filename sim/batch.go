package sim

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RunAll runs independent scenarios concurrently, at most workers at a
// time. Each simulation still runs on a single goroutine. Results are in
// scenario order; the first error cancels the remaining runs.
func RunAll(ctx context.Context, scenarios []Scenario, workers int, logger *zap.Logger) ([]Result, error) {
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i := range scenarios {
		g.Go(func() error {
			res, err := Run(ctx, scenarios[i], logger)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
