package sim

import (
	"context"

	"github.com/san-kum/orbitsim/internal/dynamo"
	"golang.org/x/sync/errgroup"
)

// Job is one independent simulation. Jobs must not share bodies.
type Job struct {
	Name    string
	Stepper *Stepper
	Bodies  []*dynamo.Body
	Config  Config
	Metrics []dynamo.Metric
}

// RunAll runs every job on its own goroutine. Each job stays single-threaded;
// the first failure cancels the others.
func RunAll(ctx context.Context, jobs []Job) ([]*Result, error) {
	results := make([]*Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		g.Go(func() error {
			s := New(job.Stepper)
			for _, m := range job.Metrics {
				s.AddMetric(m)
			}

			res, err := s.Run(ctx, job.Bodies, job.Config)
			results[i] = res
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
