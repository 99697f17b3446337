package correct

import (
	"context"
	"fmt"

	"github.com/forestrie/go-blockfix/digest"
	"golang.org/x/sync/errgroup"
)

// Job is one block and its digests. Each job must own its block.
type Job struct {
	Block   []byte
	Digests digest.Set
}

// RepairAll repairs independent blocks concurrently, at most limit at a time
// (limit <= 0 means no limit). results[i] belongs to jobs[i]. The first error
// cancels the remaining searches.
func RepairAll(ctx context.Context, r *Repairer, jobs []Job, limit int) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range jobs {
		i := i
		g.Go(func() error {
			res, err := r.Repair(gctx, jobs[i].Block, jobs[i].Digests)
			if err != nil {
				return fmt.Errorf("block %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
