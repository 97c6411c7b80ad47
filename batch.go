package filediff

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pair names an expected fixture and the produced file to check against it.
type Pair struct {
	Expected string
	Actual   string
}

// PairResult is the outcome of comparing one Pair.
type PairResult struct {
	Pair   Pair
	Result Result

	// Err explains an Inaccessible result; it is the context error for
	// pairs skipped after cancellation.
	Err error
}

// ComparePairs compares every pair with at most the configured number of
// comparisons in flight. Results are returned in the order of pairs.
//
// Per-pair failures never fail the batch; they are reported in the
// corresponding PairResult. The returned error is non-nil only when ctx is
// done, in which case pairs that had not started are marked Inaccessible.
func (c *Comparator) ComparePairs(ctx context.Context, pairs []Pair) ([]PairResult, error) {
	results := make([]PairResult, len(pairs))

	limit := c.concurrency
	if limit < 1 {
		limit = DefaultConcurrency
	}

	var g errgroup.Group
	g.SetLimit(limit)

	for i, p := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = PairResult{Pair: p, Result: Inaccessible, Err: err}
				return nil
			}

			res, err := c.CompareFiles(p.Expected, p.Actual)
			results[i] = PairResult{Pair: p, Result: res, Err: err}
			return nil
		})
	}

	// Workers never return errors; see PairResult.Err.
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		c.debug("batch comparison cancelled", "pairs", len(pairs), "error", err)
		return results, err
	}
	return results, nil
}
