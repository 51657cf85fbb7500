package assessments

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"sustainalens/internal/domain"
	"sustainalens/internal/scoring"
)

// EvaluateBatch scores records concurrently without storing anything.
// Outcomes keep the input order; a record that fails validation gets its
// own error and does not affect the others. The returned error is only set
// when ctx is cancelled before every record was scored, and every record
// left unscored then carries that error.
func EvaluateBatch(ctx context.Context, engine *scoring.Engine, records []domain.DisclosureRecord, concurrency int) ([]domain.Outcome, error) {
	if concurrency < 1 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	out := make([]domain.Outcome, len(records))
	for i, rec := range records {
		out[i] = domain.Outcome{CompanyID: rec.CompanyID, Year: rec.Year}
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	var stopped error
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			stopped = err
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := engine.Evaluate(rec)
			if err != nil {
				out[i].Err = err
			} else {
				out[i].Result = &res
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil && stopped == nil {
		stopped = err
	}
	if stopped != nil {
		for i := range out {
			if out[i].Result == nil && out[i].Err == nil {
				out[i].Err = stopped
			}
		}
	}
	return out, stopped
}
