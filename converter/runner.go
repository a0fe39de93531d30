package converter

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bcparks/scrape-cleanup/internal/logging"
)

// Runner runs a batch of converters with per-converter failure isolation.
type Runner struct {
	parallelism int
	log         logging.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithParallelism runs up to n converters at once. Values below 1 mean 1.
func WithParallelism(n int) RunnerOption {
	return func(r *Runner) { r.parallelism = n }
}

// WithLogger sets the runner's logger.
func WithLogger(l logging.Logger) RunnerOption {
	return func(r *Runner) { r.log = l }
}

// NewRunner creates a sequential runner unless WithParallelism says otherwise.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{parallelism: 1, log: logging.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	if r.parallelism < 1 {
		r.parallelism = 1
	}
	return r
}

// RunAll runs every converter and returns their results in input order.
// It never stops early because one converter failed.
func (r *Runner) RunAll(ctx context.Context, convs []*Converter) Report {
	results := make([]Result, len(convs))

	var g errgroup.Group
	g.SetLimit(r.parallelism)
	for i, c := range convs {
		i, c := i, c
		g.Go(func() error {
			results[i] = runIsolated(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	report := Report{Results: results}
	r.log.Info("batch finished",
		logging.Int("converters", len(results)),
		logging.Int("failed", len(report.Failed())),
	)
	return report
}

// runIsolated turns a panic inside one converter into that converter's error.
func runIsolated(ctx context.Context, c *Converter) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			res = Result{
				Name:        c.name,
				Source:      c.source,
				Destination: c.destination,
				Err:         fmt.Errorf("converter %s panicked: %v", c.name, p),
			}
		}
	}()
	return c.Run(ctx)
}

// Report collects the results of one batch.
type Report struct {
	Results []Result
}

// Failed returns the failed results.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// AllFailed reports whether every converter failed. An empty batch has not
// failed.
func (r Report) AllFailed() bool {
	return len(r.Results) > 0 && len(r.Failed()) == len(r.Results)
}

// Err joins the failures, each prefixed with its converter name.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", res.Name, res.Err))
	}
	return errors.Join(errs...)
}
