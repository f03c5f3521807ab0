// Package workers drives a Counter from a fixed-size group of goroutines and
// checks that no increment was lost.
package workers

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/KiaFarhang/guarded-counter/internal/atomic"
)

var (
	ErrInvalidOptions = errors.New("invalid worker options")
	ErrLostUpdate     = errors.New("final value does not account for every increment")
	ErrDuplicate      = errors.New("value observed more than once")
	ErrGap            = errors.New("value never observed")
)

// Options controls a Run.
type Options struct {
	// Workers is the number of goroutines incrementing the counter.
	Workers int
	// Iterations is the number of IncrementAndGet calls each worker makes.
	Iterations int
	// Record keeps every value returned by IncrementAndGet in Result.Observed.
	Record bool
	// OnIncrement, if set, is called after every increment. It must be safe
	// for concurrent use.
	OnIncrement func()
	// Logger receives worker start and finish lines. Nil disables logging.
	Logger *log.Logger
}

// WorkerStats describes what a single worker did.
type WorkerStats struct {
	ID         int
	Increments int
	// First and Last are the first and last values the worker got back from
	// IncrementAndGet. Both are zero if it made no calls.
	First int
	Last  int
}

// Result is the outcome of a Run.
type Result struct {
	Initial  int
	Final    int
	Workers  []WorkerStats
	Observed []int
	Elapsed  time.Duration
}

// Increments returns the total number of increments made across all workers.
func (r *Result) Increments() int {
	total := 0
	for _, w := range r.Workers {
		total += w.Increments
	}
	return total
}

// Verify checks that the final value accounts for every increment and, when
// values were recorded, that they form an unbroken run starting above Initial.
func (r *Result) Verify() error {
	if want := r.Initial + r.Increments(); r.Final != want {
		return errors.Wrapf(ErrLostUpdate, "got %d expected %d", r.Final, want)
	}
	if r.Observed == nil {
		return nil
	}
	return Verify(r.Initial, r.Observed)
}

/*
Run starts opts.Workers goroutines that each call c.IncrementAndGet
opts.Iterations times, waits for all of them, then reads the final value with
c.Get.

A single increment cannot be cancelled, but workers check ctx between calls and
stop early once it is done; Run then returns ctx's error along with the partial
result.
*/
func Run(ctx context.Context, c *atomic.Counter, opts Options) (*Result, error) {
	if opts.Workers < 1 {
		return nil, errors.Wrapf(ErrInvalidOptions, "workers must be at least 1, got %d", opts.Workers)
	}
	if opts.Iterations < 0 {
		return nil, errors.Wrapf(ErrInvalidOptions, "iterations must not be negative, got %d", opts.Iterations)
	}

	result := &Result{
		Initial: c.Get(),
		Workers: make([]WorkerStats, opts.Workers),
	}
	observed := make([][]int, opts.Workers)

	start := time.Now()
	group, ctx := errgroup.WithContext(ctx)

	for i := 0; i < opts.Workers; i++ {
		id := i
		group.Go(func() error {
			stats := &result.Workers[id]
			stats.ID = id

			var values []int
			if opts.Record {
				values = make([]int, 0, opts.Iterations)
			}

			logf(opts.Logger, "worker %d starting %d increments", id, opts.Iterations)
			defer func() {
				observed[id] = values
				logf(opts.Logger, "worker %d finished after %d increments", id, stats.Increments)
			}()

			for n := 0; n < opts.Iterations; n++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				v := c.IncrementAndGet()
				if stats.Increments == 0 {
					stats.First = v
				}
				stats.Last = v
				stats.Increments++

				if opts.Record {
					values = append(values, v)
				}
				if opts.OnIncrement != nil {
					opts.OnIncrement()
				}
			}
			return nil
		})
	}

	err := group.Wait()

	result.Final = c.Get()
	result.Elapsed = time.Since(start)
	if opts.Record {
		result.Observed = make([]int, 0, result.Increments())
		for _, values := range observed {
			result.Observed = append(result.Observed, values...)
		}
	}

	return result, err
}

func logf(logger *log.Logger, format string, args ...interface{}) {
	if logger != nil {
		logger.Printf(format, args...)
	}
}
