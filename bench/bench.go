// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/tsplib/tsp"
)

// ErrNoRuns is returned by Run when there is nothing to execute.
var ErrNoRuns = errors.New("bench: nothing to run")

// Record is the outcome of a single solver run.
type Record struct {
	Problem  string
	Solver   string
	Run      int // 0-based
	Length   float64
	Elapsed  time.Duration
	Feasible bool
	Err      error
}

// Summary aggregates the runs of one instance/solver pair.
// Min, Max and Avg are taken over successful runs.
type Summary struct {
	Problem    string
	Solver     string
	Runs       int
	Failed     int
	Infeasible int
	Min        float64
	Max        float64
	Avg        float64
	AvgElapsed time.Duration

	// Best is the best known length of the original instance; HasBest is false when unknown.
	Best    float64
	HasBest bool

	// Gap is 100·(Avg − Best)/Best, valid only when HasBest.
	Gap float64
}

// Report is the result of Runner.Run: every record in (case, solver, run)
// order and one summary per (case, solver) pair in the same order.
type Report struct {
	Records   []Record
	Summaries []Summary
}

// Runner executes benchmarks on a bounded worker pool.
type Runner struct {
	// Workers is the pool size; values < 1 mean 1.
	Workers int

	// Logger receives per-run and per-summary records; nil means slog.Default().
	Logger *slog.Logger
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}

	return r.Logger
}

// Run solves every case with every solver runs times and aggregates the lengths.
//
// A failing run is recorded with its error and excluded from the aggregates;
// it does not stop the benchmark. Cancelling ctx stops scheduling and yields
// ctx.Err() together with the records collected so far.
//
// Errors: ErrNoRuns, pool construction errors, ctx.Err().
func (r *Runner) Run(ctx context.Context, cases []Case, solvers []tsp.Solver, runs int) (*Report, error) {
	if len(cases) == 0 || len(solvers) == 0 || runs < 1 {
		return nil, ErrNoRuns
	}

	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("bench: create pool: %w", err)
	}
	defer pool.Release()

	var (
		log     = r.logger()
		records = make([]Record, 0, len(cases)*len(solvers)*runs)
		wg      sync.WaitGroup
	)
	for _, c := range cases {
		for _, s := range solvers {
			for run := 0; run < runs; run++ {
				records = append(records, Record{Problem: c.Original.Name(), Solver: s.Name(), Run: run, Err: errNotScheduled})
			}
		}
	}
	log.Info("benchmark started",
		slog.Int("cases", len(cases)),
		slog.Int("solvers", len(solvers)),
		slog.Int("runs", runs),
		slog.Int("workers", workers))

	var idx int
schedule:
	for _, c := range cases {
		for _, s := range solvers {
			for run := 0; run < runs; run++ {
				if ctx.Err() != nil {
					break schedule
				}
				slot := &records[idx]
				idx++

				wg.Add(1)
				task := func() {
					defer wg.Done()
					*slot = execute(ctx, c, s, run)
					log.Debug("run finished",
						slog.String("problem", slot.Problem),
						slog.String("solver", slot.Solver),
						slog.Int("run", slot.Run),
						slog.Float64("length", slot.Length),
						slog.Duration("elapsed", slot.Elapsed),
						slog.Bool("feasible", slot.Feasible),
						slog.Any("error", slot.Err))
				}
				if err = pool.Submit(task); err != nil {
					wg.Done()
					slot.Err = fmt.Errorf("bench: submit: %w", err)
				}
			}
		}
	}
	wg.Wait()

	report := &Report{Records: records, Summaries: summarize(cases, solvers, runs, records)}
	for _, s := range report.Summaries {
		attrs := []any{
			slog.String("problem", s.Problem),
			slog.String("solver", s.Solver),
			slog.Int("runs", s.Runs),
			slog.Int("failed", s.Failed),
			slog.Float64("min", s.Min),
			slog.Float64("avg", s.Avg),
			slog.Float64("max", s.Max),
			slog.Duration("avg_elapsed", s.AvgElapsed),
		}
		if s.HasBest {
			attrs = append(attrs, slog.Float64("best", s.Best), slog.Float64("gap_pct", s.Gap))
		}
		log.Info("summary", attrs...)
	}

	if err = ctx.Err(); err != nil {
		return report, err
	}

	return report, nil
}

// errNotScheduled marks slots skipped after cancellation.
var errNotScheduled = errors.New("bench: run not scheduled")

// execute performs one timed solver run.
func execute(ctx context.Context, c Case, s tsp.Solver, run int) Record {
	rec := Record{Problem: c.Original.Name(), Solver: s.Name(), Run: run}

	start := time.Now()
	res, err := s.Solve(ctx, c.Problem)
	rec.Elapsed = time.Since(start)
	if err != nil {
		rec.Err = err
		return rec
	}
	rec.Length, rec.Feasible = c.originalLength(res.Tour, res.Cost)

	return rec
}

// summarize folds records (laid out case-major, then solver, then run) into summaries.
func summarize(cases []Case, solvers []tsp.Solver, runs int, records []Record) []Summary {
	out := make([]Summary, 0, len(cases)*len(solvers))

	var idx int
	for _, c := range cases {
		best, hasBest := c.Original.Best()
		for _, s := range solvers {
			sum := Summary{
				Problem: c.Original.Name(),
				Solver:  s.Name(),
				Best:    best,
				HasBest: hasBest,
				Min:     math.Inf(1),
				Max:     math.Inf(-1),
			}
			var (
				total   float64
				elapsed time.Duration
			)
			for run := 0; run < runs; run++ {
				rec := records[idx]
				idx++
				if rec.Err != nil {
					sum.Failed++
					continue
				}
				if !rec.Feasible {
					sum.Infeasible++
				}
				sum.Runs++
				total += rec.Length
				elapsed += rec.Elapsed
				sum.Min = math.Min(sum.Min, rec.Length)
				sum.Max = math.Max(sum.Max, rec.Length)
			}
			if sum.Runs == 0 {
				sum.Min, sum.Max = 0, 0
			} else {
				sum.Avg = total / float64(sum.Runs)
				sum.AvgElapsed = elapsed / time.Duration(sum.Runs)
			}
			if hasBest && best > 0 && sum.Runs > 0 {
				sum.Gap = 100 * (sum.Avg - best) / best
			}
			out = append(out, sum)
		}
	}

	return out
}
