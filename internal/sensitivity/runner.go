// Package sensitivity implements the tornado analysis runner: it perturbs
// payoff values within declared percentage ranges, re-ranks expected values
// per trial, and ranks parameters by the spread of outcomes they induce.
package sensitivity

import (
	"context"
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"

	"stratcore/domain/core"
	"stratcore/domain/payoff"
	"stratcore/internal"
	"stratcore/internal/errors"
	"stratcore/ports"
)

// Config holds runner defaults, all overridable per request.
type Config struct {
	Samples      int      // trials per parameter
	DefaultRange RangePct // used when a parameter declares no range
	BaseSeed     int64    // used when the request carries no seed
	MaxParallel  int      // concurrent parameter workers
}

// DefaultConfig mirrors the historical defaults: 10 trials, ±10%.
func DefaultConfig() Config {
	return Config{
		Samples:      10,
		DefaultRange: RangePct{LowPct: -10, HighPct: 10},
		BaseSeed:     42,
		MaxParallel:  4,
	}
}

// Runner executes sensitivity runs. Stateless per invocation; safe for
// concurrent use.
type Runner struct {
	cfg   Config
	rng   ports.RNGPort
	store ports.RunStore
	log   *internal.Logger
}

// NewRunner wires a runner with its injected dependencies. store may be nil
// when persistence is not configured.
func NewRunner(cfg Config, rng ports.RNGPort, store ports.RunStore, log *internal.Logger) *Runner {
	if cfg.Samples < 1 {
		cfg.Samples = DefaultConfig().Samples
	}
	if cfg.DefaultRange.IsZero() {
		cfg.DefaultRange = DefaultConfig().DefaultRange
	}
	if cfg.MaxParallel < 1 {
		cfg.MaxParallel = DefaultConfig().MaxParallel
	}
	return &Runner{cfg: cfg, rng: rng, store: store, log: log.With("sensitivity")}
}

// Run perturbs every parameter's range, re-ranks EVs per trial, and returns
// tornado results sorted by range delta descending. The computed result is
// returned even when persistence fails; store errors are logged only.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	if len(req.BaseActions) == 0 {
		return nil, core.ErrEmptyActionSet
	}

	samples := req.Samples
	if samples < 1 {
		samples = r.cfg.Samples
	}
	seed := r.cfg.BaseSeed
	if req.Seed != nil {
		seed = *req.Seed
	}

	baseline := payoff.TopEV(payoff.Rank(req.BaseActions))

	results := make([]TornadoResult, len(req.KeyParams))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.MaxParallel)
	for i, param := range req.KeyParams {
		g.Go(func() error {
			res, err := r.runParameter(gctx, req, param, samples, seed)
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

	// Descending by spread; ties keep request order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RangeDelta > results[j].RangeDelta
	})

	summary := Summary{
		SamplesPerParameter:  samples,
		PerturbationRangePct: sharedRange(results),
		BaselineTopEV:        baseline,
		ParametersAnalyzed:   len(results),
	}
	if len(results) > 0 {
		summary.MostSensitiveParam = results[0].Param
	}

	result := &Result{RunID: req.RunID, Results: results, Summary: summary}
	r.persist(ctx, result)
	return result, nil
}

// runParameter draws the trial factors for one parameter and summarizes the
// induced top-EV spread. Each parameter gets its own seeded stream, so trial
// scheduling order cannot change the outcome.
func (r *Runner) runParameter(ctx context.Context, req Request, param Parameter, samples int, seed int64) (TornadoResult, error) {
	rng := param.Range
	if rng.IsZero() {
		rng = r.cfg.DefaultRange
	}

	stream, err := r.rng.SeededStream(ctx, fmt.Sprintf("sensitivity/%s/%s", req.RunID, param.Name), seed)
	if err != nil {
		return TornadoResult{}, err
	}
	low, high := rng.Factors()
	uniform := distuv.Uniform{Min: low, Max: high, Src: stream}

	deltas := make([]float64, samples)
	perturbed := make([]payoff.ActionEntry, len(req.BaseActions))
	for trial := 0; trial < samples; trial++ {
		factor := uniform.Rand()
		for i, action := range req.BaseActions {
			perturbed[i] = action
			perturbed[i].Estimate.Value = action.Estimate.Value * factor
		}
		deltas[trial] = payoff.TopEV(payoff.Rank(perturbed))
	}

	avg, _ := stats.Mean(deltas)
	minEV, _ := stats.Min(deltas)
	maxEV, _ := stats.Max(deltas)

	return TornadoResult{
		Param:           param.Name,
		BaseValue:       param.BaseValue,
		RangePercentage: rng,
		AvgTopEV:        avg,
		MinEV:           minEV,
		MaxEV:           maxEV,
		RangeDelta:      maxEV - minEV,
		RawDeltas:       deltas,
	}, nil
}

// sharedRange returns the effective range when every parameter was
// perturbed with the same one, nil when ranges differed.
func sharedRange(results []TornadoResult) *RangePct {
	if len(results) == 0 {
		return nil
	}
	shared := results[0].RangePercentage
	for _, res := range results[1:] {
		if res.RangePercentage != shared {
			return nil
		}
	}
	return &shared
}

// persist writes the run record fire-and-forget.
func (r *Runner) persist(ctx context.Context, result *Result) {
	if r.store == nil {
		return
	}
	run := ports.SimulationRun{
		RunID:     result.RunID,
		Kind:      "sensitivity_tornado",
		Payload:   result,
		CreatedAt: core.Now(),
	}
	if err := r.store.SaveSimulationRun(ctx, run); err != nil {
		r.log.Warn("run %s: %v", result.RunID, errors.PersistenceError("simulation_runs", err))
	}
}
