package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/cwbudde/algo-room/room/field"
	"github.com/cwbudde/algo-room/room/geometry"
	"github.com/cwbudde/algo-room/room/hybrid"
	"github.com/cwbudde/algo-room/room/modal"
	"github.com/cwbudde/algo-room/room/mode"
)

// Quantity labels describing what a result field shows.
const (
	QuantityMagnitude = "|p|"
	QuantitySnapshot  = "Re(p)"
	QuantityDecay     = "RT60 Field"
)

// Engine evaluates requests. It is safe for concurrent use.
type Engine struct {
	cfg config
}

// New returns an Engine configured by opts.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Engine{cfg: cfg}, nil
}

// SpeedOfSound returns the configured c in m/s.
func (e *Engine) SpeedOfSound() float64 { return e.cfg.speedOfSound }

// Epsilon returns the configured numerical floor.
func (e *Engine) Epsilon() float64 { return e.cfg.epsilon }

// Diagnostics carries secondary figures of an evaluation.
type Diagnostics struct {
	ModesEvaluated     int     // terms summed
	ModesSkipped       int     // admitted modes decoupled from the source
	RT60               float64 // Sabine estimate, seconds
	SchroederFrequency float64 // suggested crossover, Hz
	MeanEnergy         float64 // mean |G|², modal regime only
	Raw                field.Stats
}

// Result is the outcome of one evaluation.
type Result struct {
	Field       []float64 // normalized to [0, 1], grid order
	Raw         []float64 // selected field before normalization
	Grid        geometry.Grid
	Regime      hybrid.Regime
	Quantity    string
	Skipped     []mode.Mode // enumeration order
	Fingerprint string
	Diagnostics Diagnostics
}

// SkippedPreview returns at most n skipped modes and whether the list was
// truncated.
func (r Result) SkippedPreview(n int) ([]mode.Mode, bool) {
	if n < 0 {
		n = 0
	}
	if len(r.Skipped) <= n {
		return r.Skipped, false
	}

	return r.Skipped[:n], true
}

// Evaluate validates req, checks the memory budget and computes the field.
// No partial result is returned on error.
func (e *Engine) Evaluate(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	if !e.cfg.budget.HasBudget(req.Resolution) {
		return Result{}, fmt.Errorf("%w: %d³ voxels", ErrResourceExceeded, req.Resolution)
	}

	room, err := geometry.New(req.Lx, req.Ly, req.Lz)
	if err != nil {
		return Result{}, err
	}

	grid, err := geometry.NewGrid(room, req.Resolution)
	if err != nil {
		return Result{}, err
	}

	eps := e.cfg.epsilon
	rt60 := hybrid.Sabine(room, req.Absorption, eps)

	res := Result{
		Grid:        grid,
		Regime:      hybrid.Select(req.FrequencyHz, req.CrossoverHz),
		Fingerprint: req.Fingerprint().String(),
		Diagnostics: Diagnostics{
			RT60:               rt60,
			SchroederFrequency: hybrid.SchroederFrequency(rt60, room.Volume()),
		},
	}

	switch res.Regime {
	case hybrid.Modal:
		if err := e.evaluateModal(ctx, room, grid, req, &res); err != nil {
			return Result{}, err
		}
	default:
		decay := 1.0
		if req.Animate {
			decay = hybrid.DecayFactor(req.TimeSeconds, rt60)
		}
		res.Raw = hybrid.UniformField(grid.Len(), decay)
		res.Quantity = QuantityDecay
	}

	res.Field = field.Normalize(res.Raw, eps)
	res.Diagnostics.Raw = field.Summarize(res.Raw, eps)

	return res, nil
}

func (e *Engine) evaluateModal(ctx context.Context, room geometry.Room, grid geometry.Grid, req Request, res *Result) error {
	params := modal.Params{SpeedOfSound: e.cfg.speedOfSound, Epsilon: e.cfg.epsilon}
	modes := mode.Collect(req.Limits, req.Filter)
	terms, skipped := modal.Prepare(room, req.Source, modes, params)

	omega := 2 * math.Pi * req.FrequencyHz
	drive := modal.Drive{Omega: omega, Zeta: req.Zeta, Epsilon: e.cfg.epsilon}

	g, err := modal.Accumulate(ctx, grid, terms, drive, e.cfg.workers)
	if err != nil {
		return err
	}

	if req.Animate {
		res.Raw = field.Snapshot(g.Re, g.Im, omega, req.TimeSeconds)
		res.Quantity = QuantitySnapshot
	} else {
		res.Raw = field.Magnitude(g.Re, g.Im)
		res.Quantity = QuantityMagnitude
	}

	res.Skipped = skipped
	res.Diagnostics.ModesEvaluated = len(terms)
	res.Diagnostics.ModesSkipped = len(skipped)
	res.Diagnostics.MeanEnergy = field.MeanEnergy(g.Re, g.Im)

	return nil
}

// Sink consumes a finished field, for example a renderer or an exporter.
type Sink interface {
	Consume(normalized []float64, grid geometry.Grid, regime string) error
}

// EvaluateTo evaluates req and hands the normalized field to sink.
func (e *Engine) EvaluateTo(ctx context.Context, req Request, sink Sink) (Result, error) {
	res, err := e.Evaluate(ctx, req)
	if err != nil {
		return Result{}, err
	}

	if err := sink.Consume(res.Field, res.Grid, res.Regime.String()); err != nil {
		return Result{}, fmt.Errorf("engine: sink: %w", err)
	}

	return res, nil
}
