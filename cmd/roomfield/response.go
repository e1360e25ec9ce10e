package main

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-room/measure/decay"
	"github.com/cwbudde/algo-room/room/geometry"
	"github.com/cwbudde/algo-room/room/hybrid"
	"github.com/cwbudde/algo-room/room/modal"
	"github.com/cwbudde/algo-room/room/mode"
	"github.com/cwbudde/algo-room/room/response"
)

// responseOptions are the flags of the response subcommand.
type responseOptions struct {
	rx, ry, rz float64
	sampleRate float64
	length     int
}

func newResponseCmd(a *app) *cobra.Command {
	var opts responseOptions

	cmd := &cobra.Command{
		Use:   "response",
		Short: "Synthesize the modal impulse response at a receiver and estimate its decay",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runResponse(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.rx, "rx", 1.3, "receiver x in m")
	f.Float64Var(&opts.ry, "ry", 0.9, "receiver y in m")
	f.Float64Var(&opts.rz, "rz", 1.1, "receiver z in m")
	f.Float64Var(&opts.sampleRate, "fs", 8000, "sample rate in Hz")
	f.IntVar(&opts.length, "length", 8192, "impulse response length, rounded up to a power of two")

	return cmd
}

func (a *app) runResponse(cmd *cobra.Command, opts responseOptions) error {
	req, err := a.request()
	if err != nil {
		return err
	}

	eng, err := a.engine()
	if err != nil {
		return err
	}

	room, err := geometry.New(req.Lx, req.Ly, req.Lz)
	if err != nil {
		return err
	}

	receiver := geometry.Point{X: opts.rx, Y: opts.ry, Z: opts.rz}
	if err := room.CheckPoint(receiver); err != nil {
		return fmt.Errorf("receiver: %w", err)
	}

	params := modal.Params{SpeedOfSound: eng.SpeedOfSound(), Epsilon: eng.Epsilon()}
	terms, skipped := modal.Prepare(room, req.Source, mode.Collect(req.Limits, req.Filter), params)
	if len(terms) == 0 {
		return response.ErrNoTerms
	}
	a.log.Debug("terms prepared", "summed", len(terms), "skipped", len(skipped))

	point := response.At(receiver, terms)
	n := response.NextPowerOfTwo(opts.length)

	h, err := point.ImpulseResponse(cmd.Context(), opts.sampleRate, n, req.Zeta, eng.Epsilon())
	if err != nil {
		return err
	}

	omega := 2 * math.Pi * req.FrequencyHz
	g := point.Transfer([]float64{omega}, req.Zeta, eng.Epsilon())[0]

	rows := []kv{
		{"receiver", fmt.Sprintf("(%.2f, %.2f, %.2f) m", receiver.X, receiver.Y, receiver.Z)},
		{"modes summed", fmt.Sprint(len(terms))},
		{"samples", fmt.Sprintf("%d @ %g Hz", n, opts.sampleRate)},
		{"|H| at drive", fmt.Sprintf("%.4g (%g Hz)", cmplx.Abs(g), req.FrequencyHz)},
		{"RT60 (Sabine)", fmt.Sprintf("%.3f s", hybrid.Sabine(room, req.Absorption, eng.Epsilon()))},
	}

	m, err := decay.NewAnalyzer(opts.sampleRate).Analyze(h)
	switch {
	case errors.Is(err, decay.ErrNoDecay):
		rows = append(rows, kv{"RT60 (modal)", "n/a, extend --length"})
	case err != nil:
		return err
	default:
		rows = append(rows,
			kv{"EDT", fmt.Sprintf("%.3f s", m.EDT)},
			kv{"T20", fmt.Sprintf("%.3f s", m.T20)},
			kv{"T30", fmt.Sprintf("%.3f s", m.T30)},
			kv{"RT60 (modal)", fmt.Sprintf("%.3f s", m.RT60)},
		)
	}

	fmt.Fprintln(cmd.OutOrStdout(), summary("impulse response", rows))

	return nil
}

