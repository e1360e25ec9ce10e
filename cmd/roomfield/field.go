package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-room/room/engine"
	"github.com/cwbudde/algo-room/room/hybrid"
	"github.com/cwbudde/algo-room/room/mode"
)

const skippedPreviewLen = 40

func newFieldCmd(a *app) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "field",
		Short: "Evaluate and summarize the pressure field",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runField(cmd, outDir)
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "directory to write the normalized field to")

	return cmd
}

func (a *app) runField(cmd *cobra.Command, outDir string) error {
	req, err := a.request()
	if err != nil {
		return err
	}

	eng, err := a.engine()
	if err != nil {
		return err
	}

	a.log.Debug("evaluating", "fingerprint", req.Fingerprint(), "resolution", req.Resolution, "frequency", req.FrequencyHz)

	var res engine.Result
	if outDir != "" {
		sink := newFileSink(outDir, req)
		res, err = eng.EvaluateTo(cmd.Context(), req, sink)
		if err == nil {
			a.log.Info("field exported", "data", sink.dataPath, "meta", sink.metaPath)
		}
	} else {
		res, err = eng.Evaluate(cmd.Context(), req)
	}
	if err != nil {
		return err
	}

	d := res.Diagnostics
	rows := []kv{
		{"regime", res.Regime.String()},
		{"quantity", res.Quantity},
		{"room", fmt.Sprintf("%g × %g × %g m", req.Lx, req.Ly, req.Lz)},
		{"source", fmt.Sprintf("(%.2f, %.2f, %.2f) m", req.Source.X, req.Source.Y, req.Source.Z)},
		{"drive", fmt.Sprintf("%g Hz, ζ=%.3f", req.FrequencyHz, req.Zeta)},
		{"grid", fmt.Sprintf("%d³ = %d voxels", res.Grid.Resolution, res.Grid.Len())},
		{"RT60 (Sabine)", fmt.Sprintf("%.3f s", d.RT60)},
		{"Schroeder frequency", fmt.Sprintf("%.0f Hz", d.SchroederFrequency)},
		{"raw min / max", fmt.Sprintf("%.4g / %.4g", d.Raw.Min, d.Raw.Max)},
		{"fingerprint", res.Fingerprint},
	}
	if res.Regime == hybrid.Modal {
		rows = append(rows,
			kv{"modes summed", fmt.Sprint(d.ModesEvaluated)},
			kv{"modes skipped", fmt.Sprint(d.ModesSkipped)},
			kv{"mean |G|²", fmt.Sprintf("%.4g", d.MeanEnergy)},
		)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, summary(fmt.Sprintf("%g Hz, ζ=%.3f, res=%d³", req.FrequencyHz, req.Zeta, req.Resolution), rows))

	if d.Raw.Flat {
		fmt.Fprintln(out, warn("field is flat; normalized values are all zero"))
	}

	if len(res.Skipped) > 0 {
		preview, truncated := res.SkippedPreview(skippedPreviewLen)
		fmt.Fprintf(out, "%d mode(s) skipped (source on node): %s", len(res.Skipped), joinModes(preview))
		if truncated {
			fmt.Fprint(out, " ...")
		}
		fmt.Fprintln(out)
	}

	return nil
}

func joinModes(ms []mode.Mode) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}

	return strings.Join(parts, " ")
}
